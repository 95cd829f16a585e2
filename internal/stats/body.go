// ABOUTME: Body and activity estimates: BMI and MET-based calorie burn.
// ABOUTME: Activity MET values come from a fixed table with a moderate default.
package stats

import (
	"math"
	"strings"
)

// BMI computes body mass index from kilograms and centimetres, rounded to
// one decimal. Non-positive inputs give 0.
func BMI(weightKg, heightCm float64) float64 {
	if weightKg <= 0 || heightCm <= 0 {
		return 0
	}
	m := heightCm / 100
	return math.Round(weightKg/(m*m)*10) / 10
}

// BMICategory buckets a BMI value.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

var metValues = map[string]float64{
	"running":           8.0,
	"cycling":           6.0,
	"swimming":          7.0,
	"walking":           3.5,
	"yoga":              2.5,
	"strength-training": 5.0,
	"hiit":              8.5,
	"pilates":           3.0,
	"dancing":           4.5,
	"hiking":            6.0,
}

// DefaultMET is used for activities not in the table.
const DefaultMET = 4.0

// EstimateCalories estimates calories for minutes of activity at weightKg.
func EstimateCalories(activity string, minutes, weightKg float64) int {
	met, ok := metValues[strings.ToLower(activity)]
	if !ok {
		met = DefaultMET
	}
	return int(math.Round(met * weightKg * minutes / 60))
}

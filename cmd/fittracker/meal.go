// ABOUTME: CLI commands for logging meals and reviewing nutrition.
// ABOUTME: Meals come from the food database, meal suggestions, or custom entries.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/fittracker/internal/models"
	"github.com/harperreed/fittracker/internal/stats"
	"github.com/spf13/cobra"
)

var (
	mealTypeFlag string
	mealQuantity float64
	mealCalories float64
	mealProtein  float64
	mealCarbs    float64
	mealFat      float64
	mealDate     string
	mealLimit    int
)

var mealCmd = &cobra.Command{
	Use:     "meal",
	Aliases: []string{"m"},
	Short:   "Log meals and review nutrition",
	Long: `Log what you eat and see calories and macros.

COMMANDS:

  foods     Search the food database
  suggest   Show meal suggestions for a meal type
  log       Log a food or a suggestion by name
  add       Log a custom meal with your own numbers
  list      List logged meals
  today     Today's meals with totals and macro split
  week      Calories per day for the last seven days
  delete    Delete a meal

Meal types: breakfast, lunch, dinner, snack.`,
}

var mealFoodsCmd = &cobra.Command{
	Use:   "foods [query]",
	Short: "Search the food database",
	Long: `Search the food database by name. With no query, list every food.

Examples:
  fittracker meal foods
  fittracker meal foods rice`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var foods []models.Food
		if len(args) == 0 {
			foods = models.Foods()
		} else {
			foods = models.SearchFoods(args[0])
		}
		if len(foods) == 0 {
			fmt.Println("No foods found.")
			return nil
		}
		for _, f := range foods {
			fmt.Printf("%s %s %s %s\n",
				padRight(f.ID, 16),
				padRight(f.Name, 24),
				padRight(fmt.Sprintf("%.0f kcal", f.Calories), 9),
				faint.Sprintf("P %.1fg  C %.1fg  F %.1fg", f.Protein, f.Carbs, f.Fat))
		}
		return nil
	},
}

var mealSuggestCmd = &cobra.Command{
	Use:   "suggest [meal-type]",
	Short: "Show meal suggestions",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		types := models.MealTypes
		if len(args) == 1 {
			mt, err := models.ParseMealType(args[0])
			if err != nil {
				return err
			}
			types = []models.MealType{mt}
		}

		for _, mt := range types {
			color.Cyan("%s", strings.ToUpper(string(mt)))
			for _, s := range models.Suggestions(mt) {
				fmt.Printf("  %s %s\n", padRight(s.Name, 24), faint.Sprintf("%.0f kcal", s.Calories))
				fmt.Printf("    %s\n", faint.Sprint(s.Description))
			}
		}
		fmt.Println()
		fmt.Println(`Log one with: fittracker meal log "<name>"`)
		return nil
	},
}

var mealLogCmd = &cobra.Command{
	Use:   "log <food-id|suggestion>",
	Short: "Log a food or a meal suggestion",
	Long: `Log a food from the database by ID, or a meal suggestion by name.

A food needs --type. A suggestion uses its own meal type unless --type is given.

Examples:
  fittracker meal log banana --type breakfast
  fittracker meal log chicken-breast --type dinner --qty 1.5
  fittracker meal log "Avocado Toast"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var mt models.MealType
		if mealTypeFlag != "" {
			parsed, err := models.ParseMealType(mealTypeFlag)
			if err != nil {
				return err
			}
			mt = parsed
		}

		var (
			m   models.Meal
			err error
		)
		if _, ok := models.FoodByID(args[0]); ok {
			if mt == "" {
				return fmt.Errorf("--type is required when logging a food")
			}
			m, err = appCtx.Tracker.LogFood(args[0], mt, mealQuantity)
		} else {
			m, err = appCtx.Tracker.LogSuggestion(args[0], mt)
		}
		if err != nil {
			return fmt.Errorf("failed to log meal: %w", err)
		}

		printLogged(m)
		return nil
	},
}

var mealAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Log a custom meal",
	Long: `Log a meal with your own nutrition numbers.

Examples:
  fittracker meal add "Leftover curry" --type dinner --calories 640 --protein 22 --carbs 70 --fat 28`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mt, err := models.ParseMealType(mealTypeFlag)
		if err != nil {
			return err
		}

		m, err := appCtx.Tracker.LogCustomMeal(models.Meal{
			Name:     args[0],
			MealType: mt,
			Calories: mealCalories,
			Protein:  mealProtein,
			Carbs:    mealCarbs,
			Fat:      mealFat,
			Quantity: 1,
		})
		if err != nil {
			return fmt.Errorf("failed to log meal: %w", err)
		}

		printLogged(m)
		return nil
	},
}

var mealListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List logged meals",
	RunE: func(cmd *cobra.Command, args []string) error {
		meals := appCtx.Meals.List()
		if mealDate != "" {
			day, err := parseTime(mealDate)
			if err != nil {
				return fmt.Errorf("invalid date: %s", mealDate)
			}
			meals = appCtx.Meals.OnDate(day)
		}
		if mealLimit > 0 && len(meals) > mealLimit {
			meals = meals[:mealLimit]
		}

		if len(meals) == 0 {
			fmt.Println("No meals found.")
			return nil
		}
		for _, m := range meals {
			printMealRow(m)
		}
		return nil
	},
}

var mealTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Today's meals and nutrition totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		meals := appCtx.Meals.Today()
		if len(meals) == 0 {
			fmt.Println("Nothing logged today.")
			return nil
		}

		byType := stats.ByMealType(meals)
		for _, mt := range models.MealTypes {
			sum := byType[mt]
			if sum.Meals == 0 {
				continue
			}
			color.Cyan("%s %s", padRight(strings.ToUpper(string(mt)), 10), faint.Sprintf("%.0f kcal", sum.Calories))
			for _, m := range meals {
				if m.MealType == mt {
					fmt.Printf("  %s %s %.0f kcal\n", faint.Sprint(shortID(m.ID)), padRight(m.Name, 24), m.Calories)
				}
			}
		}

		total := stats.SummarizeNutrition(meals)
		macros := stats.MacroPercentages(total)
		goal := appCtx.User.Goals().DailyCalories
		fmt.Println()
		fmt.Printf("Total:  %.0f / %d kcal\n", total.Calories, goal)
		if goal > 0 {
			fmt.Printf("        %s\n", progressBar(total.Calories/float64(goal)*100, 30))
		}
		fmt.Printf("Macros: protein %d%%  carbs %d%%  fat %d%%\n", macros.Protein, macros.Carbs, macros.Fat)
		return nil
	},
}

var mealWeekCmd = &cobra.Command{
	Use:   "week",
	Short: "Calories per day for the last seven days",
	RunE: func(cmd *cobra.Command, args []string) error {
		goal := appCtx.User.Goals().DailyCalories
		days := stats.WeeklyNutrition(appCtx.Meals.List(), appCtx.Clock.Now())

		var total float64
		for _, d := range days {
			pct := 0.0
			if goal > 0 {
				pct = d.Calories / float64(goal) * 100
			}
			fmt.Printf("%s %s %s %s\n",
				d.Date.Format("Mon Jan 02"),
				progressBar(pct, 20),
				padRight(fmt.Sprintf("%.0f kcal", d.Calories), 10),
				faint.Sprintf("%d meals", d.Meals))
			total += d.Calories
		}
		fmt.Printf("\nAverage: %.0f kcal/day (goal %d)\n", total/float64(len(days)), goal)
		return nil
	},
}

var mealDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a logged meal",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := appCtx.Tracker.DeleteMeal(args[0])
		if err != nil {
			return err
		}
		color.Yellow("✗ Deleted %s", m.Name)
		printMealRow(m)
		return nil
	},
}

func printLogged(m models.Meal) {
	color.Green("✓ Logged %s", m.Name)
	printMealRow(m)
}

func printMealRow(m models.Meal) {
	fmt.Printf("  %s %s %s %s %s\n",
		faint.Sprint(shortID(m.ID)),
		faint.Sprint(m.CreatedAt.Format("2006-01-02 15:04")),
		padRight(string(m.MealType), 9),
		padRight(truncate(m.Name, 24), 24),
		fmt.Sprintf("%.0f kcal", m.Calories))
}

func init() {
	mealLogCmd.Flags().StringVarP(&mealTypeFlag, "type", "t", "", "meal type (breakfast, lunch, dinner, snack)")
	mealLogCmd.Flags().Float64VarP(&mealQuantity, "qty", "q", 1, "servings of a food")

	mealAddCmd.Flags().StringVarP(&mealTypeFlag, "type", "t", "", "meal type (breakfast, lunch, dinner, snack)")
	mealAddCmd.Flags().Float64Var(&mealCalories, "calories", 0, "calories (kcal)")
	mealAddCmd.Flags().Float64Var(&mealProtein, "protein", 0, "protein (g)")
	mealAddCmd.Flags().Float64Var(&mealCarbs, "carbs", 0, "carbohydrates (g)")
	mealAddCmd.Flags().Float64Var(&mealFat, "fat", 0, "fat (g)")
	_ = mealAddCmd.MarkFlagRequired("type")

	mealListCmd.Flags().StringVar(&mealDate, "date", "", "only meals on this day (YYYY-MM-DD)")
	mealListCmd.Flags().IntVarP(&mealLimit, "limit", "n", 20, "max number of results")

	mealCmd.AddCommand(mealFoodsCmd)
	mealCmd.AddCommand(mealSuggestCmd)
	mealCmd.AddCommand(mealLogCmd)
	mealCmd.AddCommand(mealAddCmd)
	mealCmd.AddCommand(mealListCmd)
	mealCmd.AddCommand(mealTodayCmd)
	mealCmd.AddCommand(mealWeekCmd)
	mealCmd.AddCommand(mealDeleteCmd)
	rootCmd.AddCommand(mealCmd)
}

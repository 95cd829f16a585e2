// ABOUTME: Application context that wires one store, every repository, and the tracker.
// ABOUTME: Commands and the MCP server receive an *App instead of using globals.
package app

import (
	"github.com/charmbracelet/log"
	"github.com/harperreed/fittracker/internal/clock"
	"github.com/harperreed/fittracker/internal/kv"
	"github.com/harperreed/fittracker/internal/service"
	"github.com/harperreed/fittracker/internal/storage"
)

// App owns the store and everything built on it.
type App struct {
	Backend      kv.Backend
	Store        *kv.Store
	Clock        clock.Clock
	User         *storage.UserRepo
	Workouts     *storage.WorkoutRepo
	Meals        *storage.MealRepo
	Achievements *storage.AchievementRepo
	Challenges   *storage.ChallengeRepo
	Scratch      *storage.ScratchRepo
	Backup       *storage.Backup
	Tracker      *service.Tracker
}

type options struct {
	clock    clock.Clock
	logger   *log.Logger
	notifier storage.Notifier
	prefix   string
}

// Option configures New.
type Option func(*options)

// WithClock replaces the wall clock.
func WithClock(c clock.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithLogger sets the logger for swallowed storage failures.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithNotifier receives achievement, level, and challenge events.
func WithNotifier(n storage.Notifier) Option {
	return func(o *options) { o.notifier = n }
}

// WithPrefix overrides the store namespace.
func WithPrefix(p string) Option {
	return func(o *options) { o.prefix = p }
}

// New builds the application over backend.
func New(backend kv.Backend, opts ...Option) *App {
	o := options{clock: clock.System{}, prefix: kv.DefaultPrefix}
	for _, opt := range opts {
		opt(&o)
	}

	storeOpts := []kv.Option{kv.WithPrefix(o.prefix)}
	if o.logger != nil {
		storeOpts = append(storeOpts, kv.WithLogger(o.logger))
	}
	store := kv.NewStore(backend, storeOpts...)

	a := &App{
		Backend:      backend,
		Store:        store,
		Clock:        o.clock,
		User:         storage.NewUserRepo(store, o.clock),
		Workouts:     storage.NewWorkoutRepo(store, o.clock),
		Meals:        storage.NewMealRepo(store, o.clock),
		Achievements: storage.NewAchievementRepo(store, o.clock, o.notifier),
		Challenges:   storage.NewChallengeRepo(store),
		Scratch:      storage.NewScratchRepo(store),
	}
	a.Backup = storage.NewBackup(o.clock, a.User, a.Workouts, a.Meals, a.Achievements)
	a.Tracker = service.New(service.Deps{
		Store:        store,
		Clock:        o.clock,
		User:         a.User,
		Workouts:     a.Workouts,
		Meals:        a.Meals,
		Achievements: a.Achievements,
		Challenges:   a.Challenges,
		Scratch:      a.Scratch,
	})
	return a
}

// NewInMemory builds an application over a fresh memory backend.
func NewInMemory(opts ...Option) *App {
	return New(kv.NewMemoryBackend(), opts...)
}

// Close releases the backend.
func (a *App) Close() error {
	return a.Backend.Close()
}

package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/specialistvlad/carcheck/internal/coin"
	"github.com/specialistvlad/carcheck/internal/ctxlog"
	"github.com/specialistvlad/carcheck/internal/engine"
	"github.com/specialistvlad/carcheck/internal/inspection"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	logger    *slog.Logger
	car       *engine.Controller
	sequencer *inspection.Sequencer
}

type options struct {
	flipper   coin.Flipper
	modules   []inspection.Module
	checklist *inspection.Checklist
}

// Option customizes NewApp.
type Option func(*options)

// WithFlipper replaces the seeded random coin.
func WithFlipper(f coin.Flipper) Option {
	return func(o *options) { o.flipper = f }
}

// WithModules replaces the core runner modules.
func WithModules(modules ...inspection.Module) Option {
	return func(o *options) { o.modules = modules }
}

// WithChecklist replaces the embedded pre-drive checklist.
func WithChecklist(c *inspection.Checklist) Option {
	return func(o *options) { o.checklist = c }
}

// NewApp is the constructor for the main application. Simulation output is
// written to outW and logs to logW. A checklist that does not match the
// registered runners is a programming error, so NewApp panics on it.
func NewApp(outW, logW io.Writer, cfg *Config, opts ...Option) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.flipper == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		o.flipper = coin.NewRandom(seed)
		logger.Debug("Random coin configured.", "seed", seed)
	}
	if len(o.modules) == 0 {
		o.modules = coreModules
	}
	if o.checklist == nil {
		o.checklist = inspection.Default()
	}

	reg := inspection.NewRegistry(o.modules...)
	logger.Debug("Inspection runners registered.", "runners", reg.Names())

	sequencer := inspection.New(reg, o.checklist)
	if err := sequencer.Validate(); err != nil {
		panic(fmt.Errorf("invalid inspection checklist: %w", err))
	}
	logger.Debug("Inspection checklist validated.", "steps", len(o.checklist.Steps))

	return &App{
		logger:    logger,
		car:       engine.New(outW, o.flipper),
		sequencer: sequencer,
	}
}

// Car returns the application's car. This is primarily for testing.
func (a *App) Car() *engine.Controller {
	return a.car
}

// Run executes the pre-drive routine once.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Info("Starting pre-drive routine.")

	if err := a.LetsGetMoving(ctx); err != nil {
		return fmt.Errorf("pre-drive routine failed: %w", err)
	}

	state := a.car.State()
	a.logger.Info("Pre-drive routine finished.", "running", state.Running, "speed", state.Speed)
	return nil
}

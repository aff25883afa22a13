package inspection

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/specialistvlad/carcheck/internal/ctxlog"
	"github.com/specialistvlad/carcheck/internal/engine"
)

// Sequencer runs a checklist's steps one after another.
type Sequencer struct {
	registry  *Registry
	checklist *Checklist
}

// New creates a sequencer for the given checklist.
func New(registry *Registry, checklist *Checklist) *Sequencer {
	return &Sequencer{registry: registry, checklist: checklist}
}

// Steps returns the steps in run order.
func (s *Sequencer) Steps() []Step {
	return slices.Clone(s.checklist.Steps)
}

// Validate checks that every step names a registered runner and sets exactly
// the arguments that runner expects. All problems are reported together.
func (s *Sequencer) Validate() error {
	var errs []error
	for _, step := range s.checklist.Steps {
		runner, ok := s.registry.Lookup(step.Runner)
		if !ok {
			errs = append(errs, fmt.Errorf("step %s: unknown runner %q", step.Address(), step.Runner))
			continue
		}
		for _, name := range runner.Arguments {
			if _, set := step.Args[name]; !set {
				errs = append(errs, fmt.Errorf("step %s: missing required argument %q", step.Address(), name))
			}
		}
		for name := range step.Args {
			if !slices.Contains(runner.Arguments, name) {
				errs = append(errs, fmt.Errorf("step %s: unexpected argument %q", step.Address(), name))
			}
		}
	}
	return errors.Join(errs...)
}

// Run executes every step in order. It stops at the first failing step or
// when ctx is cancelled between steps.
func (s *Sequencer) Run(ctx context.Context, car *engine.Controller) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Inspection started.", "steps", len(s.checklist.Steps))

	for i, step := range s.checklist.Steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("inspection interrupted before step %s: %w", step.Address(), err)
		}
		runner, ok := s.registry.Lookup(step.Runner)
		if !ok {
			return fmt.Errorf("step %s: unknown runner %q", step.Address(), step.Runner)
		}

		logger.Debug("Running inspection step.", "step", step.Address(), "index", i)
		if err := runner.Fn(ctx, car, step); err != nil {
			return fmt.Errorf("step %s failed: %w", step.Address(), err)
		}
	}

	logger.Debug("Inspection finished.", "state", car.State())
	return nil
}

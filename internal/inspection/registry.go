package inspection

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/specialistvlad/carcheck/internal/engine"
)

// Runner performs one checklist step against a car.
type Runner func(ctx context.Context, car *engine.Controller, step Step) error

// RegisteredRunner is a runner plus the arguments its steps may set.
type RegisteredRunner struct {
	// Arguments lists the names every step of this runner must set. No
	// other arguments are accepted.
	Arguments []string
	Fn        Runner
}

// Module is implemented by anything that contributes runners.
type Module interface {
	Register(r *Registry)
}

// Registry maps runner names used in a checklist to Go functions.
type Registry struct {
	runners map[string]*RegisteredRunner
}

// NewRegistry creates a registry populated by the given modules. With no
// modules it registers CoreModules.
func NewRegistry(modules ...Module) *Registry {
	r := &Registry{runners: make(map[string]*RegisteredRunner)}
	if len(modules) == 0 {
		modules = CoreModules
	}
	for _, mod := range modules {
		mod.Register(r)
	}
	return r
}

// Register adds a runner. Registering the same name twice panics.
func (r *Registry) Register(name string, runner *RegisteredRunner) {
	if runner == nil || runner.Fn == nil {
		panic(fmt.Sprintf("runner '%s' has no function", name))
	}
	if _, exists := r.runners[name]; exists {
		panic(fmt.Sprintf("runner with name '%s' already registered", name))
	}
	slog.Debug("Registering inspection runner.", "name", name)
	r.runners[name] = runner
}

// Lookup returns the runner registered under name.
func (r *Registry) Lookup(name string) (*RegisteredRunner, bool) {
	runner, ok := r.runners[name]
	return runner, ok
}

// Names returns the registered runner names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.runners))
}

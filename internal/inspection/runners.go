package inspection

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/carcheck/internal/engine"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// CoreModules is the set of runners compiled into carcheck.
var CoreModules = []Module{
	&CoreModule{},
}

// CoreModule registers the built-in runners.
type CoreModule struct{}

// Register implements Module.
func (m *CoreModule) Register(r *Registry) {
	r.Register("print", &RegisteredRunner{
		Arguments: []string{"message"},
		Fn:        RunPrint,
	})
	r.Register("service_warning", &RegisteredRunner{
		Fn: RunServiceWarning,
	})
	r.Register("check_engine", &RegisteredRunner{
		Fn: RunCheckEngine,
	})
}

// EvalContext exposes the engine state to step expressions as an object
// variable named "engine" with "running" and "speed" attributes.
func EvalContext(state engine.State) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"engine": cty.ObjectVal(map[string]cty.Value{
				"running": cty.BoolVal(state.Running),
				"speed":   cty.NumberIntVal(int64(state.Speed)),
			}),
		},
	}
}

// RunPrint writes the step's message as a single line.
func RunPrint(ctx context.Context, car *engine.Controller, step Step) error {
	attr, ok := step.Args["message"]
	if !ok {
		return errors.New(`missing required argument "message"`)
	}

	val, diags := attr.Expr.Value(EvalContext(car.State()))
	if diags.HasErrors() {
		return fmt.Errorf("failed to evaluate message: %w", diags)
	}
	val, err := convert.Convert(val, cty.String)
	if err != nil {
		return fmt.Errorf("message must be a string: %w", err)
	}
	if val.IsNull() || !val.IsKnown() {
		return errors.New("message must not be null")
	}

	car.Say(val.AsString())
	return nil
}

// RunServiceWarning runs the randomized service check.
func RunServiceWarning(ctx context.Context, car *engine.Controller, step Step) error {
	car.ServiceWarning()
	return nil
}

// RunCheckEngine reports whether the engine is running.
func RunCheckEngine(ctx context.Context, car *engine.Controller, step Step) error {
	car.CheckEngine()
	return nil
}

package inspection

import (
	_ "embed"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

//go:embed checklist.hcl
var defaultChecklist []byte

// defaultChecklistName is the filename reported in diagnostics for the
// embedded checklist.
const defaultChecklistName = "checklist.hcl"

// Step is a single checklist entry.
type Step struct {
	Runner string
	Name   string
	Args   hcl.Attributes
}

// Address returns the step's unique "runner.name" identifier.
func (s Step) Address() string {
	return s.Runner + "." + s.Name
}

// Checklist is an ordered list of steps.
type Checklist struct {
	Steps []Step
}

// fileRoot decodes the top-level blocks of a checklist document.
type fileRoot struct {
	Steps []*stepBlock `hcl:"step,block"`
}

type stepBlock struct {
	Runner string   `hcl:"runner,label"`
	Name   string   `hcl:"name,label"`
	Body   hcl.Body `hcl:",remain"`
}

// Parse decodes an HCL checklist. Steps keep the order they are declared in.
func Parse(src []byte, filename string) (*Checklist, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse checklist %s: %w", filename, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode checklist %s: %w", filename, diags)
	}

	checklist := &Checklist{Steps: make([]Step, 0, len(root.Steps))}
	seen := make(map[string]struct{}, len(root.Steps))
	for _, block := range root.Steps {
		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode step %s.%s in %s: %w", block.Runner, block.Name, filename, diags)
		}
		step := Step{Runner: block.Runner, Name: block.Name, Args: attrs}
		if _, dup := seen[step.Address()]; dup {
			return nil, fmt.Errorf("duplicate step %s in %s", step.Address(), filename)
		}
		seen[step.Address()] = struct{}{}
		checklist.Steps = append(checklist.Steps, step)
	}
	return checklist, nil
}

// Default returns the pre-drive checklist compiled into the binary. It
// panics if the embedded document does not decode.
func Default() *Checklist {
	checklist, err := Parse(defaultChecklist, defaultChecklistName)
	if err != nil {
		panic(fmt.Errorf("embedded checklist is invalid: %w", err))
	}
	return checklist
}

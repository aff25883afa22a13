package testutil

import (
	"context"
	"sync"

	"github.com/specialistvlad/carcheck/internal/engine"
	"github.com/specialistvlad/carcheck/internal/inspection"
)

// RecorderModule registers a "record" runner that writes nothing and only
// remembers the addresses of the steps it ran, in order.
type RecorderModule struct {
	mu  sync.Mutex
	ran []string
}

// Register implements inspection.Module.
func (m *RecorderModule) Register(r *inspection.Registry) {
	r.Register("record", &inspection.RegisteredRunner{
		Fn: func(_ context.Context, _ *engine.Controller, step inspection.Step) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			m.ran = append(m.ran, step.Address())
			return nil
		},
	})
}

// Ran returns the addresses of the recorded steps in execution order.
func (m *RecorderModule) Ran() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.ran...)
}

// FailingModule registers a "fail" runner that always returns Err.
type FailingModule struct {
	Err error
}

// Register implements inspection.Module.
func (m *FailingModule) Register(r *inspection.Registry) {
	r.Register("fail", &inspection.RegisteredRunner{
		Fn: func(context.Context, *engine.Controller, inspection.Step) error {
			return m.Err
		},
	})
}

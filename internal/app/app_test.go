package app

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/carcheck/internal/coin"
	"github.com/specialistvlad/carcheck/internal/engine"
	"github.com/specialistvlad/carcheck/internal/inspection"
	"github.com/specialistvlad/carcheck/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var checklistLines = []string{
	"Adjusting mirrors...",
	"Adjusting seats...",
	"Checking brakes...",
	"Checking lights...",
	"Checking tires...",
	"Checking fluids...",
	"Checking battery...",
	"Checking oil...",
	"Checking exhaust...",
	"Checking air filter...",
	"Checking windshield wipers...",
}

func setupApp(t *testing.T, opts ...Option) (*App, *testutil.SafeBuffer, *testutil.SafeBuffer) {
	t.Helper()
	cfg, err := NewConfig(Config{LogLevel: "debug", LogFormat: "text", Seed: 1})
	require.NoError(t, err)
	out := &testutil.SafeBuffer{}
	logs := &testutil.SafeBuffer{}
	return NewApp(out, logs, cfg, opts...), out, logs
}

func TestRun_EndToEnd(t *testing.T) {
	testCases := []struct {
		name        string
		flips       []bool
		serviceTail []string
	}{
		{
			name:        "perfect condition",
			flips:       []bool{false},
			serviceTail: []string{"The car is in perfect condition."},
		},
		{
			name:        "needs servicing",
			flips:       []bool{true, true},
			serviceTail: []string{"You have enough fuel.", "The car needs servicing."},
		},
		{
			name:        "low fuel",
			flips:       []bool{true, false},
			serviceTail: []string{"You don't have enough fuel.", "The car is in perfect condition."},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, out, logs := setupApp(t, WithFlipper(coin.NewSequence(tc.flips...)))

			err := a.Run(context.Background())
			require.NoError(t, err)

			want := append([]string{}, checklistLines...)
			want = append(want, tc.serviceTail...)
			want = append(want,
				"Checking engine...",
				"Engine is not running.",
				"The current speed is 0.",
				"We're not moving yet.",
			)
			if diff := cmp.Diff(want, out.Lines()); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}

			assert.Equal(t, engine.State{Running: true, Speed: 0}, a.Car().State())
			assert.Contains(t, logs.String(), "Pre-drive routine finished.")
			assert.NotContains(t, out.String(), "level=", "logs must not leak into program output")
		})
	}
}

func TestAcknowledgeSpeed(t *testing.T) {
	a, out, _ := setupApp(t, WithFlipper(coin.Fixed(false)))

	a.AcknowledgeSpeed()
	a.Car().TurnOn()
	a.Car().HandleGas(true)
	a.AcknowledgeSpeed()

	assert.Equal(t, []string{"We're not moving yet.", "We're moving."}, out.Lines())
}

func TestGetReadyToGo_InspectionFailure(t *testing.T) {
	checklist, err := inspection.Parse([]byte(`step "fail" "flat_tire" {}`), "test.hcl")
	require.NoError(t, err)
	boom := errors.New("flat tire")

	a, out, _ := setupApp(t,
		WithModules(&testutil.FailingModule{Err: boom}),
		WithChecklist(checklist),
	)

	err = a.Run(context.Background())

	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "inspection failed")
	assert.Empty(t, out.String(), "the speed report must not run after a failed inspection")
}

func TestNewApp_InvalidChecklistPanics(t *testing.T) {
	checklist, err := inspection.Parse([]byte(`step "horn" "beep" {}`), "test.hcl")
	require.NoError(t, err)

	require.PanicsWithError(t, `invalid inspection checklist: step horn.beep: unknown runner "horn"`, func() {
		setupApp(t, WithChecklist(checklist))
	})
}

func TestNewApp_SeededRunsAgree(t *testing.T) {
	cfg, err := NewConfig(Config{Seed: 99})
	require.NoError(t, err)

	outA := &testutil.SafeBuffer{}
	outB := &testutil.SafeBuffer{}
	require.NoError(t, NewApp(outA, &testutil.SafeBuffer{}, cfg).Run(context.Background()))
	require.NoError(t, NewApp(outB, &testutil.SafeBuffer{}, cfg).Run(context.Background()))

	assert.Equal(t, outA.String(), outB.String())
}

func TestNewConfig(t *testing.T) {
	cfg, err := NewConfig(Config{})
	require.NoError(t, err)
	assert.Equal(t, &Config{LogFormat: "text", LogLevel: "warn"}, cfg)

	_, err = NewConfig(Config{LogFormat: "xml"})
	require.ErrorContains(t, err, "invalid log format")

	_, err = NewConfig(Config{LogLevel: "trace"})
	require.ErrorContains(t, err, "invalid log level")
}

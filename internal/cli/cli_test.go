package cli

import (
	"bytes"
	"testing"

	"github.com/specialistvlad/carcheck/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse(nil, out)

	require.NoError(t, err)
	assert.False(t, shouldExit)
	assert.Equal(t, &app.Config{LogFormat: "text", LogLevel: "warn", Seed: 0}, cfg)
	assert.Empty(t, out.String())
}

func TestParse_Flags(t *testing.T) {
	cfg, shouldExit, err := Parse([]string{"-log-format", "JSON", "-log-level=debug", "-seed", "42"}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.False(t, shouldExit)
	assert.Equal(t, &app.Config{LogFormat: "json", LogLevel: "debug", Seed: 42}, cfg)
}

func TestParse_Help(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse([]string{"-h"}, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "-seed")
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "unknown flag", args: []string{"-turbo"}, wantMsg: "flag provided but not defined: -turbo"},
		{name: "bad format", args: []string{"-log-format", "xml"}, wantMsg: "invalid log format"},
		{name: "bad level", args: []string{"-log-level", "trace"}, wantMsg: "invalid log level"},
		{name: "bad seed", args: []string{"-seed", "-1"}, wantMsg: "invalid value"},
		{name: "positional", args: []string{"garage.hcl"}, wantMsg: "unexpected arguments: garage.hcl"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, shouldExit, err := Parse(tc.args, &bytes.Buffer{})

			require.Error(t, err)
			assert.False(t, shouldExit)
			assert.Nil(t, cfg)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}

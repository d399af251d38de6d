package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Borislavv/go-simrand/stream"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// TestRun_Defaults verifies a run without a config file.
func TestRun_Defaults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(zerolog.New(&buf), "", 3))
	require.Contains(t, buf.String(), "generator check values reproduced")
	require.Contains(t, buf.String(), `"stream":0`)
}

// TestRun_WithConfig verifies that the config file drives seeding and stream selection.
func TestRun_WithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simrand.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine:\n  seed: 12345\n  stream: 255\n"), 0o600))

	var buf bytes.Buffer
	require.NoError(t, run(zerolog.New(&buf), path, 1))
	require.Contains(t, buf.String(), `"root":12345`)
	require.Contains(t, buf.String(), `"stream":255`)
	require.Contains(t, buf.String(), `"planted":true`)
}

// TestRun_ClockSeed verifies that a clock-derived plant logs the root it planted.
func TestRun_ClockSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simrand.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine:\n  seed: -1\n"), 0o600))

	var buf bytes.Buffer
	require.NoError(t, run(zerolog.New(&buf), path, 1))

	var ready struct {
		Message string `json:"message"`
		Root    int64  `json:"root"`
	}
	found := false
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		require.NoError(t, json.Unmarshal(line, &ready))
		if ready.Message == "engine ready" {
			found = true
			break
		}
	}
	require.True(t, found)
	require.Greater(t, ready.Root, int64(0))
	require.Less(t, ready.Root, stream.Modulus)
}

// TestRun_MissingConfig verifies that a missing config file fails the run.
func TestRun_MissingConfig(t *testing.T) {
	require.Error(t, run(zerolog.Nop(), filepath.Join(t.TempDir(), "missing.yaml"), 1))
}

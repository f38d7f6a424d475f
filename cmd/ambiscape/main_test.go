// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const parkYAML = `
duration: 12
ambisonics_order: 1
fg_path: fg
bg_path: bg
backgrounds:
  - source_file: [choose, []]
    source_time: [const, 0]
events:
  - source_file: [choose, []]
    source_time: [const, 0]
    event_time: [uniform, 0, 8]
    event_duration: [const, 2]
    event_azimuth: [uniform, 0, 6]
    event_elevation: [const, 0]
    event_spread: [const, 0]
    snr: [const, 10]
`

func writeScene(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, p := range []string{"fg/bird.wav", "fg/dog.wav", "bg/park.wav"} {
		full := filepath.Join(root, p)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("x"), 0o644))
	}
	path := filepath.Join(root, "park.yaml")
	require.NoError(t, os.WriteFile(path, []byte(parkYAML), 0o644))
	return path
}

func TestRun_Schema(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-schema"}, &out, &errOut))
	var doc map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "ambisonics_order")
	assert.Contains(t, props, "events")
}

func TestRun_Usage(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(context.Background(), nil, &out, &errOut)
	require.Error(t, err)
	assert.Contains(t, errOut.String(), "Usage: ambiscape")

	err = run(context.Background(), []string{"-h"}, &out, &errOut)
	require.ErrorIs(t, err, flag.ErrHelp)
}

func TestRun_Scene(t *testing.T) {
	path := writeScene(t)
	dest := filepath.Join(t.TempDir(), "scene.json")

	var out, errOut bytes.Buffer
	args := []string{"-seed", "3", "-quiet", "-stats", "-o", dest, path}
	require.NoError(t, run(context.Background(), args, &out, &errOut))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Polyphony: max 1")

	raw, err := os.ReadFile(dest)
	require.NoError(t, err)
	var scene struct {
		Seed   int64 `json:"seed"`
		Order  int   `json:"ambisonics_order"`
		Events []struct {
			ID string `json:"event_id"`
		} `json:"events"`
	}
	require.NoError(t, json.Unmarshal(raw, &scene))
	assert.Equal(t, int64(3), scene.Seed)
	assert.Equal(t, 1, scene.Order)
	require.Len(t, scene.Events, 2)
	assert.Equal(t, "bg0", scene.Events[0].ID)
	assert.Equal(t, "fg0", scene.Events[1].ID)

	// same seed, same bytes
	var again bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-seed", "3", "-quiet", path}, &again, &errOut))
	assert.JSONEq(t, string(raw), again.String())
}

func TestRun_MissingFile(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(context.Background(), []string{filepath.Join(t.TempDir(), "nope.yaml")}, &out, &errOut)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, writeFile(dest, func(w io.Writer) error {
		_, err := io.WriteString(w, "{}")
		return err
	}))
	raw, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(raw))

	boom := errors.New("boom")
	err = writeFile(dest, func(io.Writer) error { return boom })
	require.ErrorIs(t, err, boom)

	err = writeFile(filepath.Join(t.TempDir(), "missing", "out.json"), func(io.Writer) error { return nil })
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_OutputFailure(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("no /dev/full")
	}
	path := writeScene(t)
	var out, errOut bytes.Buffer
	err := run(context.Background(), []string{"-quiet", "-o", "/dev/full", path}, &out, &errOut)
	require.Error(t, err)
}

package main

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetGlobals(t *testing.T) {
	t.Cleanup(func() {
		viper.Reset()
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	})
}

func TestRunWritesSnapshots(t *testing.T) {
	resetGlobals(t)
	dir := t.TempDir()
	svgPath := filepath.Join(dir, "frame.svg")
	pngPath := filepath.Join(dir, "frame.png")

	err := run(context.Background(), []string{
		"--variant", "cube", "--frames", "3", "--fps", "0",
		"--svg", svgPath, "--png", pngPath, "--log-level", "error",
	})
	require.NoError(t, err)

	doc, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(doc), "<svg"))
	assert.Contains(t, string(doc), `stroke="#ffffff"`)

	f, err := os.Open(pngPath)
	require.NoError(t, err)
	defer f.Close()
	_, err = png.Decode(f)
	require.NoError(t, err)
}

func TestRunWithConfigFile(t *testing.T) {
	resetGlobals(t)
	dir := t.TempDir()
	cfg := filepath.Join(dir, "shapeviz.json")
	out := filepath.Join(dir, "torus.svg")
	require.NoError(t, os.WriteFile(cfg, []byte(`{"variant": "torus", "run": {"frames": 1, "fps": 0}, "logLevel": "error"}`), 0644))

	require.NoError(t, run(context.Background(), []string{"-c", cfg, "--svg", out}))
	assert.FileExists(t, out)
}

func TestRunRejectsBadInput(t *testing.T) {
	resetGlobals(t)
	err := run(context.Background(), []string{"--variant", "pyramid", "--frames", "1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pyramid")

	viper.Reset()
	err = run(context.Background(), []string{"--log-level", "loud", "--frames", "1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log level")

	viper.Reset()
	assert.Error(t, run(context.Background(), []string{"--no-such-flag"}))
}

func TestRunStopsOnCancel(t *testing.T) {
	resetGlobals(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, run(ctx, []string{"--frames", "0", "--fps", "30", "--log-level", "error"}))
}

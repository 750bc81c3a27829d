package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/horizon/internal/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "horizon.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), *cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
search:
  horizon: 26
  actors: 2
factory:
  mode: top
  first: 3
  horizon: 32
logging:
  format: json
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 26, cfg.Search.Horizon)
	assert.Equal(t, 2, cfg.Search.Actors)
	assert.Equal(t, "AA", cfg.Search.Start)
	assert.Equal(t, "top", cfg.Factory.Mode)
	assert.Equal(t, 3, cfg.Factory.First)
	assert.Equal(t, 32, cfg.Factory.Horizon)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "search:\n  actors: 1\n")
	t.Setenv("HZ_SEARCH_ACTORS", "2")
	t.Setenv("HZ_METRICS_FILE", "/tmp/horizon.prom")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Search.Actors)
	assert.Equal(t, "/tmp/horizon.prom", cfg.Metrics.File)
}

func TestLoad_FlagOverridesEnv(t *testing.T) {
	t.Setenv("HZ_SEARCH_HORIZON", "20")
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("horizon", 30, "")
	fs.String("log-level", "info", "")
	require.NoError(t, fs.Parse([]string{"--horizon=12"}))

	cfg, err := config.Load("",
		config.Binding{Key: "search.horizon", Flag: fs.Lookup("horizon")},
		config.Binding{Key: "logging.level", Flag: fs.Lookup("log-level")},
		config.Binding{Key: "metrics.file", Flag: fs.Lookup("absent")},
	)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Search.Horizon)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"actors":  "search:\n  actors: 3\n",
		"mode":    "factory:\n  mode: median\n",
		"level":   "logging:\n  level: loud\n",
		"horizon": "search:\n  horizon: -1\n",
		"start":   "search:\n  start: \"\"\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, body))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.Contains(t, err.Error(), name)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_BrokenFile(t *testing.T) {
	_, err := config.Load(writeFile(t, "search: [\n"))
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := config.NewLogger(config.LoggingConfig{Level: "warn", Format: "json"}, &buf)
	require.NoError(t, err)
	log.Info("hidden")
	log.Warn("shown", "n", 1)
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.HasPrefix(out, "{"))
	assert.Contains(t, out, `"msg":"shown"`)

	buf.Reset()
	log, err = config.NewLogger(config.LoggingConfig{Level: "debug", Format: "text"}, &buf)
	require.NoError(t, err)
	log.Debug("visible")
	assert.Contains(t, buf.String(), "msg=visible")

	_, err = config.NewLogger(config.LoggingConfig{Level: "loud", Format: "text"}, &buf)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	_, err = config.NewLogger(config.LoggingConfig{Level: "info", Format: "xml"}, &buf)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

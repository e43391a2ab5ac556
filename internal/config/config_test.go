package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Run("initializes with defaults when no config exists", func(t *testing.T) {
		viper.Reset()
		SetConfigPath("")

		require.NoError(t, Init())

		c := Get()
		assert.Equal(t, 500, c.Controller.SettleIntervalMs)
		assert.Equal(t, 10, c.Dimming.Step)
		assert.Equal(t, "", c.Logging.LogLevel)
	})

	t.Run("reads values from a config file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "splendctl.toml")
		content := `[controller]
settle_interval_ms = 250

[dimming]
step = 5

[logging]
log_level = "debug"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		viper.Reset()
		SetConfigPath(path)
		defer SetConfigPath("")

		require.NoError(t, Init())

		c := Get()
		assert.Equal(t, 250, c.Controller.SettleIntervalMs)
		assert.Equal(t, 5, c.Dimming.Step)
		assert.Equal(t, "debug", c.Logging.LogLevel)
	})

	t.Run("rejects invalid TOML", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "splendctl.toml")
		require.NoError(t, os.WriteFile(path, []byte("[controller\nsettle"), 0644))

		viper.Reset()
		SetConfigPath(path)
		defer SetConfigPath("")

		assert.Error(t, Init())
	})
}

func TestSettleInterval(t *testing.T) {
	c := &Config{Controller: ControllerConfig{SettleIntervalMs: 250}}
	assert.Equal(t, 250*time.Millisecond, c.SettleInterval())
}

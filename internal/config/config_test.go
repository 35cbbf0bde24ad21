package config_test

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusflow/internal/config"
	"github.com/ayoisaiah/focusflow/internal/testutil"
)

// defaultConfig returns a new Config instance with default values.
func defaultConfig() *config.Config {
	return &config.Config{
		Store: config.StoreConfig{
			Driver: config.DriverBolt,
		},
		Timer: config.TimerConfig{
			Focus: 25,
			Rest:  5,
			Tick:  time.Second,
		},
		Settings: config.SettingsConfig{
			Notify: true,
		},
		Display: config.DisplayConfig{
			DarkTheme: true,
		},
		Log: config.LogConfig{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 3,
		},
	}
}

const modifiedConfig = `display:
  dark_theme: false
log:
  level: debug
  max_backups: 1
  max_size: 5
settings:
  ambient_sound: 2
  cmd: notify-send done
  notify: false
store:
  driver: sqlite
  path: /tmp/focusflow.sqlite
timer:
  focus: 50
  rest: 10
  tick: 500ms
`

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "focusflow", "config.yml")

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)

	_, err = os.Stat(configPath)
	require.NoError(t, err)

	// the written file reads back to the same settings
	again, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestViperReadConfig(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "modified.yml")
	configPath := filepath.Join(dir, "config.yml")

	require.NoError(t, os.WriteFile(src, []byte(modifiedConfig), 0o600))
	require.NoError(t, testutil.CopyFile(src, configPath))

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	want := &config.Config{
		Store: config.StoreConfig{
			Driver: config.DriverSQLite,
			Path:   "/tmp/focusflow.sqlite",
		},
		Timer: config.TimerConfig{
			Focus: 50,
			Rest:  10,
			Tick:  500 * time.Millisecond,
		},
		Settings: config.SettingsConfig{
			Cmd:          "notify-send done",
			AmbientSound: 2,
			Notify:       false,
		},
		Display: config.DisplayConfig{
			DarkTheme: false,
		},
		Log: config.LogConfig{
			Level:      "debug",
			MaxSize:    5,
			MaxBackups: 1,
		},
	}

	assert.Equal(t, want, cfg)
}

func TestCLIOverrides(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	f := flag.NewFlagSet("start", flag.ContinueOnError)
	_ = f.Int("focus", 0, "")
	_ = f.Int("rest", 0, "")
	_ = f.Bool("dry-run", false, "")
	_ = f.Bool("disable-notification", false, "")
	_ = f.String("cmd", "", "")

	require.NoError(t, f.Parse([]string{
		"-focus", "45",
		"-dry-run",
		"-disable-notification",
		"-cmd", "echo done",
	}))

	ctx := cli.NewContext(&cli.App{}, f, nil)

	cfg, err := config.New(
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)
	require.NoError(t, err)

	assert.Equal(t, 45, cfg.Timer.Focus)
	assert.Equal(t, 5, cfg.Timer.Rest)
	assert.Equal(t, config.DriverMemory, cfg.Store.Driver)
	assert.False(t, cfg.Settings.Notify)
	assert.Equal(t, "echo done", cfg.Settings.Cmd)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(c *config.Config)
		msg    string
	}{
		{
			name:   "unknown driver",
			modify: func(c *config.Config) { c.Store.Driver = "postgres" },
			msg:    "unknown store driver: postgres",
		},
		{
			name:   "zero focus",
			modify: func(c *config.Config) { c.Timer.Focus = 0 },
			msg:    "focus duration must be between 1 and 720 minutes, got 0",
		},
		{
			name:   "rest too long",
			modify: func(c *config.Config) { c.Timer.Rest = 721 },
			msg:    "rest duration must be between 1 and 720 minutes, got 721",
		},
		{
			name:   "zero tick",
			modify: func(c *config.Config) { c.Timer.Tick = 0 },
			msg:    "timer tick must be positive",
		},
		{
			name:   "negative sound",
			modify: func(c *config.Config) { c.Settings.AmbientSound = -1 },
			msg:    "ambient sound id cannot be negative",
		},
		{
			name:   "bad log level",
			modify: func(c *config.Config) { c.Log.Level = "loud" },
			msg:    "unknown log level: loud",
		},
	}

	require.NoError(t, defaultConfig().Validate())

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := defaultConfig()
			tc.modify(c)

			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFill(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		require.Equal(t, Default(), Fill(Config{}))
	})

	t.Run("partial", func(t *testing.T) {
		cfg := Fill(Config{
			NET: NET{ReadBufferSize: 4096},
			Log: Log{Format: FormatJSON},
		})

		require.Equal(t, 4096, cfg.NET.ReadBufferSize)
		require.Equal(t, Default().NET.Addr, cfg.NET.Addr)
		require.Equal(t, FormatJSON, cfg.Log.Format)
		require.Equal(t, "info", cfg.Log.Level)
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid", func(t *testing.T) {
		path := filepath.Join(dir, "valid.json")
		data := `{"net": {"addr": "0.0.0.0:8080", "read_timeout": "5s"}, "static": {"root": "/srv/www"}}`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "0.0.0.0:8080", cfg.NET.Addr)
		require.Equal(t, Duration(5*time.Second), cfg.NET.ReadTimeout)
		require.Equal(t, "/srv/www", cfg.Static.Root)
		require.Equal(t, Default().NET.ReadBufferSize, cfg.NET.ReadBufferSize)
	})

	t.Run("bad duration", func(t *testing.T) {
		path := filepath.Join(dir, "duration.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"net": {"read_timeout": "90 parsecs"}}`), 0o600))

		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		path := filepath.Join(dir, "malformed.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"net": `), 0o600))

		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nonexistent.json"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestDuration(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		for input, want := range map[string]time.Duration{
			`"90s"`:   90 * time.Second,
			`"1m30s"`: 90 * time.Second,
			`"250ms"`: 250 * time.Millisecond,
			`"0s"`:    0,
		} {
			var d Duration
			require.NoError(t, d.UnmarshalJSON([]byte(input)), input)
			require.Equal(t, Duration(want), d, input)
		}
	})

	t.Run("nanoseconds", func(t *testing.T) {
		var d Duration
		require.NoError(t, d.UnmarshalJSON([]byte("5000000000")))
		require.Equal(t, Duration(5*time.Second), d)
	})

	t.Run("invalid", func(t *testing.T) {
		for _, input := range []string{`"90"`, `"soon"`, `true`, `1.5`, `"90s`} {
			var d Duration
			require.Error(t, d.UnmarshalJSON([]byte(input)), input)
		}
	})

	t.Run("marshal", func(t *testing.T) {
		data, err := Duration(90 * time.Second).MarshalJSON()
		require.NoError(t, err)
		require.Equal(t, `"1m30s"`, string(data))
	})
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvPublicPath, "/var/www")
	t.Setenv(EnvAddr, "localhost:9090")

	cfg := FromEnv(Default())
	require.Equal(t, "/var/www", cfg.Static.Root)
	require.Equal(t, "localhost:9090", cfg.NET.Addr)
}

func TestLog_Build(t *testing.T) {
	for _, format := range []string{"console", "JSON", "Console", "json"} {
		logger, err := Log{Level: "debug", Format: format}.Build()
		require.NoError(t, err, format)
		require.NotNil(t, logger)
	}

	_, err := Log{Level: "info", Format: "xml"}.Build()
	require.Error(t, err)

	_, err = Log{Level: "verbose", Format: "json"}.Build()
	require.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "hugecalc.yaml")
	require.NoError(t, os.WriteFile(name, []byte(content), 0o600))
	return name
}

func TestLoad(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		want    Config
	}{
		{"empty", "", Default()},
		{"precision only", "precision: 10\n", Config{Precision: 10, LogLevel: "warn"}},
		{"all fields", "precision: 3\nlog_level: debug\n", Config{Precision: 3, LogLevel: "debug"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Load(writeFile(t, tc.content))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error opening config file")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := Load(writeFile(t, "precision: 3\nrounding: half_even\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error parsing config file")
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := Load(writeFile(t, "precision: many\n"))
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	require.NoError(t, Default().Validate())
	require.NoError(t, Config{Precision: 0, LogLevel: "error"}.Validate())

	err := Config{Precision: -1, LogLevel: "warn"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "precision")

	err = Config{Precision: 1, LogLevel: "loud"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
}

func TestMerge(t *testing.T) {
	cfg := Default()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--precision", "7"}))

	cfg.Merge(Config{Precision: 20, LogLevel: "debug"}, fs)

	assert.Equal(t, 7, cfg.Precision, "flag must take precedence over the file")
	assert.Equal(t, "debug", cfg.LogLevel, "unset flag must take the file value")
}

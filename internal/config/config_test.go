// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvmatrix/internal/config"
	"github.com/katalvlaran/lvmatrix/matrix"
)

// Tests here use t.Setenv and therefore cannot run in parallel.

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MATCALC_CONFIG", "")

	c, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, config.LogLevelWarn, c.Log.Level)
	require.Equal(t, matrix.DefaultPrecision, c.Output.Precision)
	require.True(t, c.Output.Styled)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\noutput:\n  precision: 3\n  styled: false\n"), 0o600))
	t.Setenv("MATCALC_CONFIG", path)
	t.Setenv("MATCALC_OUTPUT_PRECISION", "2")

	c, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, config.LogLevelDebug, c.Log.Level)
	require.Equal(t, 2, c.Output.Precision)
	require.False(t, c.Output.Styled)
}

func TestLoadRejectsBadPrecision(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MATCALC_CONFIG", "")
	t.Setenv("MATCALC_OUTPUT_PRECISION", "40")

	_, err := config.Load()
	require.Error(t, err)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("MATCALC_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := config.Load()
	require.Error(t, err)
}

func TestLogLevelZap(t *testing.T) {
	t.Parallel()

	cases := map[config.LogLevel]zapcore.Level{
		config.LogLevelDebug: zapcore.DebugLevel,
		"information":        zapcore.InfoLevel,
		"warning":            zapcore.WarnLevel,
		config.LogLevelError: zapcore.ErrorLevel,
		"bogus":              zapcore.WarnLevel,
	}
	for in, want := range cases {
		require.Equal(t, want, in.Zap().Level(), in.String())
	}

	l, err := config.LogConfig{Level: config.LogLevelInfo}.NewLogger()
	require.NoError(t, err)
	require.True(t, l.Core().Enabled(zapcore.InfoLevel))
	require.False(t, l.Core().Enabled(zapcore.DebugLevel))
}

package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitAndLevelString(t *testing.T) {
	defer Init("info")

	Init("debug")
	require.Equal(t, "debug", LevelString())
	Init("WARN")
	require.Equal(t, "warn", LevelString())
	Init("Error")
	require.Equal(t, "error", LevelString())
	Init("nonsense")
	require.Equal(t, "info", LevelString())
}

func TestLevelFiltering(t *testing.T) {
	defer Init("info")

	core, logs := observer.New(level)
	restore := replace(zap.New(core))
	defer restore()

	Init("warn")
	Debugf("debug-%s", "msg")
	Infof("info-%s", "msg")
	Warnf("warn-%s", "msg")
	Errorf("error-%s", "msg")

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "warn-msg", entries[0].Message)
	require.Equal(t, zapcore.WarnLevel, entries[0].Level)
	require.Equal(t, "error-msg", entries[1].Message)

	Init("info")
	Infof("hello")
	require.Equal(t, 1, logs.FilterMessage("hello").Len())
}

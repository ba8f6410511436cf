package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, logrus.DebugLevel, ParseLevel("debug"))
	require.Equal(t, logrus.WarnLevel, ParseLevel("warning"))
	require.Equal(t, logrus.ErrorLevel, ParseLevel("error"))
	require.Equal(t, logrus.InfoLevel, ParseLevel(""))
	require.Equal(t, logrus.InfoLevel, ParseLevel("bogus"))
}

func TestNewWithService(t *testing.T) {
	log := NewWithService("debug", "agebook")
	require.Equal(t, logrus.DebugLevel, log.GetLevel())

	entry := logrus.NewEntry(log)
	for _, h := range log.Hooks[logrus.InfoLevel] {
		require.NoError(t, h.Fire(entry))
	}
	require.Equal(t, "agebook", entry.Data["service"])
}

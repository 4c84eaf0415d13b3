package utils

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestAppFieldHookTagsEntries(t *testing.T) {
	logger := logrus.New()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.AddHook(&appFieldHook{app: "gestion-locative"})

	logger.Info("démarrage")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "gestion-locative", entry["app"])
	require.Equal(t, "démarrage", entry["msg"])
}

func TestInitLoggerLevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	InitLogger("test")
	require.Equal(t, logrus.DebugLevel, Logger.GetLevel())

	t.Setenv("LOG_LEVEL", "pas-un-niveau")
	InitLogger("test")
	require.Equal(t, logrus.InfoLevel, Logger.GetLevel())
}

func TestInitLoggerJSONFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "json")
	InitLogger("test")

	_, ok := Logger.Formatter.(*logrus.JSONFormatter)
	require.True(t, ok)
}

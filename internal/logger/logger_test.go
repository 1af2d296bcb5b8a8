package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/nais/tenant-rollout/internal/config"
	"github.com/nais/tenant-rollout/internal/logger"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		log, err := logger.New(config.Logger{Format: "json", Level: "debug"})
		require.NoError(t, err)
		assert.Equal(t, logrus.DebugLevel, log.GetLevel())

		buf := &bytes.Buffer{}
		log.SetOutput(buf)
		log.WithField("deployment_id", "tenant1").Info("starting execution of deployment pipeline")

		entry := map[string]any{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "tenant1", entry["deployment_id"])
		assert.Equal(t, "info", entry["level"])
	})

	t.Run("text", func(t *testing.T) {
		log, err := logger.New(config.Logger{Format: "TEXT", Level: "warn"})
		require.NoError(t, err)
		assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)
		assert.Equal(t, logrus.WarnLevel, log.GetLevel())
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := logger.New(config.Logger{Format: "yaml", Level: "info"})
		assert.EqualError(t, err, `invalid log format: "yaml"`)
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := logger.New(config.Logger{Format: "json", Level: "loud"})
		assert.Error(t, err)
	})
}

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter(t *testing.T) {
	t.Run("json output carries service name", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewWithWriter(&buf, "info", "json")
		log.Info("hello", "request_id", "r1")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "hello", line["msg"])
		assert.Equal(t, "benefitd", line["service"])
		assert.Equal(t, "r1", line["request_id"])
	})

	t.Run("level filters lower records", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewWithWriter(&buf, "warn", "text")
		log.Info("dropped")
		assert.Empty(t, buf.String())
		log.Warn("kept")
		assert.Contains(t, buf.String(), "kept")
	})
}

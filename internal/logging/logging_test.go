package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{name: "json", level: "info", format: "json"},
		{name: "console", level: "debug", format: "console"},
		{name: "default format", level: "warn", format: ""},
		{name: "invalid level", level: "loud", format: "json", wantErr: true},
		{name: "invalid format", level: "info", format: "xml", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			logger, err := New(tt.level, tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, logger)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestNewWithWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := NewWithWriter("info", "json", &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("transformed")
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "transformed", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.NotContains(t, buf.String(), "hidden")
}

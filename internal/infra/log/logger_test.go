package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"fabquote/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "", want: slog.LevelInfo},
		{in: "debug", want: slog.LevelDebug},
		{in: "WARN", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger_TagsServiceAndEnv(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = "staging"
	cfg.Env.ServiceName = "fabquote"
	cfg.Env.Log.Level = "info"

	var buf bytes.Buffer
	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Debug("dropped")
	logger.Info("kept", slog.String("quotation_id", "q-1"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "kept", record["msg"])
	assert.Equal(t, "fabquote", record["service"])
	assert.Equal(t, "staging", record["env"])
	assert.Equal(t, "q-1", record["quotation_id"])
}

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		json      bool
		debug     bool
		wantDebug bool
	}{
		{"console info", false, false, false},
		{"json debug", true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.json, tt.debug)
			require.NoError(t, err)
			require.NotNil(t, log)
			assert.Equal(t, tt.wantDebug, log.Core().Enabled(zapcore.DebugLevel))
			assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
		})
	}
}

func TestTruncateForLog(t *testing.T) {
	assert.Equal(t, "", TruncateForLog("abc", 0))
	assert.Equal(t, "abc", TruncateForLog("  abc  ", 5))
	assert.Equal(t, "パリで...", TruncateForLog("パリで見るべき場所", 3))
}

func TestStringFields(t *testing.T) {
	fields := StringFields(
		StringField{Key: "  provider  ", Value: "  azure-openai  "},
		StringField{Key: "ignored", Value: "   "},
		StringField{Key: "   ", Value: "empty key"},
	)

	require.Len(t, fields, 1)
	assert.Equal(t, "provider", fields[0].Key)
	assert.Equal(t, "azure-openai", fields[0].String)
	assert.Empty(t, StringFields())
}

func TestWithIntegration(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	WithIntegration(zap.New(core), "answer", "azure-openai", "").Info("called")

	entries := observed.All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "answer", ctx[FieldIntegration])
	assert.Equal(t, "azure-openai", ctx[FieldProvider])
	assert.NotContains(t, ctx, FieldModel)
}

func TestWithFields_NilLogger(t *testing.T) {
	log := WithFields(nil, zap.String("k", "v"))
	require.NotNil(t, log)
	log.Info("does not panic")
}

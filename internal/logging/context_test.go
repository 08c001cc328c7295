// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRequestID(t *testing.T) {
	a := GenerateRequestID()
	b := GenerateRequestID()

	_, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestIDFromContext(ctx))

	ctx = ContextWithRequestID(ctx, "req-1")
	assert.Equal(t, "req-1", RequestIDFromContext(ctx))

	// An inner value shadows the outer one.
	inner := ContextWithRequestID(ctx, "req-2")
	assert.Equal(t, "req-2", RequestIDFromContext(inner))
	assert.Equal(t, "req-1", RequestIDFromContext(ctx))
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTestLogger(&buf).With().Str("component", "api").Logger()

	ctx := ContextWithLogger(context.Background(), logger)
	l := LoggerFromContext(ctx)
	l.Info().Msg("hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "api", entry["component"])
	assert.Equal(t, "hello", entry["message"])
}

func TestLoggerFromContext_FallsBackToGlobal(t *testing.T) {
	var buf bytes.Buffer
	prev := Logger()
	SetLogger(NewTestLogger(&buf))
	t.Cleanup(func() { SetLogger(prev) })

	l := LoggerFromContext(context.Background())
	l.Info().Msg("global")
	assert.Contains(t, buf.String(), `"message":"global"`)
}

func TestCtx(t *testing.T) {
	tests := []struct {
		name      string
		requestID string
		wantField bool
	}{
		{"with request id", "abc-123", true},
		{"without request id", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ctx := ContextWithLogger(context.Background(), NewTestLogger(&buf))
			if tt.requestID != "" {
				ctx = ContextWithRequestID(ctx, tt.requestID)
			}

			Ctx(ctx).Info().Msg("served")

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			id, ok := entry["request_id"]
			assert.Equal(t, tt.wantField, ok)
			if tt.wantField {
				assert.Equal(t, tt.requestID, id)
			}
		})
	}
}

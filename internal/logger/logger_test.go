package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithContext_AddsRequestFields(t *testing.T) {
	var buf bytes.Buffer
	prev := Default()
	SetDefault(New(&buf, "info"))
	t.Cleanup(func() { SetDefault(prev) })

	ctx := ContextWithRequestID(context.Background(), "req-1")
	ctx = ContextWithUserEmail(ctx, "a@x.com")
	InfoContext(ctx, "room listed", "room_id", "r1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "room listed", entry["msg"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "a@x.com", entry["user_email"])
	assert.Equal(t, "r1", entry["room_id"])
}

func TestNew_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "info").Debug("hidden")
	assert.Zero(t, buf.Len())

	New(&buf, "debug").Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	return entry
}

// ── NewLogger ────────────────────────────────────────────────────────────────

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("server")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "server", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

// ── NewClientLogger ──────────────────────────────────────────────────────────

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console.log")
	l := NewClientLogger("console", path)

	l.Warn().Str("domain", "idCardConfig").Msg("dropped keys")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	entry := decodeEntry(t, data)
	assert.Equal(t, "console", entry["role"])
	assert.Equal(t, "idCardConfig", entry["domain"])
	assert.Equal(t, "warn", entry["level"])
}

// ── SetLevel ─────────────────────────────────────────────────────────────────

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	SetLevel("WARN")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	SetLevel("not-a-level")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	SetLevel("")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

// ── Nop / GetChildLogger ─────────────────────────────────────────────────────

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("inherited-role")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)
	child.Info().Msg("child message")

	assert.Equal(t, "inherited-role", decodeEntry(t, buf.Bytes())["role"])
}

// ── FromContext / FromRequest ────────────────────────────────────────────────

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("ctx-key", "ctx-value").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")

	assert.Equal(t, "ctx-value", decodeEntry(t, buf.Bytes())["ctx-key"])
}

func TestFromContext_NeverNil(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "abc").Logger()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")

	assert.Equal(t, "abc", decodeEntry(t, buf.Bytes())["trace_id"])
}

package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"":        Info,
		"debug":   Debug,
		" WARN ":  Warn,
		"warning": Warn,
		"error":   Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestJSONOutputIncludesAppAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "animal-zoo", Output: &buf})

	l.With(map[string]any{"caller": "u-1"}).Info("zoo borrow", map[string]any{"category": "fish"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "zoo borrow", entry["msg"])
	assert.Equal(t, "animal-zoo", entry["app"])
	assert.Equal(t, "u-1", entry["caller"])
	assert.Equal(t, "fish", entry["category"])
	assert.Equal(t, "INFO", entry["level"])
}

func TestLevelFiltersLowerEntries(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Format: FormatText, Output: &buf})

	l.Info("hidden", nil)
	l.Warn("shown", map[string]any{"": "ignored"})

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.Contains(out, "shown"))
}

func TestNopDiscards(t *testing.T) {
	l := Nop()
	// Solo verifica que no paniquea con y sin campos.
	l.Error("x", nil)
	l.With(map[string]any{"k": "v"}).Debug("y", map[string]any{"a": 1})
}

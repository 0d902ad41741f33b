package logger_test

import (
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/schemakit/pkg/logger"
)

type kind string

func (k kind) String() string { return string(k) }

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	tests := []struct {
		name string
		got  slog.Attr
		want slog.Attr
	}{
		{"schema type", logger.SchemaType("int"), slog.String("schema_type", "int")},
		{"variant", logger.Variant("int_constrained"), slog.String("variant", "int_constrained")},
		{"cache hit", logger.CacheHit(true), slog.Bool("cache_hit", true)},
		{"kind", logger.Kind(kind("int_multiple")), slog.String("kind", "int_multiple")},
		{"field", logger.Field("items.0"), slog.String("field", "items.0")},
		{"failures", logger.Failures(3), slog.Int("failures", 3)},
		{"component", logger.Component("engine"), slog.String("component", "engine")},
		{"empty field", logger.Field(""), slog.Attr{}},
		{"nil kind", logger.Kind(nil), slog.Attr{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.got.Equal(tt.want), "got %v, want %v", tt.got, tt.want)
		})
	}
}

func TestFingerprint(t *testing.T) {
	short := logger.Fingerprint(`{"type":"int"}`)
	assert.Equal(t, `{"type":"int"}`, short.Value.String())

	long := logger.Fingerprint(strings.Repeat("x", 100))
	assert.Len(t, long.Value.String(), 67)
	assert.True(t, strings.HasSuffix(long.Value.String(), "..."))
}

package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// SchemaType records the declared schema type under the key "schema_type".
func SchemaType(typ string) slog.Attr {
	return slog.String("schema_type", typ)
}

// Variant records the selected validator variant under the key "variant".
func Variant(name string) slog.Attr {
	return slog.String("variant", name)
}

// Fingerprint records a schema fingerprint under the key "fingerprint".
// Long fingerprints are truncated to keep records readable.
func Fingerprint(fp string) slog.Attr {
	const maxLen = 64
	if len(fp) > maxLen {
		fp = fp[:maxLen] + "..."
	}
	return slog.String("fingerprint", fp)
}

// CacheHit records whether a compiled validator came from cache.
func CacheHit(hit bool) slog.Attr {
	return slog.Bool("cache_hit", hit)
}

// Kind records a validation failure kind under the key "kind".
func Kind(kind interface{ String() string }) slog.Attr {
	if kind == nil {
		return slog.Attr{}
	}
	return slog.String("kind", kind.String())
}

// Field records a failing location under the key "field".
// Empty locations are omitted.
func Field(field string) slog.Attr {
	if field == "" {
		return slog.Attr{}
	}
	return slog.String("field", field)
}

// Failures records the number of failures under the key "failures".
func Failures(n int) slog.Attr {
	return slog.Int("failures", n)
}

package validator_test

import (
	"context"
	"testing"

	"github.com/dmitrymomot/schemakit/pkg/schema"
	"github.com/dmitrymomot/schemakit/pkg/validator"
)

func BenchmarkIntValidator(b *testing.B) {
	v := validator.MustBuild(schema.Schema{"type": "int"})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = v.Validate(42)
	}
}

func BenchmarkConstrainedIntValidator(b *testing.B) {
	v := validator.MustBuild(schema.Schema{"type": "int", "multiple_of": 2, "ge": 0, "le": 1000})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = v.Validate(42)
	}
}

func BenchmarkConstrainedIntValidator_Failure(b *testing.B) {
	v := validator.MustBuild(schema.Schema{"type": "int", "le": 10})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = v.Validate(11)
	}
}

func BenchmarkObjectValidator(b *testing.B) {
	v := validator.MustBuild(userSchema())
	input := map[string]any{"name": "Ann", "age": 30, "tags": []string{"a", "b"}}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = v.Validate(input)
	}
}

func BenchmarkCompiler_CacheHit(b *testing.B) {
	c := validator.NewCompiler()
	s := userSchema()
	ctx := context.Background()
	c.MustCompile(ctx, s)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Compile(ctx, s)
	}
}

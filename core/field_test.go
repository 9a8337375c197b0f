package core

import (
	"errors"
	"testing"
	"time"
)

func TestField_StringValue(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  string
	}{
		{
			name:  "String field",
			field: Field{Type: StringType, Str: "hello"},
			want:  "hello",
		},
		{
			name:  "Int field",
			field: Field{Type: IntType, Int64: 42},
			want:  "42",
		},
		{
			name:  "Int64 field",
			field: Field{Type: Int64Type, Int64: 1234567890},
			want:  "1234567890",
		},
		{
			name:  "Bool field (true)",
			field: Field{Type: BoolType, Int64: 1},
			want:  "true",
		},
		{
			name:  "Bool field (false)",
			field: Field{Type: BoolType, Int64: 0},
			want:  "false",
		},
		{
			name:  "Float64 field",
			field: Field{Type: Float64Type, Float64: 3.14},
			want:  "3.14",
		},
		{
			name:  "Duration field",
			field: Field{Type: DurationType, Int64: int64(5 * time.Second)},
			want:  "5s",
		},
		{
			name:  "Error field",
			field: Field{Type: ErrorType, Str: "an error occurred"},
			want:  "an error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.field.StringValue(); got != tt.want {
				t.Errorf("Field.StringValue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnyField(t *testing.T) {
	now := time.Unix(1700000000, 0)
	errBoom := errors.New("boom")
	type custom struct{ N int }

	tests := []struct {
		name     string
		val      any
		wantType FieldType
		want     any
	}{
		{"string", "x", StringType, "x"},
		{"int", 123, IntType, 123},
		{"int64", int64(7), Int64Type, int64(7)},
		{"float64", 2.5, Float64Type, 2.5},
		{"bool", true, BoolType, true},
		{"time", now, TimeType, now},
		{"duration", time.Second, DurationType, time.Second},
		{"error", errBoom, ErrorType, errBoom},
		{"struct", custom{N: 1}, AnyType, custom{N: 1}},
		{"nil", nil, AnyType, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := AnyField("k", tt.val)
			if f.Key != "k" {
				t.Errorf("Key = %q, want k", f.Key)
			}
			if f.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", f.Type, tt.wantType)
			}
			got := f.Value()
			if gt, ok := got.(time.Time); ok {
				if !gt.Equal(tt.want.(time.Time)) {
					t.Errorf("Value() = %v, want %v", got, tt.want)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Value() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFieldMap_LastWriteWins(t *testing.T) {
	m := FieldMap([]Field{
		AnyField("a", 1),
		AnyField("b", "x"),
		AnyField("a", 2),
	})
	if len(m) != 2 {
		t.Fatalf("len = %d, want 2", len(m))
	}
	if m["a"] != 2 {
		t.Errorf("a = %v, want 2", m["a"])
	}
	if FieldMap(nil) != nil {
		t.Error("FieldMap(nil) should be nil")
	}
}

func BenchmarkFieldStringValue(b *testing.B) {
	fields := []Field{
		{Type: StringType, Str: "test"},
		{Type: IntType, Int64: 42},
		{Type: BoolType, Int64: 1},
		{Type: Float64Type, Float64: 3.14},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, f := range fields {
			_ = f.StringValue()
		}
	}
}

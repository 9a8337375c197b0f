package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplate_RendersAndBindsHoles(t *testing.T) {
	tmpl := NewTemplate("Order {OrderId} processed for {Customer}", 123, "Test")

	assert.Equal(t, "Order 123 processed for Test", tmpl.String())

	fields := FieldMap(tmpl.Fields())
	require.Len(t, fields, 3)
	assert.Equal(t, 123, fields["OrderId"])
	assert.Equal(t, "Test", fields["Customer"])
	assert.Equal(t, "Order {OrderId} processed for {Customer}", fields[OriginalFormatKey])
}

func TestTemplate_NoHolesIsStillStructured(t *testing.T) {
	var state any = NewTemplate("Test message 1")

	s, ok := state.(Structured)
	require.True(t, ok)
	fields := s.Fields()
	require.Len(t, fields, 1)
	assert.Equal(t, OriginalFormatKey, fields[0].Key)
}

func TestTemplate_EdgeCases(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		args       []any
		want       string
		wantFields map[string]any
	}{
		{
			name:       "escaped braces",
			format:     "{{literal}} {Name}",
			args:       []any{"x"},
			want:       "{literal} x",
			wantFields: map[string]any{"Name": "x"},
		},
		{
			name:       "missing argument renders hole verbatim",
			format:     "{A} and {B}",
			args:       []any{1},
			want:       "1 and {B}",
			wantFields: map[string]any{"A": 1},
		},
		{
			name:       "surplus arguments ignored",
			format:     "{A}",
			args:       []any{1, 2},
			want:       "1",
			wantFields: map[string]any{"A": 1},
		},
		{
			name:       "format suffix and destructure prefix",
			format:     "took {Elapsed:0.00} for {@User}",
			args:       []any{1.5, "bob"},
			want:       "took 1.5 for bob",
			wantFields: map[string]any{"Elapsed": 1.5, "User": "bob"},
		},
		{
			name:       "unterminated hole",
			format:     "broken {Name",
			args:       []any{"x"},
			want:       "broken {Name",
			wantFields: map[string]any{},
		},
		{
			name:       "repeated name last write wins",
			format:     "{A} {A}",
			args:       []any{1, 2},
			want:       "1 2",
			wantFields: map[string]any{"A": 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := NewTemplate(tt.format, tt.args...)
			assert.Equal(t, tt.want, tmpl.String())

			got := FieldMap(tmpl.Fields())
			delete(got, OriginalFormatKey)
			assert.Equal(t, tt.wantFields, got)
		})
	}
}

func TestEvent_Structured(t *testing.T) {
	ev := NewEvent("checkout", AnyField("cart_items", 3))
	assert.Equal(t, "checkout", ev.String())
	assert.Equal(t, map[string]any{"cart_items": 3}, FieldMap(ev.Fields()))
}

func BenchmarkTemplate_String(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = NewTemplate("Order {OrderId} processed for {Customer}", 123, "Test").String()
	}
}

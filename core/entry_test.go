package core

import (
	"testing"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{TraceLevel, "TRACE"},
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
		{CriticalLevel, "CRITICAL"},
		{NoneLevel, "NONE"},
		{Level(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevel_Ordering(t *testing.T) {
	ordered := []Level{TraceLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel, CriticalLevel}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Errorf("%v should be below %v", ordered[i-1], ordered[i])
		}
	}
	if Level(-1).Valid() || !CriticalLevel.Valid() {
		t.Error("Valid() mismatch")
	}
}

func TestEventID_String(t *testing.T) {
	tests := []struct {
		id   EventID
		want string
	}{
		{EventID{}, "0"},
		{EventID{ID: 12}, "12"},
		{EventID{Name: "OrderPlaced"}, "OrderPlaced"},
		{EventID{ID: 12, Name: "OrderPlaced"}, "12:OrderPlaced"},
	}

	for _, tt := range tests {
		if got := tt.id.String(); got != tt.want {
			t.Errorf("EventID.String() = %q, want %q", got, tt.want)
		}
	}
	if !(EventID{}).IsZero() || (EventID{ID: 1}).IsZero() {
		t.Error("IsZero() mismatch")
	}
}

func TestEntry_Keys(t *testing.T) {
	e := Entry{Fields: map[string]any{"b": 1, "a": 2, "c": 3}}
	keys := e.Keys()
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Errorf("Keys() = %v, want [a b c]", keys)
	}
	if v, ok := e.Field("a"); !ok || v != 2 {
		t.Errorf("Field(a) = %v, %v", v, ok)
	}
}

func TestGetCaller(t *testing.T) {
	caller := GetCaller(0)
	if !caller.Defined {
		t.Fatal("GetCaller() returned undefined CallerInfo")
	}

	if caller.File == "" {
		t.Error("Expected non-empty file")
	}
	if caller.ShortFile == "" {
		t.Error("Expected non-empty short file")
	}
	if caller.Line == 0 {
		t.Error("Expected non-zero line number")
	}
	if caller.Function == "" {
		t.Error("Expected non-empty function name")
	}
}

func BenchmarkFieldMap(b *testing.B) {
	fields := []Field{
		AnyField("key1", "value1"),
		AnyField("key2", 42),
		AnyField("key3", true),
	}
	for i := 0; i < b.N; i++ {
		_ = FieldMap(fields)
	}
}

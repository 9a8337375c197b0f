package core

import (
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"time"
)

// EventID identifies the kind of a logged event. The zero value means
// no event id was supplied.
type EventID struct {
	ID   int
	Name string
}

// IsZero reports whether the event id is unset
func (e EventID) IsZero() bool {
	return e.ID == 0 && e.Name == ""
}

// String returns "id", "name" or "id:name" depending on which parts are set
func (e EventID) String() string {
	switch {
	case e.Name == "":
		return strconv.Itoa(e.ID)
	case e.ID == 0:
		return e.Name
	default:
		return strconv.Itoa(e.ID) + ":" + e.Name
	}
}

// Entry represents one captured log event with all its metadata.
// Entries are immutable once built; Fields must not be modified by
// whoever receives an Entry.
type Entry struct {
	Time     time.Time
	Category string
	Level    Level
	EventID  EventID
	Message  string
	Err      error
	Fields   map[string]any
	Caller   CallerInfo
}

// Field returns the value stored under key
func (e *Entry) Field(key string) (any, bool) {
	v, ok := e.Fields[key]
	return v, ok
}

// Keys returns the field names in sorted order
func (e *Entry) Keys() []string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FieldMap collapses fields into a map. Duplicate keys resolve to the
// last occurrence. It returns nil for an empty slice.
func FieldMap(fields []Field) map[string]any {
	if len(fields) == 0 {
		return nil
	}
	m := make(map[string]any, len(fields))
	for _, f := range fields {
		m[f.Key] = f.Value()
	}
	return m
}

// CallerInfo contains information about the caller
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// GetCaller retrieves caller information
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  funcName,
		Defined:   true,
	}
}

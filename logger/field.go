package logger

import (
	"fmt"
	"time"

	"github.com/philipp01105/canonlog/core"
)

// ErrorKey is the field key used by Err.
const ErrorKey = "error"

func String(key, val string) core.Field {
	return core.Field{Key: key, Type: core.StringType, Str: val}
}

func Int(key string, val int) core.Field {
	return core.Field{Key: key, Type: core.IntType, Int64: int64(val)}
}

func Int64(key string, val int64) core.Field {
	return core.Field{Key: key, Type: core.Int64Type, Int64: val}
}

func Float64(key string, val float64) core.Field {
	return core.Field{Key: key, Type: core.Float64Type, Float64: val}
}

func Bool(key string, val bool) core.Field {
	f := core.Field{Key: key, Type: core.BoolType}
	if val {
		f.Int64 = 1
	}
	return f
}

// Time stores val with nanosecond precision; the location is not kept.
func Time(key string, val time.Time) core.Field {
	return core.Field{Key: key, Type: core.TimeType, Int64: val.UnixNano()}
}

func Duration(key string, val time.Duration) core.Field {
	return core.Field{Key: key, Type: core.DurationType, Int64: int64(val)}
}

// Stringer renders val lazily at field construction time.
func Stringer(key string, val fmt.Stringer) core.Field {
	if val == nil {
		return String(key, "<nil>")
	}
	return String(key, val.String())
}

// Err creates an error field under ErrorKey. A nil error yields an empty
// string value.
func Err(err error) core.Field {
	f := core.Field{Key: ErrorKey, Type: core.ErrorType}
	if err != nil {
		f.Str, f.Any = err.Error(), err
	}
	return f
}

// Any infers the most specific field type for val.
func Any(key string, val any) core.Field {
	return core.AnyField(key, val)
}

package logger

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/philipp01105/canonlog/core"
)

// ScopeKey is the field name used for scopes whose state is not structured.
const ScopeKey = "scope"

type scopeKey struct{}

type scopeFrame struct {
	state  any
	parent *scopeFrame
}

// WithScope returns a context carrying state as the innermost scope
func WithScope(ctx context.Context, state any) context.Context {
	parent, _ := ctx.Value(scopeKey{}).(*scopeFrame)
	return context.WithValue(ctx, scopeKey{}, &scopeFrame{state: state, parent: parent})
}

// ScopeStates returns the scope states in ctx, outermost first
func ScopeStates(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}
	var states []any
	for f, _ := ctx.Value(scopeKey{}).(*scopeFrame); f != nil; f = f.parent {
		states = append(states, f.state)
	}
	for i, j := 0, len(states)-1; i < j; i, j = i+1, j-1 {
		states[i], states[j] = states[j], states[i]
	}
	return states
}

// ScopeFields flattens the scopes in ctx into fields. Structured scopes
// contribute their fields, inner scopes after outer ones; all other
// scopes are joined into a single ScopeKey field ("outer => inner").
func ScopeFields(ctx context.Context) []core.Field {
	states := ScopeStates(ctx)
	if len(states) == 0 {
		return nil
	}

	var fields []core.Field
	var plain []string
	for _, s := range states {
		if st, ok := s.(core.Structured); ok {
			for _, f := range st.Fields() {
				if f.Key != core.OriginalFormatKey {
					fields = append(fields, f)
				}
			}
			continue
		}
		plain = append(plain, fmt.Sprint(s))
	}
	if len(plain) > 0 {
		fields = append(fields, String(ScopeKey, strings.Join(plain, " => ")))
	}
	return fields
}

type scopeHandle struct {
	once    sync.Once
	release func() error
	err     error
}

// NewScope returns a Scope that runs release exactly once, on the first
// Close. A nil release yields a no-op scope.
func NewScope(release func() error) Scope {
	return &scopeHandle{release: release}
}

func (s *scopeHandle) Close() error {
	s.once.Do(func() {
		if s.release != nil {
			s.err = s.release()
		}
	})
	return s.err
}

// NopScope is a Scope whose Close does nothing.
var NopScope Scope = NewScope(nil)

// EventFields returns the scope fields of ctx followed by the fields of
// state when it is structured. core.OriginalFormatKey is left out, for
// backends that have no use for the raw template.
func EventFields(ctx context.Context, state any) []core.Field {
	fields := ScopeFields(ctx)
	if st, ok := state.(core.Structured); ok {
		for _, f := range st.Fields() {
			if f.Key != core.OriginalFormatKey {
				fields = append(fields, f)
			}
		}
	}
	return fields
}

package core

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
)

// OriginalFormatKey is the field under which a Template reports its raw
// message template.
const OriginalFormatKey = "{OriginalFormat}"

// maxCachedTemplates bounds the parse cache so that templates built from
// dynamic strings cannot grow it without limit.
const maxCachedTemplates = 1024

var (
	templateCache     sync.Map // format string -> *parsedTemplate
	templateCacheSize atomic.Int64
)

type segment struct {
	literal string
	hole    string // hole name, empty for literal text
	raw     string // hole text including braces
}

type parsedTemplate struct {
	segments []segment
	holes    int
}

// Template is structured state built from a message template such as
// "Order {OrderId} processed for {Customer}". Holes are bound to args by
// position. "{{" and "}}" escape literal braces, and anything after a ':'
// or ',' inside a hole is ignored when naming the field.
//
// A hole without a matching argument is rendered verbatim and produces no
// field; surplus arguments are ignored.
type Template struct {
	format string
	args   []any
	parsed *parsedTemplate
}

// NewTemplate creates a Template
func NewTemplate(format string, args ...any) *Template {
	return &Template{format: format, args: args, parsed: parseTemplate(format)}
}

// Format returns the raw message template
func (t *Template) Format() string {
	return t.format
}

// Args returns the positional arguments
func (t *Template) Args() []any {
	return t.args
}

// Fields returns one field per bound hole followed by OriginalFormatKey.
func (t *Template) Fields() []Field {
	fields := make([]Field, 0, t.parsed.holes+1)
	n := 0
	for _, s := range t.parsed.segments {
		if s.hole == "" {
			continue
		}
		if n >= len(t.args) {
			break
		}
		fields = append(fields, AnyField(s.hole, t.args[n]))
		n++
	}
	return append(fields, Field{Key: OriginalFormatKey, Type: StringType, Str: t.format})
}

// String renders the template with its arguments substituted
func (t *Template) String() string {
	var b strings.Builder
	b.Grow(len(t.format))
	n := 0
	for _, s := range t.parsed.segments {
		if s.hole == "" {
			b.WriteString(s.literal)
			continue
		}
		if n < len(t.args) {
			b.WriteString(fmt.Sprint(t.args[n]))
			n++
		} else {
			b.WriteString(s.raw)
		}
	}
	return b.String()
}

func parseTemplate(format string) *parsedTemplate {
	if p, ok := templateCache.Load(format); ok {
		return p.(*parsedTemplate)
	}

	p := &parsedTemplate{}
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			p.segments = append(p.segments, segment{literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(format); i++ {
		c := format[i]
		switch {
		case c == '{' && i+1 < len(format) && format[i+1] == '{':
			lit.WriteByte('{')
			i++
		case c == '}' && i+1 < len(format) && format[i+1] == '}':
			lit.WriteByte('}')
			i++
		case c == '{':
			end := strings.IndexByte(format[i+1:], '}')
			if end < 0 {
				// unterminated hole, keep the rest as text
				lit.WriteString(format[i:])
				i = len(format)
				continue
			}
			raw := format[i : i+end+2]
			name := holeName(format[i+1 : i+1+end])
			if name == "" {
				lit.WriteString(raw)
			} else {
				flush()
				p.segments = append(p.segments, segment{hole: name, raw: raw})
				p.holes++
			}
			i += end + 1
		default:
			lit.WriteByte(c)
		}
	}
	flush()

	if templateCacheSize.Load() < maxCachedTemplates {
		if _, loaded := templateCache.LoadOrStore(format, p); !loaded {
			templateCacheSize.Add(1)
		}
	}
	return p
}

func holeName(s string) string {
	if j := strings.IndexAny(s, ",:"); j >= 0 {
		s = s[:j]
	}
	return strings.TrimLeft(strings.TrimSpace(s), "@$")
}

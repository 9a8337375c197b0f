package core

// Structured is implemented by log state that carries named fields.
// State that does not implement it is treated as an opaque value:
// loggers still receive it, but it is never captured.
type Structured interface {
	Fields() []Field
}

// Event is structured state made of a plain message and explicit fields.
type Event struct {
	Message string
	Attrs   []Field
}

// NewEvent creates an Event
func NewEvent(msg string, fields ...Field) Event {
	return Event{Message: msg, Attrs: fields}
}

// Fields returns the event's fields
func (e Event) Fields() []Field {
	return e.Attrs
}

// String returns the event message
func (e Event) String() string {
	return e.Message
}

var (
	_ Structured = Event{}
	_ Structured = (*Template)(nil)
)

// Package core defines the shared types used across canonlog.
//
// It provides the Level type (Trace through Critical), the EventID that
// identifies a kind of logged event, the Field type for typed key-value
// pairs, and the Entry type that represents one captured log event.
//
// Log state is polymorphic. Any value may be passed as state to a logger,
// but only values implementing Structured expose named fields and are
// therefore eligible for capture. Two structured states ship with the
// package: Template, which binds "{Name}" holes in a message template to
// positional arguments, and Event, which pairs a plain message with
// explicit fields.
//
// An Entry is built once, when a log call is accepted, and is never
// modified afterwards. Entries are plain values and are not pooled:
// ownership passes from the capture buffer to whoever flushes it.
package core

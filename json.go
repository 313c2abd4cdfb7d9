// Package json implements a streaming JSON codec: an incremental,
// push-driven parser that delivers SAX-style semantic events as bytes
// arrive, and a writer that emits well-formed JSON with optional
// pretty-printing.
//
// The parser holds no document-sized buffer. Bytes are consumed from
// the caller's own storage and events surface the moment a complete
// token is recognized, so memory use is constant with respect to the
// document: allocations are proportional only to the longest single
// token and to the nesting depth. Input may be fragmented arbitrarily,
// including inside multi-byte UTF-8 sequences, escape sequences,
// surrogate pairs and number exponents; the event sequence is identical
// regardless of how the bytes were chunked.
//
// Input must be UTF-8 per RFC 8259. A leading UTF-8 byte order mark is
// skipped; UTF-16 and UTF-32 byte order marks are rejected.
package json

import (
	"github.com/willabides/json/internal/jsonh"
)

// ContentHandler is the event sink a caller attaches to a Parser. See
// BaseHandler for a no-op implementation to embed.
type ContentHandler = jsonh.ContentHandler

// Locator exposes the 1-based line and column of the most recent event
// or error. The parser passes its locator to the handler through
// SetLocator before any event is delivered.
type Locator = jsonh.Locator

// Number is the tagged numeric payload of a number event. Numbers
// without a fraction or exponent are integers, widened as needed from
// 32-bit through 64-bit to arbitrary precision; anything with '.', 'e'
// or 'E' is a double.
type Number = jsonh.Number

// NumberKind selects the populated variant of a Number.
type NumberKind = jsonh.NumberKind

// The Number variants.
const (
	INT32       = jsonh.INT32
	INT64       = jsonh.INT64
	BIG_INTEGER = jsonh.BIG_INTEGER
	DOUBLE      = jsonh.DOUBLE
)

// Error is the single error kind produced by the codec.
type Error = jsonh.Error

// BaseHandler is a ContentHandler that ignores every event. Embed it to
// implement only the callbacks of interest.
type BaseHandler struct {
	locator Locator
}

// SetLocator stores the parser's locator; retrieve it with Locator.
func (h *BaseHandler) SetLocator(l Locator) { h.locator = l }

// Locator returns the locator of the owning parser, or nil before the
// handler is attached.
func (h *BaseHandler) Locator() Locator { return h.locator }

// NeedsWhitespace reports whether Whitespace events are wanted.
func (h *BaseHandler) NeedsWhitespace() bool { return false }

func (h *BaseHandler) StartObject() error { return nil }
func (h *BaseHandler) EndObject() error { return nil }
func (h *BaseHandler) StartArray() error { return nil }
func (h *BaseHandler) EndArray() error { return nil }
func (h *BaseHandler) Key(name string) error { return nil }
func (h *BaseHandler) StringValue(value string) error { return nil }
func (h *BaseHandler) NumberValue(value Number) error { return nil }
func (h *BaseHandler) BooleanValue(value bool) error { return nil }
func (h *BaseHandler) NullValue() error { return nil }
func (h *BaseHandler) Whitespace(value string) error { return nil }

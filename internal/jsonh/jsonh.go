//
// Copyright (c) 2011-2019 Canonical Ltd
// Copyright (c) 2006-2010 Kirill Simonov
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do
// so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package jsonh

import (
	"math/big"
	"strconv"
)

type Encoding int

// The stream encoding.
const (
	// Not yet determined; the first bytes of the stream decide.
	ANY_ENCODING Encoding = iota

	UTF8_ENCODING    // The default UTF-8 encoding, with or without a BOM.
	UTF16LE_ENCODING // The UTF-16-LE encoding with BOM. Rejected.
	UTF16BE_ENCODING // The UTF-16-BE encoding with BOM. Rejected.
	UTF32LE_ENCODING // The UTF-32-LE encoding with BOM. Rejected.
	UTF32BE_ENCODING // The UTF-32-BE encoding with BOM. Rejected.
)

func (e Encoding) String() string {
	switch e {
	case UTF8_ENCODING:
		return "UTF-8"
	case UTF16LE_ENCODING:
		return "UTF-16 LE"
	case UTF16BE_ENCODING:
		return "UTF-16 BE"
	case UTF32LE_ENCODING:
		return "UTF-32 LE"
	case UTF32BE_ENCODING:
		return "UTF-32 BE"
	}
	return "<unknown encoding>"
}

type ErrorType int

// Many bad things could happen with the parser and emitter.
const (
	// No error is produced.
	NO_ERROR ErrorType = iota

	READER_ERROR  // Cannot decode the input stream.
	SCANNER_ERROR // Cannot tokenize the input stream.
	PARSER_ERROR  // Cannot parse the token sequence.
	WRITER_ERROR  // Cannot write to the output stream.
)

// Error is the single error kind produced by this module. It carries a
// human-readable problem, the 1-based position where the problem was
// detected (zero when unknown), and an optional cause.
type Error struct {
	Type    ErrorType
	Problem string
	Line    int
	Column  int
	Cause   error
}

func (e *Error) Error() string {
	var where string
	if e.Line > 0 {
		where = "line " + strconv.Itoa(e.Line) + ", column " + strconv.Itoa(e.Column) + ": "
	}
	msg := "json: " + where + e.Problem
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

// Position is the pointer position.
type Position struct {
	Index  int // The byte offset into the stream.
	Line   int // The position Line.
	Column int // The position Column.
}

type TokenType int

// Token types.
const (
	// An empty token.
	NO_TOKEN TokenType = iota

	START_OBJECT_TOKEN // A '{' token.
	END_OBJECT_TOKEN   // A '}' token.
	START_ARRAY_TOKEN  // A '[' token.
	END_ARRAY_TOKEN    // A ']' token.
	COMMA_TOKEN        // A ',' token.
	COLON_TOKEN        // A ':' token.
	STRING_TOKEN       // A string literal.
	NUMBER_TOKEN       // A number.
	LITERAL_TOKEN      // One of the keywords true, false, null.
	WHITESPACE_TOKEN   // A run of insignificant whitespace.
)

func (tt TokenType) String() string {
	switch tt {
	case NO_TOKEN:
		return "NO_TOKEN"
	case START_OBJECT_TOKEN:
		return "START_OBJECT_TOKEN"
	case END_OBJECT_TOKEN:
		return "END_OBJECT_TOKEN"
	case START_ARRAY_TOKEN:
		return "START_ARRAY_TOKEN"
	case END_ARRAY_TOKEN:
		return "END_ARRAY_TOKEN"
	case COMMA_TOKEN:
		return "COMMA_TOKEN"
	case COLON_TOKEN:
		return "COLON_TOKEN"
	case STRING_TOKEN:
		return "STRING_TOKEN"
	case NUMBER_TOKEN:
		return "NUMBER_TOKEN"
	case LITERAL_TOKEN:
		return "LITERAL_TOKEN"
	case WHITESPACE_TOKEN:
		return "WHITESPACE_TOKEN"
	}
	return "<unknown token>"
}

type EventType int8

// Event types.
const (
	NO_EVENT EventType = iota

	START_OBJECT_EVENT // A START-OBJECT event.
	END_OBJECT_EVENT   // An END-OBJECT event.
	START_ARRAY_EVENT  // A START-ARRAY event.
	END_ARRAY_EVENT    // An END-ARRAY event.
	KEY_EVENT          // An object KEY event.
	STRING_EVENT       // A string value event.
	NUMBER_EVENT       // A number value event.
	BOOLEAN_EVENT      // A boolean value event.
	NULL_EVENT         // A null value event.
	WHITESPACE_EVENT   // An insignificant-whitespace event.
)

var eventStrings = []string{
	NO_EVENT:           "none",
	START_OBJECT_EVENT: "start object",
	END_OBJECT_EVENT:   "end object",
	START_ARRAY_EVENT:  "start array",
	END_ARRAY_EVENT:    "end array",
	KEY_EVENT:          "key",
	STRING_EVENT:       "string",
	NUMBER_EVENT:       "number",
	BOOLEAN_EVENT:      "boolean",
	NULL_EVENT:         "null",
	WHITESPACE_EVENT:   "whitespace",
}

func (e EventType) String() string {
	if e < 0 || int(e) >= len(eventStrings) {
		return "unknown event " + strconv.Itoa(int(e))
	}
	return eventStrings[e]
}

// The Event structure.
type Event struct {
	// The event type.
	Type EventType

	// The string payload (for KEY_EVENT, STRING_EVENT, WHITESPACE_EVENT).
	Value string

	// The Number payload (for NUMBER_EVENT).
	Number Number

	// The Bool payload (for BOOLEAN_EVENT).
	Bool bool
}

type Container int8

// Container contexts for the structural stack.
const (
	OBJECT_CONTAINER Container = iota
	ARRAY_CONTAINER
)

func (c Container) String() string {
	if c == OBJECT_CONTAINER {
		return "object"
	}
	return "array"
}

type NumberKind int8

// Number variants, in widening order.
const (
	INT32 NumberKind = iota
	INT64
	BIG_INTEGER
	DOUBLE
)

func (k NumberKind) String() string {
	switch k {
	case INT32:
		return "int32"
	case INT64:
		return "int64"
	case BIG_INTEGER:
		return "bigint"
	case DOUBLE:
		return "double"
	}
	return "<unknown number kind>"
}

// Number is the tagged numeric payload of a NUMBER_EVENT. Exactly one
// variant is populated, selected by Kind.
type Number struct {
	Kind NumberKind
	I    int64
	F    float64
	B    *big.Int
}

func Int32Number(v int32) Number { return Number{Kind: INT32, I: int64(v)} }
func Int64Number(v int64) Number { return Number{Kind: INT64, I: v} }
func BigNumber(v *big.Int) Number { return Number{Kind: BIG_INTEGER, B: v} }
func DoubleNumber(v float64) Number { return Number{Kind: DOUBLE, F: v} }

func (n Number) Int32() int32 { return int32(n.I) }
func (n Number) Int64() int64 { return n.I }
func (n Number) Float64() float64 { return n.F }
func (n Number) BigInt() *big.Int { return n.B }

// String renders the canonical JSON form of the number. Doubles use the
// shortest representation that parses back to the same value.
func (n Number) String() string {
	switch n.Kind {
	case BIG_INTEGER:
		return n.B.String()
	case DOUBLE:
		return strconv.FormatFloat(n.F, 'g', -1, 64)
	}
	return strconv.FormatInt(n.I, 10)
}

// Locator exposes the 1-based position of the most recent event or error.
type Locator interface {
	Line() int
	Column() int
}

// ContentHandler is the event sink attached to a parser. Callbacks are
// delivered synchronously, in document order. An error returned from any
// callback aborts the parse and propagates out of Receive unchanged.
//
// Whitespace is reported only when NeedsWhitespace returns true at the
// time the handler is attached.
type ContentHandler interface {
	SetLocator(l Locator)
	NeedsWhitespace() bool
	StartObject() error
	EndObject() error
	StartArray() error
	EndArray() error
	Key(name string) error
	StringValue(value string) error
	NumberValue(value Number) error
	BooleanValue(value bool) error
	NullValue() error
	Whitespace(value string) error
}

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

package json

import (
	"io"
	"math/big"

	"github.com/willabides/json/internal/emitter"
	"github.com/willabides/json/internal/jsonh"
)

// Writer emits well-formed JSON to an io.Writer. Output is buffered;
// call Flush (or Close) to drain it.
//
// Writer implements ContentHandler, so it can be attached directly to a
// Parser to re-serialize a document as it is parsed. Whitespace events
// are ignored - layout is the writer's own concern, controlled with
// SetIndent.
//
// The writer does not validate event ordering; the caller is
// responsible for balanced start/end pairs and for a key before every
// object value.
type Writer struct {
	emitter *emitter.Emitter
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{emitter: emitter.New(w)}
}

// SetIndent enables pretty-printing with the given indent character
// (space or tab) repeated count times per nesting level. Without it the
// writer emits no optional whitespace.
func (w *Writer) SetIndent(char byte, count int) error {
	return w.emitter.SetIndent(char, count)
}

// Flush drains buffered output to the underlying writer.
func (w *Writer) Flush() error {
	return w.emitter.Flush()
}

// Close flushes the writer. The underlying io.Writer is not closed.
func (w *Writer) Close() error {
	return w.emitter.Close()
}

// SetLocator implements ContentHandler; the writer has no use for a
// locator.
func (w *Writer) SetLocator(l Locator) {}

// NeedsWhitespace implements ContentHandler. The writer lays out its
// own whitespace.
func (w *Writer) NeedsWhitespace() bool { return false }

func (w *Writer) StartObject() error {
	return w.emitter.Emit(startObjectEvent())
}

func (w *Writer) EndObject() error {
	return w.emitter.Emit(endObjectEvent())
}

func (w *Writer) StartArray() error {
	return w.emitter.Emit(startArrayEvent())
}

func (w *Writer) EndArray() error {
	return w.emitter.Emit(endArrayEvent())
}

func (w *Writer) Key(name string) error {
	return w.emitter.Emit(keyEvent(name))
}

func (w *Writer) StringValue(value string) error {
	return w.emitter.Emit(stringEvent(value))
}

func (w *Writer) NumberValue(value Number) error {
	return w.emitter.Emit(numberEvent(value))
}

func (w *Writer) BooleanValue(value bool) error {
	return w.emitter.Emit(booleanEvent(value))
}

func (w *Writer) NullValue() error {
	return w.emitter.Emit(nullEvent())
}

// Whitespace implements ContentHandler as a no-op.
func (w *Writer) Whitespace(value string) error { return nil }

// Int32 writes a 32-bit integer value.
func (w *Writer) Int32(value int32) error {
	return w.NumberValue(jsonh.Int32Number(value))
}

// Int64 writes a 64-bit integer value.
func (w *Writer) Int64(value int64) error {
	return w.NumberValue(jsonh.Int64Number(value))
}

// BigInt writes an arbitrary-precision integer value.
func (w *Writer) BigInt(value *big.Int) error {
	return w.NumberValue(jsonh.BigNumber(value))
}

// Double writes a double-precision float value. Non-finite values are
// errors: RFC 8259 has no representation for them.
func (w *Writer) Double(value float64) error {
	return w.NumberValue(jsonh.DoubleNumber(value))
}

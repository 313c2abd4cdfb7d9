package emitter

import (
	"bufio"
	"io"

	"github.com/willabides/json/internal/jsonh"
)

type emitterState int

// The emitter states.
const (
	emitInitialState    emitterState = iota // expect the first token of the document.
	emitOpenedState                         // just after '{' or '[', no children written yet.
	emitAfterKeyState                       // expect the value for a written key.
	emitAfterValueState                     // expect a separator before the next token.
)

// Emitter writes well-formed JSON to an output stream. It tracks only
// enough state to place separators and indentation; it does not validate
// event ordering - the caller is responsible for balanced start/end
// pairs and for a key before every object value.
type Emitter struct {
	writer *bufio.Writer

	// Indentation. A zero indentChar disables all optional whitespace.
	indentChar  byte
	indentCount int

	state emitterState
	depth int
}

func New(w io.Writer) *Emitter {
	return &Emitter{writer: bufio.NewWriter(drainWriter{w})}
}

// drainWriter adapts a sink whose writes may be partial: it keeps
// writing until the whole slice is taken or the sink fails.
type drainWriter struct {
	w io.Writer
}

func (d drainWriter) Write(b []byte) (int, error) {
	written := 0
	for written < len(b) {
		n, err := d.w.Write(b[written:])
		written += n
		if err != nil {
			return written, err
		}
		if n == 0 {
			return written, io.ErrNoProgress
		}
	}
	return written, nil
}

// SetIndent enables pretty-printed output: between every child in a
// container a newline and count*depth indent characters, and a single
// space after each key's colon. The indent character must be a space or
// a tab and the count positive.
func (e *Emitter) SetIndent(char byte, count int) error {
	if char != ' ' && char != '\t' {
		return &jsonh.Error{Type: jsonh.WRITER_ERROR, Problem: "Indent character must be space or tab"}
	}
	if count <= 0 {
		return &jsonh.Error{Type: jsonh.WRITER_ERROR, Problem: "Indent count must be positive"}
	}
	e.indentChar = char
	e.indentCount = count
	return nil
}

// Emit writes a single event.
func (e *Emitter) Emit(event *jsonh.Event) error {
	switch event.Type {
	case jsonh.START_OBJECT_EVENT:
		return emitContainerStart(e, '{')
	case jsonh.END_OBJECT_EVENT:
		return emitContainerEnd(e, '}')
	case jsonh.START_ARRAY_EVENT:
		return emitContainerStart(e, '[')
	case jsonh.END_ARRAY_EVENT:
		return emitContainerEnd(e, ']')
	case jsonh.KEY_EVENT:
		return emitKey(e, event.Value)
	case jsonh.STRING_EVENT:
		return emitScalar(e, func() error { return writeScalar(e, event.Value) })
	case jsonh.NUMBER_EVENT:
		return emitScalar(e, func() error { return writeNumber(e, event.Number) })
	case jsonh.BOOLEAN_EVENT:
		if event.Bool {
			return emitScalar(e, func() error { return e.writeString("true") })
		}
		return emitScalar(e, func() error { return e.writeString("false") })
	case jsonh.NULL_EVENT:
		return emitScalar(e, func() error { return e.writeString("null") })
	}
	return &jsonh.Error{Type: jsonh.WRITER_ERROR, Problem: "Unexpected event: " + event.Type.String()}
}

// Flush drains the output buffer to the underlying writer.
func (e *Emitter) Flush() error {
	err := e.writer.Flush()
	if err != nil {
		return &jsonh.Error{Type: jsonh.WRITER_ERROR, Problem: "Write error", Cause: err}
	}
	return nil
}

// Close flushes the emitter. The underlying writer is not closed.
func (e *Emitter) Close() error {
	return e.Flush()
}

func (e *Emitter) indented() bool {
	return e.indentChar != 0
}

// put a byte on the output buffer.
func (e *Emitter) put(value byte) error {
	err := e.writer.WriteByte(value)
	if err != nil {
		return &jsonh.Error{Type: jsonh.WRITER_ERROR, Problem: "Write error", Cause: err}
	}
	return nil
}

// writeString writes s to the output buffer.
func (e *Emitter) writeString(s string) error {
	_, err := e.writer.WriteString(s)
	if err != nil {
		return &jsonh.Error{Type: jsonh.WRITER_ERROR, Problem: "Write error", Cause: err}
	}
	return nil
}

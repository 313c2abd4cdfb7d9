package emitter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/willabides/json/internal/jsonh"
)

func emitAll(t *testing.T, e *Emitter, events ...*jsonh.Event) {
	t.Helper()
	for _, ev := range events {
		require.NoError(t, e.Emit(ev))
	}
	require.NoError(t, e.Flush())
}

func ev(typ jsonh.EventType) *jsonh.Event { return &jsonh.Event{Type: typ} }

func key(name string) *jsonh.Event {
	return &jsonh.Event{Type: jsonh.KEY_EVENT, Value: name}
}

func str(value string) *jsonh.Event {
	return &jsonh.Event{Type: jsonh.STRING_EVENT, Value: value}
}

func num(value jsonh.Number) *jsonh.Event {
	return &jsonh.Event{Type: jsonh.NUMBER_EVENT, Number: value}
}

func TestEmitCompact(t *testing.T) {
	var buf bytes.Buffer
	e := New(&buf)
	emitAll(t, e,
		ev(jsonh.START_OBJECT_EVENT),
		key("a"),
		num(jsonh.Int32Number(1)),
		key("b"),
		ev(jsonh.START_ARRAY_EVENT),
		str("x"),
		&jsonh.Event{Type: jsonh.BOOLEAN_EVENT, Bool: true},
		&jsonh.Event{Type: jsonh.BOOLEAN_EVENT, Bool: false},
		ev(jsonh.NULL_EVENT),
		ev(jsonh.END_ARRAY_EVENT),
		ev(jsonh.END_OBJECT_EVENT),
	)
	require.Equal(t, `{"a":1,"b":["x",true,false,null]}`, buf.String())
}

// END-ARRAY must close with ']', never with '}', no matter what was
// emitted before it.
func TestEmitEndArrayClosesArray(t *testing.T) {
	var buf bytes.Buffer
	e := New(&buf)
	emitAll(t, e,
		ev(jsonh.START_ARRAY_EVENT),
		ev(jsonh.START_OBJECT_EVENT),
		ev(jsonh.END_OBJECT_EVENT),
		ev(jsonh.END_ARRAY_EVENT),
	)
	require.Equal(t, `[{}]`, buf.String())
}

func TestEmitIndented(t *testing.T) {
	var buf bytes.Buffer
	e := New(&buf)
	require.NoError(t, e.SetIndent(' ', 4))
	emitAll(t, e,
		ev(jsonh.START_OBJECT_EVENT),
		key("deep"),
		ev(jsonh.START_OBJECT_EVENT),
		key("list"),
		ev(jsonh.START_ARRAY_EVENT),
		num(jsonh.Int32Number(1)),
		ev(jsonh.END_ARRAY_EVENT),
		ev(jsonh.END_OBJECT_EVENT),
		ev(jsonh.END_OBJECT_EVENT),
	)
	want := "{\n" +
		"    \"deep\": {\n" +
		"        \"list\": [\n" +
		"            1\n" +
		"        ]\n" +
		"    }\n" +
		"}"
	require.Equal(t, want, buf.String())
}

func TestEmitTopLevelScalar(t *testing.T) {
	var buf bytes.Buffer
	e := New(&buf)
	emitAll(t, e, num(jsonh.Int64Number(4294967296)))
	require.Equal(t, "4294967296", buf.String())
}

func TestEmitUnexpectedEvent(t *testing.T) {
	e := New(&bytes.Buffer{})
	require.ErrorContains(t, e.Emit(ev(jsonh.WHITESPACE_EVENT)), "Unexpected event")
	require.ErrorContains(t, e.Emit(ev(jsonh.NO_EVENT)), "Unexpected event")
}

// A sink whose writes are partial still receives every byte.
type trickleWriter struct {
	buf bytes.Buffer
}

func (w *trickleWriter) Write(b []byte) (int, error) {
	if len(b) > 1 {
		b = b[:1]
	}
	return w.buf.Write(b)
}

func TestPartialSink(t *testing.T) {
	var sink trickleWriter
	e := New(&sink)
	emitAll(t, e,
		ev(jsonh.START_OBJECT_EVENT),
		key("a"),
		str("value"),
		ev(jsonh.END_OBJECT_EVENT),
	)
	require.Equal(t, `{"a":"value"}`, sink.buf.String())
}

func TestWriteScalarEscapes(t *testing.T) {
	var buf bytes.Buffer
	e := New(&buf)
	emitAll(t, e, str("a\"b\\c\x02d\neé"))
	require.Equal(t, `"a\"b\\c\u0002d\ne`+"é"+`"`, buf.String())
}

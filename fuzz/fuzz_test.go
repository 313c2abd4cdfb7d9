package fuzz

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/willabides/json"
)

var testData = []string{
	`{}`,
	`[]`,
	`{"name":"Alice","age":30}`,
	`{"nested":{"a":[1,2,3]}}`,
	`[true, false, null, 1.5e2]`,
	`"héllo 世界"`,
	`"😀"`,
	`"\uD800"`,
	`9223372036854775808`,
	`-12.5e-3`,
	`0`,
	`-0`,
	"\xef\xbb\xbftrue",
	"\xfe\xff\x00t",
	"\xff\xfe\x00\x00",
	"\x00\x00\xfe\xff",
	" \r\n\t{ \"a\" : [ 1 , {} ] }\r\n",
	`[1,]`,
	`{"a":1,}`,
	`01`,
	`1.`,
	`1e+`,
	`-`,
	`"ab\`,
	`"\x"`,
	`"\u004"`,
	"\"\x01\"",
	"\"\xc0\xaf\"",
	`tru`,
	`{"a":`,
	`{} {}`,
	`{"a"`,
	`]`,
}

type eventLog struct {
	json.BaseHandler
	events []string
}

func (h *eventLog) NeedsWhitespace() bool { return true }

func (h *eventLog) StartObject() error { h.events = append(h.events, "{"); return nil }
func (h *eventLog) EndObject() error   { h.events = append(h.events, "}"); return nil }
func (h *eventLog) StartArray() error  { h.events = append(h.events, "["); return nil }
func (h *eventLog) EndArray() error    { h.events = append(h.events, "]"); return nil }

func (h *eventLog) Key(name string) error {
	h.events = append(h.events, "k:"+name)
	return nil
}

func (h *eventLog) StringValue(value string) error {
	h.events = append(h.events, "s:"+value)
	return nil
}

func (h *eventLog) NumberValue(value json.Number) error {
	h.events = append(h.events, fmt.Sprintf("n:%s:%s", value.Kind, value))
	return nil
}

func (h *eventLog) BooleanValue(value bool) error {
	h.events = append(h.events, fmt.Sprintf("b:%v", value))
	return nil
}

func (h *eventLog) NullValue() error { h.events = append(h.events, "null"); return nil }

func (h *eventLog) Whitespace(value string) error {
	h.events = append(h.events, "w:"+value)
	return nil
}

// FuzzParse: arbitrary input must never panic or hang; it either parses
// or reports an error.
func FuzzParse(f *testing.F) {
	for _, s := range testData {
		f.Add([]byte(s))
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		_ = json.Parse(data, &eventLog{})
	})
}

// FuzzFragmentation: delivery in chunks of 1 to 13 bytes must produce
// exactly the events of whole delivery for any input that parses whole,
// and must fail for any input that fails whole.
func FuzzFragmentation(f *testing.F) {
	for i, s := range testData {
		f.Add([]byte(s), uint8(i%7+1))
	}
	f.Fuzz(func(t *testing.T, data []byte, chunk uint8) {
		k := int(chunk)%13 + 1

		whole := &eventLog{}
		wholeErr := json.Parse(data, whole)

		chunked := &eventLog{}
		p := json.NewParser()
		p.SetHandler(chunked)
		var buf []byte
		var chunkedErr error
		for off := 0; off < len(data) && chunkedErr == nil; off += k {
			end := off + k
			if end > len(data) {
				end = len(data)
			}
			buf = append(buf, data[off:end]...)
			var n int
			n, chunkedErr = p.Receive(buf)
			buf = buf[n:]
		}
		if chunkedErr == nil {
			chunkedErr = p.Close()
		}

		if wholeErr == nil {
			require.NoError(t, chunkedErr)
			require.Equal(t, whole.events, chunked.events)
		} else {
			require.Error(t, chunkedErr)
		}
	})
}

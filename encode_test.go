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

package json_test

import (
	"bytes"
	"math"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/willabides/json"
)

func TestWriterCompact(t *testing.T) {
	var buf bytes.Buffer
	w := json.NewWriter(&buf)

	require.NoError(t, w.StartObject())
	require.NoError(t, w.Key("name"))
	require.NoError(t, w.StringValue("Alice"))
	require.NoError(t, w.Key("age"))
	require.NoError(t, w.Int32(30))
	require.NoError(t, w.Key("tags"))
	require.NoError(t, w.StartArray())
	require.NoError(t, w.StringValue("a"))
	require.NoError(t, w.BooleanValue(true))
	require.NoError(t, w.NullValue())
	require.NoError(t, w.EndArray())
	require.NoError(t, w.Key("empty"))
	require.NoError(t, w.StartObject())
	require.NoError(t, w.EndObject())
	require.NoError(t, w.EndObject())
	require.NoError(t, w.Close())

	require.Equal(t, `{"name":"Alice","age":30,"tags":["a",true,null],"empty":{}}`, buf.String())
}

func TestWriterIndented(t *testing.T) {
	var buf bytes.Buffer
	w := json.NewWriter(&buf)
	require.NoError(t, w.SetIndent(' ', 2))

	require.NoError(t, w.StartObject())
	require.NoError(t, w.Key("name"))
	require.NoError(t, w.StringValue("Alice"))
	require.NoError(t, w.Key("list"))
	require.NoError(t, w.StartArray())
	require.NoError(t, w.Int32(1))
	require.NoError(t, w.Int32(2))
	require.NoError(t, w.EndArray())
	require.NoError(t, w.Key("empty"))
	require.NoError(t, w.StartArray())
	require.NoError(t, w.EndArray())
	require.NoError(t, w.EndObject())
	require.NoError(t, w.Flush())

	want := `{
  "name": "Alice",
  "list": [
    1,
    2
  ],
  "empty": []
}`
	require.Equal(t, want, buf.String())
}

func TestWriterIndentedTab(t *testing.T) {
	var buf bytes.Buffer
	w := json.NewWriter(&buf)
	require.NoError(t, w.SetIndent('\t', 1))

	require.NoError(t, w.StartArray())
	require.NoError(t, w.StartObject())
	require.NoError(t, w.Key("a"))
	require.NoError(t, w.BooleanValue(false))
	require.NoError(t, w.EndObject())
	require.NoError(t, w.EndArray())
	require.NoError(t, w.Flush())

	require.Equal(t, "[\n\t{\n\t\t\"a\": false\n\t}\n]", buf.String())
}

func TestWriterSetIndentValidation(t *testing.T) {
	w := json.NewWriter(&bytes.Buffer{})
	require.ErrorContains(t, w.SetIndent('x', 2), "space or tab")
	require.ErrorContains(t, w.SetIndent(' ', 0), "positive")
	require.ErrorContains(t, w.SetIndent(' ', -1), "positive")
}

func TestWriterEscaping(t *testing.T) {
	for _, tt := range []struct {
		value string
		want  string
	}{
		{"plain", `"plain"`},
		{"say \"hi\"", `"say \"hi\""`},
		{"back\\slash", `"back\\slash"`},
		{"\b\f\n\r\t", `"\b\f\n\r\t"`},
		{"\x01\x1f", `"\u0001\u001f"`},
		{"héllo 世界", "\"héllo 世界\""},
		{"😀", "\"😀\""}, // four-byte UTF-8, no \u escaping
		{"/", `"/"`},   // the solidus needs no escape on output
	} {
		var buf bytes.Buffer
		w := json.NewWriter(&buf)
		require.NoError(t, w.StringValue(tt.value))
		require.NoError(t, w.Flush())
		require.Equal(t, tt.want, buf.String())
	}
}

func TestWriterNumbers(t *testing.T) {
	var buf bytes.Buffer
	w := json.NewWriter(&buf)

	big1, ok := new(big.Int).SetString("9223372036854775808", 10)
	require.True(t, ok)

	require.NoError(t, w.StartArray())
	require.NoError(t, w.Int32(-42))
	require.NoError(t, w.Int64(4294967296))
	require.NoError(t, w.BigInt(big1))
	require.NoError(t, w.Double(1.5))
	require.NoError(t, w.Double(1e21))
	require.NoError(t, w.EndArray())
	require.NoError(t, w.Flush())

	require.Equal(t, `[-42,4294967296,9223372036854775808,1.5,1e+21]`, buf.String())
}

func TestWriterNonFiniteNumbers(t *testing.T) {
	w := json.NewWriter(&bytes.Buffer{})
	require.ErrorContains(t, w.Double(math.NaN()), "non-finite")
	require.ErrorContains(t, w.Double(math.Inf(1)), "non-finite")
	require.ErrorContains(t, w.Double(math.Inf(-1)), "non-finite")
}

// Parsing into a Writer reproduces escape-free compact documents byte
// for byte.
func TestRoundTripBytes(t *testing.T) {
	for _, doc := range []string{
		`{"name":"Alice","age":30}`,
		`{"nested":{"a":[1,2,3]},"b":[]}`,
		`[true,false,null]`,
		`"hi"`,
		`-5`,
		`9223372036854775808`,
		`{}`,
	} {
		var buf bytes.Buffer
		w := json.NewWriter(&buf)
		require.NoError(t, json.Parse([]byte(doc), w))
		require.NoError(t, w.Flush())
		require.Equal(t, doc, buf.String())
	}
}

// For any valid input, parse -> serialize -> parse is idempotent: both
// parses deliver the same events.
func TestRoundTripIdempotent(t *testing.T) {
	for _, doc := range []string{
		`{"name":"Alice","b":"😀"}`,
		"[1.25e2, -0.5, {\"k\":\t[null]}]",
		`{"escape":"a\"b\\c\nd"}`,
	} {
		first := &recorder{}
		require.NoError(t, json.Parse([]byte(doc), first))

		var buf bytes.Buffer
		w := json.NewWriter(&buf)
		require.NoError(t, json.Parse([]byte(doc), w))
		require.NoError(t, w.Flush())

		second := &recorder{}
		require.NoError(t, json.Parse(buf.Bytes(), second), buf.String())
		require.Empty(t, cmp.Diff(first.events, second.events), doc)
	}
}

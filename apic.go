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
	"github.com/willabides/json/internal/jsonh"
)

// Create START-OBJECT.
func startObjectEvent() *jsonh.Event {
	return &jsonh.Event{
		Type: jsonh.START_OBJECT_EVENT,
	}
}

// Create END-OBJECT.
func endObjectEvent() *jsonh.Event {
	return &jsonh.Event{
		Type: jsonh.END_OBJECT_EVENT,
	}
}

// Create START-ARRAY.
func startArrayEvent() *jsonh.Event {
	return &jsonh.Event{
		Type: jsonh.START_ARRAY_EVENT,
	}
}

// Create END-ARRAY.
func endArrayEvent() *jsonh.Event {
	return &jsonh.Event{
		Type: jsonh.END_ARRAY_EVENT,
	}
}

// Create KEY.
func keyEvent(name string) *jsonh.Event {
	return &jsonh.Event{
		Type:  jsonh.KEY_EVENT,
		Value: name,
	}
}

// Create STRING.
func stringEvent(value string) *jsonh.Event {
	return &jsonh.Event{
		Type:  jsonh.STRING_EVENT,
		Value: value,
	}
}

// Create NUMBER.
func numberEvent(value jsonh.Number) *jsonh.Event {
	return &jsonh.Event{
		Type:   jsonh.NUMBER_EVENT,
		Number: value,
	}
}

// Create BOOLEAN.
func booleanEvent(value bool) *jsonh.Event {
	return &jsonh.Event{
		Type: jsonh.BOOLEAN_EVENT,
		Bool: value,
	}
}

// Create NULL.
func nullEvent() *jsonh.Event {
	return &jsonh.Event{
		Type: jsonh.NULL_EVENT,
	}
}

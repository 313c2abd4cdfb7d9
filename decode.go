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
	"github.com/willabides/json/internal/parserc"
)

// Parser is a push-driven JSON parser. A parser is constructed idle,
// starts parsing on the first Receive and becomes terminal on Close;
// Reset restores it to idle for another document. A Parser is not safe
// for concurrent use.
type Parser struct {
	parser *parserc.JSONParser
}

func NewParser() *Parser {
	return &Parser{parser: parserc.New()}
}

// SetHandler attaches the event sink. The handler is given the parser's
// locator immediately, and its NeedsWhitespace answer is captured at
// this point.
func (p *Parser) SetHandler(h ContentHandler) {
	p.parser.SetHandler(h)
}

// Receive pushes the next chunk of the document and returns the number
// of bytes consumed. Anything unconsumed is the start of an incomplete
// token: the caller must keep those bytes and re-present them, with
// more data appended, on the next call. The parser never retains a
// reference to data.
//
// Handler callbacks run synchronously, in document order, before
// Receive returns. On any error - lexical, structural or propagated
// from the handler - the parser enters a failed state and every later
// call returns the same error.
func (p *Parser) Receive(data []byte) (int, error) {
	return p.parser.Receive(data)
}

// Close finalizes the document, failing if it is incomplete. Close is
// idempotent.
func (p *Parser) Close() error {
	return p.parser.Close()
}

// Reset restores the parser to its idle state for another document,
// keeping the attached handler.
func (p *Parser) Reset() {
	p.parser.Reset()
}

// Line returns the 1-based line of the most recent event or error.
func (p *Parser) Line() int { return p.parser.Line() }

// Column returns the 1-based column of the most recent event or error.
func (p *Parser) Column() int { return p.parser.Column() }

// Parse feeds a complete document through a new Parser in one call and
// closes it.
func Parse(data []byte, h ContentHandler) error {
	p := NewParser()
	p.SetHandler(h)
	for len(data) > 0 {
		n, err := p.Receive(data)
		if err != nil {
			return err
		}
		data = data[n:]
		if n == 0 {
			// The rest is an incomplete token; Close completes or
			// reports it.
			break
		}
	}
	return p.Close()
}

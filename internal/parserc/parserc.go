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

package parserc

import (
	"github.com/willabides/json/internal/jsonh"
)

// The structural state machine implements the following grammar:
//
//	document     ::= value
//	value        ::= object | array | STRING | NUMBER | LITERAL
//	object       ::= START-OBJECT (member (COMMA member)*)? END-OBJECT
//	member       ::= STRING COLON value
//	array        ::= START-ARRAY (value (COMMA value)*)? END-ARRAY
//
// Each completed token advances the state; whitespace never reaches the
// machine. The container stack and the state stay mutually consistent:
// PARSE_KEY_STATE implies the top of the stack is an object, and a comma
// in PARSE_AFTER_VALUE_STATE returns to PARSE_KEY_STATE when the top is
// an object and to PARSE_VALUE_STATE when it is an array.

// scanToken is a completed token on its way into the state machine.
type scanToken struct {
	typ    jsonh.TokenType
	mark   jsonh.Position
	value  string       // STRING_TOKEN
	number jsonh.Number // NUMBER_TOKEN
	word   string       // LITERAL_TOKEN
}

func buildParserError(parser *JSONParser, mark jsonh.Position, problem string) error {
	parser.tokenMark = mark
	return &jsonh.Error{
		Type:    jsonh.PARSER_ERROR,
		Problem: problem,
		Line:    mark.Line + 1,
		Column:  mark.Column + 1,
	}
}

func tokenSymbol(typ jsonh.TokenType) string {
	switch typ {
	case jsonh.START_OBJECT_TOKEN:
		return "{"
	case jsonh.END_OBJECT_TOKEN:
		return "}"
	case jsonh.START_ARRAY_TOKEN:
		return "["
	case jsonh.END_ARRAY_TOKEN:
		return "]"
	case jsonh.COMMA_TOKEN:
		return ","
	case jsonh.COLON_TOKEN:
		return ":"
	case jsonh.STRING_TOKEN:
		return "string"
	case jsonh.NUMBER_TOKEN:
		return "number"
	case jsonh.LITERAL_TOKEN:
		return "literal"
	}
	return "?"
}

// Receive pushes the next chunk of the document. The parser consumes as
// many bytes as it can and returns the consumed count; the unconsumed
// tail is the start of an incomplete token, which the caller must keep
// and re-present (after appending more data) on the next call. Handler
// callbacks fire synchronously, in document order, before Receive
// returns.
//
// The chunk is never retained: only a copy of the incomplete tail,
// bounded by one token, is carried so Close can finish the document.
func (parser *JSONParser) Receive(data []byte) (int, error) {
	if parser.failed != nil {
		return 0, parser.failed
	}
	if parser.closed {
		return 0, parser.fail(&jsonh.Error{Type: jsonh.PARSER_ERROR, Problem: "Cannot receive data after close()"})
	}
	if parser.handler == nil {
		return 0, parser.fail(&jsonh.Error{Type: jsonh.PARSER_ERROR, Problem: "No content handler set"})
	}

	parser.input = data
	parser.pos = 0
	parser.pendingKind = PENDING_NONE
	err := json_parser_scan(parser)
	n := parser.pos
	parser.input = nil
	if err != nil {
		return n, parser.fail(err)
	}
	if n < len(data) {
		parser.pending = append(parser.pending[:0], data[n:]...)
	} else {
		parser.pending = parser.pending[:0]
	}
	return n, nil
}

// Close finalizes the document. The incomplete tail of the last Receive
// is drained first - a number or whitespace run is completed by the end
// of input, while a partial string or keyword is an error. The document
// must then contain exactly one complete value. Close is idempotent.
func (parser *JSONParser) Close() error {
	if parser.failed != nil {
		return parser.failed
	}
	if parser.closed {
		return nil
	}
	parser.closed = true

	parser.input = parser.pending
	parser.pos = 0
	err := json_parser_scan(parser)
	parser.input = nil
	parser.pending = parser.pending[:0]
	if err != nil {
		return parser.fail(err)
	}

	if !parser.sawToken {
		return parser.fail(buildParserError(parser, parser.Mark, "No data"))
	}
	if len(parser.stack) > 0 {
		problem := "Unclosed array"
		if parser.stack[len(parser.stack)-1] == jsonh.OBJECT_CONTAINER {
			problem = "Unclosed object"
		}
		return parser.fail(buildParserError(parser, parser.Mark, problem))
	}
	if parser.state != PARSE_AFTER_VALUE_STATE {
		return parser.fail(buildParserError(parser, parser.Mark, "Incomplete token at end of input"))
	}
	return nil
}

// fail latches the first error; every later Receive or Close returns it
// again. Handler errors pass through here unchanged.
func (parser *JSONParser) fail(err error) error {
	if parser.failed == nil {
		parser.failed = err
	}
	return parser.failed
}

// State dispatcher, one function per structural state.
func json_parser_process_token(parser *JSONParser, token *scanToken) error {
	parser.tokenMark = token.mark
	parser.sawToken = true
	switch parser.state {
	case PARSE_VALUE_STATE:
		return json_parser_parse_value(parser, token)
	case PARSE_KEY_STATE:
		return json_parser_parse_key(parser, token)
	case PARSE_COLON_STATE:
		return json_parser_parse_colon(parser, token)
	case PARSE_AFTER_VALUE_STATE:
		return json_parser_parse_after_value(parser, token)
	}
	panic("invalid parser state")
}

// Emit the handler event for a scalar value token.
func json_parser_emit_scalar(parser *JSONParser, token *scanToken) error {
	switch token.typ {
	case jsonh.STRING_TOKEN:
		return parser.handler.StringValue(token.value)
	case jsonh.NUMBER_TOKEN:
		return parser.handler.NumberValue(token.number)
	}
	switch token.word {
	case "true":
		return parser.handler.BooleanValue(true)
	case "false":
		return parser.handler.BooleanValue(false)
	}
	return parser.handler.NullValue()
}

// Expect a value. This is the initial state, the state after '[', ':'
// and an array comma.
func json_parser_parse_value(parser *JSONParser, token *scanToken) error {
	switch token.typ {
	case jsonh.START_OBJECT_TOKEN:
		parser.stack = append(parser.stack, jsonh.OBJECT_CONTAINER)
		parser.afterComma = false
		parser.state = PARSE_KEY_STATE
		return parser.handler.StartObject()

	case jsonh.START_ARRAY_TOKEN:
		parser.stack = append(parser.stack, jsonh.ARRAY_CONTAINER)
		parser.afterComma = false
		parser.state = PARSE_VALUE_STATE
		return parser.handler.StartArray()

	case jsonh.END_ARRAY_TOKEN:
		// Legal only when closing an empty array: this state was entered
		// straight from '[' (a comma on the way sets afterComma).
		if len(parser.stack) > 0 && parser.stack[len(parser.stack)-1] == jsonh.ARRAY_CONTAINER {
			if parser.afterComma {
				return buildParserError(parser, token.mark, "Trailing comma before ']'")
			}
			parser.stack = parser.stack[:len(parser.stack)-1]
			parser.state = PARSE_AFTER_VALUE_STATE
			return parser.handler.EndArray()
		}
		return buildParserError(parser, token.mark, "Unexpected ']'")

	case jsonh.STRING_TOKEN, jsonh.NUMBER_TOKEN, jsonh.LITERAL_TOKEN:
		parser.afterComma = false
		parser.state = PARSE_AFTER_VALUE_STATE
		return json_parser_emit_scalar(parser, token)

	default:
		return buildParserError(parser, token.mark, "Unexpected '"+tokenSymbol(token.typ)+"'")
	}
}

// Expect an object key or the end of the object.
func json_parser_parse_key(parser *JSONParser, token *scanToken) error {
	switch token.typ {
	case jsonh.STRING_TOKEN:
		parser.afterComma = false
		parser.state = PARSE_COLON_STATE
		return parser.handler.Key(token.value)

	case jsonh.END_OBJECT_TOKEN:
		if parser.afterComma {
			return buildParserError(parser, token.mark, "Trailing comma before '}'")
		}
		parser.stack = parser.stack[:len(parser.stack)-1]
		parser.state = PARSE_AFTER_VALUE_STATE
		return parser.handler.EndObject()

	default:
		return buildParserError(parser, token.mark, "Unexpected '"+tokenSymbol(token.typ)+"'")
	}
}

// Expect the colon between a key and its value.
func json_parser_parse_colon(parser *JSONParser, token *scanToken) error {
	if token.typ == jsonh.COLON_TOKEN {
		parser.state = PARSE_VALUE_STATE
		return nil
	}
	return buildParserError(parser, token.mark, "Unexpected '"+tokenSymbol(token.typ)+"'")
}

// Expect a comma or the end of the enclosing container.
func json_parser_parse_after_value(parser *JSONParser, token *scanToken) error {
	if len(parser.stack) == 0 {
		return buildParserError(parser, token.mark, "Trailing content after document")
	}
	top := parser.stack[len(parser.stack)-1]
	switch token.typ {
	case jsonh.COMMA_TOKEN:
		parser.afterComma = true
		if top == jsonh.OBJECT_CONTAINER {
			parser.state = PARSE_KEY_STATE
		} else {
			parser.state = PARSE_VALUE_STATE
		}
		return nil

	case jsonh.END_OBJECT_TOKEN:
		if top != jsonh.OBJECT_CONTAINER {
			return buildParserError(parser, token.mark, "Unexpected '}'")
		}
		parser.stack = parser.stack[:len(parser.stack)-1]
		return parser.handler.EndObject()

	case jsonh.END_ARRAY_TOKEN:
		if top != jsonh.ARRAY_CONTAINER {
			return buildParserError(parser, token.mark, "Unexpected ']'")
		}
		parser.stack = parser.stack[:len(parser.stack)-1]
		return parser.handler.EndArray()

	default:
		return buildParserError(parser, token.mark, "Unexpected '"+tokenSymbol(token.typ)+"'")
	}
}

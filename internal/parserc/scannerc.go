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
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/willabides/json/internal/common"
	"github.com/willabides/json/internal/jsonh"
	"github.com/willabides/json/internal/resolve"
)

// Introduction
// ************
//
// The scanner consumes characters from the window the caller pushed and
// turns them into tokens, feeding each completed token to the structural
// state machine in parserc.go, which in turn drives the content handler.
//
// The single delicate invariant is rewind-on-underflow: the window may
// end anywhere, including inside a multi-byte UTF-8 sequence, an escape
// sequence, a surrogate pair, or a number exponent. Whenever a token
// cannot complete before the window is exhausted (and the stream is not
// closed), the cursor and the line/column mark are restored to the start
// of that token and the scan returns. The caller keeps the unconsumed
// tail and re-presents it with more data, so incomplete tokens are
// simply re-scanned from their first character on the next call. No
// structural state and no handler call happens for a token until it has
// fully completed.
//
// Tokens:
//
//	START-OBJECT            # '{'
//	END-OBJECT              # '}'
//	START-ARRAY             # '['
//	END-ARRAY               # ']'
//	COMMA                   # ','
//	COLON                   # ':'
//	STRING                  # '"'-delimited, with escapes
//	NUMBER                  # strict RFC 8259 grammar
//	LITERAL                 # 'true', 'false' or 'null'
//	WHITESPACE              # a run of space, tab, CR, LF

// scanSnapshot captures everything a rewind must restore.
type scanSnapshot struct {
	pos       int
	mark      jsonh.Position
	crPending bool
}

func json_parser_snapshot(parser *JSONParser) scanSnapshot {
	return scanSnapshot{pos: parser.pos, mark: parser.Mark, crPending: parser.crPending}
}

// Restore the cursor and mark to the start of the incomplete token and
// record what kind of token is pending. Returns false for use as the
// "token complete" result.
func json_parser_rewind(parser *JSONParser, snap scanSnapshot, kind pendingToken) bool {
	parser.pos = snap.pos
	parser.Mark = snap.mark
	parser.crPending = snap.crPending
	parser.pendingKind = kind
	return false
}

// Set the scanner error and return it. The locator is left pointing at
// the offending token.
func newScannerError(parser *JSONParser, mark jsonh.Position, problem string) error {
	parser.tokenMark = mark
	return &jsonh.Error{
		Type:    jsonh.SCANNER_ERROR,
		Problem: problem,
		Line:    mark.Line + 1,
		Column:  mark.Column + 1,
	}
}

// skip advances past a single-byte character, maintaining the mark. CR,
// LF and CRLF each count as exactly one line boundary.
func skip(parser *JSONParser) byte {
	c := parser.input[parser.pos]
	parser.pos++
	parser.Mark.Index++
	switch {
	case c == '\r':
		parser.Mark.Line++
		parser.Mark.Column = 0
		parser.crPending = true
	case c == '\n':
		if !parser.crPending {
			parser.Mark.Line++
			parser.Mark.Column = 0
		}
		parser.crPending = false
	default:
		parser.Mark.Column++
		parser.crPending = false
	}
	return c
}

// skipWide advances past a multi-byte character of the given width.
func skipWide(parser *JSONParser, width int) {
	parser.pos += width
	parser.Mark.Index += width
	parser.Mark.Column++
	parser.crPending = false
}

// json_parser_scan consumes as many complete tokens from the current
// window as possible. It stops at the first token it cannot complete,
// leaving the cursor at that token's first byte.
func json_parser_scan(parser *JSONParser) error {
	for {
		if !parser.bomChecked {
			ok, err := json_parser_determine_encoding(parser)
			if err != nil {
				return err
			}
			if !ok {
				json_parser_rewind(parser, json_parser_snapshot(parser), PENDING_BOM)
				return nil
			}
			parser.bomChecked = true
		}
		if parser.pos >= len(parser.input) {
			return nil
		}
		done, err := json_parser_scan_token(parser)
		if err != nil {
			return err
		}
		if !done {
			return nil
		}
	}
}

// The dispatcher for token scanners. Dispatch is on the first character
// of the token.
func json_parser_scan_token(parser *JSONParser) (bool, error) {
	snap := json_parser_snapshot(parser)
	c := parser.input[parser.pos]

	switch {
	case c == '{':
		skip(parser)
		return true, json_parser_process_token(parser, &scanToken{typ: jsonh.START_OBJECT_TOKEN, mark: snap.mark})
	case c == '}':
		skip(parser)
		return true, json_parser_process_token(parser, &scanToken{typ: jsonh.END_OBJECT_TOKEN, mark: snap.mark})
	case c == '[':
		skip(parser)
		return true, json_parser_process_token(parser, &scanToken{typ: jsonh.START_ARRAY_TOKEN, mark: snap.mark})
	case c == ']':
		skip(parser)
		return true, json_parser_process_token(parser, &scanToken{typ: jsonh.END_ARRAY_TOKEN, mark: snap.mark})
	case c == ',':
		skip(parser)
		return true, json_parser_process_token(parser, &scanToken{typ: jsonh.COMMA_TOKEN, mark: snap.mark})
	case c == ':':
		skip(parser)
		return true, json_parser_process_token(parser, &scanToken{typ: jsonh.COLON_TOKEN, mark: snap.mark})
	case c == '"':
		return json_parser_scan_string(parser, snap)
	case c == '-' || c >= '0' && c <= '9':
		return json_parser_scan_number(parser, snap)
	case c == 't':
		return json_parser_scan_literal(parser, snap, "true")
	case c == 'f':
		return json_parser_scan_literal(parser, snap, "false")
	case c == 'n':
		return json_parser_scan_literal(parser, snap, "null")
	case jsonh.Is_space(c):
		return json_parser_scan_whitespace(parser, snap)
	default:
		return false, newScannerError(parser, snap.mark, fmt.Sprintf("Unexpected character: %q", c))
	}
}

// Scan a STRING token.
//
// Extraction is two-phase: while no escape has been seen the token is a
// plain slice of the window, materialized only at emission. The first
// backslash switches to the scratch buffer, which accumulates the
// resolved characters. On underflow the whole string is re-scanned from
// the opening quote on the next call, so no escape state needs to
// survive between calls.
func json_parser_scan_string(parser *JSONParser, snap scanSnapshot) (bool, error) {
	skip(parser) // the opening quote
	start := parser.pos
	useScratch := false
	parser.scratch = parser.scratch[:0]

	// An escaped high surrogate awaiting its low half, or 0.
	var highSurrogate rune

	// flushSurrogate resolves a dangling high surrogate to U+FFFD, the
	// value a UTF-16 consumer observes for an unpaired code unit.
	flushSurrogate := func() {
		if highSurrogate != 0 {
			parser.scratch = utf8.AppendRune(parser.scratch, utf8.RuneError)
			highSurrogate = 0
		}
	}

	for {
		if parser.pos >= len(parser.input) {
			if parser.closed {
				return false, newScannerError(parser, snap.mark, "Unclosed string")
			}
			return json_parser_rewind(parser, snap, PENDING_STRING), nil
		}
		c := parser.input[parser.pos]

		switch {
		case c == '"':
			flushSurrogate()
			var value string
			if useScratch {
				value = string(parser.scratch)
			} else {
				value = string(parser.input[start:parser.pos])
			}
			skip(parser)
			err := json_parser_process_token(parser, &scanToken{typ: jsonh.STRING_TOKEN, mark: snap.mark, value: value})
			json_parser_trim_scratch(parser)
			return true, err

		case c == '\\':
			if !useScratch {
				if parser.scratch == nil {
					parser.scratch = make([]byte, 0, jsonh.Initial_scratch_size)
				}
				parser.scratch = append(parser.scratch[:0], parser.input[start:parser.pos]...)
				useScratch = true
			}
			skip(parser)
			if parser.pos >= len(parser.input) {
				if parser.closed {
					return false, newScannerError(parser, snap.mark, "Unclosed string")
				}
				return json_parser_rewind(parser, snap, PENDING_STRING), nil
			}
			e := skip(parser)
			if e == 'u' {
				unit, ok, err := json_parser_scan_hex4(parser, snap)
				if err != nil {
					return false, err
				}
				if !ok {
					return false, nil
				}
				switch {
				case highSurrogate != 0 && unit >= 0xDC00 && unit <= 0xDFFF:
					parser.scratch = utf8.AppendRune(parser.scratch, utf16.DecodeRune(highSurrogate, unit))
					highSurrogate = 0
				case unit >= 0xD800 && unit <= 0xDBFF:
					flushSurrogate()
					highSurrogate = unit
				case unit >= 0xDC00 && unit <= 0xDFFF:
					// A low surrogate with no preceding high half.
					flushSurrogate()
					parser.scratch = utf8.AppendRune(parser.scratch, utf8.RuneError)
				default:
					flushSurrogate()
					parser.scratch = utf8.AppendRune(parser.scratch, unit)
				}
				continue
			}
			if short := common.Unescape[e]; short != 0 {
				flushSurrogate()
				parser.scratch = append(parser.scratch, short)
				continue
			}
			return false, newScannerError(parser, snap.mark, fmt.Sprintf("Invalid escape sequence: '\\%c'", e))

		case c < 0x20:
			return false, newScannerError(parser, snap.mark, "Unescaped control character in string")

		case c < 0x80:
			flushSurrogate()
			skip(parser)
			if useScratch {
				parser.scratch = append(parser.scratch, c)
			}

		default:
			width, ok, err := json_parser_check_utf8(parser)
			if err != nil {
				return false, err
			}
			if !ok {
				if parser.closed {
					return false, newScannerError(parser, snap.mark, "Unclosed string")
				}
				return json_parser_rewind(parser, snap, PENDING_STRING), nil
			}
			flushSurrogate()
			if useScratch {
				parser.scratch = append(parser.scratch, parser.input[parser.pos:parser.pos+width]...)
			}
			skipWide(parser, width)
		}
	}
}

// Scan the four hex digits of a \uXXXX escape into a UTF-16 code unit.
func json_parser_scan_hex4(parser *JSONParser, snap scanSnapshot) (rune, bool, error) {
	var unit rune
	for k := 0; k < 4; k++ {
		if parser.pos >= len(parser.input) {
			if parser.closed {
				return 0, false, newScannerError(parser, snap.mark, "Incomplete Unicode escape")
			}
			json_parser_rewind(parser, snap, PENDING_STRING)
			return 0, false, nil
		}
		if !jsonh.Is_hex(parser.input, parser.pos) {
			return 0, false, newScannerError(parser, snap.mark, fmt.Sprintf("Invalid hex digit: %q", parser.input[parser.pos]))
		}
		unit = unit<<4 + rune(jsonh.As_hex(parser.input, parser.pos))
		skip(parser)
	}
	return unit, true, nil
}

// Scan a NUMBER token. The grammar, per RFC 8259:
//
//	number = [ "-" ] int [ frac ] [ exp ]
//	int    = "0" / ( digit1-9 *DIGIT )
//	frac   = "." 1*DIGIT
//	exp    = ( "e" / "E" ) [ "+" / "-" ] 1*DIGIT
//
// A number only ends at a character that cannot extend it, so completion
// needs one character of lookahead; at the end of the window the token
// completes only when the stream is closed.
func json_parser_scan_number(parser *JSONParser, snap scanSnapshot) (bool, error) {
	start := parser.pos
	isFloat := false

	if parser.input[parser.pos] == '-' {
		skip(parser)
	}

	// The integer part: '0', or a nonzero digit followed by any digits.
	if parser.pos >= len(parser.input) {
		if !parser.closed {
			return json_parser_rewind(parser, snap, PENDING_NUMBER), nil
		}
		return false, newScannerError(parser, snap.mark, "Invalid number: '-'")
	}
	switch c := parser.input[parser.pos]; {
	case c == '0':
		skip(parser)
		if parser.pos >= len(parser.input) {
			if !parser.closed {
				return json_parser_rewind(parser, snap, PENDING_NUMBER), nil
			}
		} else if jsonh.Is_digit(parser.input, parser.pos) {
			return false, newScannerError(parser, snap.mark, "Numbers cannot have leading zeros")
		}
	case c >= '1' && c <= '9':
		for parser.pos < len(parser.input) && jsonh.Is_digit(parser.input, parser.pos) {
			skip(parser)
		}
		if parser.pos >= len(parser.input) && !parser.closed {
			return json_parser_rewind(parser, snap, PENDING_NUMBER), nil
		}
	default:
		return false, newScannerError(parser, snap.mark, fmt.Sprintf("Invalid number: '-%c'", c))
	}

	// The fraction part.
	if parser.pos < len(parser.input) && parser.input[parser.pos] == '.' {
		isFloat = true
		skip(parser)
		if parser.pos >= len(parser.input) {
			if !parser.closed {
				return json_parser_rewind(parser, snap, PENDING_NUMBER), nil
			}
			return false, newScannerError(parser, snap.mark, "Decimal point must be followed by digit")
		}
		if !jsonh.Is_digit(parser.input, parser.pos) {
			return false, newScannerError(parser, snap.mark, "Decimal point must be followed by digit")
		}
		for parser.pos < len(parser.input) && jsonh.Is_digit(parser.input, parser.pos) {
			skip(parser)
		}
		if parser.pos >= len(parser.input) && !parser.closed {
			return json_parser_rewind(parser, snap, PENDING_NUMBER), nil
		}
	}

	// The exponent part.
	if parser.pos < len(parser.input) && (parser.input[parser.pos] == 'e' || parser.input[parser.pos] == 'E') {
		isFloat = true
		skip(parser)
		if parser.pos < len(parser.input) && (parser.input[parser.pos] == '+' || parser.input[parser.pos] == '-') {
			skip(parser)
		}
		if parser.pos >= len(parser.input) {
			if !parser.closed {
				return json_parser_rewind(parser, snap, PENDING_NUMBER), nil
			}
			return false, newScannerError(parser, snap.mark, "Exponent must have digit")
		}
		if !jsonh.Is_digit(parser.input, parser.pos) {
			return false, newScannerError(parser, snap.mark, "Exponent must have digit")
		}
		for parser.pos < len(parser.input) && jsonh.Is_digit(parser.input, parser.pos) {
			skip(parser)
		}
		if parser.pos >= len(parser.input) && !parser.closed {
			return json_parser_rewind(parser, snap, PENDING_NUMBER), nil
		}
	}

	number, err := resolve.Number(parser.input[start:parser.pos], isFloat)
	if err != nil {
		parser.tokenMark = snap.mark
		return false, err
	}
	return true, json_parser_process_token(parser, &scanToken{typ: jsonh.NUMBER_TOKEN, mark: snap.mark, number: number})
}

// Scan a LITERAL token: the exact characters of 'true', 'false' or
// 'null'.
func json_parser_scan_literal(parser *JSONParser, snap scanSnapshot, want string) (bool, error) {
	for i := 0; i < len(want); i++ {
		if parser.pos >= len(parser.input) {
			if parser.closed {
				return false, newScannerError(parser, snap.mark, "Incomplete token at end of input")
			}
			return json_parser_rewind(parser, snap, PENDING_LITERAL), nil
		}
		if parser.input[parser.pos] != want[i] {
			return false, newScannerError(parser, snap.mark, "Invalid literal")
		}
		skip(parser)
	}
	return true, json_parser_process_token(parser, &scanToken{typ: jsonh.LITERAL_TOKEN, mark: snap.mark, word: want})
}

// Scan a WHITESPACE run. The run is one token: when the handler has
// opted in to whitespace events it must be delivered whole, so a run
// that reaches the end of an open window underflows like any other
// token. Without the opt-in nothing observes the run and it is consumed
// immediately.
func json_parser_scan_whitespace(parser *JSONParser, snap scanSnapshot) (bool, error) {
	start := parser.pos
	for parser.pos < len(parser.input) && jsonh.Is_space(parser.input[parser.pos]) {
		skip(parser)
	}
	if parser.pos >= len(parser.input) && !parser.closed && parser.emitWhitespace {
		return json_parser_rewind(parser, snap, PENDING_WHITESPACE), nil
	}
	if parser.emitWhitespace {
		parser.tokenMark = snap.mark
		err := parser.handler.Whitespace(string(parser.input[start:parser.pos]))
		if err != nil {
			return false, err
		}
	}
	return true, nil
}

// Release an oversized scratch buffer so one pathological string does
// not pin memory for the parser's lifetime.
func json_parser_trim_scratch(parser *JSONParser) {
	if cap(parser.scratch) > jsonh.Scratch_buffer_cap {
		parser.scratch = nil
	}
}

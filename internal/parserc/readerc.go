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

// Set the reader error and return it.
func newReaderError(parser *JSONParser, problem string) error {
	parser.tokenMark = parser.Mark
	return &jsonh.Error{
		Type:    jsonh.READER_ERROR,
		Problem: problem,
		Line:    parser.Mark.Line + 1,
		Column:  parser.Mark.Column + 1,
	}
}

// Byte order marks.
const (
	bom_UTF8    = "\xef\xbb\xbf"
	bom_UTF16LE = "\xff\xfe"
	bom_UTF16BE = "\xfe\xff"
	bom_UTF32LE = "\xff\xfe\x00\x00"
	bom_UTF32BE = "\x00\x00\xfe\xff"
)

// Determine the input stream encoding by checking the BOM symbol. JSON
// text is UTF-8; a UTF-8 BOM is consumed and skipped, the UTF-16 and
// UTF-32 BOMs are rejected, and anything else proceeds as UTF-8 with no
// bytes consumed.
//
// Returns false when the leading bytes are an ambiguous BOM prefix and
// the stream is still open; the caller must preserve them and retry.
func json_parser_determine_encoding(parser *JSONParser) (bool, error) {
	buf := parser.input[parser.pos:]
	avail := len(buf)

	if avail == 0 {
		if !parser.closed {
			return false, nil
		}
		parser.Encoding = jsonh.UTF8_ENCODING
		return true, nil
	}

	switch {
	case avail >= 1 && buf[0] == bom_UTF8[0]:
		if avail < 3 && !parser.closed {
			return false, nil
		}
		if avail >= 3 && buf[1] == bom_UTF8[1] && buf[2] == bom_UTF8[2] {
			parser.pos += 3
			parser.Mark.Index += 3
		}
		// A partial or false prefix proceeds as UTF-8 and fails in the
		// scanner as an unexpected character.

	case avail >= 1 && buf[0] == bom_UTF16BE[0]:
		if avail < 2 && !parser.closed {
			return false, nil
		}
		if avail >= 2 && buf[1] == bom_UTF16BE[1] {
			parser.Encoding = jsonh.UTF16BE_ENCODING
			return false, newReaderError(parser, "UTF-16 BE encoding is not supported")
		}

	case avail >= 1 && buf[0] == bom_UTF16LE[0]:
		// FF FE 00 00 is the UTF-32 LE BOM; FF FE followed by anything
		// else is UTF-16 LE. Four bytes settle it.
		if avail >= 2 && buf[1] != bom_UTF16LE[1] {
			break
		}
		if avail < 4 && !parser.closed {
			return false, nil
		}
		if avail >= 2 && buf[1] == bom_UTF16LE[1] {
			if avail >= 4 && buf[2] == 0x00 && buf[3] == 0x00 {
				parser.Encoding = jsonh.UTF32LE_ENCODING
				return false, newReaderError(parser, "UTF-32 LE encoding is not supported")
			}
			parser.Encoding = jsonh.UTF16LE_ENCODING
			return false, newReaderError(parser, "UTF-16 LE encoding is not supported")
		}

	case avail >= 1 && buf[0] == bom_UTF32BE[0]:
		if avail < 4 && !parser.closed {
			// 00 00 FE FF is the only rejected NUL-leading prefix, but a
			// shorter NUL run cannot be told apart from it yet.
			prefix := true
			for i := 0; i < avail; i++ {
				if buf[i] != bom_UTF32BE[i] {
					prefix = false
					break
				}
			}
			if prefix {
				return false, nil
			}
			break
		}
		if avail >= 4 && buf[1] == bom_UTF32BE[1] && buf[2] == bom_UTF32BE[2] && buf[3] == bom_UTF32BE[3] {
			parser.Encoding = jsonh.UTF32BE_ENCODING
			return false, newReaderError(parser, "UTF-32 BE encoding is not supported")
		}
	}

	parser.Encoding = jsonh.UTF8_ENCODING
	return true, nil
}

// Validate the UTF-8 sequence starting at the cursor and report its
// width. Check RFC 3629 (http://www.ietf.org/rfc/rfc3629.txt) for more
// details.
//
//	Char. number range |        UTF-8 octet sequence
//	  (hexadecimal)    |              (binary)
//	--------------------+------------------------------------
//	0000 0000-0000 007F | 0xxxxxxx
//	0000 0080-0000 07FF | 110xxxxx 10xxxxxx
//	0000 0800-0000 FFFF | 1110xxxx 10xxxxxx 10xxxxxx
//	0001 0000-0010 FFFF | 11110xxx 10xxxxxx 10xxxxxx 10xxxxxx
//
// The characters in the range 0xD800-0xDFFF are prohibited as they are
// reserved for use with UTF-16 surrogate pairs.
//
// Returns width 0 with ok=false when the sequence runs past the end of
// the window; the caller must preserve the tail and retry.
func json_parser_check_utf8(parser *JSONParser) (int, bool, error) {
	// Determine the length of the UTF-8 sequence.
	octet := parser.input[parser.pos]
	width := jsonh.Width(octet)
	if width == 0 {
		// The leading octet is invalid.
		return 0, false, newReaderError(parser, "Character decoding error: invalid leading UTF-8 octet")
	}

	// Check if the window contains an incomplete character.
	if parser.pos+width > len(parser.input) {
		return 0, false, nil
	}

	// Decode the leading octet.
	var value rune
	switch {
	case octet&0x80 == 0x00:
		value = rune(octet & 0x7F)
	case octet&0xE0 == 0xC0:
		value = rune(octet & 0x1F)
	case octet&0xF0 == 0xE0:
		value = rune(octet & 0x0F)
	case octet&0xF8 == 0xF0:
		value = rune(octet & 0x07)
	}

	// Check and decode the trailing octets.
	for k := 1; k < width; k++ {
		octet = parser.input[parser.pos+k]
		if (octet & 0xC0) != 0x80 {
			return 0, false, newReaderError(parser, "Character decoding error: invalid trailing UTF-8 octet")
		}
		value = (value << 6) + rune(octet&0x3F)
	}

	// Check the length of the sequence against the value.
	switch {
	case width == 1:
	case width == 2 && value >= 0x80:
	case width == 3 && value >= 0x800:
	case width == 4 && value >= 0x10000:
	default:
		return 0, false, newReaderError(parser, "Character decoding error: overlong UTF-8 sequence")
	}

	// Check the range of the value.
	if value >= 0xD800 && value <= 0xDFFF || value > 0x10FFFF {
		return 0, false, newReaderError(parser, "Character decoding error: invalid Unicode character")
	}

	return width, true, nil
}

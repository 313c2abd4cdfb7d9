package emitter

import (
	"math"
	"strconv"
	"strings"

	"github.com/willabides/json/internal/common"
	"github.com/willabides/json/internal/jsonh"
)

const hexDigits = "0123456789abcdef"

// writeIndent writes a line break followed by the indentation for the
// current depth.
func writeIndent(e *Emitter) error {
	err := e.put('\n')
	if err != nil {
		return err
	}
	for i := 0; i < e.indentCount*e.depth; i++ {
		err = e.put(e.indentChar)
		if err != nil {
			return err
		}
	}
	return nil
}

// writeScalar writes value as a quoted JSON string. The escaping is the
// dual of the scanner's decode rules: the short forms for the quote,
// the backslash and the popular control characters, \u00XX for any
// other code point below 0x20, and everything else - including all of
// non-ASCII - as raw UTF-8.
func writeScalar(e *Emitter, value string) error {
	err := e.put('"')
	if err != nil {
		return err
	}
	start := 0
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		err = e.writeString(value[start:i])
		if err != nil {
			return err
		}
		start = i + 1
		if short := common.Escape[c]; short != 0 {
			err = e.put('\\')
			if err == nil {
				err = e.put(short)
			}
			if err != nil {
				return err
			}
			continue
		}
		err = e.writeString("\\u00")
		if err != nil {
			return err
		}
		err = e.put(hexDigits[c>>4])
		if err == nil {
			err = e.put(hexDigits[c&0x0f])
		}
		if err != nil {
			return err
		}
	}
	err = e.writeString(value[start:])
	if err != nil {
		return err
	}
	return e.put('"')
}

// writeNumber writes the canonical form of a number. A double whose
// canonical form has neither a fraction nor an exponent gets ".0"
// appended, so it reads back as a double rather than an integer. RFC
// 8259 has no representation for non-finite doubles, so they are writer
// errors.
func writeNumber(e *Emitter, n jsonh.Number) error {
	if n.Kind == jsonh.DOUBLE && (math.IsNaN(n.F) || math.IsInf(n.F, 0)) {
		return &jsonh.Error{
			Type:    jsonh.WRITER_ERROR,
			Problem: "Cannot write non-finite number: " + strconv.FormatFloat(n.F, 'g', -1, 64),
		}
	}
	s := n.String()
	if n.Kind == jsonh.DOUBLE && !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return e.writeString(s)
}

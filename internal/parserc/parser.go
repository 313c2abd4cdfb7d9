package parserc

import (
	"github.com/willabides/json/internal/jsonh"
)

// ParseState is the structural state: what the next non-whitespace token
// is permitted to be.
type ParseState int

const (
	PARSE_VALUE_STATE       ParseState = iota // expect a value.
	PARSE_KEY_STATE                           // expect an object key or '}'.
	PARSE_COLON_STATE                         // expect ':' between a key and its value.
	PARSE_AFTER_VALUE_STATE                   // expect ',' or a closing bracket.
)

func (ps ParseState) String() string {
	switch ps {
	case PARSE_VALUE_STATE:
		return "PARSE_VALUE_STATE"
	case PARSE_KEY_STATE:
		return "PARSE_KEY_STATE"
	case PARSE_COLON_STATE:
		return "PARSE_COLON_STATE"
	case PARSE_AFTER_VALUE_STATE:
		return "PARSE_AFTER_VALUE_STATE"
	}
	return "<unknown parser state>"
}

// pendingToken classifies the incomplete token left unconsumed at the
// end of a Receive window. Close does not consult it: it drains the
// carried tail by scanning it again with the stream marked closed.
type pendingToken int

const (
	PENDING_NONE       pendingToken = iota
	PENDING_BOM                     // an ambiguous byte-order-mark prefix.
	PENDING_WHITESPACE              // a whitespace run that may continue.
	PENDING_STRING                  // an unterminated string (or partial escape).
	PENDING_NUMBER                  // a number awaiting its lookahead character.
	PENDING_LITERAL                 // a partial true/false/null keyword.
)

// JSONParser is the push-driven parser structure.
type JSONParser struct {
	handler        jsonh.ContentHandler
	emitWhitespace bool

	// The window being scanned. It aliases the caller's buffer inside
	// Receive (and the pending carry inside Close) and is never retained
	// across calls.
	input []byte
	pos   int

	Mark      jsonh.Position // position of the next unread character.
	tokenMark jsonh.Position // position of the most recent token or error.
	crPending bool           // the previous character was CR (CRLF counts one break).

	Encoding   jsonh.Encoding // the detected input Encoding.
	bomChecked bool

	state      ParseState
	stack      []jsonh.Container
	afterComma bool
	sawToken   bool

	closed bool
	failed error

	// A copy of the unconsumed tail of the last window, bounded by one
	// token. Receive recomputes it every call; Close drains it.
	pending     []byte
	pendingKind pendingToken

	scratch []byte // escape-assembly buffer, reused across strings.
}

func New() *JSONParser {
	return &JSONParser{
		stack: make([]jsonh.Container, 0, jsonh.Initial_stack_size),
		state: PARSE_VALUE_STATE,
	}
}

// SetHandler attaches the event sink, hands it the parser's locator and
// captures its whitespace opt-in.
func (parser *JSONParser) SetHandler(h jsonh.ContentHandler) {
	parser.handler = h
	parser.emitWhitespace = false
	if h != nil {
		h.SetLocator(parser)
		parser.emitWhitespace = h.NeedsWhitespace()
	}
}

// Line returns the 1-based line of the most recent token or error.
func (parser *JSONParser) Line() int { return parser.tokenMark.Line + 1 }

// Column returns the 1-based column of the most recent token or error.
func (parser *JSONParser) Column() int { return parser.tokenMark.Column + 1 }

// Reset restores the parser to its idle state for another document. The
// handler and the scratch buffer are kept.
func (parser *JSONParser) Reset() {
	parser.input = nil
	parser.pos = 0
	parser.Mark = jsonh.Position{}
	parser.tokenMark = jsonh.Position{}
	parser.crPending = false
	parser.Encoding = jsonh.ANY_ENCODING
	parser.bomChecked = false
	parser.state = PARSE_VALUE_STATE
	parser.stack = parser.stack[:0]
	parser.afterComma = false
	parser.sawToken = false
	parser.closed = false
	parser.failed = nil
	parser.pending = parser.pending[:0]
	parser.pendingKind = PENDING_NONE
}

package common

// The short escape forms of RFC 8259 section 7, indexed both ways. The
// scanner resolves escape characters through Unescape; the emitter maps
// control characters back through Escape. A zero entry means the byte
// has no short form.

var Unescape = [256]byte{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

var Escape = [256]byte{
	'"':  '"',
	'\\': '\\',
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
}

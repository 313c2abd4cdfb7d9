package jsonh

const (
	// The size of other stacks and queues.
	Initial_stack_size = 16

	// The initial size of the escape-assembly scratch buffer.
	Initial_scratch_size = 64

	// The retained-capacity soft cap of the scratch buffer. A buffer
	// grown past this by one oversized string is discarded after use.
	Scratch_buffer_cap = 16 * 1024
)

// Check if the character at the specified position is a digit.
func Is_digit(b []byte, i int) bool {
	return b[i] >= '0' && b[i] <= '9'
}

// Get the value of a digit.
func As_digit(b []byte, i int) int {
	return int(b[i]) - '0'
}

// Check if the character at the specified position is a hex-digit.
func Is_hex(b []byte, i int) bool {
	return b[i] >= '0' && b[i] <= '9' || b[i] >= 'A' && b[i] <= 'F' || b[i] >= 'a' && b[i] <= 'f'
}

// Get the value of a hex-digit.
func As_hex(b []byte, i int) int {
	bi := b[i]
	if bi >= 'A' && bi <= 'F' {
		return int(bi) - 'A' + 10
	}
	if bi >= 'a' && bi <= 'f' {
		return int(bi) - 'a' + 10
	}
	return int(bi) - '0'
}

// Check if the character is JSON insignificant whitespace. Form feed is
// deliberately absent; RFC 8259 does not list it.
func Is_space(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// Check if the character is a line break.
func Is_break(c byte) bool {
	return c == '\n' || c == '\r'
}

// Width returns the expected length of the UTF-8 sequence starting with
// the given octet, or 0 if the octet cannot start a sequence.
func Width(octet byte) int {
	switch {
	case octet&0x80 == 0x00:
		return 1
	case octet&0xE0 == 0xC0:
		return 2
	case octet&0xF0 == 0xE0:
		return 3
	case octet&0xF8 == 0xF0:
		return 4
	}
	return 0
}

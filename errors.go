package lzss

// Error marks an internal lzss error.
type Error struct {
	Msg string
}

// Error returns the error message with the prefix "lzss - ".
func (e Error) Error() string {
	return "lzss - " + e.Msg
}

// newError creates a new lzss error with the given message.
func newError(msg string) error {
	return Error{msg}
}

package lzss

import "fmt"

// maxFrameSize is the largest supported window. A back-reference
// carries only 12 position bits, so a larger window could not be
// addressed by the token format.
const maxFrameSize = 1 << 12

// Params contain all information required to decode or encode an LZSS
// stream. Encoder and decoder must use identical parameters; the
// stream itself carries no header.
type Params struct {
	// size of the sliding window in bytes; must be a power of two
	FrameSize int
	// byte value the window is pre-filled with
	FrameFill byte
	// initial write position within the window
	FrameInitPos int
	// upper limit for the match length
	MaxMatchLength int
	// matches of this length or shorter are coded as literals
	MinMatchLength int
}

// Default defines the classical parameters: a 4096-byte window
// pre-filled with zeros, initial position 0xfee and match lengths
// from 3 to 18 bytes.
var Default = Params{
	FrameSize:      0x1000,
	FrameFill:      0,
	FrameInitPos:   0xfee,
	MaxMatchLength: 0x12,
	MinMatchLength: 2,
}

// Verify checks parameters for errors. The window size must be a
// power of two because the decoder addresses it with a bit mask, and
// the match length range must fit the 4-bit length field of a
// back-reference.
func (p *Params) Verify() error {
	if p == nil {
		return newError("parameters must be non-nil")
	}
	if !(0 < p.FrameSize && p.FrameSize <= maxFrameSize) {
		return fmt.Errorf("lzss - FrameSize %d out of range (0, %d]",
			p.FrameSize, maxFrameSize)
	}
	if p.FrameSize&(p.FrameSize-1) != 0 {
		return fmt.Errorf("lzss - FrameSize %d is not a power of two",
			p.FrameSize)
	}
	if !(0 <= p.FrameInitPos && p.FrameInitPos < p.FrameSize) {
		return fmt.Errorf("lzss - FrameInitPos %d outside window [0, %d)",
			p.FrameInitPos, p.FrameSize)
	}
	if p.MinMatchLength < 1 {
		return fmt.Errorf("lzss - MinMatchLength %d must be at least 1",
			p.MinMatchLength)
	}
	if p.MaxMatchLength <= p.MinMatchLength {
		return fmt.Errorf(
			"lzss - MaxMatchLength %d must exceed MinMatchLength %d",
			p.MaxMatchLength, p.MinMatchLength)
	}
	if p.MaxMatchLength > p.FrameSize {
		return fmt.Errorf(
			"lzss - MaxMatchLength %d exceeds FrameSize %d",
			p.MaxMatchLength, p.FrameSize)
	}
	if p.MaxMatchLength > p.MinMatchLength+16 {
		return fmt.Errorf(
			"lzss - MaxMatchLength %d exceeds MinMatchLength+16; "+
				"the length field has only 4 bits",
			p.MaxMatchLength)
	}
	return nil
}

package lzss

import "io"

// breader converts a reader into a byte reader.
type breader struct {
	io.Reader
	// helper slice
	p []byte
}

// byteReader converts a reader into an io.ByteReader.
func byteReader(r io.Reader) io.ByteReader {
	br, ok := r.(io.ByteReader)
	if !ok {
		return &breader{r, make([]byte, 1)}
	}
	return br
}

// ReadByte reads a single byte.
func (r *breader) ReadByte() (c byte, err error) {
	n, err := r.Reader.Read(r.p)
	if n < 1 {
		if err == nil {
			err = newError("ReadByte: no data")
		}
		return 0, err
	}
	return r.p[0], nil
}

// Reader decompresses an LZSS token stream. The stream has no
// terminator; decompression ends when the underlying reader is
// exhausted. A reference truncated by the end of input also ends the
// stream silently, matching the classical decoder: the format carries
// no integrity data that could tell truncation from a clean end.
//
// For high performance use a buffered reader underneath.
type Reader struct {
	r      io.ByteReader
	params Params
	win    *window

	cursor  int    // masked write position in the window
	flags   uint16 // flag register; 0xff00 refill sentinel in the high byte
	copyPos int    // window position of the active back-reference
	copyLen int    // bytes still to copy from it

	err error
}

// NewReader creates a Reader with the Default parameters.
func NewReader(r io.Reader) (*Reader, error) {
	return NewReaderP(r, Default)
}

// NewReaderP creates a Reader with the given parameters. They must
// match the parameters the stream was compressed with.
func NewReaderP(r io.Reader, p Params) (*Reader, error) {
	if r == nil {
		return nil, newError("reader must not be nil")
	}
	if err := p.Verify(); err != nil {
		return nil, err
	}
	return &Reader{
		r:      byteReader(r),
		params: p,
		win:    newWindow(&p),
		cursor: p.FrameInitPos,
	}, nil
}

// Params returns the parameters of the Reader.
func (lr *Reader) Params() Params {
	return lr.params
}

// Read decompresses into p. It returns io.EOF when the compressed
// stream is exhausted.
func (lr *Reader) Read(p []byte) (n int, err error) {
	if lr.err != nil {
		return n, lr.err
	}
	mask := lr.win.mask
	for n < len(p) {
		if lr.copyLen > 0 {
			c := lr.win.at(lr.copyPos & mask)
			lr.copyPos++
			lr.copyLen--
			lr.win.set(lr.cursor, c)
			lr.cursor = (lr.cursor + 1) & mask
			p[n] = c
			n++
			continue
		}
		lr.flags >>= 1
		if lr.flags&0x100 == 0 {
			c, err := lr.r.ReadByte()
			if err != nil {
				return n, lr.stop(err)
			}
			lr.flags = uint16(c) | 0xff00
		}
		if lr.flags&1 != 0 {
			c, err := lr.r.ReadByte()
			if err != nil {
				return n, lr.stop(err)
			}
			lr.win.set(lr.cursor, c)
			lr.cursor = (lr.cursor + 1) & mask
			p[n] = c
			n++
			continue
		}
		b1, err := lr.r.ReadByte()
		if err != nil {
			return n, lr.stop(err)
		}
		b2, err := lr.r.ReadByte()
		if err != nil {
			return n, lr.stop(err)
		}
		lr.copyPos = int(b1) | int(b2&0xf0)<<4
		lr.copyLen = int(b2&0x0f) + lr.params.MinMatchLength + 1
	}
	return n, nil
}

// stop records the terminal state of the Reader. Any end of input,
// even inside a token, becomes a clean io.EOF.
func (lr *Reader) stop(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		lr.err = io.EOF
	} else {
		lr.err = err
	}
	return lr.err
}

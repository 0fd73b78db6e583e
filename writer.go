package lzss

import "io"

// errClosed is returned for operations on a closed Writer.
var errClosed = newError("writer is closed")

// Writer compresses data written to it and writes the token stream to
// an underlying writer. It must be closed to flush the remaining
// lookahead and the final partial group.
//
// For high performance use a buffered writer underneath.
type Writer struct {
	w      io.Writer
	params Params
	win    *window
	tree   *binTree

	r       int   // window position of the next token
	length  int   // bytes of lookahead currently in the window
	m       match // match reported by the latest tree insert
	advance int   // window steps owed for the last emitted token

	code []byte // current group: control byte plus payload
	mask byte   // control bit of the next token

	pending []byte // staged input not yet moved into the window
	next    int    // read position in pending

	started bool
	closed  bool
	err     error
}

// NewWriter creates a Writer with the Default parameters.
//
// Don't forget to call Close after all data has been written.
func NewWriter(w io.Writer) (*Writer, error) {
	return NewWriterP(w, Default)
}

// NewWriterP creates a Writer with the given parameters. The decoder
// must be configured with the same parameters; the stream does not
// carry them.
func NewWriterP(w io.Writer, p Params) (*Writer, error) {
	if w == nil {
		return nil, newError("writer must not be nil")
	}
	if err := p.Verify(); err != nil {
		return nil, err
	}
	lw := &Writer{
		w:      w,
		params: p,
		win:    newWindow(&p),
		r:      p.FrameInitPos,
		code:   make([]byte, 1, 1+2*8),
		mask:   1,
	}
	lw.tree = newBinTree(lw.win, p.MaxMatchLength)
	return lw, nil
}

// Params returns the parameters of the Writer.
func (lw *Writer) Params() Params {
	return lw.params
}

// Write stages p for compression. Data is consumed as full lookaheads
// become available; the rest is buffered until the next Write or
// Close.
func (lw *Writer) Write(p []byte) (n int, err error) {
	if lw.err != nil {
		return 0, lw.err
	}
	if lw.closed {
		return 0, errClosed
	}
	lw.pending = append(lw.pending, p...)
	if err = lw.process(false); err != nil {
		lw.err = err
		return len(p), err
	}
	return len(p), nil
}

// Close drains the lookahead, flushes a trailing partial group and
// marks the Writer closed. It does not close the underlying writer.
func (lw *Writer) Close() error {
	if lw.err != nil {
		return lw.err
	}
	if lw.closed {
		return errClosed
	}
	lw.closed = true
	if err := lw.process(true); err != nil {
		lw.err = err
		return err
	}
	if err := lw.flushGroup(); err != nil {
		lw.err = err
		return err
	}
	return nil
}

// start fills the initial lookahead at the leading edge and seeds the
// match finder with the positions directly below it, the way the
// classical encoder primes its trees before the first token.
func (lw *Writer) start() {
	lw.started = true
	n := len(lw.pending) - lw.next
	f := lw.params.MaxMatchLength
	if n > f {
		n = f
	}
	for i := 0; i < n; i++ {
		lw.win.setMirrored((lw.r+i)&lw.win.mask, lw.pending[lw.next+i])
	}
	lw.next += n
	lw.length = n
	if n == 0 {
		return
	}
	for i := 1; i <= f; i++ {
		if lw.r-i < 0 {
			break
		}
		lw.tree.insert(lw.r - i)
	}
	lw.m = lw.tree.insert(lw.r)
}

// process runs the engine over the staged input. With last set it
// also unwinds the final window: positions keep leaving the trees
// until the lookahead is drained, with no new bytes arriving.
func (lw *Writer) process(last bool) error {
	if !lw.started {
		if !last && len(lw.pending)-lw.next < lw.params.MaxMatchLength {
			return nil
		}
		lw.start()
	}
	for lw.length > 0 {
		for lw.advance > 0 {
			// The position leaving the window is the slot the
			// next input byte lands in, one full lookahead ahead
			// of the leading edge.
			s := (lw.r + lw.params.MaxMatchLength) & lw.win.mask
			switch {
			case lw.next < len(lw.pending):
				c := lw.pending[lw.next]
				lw.next++
				lw.tree.remove(s)
				lw.win.setMirrored(s, c)
				lw.r = (lw.r + 1) & lw.win.mask
				lw.m = lw.tree.insert(lw.r)
			case last:
				lw.tree.remove(s)
				lw.r = (lw.r + 1) & lw.win.mask
				lw.length--
				if lw.length > 0 {
					lw.m = lw.tree.insert(lw.r)
				}
			default:
				lw.compact()
				return nil
			}
			lw.advance--
		}
		if lw.length == 0 {
			break
		}
		if err := lw.emit(); err != nil {
			return err
		}
	}
	lw.compact()
	return nil
}

// emit encodes one token for the leading window position. A match at
// or below the minimum length is emitted as a literal: a reference
// always costs two bytes.
func (lw *Writer) emit() error {
	n := lw.m.n
	if n > lw.length {
		n = lw.length
	}
	min := lw.params.MinMatchLength
	if n <= min {
		n = 1
		lw.code[0] |= lw.mask
		lw.code = append(lw.code, lw.win.at(lw.r))
	} else {
		lw.code = append(lw.code,
			byte(lw.m.pos),
			byte(((lw.m.pos>>4)&0xf0)|(n-min-1)))
	}
	lw.advance = n
	lw.mask <<= 1
	if lw.mask == 0 {
		lw.mask = 1
		return lw.flushGroup()
	}
	return nil
}

// flushGroup writes the current group if it holds any token and
// resets it.
func (lw *Writer) flushGroup() error {
	if len(lw.code) > 1 {
		if _, err := lw.w.Write(lw.code); err != nil {
			return err
		}
	}
	lw.code = lw.code[:1]
	lw.code[0] = 0
	return nil
}

// compact drops consumed staged input.
func (lw *Writer) compact() {
	if lw.next == 0 {
		return
	}
	rest := copy(lw.pending, lw.pending[lw.next:])
	lw.pending = lw.pending[:rest]
	lw.next = 0
}

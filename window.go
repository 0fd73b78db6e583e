package lzss

// window stores the sliding dictionary plus the lookahead. The array
// is FrameSize+MaxMatchLength-1 bytes long: the compressor addresses
// it with raw positions and keeps a copy of the first
// MaxMatchLength-1 bytes behind the window proper, so that a match
// scan starting near the top of the window never runs past the end of
// the array. The decompressor masks every index and touches only the
// first FrameSize bytes.
//
// The type is pure storage. Callers bound or mask their indices.
type window struct {
	data   []byte
	size   int // FrameSize
	mask   int // FrameSize - 1
	mirror int // length of the duplicated head region
}

// newWindow allocates a window for the given parameters and pre-fills
// it with the fill byte.
func newWindow(p *Params) *window {
	w := &window{
		data:   make([]byte, p.FrameSize+p.MaxMatchLength-1),
		size:   p.FrameSize,
		mask:   p.FrameSize - 1,
		mirror: p.MaxMatchLength - 1,
	}
	if p.FrameFill != 0 {
		for i := range w.data {
			w.data[i] = p.FrameFill
		}
	}
	return w
}

// at returns the byte at position i.
func (w *window) at(i int) byte {
	return w.data[i]
}

// set stores c at position i.
func (w *window) set(i int, c byte) {
	w.data[i] = c
}

// setMirrored stores c at position s and keeps the duplicated head
// region in sync. The compressor uses it when the trailing edge of
// the window is overwritten.
func (w *window) setMirrored(s int, c byte) {
	w.data[s] = c
	if s < w.mirror {
		w.data[s+w.size] = c
	}
}

package lzss

import (
	"bytes"
	"io"
)

// Compress compresses data in one call using the Default parameters.
// Empty input yields empty output.
func Compress(data []byte) ([]byte, error) {
	return CompressP(data, Default)
}

// CompressP compresses data in one call using the given parameters.
func CompressP(data []byte, p Params) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(data)/2 + 16)
	w, err := NewWriterP(&buf, p)
	if err != nil {
		return nil, err
	}
	if _, err = w.Write(data); err != nil {
		return nil, err
	}
	if err = w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress decompresses data in one call using the Default
// parameters. Empty input yields empty output.
func Decompress(data []byte) ([]byte, error) {
	return DecompressP(data, Default)
}

// DecompressP decompresses data in one call using the given
// parameters.
func DecompressP(data []byte, p Params) ([]byte, error) {
	r, err := NewReaderP(bytes.NewReader(data), p)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.Grow(2 * len(data))
	if _, err = io.Copy(&buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

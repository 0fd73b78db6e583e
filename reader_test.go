package lzss

import (
	"bytes"
	"io"
	"io/ioutil"
	"testing"
)

func TestReaderHandcrafted(t *testing.T) {
	// One full literal group.
	stream := []byte{0xff, 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H'}
	r, err := NewReader(bytes.NewReader(stream))
	if err != nil {
		t.Fatalf("NewReader error %s", err)
	}
	dec, err := ioutil.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll error %s", err)
	}
	if string(dec) != "ABCDEFGH" {
		t.Fatalf("decoded %q; want %q", dec, "ABCDEFGH")
	}
}

func TestReaderCopyFromPrefill(t *testing.T) {
	// A reference into a window region never written decodes the
	// fill byte. Position 0, nibble 0 copies MinMatchLength+1
	// bytes.
	p := Default
	p.FrameFill = 0x20
	stream := []byte{0x00, 0x00, 0x00}
	dec, err := DecompressP(stream, p)
	if err != nil {
		t.Fatalf("DecompressP error %s", err)
	}
	want := bytes.Repeat([]byte{0x20}, p.MinMatchLength+1)
	if !bytes.Equal(dec, want) {
		t.Fatalf("decoded %x; want %x", dec, want)
	}
}

func TestReaderTruncatedStream(t *testing.T) {
	input := bytes.Repeat([]byte("truncate me truncate me "), 50)
	enc, err := Compress(input)
	if err != nil {
		t.Fatalf("Compress error %s", err)
	}
	// Cutting the stream anywhere must yield a clean EOF and a
	// prefix of the original data; the format cannot distinguish
	// truncation from a normal end.
	for _, cut := range []int{len(enc) - 1, len(enc) / 2, 1, 0} {
		r, err := NewReader(bytes.NewReader(enc[:cut]))
		if err != nil {
			t.Fatalf("NewReader error %s", err)
		}
		dec, err := ioutil.ReadAll(r)
		if err != nil {
			t.Fatalf("cut %d: ReadAll error %s", cut, err)
		}
		if !bytes.HasPrefix(input, dec) {
			t.Fatalf("cut %d: output is not a prefix of the input",
				cut)
		}
	}
}

func TestReaderTruncatedReference(t *testing.T) {
	// A control byte announcing a reference with only one of its
	// two bytes present ends the stream silently.
	stream := []byte{0x00, 0x42}
	dec, err := Decompress(stream)
	if err != nil {
		t.Fatalf("Decompress error %s", err)
	}
	if len(dec) != 0 {
		t.Fatalf("decoded %d bytes from truncated reference; want 0",
			len(dec))
	}
}

func TestReaderSmallDst(t *testing.T) {
	input := bytes.Repeat([]byte("one byte at a time "), 30)
	enc, err := Compress(input)
	if err != nil {
		t.Fatalf("Compress error %s", err)
	}
	r, err := NewReader(bytes.NewReader(enc))
	if err != nil {
		t.Fatalf("NewReader error %s", err)
	}
	var dec []byte
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		dec = append(dec, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Read error %s", err)
		}
	}
	if !bytes.Equal(dec, input) {
		t.Fatalf("single-byte reads decoded %d bytes; want %d",
			len(dec), len(input))
	}
}

func TestReaderAfterEOF(t *testing.T) {
	r, err := NewReader(bytes.NewReader(nil))
	if err != nil {
		t.Fatalf("NewReader error %s", err)
	}
	buf := make([]byte, 8)
	if _, err = r.Read(buf); err != io.EOF {
		t.Fatalf("Read returned %v; want io.EOF", err)
	}
	if _, err = r.Read(buf); err != io.EOF {
		t.Fatalf("second Read returned %v; want io.EOF", err)
	}
}

func TestNewReaderErrors(t *testing.T) {
	if _, err := NewReader(nil); err == nil {
		t.Fatal("NewReader(nil) returned no error")
	}
	p := Default
	p.MinMatchLength = 20
	if _, err := NewReaderP(bytes.NewReader(nil), p); err == nil {
		t.Fatal("NewReaderP with invalid params returned no error")
	}
}

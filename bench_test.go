package lzss

import (
	"bytes"
	"io/ioutil"
	"testing"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/flate"
)

var benchInput = randomText(1<<17, 99)

func BenchmarkCompress(b *testing.B) {
	b.SetBytes(int64(len(benchInput)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Compress(benchInput); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecompress(b *testing.B) {
	enc, err := Compress(benchInput)
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(benchInput)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decompress(enc); err != nil {
			b.Fatal(err)
		}
	}
}

// The two benchmarks below put the numbers above into context against
// codecs with comparable greedy matching.

func BenchmarkFlate(b *testing.B) {
	b.SetBytes(int64(len(benchInput)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		w, err := flate.NewWriter(ioutil.Discard, 5)
		if err != nil {
			b.Fatal(err)
		}
		if _, err = w.Write(benchInput); err != nil {
			b.Fatal(err)
		}
		if err = w.Close(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSnappy(b *testing.B) {
	b.SetBytes(int64(len(benchInput)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		snappy.Encode(nil, benchInput)
	}
}

func BenchmarkRatio(b *testing.B) {
	// Not a timing benchmark; reports the compressed size of the
	// shared input for this codec and the reference codecs.
	enc, err := Compress(benchInput)
	if err != nil {
		b.Fatal(err)
	}
	var fbuf bytes.Buffer
	fw, err := flate.NewWriter(&fbuf, 5)
	if err != nil {
		b.Fatal(err)
	}
	if _, err = fw.Write(benchInput); err != nil {
		b.Fatal(err)
	}
	if err = fw.Close(); err != nil {
		b.Fatal(err)
	}
	sbuf := snappy.Encode(nil, benchInput)
	b.Logf("input %d bytes: lzss %d, flate %d, snappy %d",
		len(benchInput), len(enc), fbuf.Len(), len(sbuf))
}

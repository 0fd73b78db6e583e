// Package lzss implements the classic LZSS compression format: a
// sliding-window dictionary coder that replaces repeated byte runs
// with (position, length) back-references.
//
// The stream is header-less and symmetric. It consists of groups of
// up to eight tokens, each group introduced by a control byte whose
// bit i marks token i as a literal (1) or a back-reference (0). A
// literal is a single byte. A back-reference is two bytes b1 and b2
// encoding a window position b1 | (b2&0xf0)<<4 and a copy of
// (b2&0x0f) + MinMatchLength + 1 bytes. Both ends must agree on the
// same Params out of band; there is no embedded header, terminator or
// checksum. The format is used by firmware images, legacy archives
// and game asset containers, usually with the parameters in Default.
//
// Writer compresses, Reader decompresses. The whole-buffer helpers
// Compress and Decompress cover the common case:
//
//	enc, err := lzss.Compress(data)
//	if err != nil {
//		return err
//	}
//	dec, err := lzss.Decompress(enc)
//	if err != nil {
//		return err
//	}
//	// dec equals data
//
// The compressor finds matches with one binary search tree per first
// byte value over all window positions. The trees are not rebalanced;
// lookup is fast in practice but worst-case linear, the known
// property of the classical algorithm.
package lzss

// SPDX-License-Identifier: GPL-2.0-only

package lzo1x1

// WorstCompress returns the largest number of bytes CompressInto can ever
// write for an input of the given size. It is pure arithmetic and never
// fails.
func WorstCompress(n int) int {
	return n + n/16 + 64 + 3
}

// Compress compresses src and returns a newly allocated slice containing
// the LZO1X-1 stream. It never fails: the destination buffer is always
// sized to WorstCompress(len(src)).
func Compress(src []byte) []byte {
	dst := make([]byte, WorstCompress(len(src)))
	return dst[:CompressInto(src, dst)]
}

// CompressInto compresses src into dst and returns the number of bytes
// written. dst must have length at least WorstCompress(len(src));
// CompressInto panics otherwise. It never fails on a large-enough buffer:
// every input byte sequence is representable.
func CompressInto(src, dst []byte) int {
	if len(dst) < WorstCompress(len(src)) {
		panic("lzo1x1: CompressInto: dst too small")
	}

	op := compressCore(src, dst)
	op += copy(dst[op:], endOfStream[:])
	return op
}

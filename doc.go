// SPDX-License-Identifier: GPL-2.0-only

/*
Package lzo1x1 implements the LZO1X-1 lossless compression codec: a pair of
pure, allocation-light functions that compress a byte slice to an LZO1X-1
bitstream and decompress such a bitstream back to the original bytes. The
codec is bit-compatible with the reference LZO1X-1 format published by
Markus F. X. J. Oberhumer — streams produced here decompress under the
reference decoder, and vice versa.

There is no framing, checksum, header, or length prefix: a stream is exactly
the raw opcode sequence terminated by the three bytes 0x11 0x00 0x00.

# Compress

	out := lzo1x1.Compress(data)

Or, to control the destination buffer (it must be at least
lzo1x1.WorstCompress(len(data)) bytes):

	dst := make([]byte, lzo1x1.WorstCompress(len(data)))
	n := lzo1x1.CompressInto(data, dst)
	dst = dst[:n]

# Decompress

The decompressed size must be known ahead of time (LZO1X-1 carries no length
prefix):

	out, err := lzo1x1.Decompress(compressed, lzo1x1.DefaultDecompressOptions(expectedLen))

From an io.Reader:

	out, err := lzo1x1.DecompressFromReader(r, lzo1x1.DefaultDecompressOptions(expectedLen))

Or the low-level form, writing into a caller-owned buffer:

	n, err := lzo1x1.DecompressInto(compressed, dst)
*/
package lzo1x1

// SPDX-License-Identifier: GPL-2.0-only

package lzo1x1

// LZO1X-1 opcode family boundaries and dictionary parameters. The four
// instruction families partition the opcode byte as described in the
// bitstream format: a literal-only first byte (opcode-17 bytes, decoded
// directly against the constant 17 rather than a named boundary since it
// is a single comparison, not a range), a state-dependent small opcode,
// and three back-reference shapes keyed by offset range.
const (
	// opDistant marks the H1 family (opcode 16..31): offset >= 0x4000,
	// length 2..9 with zero-run extension, and the sole encoding of the
	// end-of-stream terminator.
	opDistant = 16
	// opMedium marks the H2 family (opcode 32..63): offset <= 0x4000,
	// length 2..33 with zero-run extension.
	opMedium = 32
	// opNearShort marks the H3/H4 family (opcode 64..255): offset <= 0x800,
	// length 3..8, no extension.
	opNearShort = 64
)

// Offset bounds per instruction family.
const (
	maxOffsetNearShort = 0x0800
	maxOffsetMedium    = 0x4000
	maxOffsetDistant   = 0x4000 + 0x7fff // 0xbfff, the largest representable back-reference distance
)

// Length bounds per instruction family, before zero-run extension.
const (
	maxLenNearShort = 8
	maxLenMedium    = 33
	maxLenDistant   = 9
)

// Encoder dictionary and block parameters, fixed by the LZO1X-1 format
// itself (not tunable — there is only one compression level in scope).
const (
	dictBits = 13
	dictSize = 1 << dictBits // 8192 entries
	dictMask = dictSize - 1
	hashMul  = 0x1824429D
	hashShift = 32 - dictBits

	// maxBlockLen bounds how much input is scanned against one dictionary
	// fill; matches never cross a block boundary, which keeps dictionary
	// offsets within a 16-bit word.
	maxBlockLen = 0xbfff + 1 // 49152

	// matchTailMargin is the safety margin subtracted from a block's end
	// so that greedy match extension and its 4-byte hash read never read
	// past the block.
	matchTailMargin = 20

	// minMatchLen is the length of the initial 4-byte prefix confirmed by
	// a dictionary hash hit before greedy extension begins.
	minMatchLen = 4
)

// zeroExtendBase values: the length encoded directly in the opcode before
// extension kicks in, per family (literal run: 15; medium match: 31;
// distant match: 7).
const (
	literalExtendBase = 15
	mediumExtendBase  = 31
	distantExtendBase = 7
)

// maxZeroExtendChunks bounds how many zero bytes a zero-run length
// extension may contain before the accumulated length could overflow
// address arithmetic; matched to the original reference's guard
// (usize::MAX / 255 - 2, expressed here as a decoder-side `int` bound that
// can never legitimately be reached by any real LZO1X-1 stream).
const maxZeroExtendChunks = int(^uint(0)/255) - 2

// endOfStream is the literal three-byte sequence terminating every valid
// LZO1X-1 stream: opcode 17 (opDistant|1), followed by a zero offset word.
var endOfStream = [3]byte{opDistant | 1, 0, 0}

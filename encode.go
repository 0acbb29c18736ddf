// SPDX-License-Identifier: GPL-2.0-only

package lzo1x1

import "encoding/binary"

// compressCore runs the LZO1X-1 encoder over the whole of input, writing
// instructions directly into dst starting at offset 0, and returns the
// offset just past the last byte written (the caller appends the
// end-of-stream marker). dst is assumed to be at least
// WorstCompress(len(input)) bytes, per CompressInto's contract.
func compressCore(input, dst []byte) int {
	op := 0
	ip := 0
	l := len(input)
	t := 0

	for l > 20 {
		ll := l
		if ll > maxBlockLen {
			ll = maxBlockLen
		}

		// Skips the match finder when t+ll < 32, which happens for a whole
		// input of 21 to 31 bytes; those bytes are then emitted below as
		// one final literal run.
		if (t+ll)>>5 == 0 {
			break
		}

		op, t = compressBlock(input, dst, op, ip, ll, t)

		ip += ll
		l -= ll
	}

	t += l
	ii := len(input) - t
	return emitLiteralRun(dst, op, input, ii, t, true)
}

// compressBlock runs the match finder over input[blockStart:blockStart+blockLen],
// writing instructions into dst starting at op, and returns the new op and
// the number of trailing literal bytes not yet emitted (to be carried into
// the next block, or emitted as the final literal run if this was the last
// block).
func compressBlock(input, dst []byte, op, blockStart, blockLen, ti int) (int, int) {
	blockEnd := blockStart + blockLen
	ipEnd := blockEnd - matchTailMargin
	ii := blockStart
	ip := blockStart

	if ti < 4 {
		ip += 4 - ti
	}

	dict := acquireDict()
	defer releaseDict(dict)

scan:
	for {
		ip += ((ip - ii) >> 5) + 1

		for {
			if ip >= ipEnd {
				break scan
			}

			dv := le32(input, ip)
			h := hash4(dv)
			mPos := blockStart + int(dict[h])
			dict[h] = uint16(ip - blockStart) //nolint:gosec // G115: offset bounded by maxBlockLen

			if le32(input, mPos) != dv {
				break
			}

			ii -= ti
			ti = 0
			lit := ip - ii
			op = emitLiteralRun(dst, op, input, ii, lit, false)

			mLen := extendMatch(input, ip, mPos, ipEnd)
			mOff := ip - mPos
			ip += mLen
			ii = ip

			op = emitMatch(dst, op, mLen, mOff)
		}
	}

	return op, blockEnd - (ii - ti)
}

// le32 reads a little-endian uint32 from b at i. Callers guarantee i+4 <= len(b).
func le32(b []byte, i int) uint32 {
	return binary.LittleEndian.Uint32(b[i : i+4])
}

// hash4 maps a 4-byte little-endian prefix to a 13-bit dictionary slot
// using LZO1X-1's fixed multiplicative hash.
func hash4(dv uint32) int {
	return int((dv * hashMul) >> hashShift) & dictMask
}

// extendMatch extends a 4-byte confirmed match one byte at a time and
// returns the total match length. As in the reference encoder's 8-way
// unrolled loop, the ipEnd cap is checked only after every 8 matched bytes,
// so a match may run up to 7 bytes past ipEnd; the block's tail safety
// margin keeps every read inside the block.
func extendMatch(input []byte, ip, mPos, ipEnd int) int {
	mLen := minMatchLen
	if input[ip+mLen] != input[mPos+mLen] {
		return mLen
	}
	for {
		for i := 0; i < 8; i++ {
			mLen++
			if input[ip+mLen] != input[mPos+mLen] {
				return mLen
			}
		}
		if ip+mLen >= ipEnd {
			return mLen
		}
	}
}

// emitLiteralRun emits the t pending literal bytes input[ii:ii+t] into dst
// at op, choosing among the header shapes the format allows, and returns
// the new op. allowInitialForm permits the single-byte `t+17` header used
// only when this is the very first thing written to the stream (op == 0)
// and t <= 238; every other call site (mid-block literal runs before a
// match) passes false and uses the general shapes even when op == 0. That
// first run is at least 5 bytes, since the match finder's cursor starts at
// least 4 bytes past the block's anchor and advances before its first probe.
func emitLiteralRun(dst []byte, op int, input []byte, ii, t int, allowInitialForm bool) int {
	if t == 0 {
		return op
	}

	switch {
	case allowInitialForm && op == 0 && t <= 238:
		dst[op] = opcodeByte(t + 17)
		op++

	case t <= 3:
		// No opcode byte of its own: packed into the previous match's
		// trailing-literal field (the low 2 bits of output[op-2]).
		dst[op-2] |= opcodeByte(t)

	case t <= 18:
		dst[op] = opcodeByte(t - 3)
		op++

	default:
		tt := t - 18
		dst[op] = 0
		op++
		for tt > 255 {
			tt -= 255
			dst[op] = 0
			op++
		}
		dst[op] = opcodeByte(tt)
		op++
	}

	op += copy(dst[op:op+t], input[ii:ii+t])
	return op
}

// emitMatch emits a back-reference of length mLen at offset mOff, choosing
// the narrowest instruction family the offset/length pair fits, and
// returns the new op. The low 2 bits of the final offset byte are left
// clear for the next literal run's trailing-literal count to OR into.
func emitMatch(dst []byte, op, mLen, mOff int) int {
	if mLen <= maxLenNearShort && mOff <= maxOffsetNearShort {
		mOff--
		dst[op] = opcodeByte(((mLen - 1) << 5) | ((mOff & 7) << 2))
		op++
		dst[op] = opcodeByte(mOff >> 3)
		op++
		return op
	}

	if mOff <= maxOffsetMedium {
		mOff--
		if mLen <= maxLenMedium {
			dst[op] = opcodeByte(opMedium | (mLen - 2))
			op++
		} else {
			mLen -= maxLenMedium
			dst[op] = opMedium
			op++
			for mLen > 255 {
				mLen -= 255
				dst[op] = 0
				op++
			}
			dst[op] = opcodeByte(mLen)
			op++
		}
	} else {
		mOff -= maxOffsetMedium
		if mLen <= maxLenDistant {
			dst[op] = opcodeByte(opDistant | ((mOff & 0x4000) >> 11) | (mLen - 2))
			op++
		} else {
			mLen -= maxLenDistant
			dst[op] = opcodeByte(opDistant | ((mOff & 0x4000) >> 11))
			op++
			for mLen > 255 {
				mLen -= 255
				dst[op] = 0
				op++
			}
			dst[op] = opcodeByte(mLen)
			op++
		}
	}

	dst[op] = opcodeByte(mOff << 2)
	op++
	dst[op] = opcodeByte(mOff >> 6)
	op++
	return op
}

// SPDX-License-Identifier: GPL-2.0-only

package lzo1x1

import "io"

// Decompress decompresses src into a freshly allocated buffer of length
// opts.OutLen and returns the decoded slice. Returns ErrOptionsRequired if
// opts is nil or OutLen is negative, ErrEmptyInput if src is empty.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil || opts.OutLen < 0 {
		return nil, ErrOptionsRequired
	}

	if len(src) == 0 {
		return nil, ErrEmptyInput
	}

	dst := make([]byte, opts.OutLen)
	n, err := DecompressInto(src, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// DecompressInto decodes the LZO1X-1 stream src into dst and returns the
// number of bytes written. dst must be large enough to hold the fully
// decoded output; ErrOutputOverrun is returned otherwise. Returns
// ErrInputNotConsumed if the stream terminator is reached with trailing
// bytes still unread in src.
func DecompressInto(src, dst []byte) (int, error) {
	if len(src) == 0 {
		return 0, ErrEmptyInput
	}

	outWritten, inConsumed, err := decompressCore(src, dst)
	if err != nil {
		return 0, err
	}

	if inConsumed != len(src) {
		return 0, ErrInputNotConsumed
	}

	return outWritten, nil
}

// DecompressFromReader reads all of r, then decompresses it per opts. It
// performs no decoding of its own; if opts.MaxInputSize > 0 and the stream
// read exceeds it, returns ErrInputTooLarge before attempting to decode.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		return nil, ErrOptionsRequired
	}

	lr := r
	if opts.MaxInputSize > 0 {
		lr = io.LimitReader(r, int64(opts.MaxInputSize)+1)
	}

	src, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}

	if opts.MaxInputSize > 0 && len(src) > opts.MaxInputSize {
		return nil, ErrInputTooLarge
	}

	return Decompress(src, opts)
}

// decompressCore runs the LZO1X-1 decode pass over src, writing into dst
// starting at dst[0]. On success (the stream terminator is reached) it
// returns (bytes written, input bytes consumed, nil); on a malformed or
// truncated stream it returns (0, 0, err).
//
// op and ip are plain cursors into dst and src. A back-reference's source
// position m_pos is computed directly by subtraction from op (mirroring
// the decoder this bitstream is bit-compatible with) rather than split
// into a separately decoded (length, distance) pair and recombined; the
// terminator falls naturally out of this as the one opDistant instruction
// whose subtracted bits both come out zero, leaving m_pos == op.
//
// state tracks how many literal bytes trailed the previous instruction (0,
// 1, 2, 3, or 4-or-more), which disambiguates the opcode<16 instruction
// form: a short back-reference when state is 1..3, a distinct (wider-
// offset) short back-reference when state is 4, never reachable when state
// is 0 (there the same bit pattern instead encodes a literal-run length).
func decompressCore(src, dst []byte) (outWritten, inConsumed int, err error) {
	if len(src) < 3 {
		return 0, 0, ErrInputOverrun
	}

	op := 0
	ip := 0
	state := 0

	if src[0] > 17 {
		t := int(src[0]) - 17
		ip = 1

		if t < 4 {
			state = t
		} else {
			state = 4
		}

		if len(dst)-op < t {
			return 0, 0, ErrOutputOverrun
		}
		if len(src)-ip < t+3 {
			return 0, 0, ErrInputOverrun
		}

		copy(dst[op:op+t], src[ip:ip+t])
		op += t
		ip += t
	}

	for {
		if ip >= len(src) {
			return 0, 0, ErrInputOverrun
		}

		inst := int(src[ip])
		ip++

		var mPos, length, next int

		switch {
		case inst >= opNearShort:
			if ip >= len(src) {
				return 0, 0, ErrInputOverrun
			}

			h := int(src[ip])
			ip++

			mPos = op - 1 - ((inst >> 2) & 0x7) - (h << 3)
			length = (inst >> 5) + 1
			next = inst & 0x3

		case inst >= opMedium:
			length = (inst & 0x1f) + 2
			if length == 2 {
				add, newIP, extErr := extendRunLength(src, ip, mediumExtendBase)
				if extErr != nil {
					return 0, 0, extErr
				}

				length += add
				ip = newIP
			}

			if ip+2 > len(src) {
				return 0, 0, ErrInputOverrun
			}

			w := int(src[ip]) | int(src[ip+1])<<8
			ip += 2

			mPos = op - 1 - (w >> 2)
			next = w & 0x3

		case inst >= opDistant:
			length = (inst & 0x7) + 2
			if length == 2 {
				add, newIP, extErr := extendRunLength(src, ip, distantExtendBase)
				if extErr != nil {
					return 0, 0, extErr
				}

				length += add
				ip = newIP
			}

			if ip+2 > len(src) {
				return 0, 0, ErrInputOverrun
			}

			w := int(src[ip]) | int(src[ip+1])<<8
			ip += 2

			mPos = op - ((inst & 0x8) << 11) - (w >> 2)
			next = w & 0x3

			if mPos == op {
				// The terminator: the distance bits both came out zero,
				// leaving m_pos == op. Valid only if length decoded to
				// exactly 3 (the three literal bytes the encoder's
				// endOfStream marker writes).
				if length != 3 {
					return 0, 0, ErrFormat
				}

				return op, ip, nil
			}

			mPos -= maxOffsetMedium

		default:
			if state == 0 {
				// In state 0 the same bit pattern that would otherwise be a
				// short back-reference instead encodes a literal-run length,
				// with zero-run extension for long runs.
				length = inst
				if length == 0 {
					add, newIP, extErr := extendRunLength(src, ip, literalExtendBase)
					if extErr != nil {
						return 0, 0, extErr
					}

					length = add
					ip = newIP
				}

				length += 3

				if len(dst)-op < length {
					return 0, 0, ErrOutputOverrun
				}
				if len(src)-ip < length+3 {
					return 0, 0, ErrInputOverrun
				}

				copy(dst[op:op+length], src[ip:ip+length])
				op += length
				ip += length

				state = 4

				continue
			}

			// Non-zero state: a short back-reference needing one trailing
			// byte to complete the distance bits.
			if ip >= len(src) {
				return 0, 0, ErrInputOverrun
			}

			h := int(src[ip])
			ip++
			next = inst & 0x3

			if state != 4 {
				// General short-match form: fixed length 2, distance >= 1.
				mPos = op - 1 - (inst >> 2) - (h << 2)
				if mPos < 0 {
					return 0, 0, ErrLookbehindOverrun
				}
				if len(dst)-op < 2 {
					return 0, 0, ErrOutputOverrun
				}

				dst[op] = dst[mPos]
				dst[op+1] = dst[mPos+1]
				op += 2
			} else {
				// Reached only right after a 4-or-more-byte literal run: the
				// opcode's own low 4 bits (0..15) are the copy length
				// directly, and the base distance shifts out by 0x800.
				mPos = op - (1 + maxOffsetNearShort) - (inst >> 2) - (h << 2)
				if mPos < 0 {
					return 0, 0, ErrLookbehindOverrun
				}
				if len(dst)-op < inst {
					return 0, 0, ErrOutputOverrun
				}

				for i := 0; i < inst; i++ {
					dst[op] = dst[mPos]
					mPos++
					op++
				}
			}

			state = next
			if len(src)-ip < next+3 {
				return 0, 0, ErrInputOverrun
			}
			if len(dst)-op < next {
				return 0, 0, ErrOutputOverrun
			}

			copy(dst[op:op+next], src[ip:ip+next])
			op += next
			ip += next

			continue
		}

		if err := copyMatch(dst, op, op-mPos, length); err != nil {
			return 0, 0, err
		}

		op += length
		state = next

		if len(src)-ip < next+3 {
			return 0, 0, ErrInputOverrun
		}
		if len(dst)-op < next {
			return 0, 0, ErrOutputOverrun
		}

		copy(dst[op:op+next], src[ip:ip+next])
		op += next
		ip += next
	}
}

// extendRunLength consumes a zero-run length extension starting at
// src[ip]: a run of zero bytes, each worth 255, terminated by one non-zero
// byte added verbatim on top of base. Returns the combined addend and the
// input position just past the terminating byte.
func extendRunLength(src []byte, ip, base int) (add, newIP int, err error) {
	start := ip

	for {
		if ip >= len(src) {
			return 0, 0, ErrInputOverrun
		}
		if src[ip] != 0 {
			break
		}

		ip++
	}

	zeros := ip - start
	if zeros > maxZeroExtendChunks {
		return 0, 0, ErrFormat
	}

	add = zeros*255 + base + int(src[ip])
	ip++

	return add, ip, nil
}

// SPDX-License-Identifier: GPL-2.0-only

package lzo1x1

import "errors"

// Sentinel errors returned by DecompressInto and its convenience wrappers.
var (
	// ErrEmptyInput is returned when the compressed input is empty.
	ErrEmptyInput = errors.New("lzo1x1: empty input")
	// ErrInputOverrun is returned when the decoder reads past the end of input.
	ErrInputOverrun = errors.New("lzo1x1: input overrun")
	// ErrOutputOverrun is returned when the decoder would write past the output buffer.
	ErrOutputOverrun = errors.New("lzo1x1: output overrun")
	// ErrLookbehindOverrun is returned when a back-reference points before the start of the output.
	ErrLookbehindOverrun = errors.New("lzo1x1: lookbehind overrun")
	// ErrFormat is returned for a structurally invalid stream: a zero-run length
	// extension that would overflow address arithmetic, or a terminator whose
	// length field is not exactly 3.
	ErrFormat = errors.New("lzo1x1: invalid stream format")
	// ErrInputNotConsumed is returned when the end-of-stream marker is parsed
	// successfully but input bytes remain.
	ErrInputNotConsumed = errors.New("lzo1x1: input not fully consumed")
	// ErrOptionsRequired is returned when Decompress/DecompressFromReader is called with nil options.
	ErrOptionsRequired = errors.New("lzo1x1: options required: OutLen must be set")
	// ErrInputTooLarge is returned when DecompressFromReader reads more than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("lzo1x1: input exceeds MaxInputSize")
)

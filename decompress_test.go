// SPDX-License-Identifier: GPL-2.0-only

package lzo1x1

import (
	"bytes"
	"testing"
)

func TestDecompress_OptionsRequired(t *testing.T) {
	if _, err := Decompress([]byte{0x11, 0x00, 0x00}, nil); err != ErrOptionsRequired {
		t.Fatalf("got %v, want ErrOptionsRequired", err)
	}

	if _, err := Decompress([]byte{0x11, 0x00, 0x00}, &DecompressOptions{OutLen: -1}); err != ErrOptionsRequired {
		t.Fatalf("got %v, want ErrOptionsRequired", err)
	}
}

func TestDecompress_EmptyInput(t *testing.T) {
	if _, err := Decompress(nil, DefaultDecompressOptions(0)); err != ErrEmptyInput {
		t.Fatalf("got %v, want ErrEmptyInput", err)
	}
}

func TestDecompress_TruncatedStream(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{name: "truncated-medium", data: []byte{0x20}},
		{name: "truncated-terminator", data: []byte{0x11, 0x00}},
		{name: "single-zero-byte", data: []byte{0x00}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out := make([]byte, 64)
			if _, err := DecompressInto(c.data, out); err == nil {
				t.Fatal("expected an error for a truncated/malformed stream")
			}
		})
	}
}

func TestDecompress_BadTerminatorLength(t *testing.T) {
	// A distant-family instruction with distance 0 (the terminator shape)
	// but a length other than 3 is a structurally invalid stream.
	data := []byte{0x12, 0x41, 0x12, 0x00, 0x00}
	out := make([]byte, 64)
	if _, err := DecompressInto(data, out); err != ErrFormat {
		t.Fatalf("got %v, want ErrFormat", err)
	}
}

func TestDecompress_InputNotConsumed(t *testing.T) {
	data := []byte("trailing garbage after a valid stream")
	cmp := Compress(data)
	cmp = append(cmp, 0xAA, 0xBB)

	if _, err := DecompressInto(cmp, make([]byte, len(data))); err != ErrInputNotConsumed {
		t.Fatalf("got %v, want ErrInputNotConsumed", err)
	}
}

func TestDecompress_OutputOverrun(t *testing.T) {
	data := bytes.Repeat([]byte("abcdefgh"), 64)
	cmp := Compress(data)

	out := make([]byte, len(data)-1)
	if _, err := DecompressInto(cmp, out); err == nil {
		t.Fatal("expected an error when dst is smaller than the decoded stream")
	}
}

func FuzzDecompress(f *testing.F) {
	f.Add([]byte{0x11, 0x00, 0x00})
	f.Add([]byte{0x12, 0x41, 0x11, 0x00, 0x00})
	f.Add([]byte{})
	f.Add([]byte{0x00})
	f.Add([]byte{0xff, 0xff, 0xff})
	f.Add([]byte{0x20})
	f.Add([]byte{0x11, 0x00})
	f.Add([]byte{0x40, 0x00})
	f.Add([]byte{0x10, 0x00, 0x00})

	f.Fuzz(func(t *testing.T, input []byte) {
		out := make([]byte, 64*1024)
		// Only contract: never panic on arbitrary bytes. Errors are expected.
		_, _ = DecompressInto(input, out)
	})
}

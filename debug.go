// Copyright © 2025 The gnaw authors

package gnaw

import (
	"fmt"
	"strings"
)

const hexChars = "0123456789abcdef"

// HexDump formats data as a classic hex dump with chunkSize bytes per
// row: an eight-digit offset, the bytes in hex, then their printable
// rendering with unprintable bytes shown as '.'. A chunkSize below 1
// falls back to 16.
func HexDump(data []byte, chunkSize int) string {
	return HexDumpFrom(data, chunkSize, 0)
}

// HexDumpFrom is HexDump with row offsets starting at from.
func HexDumpFrom(data []byte, chunkSize, from int) string {
	if chunkSize < 1 {
		chunkSize = 16
	}
	var sb strings.Builder
	addr := from
	for off := 0; off < len(data); off += chunkSize {
		end := off + chunkSize
		if end > len(data) {
			end = len(data)
		}
		chunk := data[off:end]
		fmt.Fprintf(&sb, "%08x\t", addr)
		addr += chunkSize
		for _, b := range chunk {
			sb.WriteByte(hexChars[b>>4])
			sb.WriteByte(hexChars[b&0xf])
			sb.WriteByte(' ')
		}
		for i := len(chunk); i < chunkSize; i++ {
			sb.WriteString("   ")
		}
		sb.WriteByte('\t')
		for _, b := range chunk {
			if b >= 32 && b != 127 {
				sb.WriteByte(b)
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// DebugDump wraps p so that every failure prints the error and a hex
// dump of the input p saw to stdout, then returns the result
// unchanged. Intended for ad-hoc debugging sessions, not for
// production parsers.
func DebugDump[O, E any](label string, p Parser[[]byte, O, E]) Parser[[]byte, O, E] {
	return func(in []byte) ([]byte, O, *Err[E]) {
		rest, out, err := p(in)
		if err != nil {
			fmt.Printf("%s: %v at:\n%s", label, err, HexDump(in, 8))
		}
		return rest, out, err
	}
}

// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package inspect guesses whether a byte buffer holds binary data or text,
// the way tools like grep or diff decide whether to treat a file as opaque.
//
// The heuristic is cheap on purpose: recognize a byte order mark, otherwise
// look for a NUL byte in the first MaxScanSize bytes, otherwise check a
// small set of magic numbers for binary formats that tend to avoid NUL
// bytes early on. It can be wrong in both directions and never validates
// that a buffer actually decodes in the reported encoding.
package inspect

import "bytes"

// MaxScanSize bounds the NUL-byte scan. Inspection cost is independent of
// buffer size: only the first MaxScanSize bytes are ever examined for NUL.
const MaxScanSize = 1024

type bomEntry struct {
	prefix      []byte
	contentType ContentType
}

// byteOrderMarks is scanned in order and the first match wins. The UTF-32
// marks must come before UTF-16: the UTF-16LE mark FF FE is a strict prefix
// of the UTF-32LE mark FF FE 00 00, and the UTF-16BE mark FE FF overlaps
// the tail of the UTF-32BE mark.
var byteOrderMarks = []bomEntry{
	{[]byte{0xEF, 0xBB, 0xBF}, UTF8BOM},
	{[]byte{0x00, 0x00, 0xFE, 0xFF}, UTF32BE},
	{[]byte{0xFF, 0xFE, 0x00, 0x00}, UTF32LE},
	{[]byte{0xFE, 0xFF}, UTF16BE},
	{[]byte{0xFF, 0xFE}, UTF16LE},
}

// magicNumbers identifies binary formats whose first MaxScanSize bytes may
// legally contain no NUL byte, and which would otherwise pass as text.
// The set is deliberately minimal; use a Registry to extend it.
var magicNumbers = [][]byte{
	[]byte("%PDF"),
	[]byte("\x89PNG"),
}

// BOM is one entry of the byte-order-mark table.
type BOM struct {
	Prefix      []byte
	ContentType ContentType
}

// ByteOrderMarks returns a copy of the BOM table, in match order.
func ByteOrderMarks() []BOM {
	marks := make([]BOM, len(byteOrderMarks))
	for i, bom := range byteOrderMarks {
		marks[i] = BOM{
			Prefix:      append([]byte(nil), bom.prefix...),
			ContentType: bom.contentType,
		}
	}
	return marks
}

// Inspect classifies buf. It is pure and total: every input, including the
// empty buffer, yields a result, and the empty buffer is UTF8.
//
// A recognized byte order mark decides immediately, before the NUL scan:
// UTF-16 and UTF-32 text is full of NUL bytes and must not be mistaken for
// binary data just because of them.
func Inspect(buf []byte) ContentType {
	for _, bom := range byteOrderMarks {
		if bytes.HasPrefix(buf, bom.prefix) {
			return bom.contentType
		}
	}

	if hasZeroByte(buf) {
		return Binary
	}

	for _, magic := range magicNumbers {
		if bytes.HasPrefix(buf, magic) {
			return Binary
		}
	}
	return UTF8
}

func hasZeroByte(buf []byte) bool {
	if len(buf) > MaxScanSize {
		buf = buf[:MaxScanSize]
	}
	return bytes.IndexByte(buf, 0x00) >= 0
}

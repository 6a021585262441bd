package inspect_test

import (
	"bytes"
	"testing"

	"github.com/ostafen/sniff/internal/inspect"
	"github.com/stretchr/testify/require"
)

func TestInspectEmptyBuffer(t *testing.T) {
	require.Equal(t, inspect.UTF8, inspect.Inspect(nil))
	require.Equal(t, inspect.UTF8, inspect.Inspect([]byte{}))
}

func TestInspectPlainText(t *testing.T) {
	require.Equal(t, inspect.UTF8, inspect.Inspect([]byte("Hello")))
	require.Equal(t, inspect.UTF8, inspect.Inspect([]byte("Simple UTF-8 string ☔")))
	require.Equal(t, inspect.UTF8, inspect.Inspect([]byte("line one\nline two\r\n\tindented\n")))
}

func TestInspectByteOrderMarks(t *testing.T) {
	cases := []struct {
		prefix []byte
		want   inspect.ContentType
	}{
		{[]byte{0xEF, 0xBB, 0xBF}, inspect.UTF8BOM},
		{[]byte{0x00, 0x00, 0xFE, 0xFF}, inspect.UTF32BE},
		{[]byte{0xFF, 0xFE, 0x00, 0x00}, inspect.UTF32LE},
		{[]byte{0xFE, 0xFF}, inspect.UTF16BE},
		{[]byte{0xFF, 0xFE, 0x00, 0x68}, inspect.UTF16LE},
	}

	for _, c := range cases {
		require.Equal(t, c.want, inspect.Inspect(c.prefix), "prefix %x", c.prefix)

		// A BOM wins even when the rest of the buffer is full of NUL bytes.
		buf := append(append([]byte(nil), c.prefix...), []byte("h\x00i\x00 t\x00h\x00e\x00r\x00e\x00")...)
		require.Equal(t, c.want, inspect.Inspect(buf), "prefix %x with payload", c.prefix)
	}
}

// The UTF-16LE mark FF FE is a strict prefix of the UTF-32LE mark
// FF FE 00 00: the longer mark has to win.
func TestInspectOverlappingMarks(t *testing.T) {
	require.Equal(t, inspect.UTF32LE, inspect.Inspect([]byte{0xFF, 0xFE, 0x00, 0x00, 0x68, 0x00}))
	require.Equal(t, inspect.UTF16LE, inspect.Inspect([]byte{0xFF, 0xFE, 0x68, 0x00}))
	require.Equal(t, inspect.UTF32BE, inspect.Inspect([]byte{0x00, 0x00, 0xFE, 0xFF, 0x00, 0x68}))
}

func TestInspectZeroByte(t *testing.T) {
	require.Equal(t, inspect.Binary, inspect.Inspect([]byte{0x00}))
	require.Equal(t, inspect.Binary, inspect.Inspect([]byte("text with a \x00 in it")))

	// JPEG-like header with an embedded NUL.
	require.Equal(t, inspect.Binary, inspect.Inspect([]byte{0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46, 0x49, 0x46, 0x00}))
}

func TestInspectScanWindow(t *testing.T) {
	// NUL at the last scanned position.
	buf := bytes.Repeat([]byte{'a'}, inspect.MaxScanSize)
	buf[inspect.MaxScanSize-1] = 0x00
	require.Equal(t, inspect.Binary, inspect.Inspect(buf))

	// NUL just past the scan window is never seen.
	buf = bytes.Repeat([]byte{'a'}, inspect.MaxScanSize+1)
	buf[inspect.MaxScanSize] = 0x00
	require.Equal(t, inspect.UTF8, inspect.Inspect(buf))
}

func TestInspectMagicNumbers(t *testing.T) {
	require.Equal(t, inspect.Binary, inspect.Inspect([]byte("%PDF-1.4\n")))
	require.Equal(t, inspect.Binary, inspect.Inspect([]byte("\x89PNG\r\n\x1a\n")))

	// "%PD" alone is just text.
	require.Equal(t, inspect.UTF8, inspect.Inspect([]byte("%PD")))
}

func TestContentTypePredicates(t *testing.T) {
	all := []inspect.ContentType{
		inspect.Binary,
		inspect.UTF8,
		inspect.UTF8BOM,
		inspect.UTF16LE,
		inspect.UTF16BE,
		inspect.UTF32LE,
		inspect.UTF32BE,
	}

	for _, ct := range all {
		require.Equal(t, !ct.IsText(), ct.IsBinary(), "content type %s", ct)
	}

	require.True(t, inspect.Binary.IsBinary())
	require.True(t, inspect.UTF8.IsText())
	require.True(t, inspect.UTF32LE.IsText())
}

func TestContentTypeString(t *testing.T) {
	names := map[inspect.ContentType]string{
		inspect.Binary:  "binary",
		inspect.UTF8:    "UTF-8",
		inspect.UTF8BOM: "UTF-8-BOM",
		inspect.UTF16LE: "UTF-16LE",
		inspect.UTF16BE: "UTF-16BE",
		inspect.UTF32LE: "UTF-32LE",
		inspect.UTF32BE: "UTF-32BE",
	}
	for ct, name := range names {
		require.Equal(t, name, ct.String())
	}
}

func TestByteOrderMarksOrder(t *testing.T) {
	marks := inspect.ByteOrderMarks()
	require.Len(t, marks, 5)

	// Every mark must come after any longer mark it is a prefix of.
	for i, shorter := range marks {
		for j, longer := range marks {
			if j <= i || len(longer.Prefix) <= len(shorter.Prefix) {
				continue
			}
			require.False(t, bytes.HasPrefix(longer.Prefix, shorter.Prefix),
				"mark %x is shadowed by earlier mark %x", longer.Prefix, shorter.Prefix)
		}
	}
}

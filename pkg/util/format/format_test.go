package format_test

import (
	"testing"

	"github.com/ostafen/sniff/pkg/util/format"
	"github.com/stretchr/testify/require"
)

func TestFormatBytes(t *testing.T) {
	require.Equal(t, "0B", format.FormatBytes(0))
	require.Equal(t, "512B", format.FormatBytes(512))
	require.Equal(t, "1KB", format.FormatBytes(1024))
	require.Equal(t, "1.50KB", format.FormatBytes(1536))
	require.Equal(t, "4MB", format.FormatBytes(4*1024*1024))
	require.Equal(t, "2GB", format.FormatBytes(2*1024*1024*1024))
}

func TestParseBytes(t *testing.T) {
	cases := map[string]uint64{
		"0":     0,
		"1024":  1024,
		"512B":  512,
		"1KB":   1024,
		"1kb":   1024,
		"1.5KB": 1536,
		"4MB":   4 * 1024 * 1024,
		"2GB":   2 * 1024 * 1024 * 1024,
		"1TB":   1 << 40,
		" 1KB ": 1024,
	}
	for in, want := range cases {
		got, err := format.ParseBytes(in)
		require.NoError(t, err, "input %q", in)
		require.Equal(t, want, got, "input %q", in)
	}

	for _, in := range []string{"", "abc", "-1KB", "KB", "1XB"} {
		_, err := format.ParseBytes(in)
		require.Error(t, err, "input %q", in)
	}
}

func TestParseBytesOutOfRange(t *testing.T) {
	// Sizes past the int64 range must be rejected, not wrapped into a
	// value that turns negative on conversion to int.
	for _, in := range []string{"999999999TB", "8388608TB", "99999999999999GB", "18446744073709551615"} {
		_, err := format.ParseBytes(in)
		require.Error(t, err, "input %q", in)
	}

	// The largest representable whole-TB size still parses.
	got, err := format.ParseBytes("8388607TB")
	require.NoError(t, err)
	require.Equal(t, uint64(8388607)<<40, got)
}

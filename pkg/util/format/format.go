package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	_  = iota // ignore first value
	KB = 1 << (10 * iota)
	MB
	GB
	TB
)

// FormatBytes renders b as a human-readable size, avoiding .00 for whole numbers.
func FormatBytes(b int64) string {
	val := float64(b)
	var unit string

	switch {
	case b >= TB:
		val /= float64(TB)
		unit = "TB"
	case b >= GB:
		val /= float64(GB)
		unit = "GB"
	case b >= MB:
		val /= float64(MB)
		unit = "MB"
	case b >= KB:
		val /= float64(KB)
		unit = "KB"
	default:
		return fmt.Sprintf("%dB", b)
	}

	if val == float64(int(val)) {
		return fmt.Sprintf("%.0f%s", val, unit)
	}
	return fmt.Sprintf("%.2f%s", val, unit)
}

// ParseBytes parses a human-readable size such as "1024", "4KB" or "1.5MB".
// Units are binary (KB = 1024) and case-insensitive; a bare number is bytes.
// Sizes beyond the int64 range are rejected rather than wrapped.
func ParseBytes(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty size")
	}

	mul := uint64(1)
	upper := strings.ToUpper(s)
	switch {
	case strings.HasSuffix(upper, "TB"):
		mul, s = TB, s[:len(s)-2]
	case strings.HasSuffix(upper, "GB"):
		mul, s = GB, s[:len(s)-2]
	case strings.HasSuffix(upper, "MB"):
		mul, s = MB, s[:len(s)-2]
	case strings.HasSuffix(upper, "KB"):
		mul, s = KB, s[:len(s)-2]
	case strings.HasSuffix(upper, "B"):
		s = s[:len(s)-1]
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid size %q", s)
	}
	if v >= float64(math.MaxInt64)/float64(mul) {
		return 0, fmt.Errorf("size %q out of range", s)
	}
	return uint64(v * float64(mul)), nil
}

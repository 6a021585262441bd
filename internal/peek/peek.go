// Package peek reads the bounded file prefix that gets handed to the
// classifier. All I/O, and therefore all I/O failure, lives here.
package peek

import (
	"fmt"
	"io"
	"os"
)

// Peek reads at most max bytes from the start of the file at path.
// Reading less than max is not an error: short files simply yield a
// shorter prefix, and an empty file yields an empty one.
func Peek(path string, max int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: not a regular file", path)
	}

	// Never allocate more than the file can provide.
	limit := int64(max)
	if size := info.Size(); size < limit {
		limit = size
	}

	buf := make([]byte, limit)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	return buf[:n], nil
}

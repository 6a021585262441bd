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
package inspect

import (
	"bytes"
	"errors"
	"slices"

	"github.com/ostafen/sniff/pkg/table"
)

// Registry is an Inspect variant with an extensible magic-number set.
// It starts from the built-in magic numbers; Add registers more. The BOM
// table and the NUL scan are fixed: only the magic step is open-ended,
// since there is no complete list of NUL-free binary formats to ship.
//
// A Registry is not safe for concurrent Add, but Inspect on a fully built
// Registry may be called from any number of goroutines.
type Registry struct {
	magic *table.PrefixTable[struct{}]
}

// NewRegistry returns a Registry seeded with the built-in magic numbers.
func NewRegistry() *Registry {
	r := &Registry{
		magic: table.New[struct{}](),
	}
	for _, magic := range magicNumbers {
		r.magic.Insert(magic, struct{}{})
	}
	return r
}

// Add registers sig as a magic number classified as binary.
func (r *Registry) Add(sig []byte) error {
	if len(sig) == 0 {
		return errors.New("empty magic signature")
	}
	r.magic.Insert(sig, struct{}{})
	return nil
}

// Signatures returns every registered magic number, built-ins included,
// in lexicographic order.
func (r *Registry) Signatures() [][]byte {
	sigs := r.magic.Keys()
	slices.SortFunc(sigs, bytes.Compare)
	return sigs
}

// Inspect classifies buf like the package-level Inspect, but matches the
// magic step against the registered set instead of the built-in table.
func (r *Registry) Inspect(buf []byte) ContentType {
	for _, bom := range byteOrderMarks {
		if bytes.HasPrefix(buf, bom.prefix) {
			return bom.contentType
		}
	}

	if hasZeroByte(buf) {
		return Binary
	}

	matched := false
	r.magic.Walk(buf, func(sig []byte, _ struct{}) bool {
		matched = true
		return true
	})
	if matched {
		return Binary
	}
	return UTF8
}

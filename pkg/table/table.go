package table

// tableSize is 2^16, matching the uint16 hash space.
const tableSize = 65536

// PrefixTable maps short byte signatures to values and answers prefix
// queries: given a probe buffer, visit every stored signature that is a
// prefix of it. A 2^16 marker array pruned by a rolling hash keeps the
// common miss case to a couple of array reads, with an exact map behind it
// to rule out collisions.
//
// Signatures are expected to be short (magic numbers, byte order marks);
// beyond 8 bytes the hash saturates and lookups degrade to map checks.
type PrefixTable[T any] struct {
	markers [tableSize]byte
	elems   map[string]T
}

const (
	none = iota
	// prefixMarker: some stored signature passes through this hash state.
	prefixMarker
	// sigMarker: a stored signature ends exactly at this hash state.
	sigMarker
)

func New[T any]() *PrefixTable[T] {
	return &PrefixTable[T]{
		elems: make(map[string]T),
	}
}

// Insert stores v under sig, replacing any previous value.
func (t *PrefixTable[T]) Insert(sig []byte, v T) {
	var h uint16
	for _, b := range sig {
		h = hashByte(h, b)
		if t.markers[h] < prefixMarker {
			t.markers[h] = prefixMarker
		}
	}
	t.markers[h] = sigMarker
	t.elems[string(sig)] = v
}

// Get returns the value stored under exactly sig.
func (t *PrefixTable[T]) Get(sig []byte) (T, bool) {
	v, found := t.elems[string(sig)]
	return v, found
}

// Walk calls onMatch for every stored signature that is a prefix of probe,
// shortest first. It stops early when onMatch returns true, or as soon as
// no stored signature can extend the current prefix.
func (t *PrefixTable[T]) Walk(probe []byte, onMatch func(sig []byte, v T) bool) {
	var h uint16
	for i, b := range probe {
		h = hashByte(h, b)

		marker := t.markers[h]
		if marker == none {
			return
		}

		if marker == sigMarker {
			v, ok := t.elems[string(probe[:i+1])]
			if ok && onMatch(probe[:i+1], v) {
				return
			}
		}
	}
}

// Keys returns all stored signatures, in unspecified order.
func (t *PrefixTable[T]) Keys() [][]byte {
	keys := make([][]byte, 0, len(t.elems))
	for k := range t.elems {
		keys = append(keys, []byte(k))
	}
	return keys
}

// Size returns the number of stored signatures.
func (t *PrefixTable[T]) Size() int {
	return len(t.elems)
}

// hashByte folds the next signature byte into the running state. The 2-bit
// shift lets roughly 8 leading bytes influence the 16-bit hash, which is
// plenty for magic-number sized keys.
func hashByte(h uint16, b byte) uint16 {
	return (h << 2) + uint16(b)
}

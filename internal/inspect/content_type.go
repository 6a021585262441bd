package inspect

// ContentType is the outcome of inspecting a buffer: either Binary,
// or the textual encoding suggested by the buffer's leading bytes.
//
// A text result is a hint, not a guarantee: a buffer reported as
// UTF16LE carries a UTF-16LE byte order mark, but may still fail to
// decode as UTF-16LE.
type ContentType int

const (
	Binary ContentType = iota
	UTF8
	UTF8BOM
	UTF16LE
	UTF16BE
	UTF32LE
	UTF32BE
)

// IsBinary reports whether the content was classified as binary data.
func (t ContentType) IsBinary() bool {
	return t == Binary
}

// IsText reports whether the content was classified as any textual encoding.
func (t ContentType) IsText() bool {
	return !t.IsBinary()
}

func (t ContentType) String() string {
	switch t {
	case Binary:
		return "binary"
	case UTF8:
		return "UTF-8"
	case UTF8BOM:
		return "UTF-8-BOM"
	case UTF16LE:
		return "UTF-16LE"
	case UTF16BE:
		return "UTF-16BE"
	case UTF32LE:
		return "UTF-32LE"
	case UTF32BE:
		return "UTF-32BE"
	default:
		return "unknown"
	}
}

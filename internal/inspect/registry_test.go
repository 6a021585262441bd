package inspect_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ostafen/sniff/internal/inspect"
	"github.com/stretchr/testify/require"
)

func TestRegistryDefaults(t *testing.T) {
	r := inspect.NewRegistry()

	require.Equal(t, inspect.Binary, r.Inspect([]byte("%PDF-1.4\n")))
	require.Equal(t, inspect.Binary, r.Inspect([]byte("\x89PNG\r\n\x1a\n")))
	require.Equal(t, inspect.UTF8, r.Inspect([]byte("Hello")))
	require.Equal(t, inspect.UTF8, r.Inspect(nil))
	require.Equal(t, inspect.UTF32LE, r.Inspect([]byte{0xFF, 0xFE, 0x00, 0x00}))

	require.Equal(t, [][]byte{[]byte("%PDF"), []byte("\x89PNG")}, r.Signatures())
}

func TestRegistryAdd(t *testing.T) {
	gif := []byte("GIF89a")

	r := inspect.NewRegistry()
	require.Equal(t, inspect.UTF8, r.Inspect([]byte("GIF89a...")))

	require.NoError(t, r.Add(gif))
	require.Equal(t, inspect.Binary, r.Inspect([]byte("GIF89a...")))

	// Listing order is lexicographic, not insertion or map order.
	require.Equal(t, [][]byte{[]byte("%PDF"), gif, []byte("\x89PNG")}, r.Signatures())

	// Added signatures never override the BOM step or the NUL scan.
	require.Equal(t, inspect.Binary, r.Inspect([]byte("GIF\x0089a")))
	require.NoError(t, r.Add([]byte{0xFF, 0xFE}))
	require.Equal(t, inspect.UTF16LE, r.Inspect([]byte{0xFF, 0xFE, 0x68, 0x00}))
}

func TestRegistryAddEmpty(t *testing.T) {
	r := inspect.NewRegistry()
	require.Error(t, r.Add(nil))
	require.Error(t, r.Add([]byte{}))
}

func TestLoadMagicFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "magic.yaml")

	content := `signatures:
  - prefix: "47494638"
    name: gif
  - prefix: "4D 5A"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	r := inspect.NewRegistry()
	require.NoError(t, inspect.LoadMagicFile(r, path))
	require.Equal(t, [][]byte{
		[]byte("%PDF"),
		[]byte("GIF8"),
		[]byte("MZ"),
		[]byte("\x89PNG"),
	}, r.Signatures())

	require.Equal(t, inspect.Binary, r.Inspect([]byte("GIF8: not really text")))
	require.Equal(t, inspect.Binary, r.Inspect([]byte("MZ lorem ipsum")))
}

func TestLoadMagicFileInvalid(t *testing.T) {
	dir := t.TempDir()

	writeFile := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	r := inspect.NewRegistry()

	require.Error(t, inspect.LoadMagicFile(r, filepath.Join(dir, "missing.yaml")))
	require.Error(t, inspect.LoadMagicFile(r, writeFile("bad.yaml", "signatures: {")))
	require.Error(t, inspect.LoadMagicFile(r, writeFile("badhex.yaml", "signatures:\n  - prefix: \"zz\"\n")))
	require.Error(t, inspect.LoadMagicFile(r, writeFile("empty.yaml", "signatures:\n  - prefix: \"\"\n")))
}

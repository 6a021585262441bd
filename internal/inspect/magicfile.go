package inspect

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// MagicFile is the on-disk format for extra magic numbers: a list of
// hex-encoded signatures, e.g.
//
//	signatures:
//	  - prefix: "47494638"   # GIF
//	  - prefix: "25504446"   # PDF
//	    name: pdf
type MagicFile struct {
	Signatures []MagicSignature `yaml:"signatures"`
}

type MagicSignature struct {
	Name   string `yaml:"name,omitempty"`
	Prefix string `yaml:"prefix"`
}

// LoadMagicFile reads a YAML signature file and registers every signature
// on r. Spaces inside the hex string are allowed ("89 50 4E 47").
func LoadMagicFile(r *Registry, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var mf MagicFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return fmt.Errorf("invalid magic file %s: %w", path, err)
	}

	for _, sig := range mf.Signatures {
		prefix, err := hex.DecodeString(strings.ReplaceAll(sig.Prefix, " ", ""))
		if err != nil {
			return fmt.Errorf("invalid signature %q: %w", sig.Prefix, err)
		}
		if err := r.Add(prefix); err != nil {
			return fmt.Errorf("invalid signature %q: %w", sig.Prefix, err)
		}
	}
	return nil
}

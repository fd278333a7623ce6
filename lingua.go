// Package lingua provides per-language morphology (conjugation, declension,
// derivation, stemming, lemmatization) and transliteration between a
// language's native script and named romanization schemes.
//
// Languages are described by plain-text tables, one directory per ISO 639-2
// code holding info.txt, morpho.txt and trans.txt. The tables for English,
// French, Arabic and Japanese are embedded; Default loads them once.
//
//	reg, err := lingua.Default()
//	m, _ := reg.Morpho("eng")
//	m.Conjugate("walk", lingua.Categories{Tense: lingua.Present, Person: lingua.Third})
//	// walks
package lingua

import (
	"fmt"
	"io/fs"
	"os"
	"sync"
)

// Load reads every language directory at the root of fsys into a new
// registry. Directories are registered in name order.
func Load(fsys fs.FS) (*Registry, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read data root: %w", err)
	}
	reg := NewRegistry()
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		lang, err := loadLanguage(fsys, e.Name())
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", e.Name(), err)
		}
		if err := reg.register(lang); err != nil {
			return nil, err
		}
	}
	if len(reg.Languages(ServiceInfo)) == 0 {
		return nil, fmt.Errorf("no language found: %w", ErrMalformedData)
	}
	return reg, nil
}

// LoadDir is Load over a directory on disk.
func LoadDir(dir string) (*Registry, error) {
	return Load(os.DirFS(dir))
}

// Default returns the registry of the embedded tables, loaded on first use.
var Default = sync.OnceValues(func() (*Registry, error) {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		return nil, err
	}
	return Load(sub)
})

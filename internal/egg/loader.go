package egg

import (
	"path/filepath"
)

// Loader parses egg files and caches the resulting documents by cleaned
// path, mirroring the engine-side model pool: loading the same file twice
// hands back the same *Document, so replicas built through the loader
// share one copy of the geometry.
type Loader struct {
	cache map[string]*Document
}

// NewLoader returns a loader with an empty cache.
func NewLoader() *Loader {
	return &Loader{cache: make(map[string]*Document)}
}

// LoadModel returns the cached document for path, parsing the file on
// first use.
func (l *Loader) LoadModel(path string) (*Document, error) {
	key := filepath.Clean(path)
	if d, ok := l.cache[key]; ok {
		return d, nil
	}
	d, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	l.cache[key] = d
	return d, nil
}

// LoadModelUncached parses the file without touching the cache; each call
// returns an independent document.
func (l *Loader) LoadModelUncached(path string) (*Document, error) {
	return ParseFile(path)
}

// CachedCount returns how many documents the pool currently holds.
func (l *Loader) CachedCount() int { return len(l.cache) }

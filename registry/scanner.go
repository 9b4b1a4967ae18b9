package registry

import (
	"os"
	"path/filepath"
	"strings"
)

// scanDir enumerates dir's entries, deriving a key from each regular file
// whose name ends in ".pc", and inserts key -> full path into locations
// only if the key is not already present — first-wins across the whole
// search path, since scanDir is called in search-path order.
func (r *Registry) scanDir(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		r.DebugSpewf("cannot scan directory %s: %v", dir, err)
		return
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".pc") {
			continue
		}
		info, err := entry.Info()
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		key := strings.TrimSuffix(entry.Name(), ".pc")
		if _, exists := r.locations[key]; exists {
			continue
		}
		r.locations[key] = filepath.Join(dir, entry.Name())
	}
}

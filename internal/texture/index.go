package texture

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Index maps lowercase texture stems to filesystem paths.
// Formats with an alpha channel (TGA, PNG) take priority over JPEG and BMP
// for the same stem.
type Index struct {
	entries map[string]string // stem.lower() → full path
}

// BuildIndex walks dir and its subdirectories for decodable images.
func BuildIndex(dir string) *Index {
	idx := &Index{entries: make(map[string]string)}

	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !Supported(path) {
			return nil
		}
		stem := stemOf(path)

		existing, exists := idx.entries[stem]
		if !exists || (hasAlpha(path) && !hasAlpha(existing)) {
			idx.entries[stem] = path
		}
		return nil
	})

	return idx
}

func hasAlpha(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tga", ".png":
		return true
	}
	return false
}

func stemOf(name string) string {
	// Accept Windows separators in names from asset files
	name = strings.ReplaceAll(name, "\\", "/")
	base := filepath.Base(name)
	return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
}

// ResolvePath returns the filesystem path for a texture name, or ("", false).
// Directory prefix and extension of texName are ignored.
func (idx *Index) ResolvePath(texName string) (string, bool) {
	path, ok := idx.entries[stemOf(texName)]
	return path, ok
}

// Len returns the number of indexed textures.
func (idx *Index) Len() int {
	return len(idx.entries)
}

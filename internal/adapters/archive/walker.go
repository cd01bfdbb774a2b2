package archive

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// DefaultIgnores lists directory and file names that never belong in a project archive.
var DefaultIgnores = []string{
	".git",
	".jj",
	"node_modules",
	".gradle",
	"build",
	"Pods",
	"DerivedData",
	".DS_Store",
	"*.tar.gz",
}

// Entry is a walked file system entry with its slash-separated path relative to the root.
type Entry struct {
	Path    string
	RelPath string
	Dir     fs.DirEntry
}

// Walk yields every entry under root in lexical order, except root itself and
// entries whose base name matches one of ignores. Ignored directories are not descended.
func Walk(root string, ignores []string) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				yield(Entry{Path: path}, err)
				return filepath.SkipAll
			}
			if path == root {
				return nil
			}

			if ignored(d.Name(), ignores) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				yield(Entry{Path: path}, err)
				return filepath.SkipAll
			}

			if !yield(Entry{Path: path, RelPath: filepath.ToSlash(rel), Dir: d}, nil) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func ignored(name string, ignores []string) bool {
	for _, pattern := range ignores {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

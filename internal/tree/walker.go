// Package tree enumerates directory trees into bundle manifests.
package tree

import (
	"io/fs"
	"path/filepath"

	"github.com/pkgfreeze/pkgfreeze/internal/domain"
)

// FSWalker implements domain.TreeWalker over the local filesystem.
// Enumeration is lexical within each directory, so the resulting manifest
// order is deterministic for a given tree.
type FSWalker struct{}

// NewFSWalker creates a new FSWalker
func NewFSWalker() *FSWalker {
	return &FSWalker{}
}

// Walk enumerates every file and directory under root, tagging each entry
// with a destination path rooted at prefix. Exclusion globs are matched
// against base names; an excluded directory is pruned whole.
func (w *FSWalker) Walk(root, prefix string, excludes []string) (domain.Manifest, error) {
	var manifest domain.Manifest

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		if matchesAny(d.Name(), excludes) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		dest := filepath.ToSlash(filepath.Join(prefix, rel))

		if d.IsDir() {
			manifest = append(manifest, domain.NewDirEntry(dest, path))
		} else {
			manifest = append(manifest, domain.NewFileEntry(dest, path))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return manifest, nil
}

func matchesAny(name string, patterns []string) bool {
	for _, pattern := range patterns {
		// filepath.Match only errors on malformed patterns; those are
		// static and covered by tests.
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

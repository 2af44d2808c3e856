// Package filesystem holds the filesystem adapters of the pipeline: the
// doc-tree walker that recovers entries from rustdoc filenames and the
// repository that lays out the docset bundle on disk.
package filesystem

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"rustdocset/internal/domain"
	"rustdocset/internal/ports"
)

// RootSkipDirs are direct children of the doc root reserved by rustdoc
// for its own output (rendered sources and trait-implementor listings).
// They carry no indexable symbols and are never descended into.
var RootSkipDirs = map[string]struct{}{
	"src":          {},
	"implementors": {},
}

// Walker implements ports.TreeWalker with a recursive depth-first
// traversal of the generated HTML tree.
type Walker struct{}

// Ensure Walker implements TreeWalker
var _ ports.TreeWalker = (*Walker)(nil)

// NewWalker creates a new doc-tree walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Walk returns every entry in the tree rooted at docRoot. The order is
// directory files first, then subtrees; no ordering is promised to
// callers. Any unreadable directory fails the whole walk.
func (w *Walker) Walk(docRoot string) ([]domain.Entry, error) {
	return walkDir(docRoot, "", nil)
}

// walkDir collects the entries of one subtree. relDir is the directory
// relative to the doc root with forward slashes ("" at the root), and
// modPath is the module path derived from relDir's segments. Each call
// returns an owned slice; parents merge child results, so no state is
// shared across sibling subtrees.
func walkDir(docRoot, relDir string, modPath domain.ModulePath) ([]domain.Entry, error) {
	dir := filepath.Join(docRoot, filepath.FromSlash(relDir))
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var entries []domain.Entry
	var subdirs []string

	for _, de := range dirEntries {
		if de.IsDir() {
			if modPath.IsEmpty() {
				if _, skip := RootSkipDirs[de.Name()]; skip {
					continue
				}
			}
			subdirs = append(subdirs, de.Name())
			continue
		}
		if entry, ok := domain.ParseEntry(modPath, path.Join(relDir, de.Name())); ok {
			entries = append(entries, entry)
		}
	}

	// Subtree results follow the current directory's own files.
	for _, name := range subdirs {
		sub, err := walkDir(docRoot, path.Join(relDir, name), modPath.Push(name))
		if err != nil {
			return nil, err
		}
		entries = append(entries, sub...)
	}

	return entries, nil
}

package ports

import "rustdocset/internal/domain"

// TreeWalker produces the entry sequence for a generated HTML tree.
type TreeWalker interface {
	Walk(docRoot string) ([]domain.Entry, error)
}

// DocsetRepository performs the filesystem side of bundle assembly.
type DocsetRepository interface {
	// Reset deletes any pre-existing bundle at docsetRoot and creates
	// the Contents/Resources skeleton.
	Reset(docsetRoot string) error
	// CopyDocuments recursively copies the HTML tree at docRoot into
	// the bundle's Documents directory.
	CopyDocuments(docRoot, docsetRoot string) error
	// WriteMetadata writes the bundle's Info.plist derived from the
	// package display name.
	WriteMetadata(docsetRoot, packageName string) error
}

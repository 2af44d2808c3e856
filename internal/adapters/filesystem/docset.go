package filesystem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"rustdocset/internal/domain"
	"rustdocset/internal/ports"
)

// infoPlistFormat is the fixed Info.plist body. All four placeholders
// are the package display name; dashIndexFilePath points at the
// package's own root index page inside Documents.
const infoPlistFormat = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
    <key>CFBundleIdentifier</key>
        <string>%s</string>
    <key>CFBundleName</key>
        <string>%s</string>
    <key>dashIndexFilePath</key>
        <string>%s/index.html</string>
    <key>DocSetPlatformFamily</key>
        <string>%s</string>
    <key>isDashDocset</key>
        <true/>
</dict>
</plist>
`

// Repository implements ports.DocsetRepository on the local filesystem.
type Repository struct{}

// Ensure Repository implements DocsetRepository
var _ ports.DocsetRepository = (*Repository)(nil)

// NewRepository creates a new docset filesystem repository.
func NewRepository() *Repository {
	return &Repository{}
}

// Reset deletes any bundle left by a previous run and creates the
// Contents/Resources skeleton. Deleting first guarantees a completed
// run never mixes stale and fresh content.
func (r *Repository) Reset(docsetRoot string) error {
	if _, err := os.Stat(docsetRoot); err == nil {
		if err := os.RemoveAll(docsetRoot); err != nil {
			return fmt.Errorf("failed to remove previous bundle %s: %w", docsetRoot, err)
		}
	}
	resources := filepath.Join(docsetRoot, domain.ContentsDir, domain.ResourcesDir)
	if err := os.MkdirAll(resources, 0755); err != nil {
		return fmt.Errorf("failed to create bundle skeleton %s: %w", resources, err)
	}
	return nil
}

// CopyDocuments copies the HTML tree at docRoot into the bundle's
// Documents directory, preserving relative structure.
func (r *Repository) CopyDocuments(docRoot, docsetRoot string) error {
	documents := filepath.Join(docsetRoot, domain.ContentsDir, domain.ResourcesDir, domain.DocumentsDir)
	return copyTree(docRoot, documents)
}

// WriteMetadata writes the bundle's Info.plist.
func (r *Repository) WriteMetadata(docsetRoot, packageName string) error {
	plistPath := filepath.Join(docsetRoot, domain.ContentsDir, domain.PlistFileName)
	body := fmt.Sprintf(infoPlistFormat, packageName, packageName, packageName, packageName)
	if err := os.WriteFile(plistPath, []byte(body), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", plistPath, err)
	}
	return nil
}

// copyTree recursively copies src into dst. Directories are created as
// needed and regular files copied byte-for-byte; symlinks and special
// files are not handled.
func copyTree(src, dst string) error {
	if err := os.MkdirAll(dst, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dst, err)
	}

	dirEntries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", src, err)
	}

	for _, de := range dirEntries {
		srcPath := filepath.Join(src, de.Name())
		dstPath := filepath.Join(dst, de.Name())

		switch {
		case de.IsDir():
			if err := copyTree(srcPath, dstPath); err != nil {
				return err
			}
		case de.Type().IsRegular():
			if err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
	}

	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}

	return out.Close()
}

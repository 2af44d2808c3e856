// Package cargo adapts the cargo toolchain: workspace discovery through
// Cargo.toml manifests and documentation builds through the cargo binary.
package cargo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"rustdocset/internal/config"
)

// ErrNoManifest indicates no Cargo.toml was found upward from the
// working directory.
var ErrNoManifest = errors.New("no Cargo.toml found")

// Manifest holds the subset of Cargo.toml this tool reads.
type Manifest struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
	Workspace *struct {
		Members []string `toml:"members"`
	} `toml:"workspace"`
}

// Workspace is a resolved cargo workspace: its root directory, the
// nearest manifest to the working directory, and the root manifest.
type Workspace struct {
	// Root is the workspace root directory, the one holding target/.
	Root string
	// Current is the manifest nearest to the working directory.
	Current Manifest
	// RootManifest is the manifest at Root. Equal to Current in
	// single-package workspaces.
	RootManifest Manifest
}

// FindWorkspace resolves the workspace enclosing dir. The nearest
// Cargo.toml upward is the current package; a manifest further up with
// a [workspace] table takes over as the root.
func FindWorkspace(dir string) (*Workspace, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	currentDir, current, err := findManifest(abs)
	if err != nil {
		return nil, err
	}

	ws := &Workspace{Root: currentDir, Current: current, RootManifest: current}
	if current.Workspace != nil {
		return ws, nil
	}

	// Look further up for a workspace manifest claiming this package.
	for parent := filepath.Dir(currentDir); parent != filepath.Dir(parent); parent = filepath.Dir(parent) {
		manifestPath := filepath.Join(parent, "Cargo.toml")
		if _, err := os.Stat(manifestPath); err != nil {
			continue
		}
		var m Manifest
		if _, err := toml.DecodeFile(manifestPath, &m); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", manifestPath, err)
		}
		if m.Workspace != nil {
			ws.Root = parent
			ws.RootManifest = m
			break
		}
	}

	return ws, nil
}

// findManifest walks upward from dir to the nearest Cargo.toml.
func findManifest(dir string) (string, Manifest, error) {
	for {
		manifestPath := filepath.Join(dir, "Cargo.toml")
		if _, err := os.Stat(manifestPath); err == nil {
			var m Manifest
			if _, err := toml.DecodeFile(manifestPath, &m); err != nil {
				return "", Manifest{}, fmt.Errorf("failed to parse %s: %w", manifestPath, err)
			}
			return dir, m, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", Manifest{}, fmt.Errorf("%w upward from %s", ErrNoManifest, dir)
		}
		dir = parent
	}
}

// TargetDir returns the cargo build output directory, honoring the
// CARGO_TARGET_DIR override the same way cargo does.
func (ws *Workspace) TargetDir() string {
	if env := config.TargetDir(); env != "" {
		if filepath.IsAbs(env) {
			return env
		}
		return filepath.Join(ws.Root, env)
	}
	return filepath.Join(ws.Root, "target")
}

// DocDir returns the directory cargo doc writes the HTML tree into.
func (ws *Workspace) DocDir() string {
	return filepath.Join(ws.TargetDir(), "doc")
}

// DocsetParentDir returns the directory docset bundles are written under.
func (ws *Workspace) DocsetParentDir() string {
	return filepath.Join(ws.TargetDir(), "docset")
}

// RootName returns the workspace root directory name, the display name
// used when more than one package is documented.
func (ws *Workspace) RootName() string {
	return filepath.Base(ws.Root)
}

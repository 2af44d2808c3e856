package domain

import "strings"

// PathSeparator joins the segments of a qualified Rust symbol name.
const PathSeparator = "::"

// ModulePath is the chain of enclosing module names for a point in the
// rustdoc tree, outermost first. The doc root has an empty path.
type ModulePath []string

// Push returns a new path extended with seg. The receiver is not modified,
// so sibling subtrees never observe each other's segments.
func (p ModulePath) Push(seg string) ModulePath {
	child := make(ModulePath, len(p), len(p)+1)
	copy(child, p)
	return append(child, seg)
}

// IsEmpty reports whether the path is at the doc root.
func (p ModulePath) IsEmpty() bool {
	return len(p) == 0
}

// IsPackageRoot reports whether the path is a single top-level segment,
// i.e. the root directory of one documented package.
func (p ModulePath) IsPackageRoot() bool {
	return len(p) == 1
}

func (p ModulePath) String() string {
	return strings.Join(p, PathSeparator)
}

// Qualify returns the fully qualified name of ident inside this path.
func (p ModulePath) Qualify(ident string) string {
	if p.IsEmpty() {
		return ident
	}
	return p.String() + PathSeparator + ident
}

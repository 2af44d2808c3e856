package domain

// Docset bundle layout, fixed by the Dash docset format.
const (
	ContentsDir   = "Contents"
	ResourcesDir  = "Resources"
	DocumentsDir  = "Documents"
	IndexFileName = "docSet.dsidx"
	PlistFileName = "Info.plist"
)

// DocsetDirName returns the bundle directory name for a package.
func DocsetDirName(packageName string) string {
	return packageName + ".docset"
}

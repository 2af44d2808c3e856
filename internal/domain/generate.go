package domain

// PackageMode selects which workspace packages are documented.
type PackageMode int

const (
	// PackageCurrent documents the package of the working directory.
	PackageCurrent PackageMode = iota
	// PackageAll documents every workspace member.
	PackageAll
	// PackageSingle documents one named package.
	PackageSingle
	// PackageList documents an explicit set of packages.
	PackageList
)

func (m PackageMode) String() string {
	switch m {
	case PackageCurrent:
		return "current"
	case PackageAll:
		return "all"
	case PackageSingle:
		return "single"
	case PackageList:
		return "list"
	default:
		return "unknown"
	}
}

// PackageSpec is a package selection: a mode plus the names it needs.
// Names is empty for Current and All, holds one name for Single, and
// the full set for List.
type PackageSpec struct {
	Mode  PackageMode
	Names []string
}

// GenerateConfig parameterizes one docset generation run. The fields
// only shape the cargo doc invocation and the bundle display name; the
// walk, index, and copy stages are unaffected by them.
type GenerateConfig struct {
	Spec              PackageSpec
	NoDependencies    bool
	PrivateItems      bool
	Features          []string
	NoDefaultFeatures bool
	AllFeatures       bool
	Exclude           []string
	Clean             bool
	Lib               bool
	// Bins is nil when no binary filter applies; an empty non-nil slice
	// selects every binary target.
	Bins []string
}

// DefaultGenerateConfig mirrors the defaults of the original tool:
// clean doc output first, default features off, current package.
func DefaultGenerateConfig() GenerateConfig {
	return GenerateConfig{
		Spec:              PackageSpec{Mode: PackageCurrent},
		NoDefaultFeatures: true,
		Clean:             true,
	}
}

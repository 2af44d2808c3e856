package config

import "os"

// TargetDir returns the cargo target directory override from
// CARGO_TARGET_DIR, or "" when cargo's default target/ applies.
func TargetDir() string {
	return os.Getenv("CARGO_TARGET_DIR")
}

// CargoBin returns the cargo executable to invoke, overridable through
// RUSTDOCSET_CARGO (useful for toolchain wrappers).
func CargoBin() string {
	if env := os.Getenv("RUSTDOCSET_CARGO"); env != "" {
		return env
	}
	return "cargo"
}

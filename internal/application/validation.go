package application

import (
	"fmt"

	"rustdocset/internal/domain"
)

// ValidateGenerate checks a generation config for option combinations
// that can never succeed. It runs before the doc build and before any
// output directory is touched.
func ValidateGenerate(cfg domain.GenerateConfig) error {
	if len(cfg.Exclude) > 0 && cfg.Spec.Mode != domain.PackageAll {
		return &UsageError{Message: "--exclude can only be used together with --all"}
	}

	switch cfg.Spec.Mode {
	case domain.PackageSingle:
		if len(cfg.Spec.Names) != 1 {
			return &UsageError{
				Message: fmt.Sprintf("single package mode needs exactly one name, got %d", len(cfg.Spec.Names)),
			}
		}
	case domain.PackageList:
		if len(cfg.Spec.Names) == 0 {
			return &UsageError{Message: "package list mode needs at least one name"}
		}
	case domain.PackageCurrent, domain.PackageAll:
		if len(cfg.Spec.Names) != 0 {
			return &UsageError{
				Message: fmt.Sprintf("%s package mode takes no package names", cfg.Spec.Mode),
			}
		}
	}

	return nil
}

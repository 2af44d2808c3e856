package cargo

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"rustdocset/internal/config"
	"rustdocset/internal/domain"
	"rustdocset/internal/ports"
)

// Builder implements ports.DocBuilder by shelling out to the cargo
// binary. Cargo's own output goes straight to the user's terminal.
type Builder struct {
	ws *Workspace
}

// Ensure Builder implements DocBuilder
var _ ports.DocBuilder = (*Builder)(nil)

// NewBuilder creates a doc builder for the given workspace.
func NewBuilder(ws *Workspace) *Builder {
	return &Builder{ws: ws}
}

// Build optionally cleans previous doc output, runs cargo doc with the
// flags derived from cfg, and reports where the HTML tree landed.
func (b *Builder) Build(ctx context.Context, cfg domain.GenerateConfig) (*ports.BuildResult, error) {
	name, err := b.displayName(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Clean {
		if err := b.run(ctx, "clean", "--doc"); err != nil {
			return nil, fmt.Errorf("cargo clean failed: %w", err)
		}
	}

	if err := b.run(ctx, docArgs(cfg)...); err != nil {
		return nil, fmt.Errorf("cargo doc failed: %w", err)
	}

	return &ports.BuildResult{DocRoot: b.ws.DocDir(), PackageName: name}, nil
}

func (b *Builder) run(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, config.CargoBin(), args...)
	cmd.Dir = b.ws.Root
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// displayName resolves the bundle display name for a package selection:
// the current package's manifest name, the single named package, or the
// workspace root directory name when several packages are documented.
func (b *Builder) displayName(cfg domain.GenerateConfig) (string, error) {
	switch cfg.Spec.Mode {
	case domain.PackageCurrent:
		if b.ws.Current.Package.Name == "" {
			return "", fmt.Errorf("manifest in %s has no [package]; pick a package explicitly", b.ws.Root)
		}
		return b.ws.Current.Package.Name, nil
	case domain.PackageSingle:
		return cfg.Spec.Names[0], nil
	default:
		return b.ws.RootName(), nil
	}
}

// docArgs translates a generate config into a cargo doc argument list.
func docArgs(cfg domain.GenerateConfig) []string {
	args := []string{"doc"}

	if cfg.NoDependencies {
		args = append(args, "--no-deps")
	}
	if cfg.PrivateItems {
		args = append(args, "--document-private-items")
	}
	if cfg.NoDefaultFeatures {
		args = append(args, "--no-default-features")
	}
	if cfg.AllFeatures {
		args = append(args, "--all-features")
	}
	if len(cfg.Features) > 0 {
		args = append(args, "--features", strings.Join(cfg.Features, ","))
	}

	switch cfg.Spec.Mode {
	case domain.PackageAll:
		args = append(args, "--workspace")
		for _, name := range cfg.Exclude {
			args = append(args, "--exclude", name)
		}
	case domain.PackageSingle, domain.PackageList:
		for _, name := range cfg.Spec.Names {
			args = append(args, "--package", name)
		}
	}

	if cfg.Lib {
		args = append(args, "--lib")
	}
	switch {
	case cfg.Bins == nil:
	case len(cfg.Bins) == 0:
		args = append(args, "--bins")
	default:
		for _, name := range cfg.Bins {
			args = append(args, "--bin", name)
		}
	}

	return args
}

package ports

import (
	"context"

	"rustdocset/internal/domain"
)

// BuildResult describes where the upstream documentation build left its
// output and what the resulting bundle should be named after.
type BuildResult struct {
	// DocRoot is the directory holding the generated HTML tree.
	DocRoot string
	// PackageName is the display name for the docset bundle.
	PackageName string
}

// DocBuilder runs the upstream documentation generator. A failed build
// is fatal; the pipeline never runs against partial doc output.
type DocBuilder interface {
	Build(ctx context.Context, cfg domain.GenerateConfig) (*BuildResult, error)
}

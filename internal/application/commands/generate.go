package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"rustdocset/internal/application"
	"rustdocset/internal/domain"
	"rustdocset/internal/ports"
)

// GenerateResult contains the result of a docset generation run.
type GenerateResult struct {
	DocsetPath  string
	PackageName string
	EntryCount  int
	Message     string
}

// GenerateCommand builds documentation, walks the HTML tree, and
// assembles the docset bundle. Steps run strictly in order: validate,
// build, walk, reset bundle, write index, copy documents, write
// metadata. A failure at any step aborts the run; the bundle directory
// is deleted before anything is written, so a crash mid-assembly is
// recovered by re-running from scratch.
type GenerateCommand struct {
	builder ports.DocBuilder
	walker  ports.TreeWalker
	index   ports.SearchIndex
	docsets ports.DocsetRepository

	Config domain.GenerateConfig
	// OutputDir is the directory the bundle is created under.
	OutputDir string
}

// NewGenerateCommand creates a new GenerateCommand.
func NewGenerateCommand(
	builder ports.DocBuilder,
	walker ports.TreeWalker,
	index ports.SearchIndex,
	docsets ports.DocsetRepository,
	outputDir string,
	cfg domain.GenerateConfig,
) *GenerateCommand {
	return &GenerateCommand{
		builder:   builder,
		walker:    walker,
		index:     index,
		docsets:   docsets,
		Config:    cfg,
		OutputDir: outputDir,
	}
}

// Validate checks the configuration before any filesystem mutation.
func (c *GenerateCommand) Validate() error {
	if c.OutputDir == "" {
		return &application.UsageError{Message: "output directory is required"}
	}
	return application.ValidateGenerate(c.Config)
}

// Execute runs the full generation pipeline.
func (c *GenerateCommand) Execute(ctx context.Context) (*GenerateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	build, err := c.builder.Build(ctx, c.Config)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", application.ErrDocBuild, err)
	}

	entries, err := c.walker.Walk(build.DocRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to walk documentation tree: %w", err)
	}

	docsetRoot := filepath.Join(c.OutputDir, domain.DocsetDirName(build.PackageName))
	if err := c.docsets.Reset(docsetRoot); err != nil {
		return nil, err
	}
	if err := c.index.Write(docsetRoot, entries); err != nil {
		return nil, fmt.Errorf("failed to build search index: %w", err)
	}
	if err := c.docsets.CopyDocuments(build.DocRoot, docsetRoot); err != nil {
		return nil, err
	}
	if err := c.docsets.WriteMetadata(docsetRoot, build.PackageName); err != nil {
		return nil, err
	}

	return &GenerateResult{
		DocsetPath:  docsetRoot,
		PackageName: build.PackageName,
		EntryCount:  len(entries),
		Message:     fmt.Sprintf("Generated %s (%d entries)", docsetRoot, len(entries)),
	}, nil
}

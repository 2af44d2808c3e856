package commands

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"rustdocset/internal/adapters/filesystem"
	"rustdocset/internal/adapters/sqlite"
	"rustdocset/internal/application"
	"rustdocset/internal/domain"
	"rustdocset/internal/ports"
)

// fakeBuilder serves a pre-built HTML tree instead of running cargo.
type fakeBuilder struct {
	docRoot string
	name    string
	err     error
}

func (b *fakeBuilder) Build(ctx context.Context, cfg domain.GenerateConfig) (*ports.BuildResult, error) {
	if b.err != nil {
		return nil, b.err
	}
	return &ports.BuildResult{DocRoot: b.docRoot, PackageName: b.name}, nil
}

func writeDocTree(t *testing.T, paths []string) string {
	t.Helper()
	root := t.TempDir()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("failed to create %s: %v", filepath.Dir(full), err)
		}
		if err := os.WriteFile(full, []byte("<html></html>"), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", full, err)
		}
	}
	return root
}

func newCommand(builder ports.DocBuilder, outputDir string, cfg domain.GenerateConfig) *GenerateCommand {
	return NewGenerateCommand(
		builder,
		filesystem.NewWalker(),
		sqlite.NewIndex(),
		filesystem.NewRepository(),
		outputDir,
		cfg,
	)
}

func indexRows(t *testing.T, docsetRoot string) map[[3]string]struct{} {
	t.Helper()
	dbPath := filepath.Join(docsetRoot, domain.ContentsDir, domain.ResourcesDir, domain.IndexFileName)
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("failed to open index: %v", err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT name, type, path FROM searchIndex`)
	if err != nil {
		t.Fatalf("failed to query index: %v", err)
	}
	defer rows.Close()

	set := make(map[[3]string]struct{})
	for rows.Next() {
		var name, typ, path string
		if err := rows.Scan(&name, &typ, &path); err != nil {
			t.Fatalf("failed to scan row: %v", err)
		}
		set[[3]string{name, typ, path}] = struct{}{}
	}
	return set
}

func TestGenerateAssemblesBundle(t *testing.T) {
	docRoot := writeDocTree(t, []string{
		"index.html",
		"mycrate/index.html",
		"mycrate/widgets/struct.Foo.html",
		"mycrate/widgets/index.html",
	})
	outputDir := t.TempDir()

	cmd := newCommand(&fakeBuilder{docRoot: docRoot, name: "mycrate"}, outputDir, domain.DefaultGenerateConfig())
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.PackageName != "mycrate" {
		t.Errorf("package name = %q", result.PackageName)
	}
	if result.EntryCount != 3 {
		t.Errorf("entry count = %d, want 3", result.EntryCount)
	}

	wantRoot := filepath.Join(outputDir, "mycrate.docset")
	if result.DocsetPath != wantRoot {
		t.Errorf("docset path = %q, want %q", result.DocsetPath, wantRoot)
	}

	// Documents copy preserves the tree, root index included.
	documents := filepath.Join(wantRoot, domain.ContentsDir, domain.ResourcesDir, domain.DocumentsDir)
	for _, rel := range []string{"index.html", "mycrate/widgets/struct.Foo.html"} {
		if _, err := os.Stat(filepath.Join(documents, filepath.FromSlash(rel))); err != nil {
			t.Errorf("copied file %s missing: %v", rel, err)
		}
	}

	if _, err := os.Stat(filepath.Join(wantRoot, domain.ContentsDir, domain.PlistFileName)); err != nil {
		t.Errorf("Info.plist missing: %v", err)
	}

	rows := indexRows(t, wantRoot)
	want := [][3]string{
		{"mycrate", "Package", "mycrate/index.html"},
		{"mycrate::widgets::Foo", "Struct", "mycrate/widgets/struct.Foo.html"},
		{"mycrate::widgets::index", "Module", "mycrate/widgets/index.html"},
	}
	if len(rows) != len(want) {
		t.Fatalf("index holds %d rows, want %d", len(rows), len(want))
	}
	for _, w := range want {
		if _, ok := rows[w]; !ok {
			t.Errorf("missing index row %v", w)
		}
	}
}

func TestGenerateRebuildIsIdempotent(t *testing.T) {
	docRoot := writeDocTree(t, []string{
		"mycrate/index.html",
		"mycrate/fn.run.html",
	})
	outputDir := t.TempDir()
	cmd := newCommand(&fakeBuilder{docRoot: docRoot, name: "mycrate"}, outputDir, domain.DefaultGenerateConfig())

	first, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	firstRows := indexRows(t, first.DocsetPath)

	second, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	secondRows := indexRows(t, second.DocsetPath)

	if len(firstRows) != len(secondRows) {
		t.Fatalf("row counts differ: %d vs %d", len(firstRows), len(secondRows))
	}
	for row := range firstRows {
		if _, ok := secondRows[row]; !ok {
			t.Errorf("row %v missing after rebuild", row)
		}
	}

	documents := filepath.Join(second.DocsetPath, domain.ContentsDir, domain.ResourcesDir, domain.DocumentsDir)
	original, err := os.ReadFile(filepath.Join(docRoot, "mycrate", "index.html"))
	if err != nil {
		t.Fatalf("failed to read original: %v", err)
	}
	copied, err := os.ReadFile(filepath.Join(documents, "mycrate", "index.html"))
	if err != nil {
		t.Fatalf("failed to read copy: %v", err)
	}
	if string(original) != string(copied) {
		t.Error("Documents content differs after rebuild")
	}
}

func TestGenerateRemovesStaleBundle(t *testing.T) {
	docRoot := writeDocTree(t, []string{"mycrate/index.html"})
	outputDir := t.TempDir()

	stale := filepath.Join(outputDir, "mycrate.docset", domain.ContentsDir, domain.ResourcesDir, domain.DocumentsDir, "old.html")
	if err := os.MkdirAll(filepath.Dir(stale), 0755); err != nil {
		t.Fatalf("failed to create stale bundle: %v", err)
	}
	if err := os.WriteFile(stale, []byte("stale"), 0644); err != nil {
		t.Fatalf("failed to write stale file: %v", err)
	}

	cmd := newCommand(&fakeBuilder{docRoot: docRoot, name: "mycrate"}, outputDir, domain.DefaultGenerateConfig())
	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("stale file survived the rebuild")
	}
}

func TestGenerateUsageErrorBeforeAnyMutation(t *testing.T) {
	docRoot := writeDocTree(t, []string{"mycrate/index.html"})
	outputDir := t.TempDir()

	cfg := domain.DefaultGenerateConfig()
	cfg.Spec = domain.PackageSpec{Mode: domain.PackageSingle, Names: []string{"mycrate"}}
	cfg.Exclude = []string{"helper"}

	cmd := newCommand(&fakeBuilder{docRoot: docRoot, name: "mycrate"}, outputDir, cfg)
	_, err := cmd.Execute(context.Background())
	if err == nil {
		t.Fatal("expected usage error")
	}
	if !errors.Is(err, application.ErrUsage) {
		t.Errorf("error %v is not ErrUsage", err)
	}

	// Nothing may be written before validation passes.
	dirEntries, readErr := os.ReadDir(outputDir)
	if readErr != nil {
		t.Fatalf("failed to read output dir: %v", readErr)
	}
	if len(dirEntries) != 0 {
		t.Errorf("output dir not empty after usage error: %v", dirEntries)
	}
}

func TestGenerateBuildFailureAborts(t *testing.T) {
	outputDir := t.TempDir()
	cmd := newCommand(&fakeBuilder{err: errors.New("rustdoc exited with status 101")}, outputDir, domain.DefaultGenerateConfig())

	_, err := cmd.Execute(context.Background())
	if err == nil {
		t.Fatal("expected build failure to abort the run")
	}
	if !errors.Is(err, application.ErrDocBuild) {
		t.Errorf("error %v is not ErrDocBuild", err)
	}

	dirEntries, readErr := os.ReadDir(outputDir)
	if readErr != nil {
		t.Fatalf("failed to read output dir: %v", readErr)
	}
	if len(dirEntries) != 0 {
		t.Errorf("output dir not empty after build failure: %v", dirEntries)
	}
}

func TestGenerateDuplicateEntriesFail(t *testing.T) {
	// Two files that parse to the same (name, kind, path) cannot occur
	// on a real filesystem, so feed the index a duplicating walker.
	docRoot := writeDocTree(t, []string{"mycrate/index.html"})
	outputDir := t.TempDir()

	cmd := NewGenerateCommand(
		&fakeBuilder{docRoot: docRoot, name: "mycrate"},
		duplicatingWalker{},
		sqlite.NewIndex(),
		filesystem.NewRepository(),
		outputDir,
		domain.DefaultGenerateConfig(),
	)

	if _, err := cmd.Execute(context.Background()); err == nil {
		t.Fatal("expected duplicate triple to fail generation")
	}
}

type duplicatingWalker struct{}

func (duplicatingWalker) Walk(docRoot string) ([]domain.Entry, error) {
	e := domain.Entry{Name: "mycrate", Kind: domain.KindPackage, Path: "mycrate/index.html"}
	return []domain.Entry{e, e}, nil
}

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rustdocset/internal/adapters/cargo"
	"rustdocset/internal/adapters/filesystem"
	"rustdocset/internal/adapters/sqlite"
	"rustdocset/internal/application/commands"
	"rustdocset/internal/domain"
)

var (
	genAll             bool
	genPackages        []string
	genExclude         []string
	genNoDeps          bool
	genPrivateItems    bool
	genFeatures        []string
	genAllFeatures     bool
	genDefaultFeatures bool
	genNoClean         bool
	genLib             bool
	genBins            bool
	genBinNames        []string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build documentation and assemble the docset bundle",
	Long: `Build documentation with cargo doc and assemble a docset bundle
under target/docset/.

With no flags the current package is documented. Use --all for every
workspace member, or -p one or more times for specific packages.

Examples:
  rustdocset generate
  rustdocset generate --all --exclude xtask
  rustdocset generate -p mycrate --no-deps --features async,tls`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig()
		if err != nil {
			return err
		}

		ws, err := cargo.FindWorkspace(".")
		if err != nil {
			return err
		}

		generate := commands.NewGenerateCommand(
			cargo.NewBuilder(ws),
			filesystem.NewWalker(),
			sqlite.NewIndex(),
			filesystem.NewRepository(),
			ws.DocsetParentDir(),
			cfg,
		)
		result, err := generate.Execute(context.Background())
		if err != nil {
			return err
		}

		fmt.Println(successStyle.Render(result.Message))
		fmt.Println(dimStyle.Render("Add it to your documentation browser to start searching."))
		return nil
	},
}

// buildConfig maps the flag surface onto a generate configuration.
func buildConfig() (domain.GenerateConfig, error) {
	cfg := domain.DefaultGenerateConfig()

	switch {
	case genAll:
		if len(genPackages) > 0 {
			return cfg, fmt.Errorf("--all and --package are mutually exclusive")
		}
		cfg.Spec = domain.PackageSpec{Mode: domain.PackageAll}
	case len(genPackages) == 1:
		cfg.Spec = domain.PackageSpec{Mode: domain.PackageSingle, Names: genPackages}
	case len(genPackages) > 1:
		cfg.Spec = domain.PackageSpec{Mode: domain.PackageList, Names: genPackages}
	}

	cfg.NoDependencies = genNoDeps
	cfg.PrivateItems = genPrivateItems
	cfg.Features = genFeatures
	cfg.AllFeatures = genAllFeatures
	cfg.NoDefaultFeatures = !genDefaultFeatures
	cfg.Exclude = genExclude
	cfg.Clean = !genNoClean
	cfg.Lib = genLib

	switch {
	case genBins && len(genBinNames) > 0:
		return cfg, fmt.Errorf("--bins and --bin are mutually exclusive")
	case genBins:
		cfg.Bins = []string{}
	case len(genBinNames) > 0:
		cfg.Bins = genBinNames
	}

	return cfg, nil
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().BoolVar(&genAll, "all", false, "document all workspace members")
	generateCmd.Flags().StringSliceVarP(&genPackages, "package", "p", nil, "package(s) to document (repeatable)")
	generateCmd.Flags().StringSliceVar(&genExclude, "exclude", nil, "packages to skip (only with --all)")
	generateCmd.Flags().BoolVar(&genNoDeps, "no-deps", false, "skip documentation for dependencies")
	generateCmd.Flags().BoolVar(&genPrivateItems, "document-private-items", false, "include non-public items")
	generateCmd.Flags().StringSliceVar(&genFeatures, "features", nil, "features to activate")
	generateCmd.Flags().BoolVar(&genAllFeatures, "all-features", false, "activate all features")
	generateCmd.Flags().BoolVar(&genDefaultFeatures, "default-features", false, "activate default features")
	generateCmd.Flags().BoolVar(&genNoClean, "no-clean", false, "keep previous doc build output")
	generateCmd.Flags().BoolVar(&genLib, "lib", false, "document only the library target")
	generateCmd.Flags().BoolVar(&genBins, "bins", false, "document all binary targets")
	generateCmd.Flags().StringSliceVar(&genBinNames, "bin", nil, "binary target(s) to document (repeatable)")
}

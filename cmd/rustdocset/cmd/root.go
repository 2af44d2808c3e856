package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rustdocset/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "rustdocset",
	Short: "Generate Dash docsets from cargo doc output",
	Long: `rustdocset runs cargo doc for a Rust workspace, indexes every
documented symbol from the generated HTML tree, and packages the result
as a <package>.docset bundle under target/docset/ for use with Dash,
Zeal, and compatible documentation browsers.`,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("rustdocset %s\n", version.String()))
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error:"), err)
		os.Exit(1)
	}
}

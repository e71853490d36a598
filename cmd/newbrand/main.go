package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tair/storefront/internal/scaffold"
	"github.com/tair/storefront/pkg/logger"
)

var (
	root     string
	template string
)

var rootCmd = &cobra.Command{
	Use:   "newbrand <brand-name> <identifier> <product-name>",
	Short: "Scaffold a new brand",
	Long: `Creates a brand directory with brand.yaml, locale stubs, shell manifests and
page stubs. Shell capabilities and icons are copied from the template brand.

Arguments:
  brand-name     Lowercase kebab-case name (e.g., pharmaplus)
  identifier     Reverse-domain identifier (e.g., com.pharmaplus.app)
  product-name   Display name (e.g., "PharmaPlus")`,
	Example: `  newbrand pharmaplus com.pharmaplus.app "PharmaPlus"`,
	Args:    cobra.MinimumNArgs(3),
	RunE:    run,
}

func init() {
	rootCmd.Flags().StringVar(&root, "root", "brands", "brands root directory")
	rootCmd.Flags().StringVar(&template, "template", "wecare", "brand to copy shell assets from")
}

func run(cmd *cobra.Command, args []string) error {
	opts := scaffold.Options{
		Root:        root,
		Template:    template,
		Name:        args[0],
		Identifier:  args[1],
		ProductName: args[2],
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Scaffolding brand %q...\n", opts.Name)
	if _, err := scaffold.Scaffold(opts); err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), scaffold.NextSteps(opts))
	return nil
}

func main() {
	logger.Init("newbrand", true)
	logger.SetLevel("warn")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

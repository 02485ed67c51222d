package cmd

import (
	"context"
	"fmt"

	"skin-catalog/core/catalog"

	"github.com/spf13/cobra"
)

var (
	identifyCatalog string
	identifySource  string
)

// identifyCmd names the character and skin a mod's asset paths belong to.
var identifyCmd = &cobra.Command{
	Use:   "identify <path|skin id>...",
	Short: "Identify the character and skin from skin ids or asset paths",
	Long: `Look up each argument in the catalog. A 7-digit skin id anywhere in a path wins;
otherwise a /Hero/<id>/ or /Characters/<id>/ segment names the character only.

Examples:
  identify 1022100
  identify Marvel/Content/Marvel/Characters/1011/1011300/Meshes/SK_1011.uasset`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIdentify,
}

func init() {
	identifyCmd.Flags().StringVar(&identifyCatalog, "catalog", "", "Catalog JSON file (default from CATALOG_PATH)")
	identifyCmd.Flags().StringVar(&identifySource, "source", "file", "Catalog source: file or db")

	RootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = l.Sync() }()

	if identifyCatalog != "" {
		cfg.Catalog.Path = identifyCatalog
	}

	src, err := catalogSource(cfg, identifySource)
	if err != nil {
		return err
	}
	entries, err := loadCatalog(ctx, src, l)
	if err != nil {
		return err
	}

	e, ok := catalog.NewLookup(entries).Identify(args)
	if !ok {
		return fmt.Errorf("no catalog character or skin matches %v", args)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", e.Name, e.SkinName, e.SkinID)
	return nil
}

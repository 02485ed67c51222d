package cmd

import (
	"context"
	"fmt"

	"skin-catalog/core/harvest"
	"skin-catalog/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	reconcileHarvest string
	reconcileCatalog string
	reconcileOutput  string
	reconcileSource  string
	reconcileUpload  bool
	reconcileDryRun  bool
)

// reconcileCmd compares a saved harvest with the catalog without touching the network.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile a saved harvest against the catalog",
	Long: `Compare a harvest saved with "harvest --save-harvest" against the catalog and
write the new skins to a report file. Skins without an id get a synthesized one.

Examples:
  # Report only
  reconcile --harvest runs/harvest.json --dry-run

  # Compare against the database copy of the catalog
  reconcile --harvest runs/harvest.json --source db`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&reconcileHarvest, "harvest", "", "Saved harvest JSON file")
	reconcileCmd.Flags().StringVar(&reconcileCatalog, "catalog", "", "Catalog JSON file (default from CATALOG_PATH)")
	reconcileCmd.Flags().StringVar(&reconcileOutput, "output", "", "Report file (default from CATALOG_OUTPUT)")
	reconcileCmd.Flags().StringVar(&reconcileSource, "source", "file", "Catalog source: file or db")
	reconcileCmd.Flags().BoolVar(&reconcileUpload, "upload", false, "Upload the report to object storage")
	reconcileCmd.Flags().BoolVar(&reconcileDryRun, "dry-run", false, "Print the report without writing files")
	_ = reconcileCmd.MarkFlagRequired("harvest")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = l.Sync() }()

	if reconcileCatalog != "" {
		cfg.Catalog.Path = reconcileCatalog
	}
	if reconcileOutput != "" {
		cfg.Catalog.Output = reconcileOutput
	}

	src, err := catalogSource(cfg, reconcileSource)
	if err != nil {
		return err
	}
	entries, err := loadCatalog(ctx, src, l)
	if err != nil {
		return err
	}

	skins, err := harvest.LoadSkins(reconcileHarvest)
	if err != nil {
		return err
	}
	l.Info("Harvest loaded", zap.String("path", reconcileHarvest), zap.Int("skins", len(skins)))

	tbl, err := loadTables(cfg, l)
	if err != nil {
		return err
	}

	plan, err := reconcile.NewEngine(tbl, l).Run(ctx, entries, skins)
	if err != nil {
		return fmt.Errorf("reconcile failed: %w", err)
	}

	return finishPlan(ctx, cmd, cfg, cfg.Catalog.Output, cfg.Catalog.Path, plan, reconcileUpload || cfg.Storage.Enabled, reconcileDryRun, l)
}

package cmd

import (
	"fmt"

	"skin-catalog/core/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	mergeReport  string
	mergeCatalog string
	mergeOut     string
	mergeYes     bool
)

// mergeCmd applies a reviewed report to the catalog.
var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge a reviewed report into the catalog",
	Long: `Merge the entries of a report file into the catalog. Entries are keyed by skin id,
report entries win, and the result is sorted by character id then skin id.

Writing over the catalog first copies it to <catalog><backup suffix>.

Examples:
  # Overwrite the catalog after confirmation (backup kept)
  merge --report new_skins.json

  # Write the merged catalog elsewhere
  merge --report new_skins.json --out merged.json`,
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().StringVar(&mergeReport, "report", "", "Report file to merge (default from CATALOG_OUTPUT)")
	mergeCmd.Flags().StringVar(&mergeCatalog, "catalog", "", "Catalog JSON file (default from CATALOG_PATH)")
	mergeCmd.Flags().StringVar(&mergeOut, "out", "", "Write the merged catalog here instead of over the catalog")
	mergeCmd.Flags().BoolVar(&mergeYes, "yes", false, "Auto-confirm overwriting the catalog (non-interactive)")

	RootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	cfg, l, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = l.Sync() }()

	if mergeCatalog != "" {
		cfg.Catalog.Path = mergeCatalog
	}
	if mergeReport == "" {
		mergeReport = cfg.Catalog.Output
	}

	existing, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	additions, err := catalog.LoadFile(mergeReport)
	if err != nil {
		return fmt.Errorf("failed to read report: %w", err)
	}
	for _, p := range catalog.Check(additions) {
		l.Warn("Report inconsistency", zap.String("problem", p))
	}

	merged := catalog.Merge(existing, additions)
	l.Info("Merged catalog",
		zap.Int("existing", len(existing)),
		zap.Int("additions", len(additions)),
		zap.Int("result", len(merged)),
	)

	target := mergeOut
	if target == "" {
		target = cfg.Catalog.Path
		if !mergeYes && !confirmAction(fmt.Sprintf("Overwrite %s with %d entries?", target, len(merged))) {
			l.Warn("Operation cancelled by user. No changes were made.")
			return nil
		}
		backup, err := catalog.Backup(target, cfg.Catalog.BackupSuffix)
		if err != nil {
			return err
		}
		l.Info("Backed up catalog", zap.String("backup", backup))
		return catalog.WriteFile(target, "", merged)
	}

	if err := catalog.WriteFile(target, cfg.Catalog.Path, merged); err != nil {
		return err
	}
	l.Info("Merged catalog written", zap.String("path", target))
	return nil
}

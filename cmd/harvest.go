package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skin-catalog/core/config"
	"skin-catalog/core/harvest"
	"skin-catalog/core/pacer"
	"skin-catalog/core/reconcile"
	"skin-catalog/core/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	harvestCatalog  string
	harvestOutput   string
	harvestSource   string
	harvestSaveTo   string
	harvestKeep     bool
	harvestUpload   bool
	harvestDryRun   bool
	harvestDelay    string
	harvestRetryMax int
)

// harvestCmd runs the full pipeline against the live site.
var harvestCmd = &cobra.Command{
	Use:   "harvest",
	Short: "Harvest rivalskins.com and report skins missing from the catalog",
	Long: `Fetch the costume listing and every costume detail page, normalize the results,
compare them with the local catalog and write the new skins to a report file.

The catalog itself is never modified. Use "merge" to apply a report.

Examples:
  # Default run, report written to new_skins.json
  harvest

  # Keep skins without a site id and synthesize one
  harvest --keep-unidentified

  # Save the raw harvest for offline "reconcile" runs, upload the report
  harvest --save-harvest runs/harvest.json --upload`,
	RunE: runHarvest,
}

func init() {
	harvestCmd.Flags().StringVar(&harvestCatalog, "catalog", "", "Catalog JSON file (default from CATALOG_PATH)")
	harvestCmd.Flags().StringVar(&harvestOutput, "output", "", "Report file (default from CATALOG_OUTPUT)")
	harvestCmd.Flags().StringVar(&harvestSource, "source", "file", "Catalog source: file or db")
	harvestCmd.Flags().StringVar(&harvestSaveTo, "save-harvest", "", "Also write the normalized harvest to this file")
	harvestCmd.Flags().BoolVar(&harvestKeep, "keep-unidentified", false, "Keep skins without a site id and synthesize one")
	harvestCmd.Flags().BoolVar(&harvestUpload, "upload", false, "Upload the report to object storage")
	harvestCmd.Flags().BoolVar(&harvestDryRun, "dry-run", false, "Print the report without writing files")
	harvestCmd.Flags().StringVar(&harvestDelay, "delay", "", "Pause between detail pages, e.g. 500ms")
	harvestCmd.Flags().IntVar(&harvestRetryMax, "retry-max", 0, "Retries per request")

	RootCmd.AddCommand(harvestCmd)
}

func runHarvest(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, l, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = l.Sync() }()

	if harvestCatalog != "" {
		cfg.Catalog.Path = harvestCatalog
	}
	if harvestOutput != "" {
		cfg.Catalog.Output = harvestOutput
	}
	if cmd.Flags().Changed("keep-unidentified") {
		cfg.Harvest.KeepUnidentified = harvestKeep
	}
	if cmd.Flags().Changed("retry-max") {
		cfg.Harvest.RetryMax = harvestRetryMax
	}
	if harvestDelay != "" {
		d, err := time.ParseDuration(harvestDelay)
		if err != nil {
			return fmt.Errorf("invalid --delay: %w", err)
		}
		cfg.Harvest.Delay = d
	}

	// The catalog is checked before any network traffic.
	src, err := catalogSource(cfg, harvestSource)
	if err != nil {
		return err
	}
	entries, err := loadCatalog(ctx, src, l)
	if err != nil {
		return err
	}

	tbl, err := loadTables(cfg, l)
	if err != nil {
		return err
	}

	fetcher := &harvest.HTTPFetcher{Client: harvest.NewClient(cfg.Harvest.UserAgent, cfg.Harvest.Timeout, cfg.Harvest.RetryMax)}
	h, err := harvest.NewHarvester(cfg.Harvest, fetcher, harvest.NewNormalizer(tbl, cfg.Harvest.KeepUnidentified), pacer.New(cfg.Harvest.Delay, nil), l)
	if err != nil {
		return err
	}

	res, err := h.Run(ctx)
	if err != nil {
		return fmt.Errorf("harvest failed: %w", err)
	}

	if harvestSaveTo != "" && !harvestDryRun {
		if err := harvest.SaveSkins(harvestSaveTo, res.Skins); err != nil {
			return err
		}
		l.Info("Harvest saved", zap.String("path", harvestSaveTo), zap.Int("skins", len(res.Skins)))
	}

	plan, err := reconcile.NewEngine(tbl, l).Run(ctx, entries, res.Skins)
	if err != nil {
		return err
	}
	// Harvest-stage skips are reported next to the engine's own.
	plan.Diagnostics = append(res.Diagnostics, plan.Diagnostics...)
	plan.Summary.Skipped = len(plan.Diagnostics)

	return finishPlan(ctx, cmd, cfg, cfg.Catalog.Output, cfg.Catalog.Path, plan, harvestUpload || cfg.Storage.Enabled, harvestDryRun, l)
}

// finishPlan prints the plan and publishes it unless this is a dry run.
func finishPlan(ctx context.Context, cmd *cobra.Command, cfg *config.Config, output, source string, plan *reconcile.Plan, upload, dryRun bool, l *zap.Logger) error {
	report.RenderPlan(cmd.OutOrStdout(), plan)

	if dryRun {
		l.Info("Dry-run mode: no files were written")
		return nil
	}

	pub, err := newPublisher(cfg, upload, l)
	if err != nil {
		return err
	}
	out, err := pub.Publish(ctx, output, source, plan)
	if err != nil {
		return err
	}
	if out.Path != "" {
		l.Info("Review the report, then apply it with merge", zap.String("report", out.Path))
	}
	return nil
}

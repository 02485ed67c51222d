package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"skin-catalog/core/catalog"
	"skin-catalog/core/config"
	"skin-catalog/core/database"
	"skin-catalog/core/report"
	"skin-catalog/core/storage"
	"skin-catalog/core/tables"

	"go.uber.org/zap"
)

// loadTables returns the built-in tables, overlaid with the configured TOML file.
func loadTables(cfg *config.Config, l *zap.Logger) (*tables.Tables, error) {
	t := tables.Default()
	if cfg.Harvest.TablesFile == "" {
		return t, nil
	}
	t, err := tables.LoadFile(t, cfg.Harvest.TablesFile)
	if err != nil {
		return nil, err
	}
	l.Info("Loaded tables overlay", zap.String("path", cfg.Harvest.TablesFile))
	return t, nil
}

// catalogSource picks the catalog source: the JSON file or the database store.
func catalogSource(cfg *config.Config, source string) (catalog.Source, error) {
	switch source {
	case "", "file":
		return catalog.FileSource{Path: cfg.Catalog.Path}, nil
	case "db":
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return catalog.NewDBStore(db), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q (want file or db)", source)
	}
}

// loadCatalog reads the catalog and logs invariant problems without failing.
func loadCatalog(ctx context.Context, src catalog.Source, l *zap.Logger) ([]catalog.Entry, error) {
	entries, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range catalog.Check(entries) {
		l.Warn("Catalog inconsistency", zap.String("problem", p))
	}
	l.Info("Catalog loaded", zap.Int("entries", len(entries)))
	return entries, nil
}

// newPublisher builds the report publisher, with uploads when storage is enabled.
func newPublisher(cfg *config.Config, upload bool, l *zap.Logger) (*report.Publisher, error) {
	if !upload {
		return report.NewPublisher(nil, cfg.Storage, l), nil
	}
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, err
	}
	return report.NewPublisher(client, cfg.Storage, l), nil
}

// confirmAction prompts the user for confirmation.
// Returns true if user types 'yes' or 'y', false otherwise.
func confirmAction(prompt string) bool {
	fmt.Printf("\n%s [y/N]: ", prompt)

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}

package cmd

import (
	"context"
	"fmt"

	"skin-catalog/core/catalog"
	"skin-catalog/core/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var catalogFile string

// catalogCmd groups catalog maintenance commands.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Maintain the database copy of the catalog",
}

// catalogImportCmd loads the JSON catalog into the character_skins table.
var catalogImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import the JSON catalog into the database",
	Long: `Create the character_skins table if needed and upsert every catalog entry,
keyed by skin id. Afterwards "--source db" reads the catalog from the database.`,
	RunE: runCatalogImport,
}

// catalogVerifyCmd checks the database table and the catalog invariants.
var catalogVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the character_skins table and the catalog invariants",
	RunE:  runCatalogVerify,
}

func init() {
	catalogImportCmd.Flags().StringVar(&catalogFile, "file", "", "Catalog JSON file (default from CATALOG_PATH)")

	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogVerifyCmd)
	RootCmd.AddCommand(catalogCmd)
}

func runCatalogImport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = l.Sync() }()

	if catalogFile != "" {
		cfg.Catalog.Path = catalogFile
	}

	entries, err := loadCatalog(ctx, catalog.FileSource{Path: cfg.Catalog.Path}, l)
	if err != nil {
		return err
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	store := catalog.NewDBStore(db)
	if err := store.Migrate(ctx); err != nil {
		return err
	}

	n, err := store.Upsert(ctx, entries)
	if err != nil {
		return err
	}
	l.Info("Catalog imported", zap.String("driver", cfg.Database.Driver), zap.Int("entries", n))
	return nil
}

func runCatalogVerify(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = l.Sync() }()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	store := catalog.NewDBStore(db)

	missing, err := store.Verify(ctx)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("table %s is missing columns %v; run catalog import", catalog.Entry{}.TableName(), missing)
	}

	entries, err := store.Load(ctx)
	if err != nil {
		return err
	}
	problems := catalog.Check(entries)
	for _, p := range problems {
		l.Warn("Catalog inconsistency", zap.String("problem", p))
	}
	l.Info("Catalog verified", zap.Int("entries", len(entries)), zap.Int("problems", len(problems)))
	return nil
}

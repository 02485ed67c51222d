package cmd

import (
	"context"
	"fmt"
	"strings"

	"skin-catalog/core/reconcile"

	"github.com/spf13/cobra"
)

var (
	suggestCatalog string
	suggestSource  string
)

// suggestCmd prints the id a single new skin would receive.
var suggestCmd = &cobra.Command{
	Use:   "suggest <character name or id> <skin name>",
	Short: "Suggest a skin id for one new skin",
	Long: `Classify a skin name and print the id it would be given against the current catalog.

Examples:
  suggest "Captain America" "Captain Klyntar"
  suggest 1022 Legendary Cosmic Strike`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().StringVar(&suggestCatalog, "catalog", "", "Catalog JSON file (default from CATALOG_PATH)")
	suggestCmd.Flags().StringVar(&suggestSource, "source", "file", "Catalog source: file or db")

	RootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = l.Sync() }()

	if suggestCatalog != "" {
		cfg.Catalog.Path = suggestCatalog
	}

	src, err := catalogSource(cfg, suggestSource)
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

	character := args[0]
	skinName := strings.Join(args[1:], " ")

	charID := ""
	if isDigits(character) {
		charID = character
	} else {
		for _, e := range entries {
			if e.Name == character {
				charID = e.ID
				break
			}
		}
		if charID == "" {
			charID, _ = tbl.CharacterID(character)
		}
	}
	if charID == "" {
		return fmt.Errorf("no id known for character %q", character)
	}

	known := reconcile.NewIndex(entries).KnownIDs(charID)
	id, err := reconcile.SynthesizeSkinID(charID, skinName, known, tbl)
	if err != nil {
		return err
	}

	rule := reconcile.Classify(skinName, tbl)
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s (base %d, %d known ids)\n", id, skinName, rule.Tier, rule.Base, len(known))
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

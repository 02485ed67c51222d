package reconcile

import (
	"skin-catalog/core/catalog"
	"skin-catalog/core/models"
)

// Plan is the outcome of one reconciliation run.
// Nothing in a plan has been written anywhere.
type Plan struct {
	// NewEntries are the harvested skins missing from the catalog, grouped by character.
	NewEntries []models.NewEntry `json:"new_entries"`

	// Diagnostics are new skins that could not be given an id.
	Diagnostics []models.Diagnostic `json:"diagnostics"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a plan.
type PlanSummary struct {
	// CatalogEntries is the size of the catalog the run compared against.
	CatalogEntries int `json:"catalog_entries"`

	// Characters is the number of distinct characters in the catalog.
	Characters int `json:"characters"`

	// Harvested is the number of harvested skins examined.
	Harvested int `json:"harvested"`

	// Existing counts harvested skins already in the catalog.
	Existing int `json:"existing"`

	// New counts entries in NewEntries.
	New int `json:"new"`

	// Synthesized counts new entries whose id was derived from the tier ranges.
	Synthesized int `json:"synthesized"`

	// Skipped counts diagnostics.
	Skipped int `json:"skipped"`
}

// Entries returns the new entries in catalog form, ready to be written.
func (p *Plan) Entries() []catalog.Entry {
	out := make([]catalog.Entry, 0, len(p.NewEntries))
	for _, e := range p.NewEntries {
		out = append(out, catalog.Entry{Name: e.Name, ID: e.ID, SkinID: e.SkinID, SkinName: e.SkinName})
	}
	return out
}

// Empty reports whether the plan found nothing new.
func (p *Plan) Empty() bool {
	return len(p.NewEntries) == 0
}

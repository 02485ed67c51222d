package reconcile

import (
	"context"
	"errors"
	"fmt"

	"skin-catalog/core/catalog"
	"skin-catalog/core/models"
	"skin-catalog/core/tables"

	"go.uber.org/zap"
)

// Engine compares harvested skins against the catalog and assigns ids to new ones.
// An Engine holds no per-run state and may be shared.
type Engine struct {
	tables *tables.Tables
	logger *zap.Logger
}

// NewEngine creates an engine over the given tables.
func NewEngine(t *tables.Tables, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{tables: t, logger: logger}
}

// Tables returns the lookup tables in use.
func (e *Engine) Tables() *tables.Tables {
	return e.tables
}

// Run builds a plan of new skins. A skin is new when its exact
// (character name, skin name) pair is absent from the catalog.
//
// New entries are grouped by character in order of first appearance, then by
// harvest order within a character. Harvested ids are reserved before any id is
// synthesized, so a synthesized id never takes a slot the site already assigned.
func (e *Engine) Run(ctx context.Context, entries []catalog.Entry, harvest []models.HarvestedSkin) (*Plan, error) {
	idx := NewIndex(entries)
	plan := &Plan{
		NewEntries:  []models.NewEntry{},
		Diagnostics: []models.Diagnostic{},
		Summary: PlanSummary{
			CatalogEntries: len(entries),
			Characters:     idx.Characters(),
			Harvested:      len(harvest),
		},
	}

	ordered := groupByCharacter(harvest)
	rejected := make([]*models.Diagnostic, len(ordered))
	existing := make([]bool, len(ordered))

	for i, skin := range ordered {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if idx.Has(skin.CharacterName, skin.SkinName) {
			existing[i] = true
			continue
		}
		if !skin.HasSkinID() {
			continue
		}
		if diag := e.checkHarvestedID(idx, skin); diag != nil {
			rejected[i] = diag
			continue
		}
		idx.AddID(skin.SkinID[:4], skin.SkinID)
	}

	for i, skin := range ordered {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if existing[i] {
			plan.Summary.Existing++
			continue
		}

		var entry models.NewEntry
		diag := rejected[i]
		if diag == nil {
			entry, diag = e.assign(idx, skin)
		}
		if diag != nil {
			e.logger.Warn("Skipping new skin",
				zap.String("reason", string(diag.Kind)),
				zap.String("character", diag.Character),
				zap.String("skin", diag.Skin),
				zap.String("error", diag.Message),
			)
			plan.Diagnostics = append(plan.Diagnostics, *diag)
			continue
		}

		if entry.Origin == models.OriginSynthesized {
			idx.AddID(entry.ID, entry.SkinID)
			plan.Summary.Synthesized++
		}
		e.logger.Debug("New skin",
			zap.String("character", entry.Name),
			zap.String("skin", entry.SkinName),
			zap.String("skin_id", entry.SkinID),
			zap.String("origin", string(entry.Origin)),
		)
		plan.NewEntries = append(plan.NewEntries, entry)
	}

	plan.Summary.New = len(plan.NewEntries)
	plan.Summary.Skipped = len(plan.Diagnostics)
	return plan, nil
}

// groupByCharacter orders skins by character in order of first appearance.
// The order within a character is kept.
func groupByCharacter(harvest []models.HarvestedSkin) []models.HarvestedSkin {
	groups := make(map[string][]models.HarvestedSkin)
	var names []string
	for _, skin := range harvest {
		if _, ok := groups[skin.CharacterName]; !ok {
			names = append(names, skin.CharacterName)
		}
		groups[skin.CharacterName] = append(groups[skin.CharacterName], skin)
	}

	out := make([]models.HarvestedSkin, 0, len(harvest))
	for _, name := range names {
		out = append(out, groups[name]...)
	}
	return out
}

// checkHarvestedID validates a site-provided id against the character and the
// ids already taken. The id prefix must match the character id wherever one is known.
func (e *Engine) checkHarvestedID(idx *Index, skin models.HarvestedSkin) *models.Diagnostic {
	diag := func(kind models.DiagnosticKind, format string, args ...any) *models.Diagnostic {
		return &models.Diagnostic{
			Kind:      kind,
			Character: skin.CharacterName,
			Skin:      skin.SkinName,
			URL:       skin.SourceURL,
			Message:   fmt.Sprintf(format, args...),
		}
	}

	if !isDigits(skin.SkinID, 7) {
		return diag(models.KindIDMismatch, "skin id %q is not 7 digits", skin.SkinID)
	}
	prefix := skin.SkinID[:4]
	if skin.CharacterID != "" && skin.CharacterID != prefix {
		return diag(models.KindIDMismatch, "skin id %s does not start with character id %s", skin.SkinID, skin.CharacterID)
	}
	if id, ok := idx.CharacterID(skin.CharacterName); ok && id != prefix {
		return diag(models.KindIDMismatch, "skin id %s does not start with catalog id %s of %s", skin.SkinID, id, skin.CharacterName)
	}
	if owner, ok := idx.CharacterName(prefix); ok && owner != skin.CharacterName {
		return diag(models.KindIDMismatch, "skin id %s belongs to %s", skin.SkinID, owner)
	}
	if idx.Taken(skin.SkinID) {
		return diag(models.KindDuplicateSkinID, "skin id %s is already taken", skin.SkinID)
	}
	return nil
}

func (e *Engine) assign(idx *Index, skin models.HarvestedSkin) (models.NewEntry, *models.Diagnostic) {
	entry := models.NewEntry{
		Name:     skin.CharacterName,
		SkinName: skin.SkinName,
	}

	if skin.HasSkinID() {
		entry.SkinID = skin.SkinID
		entry.ID = skin.SkinID[:4]
		entry.Origin = models.OriginHarvested
		return entry, nil
	}

	charID := skin.CharacterID
	if charID == "" {
		charID, _ = idx.CharacterID(skin.CharacterName)
	}
	if charID == "" {
		charID, _ = e.tables.CharacterID(skin.CharacterName)
	}
	if charID == "" {
		return entry, &models.Diagnostic{
			Kind:      models.KindNoCharacterID,
			Character: skin.CharacterName,
			Skin:      skin.SkinName,
			URL:       skin.SourceURL,
			Message:   "no character id to synthesize a skin id from",
		}
	}

	known := idx.KnownIDs(charID)
	id, err := SynthesizeSkinID(charID, skin.SkinName, known, e.tables)
	if err != nil {
		kind := models.KindNoCharacterID
		if errors.Is(err, ErrTierExhausted) {
			kind = models.KindTierExhausted
		}
		return entry, &models.Diagnostic{
			Kind:      kind,
			Character: skin.CharacterName,
			Skin:      skin.SkinName,
			URL:       skin.SourceURL,
			Message:   err.Error(),
		}
	}

	entry.ID = charID
	entry.SkinID = id
	entry.Origin = models.OriginSynthesized
	entry.Tier = string(Classify(skin.SkinName, e.tables).Tier)
	if len(known) == 0 {
		entry.Tier = "first"
	}
	return entry, nil
}

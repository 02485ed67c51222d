package skins

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"skin-catalog/core/catalog"
	"skin-catalog/core/models"
	"skin-catalog/core/reconcile"

	"go.uber.org/zap"
)

var (
	// ErrCharacterNotFound is returned when a character has no catalog entries.
	ErrCharacterNotFound = errors.New("character not found")
	// ErrSkinNotFound is returned when no catalog entry has the skin id.
	ErrSkinNotFound = errors.New("skin not found")
)

// Service answers catalog queries against a cached snapshot.
type Service struct {
	cache  *catalog.Cache
	engine *reconcile.Engine
	logger *zap.Logger
}

// NewService creates a new skins service.
func NewService(cache *catalog.Cache, engine *reconcile.Engine, logger *zap.Logger) *Service {
	return &Service{cache: cache, engine: engine, logger: logger}
}

// Characters lists every catalog character with its skin count, ordered by id.
func (s *Service) Characters(ctx context.Context) ([]CharacterSummary, error) {
	snap, err := s.cache.Get(ctx)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]*CharacterSummary)
	var order []string
	for _, e := range snap.Entries {
		c, ok := byName[e.Name]
		if !ok {
			c = &CharacterSummary{Name: e.Name, ID: e.ID}
			byName[e.Name] = c
			order = append(order, e.Name)
		}
		c.Skins++
	}

	out := make([]CharacterSummary, 0, len(order))
	for _, name := range order {
		out = append(out, *byName[name])
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, _ := strconv.Atoi(out[i].ID)
		b, _ := strconv.Atoi(out[j].ID)
		if a != b {
			return a < b
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// Character returns the known skins of one character.
func (s *Service) Character(ctx context.Context, name string) (*CharacterDetail, error) {
	snap, err := s.cache.Get(ctx)
	if err != nil {
		return nil, err
	}

	detail := &CharacterDetail{Name: name, Skins: []SkinInfo{}}
	for _, e := range snap.Entries {
		if e.Name != name {
			continue
		}
		detail.ID = e.ID
		detail.Skins = append(detail.Skins, SkinInfo{SkinID: e.SkinID, SkinName: e.SkinName})
	}
	if len(detail.Skins) == 0 {
		return nil, ErrCharacterNotFound
	}
	sort.Slice(detail.Skins, func(i, j int) bool {
		return detail.Skins[i].SkinID < detail.Skins[j].SkinID
	})
	return detail, nil
}

// BySkinID returns the catalog entry owning skinID.
func (s *Service) BySkinID(ctx context.Context, skinID string) (*catalog.Entry, error) {
	snap, err := s.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	e, ok := catalog.NewLookup(snap.Entries).BySkinID(skinID)
	if !ok {
		return nil, ErrSkinNotFound
	}
	return &e, nil
}

// Classify reports the tier a skin name falls into.
func (s *Service) Classify(name string) ClassifyResult {
	rule := reconcile.Classify(name, s.engine.Tables())
	return ClassifyResult{Name: name, Tier: string(rule.Tier), Base: rule.Base}
}

// Suggest synthesizes the id a new skin would get against the current catalog.
func (s *Service) Suggest(ctx context.Context, req SuggestRequest) (*SuggestResponse, error) {
	snap, err := s.cache.Get(ctx)
	if err != nil {
		return nil, err
	}

	charID := req.CharacterID
	if charID == "" {
		charID = s.resolveCharacterID(snap.Entries, req.Character)
	}
	if charID == "" {
		return nil, ErrCharacterNotFound
	}

	idx := reconcile.NewIndex(snap.Entries)
	known := idx.KnownIDs(charID)
	id, err := reconcile.SynthesizeSkinID(charID, req.SkinName, known, s.engine.Tables())
	if err != nil {
		return nil, err
	}

	tier := string(reconcile.Classify(req.SkinName, s.engine.Tables()).Tier)
	if len(known) == 0 {
		tier = "first"
	}
	return &SuggestResponse{CharacterID: charID, SkinName: req.SkinName, SkinID: id, Tier: tier}, nil
}

func (s *Service) resolveCharacterID(entries []catalog.Entry, name string) string {
	if name == "" {
		return ""
	}
	for _, e := range entries {
		if e.Name == name {
			return e.ID
		}
	}
	id, _ := s.engine.Tables().CharacterID(name)
	return id
}

// Reconcile runs the engine for a submitted harvest. Nothing is written.
func (s *Service) Reconcile(ctx context.Context, harvest []models.HarvestedSkin) (*reconcile.Plan, error) {
	snap, err := s.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.Run(ctx, snap.Entries, harvest)
}

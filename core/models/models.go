package models

import "fmt"

// HarvestedSkin is one skin scraped from the site, after normalization.
type HarvestedSkin struct {
	// CharacterName is resolved from the site slug.
	CharacterName string `json:"name"`
	// SkinName is cleaned of UI artifacts.
	SkinName string `json:"skin_name"`
	// SkinID is the 7-digit id when the site exposed it, or the default-skin id.
	SkinID string `json:"skinid,omitempty"`
	// CharacterID is SkinID[:4] when SkinID is set, otherwise a table lookup or empty.
	CharacterID string `json:"id,omitempty"`
	// SourceURL is the detail page the record came from.
	SourceURL string `json:"source_url,omitempty"`
}

// HasSkinID reports whether the site (or the default-skin rule) provided an id.
func (s HarvestedSkin) HasSkinID() bool {
	return s.SkinID != ""
}

// IDOrigin records where a new entry's skin id came from.
type IDOrigin string

const (
	// OriginHarvested means the id was read from the site or the default-skin rule.
	OriginHarvested IDOrigin = "harvested"
	// OriginSynthesized means the id was derived from the tier ranges.
	OriginSynthesized IDOrigin = "synthesized"
)

// NewEntry is a skin found in the harvest but absent from the catalog.
// The JSON shape matches a catalog entry.
type NewEntry struct {
	Name     string `json:"name"`
	ID       string `json:"id"`
	SkinID   string `json:"skinid"`
	SkinName string `json:"skin_name"`

	// Origin and Tier are for reporting only and are not persisted.
	Origin IDOrigin `json:"-"`
	Tier   string   `json:"-"`
}

// DiagnosticKind classifies a skipped item.
type DiagnosticKind string

const (
	// KindFetchFailed is a detail page that could not be fetched (skip-page).
	KindFetchFailed DiagnosticKind = "fetch_failed"
	// KindSkinIDNotFound is a detail page without an id and not a default skin.
	KindSkinIDNotFound DiagnosticKind = "skin_id_not_found"
	// KindNoCharacterID is a skin whose character id cannot be resolved.
	KindNoCharacterID DiagnosticKind = "no_character_id"
	// KindTierExhausted is a new skin whose tier window for the character is full.
	KindTierExhausted DiagnosticKind = "tier_exhausted"
	// KindDuplicateSkinID is a harvested id already owned by the catalog or an earlier new skin.
	KindDuplicateSkinID DiagnosticKind = "duplicate_skin_id"
	// KindIDMismatch is a harvested id whose prefix disagrees with the character's id.
	KindIDMismatch DiagnosticKind = "id_mismatch"
)

// Diagnostic explains why an item was left out of the results.
type Diagnostic struct {
	Kind      DiagnosticKind `json:"kind"`
	Character string         `json:"character,omitempty"`
	Skin      string         `json:"skin,omitempty"`
	URL       string         `json:"url,omitempty"`
	Message   string         `json:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s - %s (%s)", d.Kind, d.Character, d.Skin, d.Message)
}

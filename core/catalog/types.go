package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCatalogUnreadable is returned when the catalog source is missing or cannot be parsed.
var ErrCatalogUnreadable = errors.New("catalog unreadable")

// Entry is one known skin. The JSON field names match character_data.json.
type Entry struct {
	// Name is the character display name and the join key for matching.
	Name string `json:"name" gorm:"column:name;size:64;index"`
	// ID is the 4-digit character id shared by all skins of a character.
	ID string `json:"id" gorm:"column:character_id;size:4;index"`
	// SkinID is the globally unique skin id; it starts with ID.
	SkinID string `json:"skinid" gorm:"column:skin_id;size:16;primaryKey"`
	// SkinName is unique within a character.
	SkinName string `json:"skin_name" gorm:"column:skin_name;size:128"`
}

// TableName sets the table used by DBStore.
func (Entry) TableName() string {
	return "character_skins"
}

// Validate checks the per-entry invariants.
func (e Entry) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("entry %q: empty character name", e.SkinID)
	}
	if len(e.ID) != 4 {
		return fmt.Errorf("entry %q: character id %q is not 4 digits", e.SkinID, e.ID)
	}
	if !strings.HasPrefix(e.SkinID, e.ID) {
		return fmt.Errorf("entry %q: skin id does not start with character id %q", e.SkinID, e.ID)
	}
	return nil
}

// Check verifies the cross-entry invariant: every entry of a character shares one id.
// It returns one message per violation and never fails the load.
func Check(entries []Entry) []string {
	var problems []string
	ids := make(map[string]string)
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			problems = append(problems, err.Error())
		}
		if prev, ok := ids[e.Name]; ok && prev != e.ID {
			problems = append(problems, fmt.Sprintf("character %q has ids %s and %s", e.Name, prev, e.ID))
			continue
		}
		ids[e.Name] = e.ID
	}
	return problems
}

package tables

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// overlay is the on-disk shape of a tables file.
//
//	[slug_overrides]
//	"the-punisher" = "Punisher"
//
//	[character_ids]
//	"Gambit" = "1058"
//
//	[[tiers]]
//	tier = "legendary"
//	base = 500
//	keywords = ["legendary", "king"]
type overlay struct {
	SlugOverrides map[string]string `toml:"slug_overrides"`
	CharacterIDs  map[string]string `toml:"character_ids"`
	Tiers         []TierRule        `toml:"tiers"`
	Artifacts     []string          `toml:"artifacts"`
}

// LoadFile merges the TOML overlay at path onto base and returns the result.
// Map entries are added or replaced; a non-empty tiers or artifacts list replaces the
// base list wholesale so the tier order stays explicit.
func LoadFile(base *Tables, path string) (*Tables, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tables file: %w", err)
	}
	return Parse(base, raw)
}

// Parse merges a TOML overlay document onto base.
func Parse(base *Tables, raw []byte) (*Tables, error) {
	var ov overlay
	if err := toml.Unmarshal(raw, &ov); err != nil {
		return nil, fmt.Errorf("failed to parse tables file: %w", err)
	}

	out := base.Clone()
	for k, v := range ov.SlugOverrides {
		out.SlugOverrides[k] = v
	}
	for k, v := range ov.CharacterIDs {
		if !isCharacterID(v) {
			return nil, fmt.Errorf("character %q: id %q is not 4 digits", k, v)
		}
		out.CharacterIDs[k] = v
	}
	if len(ov.Tiers) > 0 {
		for i, rule := range ov.Tiers {
			if rule.Base <= 0 || rule.Base+TierWidth > 1000 {
				return nil, fmt.Errorf("tier %q: base %d out of range", rule.Tier, rule.Base)
			}
			// Classify matches against the lowercased skin name.
			for j, kw := range rule.Keywords {
				ov.Tiers[i].Keywords[j] = strings.ToLower(strings.TrimSpace(kw))
			}
		}
		out.Tiers = ov.Tiers
	}
	if len(ov.Artifacts) > 0 {
		out.Artifacts = ov.Artifacts
	}
	return out, nil
}

func isCharacterID(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

package tables

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tier base values. A synthesized skin id lands in [base, base+100) of its character.
const (
	BaseRare      = 100
	BaseEpic      = 300
	BaseLegendary = 500
	BaseCinematic = 800

	// TierWidth is the number of slots in one tier window.
	TierWidth = 100
)

// Tier is a classification bucket for synthesized skin ids.
type Tier string

const (
	TierCinematic Tier = "cinematic"
	TierLegendary Tier = "legendary"
	TierEpic      Tier = "epic"
	TierRare      Tier = "rare"
)

// TierRule binds a tier to its numeric base and the keywords that select it.
type TierRule struct {
	Tier     Tier     `toml:"tier"`
	Base     int      `toml:"base"`
	Keywords []string `toml:"keywords"`
}

// Tables holds the static lookup data shared by the normalizer and the id synthesizer.
// A Tables value is built once and treated as read-only afterwards.
type Tables struct {
	// SlugOverrides maps irregular site slugs to catalog character names.
	SlugOverrides map[string]string
	// CharacterIDs maps catalog character names to their 4-digit id.
	CharacterIDs map[string]string
	// Tiers is evaluated in order; the first rule with a matching keyword wins.
	Tiers []TierRule
	// Fallback is the tier used when no rule matches.
	Fallback TierRule
	// Artifacts are UI labels the listing page glues onto skin names.
	Artifacts []string
}

// CharacterName resolves a site slug ("captain-america") to a character name.
func (t *Tables) CharacterName(slug string) string {
	if name, ok := t.SlugOverrides[slug]; ok {
		return name
	}
	return TitleSlug(slug)
}

// TitleSlug turns "captain-klyntar" into "Captain Klyntar".
func TitleSlug(slug string) string {
	// A Caser carries state, so each call gets its own.
	caser := cases.Title(language.Und)
	words := strings.Split(slug, "-")
	for i, w := range words {
		words[i] = caser.String(w)
	}
	return strings.Join(words, " ")
}

// CharacterID returns the known id for a character name.
func (t *Tables) CharacterID(name string) (string, bool) {
	id, ok := t.CharacterIDs[name]
	return id, ok
}

// Classify returns the first tier rule whose keyword occurs in name (case-insensitive).
func (t *Tables) Classify(name string) TierRule {
	lower := strings.ToLower(name)
	for _, rule := range t.Tiers {
		for _, kw := range rule.Keywords {
			if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
				return rule
			}
		}
	}
	return t.Fallback
}

// Rule returns the rule registered for tier, including the fallback.
func (t *Tables) Rule(tier Tier) (TierRule, bool) {
	if t.Fallback.Tier == tier {
		return t.Fallback, true
	}
	for _, rule := range t.Tiers {
		if rule.Tier == tier {
			return rule, true
		}
	}
	return TierRule{}, false
}

// Clone returns a deep copy so overlays never mutate the defaults.
func (t *Tables) Clone() *Tables {
	c := &Tables{
		SlugOverrides: make(map[string]string, len(t.SlugOverrides)),
		CharacterIDs:  make(map[string]string, len(t.CharacterIDs)),
		Tiers:         make([]TierRule, len(t.Tiers)),
		Fallback:      t.Fallback,
		Artifacts:     append([]string(nil), t.Artifacts...),
	}
	for k, v := range t.SlugOverrides {
		c.SlugOverrides[k] = v
	}
	for k, v := range t.CharacterIDs {
		c.CharacterIDs[k] = v
	}
	for i, rule := range t.Tiers {
		rule.Keywords = append([]string(nil), rule.Keywords...)
		c.Tiers[i] = rule
	}
	c.Fallback.Keywords = append([]string(nil), t.Fallback.Keywords...)
	return c
}

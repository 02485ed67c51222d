package reconcile

import (
	"fmt"
	"testing"

	"skin-catalog/core/tables"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_TierPrecedence(t *testing.T) {
	tbl := tables.Default()

	tests := []struct {
		name string
		tier tables.Tier
		base int
	}{
		{"Legendary Cosmic Strike", tables.TierLegendary, 500},
		{"MCU Legendary Suit", tables.TierCinematic, 800},
		{"Galactic Talon", tables.TierEpic, 300},
		{"Captain Klyntar", tables.TierRare, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := Classify(tt.name, tbl)
			assert.Equal(t, tt.tier, rule.Tier)
			assert.Equal(t, tt.base, rule.Base)
		})
	}
}

func TestSynthesizeSkinID(t *testing.T) {
	tbl := tables.Default()

	tests := []struct {
		name  string
		known []string
		skin  string
		want  string
	}{
		{"FirstSkin", nil, "Anything Epic", "1022001"},
		{"RareNext", []string{"1022001", "1022100", "1022101"}, "Captain Klyntar", "1022102"},
		{"EpicEmptyWindow", []string{"1022001", "1022100", "1022101"}, "Galactic Talon", "1022300"},
		{"LegendaryOverEpic", []string{"1022001", "1022300"}, "Legendary Cosmic Strike", "1022500"},
		{"IgnoresOtherWindows", []string{"1022001", "1022302", "1022150", "1022599"}, "Cosmic Dawn", "1022303"},
		{"IgnoresGarbage", []string{"1022001", "oops"}, "Plain", "1022100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SynthesizeSkinID("1022", tt.skin, tt.known, tbl)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSynthesizeSkinID_Exhausted(t *testing.T) {
	tbl := tables.Default()
	known := []string{"1022001"}
	for i := 100; i < 200; i++ {
		known = append(known, fmt.Sprintf("1022%03d", i))
	}

	_, err := SynthesizeSkinID("1022", "Plain", known, tbl)
	assert.ErrorIs(t, err, ErrTierExhausted)

	// Other tiers are unaffected.
	got, err := SynthesizeSkinID("1022", "Galactic Talon", known, tbl)
	require.NoError(t, err)
	assert.Equal(t, "1022300", got)
}

func TestSynthesizeSkinID_InvalidCharacter(t *testing.T) {
	_, err := SynthesizeSkinID("", "Plain", nil, tables.Default())
	assert.ErrorIs(t, err, ErrInvalidCharacterID)

	for _, id := range []string{"10a2", "-123", "+123", " 123", "10220"} {
		_, err = SynthesizeSkinID(id, "Plain", []string{"1022001"}, tables.Default())
		assert.ErrorIs(t, err, ErrInvalidCharacterID, id)
	}
}

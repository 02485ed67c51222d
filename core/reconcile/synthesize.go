package reconcile

import (
	"errors"
	"fmt"
	"strconv"

	"skin-catalog/core/tables"
)

// ErrTierExhausted means every slot of the tier window is already taken.
var ErrTierExhausted = errors.New("tier window exhausted")

// ErrInvalidCharacterID means the character id is not a 4-digit number.
var ErrInvalidCharacterID = errors.New("invalid character id")

// Classify returns the tier rule for a skin name.
func Classify(name string, t *tables.Tables) tables.TierRule {
	return t.Classify(name)
}

// SynthesizeSkinID derives a skin id for a skin the site did not number.
//
// A character with no known ids gets "<id>001". Otherwise the name is classified
// and the id is one past the highest known id in [base, base+100) of that tier,
// or <id>*1000+base when the window is empty.
func SynthesizeSkinID(characterID, skinName string, knownIDs []string, t *tables.Tables) (string, error) {
	if !isDigits(characterID, 4) {
		return "", fmt.Errorf("%w: %q", ErrInvalidCharacterID, characterID)
	}
	charNum, _ := strconv.Atoi(characterID)

	if len(knownIDs) == 0 {
		return characterID + "001", nil
	}

	rule := Classify(skinName, t)

	highest := -1
	for _, raw := range knownIDs {
		id, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		if suffix := id % 1000; suffix >= rule.Base && suffix < rule.Base+tables.TierWidth && id > highest {
			highest = id
		}
	}

	if highest < 0 {
		return strconv.Itoa(charNum*1000 + rule.Base), nil
	}

	next := highest + 1
	if slot := next % 1000; slot < rule.Base || slot >= rule.Base+tables.TierWidth {
		return "", fmt.Errorf("%w: %s %s window %d-%d", ErrTierExhausted, characterID, rule.Tier, rule.Base, rule.Base+tables.TierWidth-1)
	}
	return strconv.Itoa(next), nil
}

// isDigits reports whether s is exactly n ASCII digits.
func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

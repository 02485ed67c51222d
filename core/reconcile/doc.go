// Package reconcile finds harvested skins that are missing from the catalog
// and gives each of them a skin id.
//
// # Matching
//
// A harvested skin is known when the catalog has an entry with the same character
// name and the same skin name. Both comparisons are exact and case-sensitive.
//
// # Id synthesis
//
// Skins the site did not number get an id from the tier ranges of their character:
//
//	001      first skin of a character with no known ids
//	100-199  rare (default tier)
//	300-399  epic
//	500-599  legendary
//	800-899  cinematic
//
// The tier comes from keyword matching on the skin name, evaluated cinematic first.
// The new id is one past the highest id already in that window. A full window
// yields ErrTierExhausted and the skin is reported instead of numbered.
//
// # Usage
//
//	engine := reconcile.NewEngine(tables.Default(), log)
//	plan, err := engine.Run(ctx, entries, skins)
//	if err != nil {
//	    return err
//	}
//	for _, e := range plan.NewEntries {
//	    fmt.Println(e.Name, e.SkinID, e.SkinName)
//	}
package reconcile

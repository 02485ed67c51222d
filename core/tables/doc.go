// Package tables holds the static lookup data used while harvesting and reconciling skins.
//
// The data is versioned with the code and exposed through Default(). A TOML overlay can
// be merged on top (LoadFile) to substitute tables in tests or to add a character before
// a release ships.
//
// # Contents
//
//   - SlugOverrides: site slugs that do not title-case into the catalog name.
//   - CharacterIDs: catalog character name to 4-digit character id.
//   - Tiers: ordered keyword rules; the first match decides the id range.
//   - Artifacts: UI labels stripped from scraped skin names.
//
// # Usage
//
//	t := tables.Default()
//	name := t.CharacterName("cloak-and-dagger") // "Cloak & Dagger"
//	rule := t.Classify("Legendary Cosmic Strike") // legendary, base 500
package tables

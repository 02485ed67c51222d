// Package catalog loads, stores, and writes the skin catalog.
//
// The catalog is a flat list of Entry records (character_data.json). The reconcile
// engine only reads it; every mutation lives here and is an explicit, separate step.
//
// # Sources
//
//   - FileSource: the JSON file shipped with the application.
//   - DBStore: a character_skins table (MySQL or SQLite via GORM).
//
// # Writing
//
// WriteFile refuses to overwrite the source catalog and writes through a temp file.
// Merge and Backup implement the manual "apply a report" step.
//
// # Caching
//
// Cache wraps a Source with a TTL and singleflight so HTTP handlers share one load.
package catalog

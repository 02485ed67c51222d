// Package config loads the application configuration.
//
// Values come from a .env file (when present) and the process environment, with
// defaults taken from the `default` struct tags of each section. Environment
// names are the upper-cased key paths: CATALOG_PATH, HARVEST_DELAY, STORAGE_ENABLED.
//
// # Sections
//
//   - Catalog: source catalog path, report output path, backup suffix
//   - Harvest: site URLs, request pacing, timeouts, user agent, tables overlay
//   - Server: HTTP port, API key, catalog cache TTL and source
//   - Storage: S3/MinIO report uploads
//   - Database: MySQL or SQLite catalog store
//   - Log: level and format
//
// Command flags override what is loaded here.
package config

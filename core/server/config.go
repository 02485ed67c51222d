package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// CacheTTL is how long the loaded catalog is served before it is reloaded.
	CacheTTL time.Duration `mapstructure:"cache_ttl" default:"5m"`
	// CatalogSource selects where the API reads the catalog from (file, db).
	CatalogSource string `mapstructure:"catalog_source" default:"file"`
}

const (
	SourceFile = "file"
	SourceDB   = "db"
)

// IsValidSource checks if the configured catalog source is supported.
func (c Config) IsValidSource() bool {
	switch c.CatalogSource {
	case SourceFile, SourceDB:
		return true
	default:
		return false
	}
}

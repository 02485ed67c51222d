package harvest

import "time"

// Config holds configuration for scraping the skin site.
type Config struct {
	// BaseURL is the site root used to resolve relative item links.
	BaseURL string `mapstructure:"base_url" default:"https://rivalskins.com"`
	// ListingPath is the costume listing page relative to BaseURL.
	ListingPath string `mapstructure:"listing_path" default:"/?type=costume"`
	// Delay is the pause between detail page requests.
	Delay time.Duration `mapstructure:"delay" default:"500ms"`
	// Timeout bounds each HTTP request.
	Timeout time.Duration `mapstructure:"timeout" default:"10s"`
	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent" default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"`
	// RetryMax is the number of retries for a failed request.
	RetryMax int `mapstructure:"retry_max" default:"0"`
	// TablesFile is an optional TOML overlay for the lookup tables.
	TablesFile string `mapstructure:"tables_file" default:""`
	// KeepUnidentified keeps skins without a site id so one can be synthesized.
	KeepUnidentified bool `mapstructure:"keep_unidentified" default:"false"`
}

// ListingURL returns the absolute listing page URL.
func (c Config) ListingURL() (string, error) {
	return ResolveURL(c.BaseURL, c.ListingPath)
}

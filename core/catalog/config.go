package catalog

// Config holds the catalog and report file locations.
type Config struct {
	// Path is the local catalog, read-only to harvest and reconcile.
	Path string `mapstructure:"path" default:"character_data.json"`
	// Output is where the new-skins report is written.
	Output string `mapstructure:"output" default:"new_skins.json"`
	// BackupSuffix is appended to a catalog copied aside before merge overwrites it.
	BackupSuffix string `mapstructure:"backup_suffix" default:".backup"`
}

package harvest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"skin-catalog/core/models"
)

// SaveSkins writes harvested skins as a JSON array so a later run can reconcile offline.
func SaveSkins(path string, skins []models.HarvestedSkin) error {
	if skins == nil {
		skins = []models.HarvestedSkin{}
	}
	raw, err := json.MarshalIndent(skins, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode harvest: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create harvest dir: %w", err)
	}
	if err := os.WriteFile(path, append(raw, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write harvest %s: %w", path, err)
	}
	return nil
}

// LoadSkins reads a harvest saved by SaveSkins. An empty file yields ErrEmptyHarvest.
func LoadSkins(path string) ([]models.HarvestedSkin, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read harvest: %w", err)
	}
	var skins []models.HarvestedSkin
	if err := json.Unmarshal(raw, &skins); err != nil {
		return nil, fmt.Errorf("failed to parse harvest %s: %w", path, err)
	}
	if len(skins) == 0 {
		return nil, ErrEmptyHarvest
	}
	return skins, nil
}

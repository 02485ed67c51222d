package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

// ErrWouldOverwriteSource is returned when a report path points at the source catalog.
var ErrWouldOverwriteSource = errors.New("refusing to overwrite the source catalog")

// LoadFile reads a catalog JSON file. Any failure wraps ErrCatalogUnreadable.
func LoadFile(path string) ([]Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnreadable, err)
	}
	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCatalogUnreadable, path, err)
	}
	return entries, nil
}

// WriteFile writes entries as an indented JSON array to path.
// If source is non-empty and resolves to the same file as path, nothing is written.
func WriteFile(path, source string, entries []Entry) error {
	if source != "" && samePath(path, source) {
		return fmt.Errorf("%w: %s", ErrWouldOverwriteSource, path)
	}

	raw, err := Encode(entries)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output dir: %w", err)
		}
	}

	// The file appears whole or not at all.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to move %s into place: %w", path, err)
	}
	return nil
}

// Encode renders entries the way character_data.json is laid out: a JSON array
// indented with four spaces and a trailing newline.
func Encode(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	raw, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}
	return append(raw, '\n'), nil
}

// Backup copies path to path+suffix. A missing source is not an error.
func Backup(path, suffix string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read %s for backup: %w", path, err)
	}
	backup := path + suffix
	if err := os.WriteFile(backup, raw, 0o644); err != nil {
		return "", fmt.Errorf("failed to write backup %s: %w", backup, err)
	}
	return backup, nil
}

// Merge combines existing and additions keyed by skin id; additions replace existing
// entries with the same skin id. The result is ordered by numeric character id, then
// numeric skin id.
func Merge(existing, additions []Entry) []Entry {
	bySkin := make(map[string]Entry, len(existing)+len(additions))
	for _, e := range existing {
		bySkin[e.SkinID] = e
	}
	for _, e := range additions {
		bySkin[e.SkinID] = e
	}

	merged := make([]Entry, 0, len(bySkin))
	for _, e := range bySkin {
		merged = append(merged, e)
	}

	sort.Slice(merged, func(i, j int) bool {
		ci, cj := atoi(merged[i].ID), atoi(merged[j].ID)
		if ci != cj {
			return ci < cj
		}
		si, sj := atoi(merged[i].SkinID), atoi(merged[j].SkinID)
		if si != sj {
			return si < sj
		}
		return merged[i].SkinID < merged[j].SkinID
	})
	return merged
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func samePath(a, b string) bool {
	aa, errA := filepath.Abs(a)
	bb, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	if aa == bb {
		return true
	}
	ia, errA := os.Stat(aa)
	ib, errB := os.Stat(bb)
	return errA == nil && errB == nil && os.SameFile(ia, ib)
}

package catalog

import (
	"context"
	"fmt"

	"skin-catalog/core/database"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const upsertBatchSize = 500

// Source loads a catalog snapshot.
type Source interface {
	Load(ctx context.Context) ([]Entry, error)
}

// FileSource loads the catalog from a JSON file.
type FileSource struct {
	Path string
}

// Load implements Source.
func (s FileSource) Load(_ context.Context) ([]Entry, error) {
	return LoadFile(s.Path)
}

// DBStore keeps the catalog in the character_skins table.
type DBStore struct {
	db *gorm.DB
}

// NewDBStore creates a store on an open connection.
func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{db: db}
}

// Migrate creates or updates the character_skins table.
func (s *DBStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&Entry{}); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", Entry{}.TableName(), err)
	}
	return nil
}

// Verify returns the required columns missing from the table.
// An empty result means the table can be read.
func (s *DBStore) Verify(ctx context.Context) ([]string, error) {
	columns, err := database.TableColumns(s.db.WithContext(ctx), Entry{}.TableName())
	if err != nil {
		return nil, err
	}
	present := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		present[c] = struct{}{}
	}

	var missing []string
	for _, want := range []string{"name", "character_id", "skin_id", "skin_name"} {
		if _, ok := present[want]; !ok {
			missing = append(missing, want)
		}
	}
	return missing, nil
}

// Load implements Source. Failures wrap ErrCatalogUnreadable.
func (s *DBStore) Load(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	err := s.db.WithContext(ctx).
		Order("character_id").
		Order("skin_id").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnreadable, err)
	}
	return entries, nil
}

// Upsert inserts entries, replacing rows that share a skin id.
func (s *DBStore) Upsert(ctx context.Context, entries []Entry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}
	res := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "skin_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "character_id", "skin_name"}),
		}).
		CreateInBatches(entries, upsertBatchSize)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to upsert catalog entries: %w", res.Error)
	}
	return len(entries), nil
}

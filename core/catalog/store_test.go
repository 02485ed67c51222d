package catalog_test

import (
	"context"
	"errors"
	"testing"

	"skin-catalog/core/catalog"
	"skin-catalog/core/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSQLiteStore(t *testing.T) *catalog.DBStore {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	return catalog.NewDBStore(db)
}

func TestDBStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteStore(t)
	require.NoError(t, store.Migrate(ctx))

	missing, err := store.Verify(ctx)
	require.NoError(t, err)
	assert.Empty(t, missing)

	entries := []catalog.Entry{
		{Name: "Hulk", ID: "1011", SkinID: "1011001", SkinName: "Default"},
		{Name: "Captain America", ID: "1022", SkinID: "1022100", SkinName: "Galactic Talon"},
		{Name: "Captain America", ID: "1022", SkinID: "1022001", SkinName: "Default"},
	}
	n, err := store.Upsert(ctx, entries)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// Same skin id again replaces the name.
	_, err = store.Upsert(ctx, []catalog.Entry{{Name: "Hulk", ID: "1011", SkinID: "1011001", SkinName: "Bruce Banner"}})
	require.NoError(t, err)

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "1011001", got[0].SkinID)
	assert.Equal(t, "Bruce Banner", got[0].SkinName)
	assert.Equal(t, "1022001", got[1].SkinID)
	assert.Equal(t, "1022100", got[2].SkinID)

	n, err = store.Upsert(ctx, nil)
	assert.NoError(t, err)
	assert.Zero(t, n)
}

func TestDBStore_VerifyMissingTable(t *testing.T) {
	store := newSQLiteStore(t)

	missing, err := store.Verify(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"name", "character_id", "skin_id", "skin_name"}, missing)
}

func newMockStore(t *testing.T) (*catalog.DBStore, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return catalog.NewDBStore(db), mock
}

func TestDBStore_LoadMySQL(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"name", "character_id", "skin_id", "skin_name"}).
		AddRow("Iron Man", "1034", "1034001", "Default").
		AddRow("Iron Man", "1034", "1034300", "Armor Model 42")
	mock.ExpectQuery("SELECT \\* FROM `character_skins` ORDER BY character_id").WillReturnRows(rows)

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, catalog.Entry{Name: "Iron Man", ID: "1034", SkinID: "1034300", SkinName: "Armor Model 42"}, got[1])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBStore_LoadMySQLError(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT \\* FROM `character_skins`").WillReturnError(errors.New("connection reset"))

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, catalog.ErrCatalogUnreadable)
	assert.Contains(t, err.Error(), "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

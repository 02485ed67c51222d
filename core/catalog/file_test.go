package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"skin-catalog/core/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogJSON = `[
    {"name": "Captain America", "id": "1022", "skinid": "1022001", "skin_name": "Default"},
    {"name": "Captain America", "id": "1022", "skinid": "1022100", "skin_name": "Galactic Talon"},
    {"name": "Hulk", "id": "1011", "skinid": "1011001", "skin_name": "Default"}
]`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		path := writeTemp(t, "character_data.json", catalogJSON)

		entries, err := catalog.LoadFile(path)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, catalog.Entry{Name: "Captain America", ID: "1022", SkinID: "1022100", SkinName: "Galactic Talon"}, entries[1])
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := catalog.LoadFile(filepath.Join(t.TempDir(), "nope.json"))
		assert.ErrorIs(t, err, catalog.ErrCatalogUnreadable)
	})

	t.Run("Malformed", func(t *testing.T) {
		path := writeTemp(t, "bad.json", `{"name": "not a list"}`)
		_, err := catalog.LoadFile(path)
		assert.ErrorIs(t, err, catalog.ErrCatalogUnreadable)
	})
}

func TestWriteFile(t *testing.T) {
	source := writeTemp(t, "character_data.json", catalogJSON)
	entries := []catalog.Entry{{Name: "Hulk", ID: "1011", SkinID: "1011100", SkinName: "Gamma"}}

	t.Run("RefusesSource", func(t *testing.T) {
		err := catalog.WriteFile(source, source, entries)
		assert.ErrorIs(t, err, catalog.ErrWouldOverwriteSource)

		// Source untouched.
		raw, _ := os.ReadFile(source)
		assert.Equal(t, catalogJSON, string(raw))
	})

	t.Run("WritesReport", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "reports", "new_skins.json")
		require.NoError(t, catalog.WriteFile(out, source, entries))

		got, err := catalog.LoadFile(out)
		require.NoError(t, err)
		assert.Equal(t, entries, got)

		_, err = os.Stat(out + ".tmp")
		assert.True(t, os.IsNotExist(err))
	})
}

func TestBackup(t *testing.T) {
	path := writeTemp(t, "character_data.json", catalogJSON)

	backup, err := catalog.Backup(path, ".backup")
	require.NoError(t, err)
	assert.Equal(t, path+".backup", backup)

	raw, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, catalogJSON, string(raw))

	backup, err = catalog.Backup(filepath.Join(t.TempDir(), "missing.json"), ".backup")
	assert.NoError(t, err)
	assert.Empty(t, backup)
}

func TestMerge(t *testing.T) {
	existing := []catalog.Entry{
		{Name: "Hulk", ID: "1011", SkinID: "1011001", SkinName: "Default"},
		{Name: "Captain America", ID: "1022", SkinID: "1022100", SkinName: "Galactic Talon"},
		{Name: "Captain America", ID: "1022", SkinID: "1022001", SkinName: "Default"},
	}
	additions := []catalog.Entry{
		{Name: "Captain America", ID: "1022", SkinID: "1022101", SkinName: "Captain Klyntar"},
		{Name: "Hulk", ID: "1011", SkinID: "1011001", SkinName: "Bruce Banner"},
		{Name: "Storm", ID: "1015", SkinID: "1015001", SkinName: "Default"},
	}

	merged := catalog.Merge(existing, additions)
	require.Len(t, merged, 5)

	var ids []string
	for _, e := range merged {
		ids = append(ids, e.SkinID)
	}
	assert.Equal(t, []string{"1011001", "1015001", "1022001", "1022100", "1022101"}, ids)

	// Additions win on skin id collisions.
	assert.Equal(t, "Bruce Banner", merged[0].SkinName)
}

func TestCheck(t *testing.T) {
	entries := []catalog.Entry{
		{Name: "Hulk", ID: "1011", SkinID: "1011001", SkinName: "Default"},
		{Name: "Hulk", ID: "1012", SkinID: "1012100", SkinName: "Other"},
		{Name: "Thor", ID: "1039", SkinID: "1040100", SkinName: "Wrong Prefix"},
		{Name: "", ID: "1050", SkinID: "1050001", SkinName: "Nameless"},
	}

	problems := catalog.Check(entries)
	assert.Len(t, problems, 3)

	assert.Empty(t, catalog.Check(entries[:1]))
}

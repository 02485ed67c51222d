package harvest

import (
	"os"
	"path/filepath"
	"testing"

	"skin-catalog/core/tables"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return raw
}

func TestParseLink(t *testing.T) {
	tests := []struct {
		name     string
		href     string
		slug     string
		skinSlug string
		err      error
	}{
		{"Costume", "/item/1228/captain-america-costume-captain-klyntar/", "captain-america", "captain-klyntar", nil},
		{"AbsoluteURL", "https://rivalskins.com/item/12/the-punisher-costume-default", "the-punisher", "default", nil},
		{"Emote", "/item/1400/hulk-emote-smash/", "", "", ErrNotCostume},
		{"NoSlug", "/item/1/", "", "", ErrNotCostume},
		{"NoDigits", "/item/abc/hulk-costume-default/", "", "", ErrNotCostume},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link, err := ParseLink("text", tt.href)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.slug, link.Slug)
			assert.Equal(t, tt.skinSlug, link.SkinSlug)
		})
	}
}

func TestCleanName(t *testing.T) {
	artifacts := tables.Default().Artifacts

	assert.Equal(t, "Captain Klyntar", CleanName("Captain Klyntar+Wishlist+Locker", artifacts))
	assert.Equal(t, "Captain Klyntar", CleanName("  Captain Klyntar+Locker+Wishlist ", artifacts))
	assert.Equal(t, "Galactic Talon", CleanName("Galactic Talon", artifacts))
	// Only suffixes are stripped.
	assert.Equal(t, "+Locker Room", CleanName("+Locker Room", artifacts))
	assert.Equal(t, "", CleanName("+Wishlist", artifacts))
}

func TestIsDefaultSkin(t *testing.T) {
	assert.True(t, IsDefaultSkin("Default"))
	assert.True(t, IsDefaultSkin("Iron Man Default"))
	assert.True(t, IsDefaultSkin("default - classic"))
	assert.False(t, IsDefaultSkin("Defaulted Hero"))
	assert.False(t, IsDefaultSkin("Captain Klyntar"))
}

func TestExtractSkinID(t *testing.T) {
	id, ok := ExtractSkinID(readFixture(t, "detail_klyntar.html"))
	assert.True(t, ok)
	assert.Equal(t, "1022101", id)

	id, ok = ExtractSkinID(readFixture(t, "detail_plain_td.html"))
	assert.True(t, ok)
	assert.Equal(t, "1014502", id)

	_, ok = ExtractSkinID(readFixture(t, "detail_noid.html"))
	assert.False(t, ok)

	_, ok = ExtractSkinID([]byte("<td>12345678</td><td>ps12345</td>"))
	assert.False(t, ok)
}

func TestNormalize(t *testing.T) {
	n := NewNormalizer(tables.Default(), false)

	t.Run("ExplicitID", func(t *testing.T) {
		link, err := ParseLink("Captain Klyntar+Wishlist+Locker", "/item/1228/captain-america-costume-captain-klyntar/")
		require.NoError(t, err)

		skin, err := n.Normalize(link, readFixture(t, "detail_klyntar.html"), "u")
		require.NoError(t, err)
		assert.Equal(t, "Captain America", skin.CharacterName)
		assert.Equal(t, "Captain Klyntar", skin.SkinName)
		assert.Equal(t, "1022101", skin.SkinID)
		assert.Equal(t, "1022", skin.CharacterID)
		assert.Equal(t, "u", skin.SourceURL)
	})

	t.Run("DefaultFallback", func(t *testing.T) {
		link, err := ParseLink("Iron Man Default", "/item/1301/iron-man-costume-default/")
		require.NoError(t, err)

		skin, err := n.Normalize(link, readFixture(t, "detail_noid.html"), "")
		require.NoError(t, err)
		assert.Equal(t, "Iron Man", skin.CharacterName)
		assert.Equal(t, "1034001", skin.SkinID)
		assert.Equal(t, "1034", skin.CharacterID)
	})

	t.Run("DefaultUnknownCharacter", func(t *testing.T) {
		link, err := ParseLink("Default", "/item/9/nobody-costume-default/")
		require.NoError(t, err)

		skin, err := n.Normalize(link, readFixture(t, "detail_noid.html"), "")
		assert.ErrorIs(t, err, ErrNoCharacterID)
		assert.Equal(t, "Nobody", skin.CharacterName)
	})

	t.Run("NoID", func(t *testing.T) {
		link, err := ParseLink("Mystery", "/item/1303/hulk-costume-mystery/")
		require.NoError(t, err)

		_, err = n.Normalize(link, readFixture(t, "detail_noid.html"), "")
		assert.ErrorIs(t, err, ErrSkinIDNotFound)
		assert.NotErrorIs(t, err, ErrNotCostume)
	})

	t.Run("KeepUnidentified", func(t *testing.T) {
		keep := NewNormalizer(tables.Default(), true)
		link, err := ParseLink("Mystery", "/item/1303/hulk-costume-mystery/")
		require.NoError(t, err)

		skin, err := keep.Normalize(link, readFixture(t, "detail_noid.html"), "")
		require.NoError(t, err)
		assert.False(t, skin.HasSkinID())
		assert.Equal(t, "1011", skin.CharacterID)
	})

	t.Run("OverrideAndSlugFallback", func(t *testing.T) {
		link, err := ParseLink("", "/item/1302/the-punisher-costume-cosmic-stalker/")
		require.NoError(t, err)

		skin, err := n.Normalize(link, readFixture(t, "detail_plain_td.html"), "")
		require.NoError(t, err)
		assert.Equal(t, "Punisher", skin.CharacterName)
		assert.Equal(t, "Cosmic Stalker", skin.SkinName)
	})
}

func TestParseListing(t *testing.T) {
	links, err := ParseListing(readFixture(t, "listing.html"))
	require.NoError(t, err)
	require.Len(t, links, 7)

	assert.Equal(t, "Home", links[0].Text)
	assert.Equal(t, "Captain Klyntar+Wishlist+Locker", links[1].Text)
	assert.Equal(t, "/item/1228/captain-america-costume-captain-klyntar/", links[1].Href)
	assert.Equal(t, "Iron Man Default+Wishlist", links[2].Text)
}

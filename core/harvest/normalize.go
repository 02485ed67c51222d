package harvest

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"unicode"

	"skin-catalog/core/models"
	"skin-catalog/core/tables"

	"github.com/PuerkitoBio/goquery"
)

var (
	// ErrNotCostume means the link is not a costume item page. It is not reported.
	ErrNotCostume = errors.New("not a costume item")
	// ErrSkinIDNotFound means the detail page had no id and the skin is not a default skin.
	ErrSkinIDNotFound = errors.New("skin id not found")
	// ErrNoCharacterID means a default skin's character has no known id.
	ErrNoCharacterID = errors.New("character id not resolvable")
)

// /item/1228/captain-america-costume-captain-klyntar/
var costumeHrefRe = regexp.MustCompile(`/item/\d+/(.+?)-costume-([^/?#]*)`)

// ps1050504 or 1049301
var skinIDRe = regexp.MustCompile(`^(?:ps)?(\d{7})$`)

// Link is a costume link from the listing page.
type Link struct {
	// Href is the raw href attribute.
	Href string
	// Text is the raw link text.
	Text string
	// Slug is the character slug in front of "-costume-".
	Slug string
	// SkinSlug is the path part after "-costume-".
	SkinSlug string
}

// ParseLink extracts the character slug from a listing href.
// It returns ErrNotCostume when href is not a costume detail page.
func ParseLink(text, href string) (Link, error) {
	m := costumeHrefRe.FindStringSubmatch(href)
	if m == nil || m[1] == "" {
		return Link{}, ErrNotCostume
	}
	return Link{
		Href:     href,
		Text:     text,
		Slug:     m[1],
		SkinSlug: strings.TrimSuffix(m[2], "/"),
	}, nil
}

// CleanName strips the known UI artifacts glued to the end of a skin name.
func CleanName(text string, artifacts []string) string {
	name := strings.TrimSpace(text)
	for {
		before := name
		for _, a := range artifacts {
			name = strings.TrimSpace(strings.TrimSuffix(name, a))
		}
		if name == before {
			return name
		}
	}
}

// IsDefaultSkin reports whether name denotes a character's baseline appearance.
func IsDefaultSkin(name string) bool {
	if strings.HasSuffix(name, " Default") || name == "Default" {
		return true
	}
	tokens := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, tok := range tokens {
		if tok == "default" {
			return true
		}
	}
	return false
}

// ExtractSkinID finds the 7-digit skin id in an item detail page.
// The marvel-id cell is preferred; any table cell holding an id is accepted.
func ExtractSkinID(detail []byte) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(detail))
	if err != nil {
		return "", false
	}

	var id string
	match := func(_ int, s *goquery.Selection) bool {
		if m := skinIDRe.FindStringSubmatch(strings.TrimSpace(s.Text())); m != nil {
			id = m[1]
			return false
		}
		return true
	}

	doc.Find("td.item-details-marvel-id").EachWithBreak(match)
	if id == "" {
		doc.Find("td").EachWithBreak(match)
	}
	return id, id != ""
}

// Normalizer turns listing links and detail pages into harvested skins.
type Normalizer struct {
	tables *tables.Tables
	// skins without an id are kept for id synthesis instead of being discarded
	keepUnidentified bool
}

// NewNormalizer creates a normalizer over t.
func NewNormalizer(t *tables.Tables, keepUnidentified bool) *Normalizer {
	return &Normalizer{tables: t, keepUnidentified: keepUnidentified}
}

// Tables returns the lookup tables in use.
func (n *Normalizer) Tables() *tables.Tables {
	return n.tables
}

// SkinName returns the cleaned display name for a link, falling back to the
// title-cased skin slug when the link text is empty.
func (n *Normalizer) SkinName(link Link) string {
	if name := CleanName(link.Text, n.tables.Artifacts); name != "" {
		return name
	}
	return tables.TitleSlug(link.SkinSlug)
}

// Normalize builds a HarvestedSkin from a link and its detail page.
// The returned skin carries names even on error so callers can report it.
func (n *Normalizer) Normalize(link Link, detail []byte, sourceURL string) (models.HarvestedSkin, error) {
	skin := models.HarvestedSkin{
		CharacterName: n.tables.CharacterName(link.Slug),
		SkinName:      n.SkinName(link),
		SourceURL:     sourceURL,
	}

	if id, ok := ExtractSkinID(detail); ok {
		skin.SkinID = id
		skin.CharacterID = id[:4]
		return skin, nil
	}

	charID, known := n.tables.CharacterID(skin.CharacterName)

	if IsDefaultSkin(skin.SkinName) {
		if !known {
			return skin, ErrNoCharacterID
		}
		skin.CharacterID = charID
		skin.SkinID = charID + "001"
		return skin, nil
	}

	if n.keepUnidentified {
		skin.CharacterID = charID
		return skin, nil
	}
	return skin, ErrSkinIDNotFound
}

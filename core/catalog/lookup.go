package catalog

import "regexp"

var (
	skinIDInPath = regexp.MustCompile(`\d{7}`)
	heroIDInPath = regexp.MustCompile(`/(?:Hero|Characters?)/(\d{4})/`)
)

// UnknownSkin is the skin name reported when only the character could be identified.
const UnknownSkin = "Unknown Skin"

// Lookup indexes a catalog snapshot by skin id and character id.
type Lookup struct {
	bySkinID map[string]Entry
	byCharID map[string]Entry
}

// NewLookup builds a lookup; the first entry wins for a repeated id.
func NewLookup(entries []Entry) *Lookup {
	l := &Lookup{
		bySkinID: make(map[string]Entry, len(entries)),
		byCharID: make(map[string]Entry),
	}
	for _, e := range entries {
		if _, ok := l.bySkinID[e.SkinID]; !ok {
			l.bySkinID[e.SkinID] = e
		}
		if _, ok := l.byCharID[e.ID]; !ok {
			l.byCharID[e.ID] = e
		}
	}
	return l
}

// BySkinID returns the entry owning skinID.
func (l *Lookup) BySkinID(skinID string) (Entry, bool) {
	e, ok := l.bySkinID[skinID]
	return e, ok
}

// Identify finds the character and skin a set of asset paths belongs to.
// Paths are tried in order. Within a path, any 7-digit run that is a known skin id
// wins; otherwise a /Hero/<id>/ or /Character(s)/<id>/ segment identifies the
// character and the skin name is UnknownSkin.
func (l *Lookup) Identify(paths []string) (Entry, bool) {
	for _, p := range paths {
		for _, m := range skinIDInPath.FindAllString(p, -1) {
			if e, ok := l.bySkinID[m]; ok {
				return e, true
			}
		}
		if m := heroIDInPath.FindStringSubmatch(p); m != nil {
			if e, ok := l.byCharID[m[1]]; ok {
				return Entry{Name: e.Name, ID: e.ID, SkinName: UnknownSkin}, true
			}
		}
	}
	return Entry{}, false
}

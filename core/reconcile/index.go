package reconcile

import (
	"sort"

	"skin-catalog/core/catalog"
)

// Index is the lookup view of the catalog used during a run.
type Index struct {
	// character name -> skin names
	skins map[string]map[string]struct{}
	// character id -> known skin ids
	ids map[string]map[string]struct{}
	// skin id -> owning character id, across all characters
	owners map[string]string
	// character name <-> character id, from the catalog
	idByName map[string]string
	nameByID map[string]string
}

// NewIndex builds an index in one pass over the catalog entries.
func NewIndex(entries []catalog.Entry) *Index {
	idx := &Index{
		skins: make(map[string]map[string]struct{}),
		ids:      make(map[string]map[string]struct{}),
		owners:   make(map[string]string),
		idByName: make(map[string]string),
		nameByID: make(map[string]string),
	}
	for _, e := range entries {
		names, ok := idx.skins[e.Name]
		if !ok {
			names = make(map[string]struct{})
			idx.skins[e.Name] = names
		}
		names[e.SkinName] = struct{}{}
		idx.AddID(e.ID, e.SkinID)
		if _, ok := idx.idByName[e.Name]; !ok {
			idx.idByName[e.Name] = e.ID
		}
		if _, ok := idx.nameByID[e.ID]; !ok {
			idx.nameByID[e.ID] = e.Name
		}
	}
	return idx
}

// Has reports whether the character already owns a skin with this exact name.
func (idx *Index) Has(character, skin string) bool {
	_, ok := idx.skins[character][skin]
	return ok
}

// KnownIDs returns the sorted skin ids registered for a character id.
func (idx *Index) KnownIDs(characterID string) []string {
	set := idx.ids[characterID]
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// AddID registers a skin id as taken for characterID.
func (idx *Index) AddID(characterID, skinID string) {
	if skinID == "" {
		return
	}
	set, ok := idx.ids[characterID]
	if !ok {
		set = make(map[string]struct{})
		idx.ids[characterID] = set
	}
	set[skinID] = struct{}{}
	idx.owners[skinID] = characterID
}

// Taken reports whether skinID is registered for any character.
func (idx *Index) Taken(skinID string) bool {
	_, ok := idx.owners[skinID]
	return ok
}

// CharacterID returns the catalog id of a character name.
func (idx *Index) CharacterID(name string) (string, bool) {
	id, ok := idx.idByName[name]
	return id, ok
}

// CharacterName returns the catalog name that owns a character id.
func (idx *Index) CharacterName(id string) (string, bool) {
	name, ok := idx.nameByID[id]
	return name, ok
}

// Characters returns the number of distinct character names.
func (idx *Index) Characters() int {
	return len(idx.skins)
}

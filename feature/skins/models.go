package skins

// CharacterSummary is one row of the character list.
type CharacterSummary struct {
	Name  string `json:"name"`
	ID    string `json:"id"`
	Skins int    `json:"skins"`
}

// SkinInfo is one known skin of a character.
type SkinInfo struct {
	SkinID   string `json:"skinid"`
	SkinName string `json:"skin_name"`
}

// CharacterDetail lists a character's known skins.
type CharacterDetail struct {
	Name  string     `json:"name"`
	ID    string     `json:"id"`
	Skins []SkinInfo `json:"skins"`
}

// ClassifyResult is the tier of a skin name.
type ClassifyResult struct {
	Name string `json:"name"`
	Tier string `json:"tier"`
	Base int    `json:"base"`
}

// SuggestRequest asks for the id of a new skin.
// CharacterID wins over Character when both are set.
type SuggestRequest struct {
	CharacterID string `json:"character_id"`
	Character   string `json:"character"`
	SkinName    string `json:"skin_name"`
}

// SuggestResponse carries a synthesized id.
type SuggestResponse struct {
	CharacterID string `json:"character_id"`
	SkinName    string `json:"skin_name"`
	SkinID      string `json:"skinid"`
	Tier        string `json:"tier"`
}

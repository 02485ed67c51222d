package tables

// Default returns the built-in tables versioned with the code.
func Default() *Tables {
	return &Tables{
		SlugOverrides: map[string]string{
			"the-punisher":       "Punisher",
			"the-thing":          "The Thing",
			"cloak-and-dagger":   "Cloak & Dagger",
			"jeff-the-landshark": "Jeff the Landshark",
		},
		CharacterIDs: map[string]string{
			"Hulk":               "1011",
			"Punisher":           "1014",
			"Storm":              "1015",
			"Loki":               "1016",
			"Human Torch":        "1017",
			"Doctor Strange":     "1018",
			"Mantis":             "1020",
			"Hawkeye":            "1021",
			"Captain America":    "1022",
			"Rocket Raccoon":     "1023",
			"Hela":               "1024",
			"Cloak & Dagger":     "1025",
			"Black Panther":      "1026",
			"Groot":              "1027",
			"Ultron":             "1028",
			"Magik":              "1029",
			"Moon Knight":        "1030",
			"Luna Snow":          "1031",
			"Squirrel Girl":      "1032",
			"Black Widow":        "1033",
			"Iron Man":           "1034",
			"Venom":              "1035",
			"Spider-Man":         "1036",
			"Magneto":            "1037",
			"Scarlet Witch":      "1038",
			"Thor":               "1039",
			"Mister Fantastic":   "1040",
			"Winter Soldier":     "1041",
			"Peni Parker":        "1042",
			"Star-Lord":          "1043",
			"Blade":              "1044",
			"Namor":              "1045",
			"Adam Warlock":       "1046",
			"Jeff the Landshark": "1047",
			"Psylocke":           "1048",
			"Wolverine":          "1049",
			"Invisible Woman":    "1050",
			"The Thing":          "1051",
			"Iron Fist":          "1052",
			"Emma Frost":         "1053",
			"Phoenix":            "1054",
			"Daredevil":          "1055",
			"Angela":             "1056",
			"Gambit":             "1058",
		},
		Tiers: []TierRule{
			{
				Tier: TierCinematic,
				Base: BaseCinematic,
				Keywords: []string{
					"mcu", "movie", "endgame", "infinity war", "multiverse", "vol. 3",
					"born again", "love and thunder", "wakanda forever", "no way home",
					"deadpool", "wolverine", "first steps",
				},
			},
			{
				Tier: TierLegendary,
				Base: BaseLegendary,
				Keywords: []string{
					"legendary", "ultimate", "supreme", "master", "god", "king", "queen",
					"lord", "goddess", "emperor", "empress", "maiden", "herald",
				},
			},
			{
				Tier: TierEpic,
				Base: BaseEpic,
				Keywords: []string{
					"epic", "galactic", "immortal", "cosmic", "blood", "phoenix", "symbiote",
					"polarity", "will of galacta", "retro", "binary", "chaos", "vengeance",
					"weapon", "dog brother",
				},
			},
		},
		Fallback:  TierRule{Tier: TierRare, Base: BaseRare},
		Artifacts: []string{"+Wishlist", "+Locker"},
	}
}

package notify

// Static display tables. Character-indexed tables are fixed at four entries
// (Dustman, Dustgirl, Dustkid, Dustworth); a character outside [0,3] is an
// upstream contract violation.

// characterColors are the embed accent colors per character.
var characterColors = [4]int{8493779, 12147535, 11829461, 9874791}

// characterIcons are the custom emoji IDs whose CDN images serve as the
// embed author icon, per character.
var characterIcons = [4]string{
	"401402235004911616",
	"401402216272887808",
	"401402223357329418",
	"401402248040546315",
}

const (
	cameraEmoji   = "<:camera:401772771908255755>"
	replayBaseURL = "http://dustkid.com/replay/"
	profileBaseURL = "http://dustkid.com/profile/"
	levelBaseURL  = "http://dustkid.com/level/"
	emojiCDNURL   = "https://cdn.discordapp.com/emojis/"
	thumbnailURL  = "https://i.imgur.com/"
)

// gradeIcons maps the completion/finesse grading scale to its fixed emoji
// token. The scale runs 1 (D) through 5 (S).
var gradeIcons = map[int]string{
	5: "<:S_:401402364114763776>",
	4: "<:A_:401402357877178380>",
	3: "<:B_:401402352772707328>",
	2: "<:C_:401402346963474442>",
	1: "<:D_:401402339883876352>",
}

// gradeIcon returns the emoji token for a grade, falling back to the lowest
// grade for anything off the scale.
func gradeIcon(grade int) string {
	if icon, ok := gradeIcons[grade]; ok {
		return icon
	}
	return gradeIcons[1]
}

// levelThumbnails maps a level's internal name to the imgur image ID shown
// as the embed thumbnail. A replay for a level missing here is not notable
// and produces no notification.
var levelThumbnails = map[string]string{
	"newtutorial1":  "P9lOq3c",
	"newtutorial2":  "bQ9UqXw",
	"newtutorial3":  "kF2xLmR",
	"downhill":      "jH4tVnS",
	"shadedgrove":   "c6GkWzQ",
	"dahlia":        "rM8pYdE",
	"fields":        "aZ3wKtU",
	"momentum":      "nT7cJqL",
	"fireflyforest": "sV2bXoP",
	"tunnels":       "dK9mRwA",
	"momentum2":     "gQ5fZhN",
	"suntemple":     "yL1jCvB",
	"ascent":        "uW6nTkD",
	"summit":        "eR4sMpG",
	"grasscave":     "iX8vBqF",
	"den":           "oC3gLzJ",
	"autumnforest":  "pN7hUwK",
	"garden":        "tB2dYxM",
	"hyperdifficult": "wF9kEcR",
	"atrium":        "qJ5rGvT",
	"secretpassage": "zM1xWbH",
	"alcoves":       "hD6tNfU",
	"mezzanine":     "vG4cQjY",
	"cave":          "bS8wKpL",
	"cliffsidecaves": "mU3zHdX",
	"library":       "fT7vRqC",
	"courtyard":     "kY2bJwN",
	"precarious":    "xH9gMcV",
	"treasureroom":  "cQ4nFkZ",
	"arena":         "rW6sDtB",
	"ramparts":      "jL1pXvG",
	"moontemple":    "nZ5cVbM",
	"observatory":   "sE8kTwQ",
	"parapets":      "dA3fYjH",
	"brimstone":     "gV7mNxR",
	"vacantlot":     "uK2hPcW",
	"sprawl":        "oF9tLbJ",
	"development":   "pR4wZkU",
	"abandoned":     "tN6dQvX",
	"park":          "wC1gSmY",
	"boxes":         "qX5jHfD",
	"chemworld":     "zB8vKtL",
	"factory":       "hM3cWpN",
	"tunnel":        "vJ7rEbG",
	"basement":      "bW2kUqT",
	"scaffold":      "mD6xYcF",
	"cityrun":       "fG9nZw187",
	"clocktower":    "kP4sVjR",
	"concretetemple": "xT1bMhC",
	"alley":         "cL5wQdZ",
	"hideout":       "rY8fJkB",
	"control":       "jE3tXvM",
	"ferrofluid":    "nH7cGwQ",
	"titan":         "sK2mPbU",
	"satellite":     "dV6zRqX",
	"vat":           "gB1hNtY",
	"venom":         "uQ5jWcD",
	"security":      "oM8vFkL",
	"mary":          "pZ3gSwN",
	"wiringfixed":   "tC7dHbJ",
	"containment":   "wR2kVqG",
	"orb":           "qF6xTmB",
	"pod":           "zW9nYcH",
	"mary2":         "hJ4sKfU",
	"coretemple":    "vN1bZwX",
	"abyss":         "bT5cQjM",
	"dome":          "mG8wEkR",
	"exec func":     "fD3vXtC",
}

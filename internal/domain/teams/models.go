package teams

import "strconv"

// DefaultID is the team served when a request does not name one (San Jose).
const DefaultID = 28

// Team is the normalized team identity carried inside game snapshots.
type Team struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// nicknames maps upstream team identifiers to the short label shown on the display.
var nicknames = map[int]string{
	1:  "Devils",
	2:  "Islanders",
	3:  "Rangers",
	4:  "Flyers",
	5:  "Penguins",
	6:  "Bruins",
	7:  "Sabres",
	8:  "Canadiens",
	9:  "Senators",
	10: "Maple Leafs",
	12: "Hurricanes",
	13: "Panthers",
	14: "Lightning",
	15: "Capitals",
	16: "Blackhawks",
	17: "Red Wings",
	18: "Predators",
	19: "Blues",
	20: "Flames",
	21: "Avalanche",
	22: "Oilers",
	23: "Canucks",
	24: "Ducks",
	25: "Stars",
	26: "Kings",
	28: "Sharks",
	29: "Blue Jackets",
	30: "Wild",
	52: "Jets",
	53: "Coyotes",
	54: "Golden Knights",
	55: "Kraken",
}

// Nickname returns the display nickname for id and whether the id is known.
func Nickname(id int) (string, bool) {
	name, ok := nicknames[id]
	return name, ok
}

// Label returns the nickname for id, or a generic "Team N" label for unknown ids.
func Label(id int) string {
	if name, ok := Nickname(id); ok {
		return name
	}
	return "Team " + strconv.Itoa(id)
}

package tract

import "strings"

// waStateFIPS prefixes every Washington tract and county GEOID.
const waStateFIPS = "53"

// waCountyNames maps Washington county FIPS codes to county names.
var waCountyNames = map[string]string{
	"001": "Adams", "003": "Asotin", "005": "Benton", "007": "Chelan",
	"009": "Clallam", "011": "Clark", "013": "Columbia", "015": "Cowlitz",
	"017": "Douglas", "019": "Ferry", "021": "Franklin", "023": "Garfield",
	"025": "Grant", "027": "Grays Harbor", "029": "Island", "031": "Jefferson",
	"033": "King", "035": "Kitsap", "037": "Kittitas", "039": "Klickitat",
	"041": "Lewis", "043": "Lincoln", "045": "Mason", "047": "Okanogan",
	"049": "Pacific", "051": "Pend Oreille", "053": "Pierce", "055": "San Juan",
	"057": "Skagit", "059": "Skamania", "061": "Snohomish", "063": "Spokane",
	"065": "Stevens", "067": "Thurston", "069": "Wahkiakum", "071": "Walla Walla",
	"073": "Whatcom", "075": "Whitman", "077": "Yakima",
}

// CountyName resolves a shapefile county field value to a county name.
// Bare 3-digit Washington county FIPS codes and 5-digit state+county GEOIDs
// map to the county name; anything else passes through unchanged.
func CountyName(code string) string {
	c := strings.TrimSpace(code)
	if len(c) == 5 && strings.HasPrefix(c, waStateFIPS) {
		c = c[2:]
	}
	if name, ok := waCountyNames[c]; ok {
		return name
	}
	return code
}

package hours

import (
	"strings"
	"time"
)

// DefaultZone is the directory's home timezone. Most listings without an
// explicit zone are East Coast.
const DefaultZone = "America/New_York"

// stateZones maps US state (and DC) postal codes to a representative IANA
// zone. States split across zones get their dominant zone.
var stateZones = map[string]string{
	"AL": "America/Chicago",
	"AK": "America/Anchorage",
	"AZ": "America/Phoenix",
	"AR": "America/Chicago",
	"CA": "America/Los_Angeles",
	"CO": "America/Denver",
	"CT": "America/New_York",
	"DC": "America/New_York",
	"DE": "America/New_York",
	"FL": "America/New_York",
	"GA": "America/New_York",
	"HI": "Pacific/Honolulu",
	"IA": "America/Chicago",
	"ID": "America/Boise",
	"IL": "America/Chicago",
	"IN": "America/Indiana/Indianapolis",
	"KS": "America/Chicago",
	"KY": "America/New_York",
	"LA": "America/Chicago",
	"MA": "America/New_York",
	"MD": "America/New_York",
	"ME": "America/New_York",
	"MI": "America/Detroit",
	"MN": "America/Chicago",
	"MO": "America/Chicago",
	"MS": "America/Chicago",
	"MT": "America/Denver",
	"NC": "America/New_York",
	"ND": "America/Chicago",
	"NE": "America/Chicago",
	"NH": "America/New_York",
	"NJ": "America/New_York",
	"NM": "America/Denver",
	"NV": "America/Los_Angeles",
	"NY": "America/New_York",
	"OH": "America/New_York",
	"OK": "America/Chicago",
	"OR": "America/Los_Angeles",
	"PA": "America/New_York",
	"RI": "America/New_York",
	"SC": "America/New_York",
	"SD": "America/Chicago",
	"TN": "America/Chicago",
	"TX": "America/Chicago",
	"UT": "America/Denver",
	"VA": "America/New_York",
	"VT": "America/New_York",
	"WA": "America/Los_Angeles",
	"WI": "America/Chicago",
	"WV": "America/New_York",
	"WY": "America/Denver",
}

// ResolveLocation picks the timezone to evaluate a restaurant's hours in.
// An explicit IANA zone on the record wins; otherwise the state fallback
// table applies; otherwise DefaultZone. Never fails: if zone data cannot be
// loaded at all, UTC is returned.
func ResolveLocation(tz, state string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if name, ok := stateZones[strings.ToUpper(strings.TrimSpace(state))]; ok {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}

	if loc, err := time.LoadLocation(DefaultZone); err == nil {
		return loc
	}
	return time.UTC
}

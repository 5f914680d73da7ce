package ranges

import "fmt"

// ConstructionHelper builds ranges from position-indexed shorthand tables.
// Positions past the end of a table clamp to its last entry.
type ConstructionHelper struct{}

// NewConstructionHelper creates a range construction helper.
func NewConstructionHelper() *ConstructionHelper {
	return &ConstructionHelper{}
}

// Opening ranges from earliest position to the button. Later positions open
// wider.
var openingRanges = [][]string{
	{"AA", "KK", "QQ", "JJ", "TT", "AKs", "AQs", "AKo"},
	{"AA", "KK", "QQ", "JJ", "TT", "99", "AKs", "AQs", "AJs", "KQs", "AKo", "AQo"},
	{"AA", "KK", "QQ", "JJ", "TT", "99", "88", "AKs", "AQs", "AJs", "ATs", "KQs", "KJs", "AKo", "AQo", "AJo"},
	{"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66", "AKs", "AQs", "AJs", "ATs", "A9s", "KQs", "KJs", "QJs", "JTs", "AKo", "AQo", "AJo", "KQo"},
	{"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66", "55", "44", "AKs", "AQs", "AJs", "ATs", "A9s", "A8s", "A5s", "KQs", "KJs", "KTs", "QJs", "QTs", "JTs", "T9s", "AKo", "AQo", "AJo", "ATo", "KQo", "KJo"},
}

// 3-bet ranges, split by whether the 3-bettor has position on the opener.
var threeBetInPosition = [][]string{
	{"AA", "KK", "QQ", "AKs"},
	{"AA", "KK", "QQ", "JJ", "AKs", "AKo"},
	{"AA", "KK", "QQ", "JJ", "TT", "AKs", "AQs", "A5s", "AKo"},
}

var threeBetOutOfPosition = [][]string{
	{"AA", "KK", "QQ"},
	{"AA", "KK", "QQ", "AKs"},
	{"AA", "KK", "QQ", "JJ", "AKs", "AKo"},
}

// Cold-call ranges: hands that flat an open rather than 3-bet.
var coldCallRanges = [][]string{
	{"QQ", "JJ", "TT", "AQs"},
	{"JJ", "TT", "99", "88", "AQs", "AJs", "KQs"},
	{"JJ", "TT", "99", "88", "77", "AQs", "AJs", "ATs", "KQs", "QJs", "JTs"},
}

// OpeningRange returns the opening range for a table position.
func (h *ConstructionHelper) OpeningRange(position int) Range {
	return rangeFromShorthand(tableEntry(openingRanges, position))
}

// ThreeBetRange returns the 3-bet range for a position, split by whether the
// player acts after the opener.
func (h *ConstructionHelper) ThreeBetRange(position int, inPosition bool) Range {
	table := threeBetOutOfPosition
	if inPosition {
		table = threeBetInPosition
	}
	return rangeFromShorthand(tableEntry(table, position))
}

// ColdCallRange returns the cold-calling range for a position.
func (h *ConstructionHelper) ColdCallRange(position int) Range {
	return rangeFromShorthand(tableEntry(coldCallRanges, position))
}

// ConvertToCombos expands shorthand hand classes into concrete combos.
// Suited shorthand expands to 4 combos (one per suit); offsuit shorthand
// expands to 12 (both orderings of each distinct suit pair); a bare pair
// shorthand stays as a single literal combo.
func (h *ConstructionHelper) ConvertToCombos(shorthands []string) ([]Combo, error) {
	var out []Combo
	for _, s := range shorthands {
		combos, err := expandShorthand(s)
		if err != nil {
			return nil, err
		}
		out = append(out, combos...)
	}
	return out, nil
}

var suitChars = []byte{'h', 'd', 'c', 's'}

func expandShorthand(shorthand string) ([]Combo, error) {
	r1, r2, err := parseShorthandRanks(shorthand)
	if err != nil {
		return nil, err
	}

	switch {
	case len(shorthand) == 2 && r1 == r2:
		return []Combo{Combo(shorthand)}, nil

	case len(shorthand) == 3 && shorthand[2] == 's':
		if r1 == r2 {
			return nil, fmt.Errorf("invalid shorthand %q: pairs cannot be suited", shorthand)
		}
		out := make([]Combo, 0, 4)
		for _, suit := range suitChars {
			out = append(out, Combo(string(shorthand[0])+string(suit)+string(shorthand[1])+string(suit)))
		}
		return out, nil

	case len(shorthand) == 3 && shorthand[2] == 'o':
		if r1 == r2 {
			return nil, fmt.Errorf("invalid shorthand %q: pairs cannot be offsuit", shorthand)
		}
		out := make([]Combo, 0, 12)
		for _, s1 := range suitChars {
			for _, s2 := range suitChars {
				if s1 == s2 {
					continue
				}
				out = append(out, Combo(string(shorthand[0])+string(s1)+string(shorthand[1])+string(s2)))
			}
		}
		return out, nil

	default:
		return nil, fmt.Errorf("invalid shorthand %q", shorthand)
	}
}

func tableEntry(table [][]string, position int) []string {
	if position < 0 {
		position = 0
	}
	if position >= len(table) {
		position = len(table) - 1
	}
	return table[position]
}

func rangeFromShorthand(shorthands []string) Range {
	r := Range{combos: make(map[Combo]float64)}
	for _, s := range shorthands {
		combos, err := expandShorthand(s)
		if err != nil {
			continue
		}
		for _, c := range combos {
			r.combos[c] = 1.0
		}
	}
	return r
}

// Package profile defines AI behavioral profiles, the difficulty catalog,
// and the selection model used by the verification harness.
package profile

// Profile is the behavioral vector of one AI player. Values are nominally in
// [0, 1]. Profiles are never mutated in place; adjustments produce copies.
type Profile struct {
	Name              string
	Tightness         float64
	Aggression        float64
	PositionAwareness float64
	BluffFreq         float64
	CallDownTendency  float64
}

// Difficulty is a catalog tier exposing a fixed list of named profiles.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
	Expert Difficulty = "expert"
)

// Tiers returns all difficulty tiers in ascending order.
func Tiers() []Difficulty {
	return []Difficulty{Easy, Medium, Hard, Expert}
}

// TierByName resolves a tier name, reporting whether it exists.
func TierByName(name string) (Difficulty, bool) {
	for _, tier := range Tiers() {
		if string(tier) == name {
			return tier, true
		}
	}
	return "", false
}

var catalog = map[Difficulty][]Profile{
	Easy: {
		{Name: "Rocky", Tightness: 0.9, Aggression: 0.1, PositionAwareness: 0.1, BluffFreq: 0.05, CallDownTendency: 0.3},
		{Name: "Candy", Tightness: 0.2, Aggression: 0.2, PositionAwareness: 0.1, BluffFreq: 0.1, CallDownTendency: 0.9},
	},
	Medium: {
		{Name: "Abe", Tightness: 0.6, Aggression: 0.4, PositionAwareness: 0.4, BluffFreq: 0.2, CallDownTendency: 0.5},
		{Name: "Bella", Tightness: 0.4, Aggression: 0.6, PositionAwareness: 0.5, BluffFreq: 0.3, CallDownTendency: 0.4},
	},
	Hard: {
		{Name: "Viktor", Tightness: 0.5, Aggression: 0.7, PositionAwareness: 0.7, BluffFreq: 0.35, CallDownTendency: 0.35},
		{Name: "Nadia", Tightness: 0.55, Aggression: 0.6, PositionAwareness: 0.8, BluffFreq: 0.3, CallDownTendency: 0.3},
	},
	Expert: {
		{Name: "Kassandra", Tightness: 0.5, Aggression: 0.8, PositionAwareness: 0.9, BluffFreq: 0.4, CallDownTendency: 0.3},
		{Name: "Dmitri", Tightness: 0.45, Aggression: 0.85, PositionAwareness: 0.85, BluffFreq: 0.45, CallDownTendency: 0.25},
	},
}

// Profiles returns the fixed profile list for a tier.
func (d Difficulty) Profiles() []Profile {
	return catalog[d]
}

// Selection is an ordered set of profiles, de-duplicated by name with
// first-seen order preserved.
type Selection struct {
	profiles []Profile
	byName   map[string]bool
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{byName: make(map[string]bool)}
}

// SelectAll adds every profile from the given tiers.
func (s *Selection) SelectAll(tiers ...Difficulty) {
	for _, tier := range tiers {
		for _, p := range tier.Profiles() {
			s.add(p)
		}
	}
}

// DeselectAll empties the selection.
func (s *Selection) DeselectAll() {
	s.profiles = nil
	s.byName = make(map[string]bool)
}

// Toggle adds the profile if absent, removes it if present.
func (s *Selection) Toggle(p Profile) {
	if !s.byName[p.Name] {
		s.add(p)
		return
	}

	delete(s.byName, p.Name)
	for i := range s.profiles {
		if s.profiles[i].Name == p.Name {
			s.profiles = append(s.profiles[:i], s.profiles[i+1:]...)
			break
		}
	}
}

// Contains reports whether a profile with the given name is selected.
func (s *Selection) Contains(name string) bool {
	return s.byName[name]
}

// Profiles returns the selected profiles in selection order.
func (s *Selection) Profiles() []Profile {
	out := make([]Profile, len(s.profiles))
	copy(out, s.profiles)
	return out
}

// Len returns the number of selected profiles.
func (s *Selection) Len() int {
	return len(s.profiles)
}

func (s *Selection) add(p Profile) {
	if s.byName[p.Name] {
		return
	}
	s.byName[p.Name] = true
	s.profiles = append(s.profiles, p)
}

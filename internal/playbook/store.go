package playbook

// Outcome is the result of one hand or game for a player.
type Outcome int

const (
	Win Outcome = iota
	Loss
	Split
)

// Store tracks each player's current playbook and win/loss counts, and
// transitions playbooks on streaks.
//
// The store is not synchronized. Callers must serialize access per store:
// either a single owning goroutine or an external lock. Concurrent calls for
// the same player from multiple goroutines are a data race.
type Store struct {
	playbooks map[string]Playbook
	outcomes  map[string]*outcomeCount
}

type outcomeCount struct {
	wins   int
	losses int
}

// NewStore creates an empty playbook store.
func NewStore() *Store {
	return &Store{
		playbooks: make(map[string]Playbook),
		outcomes:  make(map[string]*outcomeCount),
	}
}

// Playbook returns the player's current playbook, creating a Standard entry
// for unseen player ids.
func (s *Store) Playbook(playerID string) Playbook {
	if p, ok := s.playbooks[playerID]; ok {
		return p
	}
	s.playbooks[playerID] = Standard
	return Standard
}

// SetPlaybook assigns a playbook to a player directly.
func (s *Store) SetPlaybook(playerID string, p Playbook) {
	s.playbooks[playerID] = p
}

// RecordOutcome updates the player's counters and applies streak
// transitions: every 5th win escalates, every 3rd loss de-escalates, and a
// split changes nothing. Returns the playbook in effect afterwards.
func (s *Store) RecordOutcome(playerID string, outcome Outcome) Playbook {
	current := s.Playbook(playerID)
	if outcome == Split {
		return current
	}

	counts, ok := s.outcomes[playerID]
	if !ok {
		counts = &outcomeCount{}
		s.outcomes[playerID] = counts
	}

	switch outcome {
	case Win:
		counts.wins++
		if counts.wins%5 == 0 {
			current = current.escalate()
			s.playbooks[playerID] = current
		}
	case Loss:
		counts.losses++
		if counts.losses%3 == 0 {
			current = current.deescalate()
			s.playbooks[playerID] = current
		}
	}

	return current
}

// Reset removes both the playbook and counter entries for a player.
func (s *Store) Reset(playerID string) {
	delete(s.playbooks, playerID)
	delete(s.outcomes, playerID)
}

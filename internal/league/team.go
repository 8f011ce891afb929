// Package league holds the in-memory team and match registries and the
// statistics derived from folding match results into teams.
package league

import (
	"github.com/cockroachdb/errors"

	"ligatab/internal/textutil"
)

// ErrRegistryFull is returned by Add once a registry reached its capacity.
var ErrRegistryFull = errors.New("registry full")

// Team is one club with its accumulated statistics. Statistics start zeroed
// and are only mutated by Accumulate during the match fold.
type Team struct {
	ID           int
	Name         string
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
}

// Accumulate applies a single match result seen from this team's side.
// It must be called exactly once per team per match, with the goal arguments
// reversed for the opposing side.
func (t *Team) Accumulate(goalsFor, goalsAgainst int) {
	t.GoalsFor += goalsFor
	t.GoalsAgainst += goalsAgainst
	switch {
	case goalsFor > goalsAgainst:
		t.Wins++
	case goalsFor == goalsAgainst:
		t.Draws++
	default:
		t.Losses++
	}
}

// Points returns 3 per win plus 1 per draw.
func (t *Team) Points() int {
	return t.Wins*3 + t.Draws
}

// GoalDiff returns goals scored minus goals conceded.
func (t *Team) GoalDiff() int {
	return t.GoalsFor - t.GoalsAgainst
}

// TeamSet is a bounded, insertion-ordered team registry.
type TeamSet struct {
	teams []Team
	limit int
}

// NewTeamSet returns an empty registry capped at limit entries.
func NewTeamSet(limit int) *TeamSet {
	return &TeamSet{limit: limit}
}

// Add appends a team, or returns ErrRegistryFull at capacity.
func (s *TeamSet) Add(t Team) error {
	if len(s.teams) >= s.limit {
		return ErrRegistryFull
	}
	s.teams = append(s.teams, t)
	return nil
}

// Len returns the number of loaded teams.
func (s *TeamSet) Len() int {
	return len(s.teams)
}

// At returns the team at registry position i.
func (s *TeamSet) At(i int) *Team {
	return &s.teams[i]
}

// FindByID scans in insertion order and returns the first team with the
// given id, or nil. Duplicate ids keep first-match-wins semantics.
func (s *TeamSet) FindByID(id int) *Team {
	for i := range s.teams {
		if s.teams[i].ID == id {
			return &s.teams[i]
		}
	}
	return nil
}

// HasID reports whether any loaded team carries the given id.
func (s *TeamSet) HasID(id int) bool {
	return s.FindByID(id) != nil
}

// MatchPrefix writes the registry positions of teams whose name starts with
// prefix (ASCII case-insensitive) into out, up to len(out). The returned
// total is the true number of matches and is authoritative even when out was
// too small to hold them all.
func (s *TeamSet) MatchPrefix(prefix string, out []int) int {
	found := 0
	for i := range s.teams {
		if textutil.HasPrefixFold(s.teams[i].Name, prefix) {
			if found < len(out) {
				out[found] = i
			}
			found++
		}
	}
	return found
}

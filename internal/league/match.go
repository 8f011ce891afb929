package league

import (
	"go.uber.org/zap"

	"ligatab/internal/textutil"
)

// UnknownTeamName is shown for a match side whose id resolves to no team.
const UnknownTeamName = "(unknown)"

// Match is one fixture referencing both teams by id. References are not
// validated at parse time; broken ones surface during Fold.
type Match struct {
	ID        int
	HomeID    int
	AwayID    int
	HomeGoals int
	AwayGoals int
}

// Side selects which team name a prefix filter applies to.
type Side int

const (
	SideHome Side = iota
	SideAway
	SideEither
)

// MatchView is a match with both team names resolved, ready for display.
type MatchView struct {
	ID        int
	HomeName  string
	AwayName  string
	HomeGoals int
	AwayGoals int
}

// MatchSet is a bounded, insertion-ordered match registry.
type MatchSet struct {
	matches []Match
	limit   int
}

// NewMatchSet returns an empty registry capped at limit entries.
func NewMatchSet(limit int) *MatchSet {
	return &MatchSet{limit: limit}
}

// Add appends a match, or returns ErrRegistryFull at capacity.
func (s *MatchSet) Add(m Match) error {
	if len(s.matches) >= s.limit {
		return ErrRegistryFull
	}
	s.matches = append(s.matches, m)
	return nil
}

// Len returns the number of loaded matches.
func (s *MatchSet) Len() int {
	return len(s.matches)
}

// At returns the match at registry position i.
func (s *MatchSet) At(i int) Match {
	return s.matches[i]
}

// Fold applies every match onto both participating teams' statistics.
// A match referencing a missing team id is skipped with a warning; the
// remaining matches are still applied. Teams must be loaded before Fold and
// Fold must run before standings are read, or statistics stay zeroed.
func (s *MatchSet) Fold(teams *TeamSet, log *zap.Logger) {
	for i := range s.matches {
		m := &s.matches[i]
		home := teams.FindByID(m.HomeID)
		away := teams.FindByID(m.AwayID)
		if home == nil || away == nil {
			log.Warn("match references unknown team, skipped",
				zap.Int("match_id", m.ID),
				zap.Int("home_id", m.HomeID),
				zap.Int("away_id", m.AwayID),
			)
			continue
		}
		home.Accumulate(m.HomeGoals, m.AwayGoals)
		away.Accumulate(m.AwayGoals, m.HomeGoals)
	}
}

func teamName(teams *TeamSet, id int) string {
	if t := teams.FindByID(id); t != nil {
		return t.Name
	}
	return UnknownTeamName
}

// FilterMatches returns, in insertion order, the matches whose home, away or
// either team name starts with prefix, with names resolved for display.
func (s *MatchSet) FilterMatches(teams *TeamSet, prefix string, side Side) []MatchView {
	var views []MatchView
	for i := range s.matches {
		m := &s.matches[i]
		homeName := teamName(teams, m.HomeID)
		awayName := teamName(teams, m.AwayID)

		var hit bool
		switch side {
		case SideHome:
			hit = textutil.HasPrefixFold(homeName, prefix)
		case SideAway:
			hit = textutil.HasPrefixFold(awayName, prefix)
		default:
			hit = textutil.HasPrefixFold(homeName, prefix) || textutil.HasPrefixFold(awayName, prefix)
		}
		if !hit {
			continue
		}
		views = append(views, MatchView{
			ID:        m.ID,
			HomeName:  homeName,
			AwayName:  awayName,
			HomeGoals: m.HomeGoals,
			AwayGoals: m.AwayGoals,
		})
	}
	return views
}

package output

import (
	"github.com/bytedance/sonic"

	"ligatab/internal/league"
)

// StandingRow is the JSON shape of one standings entry.
type StandingRow struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Wins         int    `json:"wins"`
	Draws        int    `json:"draws"`
	Losses       int    `json:"losses"`
	GoalsFor     int    `json:"goals_for"`
	GoalsAgainst int    `json:"goals_against"`
	GoalDiff     int    `json:"goal_diff"`
	Points       int    `json:"points"`
}

// MatchRow is the JSON shape of one filtered match.
type MatchRow struct {
	ID        int    `json:"id"`
	Home      string `json:"home"`
	Away      string `json:"away"`
	HomeGoals int    `json:"home_goals"`
	AwayGoals int    `json:"away_goals"`
}

func standingRow(t *league.Team) StandingRow {
	return StandingRow{
		ID:           t.ID,
		Name:         t.Name,
		Wins:         t.Wins,
		Draws:        t.Draws,
		Losses:       t.Losses,
		GoalsFor:     t.GoalsFor,
		GoalsAgainst: t.GoalsAgainst,
		GoalDiff:     t.GoalDiff(),
		Points:       t.Points(),
	}
}

// StandingsJSON marshals all teams ascending by id as a JSON array.
func StandingsJSON(teams *league.TeamSet) (string, error) {
	rows := make([]StandingRow, 0, teams.Len())
	for _, pos := range standingsOrder(teams) {
		rows = append(rows, standingRow(teams.At(pos)))
	}
	return marshal(rows)
}

// TeamsJSON marshals the teams at the given registry positions.
func TeamsJSON(teams *league.TeamSet, positions []int) (string, error) {
	rows := make([]StandingRow, 0, len(positions))
	for _, i := range positions {
		rows = append(rows, standingRow(teams.At(i)))
	}
	return marshal(rows)
}

// MatchesJSON marshals filtered matches as a JSON array.
func MatchesJSON(views []league.MatchView) (string, error) {
	rows := make([]MatchRow, 0, len(views))
	for _, v := range views {
		rows = append(rows, MatchRow{
			ID:        v.ID,
			Home:      v.HomeName,
			Away:      v.AwayName,
			HomeGoals: v.HomeGoals,
			AwayGoals: v.AwayGoals,
		})
	}
	return marshal(rows)
}

func marshal(v any) (string, error) {
	data, err := sonic.ConfigDefault.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

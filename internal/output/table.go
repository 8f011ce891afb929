// Package output formats standings and match listings. Formatting is pure:
// callers decide where the lines go (console, export file, both).
package output

import (
	"fmt"
	"sort"
	"strings"

	"ligatab/internal/config"
	"ligatab/internal/league"
	"ligatab/internal/textutil"
)

var standingsWidths = []int{
	config.WidthID,
	config.WidthName,
	config.WidthWins,
	config.WidthDraws,
	config.WidthLosses,
	config.WidthGoalsFor,
	config.WidthGoalsAgainst,
	config.WidthGoalDiff,
	config.WidthPoints,
}

var standingsHeader = []string{"ID", "Time", "V", "E", "D", "GM", "GS", "S", "PG"}

// row renders one table line: every cell padded or truncated to its column
// width, pipe-delimited.
func row(cells []string, widths []int) string {
	var b strings.Builder
	for i, cell := range cells {
		b.WriteString("| ")
		b.WriteString(textutil.Fit(cell, widths[i]))
		b.WriteString(" ")
	}
	b.WriteString("|")
	return b.String()
}

// separator renders the hyphen line under a header.
func separator(widths []int) string {
	var b strings.Builder
	for _, w := range widths {
		b.WriteString("|-")
		b.WriteString(strings.Repeat("-", w))
		b.WriteString("-")
	}
	b.WriteString("|")
	return b.String()
}

func teamCells(t *league.Team) []string {
	return []string{
		fmt.Sprintf("%d", t.ID),
		t.Name,
		fmt.Sprintf("%d", t.Wins),
		fmt.Sprintf("%d", t.Draws),
		fmt.Sprintf("%d", t.Losses),
		fmt.Sprintf("%d", t.GoalsFor),
		fmt.Sprintf("%d", t.GoalsAgainst),
		fmt.Sprintf("%d", t.GoalDiff()),
		fmt.Sprintf("%d", t.Points()),
	}
}

// standingsOrder returns registry positions sorted ascending by team id,
// ties kept in insertion order.
func standingsOrder(teams *league.TeamSet) []int {
	order := make([]int, teams.Len())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return teams.At(order[a]).ID < teams.At(order[b]).ID
	})
	return order
}

// StandingsTable returns the full standings table, one team per line ordered
// ascending by id.
func StandingsTable(teams *league.TeamSet) []string {
	lines := make([]string, 0, teams.Len()+2)
	lines = append(lines, row(standingsHeader, standingsWidths))
	lines = append(lines, separator(standingsWidths))
	for _, i := range standingsOrder(teams) {
		lines = append(lines, row(teamCells(teams.At(i)), standingsWidths))
	}
	return lines
}

// TeamTable renders the teams at the given registry positions in the
// standings column layout.
func TeamTable(teams *league.TeamSet, positions []int) []string {
	lines := make([]string, 0, len(positions)+2)
	lines = append(lines, row(standingsHeader, standingsWidths))
	lines = append(lines, separator(standingsWidths))
	for _, i := range positions {
		lines = append(lines, row(teamCells(teams.At(i)), standingsWidths))
	}
	return lines
}

// MatchTable renders filtered matches as "| id | home | g x g | away |" rows.
func MatchTable(views []league.MatchView) []string {
	lines := make([]string, 0, len(views)+2)
	lines = append(lines, "| ID | Time1 |  | Time2 |")
	lines = append(lines, "|----|-------|--|-------|")
	for _, v := range views {
		lines = append(lines, fmt.Sprintf("| %d | %s | %d x %d | %s |",
			v.ID, v.HomeName, v.HomeGoals, v.AwayGoals, v.AwayName))
	}
	return lines
}

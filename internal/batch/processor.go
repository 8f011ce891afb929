// Package batch answers one team prefix query per input line.
package batch

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bytedance/sonic"

	"ligatab/internal/config"
	"ligatab/internal/league"
	"ligatab/internal/output"
)

// Processor runs prefix queries against a loaded team registry.
type Processor struct {
	teams *league.TeamSet
}

// NewProcessor creates a batch processor over the registry.
func NewProcessor(teams *league.TeamSet) *Processor {
	return &Processor{teams: teams}
}

// queryResult is the JSON shape of one batch query.
type queryResult struct {
	Prefix string               `json:"prefix"`
	Total  int                  `json:"total"`
	Teams  []output.StandingRow `json:"teams"`
}

// ProcessInput reads one prefix per line from r and writes results to w.
// Blank lines are skipped. Text mode emits "prefix<TAB>total<TAB>names";
// JSON mode collects everything into a single array.
func (p *Processor) ProcessInput(r io.Reader, w io.Writer, jsonOutput bool) error {
	scanner := bufio.NewScanner(r)

	if jsonOutput {
		var results []queryResult
		for scanner.Scan() {
			prefix := strings.TrimSpace(scanner.Text())
			if prefix == "" {
				continue
			}
			results = append(results, p.query(prefix))
		}
		data, err := sonic.ConfigDefault.MarshalIndent(results, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
		return scanner.Err()
	}

	for scanner.Scan() {
		prefix := strings.TrimSpace(scanner.Text())
		if prefix == "" {
			continue
		}
		res := p.query(prefix)
		names := make([]string, 0, len(res.Teams))
		for _, t := range res.Teams {
			names = append(names, t.Name)
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", res.Prefix, res.Total, strings.Join(names, ","))
	}
	return scanner.Err()
}

func (p *Processor) query(prefix string) queryResult {
	positions := make([]int, config.MaxTeams)
	total := p.teams.MatchPrefix(prefix, positions)
	n := total
	if n > len(positions) {
		n = len(positions)
	}
	res := queryResult{Prefix: prefix, Total: total, Teams: []output.StandingRow{}}
	for _, i := range positions[:n] {
		t := p.teams.At(i)
		res.Teams = append(res.Teams, output.StandingRow{
			ID:           t.ID,
			Name:         t.Name,
			Wins:         t.Wins,
			Draws:        t.Draws,
			Losses:       t.Losses,
			GoalsFor:     t.GoalsFor,
			GoalsAgainst: t.GoalsAgainst,
			GoalDiff:     t.GoalDiff(),
			Points:       t.Points(),
		})
	}
	return res
}

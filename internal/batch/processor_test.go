package batch

import (
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ligatab/internal/config"
	"ligatab/internal/league"
)

func batchTeams(t *testing.T) *league.TeamSet {
	t.Helper()
	teams := league.NewTeamSet(config.MaxTeams)
	require.NoError(t, teams.Add(league.Team{ID: 0, Name: "Flamengo", Wins: 1, GoalsFor: 2, GoalsAgainst: 1}))
	require.NoError(t, teams.Add(league.Team{ID: 1, Name: "Fluminense"}))
	require.NoError(t, teams.Add(league.Team{ID: 2, Name: "Santos"}))
	return teams
}

func TestProcessInputText(t *testing.T) {
	processor := NewProcessor(batchTeams(t))

	in := strings.NewReader("fl\n\nxyz\nSANT\n")
	var out strings.Builder
	require.NoError(t, processor.ProcessInput(in, &out, false))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "fl\t2\tFlamengo,Fluminense", lines[0])
	assert.Equal(t, "xyz\t0\t", lines[1])
	assert.Equal(t, "SANT\t1\tSantos", lines[2])
}

func TestProcessInputJSON(t *testing.T) {
	processor := NewProcessor(batchTeams(t))

	in := strings.NewReader("fla\n")
	var out strings.Builder
	require.NoError(t, processor.ProcessInput(in, &out, true))

	var results []struct {
		Prefix string `json:"prefix"`
		Total  int    `json:"total"`
		Teams  []struct {
			ID     int    `json:"id"`
			Name   string `json:"name"`
			Points int    `json:"points"`
		} `json:"teams"`
	}
	require.NoError(t, sonic.UnmarshalString(out.String(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "fla", results[0].Prefix)
	assert.Equal(t, 1, results[0].Total)
	require.Len(t, results[0].Teams, 1)
	assert.Equal(t, "Flamengo", results[0].Teams[0].Name)
	assert.Equal(t, 3, results[0].Teams[0].Points)
}

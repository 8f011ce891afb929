package cli

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ligatab/internal/config"
	"ligatab/internal/league"
)

func menuFixture(t *testing.T) (*league.TeamSet, *league.MatchSet) {
	t.Helper()
	teams := league.NewTeamSet(config.MaxTeams)
	require.NoError(t, teams.Add(league.Team{ID: 0, Name: "Flamengo"}))
	require.NoError(t, teams.Add(league.Team{ID: 1, Name: "São Paulo"}))

	matches := league.NewMatchSet(config.MaxMatches)
	require.NoError(t, matches.Add(league.Match{ID: 0, HomeID: 0, AwayID: 1, HomeGoals: 2, AwayGoals: 1}))
	matches.Fold(teams, zap.NewNop())
	return teams, matches
}

func runScript(t *testing.T, script string) string {
	t.Helper()
	teams, matches := menuFixture(t)
	var out strings.Builder
	require.NoError(t, RunMenu(teams, matches, strings.NewReader(script), &out))
	return out.String()
}

func TestMenuTeamLookup(t *testing.T) {
	out := runScript(t, "1\nfla\nQ\n")
	assert.Contains(t, out, "Flamengo")
	assert.Contains(t, out, "| ID  | Time")
	assert.Contains(t, out, "Bye.")
}

func TestMenuTeamLookupEmptyPrefix(t *testing.T) {
	out := runScript(t, "1\n\nQ\n")
	assert.Contains(t, out, "Empty prefix.")
}

func TestMenuTeamLookupNoResult(t *testing.T) {
	out := runScript(t, "1\nxyz\nQ\n")
	assert.Contains(t, out, "No team found for prefix: xyz")
}

func TestMenuMatchLookup(t *testing.T) {
	out := runScript(t, "2\n1\nfla\n4\nQ\n")
	assert.Contains(t, out, "| 0 | Flamengo | 2 x 1 | São Paulo |")
}

func TestMenuMatchLookupNoResult(t *testing.T) {
	out := runScript(t, "2\n3\nxyz\n4\nQ\n")
	assert.Contains(t, out, "No matches found for prefix: xyz")
}

func TestMenuStandings(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer func() { _ = os.Chdir(wd) }()

	out := runScript(t, "6\nQ\n")
	assert.Contains(t, out, "| 0   | Flamengo")

	data, err := os.ReadFile(config.ExportFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "| 0   | Flamengo")
}

func TestMenuInvalidOption(t *testing.T) {
	out := runScript(t, "9\nQ\n")
	assert.Contains(t, out, "Invalid option.")
}

func TestMenuEOFQuits(t *testing.T) {
	out := runScript(t, "")
	assert.Contains(t, out, "Option: ")
}

func TestMenuLowercaseQuit(t *testing.T) {
	out := runScript(t, "q\n")
	assert.Contains(t, out, "Bye.")
}

// Package config provides application constants and defaults.
package config

const (
	// AppName is the application name.
	AppName = "ligatab"

	// DefaultTeamsFile is the team CSV read when no path is given.
	DefaultTeamsFile = "times.csv"

	// DefaultMatchesFile is the match CSV read when no path is given.
	DefaultMatchesFile = "partidas.csv"

	// ExportFile is the fixed name of the exported standings table.
	ExportFile = "classificacao.txt"

	// MaxTeams is the team registry capacity.
	MaxTeams = 64

	// MaxMatches is the match registry capacity.
	MaxMatches = 500

	// MaxTeamNameBytes bounds a team name; longer names are clipped at a
	// rune boundary during load.
	MaxTeamNameBytes = 63
)

// Standings column widths, in code points.
const (
	WidthID           = 3
	WidthName         = 12
	WidthWins         = 2
	WidthDraws        = 2
	WidthLosses       = 2
	WidthGoalsFor     = 3
	WidthGoalsAgainst = 3
	WidthGoalDiff     = 3
	WidthPoints       = 3
)

// Config holds runtime configuration resolved from flags and arguments.
type Config struct {
	TeamsPath   string
	MatchesPath string
	JSONOutput  bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		TeamsPath:   DefaultTeamsFile,
		MatchesPath: DefaultMatchesFile,
	}
}

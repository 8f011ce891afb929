// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ligatab/internal/config"
	"ligatab/internal/league"
	"ligatab/internal/logging"
	"ligatab/internal/store"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags
var (
	teamsPath   string
	matchesPath string
	jsonOutput  bool
)

var logger = logging.Nop()

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ligatab [teams.csv [matches.csv]]",
	Short: "league standings and match lookup over two CSV files",
	Long: `ligatab loads a team CSV and a match CSV, derives the standings
(wins, draws, losses, goals, points) and answers prefix lookup queries.

Run it without a subcommand for the interactive menu session:
  ligatab times.csv partidas.csv

Or query directly:
  ligatab standings
  ligatab team fla
  cat prefixes.txt | ligatab team

The team CSV is required; a missing match CSV degrades to zeroed standings.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runSession,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	logger = logging.New(zapcore.InfoLevel)
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&teamsPath, "teams", config.DefaultTeamsFile, "team CSV path")
	rootCmd.PersistentFlags().StringVar(&matchesPath, "matches", config.DefaultMatchesFile, "match CSV path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")

	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(teamCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(versionCmd)
}

// ExitCode constants
const (
	ExitSuccess      = 0
	ExitLoadFailed   = 1
	ExitInvalidInput = 2
	ExitNotFound     = 4
)

func exitWithCode(code int, msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
}

// loadAll loads both registries and folds matches into team statistics.
// A team CSV failure is fatal; a match CSV failure degrades to zeroed
// standings.
func loadAll(tPath, mPath string) (*league.TeamSet, *league.MatchSet, error) {
	teams := league.NewTeamSet(config.MaxTeams)
	matches := league.NewMatchSet(config.MaxMatches)

	if _, err := store.LoadTeams(tPath, teams, logger); err != nil {
		return nil, nil, err
	}
	if n, err := store.LoadMatches(mPath, matches, logger); err != nil {
		logger.Warn("match CSV not loaded, standings stay zeroed",
			zap.String("file", mPath), zap.Error(err))
	} else {
		logger.Info("matches loaded", zap.Int("count", n))
	}

	matches.Fold(teams, logger)
	return teams, matches, nil
}

func runSession(cmd *cobra.Command, args []string) error {
	// Positional arguments take precedence over the flags.
	if len(args) >= 1 {
		teamsPath = args[0]
	}
	if len(args) >= 2 {
		matchesPath = args[1]
	}
	if len(args) == 0 {
		fmt.Printf("Hint: pass the CSV paths: %s <teams.csv> <matches.csv>\n", config.AppName)
		fmt.Printf("Trying %q and %q in the current directory.\n", config.DefaultTeamsFile, config.DefaultMatchesFile)
	}

	teams, matches, err := loadAll(teamsPath, matchesPath)
	if err != nil {
		exitWithCode(ExitLoadFailed, fmt.Sprintf("Error: %v", err))
		return nil
	}

	return RunMenu(teams, matches, os.Stdin, os.Stdout)
}

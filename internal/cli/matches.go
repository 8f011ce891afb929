package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ligatab/internal/league"
	"ligatab/internal/output"
)

var (
	homePrefix string
	awayPrefix string
	anyPrefix  string
)

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "list matches filtered by team name prefix",
	Long: `Lists matches whose home, away, or either team name starts with the
given prefix:

  ligatab matches --home fla
  ligatab matches --away sant
  ligatab matches --any flu`,
	Args: cobra.NoArgs,
	RunE: runMatches,
}

func init() {
	matchesCmd.Flags().StringVar(&homePrefix, "home", "", "filter by home team name prefix")
	matchesCmd.Flags().StringVar(&awayPrefix, "away", "", "filter by away team name prefix")
	matchesCmd.Flags().StringVar(&anyPrefix, "any", "", "filter by either team name prefix")
}

func runMatches(cmd *cobra.Command, args []string) error {
	var side league.Side
	var prefix string
	set := 0
	if homePrefix != "" {
		side, prefix = league.SideHome, homePrefix
		set++
	}
	if awayPrefix != "" {
		side, prefix = league.SideAway, awayPrefix
		set++
	}
	if anyPrefix != "" {
		side, prefix = league.SideEither, anyPrefix
		set++
	}
	if set != 1 {
		exitWithCode(ExitInvalidInput, "Pass exactly one of --home, --away, --any with a non-empty prefix.")
		return nil
	}

	teams, matches, err := loadAll(teamsPath, matchesPath)
	if err != nil {
		exitWithCode(ExitLoadFailed, fmt.Sprintf("Error: %v", err))
		return nil
	}

	views := matches.FilterMatches(teams, prefix, side)
	if jsonOutput {
		jsonStr, err := output.MatchesJSON(views)
		if err != nil {
			return err
		}
		fmt.Println(jsonStr)
		return nil
	}
	if len(views) == 0 {
		exitWithCode(ExitNotFound, fmt.Sprintf("No matches found for prefix: %s", prefix))
		return nil
	}
	for _, line := range output.MatchTable(views) {
		fmt.Println(line)
	}
	return nil
}

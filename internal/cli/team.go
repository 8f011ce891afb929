package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ligatab/internal/batch"
	"ligatab/internal/config"
	"ligatab/internal/output"
)

var teamCmd = &cobra.Command{
	Use:   "team [prefix]",
	Short: "look up teams by case-insensitive name prefix",
	Long: `Looks up teams whose name starts with the given prefix.

With no argument and piped stdin, reads one prefix per line (batch mode):
  cat prefixes.txt | ligatab team`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTeam,
}

func runTeam(cmd *cobra.Command, args []string) error {
	teams, _, err := loadAll(teamsPath, matchesPath)
	if err != nil {
		exitWithCode(ExitLoadFailed, fmt.Sprintf("Error: %v", err))
		return nil
	}

	if len(args) == 0 {
		// Check if stdin is a terminal
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			return cmd.Help()
		}
		processor := batch.NewProcessor(teams)
		return processor.ProcessInput(os.Stdin, os.Stdout, jsonOutput)
	}

	prefix := args[0]
	if prefix == "" {
		exitWithCode(ExitInvalidInput, "Empty prefix.")
		return nil
	}

	positions := make([]int, config.MaxTeams)
	total := teams.MatchPrefix(prefix, positions)
	if total == 0 {
		exitWithCode(ExitNotFound, fmt.Sprintf("No team found for prefix: %s", prefix))
		return nil
	}
	shown := total
	if shown > len(positions) {
		shown = len(positions)
	}

	if jsonOutput {
		jsonStr, err := output.TeamsJSON(teams, positions[:shown])
		if err != nil {
			return err
		}
		fmt.Println(jsonStr)
		return nil
	}
	for _, line := range output.TeamTable(teams, positions[:shown]) {
		fmt.Println(line)
	}
	return nil
}

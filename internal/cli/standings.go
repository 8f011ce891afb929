package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ligatab/internal/config"
	"ligatab/internal/output"
)

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "print the standings table and export it to " + config.ExportFile,
	Args:  cobra.NoArgs,
	RunE:  runStandings,
}

func runStandings(cmd *cobra.Command, args []string) error {
	teams, _, err := loadAll(teamsPath, matchesPath)
	if err != nil {
		exitWithCode(ExitLoadFailed, fmt.Sprintf("Error: %v", err))
		return nil
	}

	if jsonOutput {
		jsonStr, err := output.StandingsJSON(teams)
		if err != nil {
			return err
		}
		fmt.Println(jsonStr)
		return nil
	}

	lines := output.StandingsTable(teams)
	for _, line := range lines {
		fmt.Println(line)
	}
	if err := output.WriteExport(config.ExportFile, lines); err != nil {
		logger.Warn("standings export failed", zap.Error(err))
	}
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ligatab/internal/config"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s\n", config.AppName, Version)
		fmt.Printf("commit: %s\n", Commit)
		fmt.Printf("built:  %s\n", BuildTime)
	},
}

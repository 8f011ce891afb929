package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"ligatab/internal/config"
	"ligatab/internal/league"
	"ligatab/internal/output"
)

// RunMenu drives the interactive session over r/w until Q or EOF.
func RunMenu(teams *league.TeamSet, matches *league.MatchSet, r io.Reader, w io.Writer) error {
	in := bufio.NewScanner(r)

	for {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "League Match Manager")
		fmt.Fprintln(w, "1 - Look up team")
		fmt.Fprintln(w, "2 - Look up matches")
		fmt.Fprintln(w, "6 - Print standings")
		fmt.Fprintln(w, "Q - Quit")
		fmt.Fprint(w, "Option: ")

		if !in.Scan() {
			break
		}
		op := strings.TrimSpace(in.Text())
		switch {
		case op == "Q" || op == "q":
			fmt.Fprintln(w, "Bye.")
			return in.Err()
		case op == "1":
			menuTeamLookup(teams, in, w)
		case op == "2":
			menuMatchLookup(teams, matches, in, w)
		case op == "6":
			fmt.Fprintln(w, "Printing standings.")
			lines := output.StandingsTable(teams)
			for _, line := range lines {
				fmt.Fprintln(w, line)
			}
			if err := output.WriteExport(config.ExportFile, lines); err != nil {
				logger.Warn("standings export failed", zap.Error(err))
			}
		default:
			fmt.Fprintln(w, "Invalid option.")
		}
	}
	return in.Err()
}

func readPrompt(in *bufio.Scanner, w io.Writer, prompt string) (string, bool) {
	fmt.Fprint(w, prompt)
	if !in.Scan() {
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}

func menuTeamLookup(teams *league.TeamSet, in *bufio.Scanner, w io.Writer) {
	prefix, ok := readPrompt(in, w, "Team name or prefix: ")
	if !ok {
		return
	}
	if prefix == "" {
		fmt.Fprintln(w, "Empty prefix.")
		return
	}

	positions := make([]int, config.MaxTeams)
	total := teams.MatchPrefix(prefix, positions)
	if total == 0 {
		fmt.Fprintf(w, "No team found for prefix: %s\n", prefix)
		return
	}
	shown := total
	if shown > len(positions) {
		shown = len(positions)
	}
	fmt.Fprintln(w)
	for _, line := range output.TeamTable(teams, positions[:shown]) {
		fmt.Fprintln(w, line)
	}
}

func menuMatchLookup(teams *league.TeamSet, matches *league.MatchSet, in *bufio.Scanner, w io.Writer) {
	for {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Choose a query mode:")
		fmt.Fprintln(w, "1 - By home team")
		fmt.Fprintln(w, "2 - By away team")
		fmt.Fprintln(w, "3 - By home or away team")
		fmt.Fprintln(w, "4 - Back to main menu")
		fmt.Fprint(w, "Option: ")

		if !in.Scan() {
			return
		}
		op := strings.TrimSpace(in.Text())
		if op == "4" {
			return
		}

		var side league.Side
		switch op {
		case "1":
			side = league.SideHome
		case "2":
			side = league.SideAway
		case "3":
			side = league.SideEither
		default:
			fmt.Fprintln(w, "Invalid option.")
			continue
		}

		prefix, ok := readPrompt(in, w, "Team name: ")
		if !ok {
			return
		}
		if prefix == "" {
			fmt.Fprintln(w, "Empty prefix.")
			continue
		}

		views := matches.FilterMatches(teams, prefix, side)
		if len(views) == 0 {
			fmt.Fprintf(w, "No matches found for prefix: %s\n", prefix)
			continue
		}
		for _, line := range output.MatchTable(views) {
			fmt.Fprintln(w, line)
		}
	}
}

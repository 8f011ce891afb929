// Package store loads the team and match CSV files into the registries.
//
// The format is deliberately minimal: comma-delimited, no quoting, one header
// line that is always discarded. Malformed rows are skipped with a warning,
// never fatal; a full registry stops the load with rows already accepted kept.
package store

import (
	"bufio"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"ligatab/internal/config"
	"ligatab/internal/league"
	"ligatab/internal/textutil"
)

// ErrEmptyFile is returned when a CSV has no header line at all.
var ErrEmptyFile = errors.New("empty file")

func chomp(line string) string {
	return strings.TrimRight(line, "\r\n")
}

// ParseTeamRow parses an "id,name" row. The line is split on the first comma
// only; the name is trimmed and clipped to the configured byte bound, never
// cut inside a multi-byte sequence.
func ParseTeamRow(line string) (league.Team, error) {
	line = strings.TrimSpace(chomp(line))

	idField, nameField, ok := strings.Cut(line, ",")
	if !ok {
		return league.Team{}, errors.New("expected two comma-delimited fields")
	}
	id, err := textutil.ParseInt32(strings.TrimSpace(idField))
	if err != nil {
		return league.Team{}, errors.Wrap(err, "team id")
	}
	name := textutil.ClipBytes(strings.TrimSpace(nameField), config.MaxTeamNameBytes)
	return league.Team{ID: id, Name: name}, nil
}

// ParseMatchRow parses an "id,home_id,away_id,home_goals,away_goals" row.
// Exactly five fields are required, each an integer.
func ParseMatchRow(line string) (league.Match, error) {
	line = strings.TrimSpace(chomp(line))

	fields := strings.Split(line, ",")
	if len(fields) != 5 {
		return league.Match{}, errors.Newf("expected 5 fields, got %d", len(fields))
	}
	vals := make([]int, 5)
	for i, f := range fields {
		v, err := textutil.ParseInt32(strings.TrimSpace(f))
		if err != nil {
			return league.Match{}, errors.Wrapf(err, "field %d", i+1)
		}
		vals[i] = v
	}
	return league.Match{
		ID:        vals[0],
		HomeID:    vals[1],
		AwayID:    vals[2],
		HomeGoals: vals[3],
		AwayGoals: vals[4],
	}, nil
}

// LoadTeams reads the team CSV at path into the registry and returns the
// number of rows accepted. Duplicate ids are kept (lookups stay
// first-match-wins) but warned about.
func LoadTeams(path string, teams *league.TeamSet, log *zap.Logger) (int, error) {
	count := 0
	err := loadRows(path, log, func(line string) (bool, error) {
		t, err := ParseTeamRow(line)
		if err != nil {
			return false, err
		}
		if teams.HasID(t.ID) {
			log.Warn("duplicate team id, first entry wins on lookup",
				zap.Int("id", t.ID), zap.String("name", t.Name))
		}
		if err := teams.Add(t); err != nil {
			return true, err
		}
		count++
		return false, nil
	})
	return count, err
}

// LoadMatches reads the match CSV at path into the registry and returns the
// number of rows accepted.
func LoadMatches(path string, matches *league.MatchSet, log *zap.Logger) (int, error) {
	count := 0
	err := loadRows(path, log, func(line string) (bool, error) {
		m, err := ParseMatchRow(line)
		if err != nil {
			return false, err
		}
		if err := matches.Add(m); err != nil {
			return true, err
		}
		count++
		return false, nil
	})
	return count, err
}

// loadRows opens path, discards the header line and feeds each remaining
// line to accept. A row error with full=false skips the line; full=true
// stops accepting further rows while keeping the ones already loaded.
func loadRows(path string, log *zap.Logger, accept func(line string) (full bool, err error)) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return errors.Wrapf(err, "read %s", path)
		}
		return errors.Wrapf(ErrEmptyFile, "%s", path)
	}
	// Header discarded unconditionally.

	for scanner.Scan() {
		line := scanner.Text()
		full, err := accept(line)
		if full {
			log.Warn("registry full, remaining rows dropped",
				zap.String("file", path))
			break
		}
		if err != nil {
			log.Warn("row skipped",
				zap.String("file", path),
				zap.String("line", chomp(line)),
				zap.Error(err))
		}
	}
	return errors.Wrapf(scanner.Err(), "read %s", path)
}

package league

import (
	"testing"

	"github.com/cockroachdb/errors"
)

func TestAccumulate(t *testing.T) {
	var team Team

	team.Accumulate(2, 1) // win
	team.Accumulate(0, 0) // draw
	team.Accumulate(1, 3) // loss

	if team.Wins != 1 || team.Draws != 1 || team.Losses != 1 {
		t.Errorf("W/D/L = %d/%d/%d, expected 1/1/1", team.Wins, team.Draws, team.Losses)
	}
	if team.GoalsFor != 3 {
		t.Errorf("GoalsFor = %d, expected 3", team.GoalsFor)
	}
	if team.GoalsAgainst != 4 {
		t.Errorf("GoalsAgainst = %d, expected 4", team.GoalsAgainst)
	}
}

func TestPointsAndGoalDiff(t *testing.T) {
	team := Team{Wins: 2, Draws: 1, Losses: 3, GoalsFor: 7, GoalsAgainst: 9}

	if got := team.Points(); got != 7 {
		t.Errorf("Points = %d, expected 7", got)
	}
	if got := team.GoalDiff(); got != -2 {
		t.Errorf("GoalDiff = %d, expected -2", got)
	}
}

func TestTeamSetCapacity(t *testing.T) {
	set := NewTeamSet(2)

	if err := set.Add(Team{ID: 0, Name: "Flamengo"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := set.Add(Team{ID: 1, Name: "Santos"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	err := set.Add(Team{ID: 2, Name: "Grêmio"})
	if !errors.Is(err, ErrRegistryFull) {
		t.Errorf("Add at capacity = %v, expected ErrRegistryFull", err)
	}
	if set.Len() != 2 {
		t.Errorf("Len = %d, expected 2", set.Len())
	}
}

func TestFindByIDFirstWins(t *testing.T) {
	set := NewTeamSet(4)
	set.Add(Team{ID: 7, Name: "First"})
	set.Add(Team{ID: 7, Name: "Second"})

	got := set.FindByID(7)
	if got == nil {
		t.Fatal("FindByID(7) returned nil")
	}
	if got.Name != "First" {
		t.Errorf("FindByID(7).Name = %q, expected %q", got.Name, "First")
	}
	if set.FindByID(99) != nil {
		t.Error("FindByID(99) should return nil")
	}
}

func TestMatchPrefix(t *testing.T) {
	set := NewTeamSet(8)
	set.Add(Team{ID: 0, Name: "Flamengo"})
	set.Add(Team{ID: 1, Name: "Fluminense"})
	set.Add(Team{ID: 2, Name: "Santos"})

	out := make([]int, 8)
	total := set.MatchPrefix("fl", out)
	if total != 2 {
		t.Fatalf("MatchPrefix(\"fl\") total = %d, expected 2", total)
	}
	if out[0] != 0 || out[1] != 1 {
		t.Errorf("positions = %v, expected [0 1 ...]", out[:2])
	}

	if got := set.MatchPrefix("FL", out); got != 2 {
		t.Errorf("MatchPrefix(\"FL\") total = %d, expected 2", got)
	}
	if got := set.MatchPrefix("xyz", out); got != 0 {
		t.Errorf("MatchPrefix(\"xyz\") total = %d, expected 0", got)
	}
	if got := set.MatchPrefix("", out); got != 3 {
		t.Errorf("MatchPrefix(\"\") total = %d, expected 3", got)
	}
}

func TestMatchPrefixAuthoritativeTotal(t *testing.T) {
	set := NewTeamSet(8)
	set.Add(Team{ID: 0, Name: "Flamengo"})
	set.Add(Team{ID: 1, Name: "Fluminense"})
	set.Add(Team{ID: 2, Name: "Fortaleza"})

	// Output capacity smaller than the true match count: the total is still
	// authoritative, only the overflowing positions go unwritten.
	out := make([]int, 1)
	total := set.MatchPrefix("f", out)
	if total != 3 {
		t.Errorf("total = %d, expected 3", total)
	}
	if out[0] != 0 {
		t.Errorf("out[0] = %d, expected 0", out[0])
	}
}

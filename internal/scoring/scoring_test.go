package scoring

import (
	"testing"

	"github.com/NUDC/wego-game/internal/core"
)

func TestNormalize(t *testing.T) {
	if got := Normalize(450, 900); got != 50 {
		t.Errorf("Normalize(450, 900) = %d, want 50", got)
	}
	// Raw above the ceiling clamps at 100, never 111
	if got := Normalize(1000, 900); got != 100 {
		t.Errorf("Normalize(1000, 900) = %d, want 100", got)
	}
	if got := Normalize(0, 900); got != 0 {
		t.Errorf("Normalize(0, 900) = %d, want 0", got)
	}
	// 333/1000 rounds, not truncates
	if got := Normalize(335, 1000); got != 34 {
		t.Errorf("Normalize(335, 1000) = %d, want 34", got)
	}
}

func TestMaxScoreTableComplete(t *testing.T) {
	for _, axis := range Axes {
		for _, d := range []core.Difficulty{core.DifficultyEasy, core.DifficultyNormal, core.DifficultyHard} {
			if _, ok := MaxScore(axis.GameID, d); !ok {
				t.Errorf("no max score for (%s, %s)", axis.GameID, d)
			}
		}
	}

	if _, ok := MaxScore("bogus", core.DifficultyEasy); ok {
		t.Error("MaxScore should report unknown games")
	}
}

func TestRateBuckets(t *testing.T) {
	cases := []struct {
		average int
		label   string
	}{
		{100, "Razor Sharp"},
		{90, "Razor Sharp"},
		{89, "In Form"},
		{70, "In Form"},
		{69, "Warming Up"},
		{50, "Warming Up"},
		{49, "Getting Started"},
		{0, "Getting Started"},
	}

	for _, c := range cases {
		if got := Rate(c.average); got.Label != c.label {
			t.Errorf("Rate(%d).Label = %q, want %q", c.average, got.Label, c.label)
		}
	}
}

func TestBuildProfileExcludesUnplayed(t *testing.T) {
	// Two games played; the average must ignore the other seven
	p := BuildProfile([]Result{
		{GameID: "gridsearch", Difficulty: core.DifficultyEasy, Score: 800}, // 100
		{GameID: "reaction", Difficulty: core.DifficultyEasy, Score: 400},   // 50
	})

	if p.Average != 75 {
		t.Errorf("Average = %d, want 75 (unplayed games excluded)", p.Average)
	}

	if len(p.AxisScores) != 9 {
		t.Fatalf("Profile must always carry 9 axes, got %d", len(p.AxisScores))
	}

	for _, a := range p.AxisScores {
		switch a.GameID {
		case "gridsearch":
			if !a.Played || a.Score != 100 {
				t.Errorf("gridsearch axis = %+v, want played 100", a)
			}
		case "reaction":
			if !a.Played || a.Score != 50 {
				t.Errorf("reaction axis = %+v, want played 50", a)
			}
		default:
			if a.Played || a.Score != 0 {
				t.Errorf("axis %s should be unplayed with score 0, got %+v", a.GameID, a)
			}
		}
	}
}

func TestBuildProfileKeepsBestPerGame(t *testing.T) {
	p := BuildProfile([]Result{
		{GameID: "gridsearch", Difficulty: core.DifficultyEasy, Score: 400}, // 50
		{GameID: "gridsearch", Difficulty: core.DifficultyEasy, Score: 720}, // 90
		{GameID: "gridsearch", Difficulty: core.DifficultyEasy, Score: 160}, // 20
	})

	if p.AxisScores[1].GameID != "gridsearch" {
		t.Fatal("axis order changed; test assumes gridsearch at index 1")
	}
	if p.AxisScores[1].Score != 90 {
		t.Errorf("best normalized score = %d, want 90", p.AxisScores[1].Score)
	}
	if p.Average != 90 {
		t.Errorf("Average = %d, want 90", p.Average)
	}
}

func TestBuildProfileEmpty(t *testing.T) {
	p := BuildProfile(nil)
	if p.Average != 0 {
		t.Errorf("Average of empty profile = %d, want 0", p.Average)
	}
	if p.Rating.Label != "Getting Started" {
		t.Errorf("Empty profile rating = %q", p.Rating.Label)
	}
}

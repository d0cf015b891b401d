// Package scoring normalizes raw game scores onto a shared 0-100 scale and
// aggregates them into the nine-axis cognitive profile.
package scoring

import (
	"math"

	"github.com/samber/lo"

	"github.com/NUDC/wego-game/internal/core"
)

// Axis describes one radar axis: a game and the cognitive domain it measures.
type Axis struct {
	GameID string
	Domain string
}

// Axes lists the nine radar axes in display order (clockwise from the top).
var Axes = []Axis{
	{GameID: "memory", Domain: "Memory"},
	{GameID: "gridsearch", Domain: "Attention"},
	{GameID: "stroop", Domain: "Inhibition"},
	{GameID: "category", Domain: "Flexibility"},
	{GameID: "pathrecall", Domain: "Spatial"},
	{GameID: "reaction", Domain: "Speed"},
	{GameID: "digitspan", Domain: "Working Memory"},
	{GameID: "arithmetic", Domain: "Calculation"},
	{GameID: "pattern", Domain: "Logic"},
}

// maxScores is the fixed normalization table keyed by (game, difficulty).
// Values are the ceiling of each game's scoring formula at that tier; scores
// above the ceiling clamp to 100 rather than exceeding it.
var maxScores = map[string]map[core.Difficulty]int{
	"memory":     {core.DifficultyEasy: 600, core.DifficultyNormal: 950, core.DifficultyHard: 1400},
	"gridsearch": {core.DifficultyEasy: 800, core.DifficultyNormal: 800, core.DifficultyHard: 800},
	"stroop":     {core.DifficultyEasy: 295, core.DifficultyNormal: 370, core.DifficultyHard: 445},
	"category":   {core.DifficultyEasy: 180, core.DifficultyNormal: 235, core.DifficultyHard: 290},
	"pathrecall": {core.DifficultyEasy: 1000, core.DifficultyNormal: 1250, core.DifficultyHard: 1500},
	"reaction":   {core.DifficultyEasy: 800, core.DifficultyNormal: 800, core.DifficultyHard: 800},
	"digitspan":  {core.DifficultyEasy: 400, core.DifficultyNormal: 720, core.DifficultyHard: 840},
	"arithmetic": {core.DifficultyEasy: 300, core.DifficultyNormal: 400, core.DifficultyHard: 500},
	"pattern":    {core.DifficultyEasy: 350, core.DifficultyNormal: 680, core.DifficultyHard: 1000},
}

// MaxScore returns the normalization ceiling for a game at a difficulty.
func MaxScore(gameID string, d core.Difficulty) (int, bool) {
	tiers, ok := maxScores[gameID]
	if !ok {
		return 0, false
	}
	max, ok := tiers[d]
	return max, ok
}

// Normalize rescales a raw score to [0, 100] against the given ceiling.
func Normalize(raw, max int) int {
	if max <= 0 {
		return 0
	}
	scaled := int(math.Round(float64(raw) / float64(max) * 100))
	return core.Clamp(scaled, 0, 100)
}

// Rating is a qualitative bucket for an aggregate profile score.
type Rating struct {
	Label   string
	Message string
}

// Rate maps an aggregate 0-100 score to its rating bucket.
func Rate(average int) Rating {
	switch {
	case average >= 90:
		return Rating{Label: "Razor Sharp", Message: "Outstanding across the board. Keep the streak alive."}
	case average >= 70:
		return Rating{Label: "In Form", Message: "Strong results. A few sessions from the top tier."}
	case average >= 50:
		return Rating{Label: "Warming Up", Message: "Solid base. Regular training will push this higher."}
	default:
		return Rating{Label: "Getting Started", Message: "Every session counts. Play each game to fill the chart."}
	}
}

// Result is one completed session: the inputs to profile aggregation.
type Result struct {
	GameID     string
	Difficulty core.Difficulty
	Score      int
}

// AxisScore is one radar axis with its best normalized score.
type AxisScore struct {
	Axis
	Score  int  // Normalized 0-100; 0 when unplayed
	Played bool
}

// Profile is the nine-axis radar profile plus its aggregate rating.
type Profile struct {
	AxisScores []AxisScore
	Average    int // Mean over played axes only
	Rating     Rating
}

// BuildProfile folds completed sessions into the radar profile. Each result
// normalizes against its own difficulty ceiling; an axis keeps the best
// normalized value among its results. Unplayed games are excluded from the
// average rather than counted as zero.
func BuildProfile(results []Result) Profile {
	best := make(map[string]int, len(Axes))
	played := make(map[string]bool, len(Axes))

	for _, r := range results {
		max, ok := MaxScore(r.GameID, r.Difficulty)
		if !ok {
			continue
		}
		n := Normalize(r.Score, max)
		played[r.GameID] = true
		if n > best[r.GameID] {
			best[r.GameID] = n
		}
	}

	axisScores := lo.Map(Axes, func(a Axis, _ int) AxisScore {
		return AxisScore{Axis: a, Score: best[a.GameID], Played: played[a.GameID]}
	})

	playedAxes := lo.Filter(axisScores, func(a AxisScore, _ int) bool { return a.Played })

	average := 0
	if len(playedAxes) > 0 {
		sum := lo.SumBy(playedAxes, func(a AxisScore) int { return a.Score })
		average = int(math.Round(float64(sum) / float64(len(playedAxes))))
	}

	return Profile{
		AxisScores: axisScores,
		Average:    average,
		Rating:     Rate(average),
	}
}

// Package category implements the rapid categorization game: words
// fly by one at a time and the player sorts each into one of two
// category buckets.
package category

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/NUDC/wego-game/internal/config"
	"github.com/NUDC/wego-game/internal/core"
	"github.com/NUDC/wego-game/internal/registry"
)

type question struct {
	Word   string
	Bucket int // 0 = left category, 1 = right category
}

type feedback int

const (
	feedbackNone feedback = iota
	feedbackCorrect
	feedbackWrong
)

type Game struct {
	session *core.Session
	rng     *rand.Rand
	params  config.CategoryParams

	left      wordSet
	right     wordSet
	questions []question
	current   int

	score    int
	streak   int
	correct  int
	feedback feedback

	paused bool
}

// New creates a new categorization game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("category", func() registry.Game {
		return New()
	})
}

func (g *Game) ID() string { return "category" }

func (g *Game) Title() string { return "Sort It" }

func (g *Game) Domain() string { return "Flexibility" }

func (g *Game) Reset(cfg core.RuntimeConfig) {
	params, ok := config.Get().Category[cfg.Difficulty]
	if !ok {
		params = config.Default().Category[core.DifficultyNormal]
	}
	g.params = params
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	picks := core.DistinctIndices(g.rng, 2, len(wordBank))
	g.left = wordBank[picks[0]]
	g.right = wordBank[picks[1]]

	g.questions = g.buildQuestions(params.Questions)
	g.current = 0
	g.score = 0
	g.streak = 0
	g.correct = 0
	g.feedback = feedbackNone
	g.paused = false

	g.session = core.NewSession(cfg.TickRate, nil)
	g.session.Phase = core.PhaseInput
}

// buildQuestions draws n words, roughly half from each category, and
// shuffles the order.
func (g *Game) buildQuestions(n int) []question {
	leftWords := append([]string(nil), g.left.Words...)
	rightWords := append([]string(nil), g.right.Words...)
	core.Shuffle(g.rng, leftWords)
	core.Shuffle(g.rng, rightWords)

	qs := make([]question, 0, n)
	for i := 0; i < n; i++ {
		if i%2 == 0 && i/2 < len(leftWords) {
			qs = append(qs, question{Word: leftWords[i/2], Bucket: 0})
		} else if i/2 < len(rightWords) {
			qs = append(qs, question{Word: rightWords[i/2], Bucket: 1})
		}
	}
	core.Shuffle(g.rng, qs)
	return qs
}

func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.session.Completed() {
		return core.StepResult{State: g.State()}
	}

	g.session.Tick()

	switch {
	case in.Has(core.ActionLeft):
		g.answer(0)
	case in.Has(core.ActionRight):
		g.answer(1)
	default:
		if c := in.Choice(); c == 0 || c == 1 {
			g.answer(c)
		}
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) answer(bucket int) {
	if !g.session.AcceptingInput() {
		return
	}
	if g.current >= len(g.questions) {
		return
	}

	delay := 700 * time.Millisecond
	if bucket == g.questions[g.current].Bucket {
		g.feedback = feedbackCorrect
		g.correct++
		g.streak++
		g.score += 10
		if g.streak > 0 && g.streak%3 == 0 {
			g.score += 15
		}
		delay = 350 * time.Millisecond
	} else {
		g.feedback = feedbackWrong
		g.streak = 0
		// Penalties may take the running total below zero; only the
		// final score is clamped.
		g.score -= 5
	}

	g.session.BeginTransition()
	g.session.After(delay, func() {
		g.session.EndTransition()
		g.feedback = feedbackNone
		g.current++
		if g.current >= len(g.questions) {
			g.session.Complete(g.score)
		}
	})
}

func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf("Word: %d/%d  Score: %d  Streak: %d",
		core.Min(g.current+1, len(g.questions)), len(g.questions), g.score, g.streak)
	dst.DrawText(2, 1, hud)

	cy := dst.Height() / 2
	if g.current < len(g.questions) {
		dst.DrawTextCenteredColored(cy-2, g.questions[g.current].Word, core.ColorCyan)
	}

	switch g.feedback {
	case feedbackCorrect:
		dst.DrawVerdict(cy, true)
	case feedbackWrong:
		dst.DrawVerdict(cy, false)
	}

	legend := fmt.Sprintf("[1/left] %s     [2/right] %s", g.left.Name, g.right.Name)
	dst.DrawTextCentered(dst.Height()-3, legend)

	if g.paused {
		dst.Overlay("PAUSED", "press p to resume")
	}
	if g.session.Completed() {
		dst.Overlay("ROUND OVER", fmt.Sprintf("Score: %d", g.session.FinalScore()))
	}
}

func (g *Game) State() core.GameState {
	if g.session.Completed() {
		return core.GameState{Score: g.session.FinalScore(), GameOver: true}
	}
	return core.GameState{Score: g.score, Paused: g.paused}
}

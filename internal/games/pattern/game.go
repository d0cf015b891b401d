// Package pattern implements the sequence reasoning game: infer the
// rule behind a symbol sequence and pick what comes next.
package pattern

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/NUDC/wego-game/internal/config"
	"github.com/NUDC/wego-game/internal/core"
	"github.com/NUDC/wego-game/internal/registry"
)

type feedback int

const (
	feedbackNone feedback = iota
	feedbackCorrect
	feedbackWrong
)

type Game struct {
	session *core.Session
	rng     *rand.Rand
	params  config.PatternParams

	questions []question
	current   int

	score        int
	correct      int
	questionTick int
	feedback     feedback

	totalTicks int
	tickRate   int
	paused     bool
}

// New creates a new sequence reasoning game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("pattern", func() registry.Game {
		return New()
	})
}

func (g *Game) ID() string { return "pattern" }

func (g *Game) Title() string { return "Next In Line" }

func (g *Game) Domain() string { return "Logic" }

func (g *Game) Reset(cfg core.RuntimeConfig) {
	params, ok := config.Get().Pattern[cfg.Difficulty]
	if !ok {
		params = config.Default().Pattern[core.DifficultyNormal]
	}
	g.params = params
	g.tickRate = cfg.TickRate
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	bank := append([]question(nil), questionBank...)
	core.Shuffle(g.rng, bank)
	n := core.Min(params.Questions, len(bank))
	g.questions = bank[:n]

	g.current = 0
	g.score = 0
	g.correct = 0
	g.feedback = feedbackNone
	g.totalTicks = 0
	g.questionTick = 0
	g.paused = false

	g.session = core.NewSession(cfg.TickRate, nil)
	g.session.Phase = core.PhaseInput
}

func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.session.Completed() {
		return core.StepResult{State: g.State()}
	}

	g.totalTicks++
	g.session.Tick()

	if c := in.Choice(); c >= 0 && c < 4 {
		g.answer(c)
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) answer(choice int) {
	if !g.session.AcceptingInput() {
		return
	}

	delay := 1000 * time.Millisecond
	if choice == g.questions[g.current].Answer {
		g.feedback = feedbackCorrect
		g.correct++
		g.score += g.params.PointsPerCorrect
		if g.answerMillis() <= 8000 {
			g.score += g.params.SpeedBonus
		}
		delay = 500 * time.Millisecond
	} else {
		g.feedback = feedbackWrong
	}

	g.session.BeginTransition()
	g.session.After(delay, func() {
		g.session.EndTransition()
		g.feedback = feedbackNone
		g.current++
		g.questionTick = g.totalTicks
		if g.current >= len(g.questions) {
			g.session.Complete(g.score)
		}
	})
}

// answerMillis is the time spent on the current question.
func (g *Game) answerMillis() int {
	if g.tickRate <= 0 {
		return 0
	}
	return (g.totalTicks - g.questionTick) * 1000 / g.tickRate
}

func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf("Puzzle: %d/%d  Score: %d",
		core.Min(g.current+1, len(g.questions)), len(g.questions), g.score)
	dst.DrawText(2, 1, hud)

	cy := dst.Height() / 2
	if g.current < len(g.questions) {
		q := g.questions[g.current]
		seq := strings.Join(q.Sequence, "  ") + "  ?"
		dst.DrawTextCenteredColored(cy-3, seq, core.ColorCyan)

		var b strings.Builder
		for i, opt := range q.Options {
			if i > 0 {
				b.WriteString("    ")
			}
			fmt.Fprintf(&b, "[%d] %s", i+1, opt)
		}
		dst.DrawTextCentered(cy, b.String())
	}

	switch g.feedback {
	case feedbackCorrect:
		dst.DrawVerdict(cy+2, true)
	case feedbackWrong:
		dst.DrawVerdict(cy+2, false)
	}

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

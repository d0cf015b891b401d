// Package stroop implements the color-word interference game: a color
// name is printed in a (usually different) ink color, and the player
// must answer with the ink color, not the word.
package stroop

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/NUDC/wego-game/internal/config"
	"github.com/NUDC/wego-game/internal/core"
	"github.com/NUDC/wego-game/internal/registry"
)

// The four ink choices, in legend order. Choice1..Choice4 map onto
// these indices directly.
var (
	colorNames = []string{"RED", "GREEN", "BLUE", "YELLOW"}
	inkColors  = []core.Color{core.ColorRed, core.ColorGreen, core.ColorBlue, core.ColorYellow}
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
	params  config.StroopParams

	wordIdx  int // index into colorNames, the printed word
	inkIdx   int // index into inkColors, the correct answer
	question int // 0-based, current question
	answered int

	score        int
	streak       int
	correct      int
	questionTick int // tick the current question was shown
	feedback     feedback

	totalTicks int
	tickRate   int
	paused     bool
}

// New creates a new color-word interference game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("stroop", func() registry.Game {
		return New()
	})
}

func (g *Game) ID() string { return "stroop" }

func (g *Game) Title() string { return "Ink Trap" }

func (g *Game) Domain() string { return "Inhibition" }

func (g *Game) Reset(cfg core.RuntimeConfig) {
	params, ok := config.Get().Stroop[cfg.Difficulty]
	if !ok {
		params = config.Default().Stroop[core.DifficultyNormal]
	}
	g.params = params
	g.tickRate = cfg.TickRate
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	g.question = 0
	g.answered = 0
	g.score = 0
	g.streak = 0
	g.correct = 0
	g.feedback = feedbackNone
	g.totalTicks = 0
	g.paused = false

	g.session = core.NewSession(cfg.TickRate, nil)
	g.nextQuestion()
	g.session.Phase = core.PhaseInput
}

func (g *Game) nextQuestion() {
	g.wordIdx = g.rng.Intn(len(colorNames))
	g.inkIdx = g.rng.Intn(len(inkColors))
	g.questionTick = g.totalTicks
	g.feedback = feedbackNone
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

	if c := in.Choice(); c >= 0 && c < len(inkColors) {
		g.answer(c)
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) answer(choice int) {
	if !g.session.AcceptingInput() {
		return
	}

	delay := 1000 * time.Millisecond
	if choice == g.inkIdx {
		g.feedback = feedbackCorrect
		g.correct++
		g.streak++
		g.score += 10
		if g.answerMillis() <= 2000 {
			g.score += 5
		}
		switch g.streak {
		case 5:
			g.score += 20
		case 10:
			g.score += 50
		}
		delay = 500 * time.Millisecond
	} else {
		g.feedback = feedbackWrong
		g.streak = 0
		g.score = core.Max(0, g.score-5)
	}

	g.answered++
	g.session.BeginTransition()
	g.session.After(delay, func() {
		g.session.EndTransition()
		if g.answered >= g.params.Questions {
			g.session.Complete(g.score)
			return
		}
		g.question++
		g.nextQuestion()
	})
}

// answerMillis is the reaction time for the current question.
func (g *Game) answerMillis() int {
	if g.tickRate <= 0 {
		return 0
	}
	return (g.totalTicks - g.questionTick) * 1000 / g.tickRate
}

func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf("Question: %d/%d  Score: %d  Streak: %d",
		core.Min(g.question+1, g.params.Questions), g.params.Questions, g.score, g.streak)
	dst.DrawText(2, 1, hud)

	cy := dst.Height() / 2
	dst.DrawTextCenteredColored(cy-2, colorNames[g.wordIdx], inkColors[g.inkIdx])

	switch g.feedback {
	case feedbackCorrect:
		dst.DrawVerdict(cy, true)
	case feedbackWrong:
		dst.DrawVerdict(cy, false)
	default:
		dst.DrawTextCentered(cy, "what INK color is the word?")
	}

	legend := "[1] RED   [2] GREEN   [3] BLUE   [4] YELLOW"
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

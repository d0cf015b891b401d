// Package arithmetic implements the mental math sprint: answer as many
// multiple-choice arithmetic problems as possible before the clock
// runs out. Consecutive correct answers build a combo bonus.
package arithmetic

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/NUDC/wego-game/internal/config"
	"github.com/NUDC/wego-game/internal/core"
	"github.com/NUDC/wego-game/internal/registry"
)

type problem struct {
	Text    string
	Answer  int
	Options [4]int
	Correct int // index into Options
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
	params  config.ArithmeticParams

	problem  problem
	solved   int
	answered int
	score    int
	streak   int
	feedback feedback

	totalTicks int
	tickRate   int
	paused     bool
}

// New creates a new mental math game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("arithmetic", func() registry.Game {
		return New()
	})
}

func (g *Game) ID() string { return "arithmetic" }

func (g *Game) Title() string { return "Math Sprint" }

func (g *Game) Domain() string { return "Calculation" }

func (g *Game) Reset(cfg core.RuntimeConfig) {
	params, ok := config.Get().Arithmetic[cfg.Difficulty]
	if !ok {
		params = config.Default().Arithmetic[core.DifficultyNormal]
	}
	g.params = params
	g.tickRate = cfg.TickRate
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	g.solved = 0
	g.answered = 0
	g.score = 0
	g.streak = 0
	g.feedback = feedbackNone
	g.totalTicks = 0
	g.paused = false

	g.session = core.NewSession(cfg.TickRate, nil)
	g.nextProblem()
	g.session.Phase = core.PhaseInput
}

// nextProblem generates a problem and four answer options: the correct
// result plus three distinct non-negative distractors.
func (g *Game) nextProblem() {
	ops := g.params.Operators
	if len(ops) == 0 {
		ops = []string{"+", "-"}
	}
	op := ops[g.rng.Intn(len(ops))]

	var a, b, ans int
	switch op {
	case "-":
		a = g.rng.Intn(g.params.MaxOperand + 1)
		b = g.rng.Intn(a + 1) // keep the result non-negative
		ans = a - b
	case "*":
		limit := core.Min(12, g.params.MaxOperand)
		a = 2 + g.rng.Intn(limit-1)
		b = 2 + g.rng.Intn(limit-1)
		ans = a * b
	default:
		a = g.rng.Intn(g.params.MaxOperand + 1)
		b = g.rng.Intn(g.params.MaxOperand + 1)
		ans = a + b
	}

	p := problem{
		Text:   fmt.Sprintf("%d %s %d = ?", a, op, b),
		Answer: ans,
	}

	used := map[int]bool{ans: true}
	opts := []int{ans}
	for len(opts) < 4 {
		d := ans + g.rng.Intn(21) - 10
		if d < 0 || used[d] {
			continue
		}
		used[d] = true
		opts = append(opts, d)
	}
	core.Shuffle(g.rng, opts)
	for i, v := range opts {
		p.Options[i] = v
		if v == ans {
			p.Correct = i
		}
	}
	g.problem = p
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

	if g.elapsedSec() >= g.params.TimeLimitSec {
		g.session.Complete(g.score)
		return core.StepResult{State: g.State()}
	}

	if c := in.Choice(); c >= 0 && c < 4 {
		g.answer(c)
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) elapsedSec() int {
	if g.tickRate <= 0 {
		return 0
	}
	return g.totalTicks / g.tickRate
}

func (g *Game) answer(choice int) {
	if !g.session.AcceptingInput() {
		return
	}

	delay := 900 * time.Millisecond
	if choice == g.problem.Correct {
		g.feedback = feedbackCorrect
		g.solved++
		g.streak++
		g.score += g.params.PointsPerCorrect +
			core.Min(g.params.ComboBonus*(g.streak-1), g.params.MaxComboExtra)
		delay = 400 * time.Millisecond
	} else {
		g.feedback = feedbackWrong
		g.streak = 0
	}

	g.answered++
	g.session.BeginTransition()
	g.session.After(delay, func() {
		g.session.EndTransition()
		g.nextProblem()
	})
}

func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf("Score: %d  Streak: %d  Time: %ds",
		g.score, g.streak, core.Max(0, g.params.TimeLimitSec-g.elapsedSec()))
	dst.DrawText(2, 1, hud)

	cy := dst.Height() / 2
	dst.DrawTextCenteredColored(cy-3, g.problem.Text, core.ColorCyan)

	for i, v := range g.problem.Options {
		label := fmt.Sprintf("[%d] %d", i+1, v)
		color := core.ColorWhite
		switch {
		case g.feedback == feedbackCorrect && i == g.problem.Correct:
			color = core.ColorGreen
		case g.feedback == feedbackWrong && i == g.problem.Correct:
			color = core.ColorYellow
		}
		dst.DrawTextColored(dst.Width()/2-14+(i%2)*16, cy+i/2, label, color)
	}

	if g.paused {
		dst.Overlay("PAUSED", "press p to resume")
	}
	if g.session.Completed() {
		dst.Overlay("TIME UP", fmt.Sprintf("Score: %d", g.session.FinalScore()))
	}
}

func (g *Game) State() core.GameState {
	if g.session.Completed() {
		return core.GameState{Score: g.session.FinalScore(), GameOver: true}
	}
	return core.GameState{Score: g.score, Paused: g.paused}
}

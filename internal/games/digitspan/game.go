// Package digitspan implements the reverse digit span game: digits
// flash one at a time and the player types them back in reverse order.
// Each cleared length grows the span by one.
package digitspan

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/NUDC/wego-game/internal/config"
	"github.com/NUDC/wego-game/internal/core"
	"github.com/NUDC/wego-game/internal/registry"
)

type Game struct {
	session *core.Session
	rng     *rand.Rand
	params  config.DigitSpanParams

	seq        []int  // digits in presentation order
	entry      []rune // typed answer, reversed order expected
	length     int
	attempts   int // failed attempts at the current length
	shownDigit int // digit currently displayed, -1 when none
	revealPos  int

	score    int
	wrong    bool // last evaluation failed
	paused   bool
	success  bool
	tickRate int
}

// New creates a new reverse digit span game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("digitspan", func() registry.Game {
		return New()
	})
}

func (g *Game) ID() string { return "digitspan" }

func (g *Game) Title() string { return "Backwards Digits" }

func (g *Game) Domain() string { return "Working Memory" }

func (g *Game) Reset(cfg core.RuntimeConfig) {
	params, ok := config.Get().DigitSpan[cfg.Difficulty]
	if !ok {
		params = config.Default().DigitSpan[core.DifficultyNormal]
	}
	g.params = params
	g.tickRate = cfg.TickRate
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	g.length = params.StartLen
	g.attempts = 0
	g.score = 0
	g.paused = false
	g.success = false

	g.session = core.NewSession(cfg.TickRate, nil)
	g.startRound()
}

// startRound draws a fresh sequence at the current length and plays it.
func (g *Game) startRound() {
	g.seq = make([]int, g.length)
	for i := range g.seq {
		g.seq[i] = g.rng.Intn(10)
	}
	g.entry = g.entry[:0]
	g.shownDigit = -1
	g.revealPos = 0
	g.wrong = false
	g.session.Phase = core.PhaseShowing
	g.revealNext()
}

func (g *Game) revealNext() {
	if g.revealPos >= len(g.seq) {
		g.shownDigit = -1
		g.session.Phase = core.PhaseInput
		return
	}
	g.shownDigit = g.seq[g.revealPos]
	g.session.After(time.Duration(g.params.DigitOnMs)*time.Millisecond, func() {
		g.shownDigit = -1
		g.session.After(time.Duration(g.params.DigitOffMs)*time.Millisecond, func() {
			g.revealPos++
			g.revealNext()
		})
	})
}

func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.session.Completed() {
		return core.StepResult{State: g.State()}
	}

	g.session.Tick()

	if !g.session.AcceptingInput() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionErase) && len(g.entry) > 0 {
		g.entry = g.entry[:len(g.entry)-1]
	}
	for _, r := range in.Runes {
		if r < '0' || r > '9' {
			continue
		}
		g.entry = append(g.entry, r)
		if len(g.entry) == len(g.seq) {
			g.evaluate()
			break
		}
	}
	return core.StepResult{State: g.State()}
}

// evaluate fires as soon as the entry reaches the sequence length.
// The answer must be the presented digits in reverse order.
func (g *Game) evaluate() {
	correct := true
	for i, r := range g.entry {
		if int(r-'0') != g.seq[len(g.seq)-1-i] {
			correct = false
			break
		}
	}

	if correct {
		g.score += 20 * g.length
		if g.attempts == 0 {
			g.score += 10
		}
		g.length++
		g.attempts = 0
		if g.length > g.params.MaxLen {
			g.success = true
			g.session.Complete(g.score)
			return
		}
		g.advance(500 * time.Millisecond)
		return
	}

	g.attempts++
	g.session.Failures++
	g.wrong = true
	if g.attempts >= g.params.MaxAttempts {
		g.session.Complete(g.score)
		return
	}
	g.advance(900 * time.Millisecond)
}

func (g *Game) advance(delay time.Duration) {
	g.session.BeginTransition()
	g.session.After(delay, func() {
		g.session.EndTransition()
		g.startRound()
	})
}

func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf("Span: %d  Score: %d  Attempt: %d/%d",
		core.Min(g.length, g.params.MaxLen), g.score, g.attempts+1, g.params.MaxAttempts)
	dst.DrawText(2, 1, hud)

	cy := dst.Height() / 2
	switch {
	case g.session.Phase == core.PhaseShowing:
		dst.DrawTextCentered(cy-2, "memorize...")
		if g.shownDigit >= 0 {
			dst.DrawTextCenteredColored(cy, fmt.Sprintf("%d", g.shownDigit), core.ColorYellow)
		}
	default:
		dst.DrawTextCentered(cy-2, "type the digits BACKWARDS")
		masked := make([]rune, 0, len(g.seq)*2)
		for i := 0; i < len(g.seq); i++ {
			if i < len(g.entry) {
				masked = append(masked, g.entry[i], ' ')
			} else {
				masked = append(masked, '_', ' ')
			}
		}
		dst.DrawTextCenteredColored(cy, string(masked), core.ColorCyan)
		if g.wrong && g.session.TransitionPending() {
			dst.DrawTextCenteredColored(cy+2, "WRONG", core.ColorRed)
		}
	}

	if g.paused {
		dst.Overlay("PAUSED", "press p to resume")
	}
	if g.session.Completed() {
		title := "ROUND OVER"
		if g.success {
			title = "PERFECT RUN"
		}
		dst.Overlay(title, fmt.Sprintf("Score: %d", g.session.FinalScore()))
	}
}

func (g *Game) State() core.GameState {
	if g.session.Completed() {
		return core.GameState{Score: g.session.FinalScore(), GameOver: true}
	}
	return core.GameState{Score: g.score, Paused: g.paused}
}

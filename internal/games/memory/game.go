// Package memory implements the card pair matching game.
// Cards are flipped two at a time; matches stay open, mismatches flip back
// after a short delay. Timed tiers add a remaining-time bonus.
package memory

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/NUDC/wego-game/internal/config"
	"github.com/NUDC/wego-game/internal/core"
	"github.com/NUDC/wego-game/internal/registry"
)

// symbolBank provides the pair faces. Large enough for the hard tier's
// 12 pairs.
var symbolBank = []rune{'♠', '♥', '♦', '♣', '★', '☀', '☂', '♫', '☯', '⚑', '✿', '❄'}

type cardState int

const (
	cardHidden cardState = iota
	cardOpen
	cardMatched
)

// Game implements the memory match game.
type Game struct {
	session *core.Session
	rng     *rand.Rand
	params  config.MemoryParams

	cards  []rune
	states []cardState
	open   []int // Indices of currently open, unresolved cards (max 2)

	matches int
	errors  int
	cursor  int

	elapsedTicks uint64
	tickRate     int
	paused       bool

	screenW int
	screenH int
}

// New creates a new memory match game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("memory", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "memory" }

// Title returns the display name.
func (g *Game) Title() string { return "Pair Recall" }

// Domain returns the cognitive axis this game measures.
func (g *Game) Domain() string { return "Memory" }

// Reset initializes/restarts the session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.params = config.Get().Memory[cfg.Difficulty]
	if g.params.Rows == 0 {
		g.params = config.Default().Memory[core.DifficultyNormal]
	}
	g.tickRate = cfg.TickRate
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.matches = 0
	g.errors = 0
	g.cursor = 0
	g.elapsedTicks = 0
	g.open = g.open[:0]

	pairs := g.params.Rows * g.params.Cols / 2
	g.cards = make([]rune, 0, pairs*2)
	for i := 0; i < pairs; i++ {
		sym := symbolBank[i%len(symbolBank)]
		g.cards = append(g.cards, sym, sym)
	}
	core.Shuffle(g.rng, g.cards)
	g.states = make([]cardState, len(g.cards))

	g.session = core.NewSession(cfg.TickRate, nil)
	g.session.Phase = core.PhaseInput
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.session.Completed() {
		g.paused = !g.paused
	}
	if g.paused || g.session.Completed() {
		return core.StepResult{State: g.State()}
	}

	g.session.Tick()
	g.elapsedTicks++

	// Time limit on timed tiers
	if g.params.TimeLimitSec > 0 && g.elapsedSec() >= g.params.TimeLimitSec {
		g.session.Complete(g.score())
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)
	if in.Has(core.ActionConfirm) {
		g.flip(g.cursor)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	row := g.cursor / g.params.Cols
	col := g.cursor % g.params.Cols
	switch {
	case in.Has(core.ActionUp):
		row = core.Max(0, row-1)
	case in.Has(core.ActionDown):
		row = core.Min(g.params.Rows-1, row+1)
	case in.Has(core.ActionLeft):
		col = core.Max(0, col-1)
	case in.Has(core.ActionRight):
		col = core.Min(g.params.Cols-1, col+1)
	}
	g.cursor = row*g.params.Cols + col
}

// flip opens the card under the cursor. Clicks on matched or already-open
// cards, or while a pair is resolving, are no-ops.
func (g *Game) flip(idx int) {
	if !g.session.AcceptingInput() {
		return
	}
	if g.states[idx] != cardHidden {
		return
	}

	g.states[idx] = cardOpen
	g.open = append(g.open, idx)
	if len(g.open) < 2 {
		return
	}

	// Second card is open: resolve the pair after the feedback delay.
	// The transition guard drops any flips until the callback fires.
	first, second := g.open[0], g.open[1]
	if !g.session.BeginTransition() {
		return
	}

	if g.cards[first] == g.cards[second] {
		g.session.After(time.Duration(g.params.MatchDelayMs)*time.Millisecond, func() {
			g.states[first] = cardMatched
			g.states[second] = cardMatched
			g.matches++
			g.open = g.open[:0]
			g.session.EndTransition()
			if g.matches == len(g.cards)/2 {
				g.session.Complete(g.score())
			}
		})
	} else {
		g.session.After(time.Duration(g.params.MismatchDelayMs)*time.Millisecond, func() {
			g.states[first] = cardHidden
			g.states[second] = cardHidden
			g.errors++
			g.open = g.open[:0]
			g.session.EndTransition()
		})
	}
}

func (g *Game) elapsedSec() int {
	return int(g.elapsedTicks / uint64(g.tickRate))
}

// score applies matches*100 - errors*10, plus the remaining-time bonus on
// timed tiers, clamped at zero.
func (g *Game) score() int {
	s := g.matches*100 - g.errors*10
	if g.params.TimeLimitSec > 0 {
		s += core.Max(0, (g.params.TimeLimitSec-g.elapsedSec())*2)
	}
	return core.Max(0, s)
}

// runningScore is the score shown in the HUD mid-session (no time bonus yet).
func (g *Game) runningScore() int {
	return core.Max(0, g.matches*100-g.errors*10)
}

// Render draws the board.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf(" Pair Recall  Pairs: %d/%d  Errors: %d", g.matches, len(g.cards)/2, g.errors)
	if g.params.TimeLimitSec > 0 {
		hud += fmt.Sprintf("  Time: %ds", core.Max(0, g.params.TimeLimitSec-g.elapsedSec()))
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	grid := core.CenterGrid(dst.Width(), g.params.Cols, 5, 2, 3)

	for i := range g.cards {
		x, y := grid.CellOrigin(i)

		var face rune
		var color core.Color
		switch g.states[i] {
		case cardHidden:
			face, color = '▒', core.ColorGray
		case cardOpen:
			face, color = g.cards[i], core.ColorBrightYellow
		case cardMatched:
			face, color = g.cards[i], core.ColorGreen
		}

		if i == g.cursor {
			dst.SetColored(x, y, '[', core.ColorBrightCyan)
			dst.SetColored(x+2, y, ']', core.ColorBrightCyan)
		}
		dst.SetColored(x+1, y, face, color)
	}

	switch {
	case g.session.Completed():
		dst.Overlay(fmt.Sprintf("Complete! Score: %d", g.session.FinalScore()), "Press R to restart, B for menu")
	case g.paused:
		dst.Overlay("Paused", "Press P to continue")
	}
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	score := g.runningScore()
	if g.session.Completed() {
		score = g.session.FinalScore()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.session.Completed(),
		Paused:   g.paused,
	}
}

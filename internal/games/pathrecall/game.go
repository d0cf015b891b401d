// Package pathrecall implements the spatial sequence game: cells on a
// grid light up one after another and the player repeats the sequence
// from memory. Each cleared round grows the sequence by one.
package pathrecall

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
	params  config.PathRecallParams

	size     int
	seq      []int // cell indices to repeat, in order
	entryPos int   // next sequence position the player must hit
	length   int   // current sequence length

	litIdx    int // cell currently lit during reveal, -1 when none
	revealPos int

	cursor    int
	score     int
	retryUsed bool
	cleared   bool // round cleared banner

	paused  bool
	success bool
}

// New creates a new spatial sequence game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("pathrecall", func() registry.Game {
		return New()
	})
}

func (g *Game) ID() string { return "pathrecall" }

func (g *Game) Title() string { return "Light Trail" }

func (g *Game) Domain() string { return "Spatial" }

func (g *Game) Reset(cfg core.RuntimeConfig) {
	params, ok := config.Get().PathRecall[cfg.Difficulty]
	if !ok {
		params = config.Default().PathRecall[core.DifficultyNormal]
	}
	g.params = params
	g.size = params.GridSize
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	g.length = params.StartLen
	g.score = 0
	g.retryUsed = false
	g.cursor = 0
	g.paused = false
	g.success = false

	g.session = core.NewSession(cfg.TickRate, nil)
	g.startRound(true)
}

// startRound begins a round at the current length. A fresh sequence is
// drawn unless this is a retry of a failed round.
func (g *Game) startRound(fresh bool) {
	if fresh {
		g.seq = core.DistinctIndices(g.rng, g.length, g.size*g.size)
	}
	g.entryPos = 0
	g.litIdx = -1
	g.revealPos = 0
	g.cleared = false
	g.session.Phase = core.PhaseShowing
	g.revealNext()
}

// revealNext lights the next sequence cell for RevealOnMs, darkens it
// for RevealOffMs, then recurses until the whole sequence has played.
func (g *Game) revealNext() {
	if g.revealPos >= len(g.seq) {
		g.litIdx = -1
		g.session.Phase = core.PhaseInput
		return
	}
	g.litIdx = g.seq[g.revealPos]
	g.session.After(time.Duration(g.params.RevealOnMs)*time.Millisecond, func() {
		g.litIdx = -1
		g.session.After(time.Duration(g.params.RevealOffMs)*time.Millisecond, func() {
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

	g.moveCursor(in)
	if in.Has(core.ActionConfirm) {
		g.pick(g.cursor)
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	row, col := g.cursor/g.size, g.cursor%g.size
	switch {
	case in.Has(core.ActionUp):
		row = core.Max(0, row-1)
	case in.Has(core.ActionDown):
		row = core.Min(g.size-1, row+1)
	case in.Has(core.ActionLeft):
		col = core.Max(0, col-1)
	case in.Has(core.ActionRight):
		col = core.Min(g.size-1, col+1)
	}
	g.cursor = row*g.size + col
}

// pick evaluates a cell selection immediately. A wrong cell ends the
// round: the first failure grants one replay of the same sequence, the
// second ends the session with the score earned so far.
func (g *Game) pick(idx int) {
	if !g.session.AcceptingInput() {
		return
	}

	if idx != g.seq[g.entryPos] {
		g.session.Failures++
		if g.retryUsed {
			g.session.Complete(g.score)
			return
		}
		g.retryUsed = true
		g.session.BeginTransition()
		g.session.After(900*time.Millisecond, func() {
			g.session.EndTransition()
			g.startRound(false)
		})
		return
	}

	g.entryPos++
	if g.entryPos < len(g.seq) {
		return
	}

	g.score += 50 * g.length
	g.cleared = true
	g.length++
	if g.length > g.params.MaxLen {
		g.success = true
		g.session.Complete(g.score)
		return
	}
	g.session.BeginTransition()
	g.session.After(700*time.Millisecond, func() {
		g.session.EndTransition()
		g.startRound(true)
	})
}

func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf("Length: %d  Score: %d", core.Min(g.length, g.params.MaxLen), g.score)
	if g.retryUsed {
		hud += "  (retry used)"
	}
	dst.DrawText(2, 1, hud)

	switch g.session.Phase {
	case core.PhaseShowing:
		dst.DrawText(2, 2, "watch the trail...")
	case core.PhaseInput:
		dst.DrawText(2, 2, fmt.Sprintf("repeat it: %d/%d", g.entryPos, len(g.seq)))
	}

	grid := core.CenterGrid(dst.Width(), g.size, 4, 2, 4)

	for i := 0; i < g.size*g.size; i++ {
		x, y := grid.CellOrigin(i)

		r, color := '·', core.ColorGray
		if i == g.litIdx {
			r, color = '█', core.ColorYellow
		}
		dst.SetColored(x+1, y, r, color)
		if i == g.cursor && g.session.Phase == core.PhaseInput {
			dst.Set(x, y, '[')
			dst.Set(x+2, y, ']')
		}
	}

	if g.cleared && g.session.TransitionPending() {
		dst.DrawTextCenteredColored(dst.Height()-3, "TRAIL CLEARED", core.ColorGreen)
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

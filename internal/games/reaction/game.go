// Package reaction implements the reaction timing game: wait for the
// go signal, then confirm as fast as possible. Some trials flash a
// decoy first; clicking before the real signal is a false start.
package reaction

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/NUDC/wego-game/internal/config"
	"github.com/NUDC/wego-game/internal/core"
	"github.com/NUDC/wego-game/internal/registry"
)

const minValidMs = 150

type Game struct {
	session *core.Session
	rng     *rand.Rand
	params  config.ReactionParams

	trial      int   // 0-based current trial
	results    []int // per-trial points
	lastMs     int   // reaction time of the last valid click
	falseStart bool  // last trial ended in a false start

	decoyOn    bool
	signalTick int

	totalTicks int
	tickRate   int
	paused     bool
}

// New creates a new reaction timing game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("reaction", func() registry.Game {
		return New()
	})
}

func (g *Game) ID() string { return "reaction" }

func (g *Game) Title() string { return "Quick Draw" }

func (g *Game) Domain() string { return "Speed" }

func (g *Game) Reset(cfg core.RuntimeConfig) {
	params, ok := config.Get().Reaction[cfg.Difficulty]
	if !ok {
		params = config.Default().Reaction[core.DifficultyNormal]
	}
	g.params = params
	g.tickRate = cfg.TickRate
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	g.trial = 0
	g.results = g.results[:0]
	g.lastMs = 0
	g.falseStart = false
	g.totalTicks = 0
	g.paused = false

	g.session = core.NewSession(cfg.TickRate, nil)
	g.startTrial()
}

// startTrial arms the next go signal. With probability TrickChance a
// decoy flashes first and the real signal comes on a second delay.
func (g *Game) startTrial() {
	g.session.Phase = core.PhaseIdle
	g.decoyOn = false
	g.falseStart = false

	delay := g.randDelayMs(g.params.MinDelayMs, g.params.MaxDelayMs)
	if g.rng.Float64() < g.params.TrickChance {
		g.session.After(delay, func() {
			g.decoyOn = true
			g.session.After(150*time.Millisecond, func() {
				g.decoyOn = false
			})
		})
		g.session.After(delay+g.randDelayMs(800, 2000), g.fireSignal)
		return
	}
	g.session.After(delay, g.fireSignal)
}

func (g *Game) randDelayMs(min, max int) time.Duration {
	if max <= min {
		return time.Duration(min) * time.Millisecond
	}
	ms := min + g.rng.Intn(max-min+1)
	return time.Duration(ms) * time.Millisecond
}

func (g *Game) fireSignal() {
	g.decoyOn = false
	g.signalTick = g.totalTicks
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

	if in.Has(core.ActionConfirm) {
		g.click()
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) click() {
	if g.session.Completed() || g.session.TransitionPending() {
		return
	}

	switch g.session.Phase {
	case core.PhaseIdle:
		// False start: the trial is burned, pending signal cancelled.
		g.session.Scheduler().CancelAll()
		g.results = append(g.results, 0)
		g.falseStart = true
		g.decoyOn = false
		g.session.Phase = core.PhaseTooEarly
		g.endTrial()
	case core.PhaseInput:
		ms := (g.totalTicks - g.signalTick) * 1000 / core.Max(1, g.tickRate)
		g.lastMs = ms
		pts := 0
		if ms >= minValidMs {
			pts = core.Max(0, 800-ms)
		}
		g.results = append(g.results, pts)
		g.session.Phase = core.PhaseFeedback
		g.endTrial()
	}
}

func (g *Game) endTrial() {
	g.session.BeginTransition()
	g.session.After(1200*time.Millisecond, func() {
		g.session.EndTransition()
		g.trial++
		if g.trial >= g.params.Trials {
			g.session.Complete(g.finalScore())
			return
		}
		g.startTrial()
	})
}

// finalScore is the mean of the per-trial points, rounded to nearest.
func (g *Game) finalScore() int {
	if len(g.results) == 0 {
		return 0
	}
	sum := 0
	for _, p := range g.results {
		sum += p
	}
	return (sum + len(g.results)/2) / len(g.results)
}

func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf("Trial: %d/%d", core.Min(g.trial+1, g.params.Trials), g.params.Trials)
	dst.DrawText(2, 1, hud)

	cy := dst.Height() / 2
	switch {
	case g.session.Phase == core.PhaseInput:
		dst.DrawTextCenteredColored(cy, "███  GO!  ███", core.ColorGreen)
	case g.session.Phase == core.PhaseTooEarly:
		dst.DrawTextCenteredColored(cy, "TOO EARLY", core.ColorRed)
	case g.session.Phase == core.PhaseFeedback:
		dst.DrawTextCenteredColored(cy, fmt.Sprintf("%d ms", g.lastMs), core.ColorCyan)
	case g.decoyOn:
		// The withdrawn flash looks exactly like the real signal; only
		// the phase tells them apart.
		dst.DrawTextCenteredColored(cy, "███  GO!  ███", core.ColorGreen)
	default:
		dst.DrawTextCentered(cy, "wait for green...")
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
	return core.GameState{Paused: g.paused}
}

package tui

import (
	"fmt"
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/NUDC/wego-game/internal/core"
	"github.com/NUDC/wego-game/internal/scoring"
	"github.com/NUDC/wego-game/internal/storage"
)

// RenderRadar draws the nine-axis profile as a radar chart into the screen
// buffer. Unplayed axes render gray.
func RenderRadar(s *core.Screen, profile scoring.Profile) {
	s.Clear()

	cx := s.Width() / 2
	cy := (s.Height()-2)/2 + 1
	// Terminal cells are roughly twice as tall as wide; stretch x to
	// keep the chart visually round.
	radiusY := float64(core.Min(s.Height()/2-4, 9))
	if radiusY < 3 {
		radiusY = 3
	}
	radiusX := radiusY * 2

	n := len(profile.AxisScores)
	if n == 0 {
		return
	}

	angle := func(i int) float64 {
		return -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
	}
	point := func(i int, frac float64) (int, int) {
		a := angle(i)
		x := cx + int(math.Round(math.Cos(a)*radiusX*frac))
		y := cy + int(math.Round(math.Sin(a)*radiusY*frac))
		return x, y
	}

	// Spokes and outer ring markers
	for i := 0; i < n; i++ {
		for _, frac := range []float64{0.33, 0.66, 1.0} {
			x, y := point(i, frac)
			s.SetColored(x, y, '·', core.ColorGray)
		}
	}

	// Score polygon edges
	for i := 0; i < n; i++ {
		x1, y1 := point(i, float64(profile.AxisScores[i].Score)/100)
		j := (i + 1) % n
		x2, y2 := point(j, float64(profile.AxisScores[j].Score)/100)
		drawLine(s, x1, y1, x2, y2, '*', core.ColorCyan)
	}

	// Vertices and labels
	for i, as := range profile.AxisScores {
		x, y := point(i, float64(as.Score)/100)
		color := core.ColorBrightCyan
		if !as.Played {
			color = core.ColorGray
		}
		s.SetColored(x, y, '■', color)

		lx, ly := point(i, 1.0)
		label := fmt.Sprintf("%s %d", as.Domain, as.Score)
		if !as.Played {
			label = as.Domain + " -"
		}
		drawRadarLabel(s, lx, ly, cx, label, color)
	}

	s.SetColored(cx, cy, '+', core.ColorGray)
}

// drawRadarLabel places a label just outside the chart, flipped to the
// left of the anchor on the chart's left half so text grows outward.
func drawRadarLabel(s *core.Screen, x, y, cx int, label string, c core.Color) {
	ly := y
	if y <= 1 {
		ly = 0
	}
	lx := x + 2
	if x < cx {
		lx = x - 2 - len(label)
	} else if x == cx {
		lx = x - len(label)/2
		if y < s.Height()/2 {
			ly = core.Max(0, y-1)
		} else {
			ly = core.Min(s.Height()-1, y+1)
		}
	}
	s.DrawTextColored(core.Max(0, lx), ly, label, c)
}

// drawLine draws a straight character line between two cells.
func drawLine(s *core.Screen, x1, y1, x2, y2 int, r rune, c core.Color) {
	steps := core.Max(core.Abs(x2-x1), core.Abs(y2-y1))
	if steps == 0 {
		s.SetColored(x1, y1, r, c)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x1 + int(math.Round(float64(x2-x1)*t))
		y := y1 + int(math.Round(float64(y2-y1)*t))
		s.SetColored(x, y, r, c)
	}
}

// ProfileModel is the Bubble Tea model for the radar profile screen.
type ProfileModel struct {
	profile   scoring.Profile
	screen    *core.Screen
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewProfileModel builds the profile from the stored session log.
func NewProfileModel(store *storage.Store, width, height int) ProfileModel {
	var results []scoring.Result
	if store != nil {
		if recs, err := store.Records(); err == nil {
			for _, r := range recs {
				results = append(results, scoring.Result{
					GameID:     r.GameID,
					Difficulty: r.Difficulty,
					Score:      r.Score,
				})
			}
		}
	}

	return ProfileModel{
		profile: scoring.BuildProfile(results),
		screen:  core.NewScreen(width, height),
		width:   width,
		height:  height,
	}
}

// Init initializes the profile model.
func (m ProfileModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the profile screen.
func (m ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "b", "esc":
			m.goingBack = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

// View renders the radar profile.
func (m ProfileModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	RenderRadar(m.screen, m.profile)

	header := fmt.Sprintf("COGNITIVE PROFILE  -  %s (%d)", m.profile.Rating.Label, m.profile.Average)
	m.screen.DrawTextCenteredColored(0, header, core.ColorBrightYellow)
	m.screen.DrawTextCentered(m.height-2, m.profile.Rating.Message)
	m.screen.DrawTextCenteredColored(m.height-1, "Esc/B: back  |  Q: quit", core.ColorGray)

	return RenderScreen(m.screen)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ProfileModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ProfileModel) IsQuitting() bool {
	return m.quitting
}

// RunProfile runs the radar profile screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunProfile(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewProfileModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ProfileModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}

package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/cansim/internal/solver"
)

const playbackFrames = 600

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	trackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	carStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("40")).Bold(true)
)

type TickMsg time.Time

// PlayModel replays a solved run as an animated track view: the frames
// are an evenly resampled view of the run, so playback cost does not
// depend on the grid resolution the run was computed at.
type PlayModel struct {
	history  *solver.History
	target   float64
	crossing float64
	reached  bool
	topSpeed float64

	frame   int
	running bool
	speed   int
}

func NewPlayModel(res *solver.Result, target float64) PlayModel {
	return PlayModel{
		history:  solver.Resample(res, playbackFrames),
		target:   target,
		crossing: res.TimeToTarget,
		reached:  res.Reached,
		topSpeed: res.TopSpeed,
		running:  true,
		speed:    1,
	}
}

func (m PlayModel) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.frame = 0
			m.running = true
		case "[":
			m.running = false
			m.frame -= playbackFrames / 60
			if m.frame < 0 {
				m.frame = 0
			}
		case "]":
			m.running = false
			m.frame += playbackFrames / 60
			if m.frame >= m.frames() {
				m.frame = m.frames() - 1
			}
		case "+", "=":
			if m.speed < 8 {
				m.speed *= 2
			}
		case "-", "_":
			if m.speed > 1 {
				m.speed /= 2
			}
		}
	case TickMsg:
		if m.running {
			m.frame += m.speed
			if m.frame >= m.frames() {
				m.frame = m.frames() - 1
				m.running = false
			}
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m PlayModel) frames() int {
	if m.history == nil {
		return 0
	}
	return len(m.history.T)
}

func (m PlayModel) View() string {
	if m.history == nil || m.frames() == 0 {
		return "no run data\n"
	}
	i := m.frame
	h := m.history

	var s strings.Builder
	s.WriteString(headerStyle.Render("CANISTER CAR") + "\n")

	// track: car position against the target distance
	trackWidth := 60
	pos := h.S[i] / m.target
	if pos > 1 {
		pos = 1
	}
	carAt := int(pos * float64(trackWidth-1))
	track := strings.Repeat("─", carAt) + "●" + strings.Repeat("─", trackWidth-1-carAt)
	s.WriteString(trackStyle.Render("0m ") + carStyle.Render(track) + trackStyle.Render(fmt.Sprintf(" %.0fm", m.target)) + "\n\n")

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.3fs", h.T[i])) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%.2f m/s", h.V[i])) + "\n")
	s.WriteString(labelStyle.Render("Distance") + valueStyle.Render(fmt.Sprintf("%.2f m", h.S[i])) + "\n")
	s.WriteString(labelStyle.Render("Thrust") + valueStyle.Render(fmt.Sprintf("%.3f N", h.Thrust[i])) + "\n")
	s.WriteString(labelStyle.Render("Drag") + valueStyle.Render(fmt.Sprintf("%.3f N", h.Drag[i])) + "\n")
	s.WriteString(labelStyle.Render("Mass") + valueStyle.Render(fmt.Sprintf("%.4f kg", h.Mass[i])) + "\n")

	if i > 1 {
		chart := asciigraph.Plot(h.V[:i+1],
			asciigraph.Height(6),
			asciigraph.Width(60),
			asciigraph.Caption("velocity"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	if m.reached && h.T[i] >= m.crossing {
		s.WriteString(doneStyle.Render(fmt.Sprintf("\ntarget reached at %.4fs (top speed %.2f m/s)", m.crossing, m.topSpeed)) + "\n")
	}

	status := "RUNNING"
	if !m.running {
		if m.frame == m.frames()-1 {
			status = "DONE"
		} else {
			status = "PAUSED"
		}
	}
	if m.speed > 1 {
		status += fmt.Sprintf(" ×%d", m.speed)
	}
	s.WriteString("\n" + status + "\n")
	s.WriteString(helpStyle.Render("SP:Pause R:Restart [ ]:Scrub +/-:Speed Q:Quit"))
	return s.String()
}

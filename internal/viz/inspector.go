package viz

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/collide/internal/collision"
	"github.com/san-kum/collide/internal/config"
	"github.com/san-kum/collide/internal/geom"
	"github.com/san-kum/collide/internal/shapes"
)

const (
	canvasWidth  = 48
	canvasHeight = 16
	nudge        = 0.25
)

// Inspector is an interactive view of one collision query. Body1 can be
// moved and resized; every change rebuilds the pair and resolves it again.
type Inspector struct {
	presets  []string
	cursor   int
	scenario *config.Scenario
	body1    shapes.Circle
	body2    shapes.Circle
	width    int
	height   int
}

func NewInspector(scenario *config.Scenario) Inspector {
	m := Inspector{presets: config.ListPresets(), width: 80, height: 24}
	for i, name := range m.presets {
		if name == scenario.Name {
			m.cursor = i
		}
	}
	m.load(scenario)
	return m
}

// RunInspector starts the inspector on the terminal.
func RunInspector(scenario *config.Scenario) error {
	_, err := tea.NewProgram(NewInspector(scenario), tea.WithAltScreen()).Run()
	return err
}

func (m *Inspector) load(s *config.Scenario) {
	m.scenario = s
	m.body1, m.body2 = s.Circles()
}

func (m Inspector) Bodies() (shapes.Circle, shapes.Circle) {
	return m.body1, m.body2
}

func (m Inspector) Init() tea.Cmd { return nil }

func (m Inspector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m Inspector) handleKey(msg tea.KeyMsg) (Inspector, tea.Cmd) {
	x, y := m.body1.Position()
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		m.body1 = m.body1.MovedTo(x-nudge, y)
	case "right", "l":
		m.body1 = m.body1.MovedTo(x+nudge, y)
	case "up", "k":
		m.body1 = m.body1.MovedTo(x, y+nudge)
	case "down", "j":
		m.body1 = m.body1.MovedTo(x, y-nudge)
	case "+", "=":
		m.body1 = m.resized(m.body1.Radius() + nudge)
	case "-":
		if r := m.body1.Radius() - nudge; r >= 0 {
			m.body1 = m.resized(r)
		}
	case "tab":
		if len(m.presets) > 0 {
			m.cursor = (m.cursor + 1) % len(m.presets)
			m.load(config.GetPreset(m.presets[m.cursor]))
		}
	case "r":
		if p := config.GetPreset(m.scenario.Name); p != nil {
			m.load(p)
		} else {
			m.body1, m.body2 = m.scenario.Circles()
		}
	}
	return m, nil
}

func (m Inspector) resized(r float64) shapes.Circle {
	x, y := m.body1.Position()
	angle := m.body1.Angle()
	return shapes.NewCircle(x, y, r, &angle, m.body1.Velocity(), m.body1.Acceleration())
}

func (m Inspector) View() string {
	res, err := collision.New(m.body1, m.body2).Resolve()

	discs := []geom.Disc{m.body1, m.body2}
	arena, hasArena := m.scenario.Rectangle()
	world := geom.Square(geom.Bounds(1, discs...))
	if hasArena {
		ax, ay := arena.Position()
		h, w := arena.Size()
		world = geom.Square(world.AddRect(geom.Bounds(0, areaDisc{ax, ay, w / 2, h / 2})))
	}

	canvas := NewCanvas(canvasWidth, canvasHeight, world)
	if hasArena {
		canvas.DrawRectangle(arena)
	}
	canvas.DrawCircle(m.body1)
	canvas.DrawCircle(m.body2)
	if p0, p1, ok := res.Contacts.Pair(); ok {
		canvas.Mark(p0)
		canvas.Mark(p1)
	}

	x1, y1 := m.body1.Position()
	x2, y2 := m.body2.Position()
	header := Title.Render(fmt.Sprintf("collide · %s", m.scenario.Name))
	bodies := strings.Join([]string{
		Row("body1", fmt.Sprintf("(%.3g, %.3g) r=%.3g", x1, y1, m.body1.Radius())),
		Row("body2", fmt.Sprintf("(%.3g, %.3g) r=%.3g", x2, y2, m.body2.Radius())),
	}, "\n")

	right := lipgloss.JoinVertical(lipgloss.Left, bodies, "", Report(res, err))
	body := lipgloss.JoinHorizontal(lipgloss.Top, Panel.Render(canvas.String()), " ", Panel.Render(right))
	hints := KeyHint.Render("←↓↑→/hjkl move · +/- radius · tab preset · r reset · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, body, hints)
}

// areaDisc is the circumcircle of a rectangle, used only for framing.
type areaDisc struct {
	x, y, hw, hh float64
}

func (a areaDisc) Position() (float64, float64) { return a.x, a.y }
func (a areaDisc) Radius() float64              { return math.Hypot(a.hw, a.hh) }

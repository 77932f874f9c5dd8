package viz

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/geo/r2"

	"github.com/san-kum/collide/internal/collision"
	"github.com/san-kum/collide/internal/config"
	"github.com/san-kum/collide/internal/dynamo"
	"github.com/san-kum/collide/internal/geom"
	"github.com/san-kum/collide/internal/shapes"
)

func world() r2.Rect {
	return r2.RectFromPoints(r2.Point{X: -10, Y: -10}, r2.Point{X: 10, Y: 10})
}

func TestCanvas_Project(t *testing.T) {
	c := NewCanvas(10, 5, world())

	x, y, ok := c.Project(geom.NewPoint(-10, 10))
	if !ok || x != 0 || y != 0 {
		t.Errorf("top-left projected to (%d, %d, %v)", x, y, ok)
	}
	x, y, ok = c.Project(geom.NewPoint(10, -10))
	if !ok || x != 19 || y != 19 {
		t.Errorf("bottom-right projected to (%d, %d, %v)", x, y, ok)
	}
}

func TestCanvas_ProjectRejectsNaN(t *testing.T) {
	c := NewCanvas(10, 5, world())
	c.Mark(geom.NewPoint(0, 0).Add(geom.Point{X: math.NaN()}))

	if !empty(c) {
		t.Error("NaN point should not be drawn")
	}
}

func TestCanvas_DrawCircle(t *testing.T) {
	c := NewCanvas(20, 10, world())
	c.DrawCircle(shapes.NewCircleAt(0, 0, 5, dynamo.Velocity{}, dynamo.Acceleration{}))

	if empty(c) {
		t.Error("expected circle pixels on canvas")
	}
	c.Clear()
	if !empty(c) {
		t.Error("expected empty canvas after clear")
	}
}

func TestReport(t *testing.T) {
	hit, err := collision.New(
		shapes.NewCircleAt(5, 0, 2.5, dynamo.NewVelocity(5, 5, 0), dynamo.Acceleration{}),
		shapes.NewCircleAt(0, 0, 2.5, dynamo.NewVelocity(-5, 5, 0), dynamo.Acceleration{}),
	).Resolve()
	out := Report(hit, err)
	if !strings.Contains(out, "COLLISION") || strings.Contains(out, "NO COLLISION") {
		t.Errorf("unexpected report:\n%s", out)
	}

	inside, err := collision.New(
		shapes.NewCircleAt(1, 0, 1, dynamo.Velocity{}, dynamo.Acceleration{}),
		shapes.NewCircleAt(0, 0, 5, dynamo.Velocity{}, dynamo.Acceleration{}),
	).Resolve()
	out = Report(inside, err)
	if !strings.Contains(out, "DEGENERATE") || !strings.Contains(out, "contains") {
		t.Errorf("unexpected report:\n%s", out)
	}
}

func TestInspector_Keys(t *testing.T) {
	m := NewInspector(config.GetPreset("head_on"))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(Inspector)
	b1, _ := m.Bodies()
	if x, _ := b1.Position(); x != 5+nudge {
		t.Errorf("expected body1 moved right, x = %v", x)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	m = next.(Inspector)
	b1, _ = m.Bodies()
	if b1.Radius() != 2.5+nudge {
		t.Errorf("expected larger radius, got %v", b1.Radius())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = next.(Inspector)
	b1, _ = m.Bodies()
	if x, _ := b1.Position(); x != 5 || b1.Radius() != 2.5 {
		t.Errorf("reset did not restore preset: %v", b1)
	}
}

func TestInspector_TabCyclesPresets(t *testing.T) {
	m := NewInspector(config.GetPreset("head_on"))
	names := config.ListPresets()

	for i := 0; i < len(names); i++ {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(Inspector)
	}
	if m.scenario.Name != "head_on" {
		t.Errorf("expected full cycle back to head_on, got %s", m.scenario.Name)
	}
}

func TestInspector_Quit(t *testing.T) {
	m := NewInspector(config.GetPreset("miss"))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestInspector_View(t *testing.T) {
	for _, name := range config.ListPresets() {
		m := NewInspector(config.GetPreset(name))
		view := m.View()
		if !strings.Contains(view, name) {
			t.Errorf("%s: view missing scenario name", name)
		}
	}
}

func empty(c *Canvas) bool {
	return strings.Trim(c.String(), string(rune(blank))+"\n") == ""
}

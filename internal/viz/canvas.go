package viz

import (
	"math"
	"strings"

	"github.com/golang/geo/r2"

	"github.com/san-kum/collide/internal/geom"
	"github.com/san-kum/collide/internal/shapes"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

type Canvas struct {
	Width, Height int
	Grid          [][]rune
	world         r2.Rect
}

// NewCanvas creates a w x h character canvas showing the world rectangle.
func NewCanvas(w, h int, world r2.Rect) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		world:  world,
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Set sets a pixel at sub-pixel coordinates; the canvas is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
}

// Project maps world coordinates to sub-pixels. World y grows upwards.
func (c *Canvas) Project(p geom.Point) (int, int, bool) {
	if c.world.IsEmpty() || !p.IsFinite() {
		return 0, 0, false
	}
	size := c.world.Size()
	if size.X == 0 || size.Y == 0 {
		return 0, 0, false
	}
	fx := (p.X - c.world.X.Lo) / size.X
	fy := (c.world.Y.Hi - p.Y) / size.Y
	return int(math.Round(fx * float64(c.Width*2-1))), int(math.Round(fy * float64(c.Height*4-1))), true
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// WorldLine draws a segment between two world points.
func (c *Canvas) WorldLine(a, b geom.Point) {
	x0, y0, ok0 := c.Project(a)
	x1, y1, ok1 := c.Project(b)
	if ok0 && ok1 {
		c.DrawLine(x0, y0, x1, y1)
	}
}

// DrawCircle outlines a circle and draws a radius along its orientation.
func (c *Canvas) DrawCircle(circle shapes.Circle) {
	x, y := circle.Position()
	r := circle.Radius()
	centre := geom.NewPoint(x, y)

	const segments = 48
	prev := geom.NewPoint(x+r, y)
	for i := 1; i <= segments; i++ {
		theta := 2 * math.Pi * float64(i) / segments
		next := geom.NewPoint(x+r*math.Cos(theta), y+r*math.Sin(theta))
		c.WorldLine(prev, next)
		prev = next
	}

	angle := circle.Angle()
	c.WorldLine(centre, geom.NewPoint(x+r*math.Cos(angle), y+r*math.Sin(angle)))
}

// DrawRectangle outlines a rectangle rotated about its centre.
func (c *Canvas) DrawRectangle(rect shapes.Rectangle) {
	x, y := rect.Position()
	h, w := rect.Size()
	sin, cos := math.Sincos(rect.Angle())

	corner := func(dx, dy float64) geom.Point {
		return geom.NewPoint(x+dx*cos-dy*sin, y+dx*sin+dy*cos)
	}
	pts := []geom.Point{corner(-w/2, -h/2), corner(w/2, -h/2), corner(w/2, h/2), corner(-w/2, h/2)}
	for i := range pts {
		c.WorldLine(pts[i], pts[(i+1)%len(pts)])
	}
}

// Mark draws a small cross at a world point.
func (c *Canvas) Mark(p geom.Point) {
	px, py, ok := c.Project(p)
	if !ok {
		return
	}
	for d := -1; d <= 1; d++ {
		c.Set(px+d, py)
		c.Set(px, py+d)
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Package export renders collision scenes and sweep curves as SVG.
package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/collide/internal/collision"
	"github.com/san-kum/collide/internal/geom"
	"github.com/san-kum/collide/internal/shapes"
)

// Scene is what SceneToSVG draws.
type Scene struct {
	Body1, Body2 shapes.Circle
	Arena        *shapes.Rectangle
	Resolution   collision.Resolution
}

// SceneToSVG draws both bodies, their velocity vectors before (dashed) and
// after impact, and the contact points. Non-finite values are left out.
func SceneToSVG(s Scene, size int) string {
	discs := []geom.Disc{s.Body1, s.Body2}
	if s.Arena != nil {
		x, y := s.Arena.Position()
		h, w := s.Arena.Size()
		discs = append(discs, frame{x, y, math.Hypot(w, h) / 2})
	}
	world := geom.Square(geom.Bounds(1, discs...))
	if world.IsEmpty() {
		return ""
	}

	side := world.Size().X
	scale := float64(size) / side
	project := func(p geom.Point) (float64, float64) {
		return (p.X - world.X.Lo) * scale, (world.Y.Hi - p.Y) * scale
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, size, size, size, size)

	if s.Arena != nil {
		x, y := s.Arena.Position()
		h, w := s.Arena.Size()
		cx, cy := project(geom.NewPoint(x, y))
		fmt.Fprintf(&sb, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#444466" transform="rotate(%.2f %.1f %.1f)"/>
`, cx-w*scale/2, cy-h*scale/2, w*scale, h*scale, -s.Arena.Angle()*180/math.Pi, cx, cy)
	}

	colors := [2]string{"#00ccff", "#ff00ff"}
	for i, c := range []shapes.Circle{s.Body1, s.Body2} {
		x, y := c.Position()
		centre := geom.NewPoint(x, y)
		if !centre.IsFinite() {
			continue
		}
		cx, cy := project(centre)
		fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s" stroke-width="1.5"/>
`, cx, cy, c.Radius()*scale, colors[i])

		arrow(&sb, project, centre, s.Resolution.Before[i].Linear, colors[i], true)
		arrow(&sb, project, centre, s.Resolution.After[i].Linear, colors[i], false)
	}

	if p0, p1, ok := s.Resolution.Contacts.Pair(); ok {
		for _, p := range []geom.Point{p0, p1} {
			if !p.IsFinite() {
				continue
			}
			px, py := project(p)
			fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="3" fill="#00ff88"/>
`, px, py)
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func arrow(sb *strings.Builder, project func(geom.Point) (float64, float64), from geom.Point, linear func() (float64, float64), color string, dashed bool) {
	vx, vy := linear()
	to := from.Add(geom.NewPoint(vx, vy))
	if !to.IsFinite() || (vx == 0 && vy == 0) {
		return
	}
	x0, y0 := project(from)
	x1, y1 := project(to)
	dash := ""
	if dashed {
		dash = ` stroke-dasharray="4 3"`
	}
	fmt.Fprintf(sb, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s"%s/>
`, x0, y0, x1, y1, color, dash)
}

type frame struct {
	x, y, r float64
}

func (f frame) Position() (float64, float64) { return f.x, f.y }
func (f frame) Radius() float64              { return f.r }

// CurveToSVG draws y against x as a polyline. Non-finite points are skipped.
func CurveToSVG(xs, ys []float64, width, height int, strokeColor string) string {
	type pt struct{ x, y float64 }
	points := make([]pt, 0, len(xs))
	for i := range xs {
		if i >= len(ys) || !finite(xs[i]) || !finite(ys[i]) {
			continue
		}
		points = append(points, pt{xs[i], ys[i]})
	}
	if len(points) < 2 {
		return ""
	}

	minX, maxX := points[0].x, points[0].x
	minY, maxY := points[0].y, points[0].y
	for _, p := range points {
		minX, maxX = math.Min(minX, p.x), math.Max(maxX, p.x)
		minY, maxY = math.Min(minY, p.y), math.Max(maxY, p.y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor)

	for i, p := range points {
		x := (p.x - minX) / rangeX * float64(width)
		y := float64(height) - (p.y-minY)/rangeY*float64(height)
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

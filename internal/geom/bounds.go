package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// Bounds returns the smallest rectangle containing every disc, grown by pad
// on each side. Discs with non-finite centres or radii are skipped.
func Bounds(pad float64, discs ...Disc) r2.Rect {
	rect := r2.EmptyRect()
	for _, c := range discs {
		x, y := c.Position()
		r := math.Abs(c.Radius())
		if !NewPoint(x, y).IsFinite() || math.IsNaN(r) || math.IsInf(r, 0) {
			continue
		}
		rect = rect.Union(r2.RectFromCenterSize(r2.Point{X: x, Y: y}, r2.Point{X: 2 * r, Y: 2 * r}))
	}
	if rect.IsEmpty() {
		return rect
	}
	return rect.ExpandedByMargin(pad)
}

// Square widens the shorter side of r so both sides match, keeping the centre.
func Square(r r2.Rect) r2.Rect {
	if r.IsEmpty() {
		return r
	}
	size := r.Size()
	side := math.Max(size.X, size.Y)
	return r2.RectFromCenterSize(r.Center(), r2.Point{X: side, Y: side})
}

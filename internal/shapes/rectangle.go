package shapes

// Rectangle only carries its placement; it takes no part in collisions.
type Rectangle struct {
	x, y          float64
	height, width float64
	angle         float64
}

func NewRectangle(x, y, height, width float64, angle *float64) Rectangle {
	r := Rectangle{x: x, y: y, height: height, width: width}
	if angle != nil {
		r.angle = *angle
	}
	return r
}

func (r Rectangle) Position() (float64, float64) {
	return r.x, r.y
}

// Size returns (height, width).
func (r Rectangle) Size() (float64, float64) {
	return r.height, r.width
}

func (r Rectangle) Angle() float64 {
	return r.angle
}

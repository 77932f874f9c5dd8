package dynamo

import (
	"errors"
	"math"
	"sync/atomic"
	"testing"
)

func TestVelocity_Linear(t *testing.T) {
	v := NewVelocity(10, 5, 0)

	vx, vy := v.Linear()
	if vx != 10 || vy != 5 {
		t.Errorf("Linear() = (%v, %v), want (10, 5)", vx, vy)
	}
	if got := v.Speed(); got != math.Sqrt(125) {
		t.Errorf("Speed() = %v, want %v", got, math.Sqrt(125))
	}
	if got := v.KineticEnergy(); got != 62.5 {
		t.Errorf("KineticEnergy() = %v, want 62.5", got)
	}
}

func TestVelocity_Angular(t *testing.T) {
	v := NewVelocity(0, 0, 10)

	if got := v.Angular(); got != 10 {
		t.Errorf("Angular() = %v, want 10", got)
	}
	if v.Speed() != 0 {
		t.Error("angular velocity should not contribute to speed")
	}
	if v.KineticEnergy() != 0 {
		t.Error("angular velocity should not contribute to kinetic energy")
	}
}

func TestVelocity_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		v     Velocity
		valid bool
	}{
		{"zero", Velocity{}, true},
		{"normal", NewVelocity(1, -2, 3), true},
		{"NaN x", NewVelocity(math.NaN(), 0, 0), false},
		{"+Inf y", NewVelocity(0, math.Inf(1), 0), false},
		{"-Inf angular", NewVelocity(0, 0, math.Inf(-1)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestAcceleration(t *testing.T) {
	a := NewAcceleration(1, 2, 3)

	ax, ay := a.Linear()
	if ax != 1 || ay != 2 {
		t.Errorf("Linear() = (%v, %v), want (1, 2)", ax, ay)
	}
	if a.Angular() != 3 {
		t.Errorf("Angular() = %v, want 3", a.Angular())
	}
	if a != NewAcceleration(1, 2, 3) {
		t.Error("equal accelerations should compare equal")
	}
}

func TestResolutionError_Unwrap(t *testing.T) {
	err := &ResolutionError{Stage: "contacts", Wrapped: ErrDegenerateGeometry}

	if !errors.Is(err, ErrDegenerateGeometry) {
		t.Error("expected errors.Is to match wrapped sentinel")
	}
	if err.Error() != "contacts: "+ErrDegenerateGeometry.Error() {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestParallelFor_CoversRange(t *testing.T) {
	for _, n := range []int{0, 1, 7, 100, 1001} {
		var sum int64
		hits := make([]int32, n)
		ParallelFor(n, 8, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&hits[i], 1)
				atomic.AddInt64(&sum, int64(i))
			}
		})

		for i, h := range hits {
			if h != 1 {
				t.Fatalf("n=%d: index %d visited %d times", n, i, h)
			}
		}
		if want := int64(n) * int64(n-1) / 2; sum != want {
			t.Errorf("n=%d: sum = %d, want %d", n, sum, want)
		}
	}
}

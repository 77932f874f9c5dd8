package viz

import (
	"errors"
	"fmt"
	"strings"

	"github.com/san-kum/collide/internal/collision"
	"github.com/san-kum/collide/internal/dynamo"
)

// Status returns the styled one-word outcome of a resolution.
func Status(res collision.Resolution, err error) string {
	switch {
	case err != nil:
		return StatusDegenerate.Render("DEGENERATE")
	case res.Collided:
		return StatusHit.Render("COLLISION")
	default:
		return StatusMiss.Render("NO COLLISION")
	}
}

// Report renders contacts, velocities and conservation checks as lines.
func Report(res collision.Resolution, err error) string {
	var lines []string

	lines = append(lines, Row("status", Status(res, err)))
	if err != nil {
		lines = append(lines, Row("reason", describe(err)))
	}

	if p0, p1, ok := res.Contacts.Pair(); ok {
		lines = append(lines, Row("contacts", fmt.Sprintf("%s  %s", p0, p1)))
	} else {
		lines = append(lines, Row("contacts", "none"))
	}

	lines = append(lines,
		Row("mass", fmt.Sprintf("%.4g  %.4g", res.Masses[0], res.Masses[1])),
		Row("v1", fmt.Sprintf("%s -> %s", res.Before[0], res.After[0])),
		Row("v2", fmt.Sprintf("%s -> %s", res.Before[1], res.After[1])),
	)

	px0, py0 := res.MomentumBefore()
	px1, py1 := res.MomentumAfter()
	lines = append(lines,
		Row("momentum", fmt.Sprintf("(%.4g, %.4g) -> (%.4g, %.4g)", px0, py0, px1, py1)),
		Row("energy", fmt.Sprintf("%.4g -> %.4g", res.EnergyBefore(), res.EnergyAfter())),
	)

	return strings.Join(lines, "\n")
}

func describe(err error) string {
	switch {
	case errors.Is(err, dynamo.ErrDegenerateGeometry):
		return "one circle contains the other"
	case errors.Is(err, dynamo.ErrZeroMass):
		return "both bodies are massless"
	case errors.Is(err, dynamo.ErrNonFinite):
		return "resolved velocity is not finite"
	default:
		return err.Error()
	}
}

// Package planning converts between ordered amount, material meters, machine
// cycles and run time for a production plan line.
//
// Any one of amount, meters or minutes may be the operator's free input; the
// other figures are derived from it through a fixed forward path so that all
// entry points agree on the reported values.
package planning

import "github.com/guttosm/planning-service/internal/domain/model"

// MaxUnitsPerCycle bounds the units cut across one roll width.
const MaxUnitsPerCycle = 1 << 16

// BasicCalculate resolves the plan geometry and its units-per-cycle ratio.
//
// With no product or no resolvable material the plan is reset and false is
// returned. A ratio that rounds to zero keeps the geometry but zeroes every
// cycle-derived figure, and also returns false.
func BasicCalculate(p *model.Plan) bool {
	dims, ok := Resolve(p)
	if !ok {
		p.Reset()
		return false
	}

	p.Width = dims.Width
	p.Length = dims.Length
	p.RollWidth = dims.RollWidth
	p.RollLength = dims.RollLength
	if p.Material == nil {
		p.Material = dims.Material
	}
	// A reset wipes the rate; take it back from the machine.
	if IsZero(p.BlowsPerMinute) && p.Machine != nil {
		p.BlowsPerMinute = p.Machine.BlowsPerMinute
	}

	p.UnitsPerCycle = UnitsPerCycle(p.RollWidth, p.Width)
	if p.UnitsPerCycle == 0 {
		p.ZeroCycles()
		return false
	}
	return true
}

// UnitsPerCycle returns how many product widths fit across a roll width,
// rounded to the nearest whole unit. A roll slightly narrower than the
// product still reports one unit.
// Ratios above MaxUnitsPerCycle come from a degenerate width and yield 0.
func UnitsPerCycle(rollWidth, width float64) int {
	ratio := Div(rollWidth, width)
	if ratio < 0 || ratio > MaxUnitsPerCycle {
		return 0
	}
	return int(Round(ratio, 0))
}

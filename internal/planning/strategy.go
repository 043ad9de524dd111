package planning

import (
	"fmt"
	"math"
	"strings"

	"github.com/guttosm/planning-service/internal/domain/model"
)

// Direction names the field an edit made authoritative.
type Direction int

const (
	// DirectionAmount treats the ordered amount as input. It is the canonical
	// forward path every other direction ends in.
	DirectionAmount Direction = iota
	// DirectionMeters treats the consumed meters as input.
	DirectionMeters
	// DirectionTime treats the run minutes as input.
	DirectionTime
)

// String returns the wire name of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionAmount:
		return "amount"
	case DirectionMeters:
		return "meters"
	case DirectionTime:
		return "time"
	default:
		return "unknown"
	}
}

// ParseDirection maps a wire name to a Direction. "minutes" is accepted as
// an alias of "time".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "amount", "":
		return DirectionAmount, nil
	case "meters":
		return DirectionMeters, nil
	case "time", "minutes":
		return DirectionTime, nil
	default:
		return DirectionAmount, fmt.Errorf("unknown direction %q", s)
	}
}

type strategy func(p *model.Plan)

var strategies = map[Direction]strategy{
	DirectionAmount: fromAmount,
	DirectionMeters: fromMeters,
	DirectionTime:   fromTime,
}

// Calculate recalculates p with d as the authoritative direction and returns
// the result. p itself is not modified.
func Calculate(p model.Plan, d Direction) model.Plan {
	apply, ok := strategies[d]
	if !ok {
		apply = fromAmount
	}
	if BasicCalculate(&p) {
		apply(&p)
	}
	return p
}

// CalculateAll recalculates every plan of a working set in the same direction.
func CalculateAll(plans []model.Plan, d Direction) []model.Plan {
	out := make([]model.Plan, len(plans))
	for i := range plans {
		out[i] = Calculate(plans[i], d)
	}
	return out
}

func fromAmount(p *model.Plan) {
	units := float64(p.UnitsPerCycle)
	p.Meters = Round(Div(p.Length*p.Amount, 1000*units), ReportDecimals)
	p.Blows = Round(Div(p.Amount, units), ReportDecimals)
	p.Minutes = Round(Div(p.Blows, p.BlowsPerMinute), ReportDecimals)
}

// fromMeters floors to whole cycles, so the amount (and the meters echoed
// back) may end below the operator's target.
func fromMeters(p *model.Plan) {
	units := float64(p.UnitsPerCycle)
	provisional := Round(Div(p.Meters*units*1000, p.Length), ReportDecimals)
	p.Blows = wholeCycles(Div(provisional, units), meterSlack(p.Length, units))
	p.Amount = Round(p.Blows*units, ReportDecimals)
	fromAmount(p)
}

// meterSlack is how far below a whole cycle a meters figure may land only
// because it was reported at ReportDecimals: half a meters step converted to
// cycles, plus half a step of the rounded provisional amount.
func meterSlack(length, units float64) float64 {
	half := 0.5 * math.Pow10(-int(ReportDecimals))
	slack := Div(half*1000, length) + Div(half, units)
	return math.Min(slack, 0.5)
}

// wholeCycles floors cycles, except that a value within slack of the next
// whole cycle counts as that cycle.
func wholeCycles(cycles, slack float64) float64 {
	whole := Floor(cycles, 0)
	if next := whole + 1; next-cycles <= slack+Epsilon {
		return next
	}
	return whole
}

// fromTime floors to whole cycles without slack: reported minutes are too
// coarse to tell a rounded figure from a short run.
func fromTime(p *model.Plan) {
	units := float64(p.UnitsPerCycle)
	p.Blows = Floor(p.BlowsPerMinute*p.Minutes, 0)
	p.Amount = Round(p.Blows*units, ReportDecimals)
	fromAmount(p)
}

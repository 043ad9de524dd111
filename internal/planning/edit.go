package planning

import (
	"time"

	"github.com/guttosm/planning-service/internal/domain/model"
)

// Edit is a single field change together with the direction it makes
// authoritative.
type Edit struct {
	field     string
	direction Direction
	apply     func(p *model.Plan)
}

// Field returns the name of the edited field.
func (e Edit) Field() string { return e.field }

// Direction returns the direction the edit recalculates through.
func (e Edit) Direction() Direction { return e.direction }

// New returns a blank plan line for a machine and day.
func New(domain int, machine *model.Machine, date time.Time) model.Plan {
	p := model.Plan{
		Domain: domain,
		Date:   date,
		Dirty:  true,
	}
	if machine != nil {
		p.Machine = machine
		p.BlowsPerMinute = machine.BlowsPerMinute
	}
	return p
}

// Apply applies edits to a copy of p, marks it dirty and recalculates it once
// through the direction of the last edit. Without edits p is recalculated
// through the amount direction.
func Apply(p model.Plan, edits ...Edit) model.Plan {
	direction := DirectionAmount
	for _, e := range edits {
		if e.apply != nil {
			e.apply(&p)
		}
		direction = e.direction
	}
	if len(edits) > 0 && !p.Dirty {
		p.Dirty = true
	}
	return Calculate(p, direction)
}

// SetAmount makes the ordered amount authoritative.
func SetAmount(v float64) Edit {
	return Edit{field: "amount", direction: DirectionAmount, apply: func(p *model.Plan) { p.Amount = v }}
}

// SetMeters makes the consumed meters authoritative.
func SetMeters(v float64) Edit {
	return Edit{field: "meters", direction: DirectionMeters, apply: func(p *model.Plan) { p.Meters = v }}
}

// SetMinutes makes the run time authoritative.
func SetMinutes(v float64) Edit {
	return Edit{field: "minutes", direction: DirectionTime, apply: func(p *model.Plan) { p.Minutes = v }}
}

// SetBlowsPerMinute overrides the machine rate for this plan only.
func SetBlowsPerMinute(v float64) Edit {
	return Edit{field: "blows_minute", direction: DirectionAmount, apply: func(p *model.Plan) { p.BlowsPerMinute = v }}
}

// SetProduct replaces the product.
func SetProduct(product *model.Product) Edit {
	return Edit{field: "product", direction: DirectionAmount, apply: func(p *model.Plan) { p.Product = product }}
}

// SetMaterial replaces the material. A nil material falls back to the
// product default on recalculation.
func SetMaterial(material *model.Material) Edit {
	return Edit{field: "material", direction: DirectionAmount, apply: func(p *model.Plan) { p.Material = material }}
}

// SetRoll selects a specific roll, or clears it with nil.
func SetRoll(roll *model.Roll) Edit {
	return Edit{field: "roll", direction: DirectionAmount, apply: func(p *model.Plan) { p.Roll = roll }}
}

// SetMachine moves the plan to a machine and takes over its nominal rate.
func SetMachine(machine *model.Machine) Edit {
	return Edit{field: "machine", direction: DirectionAmount, apply: func(p *model.Plan) {
		p.Machine = machine
		if machine != nil {
			p.BlowsPerMinute = machine.BlowsPerMinute
		}
	}}
}

// SetClient replaces the client.
func SetClient(client *model.Client) Edit {
	return Edit{field: "client", direction: DirectionAmount, apply: func(p *model.Plan) { p.Client = client }}
}

// SetComments replaces the free-text comment.
func SetComments(s string) Edit {
	return Edit{field: "comments", direction: DirectionAmount, apply: func(p *model.Plan) { p.Comments = s }}
}

// SetDate moves the plan to another day.
func SetDate(d time.Time) Edit {
	return Edit{field: "date", direction: DirectionAmount, apply: func(p *model.Plan) { p.Date = d }}
}

// SetOrder changes the sequence number within the day.
func SetOrder(order int) Edit {
	return Edit{field: "order", direction: DirectionAmount, apply: func(p *model.Plan) { p.Order = order }}
}

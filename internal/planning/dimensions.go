package planning

import "github.com/guttosm/planning-service/internal/domain/model"

// Dimensions is the geometry used for ratio and meter math.
type Dimensions struct {
	Width      float64
	Length     float64
	RollWidth  float64
	RollLength float64
	// Material is the effective material: the plan's own, else the product default.
	Material *model.Material
}

// Resolve derives the plan geometry from its product, material and roll.
// It returns false when there is no product or no material can be resolved.
func Resolve(p *model.Plan) (Dimensions, bool) {
	if p.Product == nil {
		return Dimensions{}, false
	}

	material := p.Material
	if material == nil {
		material = p.Product.Material
	}
	if material == nil {
		return Dimensions{}, false
	}

	dims := Dimensions{
		Width:      p.Product.Width,
		Length:     p.Product.Length,
		RollWidth:  material.Width,
		RollLength: material.Length,
		Material:   material,
	}
	if p.Roll != nil {
		dims.RollWidth = p.Roll.Width
		dims.RollLength = p.Roll.Length
	}
	return dims, true
}

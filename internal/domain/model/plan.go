package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Plan is one production line of a machine's schedule: what is produced, from
// which stock, how much, and the derived material, cycle and time figures.
//
// Catalog references are held as snapshots. They are never mutated through
// the plan; edits replace the pointer.
//
// @Description Production plan line with inputs and derived figures
type Plan struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Domain int                `bson:"domain" json:"domain"`
	// Order is the sequence number of the line within its machine and day
	Order int       `bson:"order" json:"order" example:"1"`
	Date  time.Time `bson:"date" json:"date"`

	Machine  *Machine  `bson:"machine,omitempty" json:"machine,omitempty"`
	Product  *Product  `bson:"product,omitempty" json:"product,omitempty"`
	Material *Material `bson:"material,omitempty" json:"material,omitempty"`
	Roll     *Roll     `bson:"roll,omitempty" json:"roll,omitempty"`
	Client   *Client   `bson:"client,omitempty" json:"client,omitempty"`
	Comments string    `bson:"comments,omitempty" json:"comments,omitempty"`

	Width      float64 `bson:"width" json:"width" example:"500"`
	Length     float64 `bson:"length" json:"length" example:"300"`
	RollWidth  float64 `bson:"roll_width" json:"roll_width" example:"1000"`
	RollLength float64 `bson:"roll_length" json:"roll_length" example:"2000"`
	// UnitsPerCycle is how many product units one machine cycle yields
	UnitsPerCycle int `bson:"units_per_cycle" json:"units_per_cycle" example:"2"`
	// Amount is the quantity of product units ordered
	Amount float64 `bson:"amount" json:"amount" example:"1000"`
	// Meters is the roll material consumed, in metres
	Meters float64 `bson:"meters" json:"meters" example:"150"`
	// Blows is the number of machine cycles
	Blows          float64 `bson:"blows" json:"blows" example:"500"`
	BlowsPerMinute float64 `bson:"blows_minute" json:"blows_minute" example:"80"`
	Minutes        float64 `bson:"minutes" json:"minutes" example:"6.25"`

	// Dirty marks a plan changed since it was last persisted.
	Dirty bool `bson:"-" json:"dirty"`

	CreatedBy string    `bson:"created_by,omitempty" json:"created_by,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedBy string    `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// IsNew reports whether the plan has never been persisted.
func (p *Plan) IsNew() bool {
	return p.ID.IsZero()
}

// Reset zeroes every derived field. Inputs and references are left alone.
func (p *Plan) Reset() {
	p.Width = 0
	p.Length = 0
	p.RollWidth = 0
	p.RollLength = 0
	p.BlowsPerMinute = 0
	p.ZeroCycles()
}

// ZeroCycles zeroes the fields that depend on a valid cut ratio, keeping the
// geometry and machine rate.
func (p *Plan) ZeroCycles() {
	p.UnitsPerCycle = 0
	p.Amount = 0
	p.Meters = 0
	p.Blows = 0
	p.Minutes = 0
}

// PlanFilter selects plans for listing.
type PlanFilter struct {
	Domain    int
	MachineID primitive.ObjectID
	From      *time.Time
	To        *time.Time
	Limit     int
}

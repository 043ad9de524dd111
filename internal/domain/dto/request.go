// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"time"

	"github.com/guttosm/planning-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout is the wire format of plan days.
const DateLayout = "2006-01-02"

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrInvalidRef is returned when a catalog reference is not an object id.
	ErrInvalidRef = &ValidationError{Field: "ref", Message: "must be a 24 character hex id"}
	// ErrInvalidDate is returned when a day is not YYYY-MM-DD.
	ErrInvalidDate = &ValidationError{Field: "date", Message: "must be formatted YYYY-MM-DD"}
	// ErrInvalidMachineID is returned when machine_id is not an object id.
	ErrInvalidMachineID = &ValidationError{Field: "machine_id", Message: "must be a 24 character hex id"}
)

// ParseDate parses a YYYY-MM-DD day in UTC.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// EditRequest is one operator change to a plan line.
//
// Number carries figures (amount, meters, minutes, blows_minute) and the
// order. Ref is the id of a catalog entry for reference fields; an empty Ref
// clears the reference. Text is the comment and Date the day.
//
// @Description Single field edit of a plan line
type EditRequest struct {
	Field  string   `json:"field" binding:"required" example:"meters"`
	Number *float64 `json:"number,omitempty" example:"160"`
	Ref    string   `json:"ref,omitempty" example:"65f1c2a9e13b4a0012345678"`
	Text   string   `json:"text,omitempty"`
	Date   string   `json:"date,omitempty" example:"2026-03-02"`
} // @name EditRequest

// Validate checks the formats of Ref and Date. Which value a field needs is
// decided by the planning service.
func (r *EditRequest) Validate() error {
	if _, err := r.RefID(); err != nil {
		return err
	}
	if r.Date != "" {
		if _, err := ParseDate(r.Date); err != nil {
			return err
		}
	}
	return nil
}

// RefID parses Ref. An empty Ref yields the zero id.
func (r *EditRequest) RefID() (primitive.ObjectID, error) {
	if r.Ref == "" {
		return primitive.NilObjectID, nil
	}
	id, err := primitive.ObjectIDFromHex(r.Ref)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidRef
	}
	return id, nil
}

// CalculatePlanRequest recalculates a plan line held by the client.
//
// @Description Stateless recalculation of a plan line after one edit
type CalculatePlanRequest struct {
	Plan model.Plan  `json:"plan"`
	Edit EditRequest `json:"edit" binding:"required"`
} // @name CalculatePlanRequest

// Validate validates the edit.
func (r *CalculatePlanRequest) Validate() error {
	return r.Edit.Validate()
}

// NewPlanRequest asks for a blank line on a machine's day.
//
// @Description Blank plan line for a machine and day
type NewPlanRequest struct {
	MachineID string `json:"machine_id" binding:"required" example:"65f1c2a9e13b4a0012345678"`
	Date      string `json:"date" binding:"required" example:"2026-03-02"`
} // @name NewPlanRequest

// Validate checks the machine id and the day.
func (r *NewPlanRequest) Validate() error {
	if _, err := primitive.ObjectIDFromHex(r.MachineID); err != nil {
		return ErrInvalidMachineID
	}
	_, err := ParseDate(r.Date)
	return err
}

// SavePlansRequest persists plan lines. Only lines marked dirty are written.
//
// @Description Plan lines to save
type SavePlansRequest struct {
	Plans []model.Plan `json:"plans" binding:"required,min=1"`
} // @name SavePlansRequest

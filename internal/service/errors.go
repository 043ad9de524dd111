package service

import "errors"

var (
	// ErrRepositoryNotConfigured is returned when the repository is not configured.
	ErrRepositoryNotConfigured = errors.New("repository not configured")
	// ErrPlanNotFound is returned when a plan id does not exist in the domain.
	ErrPlanNotFound = errors.New("plan not found")
	// ErrEntityNotFound is returned when a catalog reference does not exist.
	ErrEntityNotFound = errors.New("catalog entity not found")
	// ErrUnknownField is returned for an edit of a field that cannot be edited.
	ErrUnknownField = errors.New("unknown plan field")
	// ErrInvalidValue is returned for an edit value out of range.
	ErrInvalidValue = errors.New("invalid field value")
)

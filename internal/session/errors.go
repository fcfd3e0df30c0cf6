package session

import "errors"

// Sentinel errors for mutation operations.
var (
	ErrTitleRequired = errors.New("goal title is required")
	ErrGoalNotFound  = errors.New("goal not found")
)

package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	// Timer errors
	ErrMsgTimerAlreadyRunning = "a timer session is already running"
	ErrMsgTimerNotRunning     = "no timer session is running"
	ErrMsgSessionTooShort     = "session shorter than the minimum duration"

	// Quota errors
	ErrMsgQuotaExceeded = "daily activity quota reached"

	// Catalog errors
	ErrMsgUnknownActivity = "activity not found"
	ErrMsgUnknownCategory = "unknown strategy category"

	// Economy errors
	ErrMsgInsufficientBalance = "insufficient honey drops"
	ErrMsgProfileRequired     = "caregiver profile required"
	ErrMsgBadgeNotEligible    = "badge day not yet completed"

	// Store errors
	ErrMsgKeyNotFound = "record not found"
)

// Common domain errors.
// These should be used consistently across all layers; wrap with
// fmt.Errorf("%w: ...", domain.ErrXxx) for additional context.
var (
	// Timer errors
	ErrTimerAlreadyRunning = errors.New(ErrMsgTimerAlreadyRunning)
	ErrTimerNotRunning     = errors.New(ErrMsgTimerNotRunning)
	ErrSessionTooShort     = errors.New(ErrMsgSessionTooShort)

	// Quota errors
	ErrQuotaExceeded = errors.New(ErrMsgQuotaExceeded)

	// Catalog errors
	ErrUnknownActivity = errors.New(ErrMsgUnknownActivity)
	ErrUnknownCategory = errors.New(ErrMsgUnknownCategory)

	// Economy errors
	ErrInsufficientBalance = errors.New(ErrMsgInsufficientBalance)
	ErrProfileRequired     = errors.New(ErrMsgProfileRequired)
	ErrBadgeNotEligible    = errors.New(ErrMsgBadgeNotEligible)

	// Store errors
	ErrKeyNotFound = errors.New(ErrMsgKeyNotFound)
)

package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Click errors
	ErrMsgOnCooldown = "click on cooldown"

	// Currency errors
	ErrMsgInsufficientFunds         = "insufficient points"
	ErrMsgInsufficientPrestigePoint = "insufficient prestige points"

	// Upgrade errors
	ErrMsgMaxLevel = "upgrade is at max level"

	// Prestige errors
	ErrMsgPrestigeThreshold = "not enough points to prestige"
	ErrMsgAlreadyUnlocked   = "prestige unlock already owned"
	ErrMsgUnknownUnlock     = "unknown prestige unlock"

	// Persistence errors
	ErrMsgInvalidSave = "invalid save record"

	// Player errors
	ErrMsgInvalidPlayer = "invalid player id"
)

// Common domain errors
// Rejected actions leave the game state untouched; callers may show or ignore them.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrOnCooldown = errors.New(ErrMsgOnCooldown)

	ErrInsufficientFunds          = errors.New(ErrMsgInsufficientFunds)
	ErrInsufficientPrestigePoints = errors.New(ErrMsgInsufficientPrestigePoint)

	ErrMaxLevel = errors.New(ErrMsgMaxLevel)

	ErrPrestigeThreshold = errors.New(ErrMsgPrestigeThreshold)
	ErrAlreadyUnlocked   = errors.New(ErrMsgAlreadyUnlocked)
	ErrUnknownUnlock     = errors.New(ErrMsgUnknownUnlock)

	ErrInvalidSave = errors.New(ErrMsgInvalidSave)

	ErrInvalidPlayer = errors.New(ErrMsgInvalidPlayer)
)

// IsRejection reports whether err is a precondition failure rather than an infrastructure fault.
func IsRejection(err error) bool {
	switch {
	case errors.Is(err, ErrOnCooldown),
		errors.Is(err, ErrInsufficientFunds),
		errors.Is(err, ErrInsufficientPrestigePoints),
		errors.Is(err, ErrMaxLevel),
		errors.Is(err, ErrPrestigeThreshold),
		errors.Is(err, ErrAlreadyUnlocked),
		errors.Is(err, ErrUnknownUnlock):
		return true
	}
	return false
}

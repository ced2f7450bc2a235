package domain

import (
	"fmt"
	"regexp"
)

// MaxPlayerIDLength bounds player ids so save keys stay short.
const MaxPlayerIDLength = 64

var playerIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

// ValidatePlayerID checks that id is usable as part of a save key.
func ValidatePlayerID(id string) error {
	if id == "" || len(id) > MaxPlayerIDLength || !playerIDPattern.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidPlayer, id)
	}
	return nil
}

// SaveKeyFor returns the storage key of a player's save record.
// The default player keeps the bare base key so existing single-player saves load unchanged.
func SaveKeyFor(baseKey, playerID string) string {
	if baseKey == "" {
		baseKey = SaveKey
	}
	if playerID == DefaultPlayerID {
		return baseKey
	}
	return baseKey + ":" + playerID
}

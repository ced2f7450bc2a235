package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePlayerID(t *testing.T) {
	valid := []string{"local", "discord-1234567890", "alice_01", "a.b"}
	for _, id := range valid {
		assert.NoError(t, ValidatePlayerID(id), id)
	}

	invalid := []string{"", "-leading", "../etc", "with space", "slash/inside", strings.Repeat("x", MaxPlayerIDLength+1)}
	for _, id := range invalid {
		assert.ErrorIs(t, ValidatePlayerID(id), ErrInvalidPlayer, id)
	}
}

func TestSaveKeyFor(t *testing.T) {
	assert.Equal(t, "simpleIGSave", SaveKeyFor("", DefaultPlayerID))
	assert.Equal(t, "simpleIGSave:alice", SaveKeyFor(SaveKey, "alice"))
	assert.Equal(t, "custom", SaveKeyFor("custom", DefaultPlayerID))
	assert.Equal(t, "custom:bob", SaveKeyFor("custom", "bob"))
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGrabMode(t *testing.T) {
	assert.Equal(t, ModeFast, ParseGrabMode("fast"))
	assert.Equal(t, ModeNormal, ParseGrabMode(" Normal "))
	assert.Equal(t, ModeSlow, ParseGrabMode("SLOW"))

	unknown := ParseGrabMode("Sleepy")
	assert.Equal(t, GrabMode("sleepy"), unknown)
	assert.False(t, unknown.Known())
}

func TestModes(t *testing.T) {
	for _, m := range Modes() {
		assert.True(t, m.Known(), m.String())
	}
	assert.Len(t, Modes(), 3)
}

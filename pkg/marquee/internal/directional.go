package internal

import (
	"time"

	"github.com/BrandonKowalski/marquee/pkg/marquee/constants"
)

// DirectionalInput turns a held direction button into repeated presses:
// one after repeatDelay, then one every repeatInterval.
type DirectionalInput struct {
	held           constants.VirtualButton
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
}

// NewDirectionalInput uses a 300ms initial delay and 60ms repeats.
func NewDirectionalInput() DirectionalInput {
	return DirectionalInput{
		repeatDelay:    300 * time.Millisecond,
		repeatInterval: 60 * time.Millisecond,
		lastRepeatTime: time.Now(),
	}
}

func isDirection(button constants.VirtualButton) bool {
	switch button {
	case constants.VirtualButtonUp, constants.VirtualButtonDown,
		constants.VirtualButtonLeft, constants.VirtualButtonRight:
		return true
	}
	return false
}

// SetHeld records a direction press or release. It returns false for
// non-directional buttons.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool) bool {
	if !isDirection(button) {
		return false
	}

	switch {
	case held:
		d.held = button
		d.hasRepeated = false
		d.lastRepeatTime = time.Now()
	case d.held == button:
		d.held = constants.VirtualButtonUnassigned
		d.hasRepeated = false
	}
	return true
}

// Update returns the held direction when a repeat is due, or
// VirtualButtonUnassigned. Call it once per frame.
func (d *DirectionalInput) Update() constants.VirtualButton {
	if d.held == constants.VirtualButtonUnassigned {
		return constants.VirtualButtonUnassigned
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if time.Since(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = time.Now()
		d.hasRepeated = true
		return d.held
	}
	return constants.VirtualButtonUnassigned
}

// Reset forgets any held direction.
func (d *DirectionalInput) Reset() {
	d.held = constants.VirtualButtonUnassigned
	d.hasRepeated = false
	d.lastRepeatTime = time.Now()
}

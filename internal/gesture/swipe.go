// Package gesture converts a one-dimensional horizontal drag into a discrete
// accept/reject/cancel outcome with continuous visual feedback. It is pure
// state: input sampling and rendering stay with the caller.
package gesture

import "errors"

const (
	// progress spans [-1,1] over 70% of the reference width
	progressSpan = 0.7
	// release decides at 50% of the reference width, strictly beyond
	releaseFraction = 0.5
	// the icon cue switches strictly past half progress
	cueThreshold = 0.5
)

var ErrInvalidWidth = errors.New("reference width must be positive")

// Outcome is the discrete result of a released drag
type Outcome string

const (
	OutcomeAccept Outcome = "accept"
	OutcomeReject Outcome = "reject"
	OutcomeCancel Outcome = "cancel"
)

// Cue is the icon feedback shown while dragging
type Cue string

const (
	CueNeutral Cue = "neutral"
	CueAccept  Cue = "accept"
	CueReject  Cue = "reject"
)

// RGB is a feedback color
type RGB struct {
	R, G, B uint8
}

// Palette holds the background colors interpolated across the drag domain
type Palette struct {
	Reject RGB
	Idle   RGB
	Accept RGB
}

// Tracker interprets one drag interaction over a fixed reference width.
// While locked (a transition is in flight) every update is ignored so a
// second submission cannot start.
type Tracker struct {
	width    float64
	progress float64
	locked   bool
}

// NewTracker creates new Tracker instance
func NewTracker(width float64) (*Tracker, error) {
	if width <= 0 {
		return nil, ErrInvalidWidth
	}
	return &Tracker{width: width}, nil
}

// Move samples a horizontal displacement and returns the clamped progress
func (t *Tracker) Move(dx float64) float64 {
	if t.locked {
		return t.progress
	}
	t.progress = clamp(dx/(t.width*progressSpan), -1, 1)
	return t.progress
}

// Progress returns the current drag progress in [-1,1]
func (t *Tracker) Progress() float64 {
	return t.progress
}

// Release decides the outcome of the drag. Accept requires the displacement
// to exceed half the reference width, strictly; Reject is symmetric. Inside
// the deadband the gesture snaps back to center with no action.
func (t *Tracker) Release(dx float64) Outcome {
	if t.locked {
		t.progress = 0
		return OutcomeCancel
	}
	switch {
	case dx > t.width*releaseFraction:
		t.progress = 1
		return OutcomeAccept
	case dx < -t.width*releaseFraction:
		t.progress = -1
		return OutcomeReject
	default:
		t.progress = 0
		return OutcomeCancel
	}
}

// Lock freezes the tracker while a transition is in flight
func (t *Tracker) Lock() { t.locked = true }

// Unlock reenables the tracker
func (t *Tracker) Unlock() { t.locked = false }

// Reset recenters the gesture after a failed transition so the affordance is
// reusable
func (t *Tracker) Reset() {
	t.progress = 0
	t.locked = false
}

// CueFor returns the icon cue for a progress value
func CueFor(progress float64) Cue {
	switch {
	case progress > cueThreshold:
		return CueAccept
	case progress < -cueThreshold:
		return CueReject
	default:
		return CueNeutral
	}
}

// Background interpolates the feedback color across [-1,1]: reject color at
// -1, idle at 0, accept at +1, linear between.
func (p Palette) Background(progress float64) RGB {
	progress = clamp(progress, -1, 1)
	if progress < 0 {
		return lerp(p.Idle, p.Reject, -progress)
	}
	return lerp(p.Idle, p.Accept, progress)
}

// Decide resolves a raw release displacement against a reference width
// without tracker state. Used when the drag arrives as a single sample.
func Decide(dx, width float64) (Outcome, error) {
	if width <= 0 {
		return OutcomeCancel, ErrInvalidWidth
	}
	switch {
	case dx > width*releaseFraction:
		return OutcomeAccept, nil
	case dx < -width*releaseFraction:
		return OutcomeReject, nil
	default:
		return OutcomeCancel, nil
	}
}

func lerp(from, to RGB, f float64) RGB {
	return RGB{
		R: uint8(float64(from.R) + (float64(to.R)-float64(from.R))*f),
		G: uint8(float64(from.G) + (float64(to.G)-float64(from.G))*f),
		B: uint8(float64(from.B) + (float64(to.B)-float64(from.B))*f),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

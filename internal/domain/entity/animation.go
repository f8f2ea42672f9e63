package entity

// Animation is a frame cursor bound to one (archetype, action) pair.
// It tracks which frame to draw; the renderer owns the images.
type Animation struct {
	Spec AnimationSpec

	tick int // ticks elapsed since restart
}

// NewAnimation returns a cursor at frame 0
func NewAnimation(spec AnimationSpec) Animation {
	if spec.Duration <= 0 {
		spec.Duration = 1
	}
	if spec.Frames <= 0 {
		spec.Frames = 1
	}
	return Animation{Spec: spec}
}

// Advance moves the cursor one tick forward.
// Looping animations wrap; others freeze on their last frame.
func (a *Animation) Advance() {
	total := a.Spec.Ticks()
	if total <= 0 {
		return
	}
	if a.Spec.Loop {
		a.tick = (a.tick + 1) % total
		return
	}
	if a.tick < total-1 {
		a.tick++
	}
}

// Frame returns the current frame index
func (a Animation) Frame() int {
	if a.Spec.Duration <= 0 {
		return 0
	}
	return a.tick / a.Spec.Duration
}

// Done reports whether a non-looping animation has reached its last frame
func (a Animation) Done() bool {
	return !a.Spec.Loop && a.tick >= a.Spec.Ticks()-1
}

package profile

// StickyState tracks whether the stats header is pinned to the viewport.
// It is owned by the UI thread.
type StickyState struct {
	stuck    bool
	onChange func(stuck bool)
}

// NewStickyState creates an unstuck state. onChange, if non-nil, is called on
// every transition.
func NewStickyState(onChange func(stuck bool)) *StickyState {
	return &StickyState{onChange: onChange}
}

// Stuck reports whether the header is currently pinned.
func (s *StickyState) Stuck() bool {
	return s.stuck
}

// OnStick marks the header as pinned.
func (s *StickyState) OnStick() {
	s.set(true)
}

// OnUnstick marks the header as scrolling with the content.
func (s *StickyState) OnUnstick() {
	s.set(false)
}

// Update applies a scroll offset: the header sticks once content has scrolled
// past threshold.
func (s *StickyState) Update(offset, threshold float32) {
	if offset > threshold {
		s.OnStick()
	} else {
		s.OnUnstick()
	}
}

func (s *StickyState) set(stuck bool) {
	if s.stuck == stuck {
		return
	}
	s.stuck = stuck
	if s.onChange != nil {
		s.onChange(stuck)
	}
}

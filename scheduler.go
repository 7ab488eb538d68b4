package tjs

// FrameScheduler runs a callback once before the next display refresh.
type FrameScheduler interface {
	RequestFrame(fn func())
}

// ManualScheduler queues frame callbacks until Step is called. It drives
// the animation loop of headless games and tests.
type ManualScheduler struct {
	pending []func()
}

func (s *ManualScheduler) RequestFrame(fn func()) {
	s.pending = append(s.pending, fn)
}

// Step runs the callbacks queued before the call and returns how many ran.
// Callbacks requested while stepping wait for the next Step.
func (s *ManualScheduler) Step() int {
	pending := s.pending
	s.pending = nil

	for _, fn := range pending {
		fn()
	}
	return len(pending)
}

func (s *ManualScheduler) Pending() int {
	return len(s.pending)
}

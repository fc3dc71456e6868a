package layout

import "sync"

// ScrollLock suppresses body scrolling while any holder is active. It is
// counted, so overlapping holders keep it locked until the last release.
type ScrollLock struct {
	mu      sync.Mutex
	holders int
}

// Acquire takes the lock and returns its release. Calling the release more
// than once has no further effect.
func (s *ScrollLock) Acquire() (release func()) {
	s.mu.Lock()
	s.holders++
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			s.holders--
			s.mu.Unlock()
		})
	}
}

// Locked reports whether scrolling is currently suppressed.
func (s *ScrollLock) Locked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.holders > 0
}

// Scroller tracks a vertical offset into content taller than its window.
type Scroller struct {
	Offset int
}

// Clamp keeps the offset inside [0, total-visible].
func (s *Scroller) Clamp(total, visible int) {
	s.Offset = min(s.Offset, max(total-visible, 0))
	s.Offset = max(s.Offset, 0)
}

// Page moves by one window height in direction dir (-1 up, 1 down).
func (s *Scroller) Page(dir, total, visible int) {
	s.Offset += dir * max(visible-1, 1)
	s.Clamp(total, visible)
}

// Window returns the slice of lines currently in view.
func (s *Scroller) Window(lines []string, visible int) []string {
	s.Clamp(len(lines), visible)
	end := min(s.Offset+visible, len(lines))
	return lines[s.Offset:end]
}

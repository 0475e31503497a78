package capture

// Session is the capture screen's transient working set: the shots taken
// since the screen was opened and which of them are picked for submission.
//
// Resetting the session (leaving the screen) forgets shots and picks only;
// it never touches ledger records, and submissions already in flight keep
// resolving on their own.
type Session struct {
	shots  []string // newest first, mirroring the capture strip
	picked map[string]bool
	order  []string // pick order, oldest pick first
}

func NewSession() *Session {
	return &Session{picked: make(map[string]bool)}
}

// AddShot records a new capture at the front of the strip and picks it,
// matching the take-then-confirm flow.
func (s *Session) AddShot(uri string) {
	s.shots = append([]string{uri}, s.shots...)
	s.pick(uri)
}

// Shots returns the strip, newest first.
func (s *Session) Shots() []string {
	return append([]string(nil), s.shots...)
}

// Toggle flips the pick state of a shot and reports the new state.
func (s *Session) Toggle(uri string) bool {
	if s.picked[uri] {
		s.unpick(uri)
		return false
	}
	s.pick(uri)
	return true
}

// Picked returns the picked shots in the order they were picked.
func (s *Session) Picked() []string {
	return append([]string(nil), s.order...)
}

// PickedCount returns how many shots are currently picked.
func (s *Session) PickedCount() int {
	return len(s.order)
}

// Reset clears the working set.
func (s *Session) Reset() {
	s.shots = nil
	s.order = nil
	s.picked = make(map[string]bool)
}

func (s *Session) pick(uri string) {
	if s.picked[uri] {
		return
	}
	s.picked[uri] = true
	s.order = append(s.order, uri)
}

func (s *Session) unpick(uri string) {
	delete(s.picked, uri)
	for i, u := range s.order {
		if u == uri {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

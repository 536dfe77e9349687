package levels

// Selection is the active level. It remembers whether it changed since the
// last Take so the host can react once per switch.
type Selection struct {
	current string
	changed bool
}

func NewSelection(level string) *Selection {
	return &Selection{current: level}
}

func (s *Selection) Current() string {
	return s.current
}

func (s *Selection) Select(level string) {
	if level == s.current {
		return
	}
	s.current = level
	s.changed = true
}

// TakeChanged reports whether the selection moved and clears the flag.
func (s *Selection) TakeChanged() bool {
	c := s.changed
	s.changed = false
	return c
}

package state

// Move steps the highlight by delta within the active pane. Stepping past
// either end crosses into the opposite pane when it is shown and non-empty,
// landing on its far end; otherwise the highlight wraps within the pane.
func Move(s Selection, delta int, v Visible) Selection {
	active := len(v.Items(s.Pane))
	other := 0
	if !s.HideOther {
		other = len(v.Items(s.Pane.Other()))
	}
	next := s.Highlight + delta
	switch {
	case next < 0:
		if other > 0 {
			s.Pane = s.Pane.Other()
			s.Highlight = other - 1
			return s
		}
		s.Highlight = active - 1
	case next >= active:
		if other > 0 {
			s.Pane = s.Pane.Other()
			s.Highlight = 0
			return s
		}
		s.Highlight = firstIndex(active)
	default:
		s.Highlight = next
	}
	return s
}

// Normalize clamps the highlight into the active pane's visible range.
func Normalize(s Selection, v Visible) Selection {
	count := len(v.Items(s.Pane))
	if s.Highlight < -1 {
		s.Highlight = -1
	}
	if s.Highlight >= count {
		s.Highlight = count - 1
	}
	return s
}

func firstIndex(count int) int {
	if count == 0 {
		return -1
	}
	return 0
}

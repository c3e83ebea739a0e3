package state

// MinHeight is the smallest terminal that leaves room for content.
const MinHeight = 4

// ToggleHelp flips the help overlay.
func ToggleHelp(s UIState) UIState {
	s.ShowHelp = !s.ShowHelp
	return s
}

// ToggleNotices flips the notification panel.
func ToggleNotices(s UIState) UIState {
	s.ShowNotices = !s.ShowNotices
	return s
}

// ToggleSound flips audio feedback and sets a brief notice.
func ToggleSound(s UIState) UIState {
	s.Sound = !s.Sound
	if s.Sound {
		s.Notice = "Sound on"
	} else {
		s.Notice = "Sound off"
	}
	return s
}

// Resize records the terminal size and warns when it is too small.
func Resize(s UIState, width, height int) UIState {
	s.Width, s.Height = width, height
	if height < MinHeight {
		s.Notice = "Terminal too small"
	}
	return s
}

// ContentHeight is the number of rows left for the scroll surface.
func ContentHeight(s UIState) int {
	h := s.Height - 1
	if s.ShowNotices {
		h -= NoticeRows
	}
	if h < 1 {
		h = 1
	}
	return h
}

// SetNotice replaces the status notice.
func SetNotice(s UIState, msg string) UIState {
	s.Notice = msg
	return s
}

// ClearNotice drops the status notice.
func ClearNotice(s UIState) UIState {
	s.Notice = ""
	return s
}

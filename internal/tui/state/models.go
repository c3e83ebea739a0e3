package state

// NoticeRows is the height of the notification panel when shown.
const NoticeRows = 8

// UIState holds cross-widget UI state used by the status bar, help overlay
// and notification panel.
type UIState struct {
	// Layout
	Width  int
	Height int

	// Panels
	ShowHelp    bool
	ShowNotices bool

	// Toggles
	Sound   bool
	NoColor bool

	// Scroll position mirrored from the surface for the status bar.
	Offset float64
	Lines  int

	// Edge chips, in display order.
	Tags []Tag

	// Notices and ephemeral messages
	Notice string
}

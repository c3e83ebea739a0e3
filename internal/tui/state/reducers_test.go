package state

import "testing"

func TestToggleHelp(t *testing.T) {
	s := UIState{}
	s = ToggleHelp(s)
	if !s.ShowHelp {
		t.Fatalf("expected ShowHelp to be true")
	}
}

func TestToggleSoundSetsNotice(t *testing.T) {
	s := UIState{}
	s = ToggleSound(s)
	if !s.Sound || s.Notice != "Sound on" {
		t.Fatalf("expected sound on with notice, got %+v", s)
	}
	s = ToggleSound(s)
	if s.Sound || s.Notice != "Sound off" {
		t.Fatalf("expected sound off with notice, got %+v", s)
	}
}

func TestResizeWarnsWhenTooSmall(t *testing.T) {
	s := Resize(UIState{}, 80, 2)
	if s.Width != 80 || s.Height != 2 {
		t.Fatalf("expected size recorded")
	}
	if s.Notice == "" {
		t.Fatalf("expected too-small notice")
	}
}

func TestContentHeight(t *testing.T) {
	s := UIState{Height: 24}
	if got := ContentHeight(s); got != 23 {
		t.Fatalf("expected 23 rows, got %d", got)
	}
	s = ToggleNotices(s)
	if got := ContentHeight(s); got != 23-NoticeRows {
		t.Fatalf("expected panel rows subtracted, got %d", got)
	}
	if got := ContentHeight(UIState{Height: 3, ShowNotices: true}); got != 1 {
		t.Fatalf("expected at least one row, got %d", got)
	}
}

func TestClearNotice(t *testing.T) {
	s := ClearNotice(SetNotice(UIState{}, "hello"))
	if s.Notice != "" {
		t.Fatalf("expected notice cleared")
	}
}

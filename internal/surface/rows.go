package surface

import (
	"math"

	"pullrefresh/pkg/pullrefresh"
)

// RowKind says what a viewport row shows.
type RowKind int

const (
	RowBlank RowKind = iota
	RowContent
	RowTopAccessory
	RowBottomAccessory
)

// Row is one visible row. Index is the content line for RowContent and the
// row within the accessory for the accessory kinds.
type Row struct {
	Kind  RowKind
	Index int
}

// Rows maps every viewport row to what it displays at the current offset.
func (s *Surface) Rows() []Row {
	first := int(math.Floor(s.y))
	out := make([]Row, s.height)
	for i := range out {
		out[i] = s.rowAt(first + i)
	}
	return out
}

func (s *Surface) rowAt(r int) Row {
	if r >= 0 && r < s.lines {
		return Row{Kind: RowContent, Index: r}
	}
	if s.region == nil {
		return Row{Kind: RowBlank}
	}
	if a := s.region.Accessory(pullrefresh.Top); a != nil && within(r, a.Frame) {
		return Row{Kind: RowTopAccessory, Index: r - int(math.Floor(a.Frame.Y))}
	}
	if a := s.region.Accessory(pullrefresh.Bottom); a != nil && within(r, a.Frame) {
		return Row{Kind: RowBottomAccessory, Index: r - int(math.Floor(a.Frame.Y))}
	}
	return Row{Kind: RowBlank}
}

func within(r int, f pullrefresh.Rect) bool {
	y := float64(r)
	return y >= f.Y && y < f.MaxY()
}

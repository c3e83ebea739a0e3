package tcellhost

import "github.com/gdamore/tcell/v2"

type styles struct {
	text   tcell.Style
	fresh  tcell.Style
	faint  tcell.Style
	accent tcell.Style
	status tcell.Style
}

func newStyles(noColor bool) styles {
	if noColor {
		d := tcell.StyleDefault
		return styles{text: d, fresh: d, faint: d, accent: d.Bold(true), status: d.Reverse(true)}
	}
	return styles{
		text:   tcell.StyleDefault,
		fresh:  tcell.StyleDefault.Foreground(tcell.ColorGreen),
		faint:  tcell.StyleDefault.Foreground(tcell.ColorGray),
		accent: tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		status: tcell.StyleDefault.Reverse(true),
	}
}

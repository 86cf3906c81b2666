package view

import (
	"github.com/rivo/uniseg"

	"github.com/dshills/fluxlist/internal/backend"
	"github.com/dshills/fluxlist/internal/backend/core"
)

const ellipsis = "…"

// truncate shortens s to at most maxWidth columns, ending in an ellipsis
// when anything was cut. Grapheme clusters are never split.
func truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= maxWidth {
		return s
	}

	limit := maxWidth - uniseg.StringWidth(ellipsis)
	out := make([]byte, 0, len(s))
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if used+w > limit {
			break
		}
		out = append(out, g.Bytes()...)
		used += w
	}
	return string(out) + ellipsis
}

// drawText writes s at (x, y), clipped to maxWidth columns, and returns the
// number of columns used. Wide clusters fill their trailing columns with
// continuation cells.
func drawText(screen backend.Backend, x, y int, s string, style core.Style, maxWidth int) int {
	s = truncate(s, maxWidth-x)
	col := x
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		runes := g.Runes()
		w := g.Width()
		if w == 0 {
			continue
		}
		screen.SetCell(col, y, core.Cell{Rune: runes[0], Width: w, Style: style})
		for i := 1; i < w; i++ {
			screen.SetCell(col+i, y, core.Cell{Style: style})
		}
		col += w
	}
	return col - x
}

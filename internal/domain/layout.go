package domain

import "math"

// Board geometry constants.
const (
	HorizontalMargin = 80.0
	VerticalReserved = 320.0
	MinUsableSide    = 200.0
	CellSpacing      = 6.0
	ColumnPadding    = 12.0
	MinCellSize      = 24.0

	CellFontScale = 0.42
	MinCellFont   = 12.0
	MaxCellFont   = 48.0

	CurrentFontScale = 0.55
	MinCurrentFont   = 60.0
	MaxCurrentFont   = 320.0

	// DefaultWidth and DefaultHeight size the board before the first
	// size report.
	DefaultWidth  = 1000.0
	DefaultHeight = 800.0
)

// RowCandidates lists the board shapes considered by Plan, in evaluation
// order. A later candidate wins only with a strictly larger cell.
var RowCandidates = [...]int{5, 10}

// Layout is the board geometry chosen for a viewport.
type Layout struct {
	Rows     int     `json:"rows"`
	Columns  int     `json:"columns"`
	CellSize float64 `json:"cell_size"`
	FontSize float64 `json:"font_size"`
}

// Plan picks the row count that gives the largest cells for the given
// viewport and derives cell and font sizes from it.
func Plan(width, height float64) Layout {
	availW := math.Max(MinUsableSide, width-HorizontalMargin)
	availH := math.Max(MinUsableSide, height-VerticalReserved)

	var best Layout
	for i, rows := range RowCandidates {
		c := evalRows(rows, availW, availH)
		if i == 0 || c.CellSize > best.CellSize {
			best = c
		}
	}
	best.FontSize = Clamp(best.CellSize*CellFontScale, MinCellFont, MaxCellFont)
	return best
}

func evalRows(rows int, availW, availH float64) Layout {
	cols := (PoolSize + rows - 1) / rows
	byHeight := (availH-ColumnPadding)/float64(rows) - CellSpacing
	byWidth := (availW-float64(cols)*CellSpacing)/float64(cols) - CellSpacing
	return Layout{
		Rows:     rows,
		Columns:  cols,
		CellSize: math.Max(MinCellSize, math.Min(byHeight, byWidth)),
	}
}

// CurrentNumberFontSize sizes the large central number to its area.
func CurrentNumberFontSize(width, height float64) float64 {
	return Clamp(math.Min(width, height)*CurrentFontScale, MinCurrentFont, MaxCurrentFont)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

package app

import (
	"log/slog"
	"math"

	"github.com/randomtoy/bingo-go/internal/domain"
)

// Minimum changes before a size is considered updated.
const (
	cellSizeThreshold    = 0.5
	fontSizeThreshold    = 0.5
	currentFontThreshold = 0.1
)

// Board tracks the responsive layout of the number board and the size of
// the central number. It regroups the roster into dynamic columns
// whenever the chosen row count changes.
//
// Board state is guarded by the engine's mutex, so layout changes and
// draws are sequenced against each other.
type Board struct {
	engine      *DrawEngine
	layout      domain.Layout
	columns     []domain.Column
	currentFont float64

	removeHook func()
	logger     *slog.Logger
}

// NewBoard creates a board bound to engine and sizes it for the default
// viewport. The board re-plans itself on every engine reset.
func NewBoard(engine *DrawEngine, logger *slog.Logger) *Board {
	if logger == nil {
		logger = slog.Default()
	}
	b := &Board{
		engine: engine,
		layout: domain.Layout{
			Rows:     10,
			Columns:  8,
			CellSize: 40,
			FontSize: 16,
		},
		columns:     domain.BuildColumns(10),
		currentFont: 120,
		logger:      logger,
	}
	b.removeHook = engine.onReset(b.resetLocked)
	b.ReportSizeChanged(domain.DefaultWidth, domain.DefaultHeight)
	return b
}

// Close detaches the board from its engine.
func (b *Board) Close() {
	b.removeHook()
}

func (b *Board) resetLocked() {
	b.columns = domain.BuildColumns(b.layout.Rows)
	b.planLocked(domain.DefaultWidth, domain.DefaultHeight)
}

// ReportSizeChanged re-plans the board for the given viewport and returns
// the layout now in effect.
func (b *Board) ReportSizeChanged(width, height float64) domain.Layout {
	b.engine.mu.Lock()
	layout := b.planLocked(width, height)
	b.engine.mu.Unlock()

	b.engine.events.flush()
	return layout
}

func (b *Board) planLocked(width, height float64) domain.Layout {
	plan := domain.Plan(width, height)

	changed, regrouped := false, false
	if plan.Rows != b.layout.Rows {
		b.layout.Rows = plan.Rows
		b.layout.Columns = plan.Columns
		b.columns = domain.BuildColumns(plan.Rows)
		changed, regrouped = true, true
	}
	if math.Abs(plan.CellSize-b.layout.CellSize) >= cellSizeThreshold {
		b.layout.CellSize = plan.CellSize
		changed = true
	}
	if math.Abs(plan.FontSize-b.layout.FontSize) >= fontSizeThreshold {
		b.layout.FontSize = plan.FontSize
		changed = true
	}
	if !changed {
		return b.layout
	}

	ev := domain.LayoutChanged{Layout: b.layout}
	if regrouped {
		ev.DynamicColumns = b.engine.pool.Roster().Resolve(b.columns)
		b.logger.Debug("board regrouped", "rows", b.layout.Rows, "columns", b.layout.Columns)
	}
	b.engine.events.enqueue(ev)
	return b.layout
}

// ReportCurrentNumberAreaSizeChanged resizes the central number and
// returns the font size now in effect.
func (b *Board) ReportCurrentNumberAreaSizeChanged(width, height float64) float64 {
	size := domain.CurrentNumberFontSize(width, height)

	b.engine.mu.Lock()
	if math.Abs(size-b.currentFont) < currentFontThreshold {
		size = b.currentFont
		b.engine.mu.Unlock()
		return size
	}
	b.currentFont = size
	b.engine.events.enqueue(domain.CurrentNumberFontSizeChanged{FontSize: size})
	b.engine.mu.Unlock()

	b.engine.events.flush()
	return size
}

// Layout returns the current board geometry.
func (b *Board) Layout() domain.Layout {
	b.engine.mu.Lock()
	defer b.engine.mu.Unlock()
	return b.layout
}

// State returns a snapshot of the board including resolved dynamic columns.
func (b *Board) State() domain.BoardState {
	b.engine.mu.Lock()
	defer b.engine.mu.Unlock()
	return domain.BoardState{
		Layout:                b.layout,
		DynamicColumns:        b.engine.pool.Roster().Resolve(b.columns),
		CurrentNumberFontSize: b.currentFont,
	}
}

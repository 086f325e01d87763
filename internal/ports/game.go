package ports

import "github.com/randomtoy/bingo-go/internal/domain"

// Game drives the two-phase draw.
type Game interface {
	RequestDraw() ([]int, error)
	ConfirmDraw(v int) ([]int, error)
	Reset()
	State() domain.GameState
}

// Board reports viewport changes and exposes the resulting layout.
type Board interface {
	ReportSizeChanged(width, height float64) domain.Layout
	ReportCurrentNumberAreaSizeChanged(width, height float64) float64
	State() domain.BoardState
}

// EventSource delivers engine and board notifications.
type EventSource interface {
	Subscribe(fn func(domain.Event)) (unsubscribe func())
}

package app_test

import (
	"log/slog"
	"math"
	"slices"
	"testing"

	"github.com/randomtoy/bingo-go/internal/app"
	"github.com/randomtoy/bingo-go/internal/domain"
)

func newBoard() (*app.DrawEngine, *app.Board) {
	e := newEngine()
	return e, app.NewBoard(e, slog.New(slog.DiscardHandler))
}

func TestBoard_DefaultLayout(t *testing.T) {
	_, b := newBoard()
	st := b.State()

	if st.Layout.Rows != 5 || st.Layout.Columns != 15 {
		t.Fatalf("expected 5x15 board, got %dx%d", st.Layout.Rows, st.Layout.Columns)
	}
	if math.Abs(st.Layout.CellSize-(830.0/15-6)) > 1e-9 {
		t.Errorf("unexpected cell size %v", st.Layout.CellSize)
	}
	if len(st.DynamicColumns) != 15 || st.DynamicColumns[0].Label != "01-05" {
		t.Errorf("unexpected dynamic columns: %d", len(st.DynamicColumns))
	}
	if st.CurrentNumberFontSize != 120 {
		t.Errorf("expected initial central font 120, got %v", st.CurrentNumberFontSize)
	}
}

func TestBoard_ReportSizeChanged(t *testing.T) {
	e, b := newBoard()
	rec := &recorder{}
	e.Subscribe(rec.record)

	l := b.ReportSizeChanged(600, 1400)
	if l.Rows != 10 || l.CellSize != 53 {
		t.Fatalf("expected 10 rows with cell 53, got %+v", l)
	}
	if len(rec.events) != 1 {
		t.Fatalf("expected one event, got %v", rec.types())
	}
	ev, ok := rec.events[0].(domain.LayoutChanged)
	if !ok {
		t.Fatalf("expected LayoutChanged, got %T", rec.events[0])
	}
	if len(ev.DynamicColumns) != 8 || len(ev.DynamicColumns[7].Numbers) != 5 {
		t.Errorf("expected 8 columns with 5 in the last, got %d", len(ev.DynamicColumns))
	}

	b.ReportSizeChanged(600, 1400)
	b.ReportSizeChanged(600.5, 1400)
	if len(rec.events) != 1 {
		t.Errorf("unchanged or sub-threshold resize emitted %v", rec.types())
	}

	b.ReportSizeChanged(640, 1400)
	if len(rec.events) != 2 {
		t.Fatalf("expected resize event, got %v", rec.types())
	}
	if ev := rec.events[1].(domain.LayoutChanged); ev.DynamicColumns != nil || ev.Rows != 10 {
		t.Errorf("same row count must not regroup: %+v", ev)
	}
}

func TestBoard_DynamicColumnsTrackDraws(t *testing.T) {
	e, b := newBoard()
	v := drawOnce(t, e)

	for _, c := range b.State().DynamicColumns {
		for _, n := range c.Numbers {
			if n.Value == v && !n.Drawn {
				t.Fatalf("%d not drawn in dynamic columns", v)
			}
		}
	}
}

func TestBoard_ResetReplansDefault(t *testing.T) {
	e, b := newBoard()
	b.ReportSizeChanged(600, 1400)
	rec := &recorder{}
	e.Subscribe(rec.record)

	e.Reset()

	want := []domain.EventType{domain.EventReset, domain.EventLayoutChanged}
	if !slices.Equal(rec.types(), want) {
		t.Fatalf("expected %v, got %v", want, rec.types())
	}
	if l := b.Layout(); l.Rows != 5 {
		t.Errorf("expected default 5 rows after reset, got %d", l.Rows)
	}
}

func TestBoard_CurrentNumberFontSize(t *testing.T) {
	e, b := newBoard()
	rec := &recorder{}
	e.Subscribe(rec.record)

	if got := b.ReportCurrentNumberAreaSizeChanged(100, 100); got != 60 {
		t.Errorf("expected 60, got %v", got)
	}
	if got := b.ReportCurrentNumberAreaSizeChanged(1000, 1000); got != 320 {
		t.Errorf("expected 320, got %v", got)
	}
	if got := b.ReportCurrentNumberAreaSizeChanged(2000, 900); got != 320 {
		t.Errorf("expected 320, got %v", got)
	}
	want := []domain.EventType{domain.EventCurrentNumberFontSizeChanged, domain.EventCurrentNumberFontSizeChanged}
	if !slices.Equal(rec.types(), want) {
		t.Errorf("expected %v, got %v", want, rec.types())
	}
}

func TestBoard_Close(t *testing.T) {
	e, b := newBoard()
	b.ReportSizeChanged(600, 1400)
	b.Close()
	e.Reset()
	if l := b.Layout(); l.Rows != 10 {
		t.Errorf("closed board should ignore resets, got %d rows", l.Rows)
	}
}

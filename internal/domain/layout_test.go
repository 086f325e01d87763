package domain_test

import (
	"math"
	"testing"

	"github.com/randomtoy/bingo-go/internal/domain"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestPlan(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		rows, columns int
		cell, font    float64
	}{
		{name: "default viewport", width: 1000, height: 800, rows: 5, columns: 15, cell: 830.0/15 - 6, font: (830.0/15 - 6) * 0.42},
		{name: "tall narrow", width: 600, height: 1400, rows: 10, columns: 8, cell: 53, font: 53 * 0.42},
		{name: "wide short", width: 2400, height: 500, rows: 5, columns: 15, cell: 31.6, font: 31.6 * 0.42},
		{name: "tie favours five rows", width: 200, height: 200, rows: 5, columns: 15, cell: 24, font: 12},
		{name: "negative input floored", width: -50, height: 0, rows: 5, columns: 15, cell: 24, font: 12},
		{name: "huge viewport clamps font", width: 6000, height: 6000, rows: 10, columns: 8, cell: (5680.0-12)/10 - 6, font: 48},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.Plan(tt.width, tt.height)
			if got.Rows != tt.rows || got.Columns != tt.columns {
				t.Fatalf("expected %d rows/%d cols, got %d/%d", tt.rows, tt.columns, got.Rows, got.Columns)
			}
			if !approx(got.CellSize, tt.cell) {
				t.Errorf("expected cell %v, got %v", tt.cell, got.CellSize)
			}
			if !approx(got.FontSize, tt.font) {
				t.Errorf("expected font %v, got %v", tt.font, got.FontSize)
			}
		})
	}
}

func TestPlan_ColumnsMatchGrouping(t *testing.T) {
	for _, size := range [][2]float64{{1000, 800}, {2400, 500}, {600, 1400}} {
		l := domain.Plan(size[0], size[1])
		cols := domain.BuildColumns(l.Rows)
		if len(cols) != l.Columns {
			t.Errorf("%v: plan says %d columns, grouping has %d", size, l.Columns, len(cols))
		}
		want := 75 % l.Rows
		if want == 0 {
			want = l.Rows
		}
		if got := len(cols[len(cols)-1].Indices); got != want {
			t.Errorf("%v: last column holds %d, want %d", size, got, want)
		}
	}
}

func TestCurrentNumberFontSize(t *testing.T) {
	tests := []struct {
		w, h, want float64
	}{
		{100, 100, 60},
		{1000, 1000, 320},
		{400, 300, 165},
		{300, 2000, 165},
	}
	for _, tt := range tests {
		if got := domain.CurrentNumberFontSize(tt.w, tt.h); !approx(got, tt.want) {
			t.Errorf("CurrentNumberFontSize(%v, %v) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

package domain

// GameState is a read-only snapshot of the draw engine.
type GameState struct {
	History              []int
	CurrentNumber        *int
	CurrentNumberDisplay string
	IsDrawing            bool
	CanDraw              bool
	Remaining            int
	Roster               []NumberRecord
	TensGroups           []ColumnView
	BingoColumns         []ColumnView
}

// BoardState is a read-only snapshot of the board layout.
type BoardState struct {
	Layout                Layout
	DynamicColumns        []ColumnView
	CurrentNumberFontSize float64
}

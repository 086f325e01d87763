package http

import "github.com/randomtoy/bingo-go/internal/domain"

// StateResponse is the JSON shape returned by GET /v1/state and POST /v1/reset.
type StateResponse struct {
	Game  GameResponse  `json:"game"`
	Board BoardResponse `json:"board"`
}

type GameResponse struct {
	History              []int            `json:"history"`
	CurrentNumber        *int             `json:"current_number"`
	CurrentNumberDisplay string           `json:"current_number_display"`
	IsDrawing            bool             `json:"is_drawing"`
	CanDraw              bool             `json:"can_draw"`
	Remaining            int              `json:"remaining"`
	Roster               []NumberResponse `json:"roster"`
	TensGroups           []ColumnResponse `json:"tens_groups"`
	BingoColumns         []ColumnResponse `json:"bingo_columns"`
}

type BoardResponse struct {
	Layout                LayoutResponse   `json:"layout"`
	DynamicColumns        []ColumnResponse `json:"dynamic_columns"`
	CurrentNumberFontSize float64          `json:"current_number_font_size"`
}

type LayoutResponse struct {
	Rows     int     `json:"rows"`
	Columns  int     `json:"columns"`
	CellSize float64 `json:"cell_size"`
	FontSize float64 `json:"font_size"`
}

type NumberResponse struct {
	Value int  `json:"value"`
	Drawn bool `json:"drawn"`
}

type ColumnResponse struct {
	Label   string           `json:"label"`
	Letter  string           `json:"letter,omitempty"`
	Numbers []NumberResponse `json:"numbers"`
}

type DrawStartedResponse struct {
	Candidates []int `json:"candidates"`
}

type ConfirmRequest struct {
	Value *int `json:"value"`
}

type DrawCompletedResponse struct {
	Value   int   `json:"value"`
	History []int `json:"history"`
}

type SizeRequest struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type FontSizeResponse struct {
	FontSize float64 `json:"font_size"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func toStateResponse(g domain.GameState, b domain.BoardState) StateResponse {
	history := g.History
	if history == nil {
		history = []int{}
	}
	return StateResponse{
		Game: GameResponse{
			History:              history,
			CurrentNumber:        g.CurrentNumber,
			CurrentNumberDisplay: g.CurrentNumberDisplay,
			IsDrawing:            g.IsDrawing,
			CanDraw:              g.CanDraw,
			Remaining:            g.Remaining,
			Roster:               toNumbers(g.Roster),
			TensGroups:           toColumns(g.TensGroups),
			BingoColumns:         toColumns(g.BingoColumns),
		},
		Board: BoardResponse{
			Layout:                toLayout(b.Layout),
			DynamicColumns:        toColumns(b.DynamicColumns),
			CurrentNumberFontSize: b.CurrentNumberFontSize,
		},
	}
}

func toLayout(l domain.Layout) LayoutResponse {
	return LayoutResponse{
		Rows:     l.Rows,
		Columns:  l.Columns,
		CellSize: l.CellSize,
		FontSize: l.FontSize,
	}
}

func toNumbers(recs []domain.NumberRecord) []NumberResponse {
	out := make([]NumberResponse, len(recs))
	for i, r := range recs {
		out[i] = NumberResponse{Value: r.Value, Drawn: r.Drawn}
	}
	return out
}

func toColumns(cols []domain.ColumnView) []ColumnResponse {
	out := make([]ColumnResponse, len(cols))
	for i, c := range cols {
		out[i] = ColumnResponse{
			Label:   c.Label,
			Letter:  c.Letter,
			Numbers: toNumbers(c.Numbers),
		}
	}
	return out
}

type LayoutChangedResponse struct {
	Layout         LayoutResponse   `json:"layout"`
	DynamicColumns []ColumnResponse `json:"dynamic_columns,omitempty"`
}

// toEventPayload converts a notification into its JSON body.
func toEventPayload(ev domain.Event) any {
	switch e := ev.(type) {
	case domain.DrawStarted:
		return DrawStartedResponse{Candidates: e.Candidates}
	case domain.DrawCompleted:
		return DrawCompletedResponse{Value: e.Value, History: e.History}
	case domain.LayoutChanged:
		resp := LayoutChangedResponse{Layout: toLayout(e.Layout)}
		if e.DynamicColumns != nil {
			resp.DynamicColumns = toColumns(e.DynamicColumns)
		}
		return resp
	case domain.CurrentNumberFontSizeChanged:
		return FontSizeResponse{FontSize: e.FontSize}
	default:
		return struct{}{}
	}
}

package domain

// EventType names a notification emitted by the engine or the board.
type EventType string

const (
	EventDrawStarted                  EventType = "draw_started"
	EventDrawCompleted                EventType = "draw_completed"
	EventLayoutChanged                EventType = "layout_changed"
	EventCurrentNumberFontSizeChanged EventType = "current_number_font_size_changed"
	EventReset                        EventType = "reset"
)

// Event is implemented by every notification payload.
type Event interface {
	Type() EventType
}

// DrawStarted carries a shuffled candidate sequence for roulette display.
type DrawStarted struct {
	Candidates []int `json:"candidates"`
}

// DrawCompleted reports the committed number and the history, newest first.
type DrawCompleted struct {
	Value   int   `json:"value"`
	History []int `json:"history"`
}

// LayoutChanged reports new board geometry. DynamicColumns is set only when the
// row count changed.
type LayoutChanged struct {
	Layout
	DynamicColumns []ColumnView `json:"dynamic_columns,omitempty"`
}

// CurrentNumberFontSizeChanged reports a new central number font size.
type CurrentNumberFontSizeChanged struct {
	FontSize float64 `json:"font_size"`
}

// Reset reports that the game was restarted.
type Reset struct{}

func (DrawStarted) Type() EventType { return EventDrawStarted }
func (DrawCompleted) Type() EventType { return EventDrawCompleted }
func (LayoutChanged) Type() EventType { return EventLayoutChanged }
func (CurrentNumberFontSizeChanged) Type() EventType { return EventCurrentNumberFontSizeChanged }
func (Reset) Type() EventType { return EventReset }

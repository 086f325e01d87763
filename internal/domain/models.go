package domain

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

const (
	// MinNumber and MaxNumber bound the standard 75-ball pool.
	MinNumber = 1
	MaxNumber = 75

	// PoolSize is the number of balls in a full game.
	PoolSize = MaxNumber - MinNumber + 1
)

// NumberRecord is a single ball and whether it has been drawn.
type NumberRecord struct {
	Value int  `json:"value"`
	Drawn bool `json:"drawn"`
}

// Column is a labelled grouping of roster records. Indices point into the
// roster, so a record marked drawn shows up as drawn in every grouping.
type Column struct {
	Label   string `json:"label"`
	Letter  string `json:"letter,omitempty"`
	Indices []int  `json:"-"`
}

// ColumnView is a Column resolved against a roster snapshot.
type ColumnView struct {
	Label   string         `json:"label"`
	Letter  string         `json:"letter,omitempty"`
	Numbers []NumberRecord `json:"numbers"`
}

// InRange reports whether v is a valid ball value.
func InRange(v int) bool {
	return v >= MinNumber && v <= MaxNumber
}

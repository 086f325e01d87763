package domain

import (
	"fmt"
	"slices"
)

var bingoLetters = [...]string{"B", "I", "N", "G", "O"}

// Roster owns the canonical 75 number records. Index i holds value i+1.
// Every grouping stores indices into records rather than copies.
type Roster struct {
	records []NumberRecord
	tens    []Column
	bingo   []Column
}

// NewRoster returns a roster with every number undrawn.
func NewRoster() *Roster {
	r := &Roster{}
	r.Reset()
	return r
}

// Reset rebuilds the records and the static groupings.
func (r *Roster) Reset() {
	r.records = make([]NumberRecord, PoolSize)
	for i := range r.records {
		r.records[i] = NumberRecord{Value: MinNumber + i}
	}
	r.tens = buildTensGroups()
	r.bingo = buildBingoColumns()
}

// Len returns the number of records.
func (r *Roster) Len() int { return len(r.records) }

// Record returns the record for value v.
func (r *Roster) Record(v int) (NumberRecord, bool) {
	if !InRange(v) {
		return NumberRecord{}, false
	}
	return r.records[v-MinNumber], true
}

// MarkDrawn flags value v as drawn.
func (r *Roster) MarkDrawn(v int) error {
	if !InRange(v) {
		return ErrOutOfRange
	}
	r.records[v-MinNumber].Drawn = true
	return nil
}

// Records returns a copy of the records in value order.
func (r *Roster) Records() []NumberRecord {
	return slices.Clone(r.records)
}

// TensGroups returns the groupings 01-10, 11-20, ..., 71-75.
func (r *Roster) TensGroups() []Column { return slices.Clone(r.tens) }

// BingoColumns returns the B/I/N/G/O columns of fifteen numbers each.
func (r *Roster) BingoColumns() []Column { return slices.Clone(r.bingo) }

// Resolve turns index-based columns into views over the current records.
func (r *Roster) Resolve(cols []Column) []ColumnView {
	out := make([]ColumnView, len(cols))
	for i, c := range cols {
		nums := make([]NumberRecord, 0, len(c.Indices))
		for _, idx := range c.Indices {
			if idx >= 0 && idx < len(r.records) {
				nums = append(nums, r.records[idx])
			}
		}
		out[i] = ColumnView{Label: c.Label, Letter: c.Letter, Numbers: nums}
	}
	return out
}

// BuildColumns splits the roster into contiguous buckets of rows items.
// The last bucket holds the remainder. Labels are the first and last
// values zero-padded to two digits, e.g. "01-05".
func BuildColumns(rows int) []Column {
	if rows < 1 {
		rows = 1
	}
	count := (PoolSize + rows - 1) / rows
	cols := make([]Column, 0, count)
	for start := 0; start < PoolSize; start += rows {
		end := min(start+rows, PoolSize) - 1
		cols = append(cols, Column{
			Label:   rangeLabel(start+MinNumber, end+MinNumber, true),
			Indices: indexRange(start, end),
		})
	}
	return cols
}

func buildTensGroups() []Column {
	var groups []Column
	for start := MinNumber; start <= MaxNumber; {
		end := min(((start-1)/10+1)*10, MaxNumber)
		groups = append(groups, Column{
			Label:   rangeLabel(start, end, true),
			Indices: indexRange(start-MinNumber, end-MinNumber),
		})
		start = end + 1
	}
	return groups
}

func buildBingoColumns() []Column {
	var cols []Column
	for start := MinNumber; start <= MaxNumber; start += 15 {
		end := min(start+14, MaxNumber)
		c := Column{
			Label:   rangeLabel(start, end, false),
			Indices: indexRange(start-MinNumber, end-MinNumber),
		}
		if n := len(cols); n < len(bingoLetters) {
			c.Letter = bingoLetters[n]
		}
		cols = append(cols, c)
	}
	return cols
}

func indexRange(from, to int) []int {
	idx := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		idx = append(idx, i)
	}
	return idx
}

func rangeLabel(first, last int, pad bool) string {
	if pad {
		return fmt.Sprintf("%02d-%02d", first, last)
	}
	return fmt.Sprintf("%d-%d", first, last)
}

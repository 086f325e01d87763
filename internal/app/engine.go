package app

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"sync"

	"github.com/randomtoy/bingo-go/internal/domain"
)

// DrawEngine runs the two-phase draw: RequestDraw hands out a shuffled
// candidate list and moves to Drawing, ConfirmDraw commits one value and
// returns to Idle. Reset is accepted in any state.
//
// mu sequences every state change of the engine and of any Board bound to
// it. Events are enqueued under mu and flushed after it is released.
type DrawEngine struct {
	mu         sync.Mutex
	pool       *domain.Pool
	history    []int
	current    *int
	drawing    bool
	resetHooks []resetHook
	nextHook   int

	events notifier
	logger *slog.Logger
}

// resetHook runs inside Reset with mu held.
type resetHook struct {
	id int
	fn func()
}

func NewDrawEngine(rng domain.RNG, logger *slog.Logger) *DrawEngine {
	if logger == nil {
		logger = slog.Default()
	}
	return &DrawEngine{
		pool:   domain.NewPool(rng),
		logger: logger,
	}
}

// Subscribe registers fn for every engine and board notification.
func (e *DrawEngine) Subscribe(fn func(domain.Event)) (unsubscribe func()) {
	return e.events.subscribe(fn)
}

// RequestDraw starts a draw and returns every undrawn number in random
// order. It fails with ErrInvalidState while a draw is in progress and
// with ErrExhaustedPool once all numbers are out.
func (e *DrawEngine) RequestDraw() ([]int, error) {
	e.mu.Lock()
	if e.drawing {
		e.mu.Unlock()
		e.logger.Warn("draw requested while drawing")
		return nil, fmt.Errorf("request draw: %w", domain.ErrInvalidState)
	}
	if !e.pool.HasAvailable() {
		e.mu.Unlock()
		e.logger.Warn("draw requested on exhausted pool")
		return nil, fmt.Errorf("request draw: %w", domain.ErrExhaustedPool)
	}
	e.drawing = true
	candidates := e.pool.ShuffledCandidates()
	e.events.enqueue(domain.DrawStarted{Candidates: slices.Clone(candidates)})
	e.mu.Unlock()

	e.logger.Debug("draw started", "candidates", len(candidates))
	e.events.flush()
	return candidates, nil
}

// ConfirmDraw commits v and returns the history, newest first. A value
// not in the pool yields ErrInvalidDraw, or ErrOutOfRange outside 1..75,
// and the engine stays in Drawing.
func (e *DrawEngine) ConfirmDraw(v int) ([]int, error) {
	e.mu.Lock()
	if !e.drawing {
		e.mu.Unlock()
		e.logger.Warn("confirm without a draw in progress", "value", v)
		return nil, fmt.Errorf("confirm draw: %w", domain.ErrInvalidState)
	}
	if err := e.pool.Commit(v); err != nil {
		e.mu.Unlock()
		e.logger.Error("invalid draw", "value", v, "error", err)
		return nil, fmt.Errorf("confirm draw %d: %w", v, err)
	}
	e.history = slices.Insert(e.history, 0, v)
	e.current = &v
	e.drawing = false
	history := slices.Clone(e.history)
	remaining := e.pool.Len()
	e.events.enqueue(domain.DrawCompleted{Value: v, History: slices.Clone(history)})
	e.mu.Unlock()

	e.logger.Debug("draw completed", "value", v, "remaining", remaining)
	e.events.flush()
	return history, nil
}

// Reset restarts the game, cancelling any draw in progress. Bound boards
// are re-planned before Reset returns.
func (e *DrawEngine) Reset() {
	e.mu.Lock()
	e.pool.Reset()
	e.history = nil
	e.current = nil
	e.drawing = false
	e.events.enqueue(domain.Reset{})
	for _, h := range e.resetHooks {
		h.fn()
	}
	e.mu.Unlock()

	e.logger.Debug("game reset")
	e.events.flush()
}

// onReset registers fn to run inside Reset while mu is held. fn must not
// lock mu.
func (e *DrawEngine) onReset(fn func()) (remove func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	id := e.nextHook
	e.nextHook++
	e.resetHooks = append(e.resetHooks, resetHook{id: id, fn: fn})
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		e.resetHooks = slices.DeleteFunc(e.resetHooks, func(h resetHook) bool { return h.id == id })
	}
}

// CanDraw reports whether a draw may be requested now.
func (e *DrawEngine) CanDraw() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.canDraw()
}

func (e *DrawEngine) canDraw() bool {
	return e.pool.HasAvailable() && !e.drawing
}

// IsDrawing reports whether a draw awaits confirmation.
func (e *DrawEngine) IsDrawing() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.drawing
}

// CurrentNumber returns the most recent draw, if any.
func (e *DrawEngine) CurrentNumber() (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.current == nil {
		return 0, false
	}
	return *e.current, true
}

// History returns drawn numbers, newest first.
func (e *DrawEngine) History() []int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.history)
}

// Remaining returns the undrawn numbers in ascending order.
func (e *DrawEngine) Remaining() []int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pool.Values()
}

// State returns a snapshot of the game.
func (e *DrawEngine) State() domain.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()

	roster := e.pool.Roster()
	st := domain.GameState{
		History:              slices.Clone(e.history),
		CurrentNumberDisplay: displayNumber(e.current),
		IsDrawing:            e.drawing,
		CanDraw:              e.canDraw(),
		Remaining:            e.pool.Len(),
		Roster:               roster.Records(),
		TensGroups:           roster.Resolve(roster.TensGroups()),
		BingoColumns:         roster.Resolve(roster.BingoColumns()),
	}
	if e.current != nil {
		v := *e.current
		st.CurrentNumber = &v
	}
	return st
}

func displayNumber(v *int) string {
	if v == nil {
		return "?"
	}
	return strconv.Itoa(*v)
}

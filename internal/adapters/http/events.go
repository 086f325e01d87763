package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/randomtoy/bingo-go/internal/domain"
)

// Events streams engine and board notifications as Server-Sent Events.
// A subscriber that falls behind loses events rather than stalling draws.
func (h *Handler) Events(c echo.Context) error {
	requestID, _ := c.Get("request_id").(string)

	ch := make(chan domain.Event, h.eventBuffer)
	unsubscribe := h.events.Subscribe(func(ev domain.Event) {
		select {
		case ch <- ev:
		default:
			slog.Warn("event stream lagging, dropping event", "request_id", requestID, "event", ev.Type())
		}
	})
	defer unsubscribe()

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	if _, err := fmt.Fprint(w, ": connected\n\n"); err != nil {
		return err
	}
	w.Flush()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-ch:
			data, err := json.Marshal(toEventPayload(ev))
			if err != nil {
				return fmt.Errorf("marshal %s event: %w", ev.Type(), err)
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Type(), data); err != nil {
				return err
			}
			w.Flush()
		}
	}
}

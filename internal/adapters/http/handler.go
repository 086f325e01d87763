package http

import (
	"errors"
	"log/slog"
	"math"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/randomtoy/bingo-go/internal/domain"
	"github.com/randomtoy/bingo-go/internal/ports"
)

type Handler struct {
	game        ports.Game
	board       ports.Board
	events      ports.EventSource
	eventBuffer int
}

func NewHandler(game ports.Game, board ports.Board, events ports.EventSource, eventBuffer int) *Handler {
	if eventBuffer < 1 {
		eventBuffer = 1
	}
	return &Handler{
		game:        game,
		board:       board,
		events:      events,
		eventBuffer: eventBuffer,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/v1/state", h.State)
	e.POST("/v1/draws", h.RequestDraw)
	e.POST("/v1/draws/confirm", h.ConfirmDraw)
	e.POST("/v1/reset", h.Reset)
	e.PUT("/v1/layout", h.ReportSize)
	e.PUT("/v1/layout/current-number", h.ReportCurrentNumberSize)
	e.GET("/v1/events", h.Events)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) State(c echo.Context) error {
	return c.JSON(http.StatusOK, toStateResponse(h.game.State(), h.board.State()))
}

func (h *Handler) RequestDraw(c echo.Context) error {
	candidates, err := h.game.RequestDraw()
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, DrawStartedResponse{Candidates: candidates})
}

func (h *Handler) ConfirmDraw(c echo.Context) error {
	var req ConfirmRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if req.Value == nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "value is required"})
	}

	history, err := h.game.ConfirmDraw(*req.Value)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, DrawCompletedResponse{Value: *req.Value, History: history})
}

func (h *Handler) Reset(c echo.Context) error {
	h.game.Reset()
	return c.JSON(http.StatusOK, toStateResponse(h.game.State(), h.board.State()))
}

func (h *Handler) ReportSize(c echo.Context) error {
	req, ok := bindSize(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "width and height must be finite numbers"})
	}
	return c.JSON(http.StatusOK, toLayout(h.board.ReportSizeChanged(req.Width, req.Height)))
}

func (h *Handler) ReportCurrentNumberSize(c echo.Context) error {
	req, ok := bindSize(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "width and height must be finite numbers"})
	}
	size := h.board.ReportCurrentNumberAreaSizeChanged(req.Width, req.Height)
	return c.JSON(http.StatusOK, FontSizeResponse{FontSize: size})
}

func bindSize(c echo.Context) (SizeRequest, bool) {
	var req SizeRequest
	if err := c.Bind(&req); err != nil {
		return SizeRequest{}, false
	}
	for _, v := range []float64{req.Width, req.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return SizeRequest{}, false
		}
	}
	return req, true
}

func mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, domain.ErrInvalidState), errors.Is(err, domain.ErrExhaustedPool):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidDraw), errors.Is(err, domain.ErrOutOfRange):
		slog.Warn("rejected draw", "request_id", requestID, "error", err)
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	default:
		slog.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

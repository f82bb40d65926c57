package handlers

import (
	"errors"
	"net/http"

	"github.com/avquote/backend/internal/httpx"
	"github.com/avquote/backend/internal/services"
	"github.com/avquote/backend/internal/store"
)

// BookingHandler exposes the approval bridge: POST /api/quotes/{id}/book.
type BookingHandler struct {
	Bookings *services.BookingService
}

func NewBookingHandler(svc *services.BookingService) *BookingHandler {
	return &BookingHandler{Bookings: svc}
}

type bookResponse struct {
	Message  string                  `json:"message"`
	Bookings any                     `json:"bookings"`
	Errors   []services.BookingError `json:"errors,omitempty"`
}

func (h *BookingHandler) Book(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	result, err := h.Bookings.Approve(r.Context(), id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, "quote_not_found", nil)
		return
	case errors.Is(err, store.ErrNotConfigured):
		httpx.JSONError(w, http.StatusBadGateway, "remote_backend_unavailable", nil)
		return
	case err != nil:
		httpx.JSONError(w, http.StatusInternalServerError, "approval_failed", nil)
		return
	}
	if result.Partial() {
		httpx.JSON(w, http.StatusMultiStatus, bookResponse{
			Message:  "quote approved but some items failed to book",
			Bookings: result.Bookings,
			Errors:   result.Errors,
		})
		return
	}
	httpx.JSON(w, http.StatusOK, bookResponse{
		Message:  "quote approved and all items booked successfully",
		Bookings: result.Bookings,
	})
}

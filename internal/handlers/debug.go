package handlers

import (
	"net/http"

	"github.com/avquote/backend/internal/httpx"
	"github.com/avquote/backend/internal/shelf"
)

// DebugHandler probes the remote deployment's schema. Useful when pointing
// the app at a new shelf.nu instance whose booking table name is unknown.
type DebugHandler struct {
	Shelf *shelf.Client
}

func NewDebugHandler(client *shelf.Client) *DebugHandler { return &DebugHandler{Shelf: client} }

func (h *DebugHandler) Schema(w http.ResponseWriter, r *http.Request) {
	if h.Shelf == nil {
		httpx.JSONError(w, http.StatusBadGateway, "remote_backend_unavailable", nil)
		return
	}
	probe, err := h.Shelf.ProbeSchema(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusNotFound, "no_booking_table_found", err.Error())
		return
	}
	httpx.JSON(w, http.StatusOK, probe)
}

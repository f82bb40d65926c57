package handlers

import (
	"errors"
	"net/http"

	"github.com/avquote/backend/internal/httpx"
	"github.com/avquote/backend/internal/models"
	"github.com/avquote/backend/internal/services"
	"github.com/avquote/backend/internal/store"
	"github.com/avquote/backend/internal/validation"
)

// WarehouseHandler exposes pack tracking: POST /api/quotes/{id}/pack.
type WarehouseHandler struct {
	Warehouse *services.WarehouseService
}

func NewWarehouseHandler(svc *services.WarehouseService) *WarehouseHandler {
	return &WarehouseHandler{Warehouse: svc}
}

type packRequest struct {
	SectionID string `json:"sectionId"`
	ItemID    string `json:"itemId"`
}

type packResponse struct {
	Quote    *models.Quote `json:"quote"`
	Progress int           `json:"progress"`
}

func (h *WarehouseHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req packRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	violations := validation.Violations{}
	validation.Required("sectionId", req.SectionID, violations)
	validation.Required("itemId", req.ItemID, violations)
	if !violations.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", violations)
		return
	}
	quote, progress, err := h.Warehouse.TogglePack(r.Context(), id, req.SectionID, req.ItemID)
	if errors.Is(err, store.ErrNotFound) {
		httpx.JSONError(w, http.StatusNotFound, "item_not_found", nil)
		return
	}
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_toggle_pack", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, packResponse{Quote: quote, Progress: progress})
}

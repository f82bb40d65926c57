package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/avquote/backend/internal/httpx"
	"github.com/avquote/backend/internal/models"
	"github.com/avquote/backend/internal/shelf"
	"github.com/avquote/backend/internal/store"
	"github.com/avquote/backend/internal/validation"
)

// EquipmentHandler serves the rental catalog. With a configured shelf
// client the list comes from the remote Asset table (the authoritative
// variant); otherwise the local equipment collection is used. Item-level
// mutations always target the local collection - remote assets are managed
// in the shelf.nu interface, not here.
type EquipmentHandler struct {
	Store store.Store
	Shelf *shelf.Client // nil when remote backend not configured
}

func NewEquipmentHandler(s store.Store, client *shelf.Client) *EquipmentHandler {
	return &EquipmentHandler{Store: s, Shelf: client}
}

func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.Shelf != nil {
		equipment, err := h.Shelf.ListAssets(r.Context())
		if err != nil {
			// Degrade to an empty catalog so the quote editor still
			// works when the remote backend is down or misconfigured.
			slog.Error("failed to fetch assets from remote table", "error", err)
			httpx.JSON(w, http.StatusOK, []models.Equipment{})
			return
		}
		httpx.JSON(w, http.StatusOK, equipment)
		return
	}
	var equipment []models.Equipment
	if err := h.Store.Load(r.Context(), store.CollectionEquipment, &equipment); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_read_equipment", nil)
		return
	}
	if equipment == nil {
		equipment = []models.Equipment{}
	}
	httpx.JSON(w, http.StatusOK, equipment)
}

func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var item models.Equipment
	if err := httpx.Decode(r, &item); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	violations := validation.Violations{}
	validation.Required("name", item.Name, violations)
	if !violations.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", violations)
		return
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	var equipment []models.Equipment
	if err := h.Store.Load(r.Context(), store.CollectionEquipment, &equipment); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_read_equipment", nil)
		return
	}
	equipment = append(equipment, item)
	if err := h.Store.Save(r.Context(), store.CollectionEquipment, equipment); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_save_equipment", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, item)
}

func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var equipment []models.Equipment
	if err := h.Store.Load(r.Context(), store.CollectionEquipment, &equipment); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_read_equipment", nil)
		return
	}
	for _, item := range equipment {
		if item.ID == id {
			httpx.JSON(w, http.StatusOK, item)
			return
		}
	}
	httpx.JSONError(w, http.StatusNotFound, "equipment_not_found", nil)
}

func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var updated models.Equipment
	if err := httpx.Decode(r, &updated); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	var equipment []models.Equipment
	if err := h.Store.Load(r.Context(), store.CollectionEquipment, &equipment); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_read_equipment", nil)
		return
	}
	for i := range equipment {
		if equipment[i].ID == id {
			updated.ID = id // the path wins over any id in the body
			equipment[i] = updated
			if err := h.Store.Save(r.Context(), store.CollectionEquipment, equipment); err != nil {
				httpx.JSONError(w, http.StatusInternalServerError, "failed_to_save_equipment", nil)
				return
			}
			httpx.JSON(w, http.StatusOK, updated)
			return
		}
	}
	httpx.JSONError(w, http.StatusNotFound, "equipment_not_found", nil)
}

func (h *EquipmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var equipment []models.Equipment
	if err := h.Store.Load(r.Context(), store.CollectionEquipment, &equipment); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_read_equipment", nil)
		return
	}
	kept := equipment[:0]
	for _, item := range equipment {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(equipment) {
		httpx.JSONError(w, http.StatusNotFound, "equipment_not_found", nil)
		return
	}
	if err := h.Store.Save(r.Context(), store.CollectionEquipment, kept); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_save_equipment", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "equipment deleted"})
}

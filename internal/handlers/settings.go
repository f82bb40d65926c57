package handlers

import (
	"net/http"

	"github.com/avquote/backend/internal/httpx"
	"github.com/avquote/backend/internal/models"
	"github.com/avquote/backend/internal/store"
)

// SettingsHandler reads and replaces the single global settings document.
type SettingsHandler struct {
	Store store.Store
}

func NewSettingsHandler(s store.Store) *SettingsHandler { return &SettingsHandler{Store: s} }

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	var settings models.Settings
	if err := h.Store.Load(r.Context(), store.CollectionSettings, &settings); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_read_settings", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, settings)
}

func (h *SettingsHandler) Save(w http.ResponseWriter, r *http.Request) {
	var settings models.Settings
	if err := httpx.Decode(r, &settings); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if err := h.Store.Save(r.Context(), store.CollectionSettings, settings); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_save_settings", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "settings updated"})
}

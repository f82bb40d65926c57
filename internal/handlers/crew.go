package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/avquote/backend/internal/httpx"
	"github.com/avquote/backend/internal/models"
	"github.com/avquote/backend/internal/store"
	"github.com/avquote/backend/internal/validation"
)

type CrewHandler struct {
	Store store.Store
}

func NewCrewHandler(s store.Store) *CrewHandler { return &CrewHandler{Store: s} }

func (h *CrewHandler) List(w http.ResponseWriter, r *http.Request) {
	var crew []models.CrewMember
	if err := h.Store.Load(r.Context(), store.CollectionCrew, &crew); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_read_crew", nil)
		return
	}
	if crew == nil {
		crew = []models.CrewMember{}
	}
	httpx.JSON(w, http.StatusOK, crew)
}

func (h *CrewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var member models.CrewMember
	if err := httpx.Decode(r, &member); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	violations := validation.Violations{}
	validation.Required("name", member.Name, violations)
	if !violations.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", violations)
		return
	}
	if member.ID == "" {
		member.ID = uuid.NewString()
	}
	var crew []models.CrewMember
	if err := h.Store.Load(r.Context(), store.CollectionCrew, &crew); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_read_crew", nil)
		return
	}
	crew = append(crew, member)
	if err := h.Store.Save(r.Context(), store.CollectionCrew, crew); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_save_crew", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, member)
}

func (h *CrewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var crew []models.CrewMember
	if err := h.Store.Load(r.Context(), store.CollectionCrew, &crew); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_read_crew", nil)
		return
	}
	kept := crew[:0]
	for _, member := range crew {
		if member.ID != id {
			kept = append(kept, member)
		}
	}
	if len(kept) == len(crew) {
		httpx.JSONError(w, http.StatusNotFound, "crew_member_not_found", nil)
		return
	}
	if err := h.Store.Save(r.Context(), store.CollectionCrew, kept); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_save_crew", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "crew member deleted"})
}

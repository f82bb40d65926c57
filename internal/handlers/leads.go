package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/avquote/backend/internal/httpx"
	"github.com/avquote/backend/internal/models"
	"github.com/avquote/backend/internal/store"
	"github.com/avquote/backend/internal/validation"
)

// LeadHandler maintains the append-only inquiry inbox. New leads go to the
// top of the list; the only mutation after creation is the status field.
type LeadHandler struct {
	Store store.Store
}

func NewLeadHandler(s store.Store) *LeadHandler { return &LeadHandler{Store: s} }

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	var leads []models.Lead
	if err := h.Store.Load(r.Context(), store.CollectionLeads, &leads); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_read_leads", nil)
		return
	}
	if leads == nil {
		leads = []models.Lead{}
	}
	httpx.JSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var lead models.Lead
	if err := httpx.Decode(r, &lead); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	violations := validation.Violations{}
	validation.Required("content", lead.Content, violations)
	if !violations.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", violations)
		return
	}
	lead.ID = uuid.NewString()
	if lead.Source == "" {
		lead.Source = "Manual"
	}
	lead.Status = models.LeadStatusNew
	lead.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	var leads []models.Lead
	if err := h.Store.Load(r.Context(), store.CollectionLeads, &leads); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_read_leads", nil)
		return
	}
	leads = append([]models.Lead{lead}, leads...)
	if err := h.Store.Save(r.Context(), store.CollectionLeads, leads); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_save_leads", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, lead)
}

// UpdateStatus handles PUT /api/leads with {id, status}.
func (h *LeadHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	violations := validation.Violations{}
	validation.Required("id", req.ID, violations)
	validation.Required("status", req.Status, violations)
	if violations.Empty() {
		validation.OneOf("status", req.Status,
			[]string{models.LeadStatusNew, models.LeadStatusProcessed, models.LeadStatusArchived}, violations)
	}
	if !violations.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", violations)
		return
	}
	var leads []models.Lead
	if err := h.Store.Load(r.Context(), store.CollectionLeads, &leads); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_read_leads", nil)
		return
	}
	for i := range leads {
		if leads[i].ID == req.ID {
			leads[i].Status = req.Status
			if err := h.Store.Save(r.Context(), store.CollectionLeads, leads); err != nil {
				httpx.JSONError(w, http.StatusInternalServerError, "failed_to_save_leads", nil)
				return
			}
			httpx.JSON(w, http.StatusOK, leads[i])
			return
		}
	}
	httpx.JSONError(w, http.StatusNotFound, "lead_not_found", nil)
}

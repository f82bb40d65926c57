package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avquote/backend/internal/models"
)

func TestLeadCreateAndList(t *testing.T) {
	h := NewLeadHandler(newTestStore(t))

	w := httptest.NewRecorder()
	h.Create(w, jsonRequest(t, http.MethodPost, "/api/leads", models.Lead{Content: "Need 2 cameras for a gala"}))
	if w.Code != http.StatusCreated {
		t.Fatalf("create code = %d body=%s", w.Code, w.Body.String())
	}
	var first models.Lead
	decodeBody(t, w, &first)
	if first.ID == "" || first.Status != models.LeadStatusNew || first.Source != "Manual" || first.CreatedAt == "" {
		t.Fatalf("first = %+v", first)
	}

	w = httptest.NewRecorder()
	h.Create(w, jsonRequest(t, http.MethodPost, "/api/leads", models.Lead{Content: "Conference AV", Source: "Email"}))
	var second models.Lead
	decodeBody(t, w, &second)
	if second.Source != "Email" {
		t.Fatalf("source = %q, want Email", second.Source)
	}

	// Newest first.
	w = httptest.NewRecorder()
	h.List(w, httptest.NewRequest(http.MethodGet, "/api/leads", nil))
	var leads []models.Lead
	decodeBody(t, w, &leads)
	if len(leads) != 2 || leads[0].ID != second.ID || leads[1].ID != first.ID {
		t.Fatalf("leads = %+v", leads)
	}
}

func TestLeadCreateRequiresContent(t *testing.T) {
	h := NewLeadHandler(newTestStore(t))
	w := httptest.NewRecorder()
	h.Create(w, jsonRequest(t, http.MethodPost, "/api/leads", models.Lead{Source: "Email"}))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", w.Code)
	}
}

func TestLeadUpdateStatus(t *testing.T) {
	h := NewLeadHandler(newTestStore(t))

	w := httptest.NewRecorder()
	h.Create(w, jsonRequest(t, http.MethodPost, "/api/leads", models.Lead{Content: "inquiry"}))
	var lead models.Lead
	decodeBody(t, w, &lead)

	w = httptest.NewRecorder()
	h.UpdateStatus(w, jsonRequest(t, http.MethodPut, "/api/leads",
		map[string]string{"id": lead.ID, "status": models.LeadStatusProcessed}))
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d body=%s", w.Code, w.Body.String())
	}
	var updated models.Lead
	decodeBody(t, w, &updated)
	if updated.Status != models.LeadStatusProcessed {
		t.Fatalf("status = %q", updated.Status)
	}
}

func TestLeadUpdateStatusValidation(t *testing.T) {
	h := NewLeadHandler(newTestStore(t))

	// Unknown status value.
	w := httptest.NewRecorder()
	h.UpdateStatus(w, jsonRequest(t, http.MethodPut, "/api/leads",
		map[string]string{"id": "l1", "status": "Done"}))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad status: code = %d, want 400", w.Code)
	}

	// Unknown lead id.
	w = httptest.NewRecorder()
	h.UpdateStatus(w, jsonRequest(t, http.MethodPut, "/api/leads",
		map[string]string{"id": "missing", "status": models.LeadStatusArchived}))
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing lead: code = %d, want 404", w.Code)
	}
}

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avquote/backend/internal/models"
	"github.com/avquote/backend/internal/store"
)

func draftQuote() models.Quote {
	return models.Quote{
		EventName:  "Gala Dinner",
		ClientName: "Initech",
		StartDate:  "2024-03-01",
		EndDate:    "2024-03-02",
		Sections: []models.QuoteSection{
			{ID: "s1", Name: "Video", Items: []models.QuoteItem{
				{ID: "i1", Name: "Camera", Type: models.ItemTypeEquipment, Quantity: 2, Days: 2, PricePerDay: 500, CostPerDay: 200},
			}},
		},
		Discount: 100,
		Currency: "USD",
	}
}

func TestQuoteCreateValidates(t *testing.T) {
	h := NewQuoteHandler(newTestStore(t))
	w := httptest.NewRecorder()
	h.Create(w, jsonRequest(t, http.MethodPost, "/api/quotes", models.Quote{ClientName: "x"}))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", w.Code)
	}
}

func TestQuoteCreateDerivesTotals(t *testing.T) {
	s := newTestStore(t)
	h := NewQuoteHandler(s)
	w := httptest.NewRecorder()
	h.Create(w, jsonRequest(t, http.MethodPost, "/api/quotes", draftQuote()))
	if w.Code != http.StatusCreated {
		t.Fatalf("code = %d body=%s", w.Code, w.Body.String())
	}
	var created map[string]string
	decodeBody(t, w, &created)
	if created["id"] == "" {
		t.Fatal("missing id in response")
	}

	var quotes []models.Quote
	if err := s.Load(context.Background(), store.CollectionQuotes, &quotes); err != nil {
		t.Fatalf("load: %v", err)
	}
	q := quotes[0]
	if q.Status != models.QuoteStatusDraft {
		t.Fatalf("status = %s, want Draft", q.Status)
	}
	// 2 * 2 * 500 = 2000, minus discount 100
	if q.Total != 1900 || q.TotalCost != 800 {
		t.Fatalf("totals = %v/%v, want 1900/800", q.Total, q.TotalCost)
	}
}

func TestQuoteGetAndList(t *testing.T) {
	s := newTestStore(t)
	seed := draftQuote()
	seed.ID = "q1"
	if err := s.Save(context.Background(), store.CollectionQuotes, []models.Quote{seed}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	h := NewQuoteHandler(s)

	w := httptest.NewRecorder()
	h.List(w, httptest.NewRequest(http.MethodGet, "/api/quotes", nil))
	var list []models.Quote
	decodeBody(t, w, &list)
	if len(list) != 1 {
		t.Fatalf("list len = %d", len(list))
	}

	req := httptest.NewRequest(http.MethodGet, "/api/quotes/q1", nil)
	req.SetPathValue("id", "q1")
	w = httptest.NewRecorder()
	h.Get(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("get code = %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/quotes/nope", nil)
	req.SetPathValue("id", "nope")
	w = httptest.NewRecorder()
	h.Get(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("miss code = %d, want 404", w.Code)
	}
}

func TestQuoteListEmptyIsArray(t *testing.T) {
	h := NewQuoteHandler(newTestStore(t))
	w := httptest.NewRecorder()
	h.List(w, httptest.NewRequest(http.MethodGet, "/api/quotes", nil))
	if body := w.Body.String(); body != "[]" {
		t.Fatalf("empty list body = %q, want []", body)
	}
}

func TestQuoteUpdateMergesAndRenormalizes(t *testing.T) {
	s := newTestStore(t)
	seed := draftQuote()
	seed.ID = "q1"
	s.Save(context.Background(), store.CollectionQuotes, []models.Quote{seed})
	h := NewQuoteHandler(s)

	// Partial document: only the discount changes; sections and names
	// must survive the merge, and totals must be re-derived.
	req := jsonRequest(t, http.MethodPut, "/api/quotes/q1", map[string]any{"discount": 0})
	req.SetPathValue("id", "q1")
	w := httptest.NewRecorder()
	h.Update(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d body=%s", w.Code, w.Body.String())
	}
	var updated models.Quote
	decodeBody(t, w, &updated)
	if updated.EventName != "Gala Dinner" || len(updated.Sections) != 1 {
		t.Fatalf("merge dropped fields: %+v", updated)
	}
	if updated.Total != 2000 {
		t.Fatalf("total = %v, want 2000 after discount removal", updated.Total)
	}

	// A client sending stale derived totals cannot poison the store.
	body := map[string]any{"sections": []map[string]any{{
		"id": "s1", "name": "Video", "items": []map[string]any{{
			"id": "i1", "name": "Camera", "quantity": 1, "days": 1, "pricePerDay": 500, "total": 999999,
		}},
	}}}
	req = jsonRequest(t, http.MethodPut, "/api/quotes/q1", body)
	req.SetPathValue("id", "q1")
	w = httptest.NewRecorder()
	h.Update(w, req)
	decodeBody(t, w, &updated)
	if updated.Sections[0].Items[0].Total != 500 {
		t.Fatalf("derived total not renormalized: %v", updated.Sections[0].Items[0].Total)
	}
}

func TestQuoteUpdateKeepsPathID(t *testing.T) {
	s := newTestStore(t)
	seed := draftQuote()
	seed.ID = "q1"
	s.Save(context.Background(), store.CollectionQuotes, []models.Quote{seed})
	h := NewQuoteHandler(s)
	req := jsonRequest(t, http.MethodPut, "/api/quotes/q1", map[string]any{"id": "evil"})
	req.SetPathValue("id", "q1")
	w := httptest.NewRecorder()
	h.Update(w, req)
	var updated models.Quote
	decodeBody(t, w, &updated)
	if updated.ID != "q1" {
		t.Fatalf("id = %s, want q1", updated.ID)
	}
}

func TestQuoteDelete(t *testing.T) {
	s := newTestStore(t)
	seed := draftQuote()
	seed.ID = "q1"
	seed.Status = models.QuoteStatusApproved // deletable in any status
	s.Save(context.Background(), store.CollectionQuotes, []models.Quote{seed})
	h := NewQuoteHandler(s)

	req := httptest.NewRequest(http.MethodDelete, "/api/quotes/q1", nil)
	req.SetPathValue("id", "q1")
	w := httptest.NewRecorder()
	h.Delete(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	var quotes []models.Quote
	s.Load(context.Background(), store.CollectionQuotes, &quotes)
	if len(quotes) != 0 {
		t.Fatalf("quote not deleted: %d left", len(quotes))
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/quotes/q1", nil)
	req.SetPathValue("id", "q1")
	h.Delete(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("double delete code = %d, want 404", w.Code)
	}
}

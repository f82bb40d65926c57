package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avquote/backend/internal/services"
)

func newWarehouseHandler(t *testing.T) *WarehouseHandler {
	t.Helper()
	s := newTestStore(t)
	seedBookableQuote(t, s)
	return NewWarehouseHandler(services.NewWarehouseService(s))
}

func TestWarehouseToggle(t *testing.T) {
	h := newWarehouseHandler(t)

	req := jsonRequest(t, http.MethodPost, "/api/quotes/q1/pack", packRequest{SectionID: "s1", ItemID: "i1"})
	req.SetPathValue("id", "q1")
	w := httptest.NewRecorder()
	h.Toggle(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d body=%s", w.Code, w.Body.String())
	}
	var resp packResponse
	decodeBody(t, w, &resp)
	if resp.Progress != 50 {
		t.Fatalf("progress = %d, want 50", resp.Progress)
	}
	if !resp.Quote.Sections[0].Items[0].Packed || resp.Quote.Sections[0].Items[1].Packed {
		t.Fatalf("quote = %+v", resp.Quote)
	}

	// Toggling again unpacks.
	req = jsonRequest(t, http.MethodPost, "/api/quotes/q1/pack", packRequest{SectionID: "s1", ItemID: "i1"})
	req.SetPathValue("id", "q1")
	w = httptest.NewRecorder()
	h.Toggle(w, req)
	resp = packResponse{} // packed=false is omitempty; decoding into the used struct would keep the stale true
	decodeBody(t, w, &resp)
	if resp.Progress != 0 || resp.Quote.Sections[0].Items[0].Packed {
		t.Fatalf("after unpack: progress=%d quote=%+v", resp.Progress, resp.Quote)
	}
}

func TestWarehouseToggleValidation(t *testing.T) {
	h := newWarehouseHandler(t)

	req := jsonRequest(t, http.MethodPost, "/api/quotes/q1/pack", packRequest{SectionID: "s1"})
	req.SetPathValue("id", "q1")
	w := httptest.NewRecorder()
	h.Toggle(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", w.Code)
	}
}

func TestWarehouseToggleMisses(t *testing.T) {
	h := newWarehouseHandler(t)

	for _, tc := range []struct {
		name    string
		quoteID string
		body    packRequest
	}{
		{"unknown quote", "missing", packRequest{SectionID: "s1", ItemID: "i1"}},
		{"unknown section", "q1", packRequest{SectionID: "nope", ItemID: "i1"}},
		{"unknown item", "q1", packRequest{SectionID: "s1", ItemID: "nope"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			req := jsonRequest(t, http.MethodPost, "/api/quotes/"+tc.quoteID+"/pack", tc.body)
			req.SetPathValue("id", tc.quoteID)
			w := httptest.NewRecorder()
			h.Toggle(w, req)
			if w.Code != http.StatusNotFound {
				t.Fatalf("code = %d, want 404", w.Code)
			}
		})
	}
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/avquote/backend/internal/httpx"
	"github.com/avquote/backend/internal/models"
	"github.com/avquote/backend/internal/pricing"
	"github.com/avquote/backend/internal/store"
	"github.com/avquote/backend/internal/validation"
)

// QuoteHandler owns whole-document CRUD on the quotes collection. The
// derived totals are re-derived server-side on every write so a stale or
// hand-crafted client can never persist a document violating the pricing
// invariants.
type QuoteHandler struct {
	Store store.Store
}

func NewQuoteHandler(s store.Store) *QuoteHandler { return &QuoteHandler{Store: s} }

func (h *QuoteHandler) List(w http.ResponseWriter, r *http.Request) {
	var quotes []models.Quote
	if err := h.Store.Load(r.Context(), store.CollectionQuotes, &quotes); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_read_quotes", nil)
		return
	}
	if quotes == nil {
		quotes = []models.Quote{}
	}
	httpx.JSON(w, http.StatusOK, quotes)
}

func (h *QuoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var quote models.Quote
	if err := httpx.Decode(r, &quote); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	violations := validation.Violations{}
	validation.Required("eventName", quote.EventName, violations)
	if !violations.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", violations)
		return
	}
	if quote.ID == "" {
		quote.ID = uuid.NewString()
	}
	if quote.Status == "" {
		quote.Status = models.QuoteStatusDraft
	}
	if quote.Sections == nil {
		quote.Sections = []models.QuoteSection{}
	}
	pricing.Renormalize(&quote)

	var quotes []models.Quote
	if err := h.Store.Load(r.Context(), store.CollectionQuotes, &quotes); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_read_quotes", nil)
		return
	}
	quotes = append(quotes, quote)
	if err := h.Store.Save(r.Context(), store.CollectionQuotes, quotes); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_save_quotes", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]string{"message": "quote created", "id": quote.ID})
}

func (h *QuoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var quotes []models.Quote
	if err := h.Store.Load(r.Context(), store.CollectionQuotes, &quotes); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_read_quotes", nil)
		return
	}
	for i := range quotes {
		if quotes[i].ID == id {
			httpx.JSON(w, http.StatusOK, quotes[i])
			return
		}
	}
	httpx.JSONError(w, http.StatusNotFound, "quote_not_found", nil)
}

// Update shallow-merges the request body over the stored document, keeps
// the path id authoritative, and re-derives all totals before persisting.
// The editing screens send whole documents; the merge keeps partial
// updates (production sub-documents, pack state) from clobbering fields
// they did not carry.
func (h *QuoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var patch map[string]json.RawMessage
	if err := httpx.Decode(r, &patch); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	var quotes []models.Quote
	if err := h.Store.Load(r.Context(), store.CollectionQuotes, &quotes); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_read_quotes", nil)
		return
	}
	for i := range quotes {
		if quotes[i].ID != id {
			continue
		}
		merged, err := mergeQuote(quotes[i], patch)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_quote", nil)
			return
		}
		merged.ID = id
		pricing.Renormalize(&merged)
		quotes[i] = merged
		if err := h.Store.Save(r.Context(), store.CollectionQuotes, quotes); err != nil {
			httpx.JSONError(w, http.StatusInternalServerError, "failed_to_save_quotes", nil)
			return
		}
		httpx.JSON(w, http.StatusOK, merged)
		return
	}
	httpx.JSONError(w, http.StatusNotFound, "quote_not_found", nil)
}

func (h *QuoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var quotes []models.Quote
	if err := h.Store.Load(r.Context(), store.CollectionQuotes, &quotes); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_read_quotes", nil)
		return
	}
	kept := quotes[:0]
	for _, q := range quotes {
		if q.ID != id {
			kept = append(kept, q)
		}
	}
	if len(kept) == len(quotes) {
		httpx.JSONError(w, http.StatusNotFound, "quote_not_found", nil)
		return
	}
	if err := h.Store.Save(r.Context(), store.CollectionQuotes, kept); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_save_quotes", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "quote deleted"})
}

// mergeQuote applies a top-level field merge: keys present in patch
// replace the stored values, everything else survives untouched.
func mergeQuote(current models.Quote, patch map[string]json.RawMessage) (models.Quote, error) {
	base, err := json.Marshal(current)
	if err != nil {
		return models.Quote{}, err
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(base, &doc); err != nil {
		return models.Quote{}, err
	}
	for k, v := range patch {
		doc[k] = v
	}
	mergedRaw, err := json.Marshal(doc)
	if err != nil {
		return models.Quote{}, err
	}
	var merged models.Quote
	if err := json.Unmarshal(mergedRaw, &merged); err != nil {
		return models.Quote{}, err
	}
	return merged, nil
}

package handlers

import (
	"net/http"
	"time"

	"github.com/avquote/backend/internal/httpx"
	"github.com/avquote/backend/internal/services"
	"github.com/avquote/backend/internal/validation"
)

// CopilotHandler turns raw inquiry text into a draft quote. The result is
// low-confidence input for manual review, never persisted directly.
type CopilotHandler struct{}

func NewCopilotHandler() *CopilotHandler { return &CopilotHandler{} }

func (h *CopilotHandler) Parse(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	violations := validation.Violations{}
	validation.Required("text", req.Text, violations)
	if !violations.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", violations)
		return
	}
	draft := services.ParseInquiry(req.Text, time.Now())
	httpx.JSON(w, http.StatusOK, draft)
}

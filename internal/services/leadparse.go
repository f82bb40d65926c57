package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/avquote/backend/internal/models"
	"github.com/avquote/backend/internal/pricing"
)

// itemLineRegex matches inquiry lines of the form "2x Camera", "2 x Camera"
// or "3 Camera bodies".
var itemLineRegex = regexp.MustCompile(`^(\d+)\s*[xX]?\s+(.+)$`)

var clientLineRegex = regexp.MustCompile(`(?i)^(?:client|company|for)\s*:\s*(.+)$`)

const maxEventNameLen = 50

// ParseInquiry turns free inquiry text into a best-effort draft quote for
// manual review: first line becomes the event name, "client:" lines the
// client name, quantity-prefixed lines become equipment items with a
// one-day duration. The output is a starting point; the operator edits it
// before anything is priced for real.
func ParseInquiry(text string, now time.Time) models.Quote {
	today := now.Format("2006-01-02")
	quote := models.Quote{
		EventName:  "New Event",
		ClientName: "Detected Client",
		StartDate:  today,
		EndDate:    today,
		Status:     models.QuoteStatusDraft,
		Sections:   []models.QuoteSection{},
	}

	lines := strings.Split(text, "\n")
	var items []models.QuoteItem
	firstLineSeen := false
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if !firstLineSeen {
			firstLineSeen = true
			name := line
			if len(name) > maxEventNameLen {
				name = name[:maxEventNameLen]
			}
			quote.EventName = name
			continue
		}
		if m := clientLineRegex.FindStringSubmatch(line); m != nil {
			quote.ClientName = strings.TrimSpace(m[1])
			continue
		}
		if m := itemLineRegex.FindStringSubmatch(line); m != nil {
			qty, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			items = append(items, models.QuoteItem{
				ID:       uuid.NewString(),
				Name:     strings.TrimSpace(m[2]),
				Type:     models.ItemTypeEquipment,
				Quantity: qty,
				Days:     1,
			})
		}
	}

	if len(items) > 0 {
		quote.Sections = append(quote.Sections, models.QuoteSection{
			ID:    uuid.NewString(),
			Name:  "Detected Equipment",
			Items: items,
		})
	}
	pricing.Renormalize(&quote)
	return quote
}

package services

import (
	"strings"
	"testing"
	"time"

	"github.com/avquote/backend/internal/models"
)

var parseNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

func TestParseInquiry(t *testing.T) {
	text := "Corporate summit AV setup\nclient: Initech\n2x Camera\n1 x Sound Kit\nwe also need someone on site\n"
	q := ParseInquiry(text, parseNow)
	if q.EventName != "Corporate summit AV setup" {
		t.Fatalf("eventName = %q", q.EventName)
	}
	if q.ClientName != "Initech" {
		t.Fatalf("clientName = %q", q.ClientName)
	}
	if q.StartDate != "2024-06-15" || q.EndDate != "2024-06-15" {
		t.Fatalf("dates = %s..%s", q.StartDate, q.EndDate)
	}
	if q.Status != models.QuoteStatusDraft {
		t.Fatalf("status = %s", q.Status)
	}
	if len(q.Sections) != 1 || len(q.Sections[0].Items) != 2 {
		t.Fatalf("sections = %+v", q.Sections)
	}
	items := q.Sections[0].Items
	if items[0].Name != "Camera" || items[0].Quantity != 2 || items[0].Days != 1 {
		t.Fatalf("item 0 = %+v", items[0])
	}
	if items[1].Name != "Sound Kit" || items[1].Quantity != 1 {
		t.Fatalf("item 1 = %+v", items[1])
	}
	if items[0].ID == "" || items[0].ID == items[1].ID {
		t.Fatal("items need distinct ids")
	}
}

func TestParseInquiryLongFirstLine(t *testing.T) {
	q := ParseInquiry(strings.Repeat("a", 80), parseNow)
	if len(q.EventName) != 50 {
		t.Fatalf("eventName length = %d, want capped at 50", len(q.EventName))
	}
}

func TestParseInquiryNoItems(t *testing.T) {
	q := ParseInquiry("just a question about pricing", parseNow)
	if len(q.Sections) != 0 {
		t.Fatalf("expected no sections, got %+v", q.Sections)
	}
	if q.Total != 0 {
		t.Fatalf("total = %v", q.Total)
	}
}

func TestParseInquiryEmpty(t *testing.T) {
	q := ParseInquiry("", parseNow)
	if q.EventName != "New Event" || q.ClientName != "Detected Client" {
		t.Fatalf("defaults missing: %+v", q)
	}
}

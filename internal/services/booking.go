// Package services implements the operations behind the HTTP surface:
// quote approval with remote booking mirroring, warehouse pack tracking,
// inquiry parsing, and outbound notifications.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/avquote/backend/internal/models"
	"github.com/avquote/backend/internal/shelf"
	"github.com/avquote/backend/internal/store"
)

// BookingService transitions a quote from Draft to Approved and mirrors
// each equipment-linked line item into the remote Booking table.
type BookingService struct {
	store    store.Store
	shelf    *shelf.Client // nil when the remote backend is not configured
	notifier *Notifier
	// fallbackWebhook is used when the settings document carries no
	// webhook of its own.
	fallbackWebhook string
}

func NewBookingService(s store.Store, client *shelf.Client, notifier *Notifier, fallbackWebhook string) *BookingService {
	return &BookingService{store: s, shelf: client, notifier: notifier, fallbackWebhook: fallbackWebhook}
}

// BookingError reports one line item whose remote booking failed.
type BookingError struct {
	ItemID string `json:"itemId"`
	Error  string `json:"error"`
}

// ApprovalResult carries the locally approved quote plus the per-item
// outcome of the remote mirroring. Partial is true when at least one item
// failed while others succeeded.
type ApprovalResult struct {
	Quote    models.Quote   `json:"quote"`
	Bookings []shelf.Row    `json:"bookings"`
	Errors   []BookingError `json:"errors,omitempty"`
}

func (r *ApprovalResult) Partial() bool { return len(r.Errors) > 0 }

// Approve loads the quote, submits one Booking insert per equipment-linked
// item (sequentially, never aborting on a failed item), then marks the
// quote Approved and persists it regardless of the per-item outcomes. Only
// an unreachable remote layer - an unconfigured client - fails the whole
// operation without touching the quote. The follow-up notification is fire
// and forget.
func (s *BookingService) Approve(ctx context.Context, quoteID string) (*ApprovalResult, error) {
	if s.shelf == nil {
		return nil, fmt.Errorf("approve quote %s: remote booking backend %w", quoteID, store.ErrNotConfigured)
	}

	var quotes []models.Quote
	if err := s.store.Load(ctx, store.CollectionQuotes, &quotes); err != nil {
		return nil, fmt.Errorf("approve quote %s: %w", quoteID, err)
	}
	idx := -1
	for i := range quotes {
		if quotes[i].ID == quoteID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("approve quote %s: %w", quoteID, store.ErrNotFound)
	}
	quote := &quotes[idx]

	result := &ApprovalResult{Bookings: []shelf.Row{}}
	for si := range quote.Sections {
		for ii := range quote.Sections[si].Items {
			item := &quote.Sections[si].Items[ii]
			if item.EquipmentID == "" {
				continue
			}
			payload := shelf.Row{
				"assetId":   item.EquipmentID,
				"startDate": quote.StartDate,
				"endDate":   quote.EndDate,
				"notes":     fmt.Sprintf("Booked via AV Quote Pro for %s", quote.EventName),
				"status":    "CONFIRMED",
			}
			created, err := s.shelf.Insert(ctx, "Booking", []shelf.Row{payload})
			if err != nil {
				slog.Error("failed to book item", "quote", quoteID, "item", item.ID, "name", item.Name, "error", err)
				result.Errors = append(result.Errors, BookingError{ItemID: item.ID, Error: err.Error()})
				continue
			}
			result.Bookings = append(result.Bookings, created...)
		}
	}

	// Approval is a local state change, independent of the remote
	// mirroring outcome.
	quote.Status = models.QuoteStatusApproved
	if err := s.store.Save(ctx, store.CollectionQuotes, quotes); err != nil {
		return nil, fmt.Errorf("approve quote %s: persist: %w", quoteID, err)
	}
	result.Quote = *quote

	if err := s.notifier.Send(ctx, s.webhookURL(ctx), approvalMessage(quote)); err != nil {
		slog.Warn("approval notification failed", "quote", quoteID, "error", err)
	}
	return result, nil
}

// webhookURL prefers the live settings document so operators can change
// the webhook without a restart.
func (s *BookingService) webhookURL(ctx context.Context) string {
	var settings models.Settings
	if err := s.store.Load(ctx, store.CollectionSettings, &settings); err == nil && settings.MattermostWebhookURL != "" {
		return settings.MattermostWebhookURL
	}
	return s.fallbackWebhook
}

func approvalMessage(q *models.Quote) string {
	return fmt.Sprintf("### :rocket: New Job Approved: %s\n**Client:** %s\n**Date:** %s - %s\n**Total:** $%.2f",
		q.EventName, q.ClientName, q.StartDate, q.EndDate, q.Total)
}

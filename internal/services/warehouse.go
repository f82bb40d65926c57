package services

import (
	"context"
	"fmt"
	"math"

	"github.com/avquote/backend/internal/models"
	"github.com/avquote/backend/internal/store"
)

// WarehouseService tracks which line items have been physically staged for
// an event. State lives on the quote document itself.
type WarehouseService struct {
	store store.Store
}

func NewWarehouseService(s store.Store) *WarehouseService {
	return &WarehouseService{store: s}
}

// TogglePack flips the packed flag on exactly one item and persists the
// whole quote document. Returns the updated quote and the new progress.
func (s *WarehouseService) TogglePack(ctx context.Context, quoteID, sectionID, itemID string) (*models.Quote, int, error) {
	var quotes []models.Quote
	if err := s.store.Load(ctx, store.CollectionQuotes, &quotes); err != nil {
		return nil, 0, fmt.Errorf("toggle pack: %w", err)
	}
	for qi := range quotes {
		if quotes[qi].ID != quoteID {
			continue
		}
		quote := &quotes[qi]
		for si := range quote.Sections {
			if quote.Sections[si].ID != sectionID {
				continue
			}
			for ii := range quote.Sections[si].Items {
				item := &quote.Sections[si].Items[ii]
				if item.ID != itemID {
					continue
				}
				item.Packed = !item.Packed
				if err := s.store.Save(ctx, store.CollectionQuotes, quotes); err != nil {
					return nil, 0, fmt.Errorf("toggle pack: persist: %w", err)
				}
				return quote, Progress(quote), nil
			}
		}
		return nil, 0, fmt.Errorf("toggle pack: item %s/%s: %w", sectionID, itemID, store.ErrNotFound)
	}
	return nil, 0, fmt.Errorf("toggle pack: quote %s: %w", quoteID, store.ErrNotFound)
}

// Progress is the packed percentage across all sections, rounded, and 0
// for a quote with no items.
func Progress(q *models.Quote) int {
	var total, packed int
	for _, sec := range q.Sections {
		for _, it := range sec.Items {
			total++
			if it.Packed {
				packed++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(packed) / float64(total) * 100))
}

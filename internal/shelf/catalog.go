package shelf

import (
	"context"
	"fmt"

	"github.com/avquote/backend/internal/models"
)

// ListAssets reads the bookable subset of the remote Asset table and maps
// it to the local equipment vocabulary: title -> name, valuation -> daily
// price (nil valuation reads as 0).
func (c *Client) ListAssets(ctx context.Context) ([]models.Equipment, error) {
	rows, err := c.Select(ctx, "Asset", "id,title,description,valuation,status",
		map[string]string{"availableToBook": "true"}, 0)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	equipment := make([]models.Equipment, 0, len(rows))
	for _, row := range rows {
		equipment = append(equipment, models.Equipment{
			ID:          str(row["id"]),
			Name:        str(row["title"]),
			Description: str(row["description"]),
			DailyPrice:  num(row["valuation"]),
			Status:      str(row["status"]),
		})
	}
	return equipment, nil
}

// SchemaProbe reports which of the candidate reservation tables exists on
// this deployment, with one sample row. Booking is tried first, then the
// names other asset systems use.
type SchemaProbe struct {
	Table  string `json:"table"`
	Sample []Row  `json:"sample"`
}

func (c *Client) ProbeSchema(ctx context.Context) (*SchemaProbe, error) {
	var lastErr error
	for _, table := range []string{"Booking", "Reservation", "Action"} {
		rows, err := c.Select(ctx, table, "*", nil, 1)
		if err != nil {
			lastErr = err
			continue
		}
		return &SchemaProbe{Table: table, Sample: rows}, nil
	}
	return nil, fmt.Errorf("no booking-like table found: %w", lastErr)
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func num(v any) float64 {
	f, _ := v.(float64)
	return f
}

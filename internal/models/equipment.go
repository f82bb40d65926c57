package models

// Equipment is one rentable catalog entry. When the catalog is served from
// the remote asset table the fields are mapped from the remote vocabulary
// (title -> Name, valuation -> DailyPrice) by the shelf package.
type Equipment struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	DailyPrice  float64 `json:"dailyPrice"`
	Status      string  `json:"status,omitempty"`
}

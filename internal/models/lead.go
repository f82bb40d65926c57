package models

// Lead statuses. New leads move to Processed when converted into a quote
// (manually or through the parse endpoint); Archived is terminal.
const (
	LeadStatusNew       = "New"
	LeadStatusProcessed = "Processed"
	LeadStatusArchived  = "Archived"
)

// Lead is a raw customer inquiry awaiting conversion into a quote.
type Lead struct {
	ID        string `json:"id"`
	Source    string `json:"source"`
	Content   string `json:"content"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

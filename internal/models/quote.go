package models

// Quote statuses. A quote is created Draft and only becomes Approved
// through the booking bridge.
const (
	QuoteStatusDraft    = "Draft"
	QuoteStatusApproved = "Approved"
)

// Line item types.
const (
	ItemTypeEquipment = "Equipment"
	ItemTypeLabor     = "Labor"
	ItemTypeLogistics = "Logistics"
	ItemTypeOther     = "Other"
)

// QuoteItem is a single rentable unit or service line inside a section.
// Total and TotalCost are derived fields (quantity*days*pricePerDay and
// quantity*days*costPerDay). The pricing package recomputes them whenever
// one of the four inputs changes; they are never set directly.
type QuoteItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Quantity    float64 `json:"quantity"`
	Days        float64 `json:"days"`
	PricePerDay float64 `json:"pricePerDay"`
	CostPerDay  float64 `json:"costPerDay"`
	Total       float64 `json:"total"`
	TotalCost   float64 `json:"totalCost"`
	// EquipmentID is a soft reference into the equipment catalog. It may
	// dangle if the referenced asset is later removed; the booking bridge
	// only requires it to be non-empty.
	EquipmentID string `json:"equipmentId,omitempty"`
	Note        string `json:"note,omitempty"`
	Packed      bool   `json:"packed,omitempty"`
	IsExternal  bool   `json:"isExternal,omitempty"`
	Supplier    string `json:"supplier,omitempty"`
}

// QuoteSection groups line items under a name ("Video", "Audio", ...).
// When StartDate and EndDate are both set and parseable, every contained
// item's Days is derived from that range; otherwise items follow the
// quote's global date range.
type QuoteSection struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	StartDate string      `json:"startDate,omitempty"`
	EndDate   string      `json:"endDate,omitempty"`
	Items     []QuoteItem `json:"items"`
}

// Quote is the pricing document for one client event. Total and TotalCost
// are derived from the sections (minus Discount) by pricing.RecomputeTotals.
type Quote struct {
	ID         string         `json:"id"`
	EventName  string         `json:"eventName"`
	ClientName string         `json:"clientName"`
	PrepDate   string         `json:"prepDate,omitempty"`
	StartDate  string         `json:"startDate"`
	EndDate    string         `json:"endDate"`
	Sections   []QuoteSection `json:"sections"`
	Discount   float64        `json:"discount"`
	Currency   string         `json:"currency"`
	Total      float64        `json:"total"`
	TotalCost  float64        `json:"totalCost"`
	Status     string         `json:"status"`
	Staff      []string       `json:"staff,omitempty"`

	// Production sub-documents, edited as a unit from the production screen.
	Venue       *Venue              `json:"venue,omitempty"`
	Schedule    []ScheduleItem      `json:"schedule,omitempty"`
	Contacts    []ProductionContact `json:"contacts,omitempty"`
	Vehicles    []Vehicle           `json:"vehicles,omitempty"`
	Attachments []Attachment        `json:"attachments,omitempty"`
}

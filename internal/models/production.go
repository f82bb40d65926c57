package models

// Production logistics sub-documents attached to a quote. These are
// free-form operator input; nothing here feeds the pricing engine.

type Venue struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	LoadInNotes string `json:"loadInNotes,omitempty"`
	ParkingInfo string `json:"parkingInfo,omitempty"`
	PowerInfo   string `json:"powerInfo,omitempty"`
	Weather     string `json:"weather,omitempty"`
}

type ScheduleItem struct {
	ID    string `json:"id"`
	Time  string `json:"time"`
	Title string `json:"title"`
	Notes string `json:"notes,omitempty"`
}

type ProductionContact struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
}

type Vehicle struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Plate       string `json:"plate"`
	DriverName  string `json:"driverName"`
	DriverPhone string `json:"driverPhone"`
}

type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

package models

// CrewMember is an entry in the crew/contact directory.
type CrewMember struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Role                string  `json:"role"`
	Phone               string  `json:"phone"`
	Email               string  `json:"email"`
	HourlyRate          float64 `json:"hourlyRate"`
	DietaryRestrictions string  `json:"dietaryRestrictions,omitempty"`
}

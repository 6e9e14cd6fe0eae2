package models

// Trip is a bookable offering. The front end only reads trips.
type Trip struct {
	ID          ID      `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Duration    string  `json:"duration"`
	Price       float64 `json:"price"`
}

// Availability is the answer to a date-scoped capacity query.
type Availability struct {
	Available     bool `json:"available"`
	AvailableVans int  `json:"availableVans,omitempty"`
	TotalVans     int  `json:"totalVans,omitempty"`
}

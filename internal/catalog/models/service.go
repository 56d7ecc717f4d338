package models

// Service is a priced catalog entry for a clinic procedure.
type Service struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,omitempty"`
	Duration    string  `json:"duration,omitempty"`
}

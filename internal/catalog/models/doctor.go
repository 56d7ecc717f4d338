package models

// Doctor is a practitioner listed in the catalog and bookable for appointments.
type Doctor struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization,omitempty"`
	Experience     int    `json:"experience,omitempty"`
	Education      string `json:"education,omitempty"`
	Bio            string `json:"bio,omitempty"`
	PhotoURL       string `json:"photo_url,omitempty"`
	Schedule       string `json:"schedule,omitempty"`
}

package db

import "time"

// Reservation mirrors one row of the reservations table.
type Reservation struct {
	ID          int64     `json:"id"`
	SubjectName string    `json:"subject_name"`
	Contact     string    `json:"contact"`
	Resource    string    `json:"resource"`
	Category    string    `json:"category"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

package entities

import "time"

// BookingConfirmation is the outcome of a successful book call. ID is the
// source of truth; Code is the display token and is never parsed back.
type BookingConfirmation struct {
	ID          int64     `json:"id"`
	Code        string    `json:"confirmation_code"`
	SubjectName string    `json:"subject_name"`
	Resource    string    `json:"resource"`
	Category    string    `json:"category"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	CreatedAt   time.Time `json:"created_at"`
}

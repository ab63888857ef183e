package entities

import (
	"time"

	apperrors "turnero/internal/errors"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Slot is one bookable unit. Two bookings conflict iff their slots are equal;
// category is intentionally not part of slot identity.
type Slot struct {
	Resource string `json:"resource"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

func (s Slot) Conflicts(other Slot) bool {
	return s == other
}

// SlotRequest carries the fields of a booking request.
type SlotRequest struct {
	SubjectName string `json:"subject_name"`
	Contact     string `json:"contact"`
	Resource    string `json:"resource"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Notes       string `json:"notes,omitempty"`
}

func (r SlotRequest) Slot() Slot {
	return Slot{Resource: r.Resource, Date: r.Date, Time: r.Time}
}

// Validate checks required fields in a fixed order and reports the first
// offending one.
func (r SlotRequest) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"subject_name", r.SubjectName},
		{"contact", r.Contact},
		{"resource", r.Resource},
		{"category", r.Category},
		{"date", r.Date},
		{"time", r.Time},
	}
	for _, f := range required {
		if f.value == "" {
			return apperrors.MalformedRequest(f.field, "must not be empty")
		}
	}
	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		return apperrors.MalformedRequest("date", "must be a calendar date in YYYY-MM-DD form")
	}
	if _, err := time.Parse(TimeLayout, r.Time); err != nil {
		return apperrors.MalformedRequest("time", "must be a 24-hour clock time in HH:MM form")
	}
	return nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"turnero/internal/entities"
	apperrors "turnero/internal/errors"
)

type AvailabilityService struct {
	ledger Ledger
	log    *zap.Logger
}

func NewAvailabilityService(ledger Ledger, log *zap.Logger) *AvailabilityService {
	return &AvailabilityService{ledger: ledger, log: log}
}

// CheckAvailability reports whether the exact slot is free and proposes up to
// two nearby times. The proposals are a hint for the caller to read back, not
// verified against the ledger.
func (s *AvailabilityService) CheckAvailability(ctx context.Context, resource, date, timeOfDay, category string) (*entities.AvailabilityReport, error) {
	switch {
	case resource == "":
		return nil, apperrors.MalformedRequest("resource", "must not be empty")
	case category == "":
		return nil, apperrors.MalformedRequest("category", "must not be empty")
	}
	if _, err := time.Parse(entities.DateLayout, date); err != nil {
		return nil, apperrors.MalformedRequest("date", "must be a calendar date in YYYY-MM-DD form")
	}
	requested, err := time.Parse(entities.TimeLayout, timeOfDay)
	if err != nil {
		return nil, apperrors.MalformedRequest("time", "must be a 24-hour clock time in HH:MM form")
	}

	booked, err := s.ledger.SlotBooked(ctx, resource, date, timeOfDay)
	if err != nil {
		s.log.Error("availability probe failed", zap.String("resource", resource),
			zap.String("date", date), zap.Error(err))
		return nil, err
	}

	return &entities.AvailabilityReport{
		Resource:       resource,
		Category:       category,
		Date:           date,
		RequestedTime:  timeOfDay,
		Available:      !booked,
		SuggestedTimes: suggestTimes(requested),
	}, nil
}

// suggestTimes returns the requested time followed by the ±1 hour offsets,
// clamped to the 0-23 hour range and deduplicated after clamping.
func suggestTimes(requested time.Time) []string {
	suggestions := []string{requested.Format(entities.TimeLayout)}
	seen := map[string]bool{suggestions[0]: true}

	for _, offset := range []int{-1, 1} {
		hour := requested.Hour() + offset
		if hour < 0 {
			hour = 0
		}
		if hour > 23 {
			hour = 23
		}
		candidate := fmt.Sprintf("%02d:%02d", hour, requested.Minute())
		if !seen[candidate] {
			seen[candidate] = true
			suggestions = append(suggestions, candidate)
		}
	}
	return suggestions
}

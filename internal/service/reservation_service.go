package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"turnero/internal/db"
	"turnero/internal/entities"
	apperrors "turnero/internal/errors"
	"turnero/internal/repository"
)

// confirmationTag prefixes the display form of a confirmation id. The display
// token is presentation only; the numeric id is the source of truth.
const confirmationTag = "CNF"

// Ledger is the slice of the reservation repository the services need.
type Ledger interface {
	Book(ctx context.Context, req entities.SlotRequest) (*db.Reservation, error)
	SlotBooked(ctx context.Context, resource, date, timeOfDay string) (bool, error)
	Cancel(ctx context.Context, subjectName, contact, date string) (int64, error)
	List(ctx context.Context, order repository.ListOrder) ([]db.Reservation, error)
}

type ReservationService struct {
	ledger Ledger
	log    *zap.Logger
}

func NewReservationService(ledger Ledger, log *zap.Logger) *ReservationService {
	return &ReservationService{ledger: ledger, log: log}
}

// Book validates the request and records it in the ledger. A held slot comes
// back as ErrSlotTaken, malformed input as a MalformedRequestError; both are
// expected outcomes for the caller to narrate, not faults.
func (s *ReservationService) Book(ctx context.Context, req entities.SlotRequest) (*entities.BookingConfirmation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	res, err := s.ledger.Book(ctx, req)
	if err != nil {
		if apperrors.IsStorage(err) {
			s.log.Error("booking failed", zap.String("resource", req.Resource),
				zap.String("date", req.Date), zap.String("time", req.Time), zap.Error(err))
		}
		return nil, err
	}

	s.log.Info("reservation booked",
		zap.Int64("id", res.ID),
		zap.String("resource", res.Resource),
		zap.String("date", res.Date),
		zap.String("time", res.Time))

	return &entities.BookingConfirmation{
		ID:          res.ID,
		Code:        FormatConfirmation(res.ID),
		SubjectName: res.SubjectName,
		Resource:    res.Resource,
		Category:    res.Category,
		Date:        res.Date,
		Time:        res.Time,
		CreatedAt:   res.CreatedAt,
	}, nil
}

// Cancel removes every reservation matching (subject_name, contact, date) and
// returns how many were removed. Matching deliberately ignores resource and
// time: one call clears the whole day for that requester.
func (s *ReservationService) Cancel(ctx context.Context, subjectName, contact, date string) (int64, error) {
	switch {
	case subjectName == "":
		return 0, apperrors.MalformedRequest("subject_name", "must not be empty")
	case contact == "":
		return 0, apperrors.MalformedRequest("contact", "must not be empty")
	case date == "":
		return 0, apperrors.MalformedRequest("date", "must not be empty")
	}

	count, err := s.ledger.Cancel(ctx, subjectName, contact, date)
	if err != nil {
		s.log.Error("cancel failed", zap.String("date", date), zap.Error(err))
		return 0, err
	}

	s.log.Info("reservations cancelled", zap.Int64("count", count), zap.String("date", date))
	return count, nil
}

// List returns all active reservations in the requested order.
func (s *ReservationService) List(ctx context.Context, order repository.ListOrder) ([]db.Reservation, error) {
	return s.ledger.List(ctx, order)
}

// FormatConfirmation renders a ledger id as its display token, e.g. CNF0012.
func FormatConfirmation(id int64) string {
	return fmt.Sprintf("%s%04d", confirmationTag, id)
}

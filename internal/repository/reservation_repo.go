package repository

import (
	"context"
	"database/sql"
	stderrors "errors"

	"turnero/internal/db"
	"turnero/internal/entities"
	apperrors "turnero/internal/errors"
)

// ListOrder selects the ordering of List results.
type ListOrder string

const (
	OrderBySlot    ListOrder = "slot"    // (date, time) ascending
	OrderByCreated ListOrder = "created" // created_at descending
)

// ReservationRepository is the reservation ledger: the single authority for
// the one-active-reservation-per-slot invariant.
type ReservationRepository struct {
	DB *sql.DB
}

func NewReservationRepository(db *sql.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

// Book inserts a reservation unless the slot is already held. The conflict
// check and the insert are a single statement, so two concurrent calls on the
// same slot resolve in the database: one row wins, the other sees no row.
func (r *ReservationRepository) Book(ctx context.Context, req entities.SlotRequest) (*db.Reservation, error) {
	query := `
		INSERT INTO reservations (subject_name, contact, resource, category, date, time, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (resource, date, time) DO NOTHING
		RETURNING id, created_at`

	res := &db.Reservation{
		SubjectName: req.SubjectName,
		Contact:     req.Contact,
		Resource:    req.Resource,
		Category:    req.Category,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
	}
	err := r.DB.QueryRowContext(ctx, query,
		req.SubjectName, req.Contact, req.Resource, req.Category, req.Date, req.Time, req.Notes,
	).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		// ON CONFLICT DO NOTHING suppresses the row, so a held slot
		// always surfaces here as sql.ErrNoRows from RETURNING.
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrSlotTaken
		}
		return nil, apperrors.Storage(err)
	}
	return res, nil
}

// SlotBooked reports whether an active reservation holds the exact slot.
func (r *ReservationRepository) SlotBooked(ctx context.Context, resource, date, timeOfDay string) (bool, error) {
	var booked bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM reservations WHERE resource = $1 AND date = $2 AND time = $3)`,
		resource, date, timeOfDay,
	).Scan(&booked)
	if err != nil {
		return false, apperrors.Storage(err)
	}
	return booked, nil
}

// Cancel removes every reservation matching the triple exactly and returns
// the count removed. Zero matches is a normal outcome, not an error.
func (r *ReservationRepository) Cancel(ctx context.Context, subjectName, contact, date string) (int64, error) {
	result, err := r.DB.ExecContext(ctx,
		`DELETE FROM reservations WHERE subject_name = $1 AND contact = $2 AND date = $3`,
		subjectName, contact, date,
	)
	if err != nil {
		return 0, apperrors.Storage(err)
	}
	count, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Storage(err)
	}
	return count, nil
}

// List returns all active reservations in the requested order.
func (r *ReservationRepository) List(ctx context.Context, order ListOrder) ([]db.Reservation, error) {
	query := `
		SELECT id, subject_name, contact, resource, category, date, time, notes, created_at
		FROM reservations `
	switch order {
	case OrderByCreated:
		query += `ORDER BY created_at DESC`
	default:
		query += `ORDER BY date ASC, time ASC`
	}

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	defer rows.Close()

	var reservations []db.Reservation
	for rows.Next() {
		var res db.Reservation
		if err := rows.Scan(
			&res.ID, &res.SubjectName, &res.Contact, &res.Resource,
			&res.Category, &res.Date, &res.Time, &res.Notes, &res.CreatedAt,
		); err != nil {
			return nil, apperrors.Storage(err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage(err)
	}
	return reservations, nil
}

// PurgeBefore deletes reservations dated strictly before the given ISO date.
// Dates compare correctly as strings in YYYY-MM-DD form.
func (r *ReservationRepository) PurgeBefore(ctx context.Context, date string) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM reservations WHERE date < $1`, date)
	if err != nil {
		return 0, apperrors.Storage(err)
	}
	count, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Storage(err)
	}
	return count, nil
}

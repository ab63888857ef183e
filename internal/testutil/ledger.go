// Package testutil provides in-memory doubles shared by package tests.
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"turnero/internal/db"
	"turnero/internal/entities"
	apperrors "turnero/internal/errors"
	"turnero/internal/repository"
)

// FakeLedger mimics the reservation repository's arbitration semantics in
// memory: one reservation per slot, ids assigned in insert order. Setting Err
// before use makes every method fail with it, for storage-fault paths.
type FakeLedger struct {
	mu     sync.Mutex
	nextID int64
	rows   map[entities.Slot]db.Reservation

	Err error
}

func NewFakeLedger() *FakeLedger {
	return &FakeLedger{rows: make(map[entities.Slot]db.Reservation)}
}

func (f *FakeLedger) Book(ctx context.Context, req entities.SlotRequest) (*db.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}

	slot := req.Slot()
	if _, taken := f.rows[slot]; taken {
		return nil, apperrors.ErrSlotTaken
	}

	f.nextID++
	res := db.Reservation{
		ID:          f.nextID,
		SubjectName: req.SubjectName,
		Contact:     req.Contact,
		Resource:    req.Resource,
		Category:    req.Category,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
		CreatedAt:   time.Now().UTC(),
	}
	f.rows[slot] = res
	return &res, nil
}

func (f *FakeLedger) SlotBooked(ctx context.Context, resource, date, timeOfDay string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Err != nil {
		return false, f.Err
	}
	_, booked := f.rows[entities.Slot{Resource: resource, Date: date, Time: timeOfDay}]
	return booked, nil
}

func (f *FakeLedger) Cancel(ctx context.Context, subjectName, contact, date string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Err != nil {
		return 0, f.Err
	}

	var count int64
	for slot, res := range f.rows {
		if res.SubjectName == subjectName && res.Contact == contact && res.Date == date {
			delete(f.rows, slot)
			count++
		}
	}
	return count, nil
}

func (f *FakeLedger) List(ctx context.Context, order repository.ListOrder) ([]db.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}

	out := make([]db.Reservation, 0, len(f.rows))
	for _, res := range f.rows {
		out = append(out, res)
	}
	switch order {
	case repository.OrderByCreated:
		sort.Slice(out, func(i, j int) bool {
			if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
				return out[i].CreatedAt.After(out[j].CreatedAt)
			}
			return out[i].ID > out[j].ID
		})
	default:
		sort.Slice(out, func(i, j int) bool {
			if out[i].Date != out[j].Date {
				return out[i].Date < out[j].Date
			}
			if out[i].Time != out[j].Time {
				return out[i].Time < out[j].Time
			}
			return out[i].ID < out[j].ID
		})
	}
	return out, nil
}

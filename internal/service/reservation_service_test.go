package service_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"turnero/internal/entities"
	apperrors "turnero/internal/errors"
	"turnero/internal/repository"
	"turnero/internal/service"
	"turnero/internal/testutil"
)

func validRequest() entities.SlotRequest {
	return entities.SlotRequest{
		SubjectName: "Jane Doe",
		Contact:     "+15551234567",
		Resource:    "Dr. Smith",
		Category:    "Primary Care",
		Date:        "2025-03-10",
		Time:        "14:00",
	}
}

func TestBookReturnsConfirmation(t *testing.T) {
	svc := service.NewReservationService(testutil.NewFakeLedger(), zap.NewNop())

	conf, err := svc.Book(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), conf.ID)
	assert.Equal(t, "CNF0001", conf.Code)
	assert.Equal(t, "Jane Doe", conf.SubjectName)
	assert.Equal(t, "Dr. Smith", conf.Resource)
}

func TestBookRejectsMalformedRequest(t *testing.T) {
	svc := service.NewReservationService(testutil.NewFakeLedger(), zap.NewNop())

	req := validRequest()
	req.Date = "next tuesday"
	_, err := svc.Book(context.Background(), req)
	assert.True(t, apperrors.IsMalformedRequest(err))
}

func TestBookSameSlotTwice(t *testing.T) {
	svc := service.NewReservationService(testutil.NewFakeLedger(), zap.NewNop())

	_, err := svc.Book(context.Background(), validRequest())
	require.NoError(t, err)

	second := validRequest()
	second.SubjectName = "John Roe"
	second.Contact = "+15557654321"
	_, err = svc.Book(context.Background(), second)
	assert.True(t, apperrors.IsSlotTaken(err))
}

func TestBookDifferentCategorySameSlotStillConflicts(t *testing.T) {
	svc := service.NewReservationService(testutil.NewFakeLedger(), zap.NewNop())

	_, err := svc.Book(context.Background(), validRequest())
	require.NoError(t, err)

	second := validRequest()
	second.Category = "Dermatology"
	_, err = svc.Book(context.Background(), second)
	assert.True(t, apperrors.IsSlotTaken(err))
}

func TestConfirmationIDsIncrease(t *testing.T) {
	svc := service.NewReservationService(testutil.NewFakeLedger(), zap.NewNop())

	var lastID int64
	for _, tm := range []string{"09:00", "10:00", "11:00"} {
		req := validRequest()
		req.Time = tm
		conf, err := svc.Book(context.Background(), req)
		require.NoError(t, err)
		assert.Greater(t, conf.ID, lastID)
		lastID = conf.ID
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	svc := service.NewReservationService(testutil.NewFakeLedger(), zap.NewNop())

	_, err := svc.Book(context.Background(), validRequest())
	require.NoError(t, err)

	count, err := svc.Cancel(context.Background(), "Jane Doe", "+15551234567", "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = svc.Cancel(context.Background(), "Jane Doe", "+15551234567", "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestCancelMatchesWholeDayAcrossResources(t *testing.T) {
	svc := service.NewReservationService(testutil.NewFakeLedger(), zap.NewNop())

	first := validRequest()
	second := validRequest()
	second.Resource = "Dr. Johnson"
	second.Time = "16:00"

	_, err := svc.Book(context.Background(), first)
	require.NoError(t, err)
	_, err = svc.Book(context.Background(), second)
	require.NoError(t, err)

	count, err := svc.Cancel(context.Background(), "Jane Doe", "+15551234567", "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestCancelMatchingIsCaseSensitive(t *testing.T) {
	svc := service.NewReservationService(testutil.NewFakeLedger(), zap.NewNop())

	_, err := svc.Book(context.Background(), validRequest())
	require.NoError(t, err)

	count, err := svc.Cancel(context.Background(), "jane doe", "+15551234567", "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestCancelRejectsEmptyFields(t *testing.T) {
	svc := service.NewReservationService(testutil.NewFakeLedger(), zap.NewNop())

	_, err := svc.Cancel(context.Background(), "", "+15551234567", "2025-03-10")
	assert.True(t, apperrors.IsMalformedRequest(err))

	_, err = svc.Cancel(context.Background(), "Jane Doe", "", "2025-03-10")
	assert.True(t, apperrors.IsMalformedRequest(err))

	_, err = svc.Cancel(context.Background(), "Jane Doe", "+15551234567", "")
	assert.True(t, apperrors.IsMalformedRequest(err))
}

func TestBookPropagatesStorageFaults(t *testing.T) {
	ledger := testutil.NewFakeLedger()
	ledger.Err = apperrors.Storage(stderrors.New("pq: connection refused"))
	svc := service.NewReservationService(ledger, zap.NewNop())

	_, err := svc.Book(context.Background(), validRequest())
	require.Error(t, err)
	assert.True(t, apperrors.IsStorage(err))
	assert.Equal(t, "storage unavailable", err.Error())
}

func TestCancelPropagatesStorageFaults(t *testing.T) {
	ledger := testutil.NewFakeLedger()
	ledger.Err = apperrors.Storage(stderrors.New("pq: connection refused"))
	svc := service.NewReservationService(ledger, zap.NewNop())

	_, err := svc.Cancel(context.Background(), "Jane Doe", "+15551234567", "2025-03-10")
	require.Error(t, err)
	assert.True(t, apperrors.IsStorage(err))
}

func TestListOrderings(t *testing.T) {
	svc := service.NewReservationService(testutil.NewFakeLedger(), zap.NewNop())

	later := validRequest()
	later.Date = "2025-03-12"
	earlier := validRequest()
	earlier.Date = "2025-03-10"

	_, err := svc.Book(context.Background(), later)
	require.NoError(t, err)
	_, err = svc.Book(context.Background(), earlier)
	require.NoError(t, err)

	bySlot, err := svc.List(context.Background(), repository.OrderBySlot)
	require.NoError(t, err)
	require.Len(t, bySlot, 2)
	assert.Equal(t, "2025-03-10", bySlot[0].Date)

	byCreated, err := svc.List(context.Background(), repository.OrderByCreated)
	require.NoError(t, err)
	require.Len(t, byCreated, 2)
	assert.True(t, !byCreated[0].CreatedAt.Before(byCreated[1].CreatedAt))
}

func TestFormatConfirmation(t *testing.T) {
	assert.Equal(t, "CNF0007", service.FormatConfirmation(7))
	assert.Equal(t, "CNF0042", service.FormatConfirmation(42))
	assert.Equal(t, "CNF12345", service.FormatConfirmation(12345))
}

package reservation

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	domainReservation "reservation-api/internal/domain/reservation"
	"reservation-api/internal/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init("production"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// fakeReservationRepo keeps reservations in memory and mirrors the
// equality-only conflict semantics of the real repository.
type fakeReservationRepo struct {
	nextID       int64
	reservations []*domainReservation.Reservation
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{nextID: 1}
}

func (f *fakeReservationRepo) Create(_ context.Context, r *domainReservation.Reservation) error {
	r.ID = f.nextID
	f.nextID++
	r.CreatedAt = time.Now()
	r.UpdatedAt = time.Now()
	stored := *r
	f.reservations = append(f.reservations, &stored)
	return nil
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domainReservation.Reservation, error) {
	for _, r := range f.reservations {
		if r.ID == id {
			copied := *r
			return &copied, nil
		}
	}
	return nil, domainReservation.ErrReservationNotFound
}

func (f *fakeReservationRepo) Update(_ context.Context, id int64, fields map[string]interface{}) (*domainReservation.Reservation, error) {
	for _, r := range f.reservations {
		if r.ID == id {
			if v, ok := fields["time_block_id"]; ok {
				r.TimeBlockID = v.(int64)
			}
			if v, ok := fields["date_time"]; ok {
				r.DateTime = v.(time.Time)
			}
			r.UpdatedAt = time.Now()
			copied := *r
			return &copied, nil
		}
	}
	return nil, domainReservation.ErrReservationNotFound
}

func (f *fakeReservationRepo) Delete(_ context.Context, id int64) (*domainReservation.Reservation, error) {
	for i, r := range f.reservations {
		if r.ID == id {
			f.reservations = append(f.reservations[:i], f.reservations[i+1:]...)
			return r, nil
		}
	}
	return nil, domainReservation.ErrReservationNotFound
}

func (f *fakeReservationRepo) List(_ context.Context) ([]*domainReservation.Reservation, error) {
	return f.reservations, nil
}

func (f *fakeReservationRepo) HasConflict(_ context.Context, timeBlockID int64, dateTime time.Time, excludeID *int64) (bool, error) {
	for _, r := range f.reservations {
		if excludeID != nil && r.ID == *excludeID {
			continue
		}
		if r.TimeBlockID == timeBlockID && r.DateTime.Equal(dateTime) {
			return true, nil
		}
	}
	return false, nil
}

func int64Ptr(v int64) *int64 { return &v }

func strPtr(v string) *string { return &v }

func createRequest(block int64, dateTime string) *CreateReservationRequest {
	return &CreateReservationRequest{
		UserID:      uuid.New().String(),
		TimeBlockID: int64Ptr(block),
		DateTime:    dateTime,
	}
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(newFakeReservationRepo())

	tests := []struct {
		name    string
		req     *CreateReservationRequest
		wantErr error
	}{
		{"missing user", &CreateReservationRequest{TimeBlockID: int64Ptr(1), DateTime: "2026-09-01T10:00:00Z"}, domainReservation.ErrMissingFields},
		{"missing block", &CreateReservationRequest{UserID: uuid.New().String(), DateTime: "2026-09-01T10:00:00Z"}, domainReservation.ErrMissingFields},
		{"missing datetime", &CreateReservationRequest{UserID: uuid.New().String(), TimeBlockID: int64Ptr(1)}, domainReservation.ErrMissingFields},
		{"malformed datetime", createRequest(1, "not-a-date"), domainReservation.ErrInvalidDateTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCreateSlotConflict(t *testing.T) {
	svc := NewService(newFakeReservationRepo())

	first, err := svc.Create(context.Background(), createRequest(1, "2026-09-01T10:00:00Z"))
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if first.ID == 0 {
		t.Fatal("expected assigned id")
	}

	// Identical (timeBlockId, dateTime) pair conflicts.
	if _, err := svc.Create(context.Background(), createRequest(1, "2026-09-01T10:00:00Z")); !errors.Is(err, domainReservation.ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}

	// Same block at a different time does not.
	if _, err := svc.Create(context.Background(), createRequest(1, "2026-09-01T11:00:00Z")); err != nil {
		t.Fatalf("different time in same block: %v", err)
	}

	// Same time in a different block does not.
	if _, err := svc.Create(context.Background(), createRequest(2, "2026-09-01T10:00:00Z")); err != nil {
		t.Fatalf("same time in different block: %v", err)
	}
}

func TestUpdateConflictExcludesSelf(t *testing.T) {
	svc := NewService(newFakeReservationRepo())

	a, err := svc.Create(context.Background(), createRequest(1, "2026-09-01T10:00:00Z"))
	if err != nil {
		t.Fatalf("create a: %v", err)
	}
	b, err := svc.Create(context.Background(), createRequest(1, "2026-09-01T11:00:00Z"))
	if err != nil {
		t.Fatalf("create b: %v", err)
	}

	// Moving b onto a's slot fails.
	_, err = svc.Update(context.Background(), b.ID, &UpdateReservationRequest{DateTime: strPtr("2026-09-01T10:00:00Z")})
	if !errors.Is(err, domainReservation.ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}

	// Re-asserting a's own current slot succeeds: the check excludes the
	// reservation being updated.
	updated, err := svc.Update(context.Background(), a.ID, &UpdateReservationRequest{DateTime: strPtr("2026-09-01T10:00:00Z")})
	if err != nil {
		t.Fatalf("self update: %v", err)
	}
	if !updated.DateTime.Equal(a.DateTime) {
		t.Fatalf("date changed unexpectedly: %v vs %v", updated.DateTime, a.DateTime)
	}
}

func TestUpdateValidation(t *testing.T) {
	svc := NewService(newFakeReservationRepo())

	a, err := svc.Create(context.Background(), createRequest(1, "2026-09-01T10:00:00Z"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Update(context.Background(), a.ID, &UpdateReservationRequest{DateTime: strPtr("nonsense")}); !errors.Is(err, domainReservation.ErrInvalidDateTime) {
		t.Fatalf("expected ErrInvalidDateTime, got %v", err)
	}

	if _, err := svc.Update(context.Background(), 9999, &UpdateReservationRequest{DateTime: strPtr("2026-09-01T12:00:00Z")}); !errors.Is(err, domainReservation.ErrReservationNotFound) {
		t.Fatalf("expected ErrReservationNotFound, got %v", err)
	}

	// An empty partial update is a no-op, not an error.
	unchanged, err := svc.Update(context.Background(), a.ID, &UpdateReservationRequest{})
	if err != nil {
		t.Fatalf("empty update: %v", err)
	}
	if unchanged.ID != a.ID {
		t.Fatalf("expected id %d, got %d", a.ID, unchanged.ID)
	}
}

func TestUpdateMovesBlock(t *testing.T) {
	svc := NewService(newFakeReservationRepo())

	a, err := svc.Create(context.Background(), createRequest(1, "2026-09-01T10:00:00Z"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), a.ID, &UpdateReservationRequest{TimeBlockID: int64Ptr(2)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.TimeBlockID != 2 {
		t.Fatalf("expected block 2, got %d", updated.TimeBlockID)
	}
	if !updated.DateTime.Equal(a.DateTime) {
		t.Fatal("date should keep its existing value on a block-only update")
	}
}

func TestDelete(t *testing.T) {
	svc := NewService(newFakeReservationRepo())

	a, err := svc.Create(context.Background(), createRequest(1, "2026-09-01T10:00:00Z"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	deleted, err := svc.Delete(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.ID != a.ID {
		t.Fatalf("expected deleted id %d, got %d", a.ID, deleted.ID)
	}

	if _, err := svc.Get(context.Background(), a.ID); !errors.Is(err, domainReservation.ErrReservationNotFound) {
		t.Fatalf("expected ErrReservationNotFound after delete, got %v", err)
	}

	if _, err := svc.Delete(context.Background(), a.ID); !errors.Is(err, domainReservation.ErrReservationNotFound) {
		t.Fatalf("expected ErrReservationNotFound on double delete, got %v", err)
	}

	// The freed slot can be booked again.
	if _, err := svc.Create(context.Background(), createRequest(1, "2026-09-01T10:00:00Z")); err != nil {
		t.Fatalf("rebooking freed slot: %v", err)
	}
}

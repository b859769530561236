package timeblock

import (
	"context"
	"errors"
	"os"
	"testing"

	domainTimeblock "reservation-api/internal/domain/timeblock"
	"reservation-api/internal/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init("production"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type fakeTimeBlockRepo struct {
	nextID int64
	blocks []*domainTimeblock.TimeBlock
}

func (f *fakeTimeBlockRepo) Create(_ context.Context, b *domainTimeblock.TimeBlock) error {
	f.nextID++
	b.ID = f.nextID
	stored := *b
	f.blocks = append(f.blocks, &stored)
	return nil
}

func (f *fakeTimeBlockRepo) GetByID(_ context.Context, id int64) (*domainTimeblock.TimeBlock, error) {
	for _, b := range f.blocks {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, domainTimeblock.ErrTimeBlockNotFound
}

func (f *fakeTimeBlockRepo) List(_ context.Context) ([]*domainTimeblock.TimeBlock, error) {
	return f.blocks, nil
}

func TestCreateTimeBlock(t *testing.T) {
	svc := NewService(&fakeTimeBlockRepo{})

	block, err := svc.Create(context.Background(), &CreateTimeBlockRequest{
		StartTime: "2026-09-01T09:00:00Z",
		EndTime:   "2026-09-01T17:00:00Z",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if block.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if !block.EndTime.After(block.StartTime) {
		t.Fatal("end must follow start")
	}
}

func TestCreateTimeBlockValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     *CreateTimeBlockRequest
		wantErr error
	}{
		{"missing start", &CreateTimeBlockRequest{EndTime: "2026-09-01T17:00:00Z"}, domainTimeblock.ErrInvalidTime},
		{"malformed start", &CreateTimeBlockRequest{StartTime: "today", EndTime: "2026-09-01T17:00:00Z"}, domainTimeblock.ErrInvalidTime},
		{"malformed end", &CreateTimeBlockRequest{StartTime: "2026-09-01T09:00:00Z", EndTime: "tomorrow"}, domainTimeblock.ErrInvalidTime},
		{"end before start", &CreateTimeBlockRequest{StartTime: "2026-09-01T17:00:00Z", EndTime: "2026-09-01T09:00:00Z"}, domainTimeblock.ErrInvalidInterval},
		{"zero interval", &CreateTimeBlockRequest{StartTime: "2026-09-01T09:00:00Z", EndTime: "2026-09-01T09:00:00Z"}, domainTimeblock.ErrInvalidInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeTimeBlockRepo{})
			if _, err := svc.Create(context.Background(), tt.req); !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestListTimeBlocks(t *testing.T) {
	svc := NewService(&fakeTimeBlockRepo{})

	for _, span := range [][2]string{
		{"2026-09-01T09:00:00Z", "2026-09-01T12:00:00Z"},
		{"2026-09-01T13:00:00Z", "2026-09-01T17:00:00Z"},
	} {
		if _, err := svc.Create(context.Background(), &CreateTimeBlockRequest{StartTime: span[0], EndTime: span[1]}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	blocks, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
}

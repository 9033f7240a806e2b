package check_conflicts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Ferry-ScheduleService/internal/domain"
	"github.com/m04kA/Ferry-ScheduleService/internal/integrations/boatservice"
)

type scheduleRepoMock struct {
	getActiveByBoatAndDayFunc func(ctx context.Context, boatID int64, day time.Time) ([]*domain.Schedule, error)
}

func (m *scheduleRepoMock) GetActiveByBoatAndDay(ctx context.Context, boatID int64, day time.Time) ([]*domain.Schedule, error) {
	return m.getActiveByBoatAndDayFunc(ctx, boatID, day)
}

type boatClientMock struct {
	getBoatFunc func(ctx context.Context, boatID int64) (*boatservice.Boat, error)
}

func (m *boatClientMock) GetBoat(ctx context.Context, boatID int64) (*boatservice.Boat, error) {
	return m.getBoatFunc(ctx, boatID)
}

type loggerMock struct{}

func (m *loggerMock) Info(format string, v ...interface{})  {}
func (m *loggerMock) Warn(format string, v ...interface{})  {}
func (m *loggerMock) Error(format string, v ...interface{}) {}

func validRequest() *Request {
	return &Request{
		OwnerID: 1,
		BoatID:  5,
		Date:    time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		Segments: []SegmentInput{
			{OriginStop: "Male", DestStop: "HA.Dhidhdhoo", DepartureTime: "10:00", ArrivalTime: "11:00"},
		},
	}
}

func TestUseCase_Execute_NoConflicts(t *testing.T) {
	scheduleRepo := &scheduleRepoMock{
		getActiveByBoatAndDayFunc: func(ctx context.Context, boatID int64, day time.Time) ([]*domain.Schedule, error) {
			return nil, nil
		},
	}
	boatClient := &boatClientMock{
		getBoatFunc: func(ctx context.Context, boatID int64) (*boatservice.Boat, error) {
			return &boatservice.Boat{ID: 5, OwnerID: 1, Name: "Dhoni Express"}, nil
		},
	}

	uc := NewUseCase(scheduleRepo, boatClient, &loggerMock{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.False(t, resp.HasConflicts)
	assert.Empty(t, resp.Conflicts)
}

func TestUseCase_Execute_ReportsConflicts(t *testing.T) {
	scheduleRepo := &scheduleRepoMock{
		getActiveByBoatAndDayFunc: func(ctx context.Context, boatID int64, day time.Time) ([]*domain.Schedule, error) {
			return []*domain.Schedule{
				{
					ID:       42,
					BoatName: "Dhoni Express",
					Segments: []domain.ScheduleSegment{
						{DepartureTime: "10:30", ArrivalTime: "10:45"},
					},
				},
			}, nil
		},
	}
	boatClient := &boatClientMock{
		getBoatFunc: func(ctx context.Context, boatID int64) (*boatservice.Boat, error) {
			return &boatservice.Boat{ID: 5, OwnerID: 1, Name: "Dhoni Express"}, nil
		},
	}

	uc := NewUseCase(scheduleRepo, boatClient, &loggerMock{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.True(t, resp.HasConflicts)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, int64(42), resp.Conflicts[0].ScheduleID)
	assert.Equal(t, 15, resp.Conflicts[0].OverlapMinutes)
	assert.Equal(t, "10:30", resp.Conflicts[0].ConflictTime.String())
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := NewUseCase(&scheduleRepoMock{}, &boatClientMock{}, &loggerMock{})

	t.Run("no segments", func(t *testing.T) {
		req := validRequest()
		req.Segments = nil
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("departure after arrival", func(t *testing.T) {
		req := validRequest()
		req.Segments[0].DepartureTime = "12:00"
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestUseCase_Execute_BoatOwnership(t *testing.T) {
	t.Run("boat not found", func(t *testing.T) {
		boatClient := &boatClientMock{
			getBoatFunc: func(ctx context.Context, boatID int64) (*boatservice.Boat, error) {
				return nil, boatservice.ErrBoatNotFound
			},
		}
		uc := NewUseCase(&scheduleRepoMock{}, boatClient, &loggerMock{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrBoatNotFound)
	})

	t.Run("foreign boat", func(t *testing.T) {
		boatClient := &boatClientMock{
			getBoatFunc: func(ctx context.Context, boatID int64) (*boatservice.Boat, error) {
				return &boatservice.Boat{ID: 5, OwnerID: 99}, nil
			},
		}
		uc := NewUseCase(&scheduleRepoMock{}, boatClient, &loggerMock{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrBoatNotOwned)
	})
}

package schedules

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Ferry-ScheduleService/internal/domain"
	scheduleRepo "github.com/m04kA/Ferry-ScheduleService/internal/infra/storage/schedule"
	"github.com/m04kA/Ferry-ScheduleService/internal/service/schedules/models"
	"github.com/m04kA/Ferry-ScheduleService/pkg/ptr"
)

type scheduleRepoMock struct {
	getByIDFunc              func(ctx context.Context, id int64) (*domain.Schedule, error)
	getByOwnerWithFilterFunc func(ctx context.Context, filter domain.OwnerSchedulesFilter) ([]*domain.Schedule, error)
	updateFunc               func(ctx context.Context, id int64, update domain.ScheduleUpdate) (*domain.Schedule, error)
	updateStatusFunc         func(ctx context.Context, id int64, status domain.ScheduleStatus) error
}

func (m *scheduleRepoMock) GetByID(ctx context.Context, id int64) (*domain.Schedule, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *scheduleRepoMock) GetByOwnerWithFilter(ctx context.Context, filter domain.OwnerSchedulesFilter) ([]*domain.Schedule, error) {
	return m.getByOwnerWithFilterFunc(ctx, filter)
}

func (m *scheduleRepoMock) GetActiveByBoatAndDay(ctx context.Context, boatID int64, day time.Time) ([]*domain.Schedule, error) {
	return nil, nil
}

func (m *scheduleRepoMock) Update(ctx context.Context, id int64, update domain.ScheduleUpdate) (*domain.Schedule, error) {
	return m.updateFunc(ctx, id, update)
}

func (m *scheduleRepoMock) UpdateStatus(ctx context.Context, id int64, status domain.ScheduleStatus) error {
	return m.updateStatusFunc(ctx, id, status)
}

type bookingClientMock struct {
	hasBookingsFunc func(ctx context.Context, scheduleID int64) (bool, error)
}

func (m *bookingClientMock) HasBookings(ctx context.Context, scheduleID int64) (bool, error) {
	return m.hasBookingsFunc(ctx, scheduleID)
}

type loggerMock struct{}

func (m *loggerMock) Info(format string, v ...interface{})  {}
func (m *loggerMock) Warn(format string, v ...interface{})  {}
func (m *loggerMock) Error(format string, v ...interface{}) {}

func activeSchedule() *domain.Schedule {
	return &domain.Schedule{
		ID:           10,
		OwnerID:      1,
		BoatID:       5,
		Name:         "Male - Dhidhdhoo morning",
		BoatName:     "Dhoni Express",
		ScheduleDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:       domain.StatusActive,
		PricingTier:  "standard",
		Segments: []domain.ScheduleSegment{
			{OriginStop: "Male", DestStop: "HA.Dhidhdhoo", DepartureTime: "10:00", ArrivalTime: "11:30", SequenceOrder: 1},
		},
	}
}

func TestService_GetByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := &scheduleRepoMock{
			getByIDFunc: func(ctx context.Context, id int64) (*domain.Schedule, error) {
				return activeSchedule(), nil
			},
		}
		svc := NewService(repo, &bookingClientMock{}, &loggerMock{})

		resp, err := svc.GetByID(context.Background(), 10, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(10), resp.ID)
		assert.Equal(t, "2026-06-01", resp.ScheduleDate)
		require.Len(t, resp.Segments, 1)
		assert.Equal(t, 90, resp.Segments[0].DurationMinutes)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &scheduleRepoMock{
			getByIDFunc: func(ctx context.Context, id int64) (*domain.Schedule, error) {
				return nil, scheduleRepo.ErrScheduleNotFound
			},
		}
		svc := NewService(repo, &bookingClientMock{}, &loggerMock{})

		_, err := svc.GetByID(context.Background(), 10, 1)
		assert.ErrorIs(t, err, ErrScheduleNotFound)
	})

	t.Run("foreign schedule", func(t *testing.T) {
		repo := &scheduleRepoMock{
			getByIDFunc: func(ctx context.Context, id int64) (*domain.Schedule, error) {
				return activeSchedule(), nil
			},
		}
		svc := NewService(repo, &bookingClientMock{}, &loggerMock{})

		_, err := svc.GetByID(context.Background(), 10, 99)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestService_GetOwnerSchedules(t *testing.T) {
	var capturedFilter domain.OwnerSchedulesFilter
	repo := &scheduleRepoMock{
		getByOwnerWithFilterFunc: func(ctx context.Context, filter domain.OwnerSchedulesFilter) ([]*domain.Schedule, error) {
			capturedFilter = filter
			return []*domain.Schedule{activeSchedule()}, nil
		},
	}
	svc := NewService(repo, &bookingClientMock{}, &loggerMock{})

	req := &models.GetOwnerSchedulesRequest{
		OwnerID: 1,
		BoatID:  ptr.Ptr(int64(5)),
		Status:  ptr.Ptr("ACTIVE"),
	}

	resp, err := svc.GetOwnerSchedules(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, resp.Schedules, 1)

	assert.Equal(t, int64(1), capturedFilter.OwnerID)
	require.NotNil(t, capturedFilter.BoatID)
	assert.Equal(t, int64(5), *capturedFilter.BoatID)
	require.NotNil(t, capturedFilter.Status)
	assert.Equal(t, domain.StatusActive, *capturedFilter.Status)
}

func TestService_GetOwnerSchedules_InvalidStatus(t *testing.T) {
	svc := NewService(&scheduleRepoMock{}, &bookingClientMock{}, &loggerMock{})

	_, err := svc.GetOwnerSchedules(context.Background(), &models.GetOwnerSchedulesRequest{
		OwnerID: 1,
		Status:  ptr.Ptr("RUNNING"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Update(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		var capturedUpdate domain.ScheduleUpdate
		repo := &scheduleRepoMock{
			getByIDFunc: func(ctx context.Context, id int64) (*domain.Schedule, error) {
				return activeSchedule(), nil
			},
			updateFunc: func(ctx context.Context, id int64, update domain.ScheduleUpdate) (*domain.Schedule, error) {
				capturedUpdate = update
				s := activeSchedule()
				s.Name = *update.Name
				return s, nil
			},
		}
		svc := NewService(repo, &bookingClientMock{}, &loggerMock{})

		resp, err := svc.Update(context.Background(), 10, &models.UpdateScheduleRequest{
			OwnerID: 1,
			Name:    ptr.Ptr("Renamed"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", resp.Name)

		require.NotNil(t, capturedUpdate.Name)
		assert.Nil(t, capturedUpdate.PricingTier)
		assert.Nil(t, capturedUpdate.Status)
	})

	t.Run("completed schedule cannot be updated", func(t *testing.T) {
		repo := &scheduleRepoMock{
			getByIDFunc: func(ctx context.Context, id int64) (*domain.Schedule, error) {
				s := activeSchedule()
				s.Status = domain.StatusCompleted
				return s, nil
			},
		}
		svc := NewService(repo, &bookingClientMock{}, &loggerMock{})

		_, err := svc.Update(context.Background(), 10, &models.UpdateScheduleRequest{
			OwnerID: 1,
			Name:    ptr.Ptr("Renamed"),
		})
		assert.ErrorIs(t, err, ErrCannotUpdate)
	})

	t.Run("empty update is rejected", func(t *testing.T) {
		repo := &scheduleRepoMock{
			getByIDFunc: func(ctx context.Context, id int64) (*domain.Schedule, error) {
				return activeSchedule(), nil
			},
		}
		svc := NewService(repo, &bookingClientMock{}, &loggerMock{})

		_, err := svc.Update(context.Background(), 10, &models.UpdateScheduleRequest{OwnerID: 1})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("cancels schedule without bookings", func(t *testing.T) {
		var updatedStatus domain.ScheduleStatus
		repo := &scheduleRepoMock{
			getByIDFunc: func(ctx context.Context, id int64) (*domain.Schedule, error) {
				return activeSchedule(), nil
			},
			updateStatusFunc: func(ctx context.Context, id int64, status domain.ScheduleStatus) error {
				updatedStatus = status
				return nil
			},
		}
		bookingClient := &bookingClientMock{
			hasBookingsFunc: func(ctx context.Context, scheduleID int64) (bool, error) {
				return false, nil
			},
		}
		svc := NewService(repo, bookingClient, &loggerMock{})

		require.NoError(t, svc.Delete(context.Background(), 10, 1))
		assert.Equal(t, domain.StatusCancelled, updatedStatus)
	})

	t.Run("refuses to delete schedule with bookings", func(t *testing.T) {
		updateStatusCalled := false
		repo := &scheduleRepoMock{
			getByIDFunc: func(ctx context.Context, id int64) (*domain.Schedule, error) {
				return activeSchedule(), nil
			},
			updateStatusFunc: func(ctx context.Context, id int64, status domain.ScheduleStatus) error {
				updateStatusCalled = true
				return nil
			},
		}
		bookingClient := &bookingClientMock{
			hasBookingsFunc: func(ctx context.Context, scheduleID int64) (bool, error) {
				return true, nil
			},
		}
		svc := NewService(repo, bookingClient, &loggerMock{})

		err := svc.Delete(context.Background(), 10, 1)
		assert.ErrorIs(t, err, ErrHasBookings)
		assert.False(t, updateStatusCalled)
	})

	t.Run("already cancelled schedule", func(t *testing.T) {
		repo := &scheduleRepoMock{
			getByIDFunc: func(ctx context.Context, id int64) (*domain.Schedule, error) {
				s := activeSchedule()
				s.Status = domain.StatusCancelled
				return s, nil
			},
		}
		svc := NewService(repo, &bookingClientMock{}, &loggerMock{})

		err := svc.Delete(context.Background(), 10, 1)
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("foreign schedule", func(t *testing.T) {
		repo := &scheduleRepoMock{
			getByIDFunc: func(ctx context.Context, id int64) (*domain.Schedule, error) {
				return activeSchedule(), nil
			},
		}
		svc := NewService(repo, &bookingClientMock{}, &loggerMock{})

		err := svc.Delete(context.Background(), 10, 99)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

package create_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Ferry-ScheduleService/internal/domain"
	"github.com/m04kA/Ferry-ScheduleService/internal/integrations/boatservice"
	"github.com/m04kA/Ferry-ScheduleService/pkg/ptr"
)

type scheduleRepoMock struct {
	createBatchFunc           func(ctx context.Context, schedules []*domain.Schedule) ([]*domain.Schedule, error)
	getActiveByBoatAndDayFunc func(ctx context.Context, boatID int64, day time.Time) ([]*domain.Schedule, error)
}

func (m *scheduleRepoMock) CreateBatch(ctx context.Context, schedules []*domain.Schedule) ([]*domain.Schedule, error) {
	return m.createBatchFunc(ctx, schedules)
}

func (m *scheduleRepoMock) GetActiveByBoatAndDay(ctx context.Context, boatID int64, day time.Time) ([]*domain.Schedule, error) {
	return m.getActiveByBoatAndDayFunc(ctx, boatID, day)
}

type templateRepoMock struct {
	getByIDFunc func(ctx context.Context, id int64) (*domain.ScheduleTemplate, error)
	createFunc  func(ctx context.Context, tpl *domain.ScheduleTemplate) (*domain.ScheduleTemplate, error)
}

func (m *templateRepoMock) GetByID(ctx context.Context, id int64) (*domain.ScheduleTemplate, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *templateRepoMock) Create(ctx context.Context, tpl *domain.ScheduleTemplate) (*domain.ScheduleTemplate, error) {
	return m.createFunc(ctx, tpl)
}

type boatClientMock struct {
	getBoatFunc func(ctx context.Context, boatID int64) (*boatservice.Boat, error)
}

func (m *boatClientMock) GetBoat(ctx context.Context, boatID int64) (*boatservice.Boat, error) {
	return m.getBoatFunc(ctx, boatID)
}

type txManagerMock struct{}

func (m *txManagerMock) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type loggerMock struct{}

func (m *loggerMock) Info(format string, v ...interface{})  {}
func (m *loggerMock) Warn(format string, v ...interface{})  {}
func (m *loggerMock) Error(format string, v ...interface{}) {}

func ownedBoat() *boatservice.Boat {
	return &boatservice.Boat{ID: 5, OwnerID: 1, Name: "Dhoni Express", IsActive: true}
}

func echoCreateBatch(ctx context.Context, schedules []*domain.Schedule) ([]*domain.Schedule, error) {
	for i, s := range schedules {
		s.ID = int64(i + 1)
	}
	return schedules, nil
}

func newTestUseCase(scheduleRepo *scheduleRepoMock, templateRepo *templateRepoMock, boatClient *boatClientMock) *UseCase {
	return NewUseCase(scheduleRepo, templateRepo, boatClient, &txManagerMock{}, &loggerMock{})
}

func TestUseCase_Execute_SingleSchedule(t *testing.T) {
	scheduleRepo := &scheduleRepoMock{
		getActiveByBoatAndDayFunc: func(ctx context.Context, boatID int64, day time.Time) ([]*domain.Schedule, error) {
			return nil, nil
		},
		createBatchFunc: echoCreateBatch,
	}
	boatClient := &boatClientMock{
		getBoatFunc: func(ctx context.Context, boatID int64) (*boatservice.Boat, error) {
			return ownedBoat(), nil
		},
	}

	uc := newTestUseCase(scheduleRepo, &templateRepoMock{}, boatClient)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.Len(t, resp.Schedules, 1)
	assert.Equal(t, "Dhoni Express", resp.Schedules[0].BoatName)
	assert.Equal(t, string(domain.StatusActive), resp.Schedules[0].Status)
	assert.Nil(t, resp.SavedTemplateID)
}

func TestUseCase_Execute_RecurrenceExpansion(t *testing.T) {
	var inserted []*domain.Schedule
	scheduleRepo := &scheduleRepoMock{
		getActiveByBoatAndDayFunc: func(ctx context.Context, boatID int64, day time.Time) ([]*domain.Schedule, error) {
			return nil, nil
		},
		createBatchFunc: func(ctx context.Context, schedules []*domain.Schedule) ([]*domain.Schedule, error) {
			inserted = schedules
			return echoCreateBatch(ctx, schedules)
		},
	}
	boatClient := &boatClientMock{
		getBoatFunc: func(ctx context.Context, boatID int64) (*boatservice.Boat, error) {
			return ownedBoat(), nil
		},
	}

	uc := newTestUseCase(scheduleRepo, &templateRepoMock{}, boatClient)

	req := validRequest()
	endDate := req.StartDate.AddDate(0, 0, 2)
	req.Recurrence = &RecurrenceInput{Type: "daily", EndDate: &endDate}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, resp.Schedules, 3)

	// Каждый экземпляр получает свою календарную дату
	require.Len(t, inserted, 3)
	assert.Equal(t, req.StartDate, inserted[0].ScheduleDate)
	assert.Equal(t, req.StartDate.AddDate(0, 0, 1), inserted[1].ScheduleDate)
	assert.Equal(t, req.StartDate.AddDate(0, 0, 2), inserted[2].ScheduleDate)
}

func TestUseCase_Execute_ConflictRejectsWholeRequest(t *testing.T) {
	createBatchCalled := false
	scheduleRepo := &scheduleRepoMock{
		getActiveByBoatAndDayFunc: func(ctx context.Context, boatID int64, day time.Time) ([]*domain.Schedule, error) {
			return []*domain.Schedule{
				{
					ID:       42,
					BoatName: "Dhoni Express",
					Segments: []domain.ScheduleSegment{
						{DepartureTime: "10:30", ArrivalTime: "11:00"},
					},
				},
			}, nil
		},
		createBatchFunc: func(ctx context.Context, schedules []*domain.Schedule) ([]*domain.Schedule, error) {
			createBatchCalled = true
			return echoCreateBatch(ctx, schedules)
		},
	}
	boatClient := &boatClientMock{
		getBoatFunc: func(ctx context.Context, boatID int64) (*boatservice.Boat, error) {
			return ownedBoat(), nil
		},
	}

	uc := newTestUseCase(scheduleRepo, &templateRepoMock{}, boatClient)

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrScheduleConflict)

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	require.Len(t, conflictErr.Conflicts, 1)
	assert.Equal(t, int64(42), conflictErr.Conflicts[0].ScheduleID)
	assert.Equal(t, 30, conflictErr.Conflicts[0].OverlapMinutes)

	// При конфликте не записывается ни один экземпляр
	assert.False(t, createBatchCalled)
}

func TestUseCase_Execute_ValidationError(t *testing.T) {
	uc := newTestUseCase(&scheduleRepoMock{}, &templateRepoMock{}, &boatClientMock{})

	req := validRequest()
	req.Name = ""
	req.Segments = nil

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidSchedule)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Reasons, 2)
}

func TestUseCase_Execute_BoatOwnership(t *testing.T) {
	t.Run("boat not found", func(t *testing.T) {
		boatClient := &boatClientMock{
			getBoatFunc: func(ctx context.Context, boatID int64) (*boatservice.Boat, error) {
				return nil, boatservice.ErrBoatNotFound
			},
		}
		uc := newTestUseCase(&scheduleRepoMock{}, &templateRepoMock{}, boatClient)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrBoatNotFound)
	})

	t.Run("boat belongs to another owner", func(t *testing.T) {
		boatClient := &boatClientMock{
			getBoatFunc: func(ctx context.Context, boatID int64) (*boatservice.Boat, error) {
				return &boatservice.Boat{ID: 5, OwnerID: 99, Name: "Other"}, nil
			},
		}
		uc := newTestUseCase(&scheduleRepoMock{}, &templateRepoMock{}, boatClient)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrBoatNotOwned)
	})
}

func TestUseCase_Execute_InvalidStatus(t *testing.T) {
	boatClient := &boatClientMock{
		getBoatFunc: func(ctx context.Context, boatID int64) (*boatservice.Boat, error) {
			return ownedBoat(), nil
		},
	}
	uc := newTestUseCase(&scheduleRepoMock{}, &templateRepoMock{}, boatClient)

	req := validRequest()
	req.Status = ptr.Ptr("RUNNING")

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_FromTemplate(t *testing.T) {
	template := &domain.ScheduleTemplate{
		ID:          7,
		OwnerID:     1,
		Name:        "Morning run",
		PricingTier: "premium",
		IsActive:    true,
		Stops: []domain.RouteStop{
			{Name: "Male", SequenceOrder: 1},
			{Name: "HA.Dhidhdhoo", SequenceOrder: 2},
		},
		Segments: []domain.ScheduleSegment{
			{OriginStop: "Male", DestStop: "HA.Dhidhdhoo", DepartureTime: "06:00", ArrivalTime: "07:30", SequenceOrder: 1},
		},
	}

	templateRepo := &templateRepoMock{
		getByIDFunc: func(ctx context.Context, id int64) (*domain.ScheduleTemplate, error) {
			return template, nil
		},
	}
	scheduleRepo := &scheduleRepoMock{
		getActiveByBoatAndDayFunc: func(ctx context.Context, boatID int64, day time.Time) ([]*domain.Schedule, error) {
			return nil, nil
		},
		createBatchFunc: echoCreateBatch,
	}
	boatClient := &boatClientMock{
		getBoatFunc: func(ctx context.Context, boatID int64) (*boatservice.Boat, error) {
			return ownedBoat(), nil
		},
	}

	uc := newTestUseCase(scheduleRepo, templateRepo, boatClient)

	req := &Request{
		OwnerID:     1,
		BoatID:      5,
		TemplateID:  ptr.Ptr(int64(7)),
		StartDate:   time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		PricingTier: "",
	}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Schedules, 1)

	// Маршрут, название и тариф заполнены из шаблона
	created := resp.Schedules[0]
	assert.Equal(t, "Morning run", created.Name)
	assert.Equal(t, "premium", created.PricingTier)
	require.Len(t, created.Segments, 1)
	assert.Equal(t, "06:00", created.Segments[0].DepartureTime.String())
}

func TestUseCase_Execute_TemplateAccess(t *testing.T) {
	t.Run("foreign template", func(t *testing.T) {
		templateRepo := &templateRepoMock{
			getByIDFunc: func(ctx context.Context, id int64) (*domain.ScheduleTemplate, error) {
				return &domain.ScheduleTemplate{ID: 7, OwnerID: 99, IsActive: true}, nil
			},
		}
		uc := newTestUseCase(&scheduleRepoMock{}, templateRepo, &boatClientMock{})

		req := validRequest()
		req.TemplateID = ptr.Ptr(int64(7))

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("deactivated template", func(t *testing.T) {
		templateRepo := &templateRepoMock{
			getByIDFunc: func(ctx context.Context, id int64) (*domain.ScheduleTemplate, error) {
				return &domain.ScheduleTemplate{ID: 7, OwnerID: 1, IsActive: false}, nil
			},
		}
		uc := newTestUseCase(&scheduleRepoMock{}, templateRepo, &boatClientMock{})

		req := validRequest()
		req.TemplateID = ptr.Ptr(int64(7))

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrTemplateInactive)
	})
}

func TestUseCase_Execute_SaveAsTemplate(t *testing.T) {
	var savedTemplate *domain.ScheduleTemplate
	templateRepo := &templateRepoMock{
		createFunc: func(ctx context.Context, tpl *domain.ScheduleTemplate) (*domain.ScheduleTemplate, error) {
			tpl.ID = 33
			savedTemplate = tpl
			return tpl, nil
		},
	}
	scheduleRepo := &scheduleRepoMock{
		getActiveByBoatAndDayFunc: func(ctx context.Context, boatID int64, day time.Time) ([]*domain.Schedule, error) {
			return nil, nil
		},
		createBatchFunc: echoCreateBatch,
	}
	boatClient := &boatClientMock{
		getBoatFunc: func(ctx context.Context, boatID int64) (*boatservice.Boat, error) {
			return ownedBoat(), nil
		},
	}

	uc := newTestUseCase(scheduleRepo, templateRepo, boatClient)

	req := validRequest()
	req.SaveAsTemplate = true
	req.TemplateName = "Morning run"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.SavedTemplateID)
	assert.Equal(t, int64(33), *resp.SavedTemplateID)

	require.NotNil(t, savedTemplate)
	assert.Equal(t, "Morning run", savedTemplate.Name)
	assert.True(t, savedTemplate.IsActive)
	assert.Len(t, savedTemplate.Stops, 2)
}

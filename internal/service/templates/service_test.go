package templates

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Ferry-ScheduleService/internal/domain"
	templateRepo "github.com/m04kA/Ferry-ScheduleService/internal/infra/storage/template"
	"github.com/m04kA/Ferry-ScheduleService/internal/service/templates/models"
)

type templateRepoMock struct {
	createFunc     func(ctx context.Context, tpl *domain.ScheduleTemplate) (*domain.ScheduleTemplate, error)
	getByIDFunc    func(ctx context.Context, id int64) (*domain.ScheduleTemplate, error)
	getByOwnerFunc func(ctx context.Context, ownerID int64, activeOnly bool) ([]*domain.ScheduleTemplate, error)
	deactivateFunc func(ctx context.Context, id int64) error
}

func (m *templateRepoMock) Create(ctx context.Context, tpl *domain.ScheduleTemplate) (*domain.ScheduleTemplate, error) {
	return m.createFunc(ctx, tpl)
}

func (m *templateRepoMock) GetByID(ctx context.Context, id int64) (*domain.ScheduleTemplate, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *templateRepoMock) GetByOwner(ctx context.Context, ownerID int64, activeOnly bool) ([]*domain.ScheduleTemplate, error) {
	return m.getByOwnerFunc(ctx, ownerID, activeOnly)
}

func (m *templateRepoMock) Deactivate(ctx context.Context, id int64) error {
	return m.deactivateFunc(ctx, id)
}

type loggerMock struct{}

func (m *loggerMock) Info(format string, v ...interface{})  {}
func (m *loggerMock) Warn(format string, v ...interface{})  {}
func (m *loggerMock) Error(format string, v ...interface{}) {}

func createRequest() *models.CreateTemplateRequest {
	return &models.CreateTemplateRequest{
		OwnerID:     1,
		Name:        "Morning run",
		PricingTier: "standard",
		Stops: []models.StopInput{
			{Name: "Male"},
			{Name: "HA.Dhidhdhoo"},
		},
		Segments: []models.SegmentInput{
			{OriginStop: "Male", DestStop: "HA.Dhidhdhoo", DepartureTime: "06:00", ArrivalTime: "07:30"},
		},
	}
}

func TestService_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := &templateRepoMock{
			createFunc: func(ctx context.Context, tpl *domain.ScheduleTemplate) (*domain.ScheduleTemplate, error) {
				tpl.ID = 7
				return tpl, nil
			},
		}
		svc := NewService(repo, &loggerMock{})

		resp, err := svc.Create(context.Background(), createRequest())
		require.NoError(t, err)
		assert.Equal(t, int64(7), resp.ID)
		assert.True(t, resp.IsActive)
		require.Len(t, resp.Segments, 1)
		assert.Equal(t, "06:00", resp.Segments[0].DepartureTime)
	})

	t.Run("too few stops", func(t *testing.T) {
		svc := NewService(&templateRepoMock{}, &loggerMock{})

		req := createRequest()
		req.Stops = req.Stops[:1]

		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("invalid segment time", func(t *testing.T) {
		svc := NewService(&templateRepoMock{}, &loggerMock{})

		req := createRequest()
		req.Segments[0].DepartureTime = "6am"

		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		repo := &templateRepoMock{
			getByIDFunc: func(ctx context.Context, id int64) (*domain.ScheduleTemplate, error) {
				return nil, templateRepo.ErrTemplateNotFound
			},
		}
		svc := NewService(repo, &loggerMock{})

		_, err := svc.GetByID(context.Background(), 7, 1)
		assert.ErrorIs(t, err, ErrTemplateNotFound)
	})

	t.Run("foreign template", func(t *testing.T) {
		repo := &templateRepoMock{
			getByIDFunc: func(ctx context.Context, id int64) (*domain.ScheduleTemplate, error) {
				return &domain.ScheduleTemplate{ID: 7, OwnerID: 99}, nil
			},
		}
		svc := NewService(repo, &loggerMock{})

		_, err := svc.GetByID(context.Background(), 7, 1)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestService_Deactivate(t *testing.T) {
	deactivated := false
	repo := &templateRepoMock{
		getByIDFunc: func(ctx context.Context, id int64) (*domain.ScheduleTemplate, error) {
			return &domain.ScheduleTemplate{ID: 7, OwnerID: 1, IsActive: true}, nil
		},
		deactivateFunc: func(ctx context.Context, id int64) error {
			deactivated = true
			return nil
		},
	}
	svc := NewService(repo, &loggerMock{})

	require.NoError(t, svc.Deactivate(context.Background(), 7, 1))
	assert.True(t, deactivated)
}

func TestService_GetOwnerTemplates(t *testing.T) {
	var capturedActiveOnly bool
	repo := &templateRepoMock{
		getByOwnerFunc: func(ctx context.Context, ownerID int64, activeOnly bool) ([]*domain.ScheduleTemplate, error) {
			capturedActiveOnly = activeOnly
			return []*domain.ScheduleTemplate{{ID: 7, OwnerID: ownerID, Name: "Morning run"}}, nil
		},
	}
	svc := NewService(repo, &loggerMock{})

	resp, err := svc.GetOwnerTemplates(context.Background(), &models.GetOwnerTemplatesRequest{
		OwnerID:    1,
		ActiveOnly: true,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Templates, 1)
	assert.True(t, capturedActiveOnly)
}

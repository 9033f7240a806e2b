package templates

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/Ferry-ScheduleService/internal/domain"
	templateRepo "github.com/m04kA/Ferry-ScheduleService/internal/infra/storage/template"
	"github.com/m04kA/Ferry-ScheduleService/internal/service/templates/models"
)

// Service сервис для работы с шаблонами маршрутов
type Service struct {
	templateRepo TemplateRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса шаблонов
func NewService(templateRepo TemplateRepository, logger Logger) *Service {
	return &Service{
		templateRepo: templateRepo,
		logger:       logger,
	}
}

// Create создает новый шаблон маршрута
func (s *Service) Create(ctx context.Context, req *models.CreateTemplateRequest) (*models.TemplateResponse, error) {
	s.logger.Info("Create: creating template for owner=%d, name=%q, stops=%d, segments=%d",
		req.OwnerID, req.Name, len(req.Stops), len(req.Segments))

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed for owner=%d: %v", req.OwnerID, err)
		return nil, err
	}

	tpl, err := req.ToDomainTemplate()
	if err != nil {
		s.logger.Warn("Create: invalid segment times for owner=%d: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.templateRepo.Create(ctx, tpl)
	if err != nil {
		s.logger.Error("Create: repository error for owner=%d: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created template id=%d for owner=%d", created.ID, req.OwnerID)
	return models.FromDomainTemplate(created), nil
}

// GetByID получает шаблон по ID
// Владелец видит только собственные шаблоны
func (s *Service) GetByID(ctx context.Context, id int64, ownerID int64) (*models.TemplateResponse, error) {
	s.logger.Info("GetByID: fetching template id=%d for owner=%d", id, ownerID)

	tpl, err := s.getOwnedTemplate(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched template id=%d", id)
	return models.FromDomainTemplate(tpl), nil
}

// GetOwnerTemplates получает шаблоны владельца
// По умолчанию возвращаются и деактивированные шаблоны
func (s *Service) GetOwnerTemplates(ctx context.Context, req *models.GetOwnerTemplatesRequest) (*models.TemplateListResponse, error) {
	s.logger.Info("GetOwnerTemplates: fetching templates for owner=%d, activeOnly=%v", req.OwnerID, req.ActiveOnly)

	if req.OwnerID <= 0 {
		s.logger.Warn("GetOwnerTemplates: invalid ownerID=%d", req.OwnerID)
		return nil, fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}

	templates, err := s.templateRepo.GetByOwner(ctx, req.OwnerID, req.ActiveOnly)
	if err != nil {
		s.logger.Error("GetOwnerTemplates: repository error for owner=%d: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: GetOwnerTemplates - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetOwnerTemplates: successfully fetched %d templates for owner=%d", len(templates), req.OwnerID)
	return models.FromDomainTemplateList(templates), nil
}

// Deactivate деактивирует шаблон (мягкое удаление)
// Деактивированный шаблон нельзя использовать для новых расписаний,
// но уже созданные по нему расписания продолжают жить
func (s *Service) Deactivate(ctx context.Context, id int64, ownerID int64) error {
	s.logger.Info("Deactivate: deactivating template id=%d by owner=%d", id, ownerID)

	if _, err := s.getOwnedTemplate(ctx, id, ownerID); err != nil {
		return err
	}

	if err := s.templateRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, templateRepo.ErrTemplateNotFound) {
			s.logger.Warn("Deactivate: template id=%d not found during deactivation", id)
			return ErrTemplateNotFound
		}
		s.logger.Error("Deactivate: repository error for template id=%d: %v", id, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Deactivate: successfully deactivated template id=%d", id)
	return nil
}

// Вспомогательные методы

// validateCreateRequest валидирует запрос на создание шаблона
func validateCreateRequest(req *models.CreateTemplateRequest) error {
	if req.OwnerID <= 0 {
		return fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: template name is required", ErrInvalidInput)
	}
	if len(req.Stops) < domain.MinRouteStops {
		return fmt.Errorf("%w: at least %d route stops are required", ErrInvalidInput, domain.MinRouteStops)
	}
	if len(req.Segments) < domain.MinSegments {
		return fmt.Errorf("%w: at least %d segment is required", ErrInvalidInput, domain.MinSegments)
	}
	return nil
}

// getOwnedTemplate загружает шаблон и проверяет, что он принадлежит владельцу
func (s *Service) getOwnedTemplate(ctx context.Context, id int64, ownerID int64) (*domain.ScheduleTemplate, error) {
	tpl, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, templateRepo.ErrTemplateNotFound) {
			s.logger.Warn("getOwnedTemplate: template id=%d not found", id)
			return nil, ErrTemplateNotFound
		}
		s.logger.Error("getOwnedTemplate: repository error for template id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: getOwnedTemplate - repository error: %v", ErrInternal, err)
	}

	if tpl.OwnerID != ownerID {
		s.logger.Warn("getOwnedTemplate: template id=%d belongs to owner=%d, not owner=%d",
			id, tpl.OwnerID, ownerID)
		return nil, ErrAccessDenied
	}

	return tpl, nil
}

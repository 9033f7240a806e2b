package template

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Ferry-ScheduleService/internal/domain"
	"github.com/m04kA/Ferry-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/Ferry-ScheduleService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с шаблонами маршрутов
// Таблицы: schedule_templates + дочерние template_stops / template_segments
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория шаблонов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var templateColumns = []string{
	"id",
	"owner_id",
	"name",
	"default_boat_id",
	"pricing_tier",
	"is_active",
	"created_at",
	"updated_at",
}

// Create создает шаблон вместе с остановками и отрезками
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, tpl *domain.ScheduleTemplate) (*domain.ScheduleTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedule_templates").
		Columns(
			"owner_id",
			"name",
			"default_boat_id",
			"pricing_tier",
			"is_active",
		).
		Values(
			tpl.OwnerID,
			tpl.Name,
			tpl.DefaultBoatID,
			tpl.PricingTier,
			tpl.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&tpl.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	tpl.CreatedAt = createdAt.Time
	tpl.UpdatedAt = updatedAt.Time

	if err := r.insertStops(ctx, executor, tpl); err != nil {
		return nil, err
	}
	if err := r.insertSegments(ctx, executor, tpl); err != nil {
		return nil, err
	}

	return tpl, nil
}

func (r *Repository) insertStops(ctx context.Context, executor DBExecutor, tpl *domain.ScheduleTemplate) error {
	if len(tpl.Stops) == 0 {
		return nil
	}

	builder := psqlbuilder.Insert("template_stops").
		Columns("template_id", "name", "location", "sequence_order")

	for _, stop := range tpl.Stops {
		builder = builder.Values(tpl.ID, stop.Name, stop.Location, stop.SequenceOrder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertStops - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insertStops - execute insert: %v", ErrExecQuery, err)
	}

	for i := range tpl.Stops {
		tpl.Stops[i].ParentID = tpl.ID
	}
	return nil
}

func (r *Repository) insertSegments(ctx context.Context, executor DBExecutor, tpl *domain.ScheduleTemplate) error {
	if len(tpl.Segments) == 0 {
		return nil
	}

	builder := psqlbuilder.Insert("template_segments").
		Columns(
			"template_id",
			"origin_stop",
			"dest_stop",
			"departure_time",
			"arrival_time",
			"sequence_order",
		)

	for _, seg := range tpl.Segments {
		builder = builder.Values(
			tpl.ID,
			seg.OriginStop,
			seg.DestStop,
			seg.DepartureTime,
			seg.ArrivalTime,
			seg.SequenceOrder,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertSegments - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insertSegments - execute insert: %v", ErrExecQuery, err)
	}

	for i := range tpl.Segments {
		tpl.Segments[i].ParentID = tpl.ID
	}
	return nil
}

// GetByID получает шаблон по ID вместе с остановками и отрезками
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ScheduleTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(templateColumns...).
		From("schedule_templates").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	tpl, err := scanTemplate(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan template: %v", ErrScanRow, err)
	}

	if err := r.loadStops(ctx, executor, tpl); err != nil {
		return nil, err
	}
	if err := r.loadSegments(ctx, executor, tpl); err != nil {
		return nil, err
	}

	return tpl, nil
}

// GetByOwner получает шаблоны владельца
// activeOnly = true отбрасывает деактивированные шаблоны
func (r *Repository) GetByOwner(ctx context.Context, ownerID int64, activeOnly bool) ([]*domain.ScheduleTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(templateColumns...).
		From("schedule_templates").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("name ASC, id ASC")

	if activeOnly {
		builder = builder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwner - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwner - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var templates []*domain.ScheduleTemplate
	for rows.Next() {
		tpl, err := scanTemplate(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByOwner - scan template: %v", ErrScanRow, err)
		}
		templates = append(templates, tpl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByOwner - rows error: %v", ErrScanRow, err)
	}

	for _, tpl := range templates {
		if err := r.loadStops(ctx, executor, tpl); err != nil {
			return nil, err
		}
		if err := r.loadSegments(ctx, executor, tpl); err != nil {
			return nil, err
		}
	}

	return templates, nil
}

// Deactivate помечает шаблон неактивным
// Шаблоны не удаляются: на них ссылаются созданные из них расписания
func (r *Repository) Deactivate(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("schedule_templates").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Deactivate - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Deactivate - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Deactivate - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrTemplateNotFound
	}

	return nil
}

// Вспомогательные методы

func (r *Repository) loadStops(ctx context.Context, executor DBExecutor, tpl *domain.ScheduleTemplate) error {
	query, args, err := psqlbuilder.Select(
		"id",
		"template_id",
		"name",
		"location",
		"sequence_order",
	).
		From("template_stops").
		Where(squirrel.Eq{"template_id": tpl.ID}).
		OrderBy("sequence_order ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadStops - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadStops - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var stop domain.RouteStop
		if err := rows.Scan(&stop.ID, &stop.ParentID, &stop.Name, &stop.Location, &stop.SequenceOrder); err != nil {
			return fmt.Errorf("%w: loadStops - scan stop: %v", ErrScanRow, err)
		}
		tpl.Stops = append(tpl.Stops, stop)
	}
	return rows.Err()
}

func (r *Repository) loadSegments(ctx context.Context, executor DBExecutor, tpl *domain.ScheduleTemplate) error {
	query, args, err := psqlbuilder.Select(
		"id",
		"template_id",
		"origin_stop",
		"dest_stop",
		"departure_time",
		"arrival_time",
		"sequence_order",
	).
		From("template_segments").
		Where(squirrel.Eq{"template_id": tpl.ID}).
		OrderBy("sequence_order ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadSegments - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadSegments - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var seg domain.ScheduleSegment
		if err := rows.Scan(
			&seg.ID,
			&seg.ParentID,
			&seg.OriginStop,
			&seg.DestStop,
			&seg.DepartureTime,
			&seg.ArrivalTime,
			&seg.SequenceOrder,
		); err != nil {
			return fmt.Errorf("%w: loadSegments - scan segment: %v", ErrScanRow, err)
		}
		tpl.Segments = append(tpl.Segments, seg)
	}
	return rows.Err()
}

func scanTemplate(scan func(dest ...interface{}) error) (*domain.ScheduleTemplate, error) {
	var (
		tpl       domain.ScheduleTemplate
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)

	err := scan(
		&tpl.ID,
		&tpl.OwnerID,
		&tpl.Name,
		&tpl.DefaultBoatID,
		&tpl.PricingTier,
		&tpl.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	tpl.CreatedAt = createdAt.Time
	tpl.UpdatedAt = updatedAt.Time

	return &tpl, nil
}

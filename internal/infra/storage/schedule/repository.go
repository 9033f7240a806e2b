package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Ferry-ScheduleService/internal/domain"
	"github.com/m04kA/Ferry-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/Ferry-ScheduleService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с расписаниями
//
// Схема: таблица schedules и дочерние таблицы schedule_stops /
// schedule_segments (маршрут хранится строками, а не сериализованным
// массивом - порядок и ссылочная целостность обеспечиваются БД).
// Прикладная проверка конфликтов выполняется в serializable-транзакции;
// exclusion constraint на (boat_id, tstzrange(departs_at, arrives_at))
// остаётся страховкой на уровне схемы
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var scheduleColumns = []string{
	"id",
	"owner_id",
	"boat_id",
	"template_id",
	"name",
	"boat_name",
	"schedule_date",
	"pricing_tier",
	"recurrence_type",
	"recurrence_interval",
	"recurrence_weekdays",
	"recurrence_end_date",
	"status",
	"created_at",
	"updated_at",
}

// CreateBatch вставляет набор материализованных экземпляров расписания
// вместе с их остановками и отрезками
// Вызывается внутри транзакции (через context), чтобы либо весь набор
// был записан, либо ничего
func (r *Repository) CreateBatch(ctx context.Context, schedules []*domain.Schedule) ([]*domain.Schedule, error) {
	if len(schedules) == 0 {
		return nil, ErrEmptyBatch
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	for _, s := range schedules {
		if err := r.insertSchedule(ctx, executor, s); err != nil {
			return nil, err
		}
	}

	return schedules, nil
}

func (r *Repository) insertSchedule(ctx context.Context, executor DBExecutor, s *domain.Schedule) error {
	var (
		recurrenceType     *string
		recurrenceInterval *int
		recurrenceWeekdays *string
		recurrenceEndDate  *time.Time
	)
	if s.Recurrence != nil {
		t := string(s.Recurrence.Type)
		recurrenceType = &t
		interval := s.Recurrence.NormalizedInterval()
		recurrenceInterval = &interval
		if wd := encodeWeekdays(s.Recurrence.Weekdays); wd != "" {
			recurrenceWeekdays = &wd
		}
		recurrenceEndDate = s.Recurrence.EndDate
	}

	query, args, err := psqlbuilder.Insert("schedules").
		Columns(
			"owner_id",
			"boat_id",
			"template_id",
			"name",
			"boat_name",
			"schedule_date",
			"pricing_tier",
			"recurrence_type",
			"recurrence_interval",
			"recurrence_weekdays",
			"recurrence_end_date",
			"status",
		).
		Values(
			s.OwnerID,
			s.BoatID,
			s.TemplateID,
			s.Name,
			s.BoatName,
			s.ScheduleDate,
			s.PricingTier,
			recurrenceType,
			recurrenceInterval,
			recurrenceWeekdays,
			recurrenceEndDate,
			s.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	if err := r.insertStops(ctx, executor, s); err != nil {
		return err
	}
	return r.insertSegments(ctx, executor, s)
}

func (r *Repository) insertStops(ctx context.Context, executor DBExecutor, s *domain.Schedule) error {
	builder := psqlbuilder.Insert("schedule_stops").
		Columns("schedule_id", "name", "location", "sequence_order")

	for _, stop := range s.Stops {
		builder = builder.Values(s.ID, stop.Name, stop.Location, stop.SequenceOrder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertStops - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insertStops - execute insert: %v", ErrExecQuery, err)
	}

	for i := range s.Stops {
		s.Stops[i].ParentID = s.ID
	}
	return nil
}

func (r *Repository) insertSegments(ctx context.Context, executor DBExecutor, s *domain.Schedule) error {
	builder := psqlbuilder.Insert("schedule_segments").
		Columns(
			"schedule_id",
			"origin_stop",
			"dest_stop",
			"departure_time",
			"arrival_time",
			"departs_at",
			"arrives_at",
			"sequence_order",
		)

	for _, seg := range s.Segments {
		builder = builder.Values(
			s.ID,
			seg.OriginStop,
			seg.DestStop,
			seg.DepartureTime,
			seg.ArrivalTime,
			seg.DepartsAt,
			seg.ArrivesAt,
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

	for i := range s.Segments {
		s.Segments[i].ParentID = s.ID
	}
	return nil
}

// GetByID получает расписание по ID вместе с остановками и отрезками
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	s, err := scanSchedule(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan schedule: %v", ErrScanRow, err)
	}

	if err := r.loadChildren(ctx, executor, []*domain.Schedule{s}); err != nil {
		return nil, err
	}

	return s, nil
}

// GetByOwnerWithFilter получает расписания владельца с фильтрацией
// по лодке, статусу и периоду дат
func (r *Repository) GetByOwnerWithFilter(ctx context.Context, filter domain.OwnerSchedulesFilter) ([]*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(scheduleColumns...).
		From("schedules").
		Where(squirrel.Eq{"owner_id": filter.OwnerID}).
		OrderBy("schedule_date ASC, id ASC")

	if filter.BoatID != nil {
		builder = builder.Where(squirrel.Eq{"boat_id": *filter.BoatID})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"schedule_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"schedule_date": *filter.EndDate})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwnerWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	schedules, err := r.querySchedules(ctx, executor, query, args)
	if err != nil {
		return nil, err
	}

	if err := r.loadChildren(ctx, executor, schedules); err != nil {
		return nil, err
	}

	return schedules, nil
}

// GetActiveByBoatAndDay получает ACTIVE расписания лодки, дата которых
// попадает в суточное окно [startOfDay, startOfDay + 24h)
// Используется проверкой конфликтов: контендом является только одна
// физическая лодка в один календарный день
func (r *Repository) GetActiveByBoatAndDay(ctx context.Context, boatID int64, day time.Time) ([]*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	startOfDay := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("schedules").
		Where(squirrel.Eq{"boat_id": boatID}).
		Where(squirrel.Eq{"status": domain.StatusActive}).
		Where(squirrel.GtOrEq{"schedule_date": startOfDay}).
		Where(squirrel.Lt{"schedule_date": endOfDay}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByBoatAndDay - build select query: %v", ErrBuildQuery, err)
	}

	schedules, err := r.querySchedules(ctx, executor, query, args)
	if err != nil {
		return nil, err
	}

	if err := r.loadChildren(ctx, executor, schedules); err != nil {
		return nil, err
	}

	return schedules, nil
}

// Update частично обновляет поля расписания
// Обновляются только не-nil поля патча; повторная валидация маршрута
// и проверка конфликтов на этом пути не выполняются
func (r *Repository) Update(ctx context.Context, id int64, upd domain.ScheduleUpdate) (*domain.Schedule, error) {
	if upd.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update("schedules").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if upd.Name != nil {
		builder = builder.Set("name", *upd.Name)
	}
	if upd.PricingTier != nil {
		builder = builder.Set("pricing_tier", *upd.PricingTier)
	}
	if upd.Status != nil {
		builder = builder.Set("status", *upd.Status)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return nil, ErrScheduleNotFound
	}

	return r.GetByID(ctx, id)
}

// UpdateStatus обновляет статус расписания
// Используется мягким удалением (status = CANCELLED)
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ScheduleStatus) error {
	if _, ok := domain.ToScheduleStatus(string(status)); !ok {
		return ErrInvalidStatus
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("schedules").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

// Вспомогательные методы

func (r *Repository) querySchedules(ctx context.Context, executor DBExecutor, query string, args []interface{}) ([]*domain.Schedule, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querySchedules - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var schedules []*domain.Schedule
	for rows.Next() {
		s, err := scanSchedule(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: querySchedules - scan schedule: %v", ErrScanRow, err)
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: querySchedules - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}

// loadChildren загружает остановки и отрезки для набора расписаний одним
// запросом на таблицу (IN по schedule_id)
func (r *Repository) loadChildren(ctx context.Context, executor DBExecutor, schedules []*domain.Schedule) error {
	if len(schedules) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(schedules))
	byID := make(map[int64]*domain.Schedule, len(schedules))
	for _, s := range schedules {
		ids = append(ids, s.ID)
		byID[s.ID] = s
	}

	if err := r.loadStops(ctx, executor, ids, byID); err != nil {
		return err
	}
	return r.loadSegments(ctx, executor, ids, byID)
}

func (r *Repository) loadStops(ctx context.Context, executor DBExecutor, ids []int64, byID map[int64]*domain.Schedule) error {
	query, args, err := psqlbuilder.Select(
		"id",
		"schedule_id",
		"name",
		"location",
		"sequence_order",
	).
		From("schedule_stops").
		Where(squirrel.Eq{"schedule_id": ids}).
		OrderBy("schedule_id ASC, sequence_order ASC").
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
		if s, ok := byID[stop.ParentID]; ok {
			s.Stops = append(s.Stops, stop)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadStops - rows error: %v", ErrScanRow, err)
	}

	return nil
}

func (r *Repository) loadSegments(ctx context.Context, executor DBExecutor, ids []int64, byID map[int64]*domain.Schedule) error {
	query, args, err := psqlbuilder.Select(
		"id",
		"schedule_id",
		"origin_stop",
		"dest_stop",
		"departure_time",
		"arrival_time",
		"departs_at",
		"arrives_at",
		"sequence_order",
	).
		From("schedule_segments").
		Where(squirrel.Eq{"schedule_id": ids}).
		OrderBy("schedule_id ASC, sequence_order ASC").
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
			&seg.DepartsAt,
			&seg.ArrivesAt,
			&seg.SequenceOrder,
		); err != nil {
			return fmt.Errorf("%w: loadSegments - scan segment: %v", ErrScanRow, err)
		}
		if s, ok := byID[seg.ParentID]; ok {
			s.Segments = append(s.Segments, seg)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadSegments - rows error: %v", ErrScanRow, err)
	}

	return nil
}

// scanSchedule сканирует строку таблицы schedules в domain.Schedule
// Принимает Scan-функцию, чтобы работать и с *sql.Row, и с *sql.Rows
func scanSchedule(scan func(dest ...interface{}) error) (*domain.Schedule, error) {
	var (
		s                  domain.Schedule
		recurrenceType     sql.NullString
		recurrenceInterval sql.NullInt64
		recurrenceWeekdays sql.NullString
		recurrenceEndDate  sql.NullTime
		createdAt          sql.NullTime
		updatedAt          sql.NullTime
	)

	err := scan(
		&s.ID,
		&s.OwnerID,
		&s.BoatID,
		&s.TemplateID,
		&s.Name,
		&s.BoatName,
		&s.ScheduleDate,
		&s.PricingTier,
		&recurrenceType,
		&recurrenceInterval,
		&recurrenceWeekdays,
		&recurrenceEndDate,
		&s.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if recurrenceType.Valid {
		pattern := &domain.RecurrencePattern{
			Type:     domain.RecurrenceType(recurrenceType.String),
			Weekdays: decodeWeekdays(recurrenceWeekdays.String),
		}
		if recurrenceInterval.Valid {
			pattern.Interval = int(recurrenceInterval.Int64)
		}
		if recurrenceEndDate.Valid {
			endDate := recurrenceEndDate.Time
			pattern.EndDate = &endDate
		}
		s.Recurrence = pattern
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// encodeWeekdays сериализует дни недели в строку вида "1,3,5"
// (номера time.Weekday: 0 = воскресенье)
func encodeWeekdays(weekdays []time.Weekday) string {
	if len(weekdays) == 0 {
		return ""
	}
	parts := make([]string, len(weekdays))
	for i, wd := range weekdays {
		parts[i] = strconv.Itoa(int(wd))
	}
	return strings.Join(parts, ",")
}

// decodeWeekdays разбирает строку вида "1,3,5" обратно в дни недели
// Некорректные элементы пропускаются
func decodeWeekdays(s string) []time.Weekday {
	if s == "" {
		return nil
	}
	var weekdays []time.Weekday
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 || n > 6 {
			continue
		}
		weekdays = append(weekdays, time.Weekday(n))
	}
	return weekdays
}

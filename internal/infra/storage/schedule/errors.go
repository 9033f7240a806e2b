package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание не найдено
	ErrScheduleNotFound = errors.New("schedule.repository: schedule not found")

	// ErrEmptyBatch возвращается при попытке батч-вставки пустого набора
	ErrEmptyBatch = errors.New("schedule.repository: empty batch")

	// ErrEmptyUpdate возвращается, когда в частичном обновлении нет полей
	ErrEmptyUpdate = errors.New("schedule.repository: no fields to update")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("schedule.repository: invalid schedule status")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)

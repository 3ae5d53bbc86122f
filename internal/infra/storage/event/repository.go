package event

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/padelcore/PCM-ScheduleService/internal/domain"
	"github.com/padelcore/PCM-ScheduleService/pkg/dbmetrics"
	"github.com/padelcore/PCM-ScheduleService/pkg/psqlbuilder"
	"github.com/padelcore/PCM-ScheduleService/pkg/types"
)

// eventColumns полный набор колонок таблицы events в порядке сканирования
var eventColumns = []string{
	"id",
	"event_date",
	"start_time",
	"end_time",
	"class_type",
	"instructor_id",
	"court_id",
	"student_ids",
	"state",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с событиями календаря
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория событий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое событие календаря.
// Если в контексте передана активная транзакция, использует её -
// создание с проверкой конфликтов выполняется в сериализуемой транзакции.
func (r *Repository) Create(ctx context.Context, event *domain.CalendarEvent) (*domain.CalendarEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("events").
		Columns(
			"event_date",
			"start_time",
			"end_time",
			"class_type",
			"instructor_id",
			"court_id",
			"student_ids",
			"state",
		).
		Values(
			event.Date,
			event.StartTime.String(),
			event.EndTime.String(),
			event.Type,
			event.InstructorID,
			event.CourtID,
			pq.Array(event.StudentIDs),
			event.State,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&event.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	event.CreatedAt = createdAt.Time
	event.UpdatedAt = updatedAt.Time

	return event, nil
}

// GetByID получает событие по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.CalendarEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(eventColumns...).
		From("events").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	event, err := scanEventRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan event: %v", ErrScanRow, err)
	}

	return event, nil
}

// GetByDate получает снимок активных событий на указанный день.
// Снимок используется проверкой конфликтов; отменённые события не
// занимают преподавателя, корт и учеников и поэтому исключаются.
//
// Внутри транзакции строки блокируются (FOR UPDATE): две конкурирующие
// брони одного слота сериализуются на уровне БД.
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.CalendarEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStates := make([]string, len(domain.ActiveStates))
	for i, s := range domain.ActiveStates {
		activeStates[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(eventColumns...).
		From("events").
		Where(squirrel.Eq{"event_date": dateOnly(date)}).
		Where(squirrel.Eq{"state": activeStates}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// GetWithFilter получает события календаря с гибкой фильтрацией
// по периоду, преподавателю и корту. Отменённые события включаются
// только при IncludeCancelled.
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.EventsFilter) ([]*domain.CalendarEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(eventColumns...).
		From("events")

	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"event_date": dateOnly(*filter.From)})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"event_date": dateOnly(*filter.To)})
	}
	if filter.InstructorID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"instructor_id": *filter.InstructorID})
	}
	if filter.CourtID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"court_id": *filter.CourtID})
	}
	if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"state": string(domain.StateCancelled)})
	}

	selectBuilder = selectBuilder.OrderBy("event_date ASC, start_time ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// Update обновляет событие календаря целиком
func (r *Repository) Update(ctx context.Context, event *domain.CalendarEvent) (*domain.CalendarEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("events").
		Set("event_date", event.Date).
		Set("start_time", event.StartTime.String()).
		Set("end_time", event.EndTime.String()).
		Set("class_type", event.Type).
		Set("instructor_id", event.InstructorID).
		Set("court_id", event.CourtID).
		Set("student_ids", pq.Array(event.StudentIDs)).
		Set("state", event.State).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": event.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	event.CreatedAt = createdAt.Time
	event.UpdatedAt = updatedAt.Time

	return event, nil
}

// UpdateState обновляет состояние события (подтверждение, отмена)
func (r *Repository) UpdateState(ctx context.Context, id int64, state domain.EventState) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("events").
		Set("state", state).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateState - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateState - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateState - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}

// Delete удаляет событие календаря
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("events").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanEventRow сканирует одну строку таблицы events
func scanEventRow(row rowScanner) (*domain.CalendarEvent, error) {
	var (
		event                domain.CalendarEvent
		startTime, endTime   string
		studentIDs           pq.Int64Array
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&event.ID,
		&event.Date,
		&startTime,
		&endTime,
		&event.Type,
		&event.InstructorID,
		&event.CourtID,
		&studentIDs,
		&event.State,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	event.StartTime = types.TimeString(startTime)
	event.EndTime = types.TimeString(endTime)
	event.StudentIDs = []int64(studentIDs)
	event.CreatedAt = createdAt.Time
	event.UpdatedAt = updatedAt.Time

	return &event, nil
}

// scanEvents сканирует все строки результата запроса
func scanEvents(rows *sql.Rows) ([]*domain.CalendarEvent, error) {
	events := make([]*domain.CalendarEvent, 0)

	for rows.Next() {
		event, err := scanEventRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan event: %v", ErrScanRow, err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows error: %v", ErrScanRow, err)
	}

	return events, nil
}

// dateOnly обнуляет время, оставляя только календарную дату
func dateOnly(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

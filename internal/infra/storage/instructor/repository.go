package instructor

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/padelcore/PCM-ScheduleService/internal/domain"
	"github.com/padelcore/PCM-ScheduleService/pkg/dbmetrics"
	"github.com/padelcore/PCM-ScheduleService/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

var instructorColumns = []string{
	"id",
	"name",
	"email",
	"phone",
	"active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с преподавателями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория преподавателей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового преподавателя
func (r *Repository) Create(ctx context.Context, instructor *domain.Instructor) (*domain.Instructor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("instructors").
		Columns("name", "email", "phone", "active").
		Values(instructor.Name, instructor.Email, instructor.Phone, instructor.Active).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&instructor.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	instructor.CreatedAt = createdAt.Time
	instructor.UpdatedAt = updatedAt.Time

	return instructor, nil
}

// GetByID получает преподавателя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Instructor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(instructorColumns...).
		From("instructors").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	instructor, err := scanInstructorRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrInstructorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan instructor: %v", ErrScanRow, err)
	}

	return instructor, nil
}

// GetAll получает список преподавателей.
// При onlyActive возвращаются только активные преподаватели.
func (r *Repository) GetAll(ctx context.Context, onlyActive bool) ([]*domain.Instructor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(instructorColumns...).
		From("instructors").
		OrderBy("name ASC")

	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	instructors := make([]*domain.Instructor, 0)
	for rows.Next() {
		instructor, err := scanInstructorRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan instructor: %v", ErrScanRow, err)
		}
		instructors = append(instructors, instructor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return instructors, nil
}

// Update обновляет данные преподавателя
func (r *Repository) Update(ctx context.Context, instructor *domain.Instructor) (*domain.Instructor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("instructors").
		Set("name", instructor.Name).
		Set("email", instructor.Email).
		Set("phone", instructor.Phone).
		Set("active", instructor.Active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": instructor.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrInstructorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	instructor.CreatedAt = createdAt.Time
	instructor.UpdatedAt = updatedAt.Time

	return instructor, nil
}

// Deactivate помечает преподавателя неактивным.
// Преподаватели не удаляются: прошедшие занятия ссылаются на них.
func (r *Repository) Deactivate(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("instructors").
		Set("active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Deactivate - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Deactivate - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Deactivate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrInstructorNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanInstructorRow(row rowScanner) (*domain.Instructor, error) {
	var (
		instructor           domain.Instructor
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&instructor.ID,
		&instructor.Name,
		&instructor.Email,
		&instructor.Phone,
		&instructor.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	instructor.CreatedAt = createdAt.Time
	instructor.UpdatedAt = updatedAt.Time

	return &instructor, nil
}

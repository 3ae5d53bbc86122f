package student

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/padelcore/PCM-ScheduleService/internal/domain"
	"github.com/padelcore/PCM-ScheduleService/pkg/dbmetrics"
	"github.com/padelcore/PCM-ScheduleService/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

var studentColumns = []string{
	"id",
	"name",
	"email",
	"phone",
	"level",
	"active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с учениками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория учеников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового ученика
func (r *Repository) Create(ctx context.Context, student *domain.Student) (*domain.Student, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("students").
		Columns("name", "email", "phone", "level", "active").
		Values(student.Name, student.Email, student.Phone, student.Level, student.Active).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&student.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	student.CreatedAt = createdAt.Time
	student.UpdatedAt = updatedAt.Time

	return student, nil
}

// GetByID получает ученика по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Student, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	student, err := scanStudentRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrStudentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan student: %v", ErrScanRow, err)
	}

	return student, nil
}

// GetByIDs получает учеников по списку ID.
// Используется проверкой состава занятия.
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Student, error) {
	if len(ids) == 0 {
		return []*domain.Student{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(studentColumns...).
		From("students").
		Where(squirrel.Expr("id = ANY(?)", pq.Array(ids))).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanStudents(rows)
}

// GetAll получает список учеников.
// При onlyActive возвращаются только активные ученики.
func (r *Repository) GetAll(ctx context.Context, onlyActive bool) ([]*domain.Student, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(studentColumns...).
		From("students").
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

	return scanStudents(rows)
}

// Update обновляет данные ученика
func (r *Repository) Update(ctx context.Context, student *domain.Student) (*domain.Student, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("students").
		Set("name", student.Name).
		Set("email", student.Email).
		Set("phone", student.Phone).
		Set("level", student.Level).
		Set("active", student.Active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": student.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrStudentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	student.CreatedAt = createdAt.Time
	student.UpdatedAt = updatedAt.Time

	return student, nil
}

// Deactivate помечает ученика неактивным
func (r *Repository) Deactivate(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("students").
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
		return ErrStudentNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStudentRow(row rowScanner) (*domain.Student, error) {
	var (
		student              domain.Student
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&student.ID,
		&student.Name,
		&student.Email,
		&student.Phone,
		&student.Level,
		&student.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	student.CreatedAt = createdAt.Time
	student.UpdatedAt = updatedAt.Time

	return &student, nil
}

func scanStudents(rows *sql.Rows) ([]*domain.Student, error) {
	students := make([]*domain.Student, 0)

	for rows.Next() {
		student, err := scanStudentRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan student: %v", ErrScanRow, err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows error: %v", ErrScanRow, err)
	}

	return students, nil
}

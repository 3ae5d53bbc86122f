package sale

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

var saleColumns = []string{
	"id",
	"student_id",
	"package_name",
	"classes",
	"price",
	"payment_method",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с продажами пакетов занятий
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория продаж
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create регистрирует продажу пакета занятий
func (r *Repository) Create(ctx context.Context, sale *domain.PackageSale) (*domain.PackageSale, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("package_sales").
		Columns("student_id", "package_name", "classes", "price", "payment_method", "notes").
		Values(sale.StudentID, sale.PackageName, sale.Classes, sale.Price, sale.PaymentMethod, sale.Notes).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&sale.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	sale.CreatedAt = createdAt.Time
	sale.UpdatedAt = updatedAt.Time

	return sale, nil
}

// GetByID получает продажу по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.PackageSale, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(saleColumns...).
		From("package_sales").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	sale, err := scanSaleRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSaleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan sale: %v", ErrScanRow, err)
	}

	return sale, nil
}

// GetByStudentID получает продажи ученика, новые сверху
func (r *Repository) GetByStudentID(ctx context.Context, studentID int64) ([]*domain.PackageSale, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(saleColumns...).
		From("package_sales").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByStudentID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStudentID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	sales := make([]*domain.PackageSale, 0)

	for rows.Next() {
		sale, err := scanSaleRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan sale: %v", ErrScanRow, err)
		}
		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows error: %v", ErrScanRow, err)
	}

	return sales, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSaleRow(row rowScanner) (*domain.PackageSale, error) {
	var (
		sale                 domain.PackageSale
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&sale.ID,
		&sale.StudentID,
		&sale.PackageName,
		&sale.Classes,
		&sale.Price,
		&sale.PaymentMethod,
		&sale.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	sale.CreatedAt = createdAt.Time
	sale.UpdatedAt = updatedAt.Time

	return &sale, nil
}

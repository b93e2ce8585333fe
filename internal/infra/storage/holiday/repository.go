package holiday

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/asperus-scheduler/internal/domain"
	"github.com/m04kA/asperus-scheduler/pkg/civiltime"
	"github.com/m04kA/asperus-scheduler/pkg/dbmetrics"
	"github.com/m04kA/asperus-scheduler/pkg/psqlbuilder"
)

const table = "holidays"

// Repository репозиторий для работы с праздниками
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория праздников
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByDate получает праздник на дату
func (r *Repository) GetByDate(ctx context.Context, date time.Time) (*domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("date", "description", "created_at").
		From(table).
		Where(squirrel.Eq{"date": civiltime.FormatDate(date)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	var h domain.Holiday
	err = executor.QueryRowContext(ctx, query, args...).Scan(&h.Date, &h.Description, &h.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrHolidayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - scan holiday: %v", ErrScanRow, err)
	}

	return &h, nil
}

// ListFrom получает праздники начиная с даты включительно
func (r *Repository) ListFrom(ctx context.Context, from time.Time) ([]domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("date", "description", "created_at").
		From(table).
		Where(squirrel.GtOrEq{"date": civiltime.FormatDate(from)}).
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListFrom - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListFrom - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	holidays := make([]domain.Holiday, 0)
	for rows.Next() {
		var h domain.Holiday
		if err := rows.Scan(&h.Date, &h.Description, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListFrom - scan row: %v", ErrScanRow, err)
		}
		holidays = append(holidays, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListFrom - rows error: %v", ErrScanRow, err)
	}

	return holidays, nil
}

// Create добавляет праздник
func (r *Repository) Create(ctx context.Context, h *domain.Holiday) (*domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("date", "description").
		Values(civiltime.FormatDate(h.Date), h.Description).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&h.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrHolidayExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return h, nil
}

// Delete удаляет праздник на дату
func (r *Repository) Delete(ctx context.Context, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"date": civiltime.FormatDate(date)}).
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
		return ErrHolidayNotFound
	}

	return nil
}

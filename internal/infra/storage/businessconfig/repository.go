package businessconfig

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/asperus-scheduler/internal/domain"
	"github.com/m04kA/asperus-scheduler/pkg/dbmetrics"
	"github.com/m04kA/asperus-scheduler/pkg/psqlbuilder"
)

// Repository репозиторий для чтения часов работы и справочников (профессионалы, услуги)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBusinessHours получает строку часов работы.
// Строк может быть несколько: используется строка с наименьшим id.
func (r *Repository) GetBusinessHours(ctx context.Context) (*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"opening_time",
		"closing_time",
		"slot_interval_minutes",
		"instructions",
	).
		From("business_hours").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHours - build select query: %v", ErrBuildQuery, err)
	}

	var (
		hours        domain.BusinessHours
		interval     sql.NullInt64
		instructions sql.NullString
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&hours.ID,
		&hours.OpeningTime,
		&hours.ClosingTime,
		&interval,
		&instructions,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHours - scan business hours: %v", ErrScanRow, err)
	}

	if interval.Valid {
		minutes := int(interval.Int64)
		hours.SlotIntervalMinutes = &minutes
	}
	if instructions.Valid {
		hours.Instructions = &instructions.String
	}

	return &hours, nil
}

// ListProfessionals получает профессионалов в порядке отображения
func (r *Repository) ListProfessionals(ctx context.Context) ([]domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "position").
		From("professionals").
		OrderBy("position ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListProfessionals - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListProfessionals - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	professionals := make([]domain.Professional, 0)
	for rows.Next() {
		var p domain.Professional
		if err := rows.Scan(&p.ID, &p.Name, &p.Position); err != nil {
			return nil, fmt.Errorf("%w: ListProfessionals - scan row: %v", ErrScanRow, err)
		}
		professionals = append(professionals, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListProfessionals - rows error: %v", ErrScanRow, err)
	}

	return professionals, nil
}

// ListServices получает услуги в порядке отображения
func (r *Repository) ListServices(ctx context.Context) ([]domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "position").
		From("services").
		OrderBy("position ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]domain.Service, 0)
	for rows.Next() {
		var s domain.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Position); err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

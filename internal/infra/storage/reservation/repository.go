package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/asperus-scheduler/internal/domain"
	"github.com/m04kA/asperus-scheduler/pkg/civiltime"
	"github.com/m04kA/asperus-scheduler/pkg/dbmetrics"
	"github.com/m04kA/asperus-scheduler/pkg/psqlbuilder"
	"github.com/m04kA/asperus-scheduler/pkg/types"
)

const table = "reservations"

var columns = []string{
	"id",
	"slot_date",
	"slot_time",
	"client_name",
	"client_contact",
	"professional",
	"service",
	"status",
	"outcome",
	"retrieval_code",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Нарушение уникального индекса активных слотов (23505) и конфликт сериализации (40001)
// возвращаются как ErrSlotTaken: это окончательное решение хранилища о занятости слота.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"id",
			"slot_date",
			"slot_time",
			"client_name",
			"client_contact",
			"professional",
			"service",
			"status",
			"retrieval_code",
			"created_at",
			"updated_at",
		).
		Values(
			res.ID,
			civiltime.FormatDate(res.Date),
			res.Time,
			res.ClientName,
			res.ClientContact,
			res.Professional,
			res.Service,
			res.Status,
			res.RetrievalCode,
			res.CreatedAt,
			res.CreatedAt,
		).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err != nil {
		if isSlotConflict(err) {
			return nil, fmt.Errorf("%w: %v", ErrSlotTaken, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// HasActiveConflict проверяет, занят ли слот активным бронированием.
// Назначенное бронирование конфликтует с тем же профессионалом и с неназначенным;
// неназначенное (professional == nil) конфликтует с любым активным бронированием на это время.
// excludeID исключает само переносимое бронирование.
func (r *Repository) HasActiveConflict(ctx context.Context, date time.Time, at types.TimeString, professional *string, excludeID *string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("1").
		From(table).
		Where(squirrel.Eq{"slot_date": civiltime.FormatDate(date)}).
		Where(squirrel.Eq{"slot_time": at}).
		Where(squirrel.Eq{"status": activeStatusStrings()}).
		Limit(1)

	if professional != nil {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Eq{"professional": *professional},
			squirrel.Eq{"professional": nil},
		})
	}
	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasActiveConflict - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		if isSlotConflict(err) {
			return false, fmt.Errorf("%w: %v", ErrSlotTaken, err)
		}
		return false, fmt.Errorf("%w: HasActiveConflict - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// ActiveTimesByDate возвращает время начала активных бронирований на дату.
// Если указан профессионал, учитываются его бронирования и неназначенные.
func (r *Repository) ActiveTimesByDate(ctx context.Context, date time.Time, professional *string) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("slot_time").
		From(table).
		Where(squirrel.Eq{"slot_date": civiltime.FormatDate(date)}).
		Where(squirrel.Eq{"status": activeStatusStrings()}).
		OrderBy("slot_time ASC")

	if professional != nil {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Eq{"professional": *professional},
			squirrel.Eq{"professional": nil},
		})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ActiveTimesByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ActiveTimesByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	times := make([]types.TimeString, 0)
	for rows.Next() {
		var t types.TimeString
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: ActiveTimesByDate - scan row: %v", ErrScanRow, err)
		}
		times = append(times, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ActiveTimesByDate - rows error: %v", ErrScanRow, err)
	}

	return times, nil
}

// GetByID получает бронирование по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// List получает бронирования с гибкой фильтрацией
//
// Примеры использования:
//
// 1. Лист дня для оператора (только активные):
//    filter := domain.ReservationsFilter{Date: &date}
//
// 2. Поиск для отмены по имени, контакту, дате и времени:
//    filter := domain.ReservationsFilter{Date: &date, Time: &at, ClientName: &name, ClientContact: &contact}
//
// 3. Все бронирования контакта начиная с сегодняшнего дня:
//    filter := domain.ReservationsFilter{ClientContact: &contact, FromDate: &today}
//
// Внутри транзакции строки блокируются (FOR UPDATE).
func (r *Repository) List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("slot_date ASC", "slot_time ASC", "created_at ASC")

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"slot_date": civiltime.FormatDate(*filter.Date)})
	}
	if filter.FromDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"slot_date": civiltime.FormatDate(*filter.FromDate)})
	}
	if filter.Time != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"slot_time": *filter.Time})
	}
	if filter.Professional != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"professional": *filter.Professional})
	}
	if filter.ClientName != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"client_name": *filter.ClientName})
	}
	if filter.ClientContact != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"client_contact": *filter.ClientContact})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": activeStatusStrings()})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// FindActiveByCode получает активные бронирования контакта с данным кодом, начиная с даты fromDate
func (r *Repository) FindActiveByCode(ctx context.Context, contact, code string, fromDate time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"client_contact": contact}).
		Where(squirrel.Eq{"retrieval_code": code}).
		Where(squirrel.Eq{"status": activeStatusStrings()}).
		Where(squirrel.GtOrEq{"slot_date": civiltime.FormatDate(fromDate)}).
		OrderBy("slot_date ASC", "slot_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveByCode - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveByCode - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// ExistsActiveCode проверяет, есть ли у контакта активное бронирование с таким кодом
func (r *Repository) ExistsActiveCode(ctx context.Context, contact, code string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From(table).
		Where(squirrel.Eq{"client_contact": contact}).
		Where(squirrel.Eq{"retrieval_code": code}).
		Where(squirrel.Eq{"status": activeStatusStrings()}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsActiveCode - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsActiveCode - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", status).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "UpdateStatus", query, args)
}

// SetOutcome записывает итог визита
func (r *Repository) SetOutcome(ctx context.Context, id string, outcome domain.Outcome, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("outcome", outcome).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetOutcome - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "SetOutcome", query, args)
}

// Reschedule переносит бронирование на новый слот и выставляет статус RESCHEDULED
func (r *Repository) Reschedule(ctx context.Context, id string, date time.Time, at types.TimeString, updatedAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("slot_date", civiltime.FormatDate(date)).
		Set("slot_time", at).
		Set("status", domain.StatusRescheduled).
		Set("updated_at", updatedAt).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Reschedule - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Reschedule", query, args)
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isSlotConflict(err) {
			return fmt.Errorf("%w: %v", ErrSlotTaken, err)
		}
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		res                  domain.Reservation
		professional         sql.NullString
		outcome              sql.NullString
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&res.ID,
		&res.Date,
		&res.Time,
		&res.ClientName,
		&res.ClientContact,
		&professional,
		&res.Service,
		&res.Status,
		&outcome,
		&res.RetrievalCode,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if professional.Valid {
		res.Professional = &professional.String
	}
	if outcome.Valid {
		o := domain.Outcome(outcome.String)
		res.Outcome = &o
	}
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

func activeStatusStrings() []string {
	statuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		statuses[i] = string(s)
	}
	return statuses
}

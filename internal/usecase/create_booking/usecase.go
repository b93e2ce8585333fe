package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/asperus-scheduler/internal/domain"
	reservationRepo "github.com/m04kA/asperus-scheduler/internal/infra/storage/reservation"
	"github.com/m04kA/asperus-scheduler/pkg/civiltime"
	"github.com/m04kA/asperus-scheduler/pkg/txmanager"
	"github.com/m04kA/asperus-scheduler/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	holidays        HolidayChecker
	calendar        Calendar
	txManager       TransactionManager
	notifier        Notifier
	metrics         Metrics
	logger          Logger
	opts            Options
	newCode         func() (string, error)
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	holidays HolidayChecker,
	calendar Calendar,
	txManager TransactionManager,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
	opts Options,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		holidays:        holidays,
		calendar:        calendar,
		txManager:       txManager,
		notifier:        notifier,
		metrics:         metrics,
		logger:          logger,
		opts:            opts,
		newCode:         generateRetrievalCode,
	}
}

// Execute выполняет use case создания бронирования
//
// Проверки по порядку:
// 1. Обязательные поля → validation
// 2. Праздничный день → holiday
// 3. Слот уже наступил → validation
// 4. Активное бронирование на (дата, время, профессионал или без него) → conflict
//
// Проверка и вставка выполняются в сериализуемой транзакции; окончательное
// решение о конфликте принимает хранилище (уникальный индекс или сбой сериализации).
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	res, err := uc.validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.metrics.IncReservation("invalid")
		return nil, err
	}

	dateStr := civiltime.FormatDate(res.Date)
	uc.logger.Info("CreateBooking: date=%s time=%s professional=%q service=%q",
		dateStr, res.Time, req.Professional, res.Service)

	// 2. Праздник
	holiday, err := uc.holidays.IsHoliday(ctx, res.Date)
	if err != nil {
		uc.logger.Error("CreateBooking: holiday check failed for date=%s: %v", dateStr, err)
		uc.metrics.IncReservation("error")
		return nil, fmt.Errorf("%w: holiday check: %v", ErrInternal, err)
	}
	if holiday {
		uc.logger.Warn("CreateBooking: date=%s is a holiday", dateStr)
		uc.metrics.IncReservation("holiday")
		return nil, ErrHoliday
	}

	// 3. Прошедший слот
	if uc.calendar.HasStarted(res.Date, res.Time) {
		uc.logger.Warn("CreateBooking: slot date=%s time=%s has already started", dateStr, res.Time)
		uc.metrics.IncReservation("invalid")
		return nil, ErrSlotElapsed
	}

	// 4. Проверка конфликта и вставка
	var created *domain.Reservation
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		taken, err := uc.reservationRepo.HasActiveConflict(txCtx, res.Date, res.Time, res.Professional, nil)
		if err != nil {
			return mapStorageError("conflict check", err)
		}
		if taken {
			return ErrSlotTaken
		}

		code, err := uc.issueCode(txCtx, res.ClientContact)
		if err != nil {
			return err
		}

		now := uc.calendar.Timestamp()
		res.ID = uuid.NewString()
		res.RetrievalCode = code
		res.Status = domain.StatusScheduled
		res.CreatedAt = now
		res.UpdatedAt = now

		created, err = uc.reservationRepo.Create(txCtx, res)
		if err != nil {
			return mapStorageError("create reservation", err)
		}
		return nil
	})
	if err != nil {
		// Сбой сериализации может прийти на коммите
		if errors.Is(err, txmanager.ErrSerialization) {
			err = ErrSlotTaken
		}
		if errors.Is(err, domain.ErrConflict) {
			uc.logger.Warn("CreateBooking: slot date=%s time=%s is taken", dateStr, res.Time)
			uc.metrics.IncReservation("conflict")
			return nil, err
		}
		uc.logger.Error("CreateBooking: failed for date=%s time=%s: %v", dateStr, res.Time, err)
		uc.metrics.IncReservation("error")
		return nil, err
	}

	uc.metrics.IncReservation("created")
	uc.notifier.Notify(ctx, domain.EventReservationCreated, created)

	uc.logger.Info("CreateBooking: successfully created reservation id=%s", created.ID)
	return newResponse(created), nil
}

// validateRequest проверяет обязательные поля и собирает черновик бронирования
func (uc *UseCase) validateRequest(req *Request) (*domain.Reservation, error) {
	date, err := uc.calendar.ParseDate(strings.TrimSpace(req.Date))
	if err != nil {
		return nil, ErrInvalidDate
	}
	at, err := types.NewTimeStringFromString(strings.TrimSpace(req.Time))
	if err != nil {
		return nil, ErrInvalidTime
	}
	name, err := domain.RequireText("name", req.Name, domain.MaxClientNameLength)
	if err != nil {
		return nil, err
	}
	contact, err := domain.RequireText("contact", req.Contact, domain.MaxClientContactLength)
	if err != nil {
		return nil, err
	}
	professional, err := domain.RequireText("professional", req.Professional, domain.MaxClientNameLength)
	if err != nil {
		return nil, err
	}
	service, err := domain.RequireText("service", req.Service, domain.MaxClientNameLength)
	if err != nil {
		return nil, err
	}

	return &domain.Reservation{
		Date:          date,
		Time:          at,
		ClientName:    name,
		ClientContact: contact,
		Professional:  &professional,
		Service:       service,
	}, nil
}

// issueCode выдает код доступа; с UniqueCodePerContact избегает совпадений у одного контакта
func (uc *UseCase) issueCode(ctx context.Context, contact string) (string, error) {
	for i := 0; i < maxCodeDraws; i++ {
		code, err := uc.newCode()
		if err != nil {
			return "", fmt.Errorf("%w: generate retrieval code: %v", ErrInternal, err)
		}
		if !uc.opts.UniqueCodePerContact {
			return code, nil
		}

		exists, err := uc.reservationRepo.ExistsActiveCode(ctx, contact, code)
		if err != nil {
			return "", mapStorageError("retrieval code check", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", ErrCodeExhausted
}

func mapStorageError(op string, err error) error {
	if errors.Is(err, reservationRepo.ErrSlotTaken) {
		return ErrSlotTaken
	}
	return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
}

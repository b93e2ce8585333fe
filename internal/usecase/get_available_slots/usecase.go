package get_available_slots

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/asperus-scheduler/pkg/civiltime"
	"github.com/m04kA/asperus-scheduler/pkg/types"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	holidays        HolidayRegistry
	businessHours   BusinessHoursProvider
	calendar        Calendar
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	holidays HolidayRegistry,
	businessHours BusinessHoursProvider,
	calendar Calendar,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		holidays:        holidays,
		businessHours:   businessHours,
		calendar:        calendar,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
//
// Порядок:
// 1. Праздник → пустой список и данные праздника
// 2. Дата в прошлом → пустой список (не ошибка)
// 3. Кандидаты из часов работы минус занятые слоты
// 4. Для сегодняшней даты убираются уже наступившие слоты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	date, err := uc.calendar.ParseDate(strings.TrimSpace(req.Date))
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: invalid date=%q", req.Date)
		return nil, ErrInvalidDate
	}

	var professional *string
	if p := strings.TrimSpace(req.Professional); p != "" {
		professional = &p
	}

	uc.logger.Info("GetAvailableSlots: date=%s professional=%q", civiltime.FormatDate(date), req.Professional)

	// 1. Праздник
	holiday, err := uc.holidays.Find(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: holiday lookup: %v", ErrInternal, err)
	}
	if holiday != nil {
		uc.logger.Info("GetAvailableSlots: date=%s is a holiday", civiltime.FormatDate(date))
		return &Response{Date: date, Slots: []types.TimeString{}, Holiday: holiday}, nil
	}

	// 2. Прошедшая дата
	if uc.calendar.IsPast(date) {
		return &Response{Date: date, Slots: []types.TimeString{}}, nil
	}

	// 3. Часы работы
	hours, err := uc.businessHours.Load(ctx)
	if err != nil {
		return nil, err
	}
	interval := hours.Interval()
	candidates := GenerateSlots(hours.OpeningTime, interval)

	booked, err := uc.reservationRepo.ActiveTimesByDate(ctx, date, professional)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations for date=%s: %v", civiltime.FormatDate(date), err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 4. Сегодня
	slots := FilterAvailable(candidates, booked, interval, uc.calendar.IsToday(date), uc.calendar.Now())

	uc.logger.Info("GetAvailableSlots: date=%s candidates=%d booked=%d available=%d",
		civiltime.FormatDate(date), len(candidates), len(booked), len(slots))

	return &Response{Date: date, Slots: slots}, nil
}

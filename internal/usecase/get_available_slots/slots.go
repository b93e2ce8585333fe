package get_available_slots

import (
	"github.com/m04kA/asperus-scheduler/internal/domain"
	"github.com/m04kA/asperus-scheduler/pkg/types"
)

// GenerateSlots генерирует кандидатов open, open+I, ... пока слот заканчивается не позже 21:00.
// Настроенное время закрытия последовательность не укорачивает.
// interval <= 0 заменяется на 60 минут; некорректное open или open позже 21:00 дают пустой список.
func GenerateSlots(open types.TimeString, interval int) []types.TimeString {
	if interval <= 0 {
		interval = domain.DefaultSlotIntervalMinutes
	}

	start := open.Minutes()
	end := domain.LatestSlotEnd.Minutes()
	if start < 0 || start >= end {
		return []types.TimeString{}
	}

	slots := make([]types.TimeString, 0, (end-start)/interval+1)
	for t := start; t+interval <= end; t += interval {
		slot, err := types.NewTimeStringFromMinutes(t)
		if err != nil {
			break
		}
		slots = append(slots, slot)
	}

	return slots
}

// FilterAvailable убирает занятые слоты, а для сегодняшней даты и слоты раньше
// ближайшей границы интервала: ceil(now / I) * I
//
// Пример: now = 14:07, I = 30 → первый доступный слот 14:30
func FilterAvailable(candidates, booked []types.TimeString, interval int, isToday bool, now types.TimeString) []types.TimeString {
	if interval <= 0 {
		interval = domain.DefaultSlotIntervalMinutes
	}

	// Время бронирований нормализуется до минут: "10:00:00" и "10:00" совпадают
	taken := make(map[int]struct{}, len(booked))
	for _, b := range booked {
		if m := b.Minutes(); m >= 0 {
			taken[m] = struct{}{}
		}
	}

	cutoff := -1
	if isToday {
		cutoff = ceilToInterval(now.Minutes(), interval)
	}

	available := make([]types.TimeString, 0, len(candidates))
	for _, slot := range candidates {
		m := slot.Minutes()
		if _, ok := taken[m]; ok {
			continue
		}
		if m < cutoff {
			continue
		}
		available = append(available, slot)
	}

	return available
}

func ceilToInterval(minutes, interval int) int {
	if minutes <= 0 {
		return 0
	}
	return (minutes + interval - 1) / interval * interval
}

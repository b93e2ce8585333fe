package remove_holiday

import "context"

type HolidayService interface {
	Remove(ctx context.Context, date string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package events

import "errors"

var (
	// ErrConnect возвращается, если не удалось подключиться к брокеру
	ErrConnect = errors.New("events.publisher: failed to connect")

	// ErrPublish возвращается, если не удалось отправить событие
	ErrPublish = errors.New("events.publisher: failed to publish")
)

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/asperus-scheduler/internal/domain"
)

const msgInternalError = "внутренняя ошибка сервера"

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// MessageResponse тело ответа с сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

// RespondJSON сериализует data в JSON с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// DecodeJSON декодирует тело запроса; неизвестные поля считаются ошибкой
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// RespondError ответ с видом ошибки и сообщением
func RespondError(w http.ResponseWriter, status int, kind, message string) {
	RespondJSON(w, status, ErrorResponse{Kind: kind, Message: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, domain.ErrValidation.Error(), message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, domain.ErrNotFound.Error(), message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, domain.ErrConflict.Error(), message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, "unauthorized", message)
}

func RespondTooManyRequests(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusTooManyRequests, "rate_limited", message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, domain.ErrInternal.Error(), msgInternalError)
}

// StatusForKind HTTP статус для вида ошибки
func StatusForKind(kind string) int {
	switch kind {
	case domain.ErrValidation.Error(), domain.ErrHoliday.Error():
		return http.StatusBadRequest
	case domain.ErrConflict.Error():
		return http.StatusConflict
	case domain.ErrNotFound.Error():
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// RespondKindError отвечает по виду ошибки err.
// Пустой message заменяется текстом ошибки без префикса вида; внутренние ошибки наружу не раскрываются.
func RespondKindError(w http.ResponseWriter, err error, message string) {
	kind := domain.Kind(err)
	status := StatusForKind(kind)
	if status == http.StatusInternalServerError {
		RespondInternalError(w)
		return
	}
	if message == "" {
		message = strings.TrimPrefix(err.Error(), kind+": ")
	}
	RespondError(w, status, kind, message)
}

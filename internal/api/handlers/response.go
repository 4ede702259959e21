package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

const (
	// MaxBodyBytes предел тела запроса для публичных форм
	MaxBodyBytes = 1 << 20

	msgInternalError = "Erro interno do servidor. Tente novamente mais tarde."
	msgBodyTooLarge  = "Payload muito grande"
)

// ErrBodyTooLarge тело запроса больше допустимого
var ErrBodyTooLarge = errors.New("handlers: request body too large")

// StatusResponse ответ {success, message}, общий для форм и админки
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RespondJSON пишет v как JSON с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// RespondSuccess {success: true}
func RespondSuccess(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, StatusResponse{Success: true, Message: message})
}

// RespondError {success: false}
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, StatusResponse{Success: false, Message: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

func RespondTooLarge(w http.ResponseWriter) {
	RespondError(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// DecodeJSON декодирует тело запроса в v
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("handlers: empty request body")
	}
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("%w: limit %d bytes", ErrBodyTooLarge, tooLarge.Limit)
		}
		return err
	}
	return nil
}

// DecodeJSONLimited как DecodeJSON, но не читает больше limit байт.
// Заявленный Content-Length сверх лимита отклоняется сразу.
func DecodeJSONLimited(w http.ResponseWriter, r *http.Request, limit int64, v interface{}) error {
	if r.ContentLength > limit {
		return fmt.Errorf("%w: content-length %d", ErrBodyTooLarge, r.ContentLength)
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	return DecodeJSON(r, v)
}

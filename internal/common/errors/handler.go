// internal/common/errors/handler.go
package errors

import (
	"encoding/json"
	"net/http"
	"time"
)

// Responder translates service errors into HTTP responses. The registry
// never produces HTTP-shaped output; this is the only place the mapping
// from error codes to status codes and `detail` bodies happens.
type Responder struct {
	logger Logger
}

type Logger interface {
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

func NewResponder(logger Logger) *Responder {
	return &Responder{logger: logger}
}

// detailBody matches the error body shape of the HTTP contract.
type detailBody struct {
	Detail string `json:"detail"`
}

// WriteError normalizes any error to a ServiceError, logs it, and writes
// the JSON error body with the mapped status code.
func (h *Responder) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	svcErr := h.normalizeError(err)
	status := HTTPStatus(svcErr.Code)

	h.logError(r, svcErr, status)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(detailBody{Detail: svcErr.Message})
}

// normalizeError ensures we always have a ServiceError
func (h *Responder) normalizeError(err error) *ServiceError {
	if svcErr, ok := err.(*ServiceError); ok {
		return svcErr
	}
	return &ServiceError{
		Code:      ErrCodeInternal,
		Message:   "Internal server error",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

func (h *Responder) logError(r *http.Request, svcErr *ServiceError, status int) {
	fields := map[string]interface{}{
		"method":    r.Method,
		"path":      r.URL.Path,
		"errorCode": string(svcErr.Code),
		"detail":    svcErr.Message,
		"details":   svcErr.Details,
		"status":    status,
	}

	if IsClientError(svcErr.Code) {
		h.logger.Warn("request rejected", fields)
		return
	}
	h.logger.Error("request failed", fields)
}

package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/Tanim1993/RelocationJobxyz/internal/errors"

	"go.uber.org/zap"
)

type errorResponse struct {
	Error string           `json:"error"`
	Code  errors.ErrorType `json:"code"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	errType := errors.TypeOf(err)
	status := statusForType(errType)

	message := "internal server error"
	if status != http.StatusInternalServerError {
		message = err.Error()
	} else {
		h.logger.Error("request failed", zap.Error(err))
	}

	h.writeJSON(w, status, errorResponse{Error: message, Code: errType})
}

func statusForType(errType errors.ErrorType) int {
	switch errType {
	case errors.ErrTypeNotFound:
		return http.StatusNotFound
	case errors.ErrTypeInvalidInput:
		return http.StatusBadRequest
	case errors.ErrTypeUnavailable:
		return http.StatusServiceUnavailable
	case errors.ErrTypeRateLimit:
		return http.StatusTooManyRequests
	case errors.ErrTypeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return errors.InvalidInput("invalid request body", err)
	}
	return nil
}

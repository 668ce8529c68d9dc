package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

// Error codes returned in the "code" field of error responses.
const (
	codeValidation     = "VALIDATION"
	codeNotFound       = "NOT_FOUND"
	codeConflict       = "CONFLICT"
	codeAlreadyExists  = "ALREADY_EXISTS"
	codeInvalidState   = "INVALID_STATE"
	codeCorruptRecord  = "CORRUPT_AUDIT_RECORD"
	codeUnknownKind    = "UNKNOWN_ENTITY_KIND"
	codeUnauthorized   = "UNAUTHORIZED"
	codeForbidden      = "FORBIDDEN"
	codeBadRequest     = "BAD_REQUEST"
	codeCanceled       = "CANCELED"
	codeInternal       = "INTERNAL"
	clientClosedStatus = 499
)

type errorResponse struct {
	Error  string       `json:"error"`
	Code   string       `json:"code"`
	Fields []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: message, Code: code})
}

// handleError maps service errors onto HTTP statuses. Anything it does not
// recognise is logged and reported as 500 without details.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var (
		verr  *domain.ValidationError
		guard *domain.GuardError
	)

	switch {
	case errors.As(err, &verr):
		resp := errorResponse{Error: "validation failed", Code: codeValidation}
		for _, fe := range verr.Errors {
			resp.Fields = append(resp.Fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrUnknownEntityKind):
		writeError(w, http.StatusBadRequest, codeUnknownKind, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, err.Error())
	case errors.As(err, &guard):
		writeError(w, http.StatusConflict, codeConflict, guard.Error())
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, codeConflict, err.Error())
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, codeAlreadyExists, "already exists")
	case errors.Is(err, domain.ErrInvalidState):
		writeError(w, http.StatusUnprocessableEntity, codeInvalidState, err.Error())
	case errors.Is(err, domain.ErrCorruptAuditRecord):
		log.WarnContext(r.Context(), "corrupt audit record", slog.String("error", err.Error()))
		writeError(w, http.StatusUnprocessableEntity, codeCorruptRecord, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, codeForbidden, "admin access required")
	case errors.Is(err, context.Canceled):
		writeError(w, clientClosedStatus, codeCanceled, "request canceled")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, codeInternal, "internal server error")
	}
}

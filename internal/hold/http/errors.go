package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/opsbank/payhold/internal/hold/domain"
	"github.com/opsbank/payhold/pkg/holdsdk"
	"github.com/opsbank/payhold/pkg/httpx"
	"github.com/opsbank/payhold/pkg/slogx"
)

const (
	codeBadRequest  = "bad_request"
	codeValidation  = "validation_error"
	codeNotFound    = "not_found"
	codeConflict    = "conflict"
	codeServerError = "server_error"
)

func writeError(w http.ResponseWriter, status int, code, msg string) {
	httpx.WriteJSON(w, status, holdsdk.ErrorResponse{
		Error: msg,
		Code:  code,
	})
}

// writeDomainError maps domain sentinels onto the HTTP error taxonomy.
// Anything unrecognised is a server error and gets logged; the envelope
// never leaks internals.
func writeDomainError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidHoldType),
		errors.Is(err, domain.ErrInvalidStatusFilter),
		errors.Is(err, domain.ErrExpiryNotFuture),
		errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrClientNameRequired):
		writeError(w, http.StatusUnprocessableEntity, codeValidation, err.Error())

	case errors.Is(err, domain.ErrHoldNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, err.Error())

	case errors.Is(err, domain.ErrHoldNotActive):
		writeError(w, http.StatusConflict, codeConflict, err.Error())

	default:
		slogx.FromContext(ctx).Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, codeServerError, "internal error")
	}
}

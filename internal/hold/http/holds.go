package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/opsbank/payhold/internal/hold/domain"
	"github.com/opsbank/payhold/internal/hold/service"
	"github.com/opsbank/payhold/pkg/holdsdk"
	"github.com/opsbank/payhold/pkg/httpx"
)

// releaseAction is the sub-resource verb accepted after a hold id, as in
// POST .../payment-holds/{holdId}:release.
const releaseAction = "release"

// HoldsHandler handles all payment hold endpoints.
type HoldsHandler struct {
	HoldService *service.HoldService
}

// HandleCreate handles POST /v1/clients/{clientId}/payment-holds
//
//	@Summary		Place Payment Hold
//	@Description	Places a payment hold on a client. Requests carrying an Idempotency-Key already seen return the stored hold unchanged with 200 instead of 201.
//	@Tags			Holds
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string						true	"Bearer token with ops.block:create role"
//	@Param			Idempotency-Key	header		string						true	"Client-chosen key making the request safely retryable"
//	@Param			clientId		path		string						true	"Client ID"
//	@Param			request			body		holdsdk.CreateHoldRequest	true	"Hold creation request"
//	@Success		200				{object}	holdsdk.Hold				"Previously accepted hold (idempotent replay)"
//	@Success		201				{object}	holdsdk.Hold				"Newly placed hold"
//	@Failure		400				{object}	holdsdk.ErrorResponse		"error, code"
//	@Failure		401				{object}	holdsdk.ErrorResponse		"error, code"
//	@Failure		403				{object}	holdsdk.ErrorResponse		"error, code"
//	@Failure		422				{object}	holdsdk.ErrorResponse		"error, code"
//	@Failure		500				{object}	holdsdk.ErrorResponse		"error, code"
//	@Router			/v1/clients/{clientId}/payment-holds [post].
func (h *HoldsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	idemKey := strings.TrimSpace(r.Header.Get("Idempotency-Key"))
	if idemKey == "" {
		writeError(w, http.StatusBadRequest, codeBadRequest,
			"Idempotency-Key header is required")
		return
	}

	var req holdsdk.CreateHoldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest,
			"invalid JSON in request body")
		return
	}

	holdType, err := domain.ParseHoldType(req.Type)
	if err != nil {
		writeDomainError(ctx, w, err)
		return
	}

	hold, created, err := h.HoldService.Create(ctx, service.CreateHoldInput{
		ClientID:       r.PathValue("clientId"),
		Type:           holdType,
		Comment:        req.Comment,
		Source:         req.Source,
		ExpiresAt:      req.ExpiresAt,
		IdempotencyKey: idemKey,
		CreatedBy:      httpx.SubjectFromContext(ctx),
	})
	if err != nil {
		writeDomainError(ctx, w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	httpx.WriteJSON(w, status, toAPIHold(hold))
}

// HandleList handles GET /v1/clients/{clientId}/payment-holds
//
//	@Summary		List Payment Holds
//	@Description	Lists a client's holds newest first, filtered by the status query (ACTIVE by default, RELEASED, or ALL).
//	@Tags			Holds
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string	true	"Bearer token with ops.block:read role"
//	@Param			clientId		path		string	true	"Client ID"
//	@Param			status			query		string	false	"Status filter: ACTIVE, RELEASED or ALL"
//	@Success		200				{object}	holdsdk.ListHoldsResponse
//	@Failure		401				{object}	holdsdk.ErrorResponse	"error, code"
//	@Failure		403				{object}	holdsdk.ErrorResponse	"error, code"
//	@Failure		422				{object}	holdsdk.ErrorResponse	"error, code"
//	@Failure		500				{object}	holdsdk.ErrorResponse	"error, code"
//	@Router			/v1/clients/{clientId}/payment-holds [get].
func (h *HoldsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := domain.ParseStatusFilter(r.URL.Query().Get("status"))
	if err != nil {
		writeDomainError(ctx, w, err)
		return
	}

	holds, err := h.HoldService.List(ctx, r.PathValue("clientId"), filter)
	if err != nil {
		writeDomainError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, holdsdk.ListHoldsResponse{
		Items: toAPIHolds(holds),
	})
}

// HandleCheck handles GET /v1/clients/{clientId}/payment-holds:check
//
//	@Summary		Check Payment Block
//	@Description	Reports whether the client is currently blocked from making payments and classifies the block as FRAUD, NON_FRAUD or NONE.
//	@Tags			Holds
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string	true	"Bearer token with ops.block:read role"
//	@Param			clientId		path		string	true	"Client ID"
//	@Success		200				{object}	holdsdk.CheckHoldsResponse
//	@Failure		401				{object}	holdsdk.ErrorResponse	"error, code"
//	@Failure		403				{object}	holdsdk.ErrorResponse	"error, code"
//	@Failure		500				{object}	holdsdk.ErrorResponse	"error, code"
//	@Router			/v1/clients/{clientId}/payment-holds:check [get].
func (h *HoldsHandler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.HoldService.Check(ctx, r.PathValue("clientId"))
	if err != nil {
		writeDomainError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, holdsdk.CheckHoldsResponse{
		Blocked:     result.Blocked,
		Kind:        string(result.Kind),
		ActiveHolds: toAPIHolds(result.ActiveHolds),
	})
}

// HandleGet handles GET /v1/clients/{clientId}/payment-holds/{holdId}
//
//	@Summary		Get Payment Hold
//	@Description	Fetches a single hold. The hold must belong to the client in the path; a mismatched pair answers 404.
//	@Tags			Holds
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string	true	"Bearer token with ops.block:read role"
//	@Param			clientId		path		string	true	"Client ID"
//	@Param			holdId			path		string	true	"Hold ID"
//	@Success		200				{object}	holdsdk.Hold
//	@Failure		401				{object}	holdsdk.ErrorResponse	"error, code"
//	@Failure		403				{object}	holdsdk.ErrorResponse	"error, code"
//	@Failure		404				{object}	holdsdk.ErrorResponse	"error, code"
//	@Failure		500				{object}	holdsdk.ErrorResponse	"error, code"
//	@Router			/v1/clients/{clientId}/payment-holds/{holdId} [get].
func (h *HoldsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	hold, err := h.HoldService.Get(ctx, r.PathValue("clientId"), r.PathValue("holdId"))
	if err != nil {
		writeDomainError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAPIHold(hold))
}

// HandleAction handles POST /v1/clients/{clientId}/payment-holds/{holdId}:release
//
// ServeMux wildcards must span a whole path segment, so the route matches
// "{holdRef}" and the handler splits off the ":release" verb itself.
//
//	@Summary		Release Payment Hold
//	@Description	Releases an active hold, stamping who released it and why. Releasing a hold that is already released or has expired answers 409.
//	@Tags			Holds
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string						true	"Bearer token with ops.block:release role"
//	@Param			clientId		path		string						true	"Client ID"
//	@Param			holdId			path		string						true	"Hold ID"
//	@Param			request			body		holdsdk.ReleaseHoldRequest	false	"Release request"
//	@Success		200				{object}	holdsdk.Hold
//	@Failure		400				{object}	holdsdk.ErrorResponse	"error, code"
//	@Failure		401				{object}	holdsdk.ErrorResponse	"error, code"
//	@Failure		403				{object}	holdsdk.ErrorResponse	"error, code"
//	@Failure		404				{object}	holdsdk.ErrorResponse	"error, code"
//	@Failure		409				{object}	holdsdk.ErrorResponse	"error, code"
//	@Failure		500				{object}	holdsdk.ErrorResponse	"error, code"
//	@Router			/v1/clients/{clientId}/payment-holds/{holdId}:release [post].
func (h *HoldsHandler) HandleAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	holdID, action, found := strings.Cut(r.PathValue("holdRef"), ":")
	if !found || action != releaseAction || holdID == "" {
		writeError(w, http.StatusNotFound, codeNotFound, "unknown action")
		return
	}

	// The release body is optional; an empty body means no reason given.
	var req holdsdk.ReleaseHoldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, codeBadRequest,
			"invalid JSON in request body")
		return
	}

	hold, err := h.HoldService.Release(ctx, service.ReleaseHoldInput{
		ClientID:   r.PathValue("clientId"),
		HoldID:     holdID,
		Reason:     req.Reason,
		ReleasedBy: httpx.SubjectFromContext(ctx),
	})
	if err != nil {
		writeDomainError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAPIHold(hold))
}

func toAPIHold(h domain.Hold) holdsdk.Hold {
	return holdsdk.Hold{
		HoldID:         h.ID,
		ClientID:       h.ClientID,
		Type:           string(h.Type),
		Status:         string(h.Status),
		Comment:        h.Comment,
		Source:         h.Source,
		CreatedAt:      h.CreatedAt,
		CreatedBy:      h.CreatedBy,
		ExpiresAt:      h.ExpiresAt,
		ReleasedAt:     h.ReleasedAt,
		ReleasedBy:     h.ReleasedBy,
		ReleaseReason:  h.ReleaseReason,
		IdempotencyKey: h.IdempotencyKey,
	}
}

func toAPIHolds(holds []domain.Hold) []holdsdk.Hold {
	out := make([]holdsdk.Hold, len(holds))
	for i, h := range holds {
		out[i] = toAPIHold(h)
	}
	return out
}

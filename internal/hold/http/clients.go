package http

import (
	"encoding/json"
	"net/http"

	"github.com/opsbank/payhold/internal/hold/service"
	"github.com/opsbank/payhold/pkg/holdsdk"
	"github.com/opsbank/payhold/pkg/httpx"
)

// ClientsHandler handles bank client provisioning endpoints.
type ClientsHandler struct {
	ClientService *service.ClientService
}

// HandleCreate handles POST /v1/clients
//
//	@Summary		Create Client
//	@Description	Registers a new bank client that holds can be placed against.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string						true	"Bearer token with ops.admin:write role"
//	@Param			request			body		holdsdk.CreateClientRequest	true	"Client creation request"
//	@Success		201				{object}	holdsdk.ClientInfo
//	@Failure		400				{object}	holdsdk.ErrorResponse	"error, code"
//	@Failure		401				{object}	holdsdk.ErrorResponse	"error, code"
//	@Failure		403				{object}	holdsdk.ErrorResponse	"error, code"
//	@Failure		422				{object}	holdsdk.ErrorResponse	"error, code"
//	@Failure		500				{object}	holdsdk.ErrorResponse	"error, code"
//	@Router			/v1/clients [post].
func (h *ClientsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req holdsdk.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest,
			"invalid JSON in request body")
		return
	}

	client, err := h.ClientService.Create(ctx, req.Name)
	if err != nil {
		writeDomainError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, holdsdk.ClientInfo{
		ClientID:  client.ID,
		Name:      client.Name,
		CreatedAt: client.CreatedAt,
	})
}

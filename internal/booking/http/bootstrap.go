package http

import (
	"errors"
	"net/http"

	"github.com/parkside-labs/roomgrid/internal/booking/service"
	"github.com/parkside-labs/roomgrid/pkg/httpx"
	"github.com/parkside-labs/roomgrid/pkg/roomsdk"
)

// BootstrapHandler serves POST /v1/bootstrap.
type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP godoc
//
//	@Summary		Bootstrap First Admin
//	@Description	Creates the first admin account, guarded by the deployment's
//	@Description	bootstrap token. Fails once any admin exists.
//	@Tags			System
//	@Accept			json
//	@Produce		json
//	@Param			request	body		roomsdk.BootstrapRequest	true	"token and admin details"
//	@Success		201		{object}	roomsdk.BootstrapResponse	"user_id, username"
//	@Failure		400		{object}	roomsdk.APIError			"error, error_description"
//	@Failure		403		{object}	roomsdk.APIError			"error, error_description"
//	@Failure		409		{object}	roomsdk.APIError			"error, error_description"
//	@Router			/v1/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req roomsdk.BootstrapRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Token == "" || req.Username == "" || req.Name == "" ||
		req.Email == "" || len(req.Password) < 8 {
		roomsdk.ErrInvalidRequest.WithMessage(
			"token, username, name, email, and a password of at least 8 characters are required",
		).WriteError(w)
		return
	}

	admin, err := h.BootstrapService.Bootstrap(r.Context(),
		req.Token, req.Username, req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBootstrapDisabled):
			roomsdk.ErrBootstrapDisabled.WriteError(w)
		case errors.Is(err, service.ErrBootstrapAlready):
			roomsdk.ErrAlreadyBootstrapped.WriteError(w)
		case errors.Is(err, service.ErrBootstrapUnauthorized):
			roomsdk.ErrAccessDenied.WriteError(w)
		case errors.Is(err, service.ErrDuplicateIdentity):
			roomsdk.ErrDuplicateIdentity.WriteError(w)
		default:
			roomsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, roomsdk.BootstrapResponse{
		UserID:   admin.ID,
		Username: admin.Username,
	})
}

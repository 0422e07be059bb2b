package http

import (
	"errors"
	"net/http"

	"github.com/parkside-labs/roomgrid/internal/booking/service"
	"github.com/parkside-labs/roomgrid/pkg/httpx"
	"github.com/parkside-labs/roomgrid/pkg/roomsdk"
)

// LoginHandler serves POST /v1/login.
type LoginHandler struct {
	SessionService *service.SessionService
}

// ServeHTTP godoc
//
//	@Summary		Login
//	@Description	Exchanges username and password for a Bearer access token. Fails
//	@Description	with one generic error for unknown users, wrong passwords, and
//	@Description	unverified accounts alike.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		roomsdk.LoginRequest	true	"credentials"
//	@Success		200		{object}	roomsdk.TokenResponse	"access_token, token_type, expires_in"
//	@Failure		400		{object}	roomsdk.APIError		"error, error_description"
//	@Failure		401		{object}	roomsdk.APIError		"error, error_description"
//	@Router			/v1/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req roomsdk.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Username == "" || req.Password == "" {
		roomsdk.ErrInvalidRequest.WithMessage("username and password are required").WriteError(w)
		return
	}

	session, err := h.SessionService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			roomsdk.ErrInvalidCredentials.WriteError(w)
			return
		}
		roomsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, roomsdk.TokenResponse{
		AccessToken: session.AccessToken,
		TokenType:   session.TokenType,
		ExpiresIn:   session.ExpiresIn,
	})
}

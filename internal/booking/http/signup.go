package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/parkside-labs/roomgrid/internal/booking/service"
	"github.com/parkside-labs/roomgrid/pkg/httpx"
	"github.com/parkside-labs/roomgrid/pkg/roomsdk"
)

// SignupHandler serves the registration flow: begin, verify, resend.
type SignupHandler struct {
	SignupService  *service.SignupService
	SessionService *service.SessionService
}

// HandleSignup godoc
//
//	@Summary		Begin Registration
//	@Description	Creates a pending account and emails it a one-time verification code.
//	@Description	The returned signup_token must be presented to the verify endpoint.
//	@Tags			Signup
//	@Accept			json
//	@Produce		json
//	@Param			request	body		roomsdk.SignupRequest	true	"registration details"
//	@Success		201		{object}	roomsdk.SignupResponse	"signup_token, otp_delivered"
//	@Failure		400		{object}	roomsdk.APIError		"error, error_description"
//	@Failure		409		{object}	roomsdk.APIError		"error, error_description"
//	@Router			/v1/signup [post].
func (h *SignupHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req roomsdk.SignupRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if msg := validateSignup(req); msg != "" {
		roomsdk.ErrInvalidRequest.WithMessage(msg).WriteError(w)
		return
	}

	result, err := h.SignupService.BeginSignup(r.Context(),
		strings.TrimSpace(req.Username),
		strings.TrimSpace(req.Name),
		strings.ToLower(strings.TrimSpace(req.Email)),
		strings.TrimSpace(req.Phone),
		req.Password,
	)
	if err != nil {
		writeSignupError(w, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, roomsdk.SignupResponse{
		SignupToken:  result.Token,
		OTPDelivered: result.OTPDelivered,
		DebugOTP:     result.DebugCode,
	})
}

// HandleVerify godoc
//
//	@Summary		Verify Registration
//	@Description	Confirms the emailed code, activates the account, and returns an
//	@Description	access token so the new account is signed in immediately.
//	@Tags			Signup
//	@Accept			json
//	@Produce		json
//	@Param			request	body		roomsdk.VerifyRequest	true	"signup_token and code"
//	@Success		200		{object}	roomsdk.TokenResponse	"access_token, token_type, expires_in"
//	@Failure		400		{object}	roomsdk.APIError		"error, error_description"
//	@Failure		404		{object}	roomsdk.APIError		"error, error_description"
//	@Failure		429		{object}	roomsdk.APIError		"error, error_description"
//	@Router			/v1/signup/verify [post].
func (h *SignupHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	var req roomsdk.VerifyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.SignupToken == "" || req.Code == "" {
		roomsdk.ErrInvalidRequest.WithMessage("signup_token and code are required").WriteError(w)
		return
	}

	user, err := h.SignupService.CompleteVerification(r.Context(), req.SignupToken, req.Code)
	if err != nil {
		writeSignupError(w, err)
		return
	}

	session, err := h.SessionService.Mint(r.Context(), user)
	if err != nil {
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

// HandleResend godoc
//
//	@Summary		Resend Verification Code
//	@Description	Regenerates and re-emails the verification code for a pending signup.
//	@Tags			Signup
//	@Accept			json
//	@Produce		json
//	@Param			request	body		roomsdk.ResendRequest	true	"signup_token"
//	@Success		200		{object}	roomsdk.SignupResponse	"signup_token, otp_delivered"
//	@Failure		400		{object}	roomsdk.APIError		"error, error_description"
//	@Failure		404		{object}	roomsdk.APIError		"error, error_description"
//	@Router			/v1/signup/resend [post].
func (h *SignupHandler) HandleResend(w http.ResponseWriter, r *http.Request) {
	var req roomsdk.ResendRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.SignupToken == "" {
		roomsdk.ErrInvalidRequest.WithMessage("signup_token is required").WriteError(w)
		return
	}

	result, err := h.SignupService.ResendOTP(r.Context(), req.SignupToken)
	if err != nil {
		writeSignupError(w, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, roomsdk.SignupResponse{
		SignupToken:  result.Token,
		OTPDelivered: result.OTPDelivered,
		DebugOTP:     result.DebugCode,
	})
}

func validateSignup(req roomsdk.SignupRequest) string {
	switch {
	case strings.TrimSpace(req.Username) == "":
		return "username is required"
	case strings.TrimSpace(req.Name) == "":
		return "name is required"
	case strings.TrimSpace(req.Email) == "" || !strings.Contains(req.Email, "@"):
		return "a valid email is required"
	case len(req.Password) < 8:
		return "password must be at least 8 characters"
	case req.ConfirmPassword != req.Password:
		return "passwords do not match"
	}
	return ""
}

func writeSignupError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrDuplicateIdentity):
		roomsdk.ErrDuplicateIdentity.WriteError(w)
	case errors.Is(err, service.ErrNoPendingVerification):
		roomsdk.ErrNoPendingVerification.WriteError(w)
	case errors.Is(err, service.ErrInvalidCode):
		roomsdk.ErrInvalidCode.WriteError(w)
	case errors.Is(err, service.ErrTooManyAttempts):
		roomsdk.ErrTooManyAttempts.WriteError(w)
	default:
		roomsdk.ErrServerError.WriteError(w)
	}
}

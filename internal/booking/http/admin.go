package http

import (
	"errors"
	"net/http"

	"github.com/parkside-labs/roomgrid/internal/booking/service"
	"github.com/parkside-labs/roomgrid/pkg/httpx"
	"github.com/parkside-labs/roomgrid/pkg/roomsdk"
)

// AdminHandler serves the administrative user endpoints.
type AdminHandler struct {
	AdminService *service.AdminService
}

// HandleList godoc
//
//	@Summary		List Users
//	@Description	Returns every account with its verification state and live booking
//	@Description	count. Admin role required.
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	roomsdk.AdminUsersResponse	"users"
//	@Failure		401	{object}	roomsdk.APIError			"error, error_description"
//	@Failure		403	{object}	roomsdk.APIError			"error, error_description"
//	@Router			/v1/admin/users [get].
func (h *AdminHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	views, err := h.AdminService.ListUsers(r.Context())
	if err != nil {
		roomsdk.ErrServerError.WriteError(w)
		return
	}

	users := make([]roomsdk.AdminUser, 0, len(views))
	for _, v := range views {
		users = append(users, roomsdk.AdminUser{
			ID:           v.ID,
			Username:     v.Username,
			Name:         v.Name,
			Email:        v.Email,
			Phone:        v.Phone,
			Role:         v.Role,
			Verified:     v.Verified,
			BookingCount: v.BookingCount,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, roomsdk.AdminUsersResponse{Users: users})
}

// HandleDelete godoc
//
//	@Summary		Delete User
//	@Description	Removes an account and releases all bookings it holds, atomically.
//	@Description	Admin accounts cannot be deleted. Admin role required.
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path	string	true	"user id"
//	@Success		204	"no content"
//	@Failure		403	{object}	roomsdk.APIError	"error, error_description"
//	@Failure		404	{object}	roomsdk.APIError	"error, error_description"
//	@Router			/v1/admin/users/{id} [delete].
func (h *AdminHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	targetID := r.PathValue("id")
	if targetID == "" {
		roomsdk.ErrInvalidRequest.WithMessage("user id is required").WriteError(w)
		return
	}

	if err := h.AdminService.DeleteUser(r.Context(), targetID); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			roomsdk.ErrUserNotFound.WriteError(w)
		case errors.Is(err, service.ErrCannotDeleteAdmin):
			roomsdk.ErrCannotDeleteAdmin.WriteError(w)
		default:
			roomsdk.ErrServerError.WriteError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

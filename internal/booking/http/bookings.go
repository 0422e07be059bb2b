package http

import (
	"errors"
	"net/http"

	"github.com/parkside-labs/roomgrid/internal/booking/domain"
	"github.com/parkside-labs/roomgrid/internal/booking/service"
	"github.com/parkside-labs/roomgrid/internal/booking/store"
	"github.com/parkside-labs/roomgrid/pkg/httpx"
	"github.com/parkside-labs/roomgrid/pkg/roomsdk"
)

// BookingsHandler serves the booking grid: list, reserve, cancel.
type BookingsHandler struct {
	BookingService *service.BookingService

	// Store resolves the authenticated user's current row; the token's
	// claims may be stale (e.g. the account was deleted since issue).
	Store store.Store
}

// HandleList godoc
//
//	@Summary		List Bookings
//	@Description	Returns every occupied slot keyed by "{room}_{date}_{slot}", with
//	@Description	the owner's display name. Free slots are absent from the map.
//	@Tags			Bookings
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	roomsdk.BookingsResponse	"bookings"
//	@Failure		401	{object}	roomsdk.APIError			"error, error_description"
//	@Router			/v1/bookings [get].
func (h *BookingsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	views, err := h.BookingService.List(r.Context())
	if err != nil {
		roomsdk.ErrServerError.WriteError(w)
		return
	}

	cells := make(map[string]roomsdk.BookingCell, len(views))
	for key, v := range views {
		cells[key] = roomsdk.BookingCell{OwnerName: v.OwnerName}
	}
	httpx.WriteJSON(w, http.StatusOK, roomsdk.BookingsResponse{Bookings: cells})
}

// HandleReserve godoc
//
//	@Summary		Reserve Slot
//	@Description	Books the slot named by cell_id for the authenticated user. At most
//	@Description	one booking can ever exist per slot; a taken slot returns 409.
//	@Tags			Bookings
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		roomsdk.ReserveRequest	true	"cell_id"
//	@Success		201		{object}	roomsdk.ReserveResponse	"booking_id, cell_id"
//	@Failure		400		{object}	roomsdk.APIError		"error, error_description"
//	@Failure		401		{object}	roomsdk.APIError		"error, error_description"
//	@Failure		409		{object}	roomsdk.APIError		"error, error_description"
//	@Router			/v1/bookings [post].
func (h *BookingsHandler) HandleReserve(w http.ResponseWriter, r *http.Request) {
	var req roomsdk.ReserveRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.CellID == "" {
		roomsdk.ErrInvalidRequest.WithMessage("cell_id is required").WriteError(w)
		return
	}

	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	booking, err := h.BookingService.Reserve(r.Context(), user, req.CellID)
	if err != nil {
		writeBookingError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, roomsdk.ReserveResponse{
		BookingID: booking.ID,
		CellID:    booking.Key.String(),
	})
}

// HandleCancel godoc
//
//	@Summary		Cancel Booking
//	@Description	Releases the slot named by cell_id. Only the booking's owner may
//	@Description	cancel it.
//	@Tags			Bookings
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body	roomsdk.CancelRequest	true	"cell_id"
//	@Success		204		"no content"
//	@Failure		400		{object}	roomsdk.APIError	"error, error_description"
//	@Failure		403		{object}	roomsdk.APIError	"error, error_description"
//	@Failure		404		{object}	roomsdk.APIError	"error, error_description"
//	@Router			/v1/bookings [delete].
func (h *BookingsHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	var req roomsdk.CancelRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.CellID == "" {
		roomsdk.ErrInvalidRequest.WithMessage("cell_id is required").WriteError(w)
		return
	}

	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	if err := h.BookingService.Cancel(r.Context(), user, req.CellID); err != nil {
		writeBookingError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *BookingsHandler) currentUser(w http.ResponseWriter, r *http.Request) (domain.User, bool) {
	userID := httpx.UserIDFromCtx(r.Context())
	if userID == "" {
		roomsdk.ErrAccessDenied.WriteError(w)
		return domain.User{}, false
	}

	user, err := h.Store.Users().GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Token outlived the account.
			roomsdk.ErrAccessDenied.WriteError(w)
			return domain.User{}, false
		}
		roomsdk.ErrServerError.WriteError(w)
		return domain.User{}, false
	}
	return user, true
}

func writeBookingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotVerified):
		roomsdk.ErrNotVerified.WriteError(w)
	case errors.Is(err, domain.ErrInvalidKey):
		roomsdk.ErrInvalidKey.WithMessage(err.Error()).WriteError(w)
	case errors.Is(err, service.ErrSlotTaken):
		roomsdk.ErrSlotTaken.WriteError(w)
	case errors.Is(err, service.ErrBookingNotFound):
		roomsdk.ErrBookingNotFound.WriteError(w)
	case errors.Is(err, service.ErrNotOwner):
		roomsdk.ErrNotOwner.WriteError(w)
	default:
		roomsdk.ErrServerError.WriteError(w)
	}
}

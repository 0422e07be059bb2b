package http

import (
	"net/http"

	"github.com/parkside-labs/roomgrid/internal/booking/domain"
	"github.com/parkside-labs/roomgrid/pkg/httpx"
	"github.com/parkside-labs/roomgrid/pkg/roomsdk"
)

// ScheduleHandler serves GET /v1/schedule.
type ScheduleHandler struct {
	Schedule domain.Schedule
}

// ServeHTTP godoc
//
//	@Summary		Describe Schedule
//	@Description	Returns the bookable grid shape: how many rooms exist and the
//	@Description	display label for each daily slot, in slot-index order.
//	@Tags			Bookings
//	@Produce		json
//	@Success		200	{object}	roomsdk.ScheduleResponse	"rooms, slot_labels"
//	@Router			/v1/schedule [get].
func (h *ScheduleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, roomsdk.ScheduleResponse{
		Rooms:      h.Schedule.Rooms,
		SlotLabels: h.Schedule.SlotLabels(),
	})
}

package http

import (
	"net/http"
	"time"

	"github.com/parkside-labs/roomgrid/internal/booking/store"
	"github.com/parkside-labs/roomgrid/pkg/httpx"
	"github.com/parkside-labs/roomgrid/pkg/roomsdk"
)

// LivezHandler godoc
//
//	@Summary		Liveness Probe
//	@Description	Always returns 200 while the process is running.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	roomsdk.HealthResponse	"status"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, roomsdk.HealthResponse{
			Status: "ok",
			Uptime: time.Since(startTime).String(),
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Probe
//	@Description	Returns 200 once the database is reachable, 503 otherwise.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	roomsdk.HealthResponse	"status"
//	@Failure		503	{object}	roomsdk.HealthResponse	"status"
//	@Router			/readyz [get].
func ReadyzHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := st.Ping(r.Context()); err != nil {
			httpx.WriteJSON(w, http.StatusServiceUnavailable,
				roomsdk.HealthResponse{Status: "unavailable"})
			return
		}
		httpx.WriteJSON(w, http.StatusOK, roomsdk.HealthResponse{Status: "ok"})
	}
}

package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/parkside-labs/roomgrid/pkg/roomsdk"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// decodeJSON parses the request body into dst, writing an error response and
// returning false on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if ct := r.Header.Get("Content-Type"); ct != "" &&
		!strings.HasPrefix(ct, "application/json") {
		roomsdk.ErrInvalidRequest.WithMessage("expected application/json").WriteError(w)
		return false
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		roomsdk.ErrInvalidRequest.WithMessage("malformed JSON body").WriteError(w)
		return false
	}
	return true
}

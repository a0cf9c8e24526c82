package handlers

import (
	"errors"
	"net/http"

	"voyago/internal/amadeus"
	"voyago/internal/httpserver/response"
	"voyago/internal/logger"
)

const maxDetailBytes = 512

// writeTravelError maps the upstream client's error taxonomy onto the wire:
// caller mistakes get 400, auth and network failures get 5xx, and non-success
// upstream responses keep their own status.
func writeTravelError(w http.ResponseWriter, log logger.Logger, err error) {
	var reqErr *amadeus.RequestError
	var authErr *amadeus.AuthError
	var unavailable *amadeus.UnavailableError
	var upErr *amadeus.UpstreamError

	switch {
	case errors.As(err, &reqErr):
		response.Error(w, http.StatusBadRequest, reqErr.Reason)

	case errors.As(err, &authErr):
		log.Error("upstream authentication failed", logger.Error(err))
		response.ErrorWithDetail(w, http.StatusBadGateway, "upstream authentication failed", authErr.Detail)

	case errors.As(err, &unavailable):
		status := http.StatusBadGateway
		if unavailable.Timeout {
			status = http.StatusGatewayTimeout
		}
		log.Error("upstream unreachable", logger.Error(err))
		response.ErrorWithDetail(w, status, "upstream unavailable", unavailable.Err.Error())

	case errors.As(err, &upErr):
		response.ErrorWithDetail(w, upErr.Status, "upstream error", truncate(upErr.Body))

	default:
		log.Error("search failed", logger.Error(err))
		response.ErrorWithDetail(w, http.StatusInternalServerError, "server error", err.Error())
	}
}

func truncate(b []byte) string {
	if len(b) > maxDetailBytes {
		b = b[:maxDetailBytes]
	}
	return string(b)
}

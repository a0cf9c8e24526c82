package amadeus

import (
	"errors"
	"fmt"
	"net"
)

// RequestError means the caller's own input was missing or malformed.
// Nothing was sent upstream; retrying without fixing the input is pointless.
type RequestError struct {
	Reason string
}

func (e *RequestError) Error() string { return e.Reason }

// AuthError means the client-credentials exchange was rejected. The caller's
// input is not at fault; retrying after a delay is safe.
type AuthError struct {
	Detail string
}

func (e *AuthError) Error() string {
	return "upstream authentication failed: " + e.Detail
}

// UnavailableError wraps a network failure or timeout reaching the upstream.
type UnavailableError struct {
	Err     error
	Timeout bool
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("upstream unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// UpstreamError carries a non-success upstream response. The status code is
// preserved so the caller can forward it.
type UpstreamError struct {
	Status int
	Body   []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream responded %d", e.Status)
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

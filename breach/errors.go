package breach

import (
	"errors"
	"fmt"
)

// ErrHashingUnavailable means the runtime has no SHA-1 implementation linked
// in. No lookup is possible.
var ErrHashingUnavailable = errors.New("sha-1 digest unavailable")

// TransportError is any failure to obtain a range response: DNS, connect,
// timeout, cancellation or a non-200 status. It never means "not breached".
type TransportError struct {
	Prefix     string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("range query for %s failed: bad response (!200): %d", e.Prefix, e.StatusCode)
	}

	return fmt.Sprintf("range query for %s failed: %s", e.Prefix, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func IsTransportFailure(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

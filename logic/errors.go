package logic

import (
	"errors"
	"fmt"
)

// Terminal conditions for inbound processing; handlers log these and move on,
// they never retry.
var ErrResourceGone = errors.New("remote resource is gone")
var ErrResourceNotFound = errors.New("remote resource does not exist")
var ErrNotAnActivity = errors.New("document is not an activity")

var ErrActorExists = errors.New("actor already exists")

// TransportError is a non-2xx response from a remote inbox. 4xx means the
// remote will never take this payload; no point retrying.
type TransportError struct {
	StatusCode int
	Msg        string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("got status %d: %s", e.StatusCode, e.Msg)
}

func (e *TransportError) Permanent() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// IsPermanentDeliveryError tells the queue to drop the item rather than retry.
func IsPermanentDeliveryError(err error) bool {
	var te *TransportError
	if errors.As(err, &te) {
		return te.Permanent()
	}
	return false
}

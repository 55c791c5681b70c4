package catalog

import (
	"errors"
	"fmt"
)

// ErrNoBackend is returned when the resolver chose local-only mode and a
// remote call was requested. Callers must fall back without any network I/O.
var ErrNoBackend = errors.New("no backend configured")

// ErrUnexpectedEnvelope is returned when a response payload matches none of
// the known envelope shapes for what the caller asked for.
var ErrUnexpectedEnvelope = errors.New("unexpected response envelope")

// NetworkError reports a failure where no HTTP response was received at all
// (DNS failure, refused connection, cancelled context).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// RemoteError reports a received non-2xx HTTP response.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	return e.Message
}

// NotFoundError reports that neither the remote backend nor the local backup
// holds a product with the given id.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product with id %d not found", e.ID)
}

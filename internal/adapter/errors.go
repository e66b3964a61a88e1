package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrMalformedResponse means the server answered with something that is
	// not a {"success": bool, ...} envelope.
	ErrMalformedResponse = errors.New("malformed response")
	ErrUnknownTransport  = errors.New("unknown transport")
)

// TransportError is returned when the request never produced a server answer:
// refused connection, timeout, cancelled context.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServerError is returned when the server answered but rejected the request,
// either with success=false or with a non-2xx status.
// Message is the server-supplied text and may be empty.
type ServerError struct {
	Status  int
	Message string
	// Err is the sentinel matching Status, if any.
	Err error
}

func (e *ServerError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Status == 0 {
		return fmt.Sprintf("server rejected request: %s", msg)
	}
	return fmt.Sprintf("server error %d: %s", e.Status, msg)
}

func (e *ServerError) Unwrap() error {
	return e.Err
}

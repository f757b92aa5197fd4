package errors

import "fmt"

var (
	ErrWorkerPanic      = fmt.Errorf("worker panic")
	ErrMissingToken     = fmt.Errorf("missing auth token")
	ErrNotConnected     = fmt.Errorf("channel not connected")
	ErrInvalidPayload   = fmt.Errorf("invalid event payload")
	ErrUnexpectedStatus = fmt.Errorf("unexpected http status")
)

package fabric

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConnected indicates a push before a successful Connect.
	ErrNotConnected = errors.New("not connected")
	// ErrUnsupportedObject indicates an object type the encoder does not know.
	ErrUnsupportedObject = errors.New("unsupported object")
)

// ConnectError reports a failed login to the controller.
type ConnectError struct {
	URL string
	// Status is the HTTP status code, 0 if no response was received.
	Status int
	Err    error
}

func (e *ConnectError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("connect to %s: status %d: %v", e.URL, e.Status, e.Err)
	}
	return fmt.Sprintf("connect to %s: %v", e.URL, e.Err)
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}

// PushError reports an object the controller did not accept.
type PushError struct {
	Object string
	Status int
	Err    error
}

func (e *PushError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("push %s: status %d: %v", e.Object, e.Status, e.Err)
	}
	return fmt.Sprintf("push %s: %v", e.Object, e.Err)
}

func (e *PushError) Unwrap() error {
	return e.Err
}

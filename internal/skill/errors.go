package skill

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidEvent           = errors.New("invalid event")
	ErrAuthorizationMismatch  = errors.New("invalid applicationId")
	ErrUnimplementedHook      = errors.New("onLaunch should be overridden by the skill")
	ErrUnsupportedIntent      = errors.New("unsupported intent")
	ErrUnsupportedRequestType = errors.New("unsupported request type")
	ErrNoResponse             = errors.New("handler returned without building a response")
	ErrHandlerPanic           = errors.New("handler panicked")
	ErrApplicationIDRequired  = errors.New("application id check enabled without an application id")
)

// HandlerError wraps an error raised by skill-supplied code.
type HandlerError struct {
	Stage string
	Err   error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("%s handler: %v", e.Stage, e.Err)
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}

// ErrorKind classifies a dispatch failure.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindInvalidEvent
	KindAuthorization
	KindUnimplemented
	KindUnsupportedIntent
	KindHandler
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidEvent:
		return "invalid_event"
	case KindAuthorization:
		return "authorization_mismatch"
	case KindUnimplemented:
		return "unimplemented_hook"
	case KindUnsupportedIntent:
		return "unsupported_intent"
	case KindHandler:
		return "handler_error"
	default:
		return "unknown"
	}
}

// KindOf classifies err. Framework sentinels take precedence over the
// HandlerError wrapper they may travel in.
func KindOf(err error) ErrorKind {
	var herr *HandlerError
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrAuthorizationMismatch):
		return KindAuthorization
	case errors.Is(err, ErrInvalidEvent), errors.Is(err, ErrUnsupportedRequestType):
		return KindInvalidEvent
	case errors.Is(err, ErrUnimplementedHook):
		return KindUnimplemented
	case errors.Is(err, ErrUnsupportedIntent):
		return KindUnsupportedIntent
	case errors.As(err, &herr), errors.Is(err, ErrNoResponse):
		return KindHandler
	default:
		return KindUnknown
	}
}

package proj

/*
#include "proj_go.h"
*/
import "C"

import (
	"errors"
	"fmt"
	"syscall"
)

// The phase in which the native library failed
type Kind int

const (
	InitFailed      Kind = iota + 1 // proj_create returned no object
	TransformFailed                 // the batch transformation set an error
)

func (k Kind) String() string {
	switch k {
	case InitFailed:
		return "init failed"
	case TransformFailed:
		return "transform failed"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// An Error reports a failure of the native library.
//
// For InitFailed, Code is the platform errno seen by proj_create, while
// Message is taken from the error register of the projection's context.
// The two may disagree. For TransformFailed, Code is the error number of
// the transformation and Message describes that number.
type Error struct {
	Kind    Kind
	Code    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("proj: %v (code %d): %s", e.Kind, e.Code, e.Message)
}

// Is reports whether target is the sentinel for the same kind, so that
// errors.Is(err, ErrInitFailed) works on any init failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Code == 0 && t.Message == ""
}

var (
	ErrInitFailed      = &Error{Kind: InitFailed}
	ErrTransformFailed = &Error{Kind: TransformFailed}
	ErrClosed          = errors.New("Projection is closed")

	errNoEllipsoid = errors.New("Projection has no ellipsoid")
)

// errorMessage describes code, or the last error recorded in ctx when code
// is nil. Every Projection owns its context, so the register read here is
// never shared with another Projection.
func errorMessage(ctx *C.PJ_CONTEXT, code *int) string {
	var e C.int
	if code == nil {
		e = C.proj_context_errno(ctx)
	} else {
		e = C.int(*code)
	}
	msg := C.GoString(C.proj_context_errno_string(ctx, e))
	if msg == "" {
		msg = fmt.Sprintf("unknown error %d", int(e))
	}
	return msg
}

// errnoCode extracts the errno from the error value of a cgo call.
func errnoCode(err error) int {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	return 0
}

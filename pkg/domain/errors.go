package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Success is reported as a nil error.
var (
	// ErrGeneral covers failures that are hard to categorize (e.g. the history file could not be created).
	ErrGeneral = errors.New("general error")

	// ErrInvalidArgs is returned for malformed registrations, init options or command arguments.
	ErrInvalidArgs = errors.New("invalid arguments")

	// ErrExceedCapacity is returned when a registry, token list or line buffer is full.
	ErrExceedCapacity = errors.New("capacity exceeded")

	// ErrDuplicate is returned when a command name is already registered.
	ErrDuplicate = errors.New("duplicate command")

	// ErrExternalLib is returned when the line editor or a history store reports a failure.
	ErrExternalLib = errors.New("external library error")

	// ErrProcessCompleted signals a clean end of input. Hosts should leave their loop.
	ErrProcessCompleted = errors.New("process completed")

	// ErrInProgress means an asynchronous read has not produced a line yet, or
	// that Init already ran. It is not a failure.
	ErrInProgress = errors.New("in progress")

	// ErrNotReady is returned by Run when Init has not been called.
	ErrNotReady = errors.New("not ready")

	// ErrTerminated signals an unrecoverable input fault. The host decides how to shut down.
	ErrTerminated = errors.New("terminated")
)

// Code is the numeric form of an error kind.
type Code int

const (
	CodeSuccess Code = iota
	CodeGeneralError
	CodeInvalidArgs
	CodeExceedCapacity
	CodeDuplicate
	CodeExternalLibError
	CodeProcessCompleted
	CodeInProgress
	CodeNotReady
	CodeTerminated
)

var codeNames = map[Code]string{
	CodeSuccess:          "success",
	CodeGeneralError:     "general_error",
	CodeInvalidArgs:      "invalid_args",
	CodeExceedCapacity:   "exceed_capacity",
	CodeDuplicate:        "duplicate",
	CodeExternalLibError: "external_lib_error",
	CodeProcessCompleted: "process_completed",
	CodeInProgress:       "in_progress",
	CodeNotReady:         "not_ready",
	CodeTerminated:       "terminated",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("code(%d)", int(c))
}

// CodeOf maps an error returned by this module to its Code.
// Errors that wrap none of the sentinels map to CodeGeneralError.
func CodeOf(err error) Code {
	switch {
	case err == nil:
		return CodeSuccess
	case errors.Is(err, ErrGeneral):
		return CodeGeneralError
	case errors.Is(err, ErrInvalidArgs):
		return CodeInvalidArgs
	case errors.Is(err, ErrExceedCapacity):
		return CodeExceedCapacity
	case errors.Is(err, ErrDuplicate):
		return CodeDuplicate
	case errors.Is(err, ErrExternalLib):
		return CodeExternalLibError
	case errors.Is(err, ErrProcessCompleted):
		return CodeProcessCompleted
	case errors.Is(err, ErrInProgress):
		return CodeInProgress
	case errors.Is(err, ErrNotReady):
		return CodeNotReady
	case errors.Is(err, ErrTerminated):
		return CodeTerminated
	default:
		return CodeGeneralError
	}
}

package csh

import (
	"errors"
	"fmt"
)

// ErrAtRoot is returned when resolving ".." from a root directory.
var ErrAtRoot = errors.New("csh: already at root directory")

// ErrInterrupt is returned by a Terminal when the user aborts the current line.
var ErrInterrupt = errors.New("interrupt")

// UsageError reports a missing operand, an invalid option or an operand of
// the wrong kind.
type UsageError struct {
	Cmd string
	Msg string
}

func (e *UsageError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s", e.Cmd, e.Msg)
	}
	return e.Cmd + ": missing operand"
}

// RefusedError reports an operation csh declines to perform although its
// operands are valid.
type RefusedError struct {
	Cmd string
	Msg string
}

func (e *RefusedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Cmd, e.Msg)
}

// NotFoundError reports that the target of a command does not exist.
type NotFoundError struct {
	Path string
	msg  string
}

func (e *NotFoundError) Error() string {
	return e.msg
}

// ExistsError reports that a create or move would collide with an existing entry.
type ExistsError struct {
	Path string
	msg  string
}

func (e *ExistsError) Error() string {
	return e.msg
}

// IOError wraps a failure reported by the filesystem. Its message is the
// underlying error text, unchanged.
type IOError struct {
	Cmd string
	Err error
}

func (e *IOError) Error() string {
	return e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// UnknownCommandError reports a verb with no registered handler.
type UnknownCommandError struct {
	Verb string
}

func (e *UnknownCommandError) Error() string {
	return "csh: unknown command: " + e.Verb
}

func missingOperand(cmd string) error {
	return &UsageError{Cmd: cmd}
}

func notFound(path, format string, args ...any) error {
	return &NotFoundError{Path: path, msg: fmt.Sprintf(format, args...)}
}

func exists(path, format string, args ...any) error {
	return &ExistsError{Path: path, msg: fmt.Sprintf(format, args...)}
}

func ioError(cmd string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Cmd: cmd, Err: err}
}

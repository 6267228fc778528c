// SPDX-License-Identifier: MIT

// Package cli - exit codes, error envelope and the text/json output switch.
//
// Purpose:
//   - Give every command one way to finish: Success(payload) or an *ExitError,
//     so the binary can map any error to a process exit code without
//     inspecting command internals.
//   - Keep machine output honest: in json mode the stdout stream is exactly
//     one CLIResponse document; diagnostics go to stderr.
//
// AI-Hints:
//   - GetExitCode treats errors without a code as command-line mistakes
//     (ExitUsage): the only uncoded errors that reach the binary are cobra's
//     own flag and argument failures.

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Process exit codes.
const (
	// ExitSuccess means the command did what was asked.
	ExitSuccess = 0
	// ExitFailure means an operation failed on a table that did load
	// (impossible cluster count, shadow collision, write error).
	ExitFailure = 1
	// ExitUsage means the invocation or its inputs were wrong (bad flags,
	// unknown input format, missing or unparseable sources).
	ExitUsage = 2
)

// Stable error codes carried in json error envelopes. Text mode prints them
// in brackets so scripts can grep either surface.
const (
	// ErrCodeUsage marks invocation mistakes: contradictory flags, unknown
	// file extensions, values outside the legal range.
	ErrCodeUsage = "E001"
	// ErrCodeLoad marks sources that could not be opened or parsed.
	ErrCodeLoad = "E002"
	// ErrCodeCluster marks a clustering run that could not be carried out.
	ErrCodeCluster = "E003"
	// ErrCodeShadow marks a table whose shadow cannot be bound.
	ErrCodeShadow = "E004"
	// ErrCodeWrite marks output files that could not be written.
	ErrCodeWrite = "E005"
)

// ExitError is an error with a process exit code attached. Every RunE in this
// package returns either nil or an *ExitError; the binary converts it with
// GetExitCode.
type ExitError struct {
	Code    int    // ExitFailure or ExitUsage
	Message string // human-readable, already formatted
	Err     error  // underlying cause, optional
}

// Error renders "message: cause" or just the message.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *ExitError) Unwrap() error { return e.Err }

// NewExitError builds an *ExitError without an underlying cause.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError attaches an exit code and context to an existing error.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode maps an error returned by Execute to a process exit code:
// the code carried by an *ExitError anywhere in the chain, ExitUsage for
// everything else. Callers check err != nil first; nil never reaches here.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUsage
}

// OutputFormatter routes command results to the configured format. Writer
// receives the payload (stdout), ErrWriter the diagnostics (stderr); both are
// taken from the cobra command so tests can capture them.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer
	Verbose   bool
}

// CLIResponse is the json envelope every command emits in json mode.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // failure details
}

// CLIError carries the failure details inside a CLIResponse.
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Success emits a successful result. In json mode the payload is wrapped in a
// CLIResponse; in text mode data must implement textRenderer and draws itself
// onto Writer.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}
	if r, ok := data.(textRenderer); ok {
		return r.renderText(f.Writer)
	}
	_, err := fmt.Fprintln(f.Writer, data)
	return err
}

// Error emits a failure in the configured format. It reports the failure to
// the user; the caller still returns the *ExitError that decides the exit
// code.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}
	if _, err := fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message); err != nil {
		return err
	}
	if f.Verbose && details != nil {
		_, err := fmt.Fprintf(f.Writer, "Details: %v\n", details)
		return err
	}
	return nil
}

// VerboseLog prints a diagnostic line when verbose mode is on. Lines go to
// ErrWriter so json output on Writer stays a single parseable document.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, format+"\n", args...)
}

// textRenderer is implemented by report types that own a text rendering.
type textRenderer interface {
	renderText(w io.Writer) error
}

// fail reports err through the formatter and passes it back unchanged, so a
// RunE body can end with `return fail(formatter, code, exitErr)`.
func fail(f *OutputFormatter, code string, err *ExitError) error {
	_ = f.Error(code, err.Message, errDetail(err.Err))
	return err
}

// errDetail renders the underlying cause for the error envelope, nil-safe.
func errDetail(err error) any {
	if err == nil {
		return nil
	}
	return err.Error()
}

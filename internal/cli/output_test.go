// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExitError(t *testing.T) {
	plain := NewExitError(ExitUsage, "bad invocation")
	require.Equal(t, "bad invocation", plain.Error())
	require.Nil(t, plain.Unwrap())

	cause := errors.New("boom")
	wrapped := WrapExitError(ExitFailure, "binding", cause)
	require.Equal(t, "binding: boom", wrapped.Error())
	require.ErrorIs(t, wrapped, cause) // Unwrap exposes the chain
}

func TestGetExitCode(t *testing.T) {
	require.Equal(t, ExitFailure, GetExitCode(NewExitError(ExitFailure, "x")))
	require.Equal(t, ExitUsage, GetExitCode(NewExitError(ExitUsage, "x")))

	// The code survives further wrapping.
	deep := fmt.Errorf("context: %w", NewExitError(ExitFailure, "x"))
	require.Equal(t, ExitFailure, GetExitCode(deep))

	// Uncoded errors are command-line mistakes.
	require.Equal(t, ExitUsage, GetExitCode(errors.New("unknown flag")))
}

func TestFormatterSuccessJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "json", Writer: buf}

	require.NoError(t, f.Success(map[string]int{"n": 3}))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	require.Equal(t, "ok", resp.Status)
	require.Nil(t, resp.Error)
	require.Equal(t, map[string]any{"n": float64(3)}, resp.Data)
}

func TestFormatterSuccessText(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "text", Writer: buf}

	// Payloads without a text rendering fall back to Fprintln.
	require.NoError(t, f.Success("done"))
	require.Equal(t, "done\n", buf.String())
}

func TestFormatterErrorJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "json", Writer: buf}

	require.NoError(t, f.Error(ErrCodeLoad, "cannot read it", "details here"))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	require.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	require.Equal(t, ErrCodeLoad, resp.Error.Code)
	require.Equal(t, "cannot read it", resp.Error.Message)
	require.Equal(t, "details here", resp.Error.Details)
}

func TestFormatterErrorText(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "text", Writer: buf}
	require.NoError(t, f.Error(ErrCodeUsage, "nope", "ignored"))
	require.Equal(t, "Error [E001]: nope\n", buf.String()) // details need --verbose

	buf.Reset()
	f.Verbose = true
	require.NoError(t, f.Error(ErrCodeUsage, "nope", "shown"))
	require.Equal(t, "Error [E001]: nope\nDetails: shown\n", buf.String())
}

func TestVerboseLog(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	quiet := &OutputFormatter{Format: "text", Writer: out, ErrWriter: errOut}
	quiet.VerboseLog("hidden %d", 1)
	require.Empty(t, out.String())
	require.Empty(t, errOut.String())

	loud := &OutputFormatter{Format: "json", Writer: out, ErrWriter: errOut, Verbose: true}
	loud.VerboseLog("loaded %d rows", 7)
	require.Empty(t, out.String()) // diagnostics never touch the payload stream
	require.Equal(t, "loaded 7 rows\n", errOut.String())

	// Without an ErrWriter the line falls back to Writer.
	bare := &OutputFormatter{Format: "text", Writer: out, Verbose: true}
	bare.VerboseLog("fallback")
	require.Equal(t, "fallback\n", out.String())
}

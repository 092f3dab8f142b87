package cli

import (
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// Error codes reported in CLI responses.
const (
	ErrCodeParse   = "E_PARSE"   // unparseable schema declaration or field
	ErrCodeOrder   = "E_ORDER"   // declaration-order table drift
	ErrCodeRender  = "E_RENDER"  // descriptor outside the translation rules
	ErrCodeIO      = "E_IO"      // source unreadable or output unwritable
	ErrCodeGeneric = "E_GENERIC" // anything else
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Input failure (unparseable schema, unwritable output)
	ExitCommandError = 2 // Command/configuration error (bad flags, order-table drift)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Verbose/diagnostic output, kept off stdout so JSON stays parseable
	Verbose   bool
}

// CLIResponse is the standard JSON response envelope.
type CLIResponse struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // success payload
	Errors []CLIError  `json:"errors,omitempty"`
}

// CLIError is one error entry in a JSON response.
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Format == "json" {
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(CLIResponse{Status: "ok", Data: data})
	}
	fmt.Fprintln(f.Writer, data)
	return nil
}

// Errors outputs every collected error in the configured format.
func (f *OutputFormatter) Errors(code string, errs []error) error {
	if f.Format == "json" {
		entries := make([]CLIError, len(errs))
		for i, err := range errs {
			entries[i] = CLIError{Code: code, Message: err.Error()}
		}
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(CLIResponse{Status: "error", Errors: entries})
	}
	for _, err := range errs {
		fmt.Fprintf(f.Writer, "%s: %s\n", code, err)
	}
	return nil
}

// VerboseLog writes a diagnostic line to the error writer when verbose mode
// is on.
func (f *OutputFormatter) VerboseLog(format string, args ...interface{}) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, format+"\n", args...)
}

package cli

import (
	"errors"

	"github.com/thenoetrevino/folio/internal/generation"
	"github.com/thenoetrevino/folio/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: storage errors, provider errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: unknown field names, missing arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: project not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: an import file that is not a portfolio document.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: generating a description without a title or technologies.
	ExitValidation = 5
)

// ErrInvalidData marks input that cannot be parsed as a portfolio
var ErrInvalidData = errors.New("invalid portfolio data")

// ErrUsage marks a malformed invocation
var ErrUsage = errors.New("invalid usage")

// ExitCode maps an error returned by a command to the process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, models.ErrUnknownField), errors.Is(err, ErrUsage):
		return ExitUsage
	case errors.Is(err, models.ErrProjectNotFound):
		return ExitNotFound
	case errors.Is(err, ErrInvalidData):
		return ExitDataErr
	case errors.Is(err, generation.ErrMissingInputs):
		return ExitValidation
	default:
		return ExitError
	}
}

// ErrorCode returns the machine-readable code printed in JSON error output
func ErrorCode(err error) string {
	switch ExitCode(err) {
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitDataErr:
		return "DATA_ERROR"
	case ExitValidation:
		return "VALIDATION_ERROR"
	}
	if errors.Is(err, generation.ErrGenerationInProgress) {
		return "GENERATION_IN_PROGRESS"
	}
	if generation.IsCredentialError(err) {
		return "CREDENTIAL_ERROR"
	}
	return "ERROR"
}

package generation

import (
	"errors"
	"strings"
)

var (
	// ErrGenerationInProgress is returned when a project already has a call in flight
	ErrGenerationInProgress = errors.New("description generation already in progress")

	// ErrMissingInputs is returned when the project has no title or no technologies
	ErrMissingInputs = errors.New("project title and technologies are required")
)

// credentialNotFound is the provider message for an invalid or unselected key
const credentialNotFound = "Requested entity was not found."

// ProviderError is a failure reported by the text-generation provider.
type ProviderError struct {
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return providerPrefix + e.Message
}

// Unwrap returns the underlying client error
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// CredentialError marks a provider error caused by the API key.
// The user has to pick a new credential before retrying.
type CredentialError struct {
	*ProviderError
}

// Unwrap exposes the provider error
func (e *CredentialError) Unwrap() error {
	return e.ProviderError
}

// IsCredentialError reports whether err stems from an invalid or missing credential selection
func IsCredentialError(err error) bool {
	var ce *CredentialError
	return errors.As(err, &ce)
}

// classify wraps a raw client error
func classify(err error) error {
	pe := &ProviderError{Message: err.Error(), Err: err}
	if strings.Contains(err.Error(), credentialNotFound) {
		return &CredentialError{ProviderError: pe}
	}
	return pe
}

package generation

import "context"

// CredentialPrompter lets the user select a different API key
type CredentialPrompter interface {
	PromptCredential(ctx context.Context) error
}

// NoopPrompter is used when no interactive key selection is available
type NoopPrompter struct{}

// PromptCredential does nothing
func (NoopPrompter) PromptCredential(context.Context) error { return nil }

// Package generation asks an external text model for project descriptions
// and tracks the per-project request state.
package generation

import (
	"context"
	"fmt"
	"strings"
)

// Request carries the project details sent to the provider
type Request struct {
	Title        string
	Technologies string
	Draft        string // optional starting point
}

// Provider produces a description for a project
type Provider interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// ProviderFunc adapts a function to Provider
type ProviderFunc func(ctx context.Context, req Request) (string, error)

// Generate calls f
func (f ProviderFunc) Generate(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

// BuildPrompt renders the instruction text for req
func BuildPrompt(req Request) string {
	var b strings.Builder
	b.WriteString("Generate a compelling and concise project description for a portfolio.\n")
	fmt.Fprintf(&b, "The project is titled '%s'.\n", req.Title)
	fmt.Fprintf(&b, "It uses the following technologies: '%s'.\n", req.Technologies)
	if req.Draft != "" {
		fmt.Fprintf(&b, "Here's a starting point: '%s'.\n", req.Draft)
	}
	b.WriteString("Emphasize the problem it solves, its key features, and what makes it interesting.\n")
	b.WriteString("Keep the description under 150 words. Focus on a professional tone.")
	return b.String()
}

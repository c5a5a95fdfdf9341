package cli

import (
	"context"

	"github.com/thenoetrevino/folio/internal/app"
)

type appKey struct{}

// WithApp attaches an already opened app to ctx.
// Commands run with this context reuse it instead of opening storage.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

// GetCLIFromContext returns a CLI over the app attached to ctx,
// or opens a new one from config
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if a, ok := ctx.Value(appKey{}).(*app.App); ok && a != nil {
		return &CLI{App: a, ctx: ctx}, nil
	}
	return NewCLI(ctx)
}

package ports

import "context"

// ImageProvider turns a scene's illustration seed into a displayable image URL.
// Implementations may be slow; callers bound each request with ctx.
type ImageProvider interface {
	Generate(ctx context.Context, seed string) (string, error)
}

// ImageProviderFunc adapts a plain function to ImageProvider.
type ImageProviderFunc func(ctx context.Context, seed string) (string, error)

func (f ImageProviderFunc) Generate(ctx context.Context, seed string) (string, error) {
	return f(ctx, seed)
}

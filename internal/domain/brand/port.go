package brand

import "context"

// Client performs a single model call and returns the raw generated text.
type Client interface {
	Generate(ctx context.Context, text, apiKey string) (string, error)
}

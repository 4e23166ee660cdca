package llm

import (
	"context"
)

// Client is the raw model contract: build a prompt, get back a string
// that should be JSON. Parsing and tolerance live in the parser.
type Client interface {
	GenerateRecommendations(ctx context.Context, prompt string) (string, error)
}

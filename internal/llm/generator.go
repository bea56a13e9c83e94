package llm

import (
	"context"
	"errors"

	"github.com/touchpoint-ai/touchpoint/internal/domain"
)

// ErrNotConfigured indicates no downstream model credentials are present.
var ErrNotConfigured = errors.New("llm: no api key configured")

// Generator is the downstream generation boundary. One call per turn or
// proposal; implementations must surface failures as errors so the engine
// can apply its fallback policy. No retries happen at this layer.
type Generator interface {
	// GenerateTurn issues a single text-in/text-out generation call using the
	// grounding bundle, the ordered prior history, and the new user message.
	GenerateTurn(ctx context.Context, bundle domain.GroundingBundle, history []*domain.Turn, message string) (string, error)

	// GenerateProposal issues a single schema-constrained generation call and
	// returns the raw JSON payload.
	GenerateProposal(ctx context.Context, prompt string) ([]byte, error)

	// Translate renders text into the target language.
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}

// Unavailable is a Generator with no downstream configured. Every call
// errors, which the engine turns into its standard fallback reply, so the
// server can still run without an API key.
type Unavailable struct{}

func (Unavailable) GenerateTurn(ctx context.Context, bundle domain.GroundingBundle, history []*domain.Turn, message string) (string, error) {
	return "", ErrNotConfigured
}

func (Unavailable) GenerateProposal(ctx context.Context, prompt string) ([]byte, error) {
	return nil, ErrNotConfigured
}

func (Unavailable) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	return "", ErrNotConfigured
}

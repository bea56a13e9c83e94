package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/touchpoint-ai/touchpoint/internal/config"
	"github.com/touchpoint-ai/touchpoint/internal/domain"
)

// GeminiClient implements Generator against the Gemini API.
type GeminiClient struct {
	client         *genai.Client
	proposalModel  string
	translateModel string
}

// proposalSchema constrains proposal generation to six ordered string fields.
var proposalSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title":               {Type: genai.TypeString},
		"problemAnalysis":     {Type: genai.TypeString},
		"solutionMapping":     {Type: genai.TypeString},
		"roiCalculation":      {Type: genai.TypeString},
		"investmentBreakdown": {Type: genai.TypeString},
		"cta":                 {Type: genai.TypeString},
	},
	PropertyOrdering: []string{"title", "problemAnalysis", "solutionMapping", "roiCalculation", "investmentBreakdown", "cta"},
}

// NewGeminiClient creates a Gemini-backed generator.
func NewGeminiClient(ctx context.Context, cfg config.GeminiConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiClient{
		client:         client,
		proposalModel:  cfg.ProposalModel,
		translateModel: cfg.TranslateModel,
	}, nil
}

// GenerateTurn issues one conversational generation call.
func (c *GeminiClient) GenerateTurn(ctx context.Context, bundle domain.GroundingBundle, history []*domain.Turn, message string) (string, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		var role genai.Role = genai.RoleUser
		if turn.Role == domain.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(message, genai.RoleUser))

	resp, err := c.client.Models.GenerateContent(ctx, bundle.Model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(bundle.SystemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr(bundle.Temperature),
	})
	if err != nil {
		return "", fmt.Errorf("generate turn: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("generate turn: empty response")
	}

	return text, nil
}

// GenerateProposal issues one schema-constrained generation call.
func (c *GeminiClient) GenerateProposal(ctx context.Context, prompt string) ([]byte, error) {
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	resp, err := c.client.Models.GenerateContent(ctx, c.proposalModel, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   proposalSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("generate proposal: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("generate proposal: empty response")
	}

	return []byte(text), nil
}

// Translate renders text into the target language on the lighter model.
func (c *GeminiClient) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	prompt := fmt.Sprintf(`Translate the following UI text to the language with code %q. Maintain tone and variables like {name}: %q`, targetLanguage, text)
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	resp, err := c.client.Models.GenerateContent(ctx, c.translateModel, contents, nil)
	if err != nil {
		return "", fmt.Errorf("translate: %w", err)
	}

	return resp.Text(), nil
}

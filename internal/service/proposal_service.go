package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/touchpoint-ai/touchpoint/internal/domain"
	"github.com/touchpoint-ai/touchpoint/internal/llm"
	"github.com/touchpoint-ai/touchpoint/internal/repository"
)

// ProposalService requests schema-constrained business proposals from the
// model. One attempt per invocation; any failure is soft (nil document).
type ProposalService struct {
	agentRepo   *repository.AgentRepository
	sessionRepo *repository.SessionRepository
	generator   llm.Generator
	logger      *zap.Logger
}

// NewProposalService creates a new proposal service
func NewProposalService(
	agentRepo *repository.AgentRepository,
	sessionRepo *repository.SessionRepository,
	generator llm.Generator,
	logger *zap.Logger,
) *ProposalService {
	return &ProposalService{
		agentRepo:   agentRepo,
		sessionRepo: sessionRepo,
		generator:   generator,
		logger:      logger,
	}
}

// Synthesize requests one proposal document. It returns nil on any
// transport, JSON, or schema failure; callers must treat nil as "proposal
// unavailable" and may offer a retry at their own layer — this service never
// retries.
func (s *ProposalService) Synthesize(ctx context.Context, agentName, contextText, targetLanguage string) *domain.ProposalDocument {
	if targetLanguage == "" {
		targetLanguage = "en"
	}

	prompt := fmt.Sprintf(
		"Context: %s. Language: %s. Generate a professional business proposal from %s based on our physical engagement.",
		contextText, targetLanguage, agentName)

	raw, err := s.generator.GenerateProposal(ctx, prompt)
	if err != nil {
		s.logger.Warn("proposal generation failed", zap.String("agent", agentName), zap.Error(err))
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var doc domain.ProposalDocument
	if err := dec.Decode(&doc); err != nil {
		s.logger.Warn("proposal response violated schema", zap.String("agent", agentName), zap.Error(err))
		return nil
	}

	return &doc
}

// SynthesizeForSession builds the proposal context from a session's
// transcript and target language. Request fields override both when set.
func (s *ProposalService) SynthesizeForSession(ctx context.Context, sessionID string, req *domain.ProposalRequest) (*domain.ProposalDocument, error) {
	session, err := s.sessionRepo.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrNotFound
	}

	agent, err := s.agentRepo.Get(session.AgentID)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, domain.ErrInvalidRequest
	}

	contextText := req.Context
	if contextText == "" {
		turns, err := s.sessionRepo.GetTurns(sessionID)
		if err != nil {
			return nil, err
		}
		contextText = summarizeTranscript(turns)
	}

	language := req.Language
	if language == "" {
		language = session.Language
	}

	return s.Synthesize(ctx, agent.Name, contextText, language), nil
}

// summarizeTranscript flattens a transcript into proposal context. Display
// stripping applies here too so the currency hint never leaks into the
// proposal prompt twice.
func summarizeTranscript(turns []*domain.Turn) string {
	var b strings.Builder
	for i, turn := range turns {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(turn.Role)
		b.WriteString(": ")
		b.WriteString(DisplayText(turn.Text))
	}
	return b.String()
}

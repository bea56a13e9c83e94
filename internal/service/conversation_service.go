package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/touchpoint-ai/touchpoint/internal/domain"
	"github.com/touchpoint-ai/touchpoint/internal/llm"
	"github.com/touchpoint-ai/touchpoint/internal/repository"
)

// FallbackReply is substituted as the model turn when the downstream call
// fails, so a user turn is always followed by exactly one model turn.
const FallbackReply = "I'm having a slight connectivity issue with my knowledge base. Please try again in a moment."

// currencyHintDelimiter marks the start of the transmit-only currency
// annotation. Everything from its first occurrence on is stripped before
// display.
const currencyHintDelimiter = " (Note: "

// AnnotatePayload appends the transient currency hint to a user message.
// The result is what gets transmitted downstream; it is never persisted.
func AnnotatePayload(text, currencyCode string) string {
	c := domain.CurrencyByCode(currencyCode)
	return fmt.Sprintf("%s (Note: Please quote values in %s %s if relevant)", text, c.Code, c.Symbol)
}

// DisplayText strips the currency annotation from a turn for rendering.
func DisplayText(text string) string {
	if i := strings.Index(text, currencyHintDelimiter); i >= 0 {
		return text[:i]
	}
	return text
}

// ConversationService owns the turn-taking protocol: it is the only mutator
// of session transcripts. Per session the send flow moves
// IDLE -> SENDING -> APPENDED or FAILED, with at most one in-flight send
// enforced by a guard, not a queue.
type ConversationService struct {
	agentRepo    *repository.AgentRepository
	sessionRepo  *repository.SessionRepository
	settingsRepo *repository.SettingsRepository
	generator    llm.Generator
	grounding    *GroundingBuilder
	logger       *zap.Logger

	mu       sync.Mutex
	states   map[string]string
	inflight map[string]struct{}
}

// NewConversationService creates a new conversation service
func NewConversationService(
	agentRepo *repository.AgentRepository,
	sessionRepo *repository.SessionRepository,
	settingsRepo *repository.SettingsRepository,
	generator llm.Generator,
	grounding *GroundingBuilder,
	logger *zap.Logger,
) *ConversationService {
	return &ConversationService{
		agentRepo:    agentRepo,
		sessionRepo:  sessionRepo,
		settingsRepo: settingsRepo,
		generator:    generator,
		grounding:    grounding,
		logger:       logger,
		states:       make(map[string]string),
		inflight:     make(map[string]struct{}),
	}
}

// State reports the send state of a session.
func (s *ConversationService) State(sessionID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if state, ok := s.states[sessionID]; ok {
		return state
	}
	return domain.StateIdle
}

func (s *ConversationService) setState(sessionID, state string) {
	s.mu.Lock()
	s.states[sessionID] = state
	s.mu.Unlock()
}

// SendTurn accepts a user utterance and drives one full turn: optimistic
// user-turn append, a single downstream generation call, and a model-turn
// append (the fixed fallback on failure). No retry, no rollback; an
// in-flight generation call is never cancelled.
func (s *ConversationService) SendTurn(ctx context.Context, req *domain.SendTurnRequest) (*domain.SendTurnResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, domain.ErrInvalidRequest
	}

	session, isNew, err := s.resolveSession(req)
	if err != nil {
		return nil, err
	}

	agent, err := s.agentRepo.Get(session.AgentID)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		// Unresolvable agent reference: the session cannot send.
		return nil, domain.ErrInvalidRequest
	}

	// Sessions are created on first send, and only once the agent reference
	// has resolved.
	if isNew {
		if err := s.sessionRepo.Create(session); err != nil {
			return nil, err
		}
	}

	// At most one in-flight send per session. A concurrent attempt is
	// rejected, never buffered.
	s.mu.Lock()
	if _, busy := s.inflight[session.ID]; busy {
		s.mu.Unlock()
		return nil, domain.ErrSessionBusy
	}
	s.inflight[session.ID] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inflight, session.ID)
		s.mu.Unlock()
	}()

	// Prior history is the context for the downstream call; it must not
	// include the turn being sent.
	history, err := s.sessionRepo.GetTurns(session.ID)
	if err != nil {
		return nil, err
	}

	// Optimistic append: the clean user text goes into history before the
	// downstream call resolves. The currency annotation is transmit-only.
	if err := s.sessionRepo.AppendTurn(&domain.Turn{
		SessionID: session.ID,
		Role:      domain.RoleUser,
		Text:      message,
	}); err != nil {
		return nil, err
	}
	s.setState(session.ID, domain.StateSending)

	payload := AnnotatePayload(message, session.Currency)
	bundle := s.grounding.Build(agent, session.Language)

	state := domain.StateAppended
	reply, genErr := s.generator.GenerateTurn(ctx, bundle, history, payload)
	if genErr != nil {
		s.logger.Warn("generation failed, substituting fallback turn",
			zap.String("session_id", session.ID),
			zap.String("agent_id", agent.ID),
			zap.Error(genErr))
		reply = FallbackReply
		state = domain.StateFailed
	}

	if err := s.sessionRepo.AppendTurn(&domain.Turn{
		SessionID: session.ID,
		Role:      domain.RoleModel,
		Text:      reply,
	}); err != nil {
		return nil, err
	}
	s.setState(session.ID, state)

	if err := s.sessionRepo.Touch(session.ID); err != nil {
		return nil, err
	}

	return &domain.SendTurnResponse{
		SessionID: session.ID,
		State:     state,
		Reply:     reply,
	}, nil
}

// resolveSession loads an existing session, or prepares an unsaved one for
// creation on first send. Language/currency overrides on the request update
// the session's targets; prior turns are never mutated.
func (s *ConversationService) resolveSession(req *domain.SendTurnRequest) (*domain.ConversationSession, bool, error) {
	if req.SessionID != "" {
		session, err := s.sessionRepo.Get(req.SessionID)
		if err != nil {
			return nil, false, err
		}
		if session == nil {
			return nil, false, domain.ErrNotFound
		}

		if req.Language != "" || req.Currency != "" {
			if req.Language != "" {
				session.Language = req.Language
			}
			if req.Currency != "" {
				session.Currency = req.Currency
			}
			if err := s.sessionRepo.UpdateTargets(session.ID, session.Language, session.Currency); err != nil {
				return nil, false, err
			}
		}

		return session, false, nil
	}

	if req.AgentID == "" {
		return nil, false, domain.ErrInvalidRequest
	}

	settings, err := s.settingsRepo.Get()
	if err != nil {
		return nil, false, err
	}

	session := &domain.ConversationSession{
		AgentID:  req.AgentID,
		Language: settings.Language,
		Currency: settings.Currency,
	}
	if req.Language != "" {
		session.Language = req.Language
	}
	if req.Currency != "" {
		session.Currency = req.Currency
	}

	return session, true, nil
}

// Session retrieves a session by id.
func (s *ConversationService) Session(sessionID string) (*domain.ConversationSession, error) {
	session, err := s.sessionRepo.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrNotFound
	}
	return session, nil
}

// Transcript returns a session's turns in order, with the display-hidden
// currency annotation stripped. This is the read surface lead derivation
// will inspect.
func (s *ConversationService) Transcript(sessionID string) ([]*domain.Turn, error) {
	session, err := s.sessionRepo.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrNotFound
	}

	turns, err := s.sessionRepo.GetTurns(sessionID)
	if err != nil {
		return nil, err
	}

	for _, turn := range turns {
		turn.Text = DisplayText(turn.Text)
	}

	return turns, nil
}

package service

import "github.com/touchpoint-ai/touchpoint/internal/domain"

// LeadDeriver decides whether a conversation should surface as a qualified
// lead. Turns arrive role-tagged and in order, exactly as Transcript returns
// them. Scoring logic is a future collaborator; the shipped implementation
// qualifies nothing.
type LeadDeriver interface {
	DeriveLead(session *domain.ConversationSession, turns []*domain.Turn) (*domain.Conversation, bool)
}

// NoopLeadDeriver never derives a lead.
type NoopLeadDeriver struct{}

// DeriveLead implements LeadDeriver.
func (NoopLeadDeriver) DeriveLead(session *domain.ConversationSession, turns []*domain.Turn) (*domain.Conversation, bool) {
	return nil, false
}

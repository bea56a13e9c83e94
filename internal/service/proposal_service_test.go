package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/touchpoint-ai/touchpoint/internal/domain"
)

const validProposalJSON = `{
	"title": "Catering Partnership Proposal",
	"problemAnalysis": "Ad-hoc event catering strains your staff.",
	"solutionMapping": "A standing catering contract with weekly menus.",
	"roiCalculation": "Save 12 staff hours per event.",
	"investmentBreakdown": "EUR 2,400 monthly retainer.",
	"cta": "Book a tasting session this week."
}`

func newProposalService(env *testEnv, gen *fakeGenerator) *ProposalService {
	return NewProposalService(env.agents, env.sessions, gen, zap.NewNop())
}

func TestSynthesizeBuildsPromptAndDecodes(t *testing.T) {
	env := newTestEnv(t)
	gen := &fakeGenerator{proposal: []byte(validProposalJSON)}
	svc := newProposalService(env, gen)

	doc := svc.Synthesize(context.Background(), "Concierge", "visitor asked about catering", "es")
	require.NotNil(t, doc)
	assert.Equal(t, "Catering Partnership Proposal", doc.Title)
	assert.Equal(t, "Book a tasting session this week.", doc.CTA)

	assert.Equal(t,
		"Context: visitor asked about catering. Language: es. Generate a professional business proposal from Concierge based on our physical engagement.",
		gen.lastProposalPrompt)
}

func TestSynthesizeDefaultsLanguage(t *testing.T) {
	env := newTestEnv(t)
	gen := &fakeGenerator{proposal: []byte(validProposalJSON)}
	svc := newProposalService(env, gen)

	svc.Synthesize(context.Background(), "Concierge", "ctx", "")
	assert.Contains(t, gen.lastProposalPrompt, "Language: en.")
}

func TestSynthesizeSoftFailures(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		name string
		gen  *fakeGenerator
	}{
		{"transport error", &fakeGenerator{proposalErr: errors.New("upstream 503")}},
		{"malformed json", &fakeGenerator{proposal: []byte("not json")}},
		{"extra field", &fakeGenerator{proposal: []byte(`{"title":"t","problemAnalysis":"p","solutionMapping":"s","roiCalculation":"r","investmentBreakdown":"i","cta":"c","extra":"x"}`)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newProposalService(env, tc.gen)
			doc := svc.Synthesize(context.Background(), "Concierge", "ctx", "en")
			assert.Nil(t, doc)
		})
	}
}

func TestSynthesizeForSessionUsesTranscript(t *testing.T) {
	env := newTestEnv(t)
	agent := env.createAgent(t, "Concierge")
	gen := &fakeGenerator{proposal: []byte(validProposalJSON)}
	svc := newProposalService(env, gen)

	session := &domain.ConversationSession{AgentID: agent.ID, Language: "fr", Currency: "EUR"}
	require.NoError(t, env.sessions.Create(session))
	require.NoError(t, env.sessions.AppendTurn(&domain.Turn{SessionID: session.ID, Role: domain.RoleUser, Text: "Do you cater?"}))
	require.NoError(t, env.sessions.AppendTurn(&domain.Turn{SessionID: session.ID, Role: domain.RoleModel, Text: "We do."}))

	doc, err := svc.SynthesizeForSession(context.Background(), session.ID, &domain.ProposalRequest{})
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.Contains(t, gen.lastProposalPrompt, "Context: user: Do you cater? | model: We do..")
	assert.Contains(t, gen.lastProposalPrompt, "Language: fr.")
	assert.Contains(t, gen.lastProposalPrompt, "from Concierge")
}

func TestSynthesizeForSessionRequestOverrides(t *testing.T) {
	env := newTestEnv(t)
	agent := env.createAgent(t, "Concierge")
	gen := &fakeGenerator{proposal: []byte(validProposalJSON)}
	svc := newProposalService(env, gen)

	session := &domain.ConversationSession{AgentID: agent.ID, Language: "en", Currency: "USD"}
	require.NoError(t, env.sessions.Create(session))

	_, err := svc.SynthesizeForSession(context.Background(), session.ID, &domain.ProposalRequest{
		Context:  "booth visit at the trade fair",
		Language: "de",
	})
	require.NoError(t, err)

	assert.Contains(t, gen.lastProposalPrompt, "Context: booth visit at the trade fair.")
	assert.Contains(t, gen.lastProposalPrompt, "Language: de.")
}

func TestSynthesizeForSessionErrors(t *testing.T) {
	env := newTestEnv(t)
	svc := newProposalService(env, &fakeGenerator{})

	_, err := svc.SynthesizeForSession(context.Background(), "missing", &domain.ProposalRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	session := &domain.ConversationSession{AgentID: "purged-agent", Language: "en", Currency: "USD"}
	require.NoError(t, env.sessions.Create(session))

	_, err = svc.SynthesizeForSession(context.Background(), session.ID, &domain.ProposalRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

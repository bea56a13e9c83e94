package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/touchpoint-ai/touchpoint/internal/domain"
	"github.com/touchpoint-ai/touchpoint/internal/repository"
)

// testEnv wires a throwaway sqlite database and its repositories.
type testEnv struct {
	db          *repository.DB
	agents      *repository.AgentRepository
	touchpoints *repository.TouchpointRepository
	sessions    *repository.SessionRepository
	settings    *repository.SettingsRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := repository.NewDB(filepath.Join(t.TempDir(), "touchpoint.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &testEnv{
		db:          db,
		agents:      repository.NewAgentRepository(db),
		touchpoints: repository.NewTouchpointRepository(db),
		sessions:    repository.NewSessionRepository(db),
		settings:    repository.NewSettingsRepository(db),
	}
}

func (e *testEnv) createAgent(t *testing.T, name string) *domain.AgentProfile {
	t.Helper()

	agent := &domain.AgentProfile{
		Name:           name,
		Status:         domain.AgentStatusActive,
		Industry:       "Hospitality",
		Voice:          domain.VoiceProfessional,
		ServiceCatalog: "Event catering, private dining",
	}
	require.NoError(t, e.agents.Create(agent))
	return agent
}

func (e *testEnv) setPlan(t *testing.T, plan string) {
	t.Helper()

	settings, err := e.settings.Get()
	require.NoError(t, err)
	settings.Subscription = plan
	require.NoError(t, e.settings.Put(settings))
}

// fakeGenerator is a scriptable Generator that records the last call.
type fakeGenerator struct {
	mu sync.Mutex

	reply        string
	replyErr     error
	proposal     []byte
	proposalErr  error
	translated   string
	translateErr error

	// block, when set, parks GenerateTurn until closed.
	block chan struct{}

	turnCalls          int
	lastBundle         domain.GroundingBundle
	lastHistory        []*domain.Turn
	lastMessage        string
	lastProposalPrompt string
}

func (g *fakeGenerator) GenerateTurn(ctx context.Context, bundle domain.GroundingBundle, history []*domain.Turn, message string) (string, error) {
	g.mu.Lock()
	g.turnCalls++
	g.lastBundle = bundle
	g.lastHistory = history
	g.lastMessage = message
	block := g.block
	g.mu.Unlock()

	if block != nil {
		<-block
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	return g.reply, g.replyErr
}

func (g *fakeGenerator) GenerateProposal(ctx context.Context, prompt string) ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.lastProposalPrompt = prompt
	return g.proposal, g.proposalErr
}

func (g *fakeGenerator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.translateErr != nil {
		return "", g.translateErr
	}
	return g.translated, nil
}

func (g *fakeGenerator) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.turnCalls
}

func (g *fakeGenerator) sentMessage() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastMessage
}

func (g *fakeGenerator) sentHistory() []*domain.Turn {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastHistory
}

func (g *fakeGenerator) sentBundle() domain.GroundingBundle {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastBundle
}

func newConversationService(env *testEnv, gen *fakeGenerator) *ConversationService {
	return NewConversationService(
		env.agents, env.sessions, env.settings,
		gen, NewGroundingBuilder("gemini-3-pro-preview"), zap.NewNop())
}

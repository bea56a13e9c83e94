package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/touchpoint-ai/touchpoint/internal/domain"
	"github.com/touchpoint-ai/touchpoint/internal/repository"
)

// AgentService handles agent profile operations. Profiles are immutable once
// created; the only mutation is an explicit purge.
type AgentService struct {
	agentRepo    *repository.AgentRepository
	settingsRepo *repository.SettingsRepository
	logger       *zap.Logger
}

// NewAgentService creates a new agent service
func NewAgentService(
	agentRepo *repository.AgentRepository,
	settingsRepo *repository.SettingsRepository,
	logger *zap.Logger,
) *AgentService {
	return &AgentService{
		agentRepo:    agentRepo,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// CreateAgent provisions a profile from the training-wizard payload. The
// subscription tier's agent cap is enforced here, at the creation boundary.
func (s *AgentService) CreateAgent(ctx context.Context, req *domain.CreateAgentRequest) (*domain.AgentProfile, error) {
	settings, err := s.settingsRepo.Get()
	if err != nil {
		return nil, err
	}

	count, err := s.agentRepo.Count()
	if err != nil {
		return nil, err
	}
	if count >= domain.LimitsFor(settings.Subscription).Agents {
		return nil, domain.ErrPlanLimit
	}

	voice := req.Voice
	if !domain.KnownVoice(voice) {
		voice = domain.VoiceProfessional
	}

	agent := &domain.AgentProfile{
		Name:           req.Name,
		Status:         domain.AgentStatusActive,
		Industry:       req.Industry,
		Voice:          voice,
		Description:    req.Description,
		ServiceCatalog: req.ServiceCatalog,
		ClientProfiles: req.ClientProfiles,
		CaseLibrary:    req.CaseLibrary,
		Guidelines:     req.Guidelines,
		Documents:      req.Documents,
	}

	if err := s.agentRepo.Create(agent); err != nil {
		return nil, err
	}

	s.logger.Info("agent deployed",
		zap.String("agent_id", agent.ID),
		zap.String("industry", agent.Industry),
		zap.Int("documents", len(agent.Documents)))

	return agent, nil
}

// GetAgent retrieves an agent profile
func (s *AgentService) GetAgent(ctx context.Context, id string) (*domain.AgentProfile, error) {
	return s.agentRepo.Get(id)
}

// ListAgents retrieves all agent profiles
func (s *AgentService) ListAgents(ctx context.Context) ([]*domain.AgentProfile, error) {
	return s.agentRepo.List()
}

// PurgeAgent destroys an agent profile. Touchpoints keep their dangling
// reference and degrade to unknown-agent resolution.
func (s *AgentService) PurgeAgent(ctx context.Context, id string) error {
	return s.agentRepo.Delete(id)
}

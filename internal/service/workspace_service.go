package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/touchpoint-ai/touchpoint/internal/domain"
	"github.com/touchpoint-ai/touchpoint/internal/llm"
	"github.com/touchpoint-ai/touchpoint/internal/repository"
)

// conversionBase approximates revenue per scan in USD for dashboard
// attribution. Presentation-grade math, not billing.
const conversionBase = 45.0

// WorkspaceService handles workspace settings, dashboard statistics, and the
// static-content translation helper.
type WorkspaceService struct {
	agentRepo      *repository.AgentRepository
	touchpointRepo *repository.TouchpointRepository
	sessionRepo    *repository.SessionRepository
	settingsRepo   *repository.SettingsRepository
	generator      llm.Generator
	logger         *zap.Logger
}

// NewWorkspaceService creates a new workspace service
func NewWorkspaceService(
	agentRepo *repository.AgentRepository,
	touchpointRepo *repository.TouchpointRepository,
	sessionRepo *repository.SessionRepository,
	settingsRepo *repository.SettingsRepository,
	generator llm.Generator,
	logger *zap.Logger,
) *WorkspaceService {
	return &WorkspaceService{
		agentRepo:      agentRepo,
		touchpointRepo: touchpointRepo,
		sessionRepo:    sessionRepo,
		settingsRepo:   settingsRepo,
		generator:      generator,
		logger:         logger,
	}
}

// GetSettings retrieves the workspace settings
func (s *WorkspaceService) GetSettings(ctx context.Context) (domain.WorkspaceSettings, error) {
	return s.settingsRepo.Get()
}

// UpdateSettings applies non-empty fields of the request
func (s *WorkspaceService) UpdateSettings(ctx context.Context, req *domain.UpdateSettingsRequest) (domain.WorkspaceSettings, error) {
	settings, err := s.settingsRepo.Get()
	if err != nil {
		return settings, err
	}

	if req.Language != "" {
		settings.Language = domain.LanguageByCode(req.Language).Code
	}
	if req.Currency != "" {
		settings.Currency = domain.CurrencyByCode(req.Currency).Code
	}
	if req.Subscription != "" {
		if _, ok := domain.PlanLimits[req.Subscription]; !ok {
			return settings, domain.ErrInvalidRequest
		}
		settings.Subscription = req.Subscription
	}

	if err := s.settingsRepo.Put(settings); err != nil {
		return settings, err
	}

	return settings, nil
}

// GetStats assembles workspace dashboard statistics. Attributed revenue is
// converted through the workspace currency's rate table.
func (s *WorkspaceService) GetStats(ctx context.Context) (*domain.Stats, error) {
	settings, err := s.settingsRepo.Get()
	if err != nil {
		return nil, err
	}

	agents, _ := s.agentRepo.Count()
	touchpoints, _ := s.touchpointRepo.Count()
	scans, _ := s.touchpointRepo.TotalScans()
	sessions, _ := s.sessionRepo.CountSessions()
	userTurns, _ := s.sessionRepo.CountUserTurns()

	currency := domain.CurrencyByCode(settings.Currency)

	return &domain.Stats{
		TotalAgents:       agents,
		TotalTouchpoints:  touchpoints,
		TotalScans:        scans,
		TotalSessions:     sessions,
		TotalUserTurns:    userTurns,
		AttributedRevenue: float64(scans) * conversionBase * currency.Rate,
		Currency:          currency.Code,
	}, nil
}

// TranslateContent renders static content into the target language. English
// input passes through, and any downstream failure degrades to the original
// text rather than an error.
func (s *WorkspaceService) TranslateContent(ctx context.Context, text, targetLanguage string) string {
	if targetLanguage == "" || targetLanguage == "en" {
		return text
	}

	translated, err := s.generator.Translate(ctx, text, targetLanguage)
	if err != nil {
		s.logger.Warn("translation failed, returning original text",
			zap.String("language", targetLanguage), zap.Error(err))
		return text
	}
	if translated == "" {
		return text
	}

	return translated
}

package service

import (
	"context"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/touchpoint-ai/touchpoint/internal/domain"
	"github.com/touchpoint-ai/touchpoint/internal/repository"
)

// unknownAgentName is what scan resolution reports after the referenced
// agent has been purged.
const unknownAgentName = "Unknown Agent"

// TouchpointService handles physical surface deployment and scan resolution.
type TouchpointService struct {
	touchpointRepo *repository.TouchpointRepository
	agentRepo      *repository.AgentRepository
	settingsRepo   *repository.SettingsRepository
	activationBase string
	logger         *zap.Logger
}

// NewTouchpointService creates a new touchpoint service
func NewTouchpointService(
	touchpointRepo *repository.TouchpointRepository,
	agentRepo *repository.AgentRepository,
	settingsRepo *repository.SettingsRepository,
	activationBase string,
	logger *zap.Logger,
) *TouchpointService {
	return &TouchpointService{
		touchpointRepo: touchpointRepo,
		agentRepo:      agentRepo,
		settingsRepo:   settingsRepo,
		activationBase: activationBase,
		logger:         logger,
	}
}

// newTrackingID generates a printed tracking identifier.
func newTrackingID() string {
	return fmt.Sprintf("TX-%d", 1000+rand.IntN(9000))
}

// Deploy creates a touchpoint for an agent. The tier's touchpoint cap is
// enforced here; QR rendering of the activation URL is an external encoder's
// concern — this service only produces the URL string.
func (s *TouchpointService) Deploy(ctx context.Context, req *domain.CreateTouchpointRequest) (*domain.Touchpoint, error) {
	if !domain.KnownSurface(req.Type) {
		return nil, domain.ErrInvalidRequest
	}

	agent, err := s.agentRepo.Get(req.AgentID)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, domain.ErrInvalidRequest
	}

	settings, err := s.settingsRepo.Get()
	if err != nil {
		return nil, err
	}

	count, err := s.touchpointRepo.Count()
	if err != nil {
		return nil, err
	}
	if count >= domain.LimitsFor(settings.Subscription).Touchpoints {
		return nil, domain.ErrPlanLimit
	}

	trackingID := newTrackingID()
	tp := &domain.Touchpoint{
		Name:          req.Name,
		Type:          req.Type,
		AgentID:       req.AgentID,
		Location:      req.Location,
		TrackingID:    trackingID,
		ActivationURL: fmt.Sprintf("%s/active/%s", s.activationBase, trackingID),
		Active:        true,
	}

	// Tracking ids are four random digits; regenerate on the rare collision.
	for attempt := 0; attempt < 5; attempt++ {
		err = s.touchpointRepo.Create(tp)
		if err == nil {
			break
		}
		tp.TrackingID = newTrackingID()
		tp.ActivationURL = fmt.Sprintf("%s/active/%s", s.activationBase, tp.TrackingID)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("touchpoint deployed",
		zap.String("touchpoint_id", tp.ID),
		zap.String("tracking_id", tp.TrackingID),
		zap.String("agent_id", tp.AgentID))

	return tp, nil
}

// GetTouchpoint retrieves a touchpoint
func (s *TouchpointService) GetTouchpoint(ctx context.Context, id string) (*domain.Touchpoint, error) {
	return s.touchpointRepo.Get(id)
}

// ListTouchpoints retrieves all touchpoints
func (s *TouchpointService) ListTouchpoints(ctx context.Context) ([]*domain.Touchpoint, error) {
	return s.touchpointRepo.List()
}

// SetActive toggles a touchpoint's active flag
func (s *TouchpointService) SetActive(ctx context.Context, id string, active bool) error {
	return s.touchpointRepo.SetActive(id, active)
}

// DeleteTouchpoint removes a touchpoint
func (s *TouchpointService) DeleteTouchpoint(ctx context.Context, id string) error {
	return s.touchpointRepo.Delete(id)
}

// ResolveScan handles a physical scan: it bumps the scan counter and
// resolves the agent behind the surface. A purged agent degrades to an
// unknown-agent resolution rather than an error.
func (s *TouchpointService) ResolveScan(ctx context.Context, trackingID string) (*domain.ScanResolution, error) {
	tp, err := s.touchpointRepo.GetByTrackingID(trackingID)
	if err != nil {
		return nil, err
	}
	if tp == nil {
		return nil, domain.ErrNotFound
	}

	if err := s.touchpointRepo.IncrementScans(tp.ID); err != nil {
		return nil, err
	}

	resolution := &domain.ScanResolution{
		TouchpointID: tp.ID,
		TrackingID:   tp.TrackingID,
		AgentName:    unknownAgentName,
		Active:       tp.Active,
	}

	agent, err := s.agentRepo.Get(tp.AgentID)
	if err != nil {
		return nil, err
	}
	if agent != nil {
		resolution.AgentID = agent.ID
		resolution.AgentName = agent.Name
	}

	return resolution, nil
}

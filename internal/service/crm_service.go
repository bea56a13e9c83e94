package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/touchpoint-ai/touchpoint/internal/domain"
)

// crmDisplayNames maps provider ids to their display names.
var crmDisplayNames = map[string]string{
	domain.CRMHubSpot:    "HubSpot",
	domain.CRMSalesforce: "Salesforce",
	domain.CRMZoho:       "Zoho CRM",
}

// CRMService is a mock pass-through for CRM integrations. Real OAuth
// handshakes are out of scope; connections live in memory only. The
// conversation core never touches this service.
type CRMService struct {
	logger *zap.Logger

	mu        sync.Mutex
	connected map[string]string // provider id -> last sync
}

// NewCRMService creates a new CRM service
func NewCRMService(logger *zap.Logger) *CRMService {
	return &CRMService{
		logger:    logger,
		connected: make(map[string]string),
	}
}

// Connect records a provider connection and its sync time.
func (s *CRMService) Connect(ctx context.Context, providerID string) (*domain.CRMConnectResponse, error) {
	if !domain.KnownCRMProvider(providerID) {
		return nil, domain.ErrInvalidRequest
	}

	lastSync := time.Now().Format("15:04") + " ago"

	s.mu.Lock()
	s.connected[providerID] = lastSync
	s.mu.Unlock()

	s.logger.Info("CRM connected", zap.String("provider", providerID))

	return &domain.CRMConnectResponse{
		Success:  true,
		Provider: providerID,
		LastSync: lastSync,
	}, nil
}

// Disconnect terminates a provider connection.
func (s *CRMService) Disconnect(ctx context.Context, providerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.connected[providerID]; !ok {
		return domain.ErrNotFound
	}
	delete(s.connected, providerID)

	s.logger.Info("CRM disconnected", zap.String("provider", providerID))
	return nil
}

// List reports the state of every supported provider.
func (s *CRMService) List(ctx context.Context) []domain.CRMConnection {
	s.mu.Lock()
	defer s.mu.Unlock()

	providers := []string{domain.CRMHubSpot, domain.CRMSalesforce, domain.CRMZoho}
	connections := make([]domain.CRMConnection, 0, len(providers))
	for _, id := range providers {
		conn := domain.CRMConnection{
			ID:     id,
			Name:   crmDisplayNames[id],
			Status: domain.CRMStatusDisconnected,
		}
		if lastSync, ok := s.connected[id]; ok {
			conn.Status = domain.CRMStatusConnected
			conn.LastSync = lastSync
		}
		connections = append(connections, conn)
	}

	return connections
}

package domain

// CRM providers the settings surface can connect. The connect flow is a mock
// pass-through; real OAuth handshakes are out of scope.
const (
	CRMHubSpot    = "hubspot"
	CRMSalesforce = "salesforce"
	CRMZoho       = "zoho"
)

// CRM connection statuses
const (
	CRMStatusConnected    = "connected"
	CRMStatusDisconnected = "disconnected"
)

// KnownCRMProvider reports whether id names a supported provider.
func KnownCRMProvider(id string) bool {
	switch id {
	case CRMHubSpot, CRMSalesforce, CRMZoho:
		return true
	}
	return false
}

// CRMConnection is the state of one provider integration.
type CRMConnection struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	LastSync string `json:"last_sync,omitempty"`
	Error    string `json:"error,omitempty"`
}

// CRMConnectRequest is the request to connect a provider.
type CRMConnectRequest struct {
	ProviderID string `json:"provider_id" binding:"required"`
}

// CRMConnectResponse is the result of a connect attempt.
type CRMConnectResponse struct {
	Success  bool   `json:"success"`
	Provider string `json:"provider,omitempty"`
	LastSync string `json:"last_sync,omitempty"`
	Error    string `json:"error,omitempty"`
}

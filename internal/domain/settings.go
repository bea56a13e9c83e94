package domain

// WorkspaceSettings holds the operator-level defaults applied to new
// conversations and the plan the limit checks read.
type WorkspaceSettings struct {
	Language     string `json:"language"`
	Currency     string `json:"currency"`
	Subscription string `json:"subscription"`
}

// DefaultWorkspaceSettings returns the settings a fresh workspace starts with.
func DefaultWorkspaceSettings() WorkspaceSettings {
	return WorkspaceSettings{
		Language:     "en",
		Currency:     "USD",
		Subscription: PlanFree,
	}
}

// UpdateSettingsRequest is the request to change workspace settings. Empty
// fields keep their current values.
type UpdateSettingsRequest struct {
	Language     string `json:"language,omitempty"`
	Currency     string `json:"currency,omitempty"`
	Subscription string `json:"subscription,omitempty"`
}

// Stats represents workspace-level dashboard statistics.
type Stats struct {
	TotalAgents       int     `json:"total_agents"`
	TotalTouchpoints  int     `json:"total_touchpoints"`
	TotalScans        int     `json:"total_scans"`
	TotalSessions     int     `json:"total_sessions"`
	TotalUserTurns    int     `json:"total_user_turns"`
	AttributedRevenue float64 `json:"attributed_revenue"`
	Currency          string  `json:"currency"`
}

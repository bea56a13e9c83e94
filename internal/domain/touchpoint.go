package domain

import "time"

// Physical surface types a touchpoint can be printed on or embedded in
const (
	SurfaceBusinessCard = "Business Card"
	SurfaceFlyer        = "Flyer"
	SurfacePoster       = "Poster"
	SurfaceNFCTag       = "NFC Tag"
	SurfaceTableTent    = "Table Tent"
)

// KnownSurface reports whether t is a recognized surface type.
func KnownSurface(t string) bool {
	switch t {
	case SurfaceBusinessCard, SurfaceFlyer, SurfacePoster, SurfaceNFCTag, SurfaceTableTent:
		return true
	}
	return false
}

// Touchpoint maps a physical scannable surface to an agent. The agent
// reference is non-owning: purging the agent leaves the touchpoint in place
// and scan resolution degrades to an unknown-agent result.
type Touchpoint struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	AgentID       string    `json:"agent_id"`
	Location      string    `json:"location,omitempty"`
	TrackingID    string    `json:"tracking_id"`
	ActivationURL string    `json:"activation_url"`
	Scans         int       `json:"scans"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateTouchpointRequest is the request to deploy a new touchpoint
type CreateTouchpointRequest struct {
	Name     string `json:"name" binding:"required"`
	Type     string `json:"type" binding:"required"`
	AgentID  string `json:"agent_id" binding:"required"`
	Location string `json:"location,omitempty"`
}

// ScanResolution is what a public scan of a tracking id resolves to. When the
// referenced agent no longer exists, AgentName is "Unknown Agent" and
// AgentID is empty.
type ScanResolution struct {
	TouchpointID string `json:"touchpoint_id"`
	TrackingID   string `json:"tracking_id"`
	AgentID      string `json:"agent_id,omitempty"`
	AgentName    string `json:"agent_name"`
	Active       bool   `json:"active"`
}

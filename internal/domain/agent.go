package domain

import "time"

// Agent status constants
const (
	AgentStatusTraining = "Training"
	AgentStatusActive   = "Active"
	AgentStatusInactive = "Inactive"
)

// Recognized voice profiles. An unset or unrecognized voice falls back to
// VoiceProfessional during prompt construction.
const (
	VoiceProfessional = "professional"
	VoiceCasual       = "casual"
	VoiceTechnical    = "technical"
	VoiceEnthusiastic = "enthusiastic"
)

// KnownVoice reports whether v is one of the recognized voice profiles.
func KnownVoice(v string) bool {
	switch v {
	case VoiceProfessional, VoiceCasual, VoiceTechnical, VoiceEnthusiastic:
		return true
	}
	return false
}

// AgentProfile represents a configured persona the orchestration engine
// grounds model output in. Profiles are immutable once created; the only
// mutation is an explicit purge.
type AgentProfile struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Status         string    `json:"status"`
	Industry       string    `json:"industry"`
	Voice          string    `json:"voice"`
	Description    string    `json:"description,omitempty"`
	ServiceCatalog string    `json:"service_catalog,omitempty"`
	ClientProfiles string    `json:"client_profiles,omitempty"`
	CaseLibrary    string    `json:"case_library,omitempty"`
	Guidelines     string    `json:"guidelines,omitempty"`
	Documents      []string  `json:"documents,omitempty"`
	LeadsGenerated int       `json:"leads_generated"`
	ConversionRate float64   `json:"conversion_rate"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreateAgentRequest is the training-wizard payload
type CreateAgentRequest struct {
	Name           string   `json:"name" binding:"required"`
	Industry       string   `json:"industry" binding:"required"`
	Voice          string   `json:"voice,omitempty"`
	Description    string   `json:"description,omitempty"`
	ServiceCatalog string   `json:"service_catalog,omitempty"`
	ClientProfiles string   `json:"client_profiles,omitempty"`
	CaseLibrary    string   `json:"case_library,omitempty"`
	Guidelines     string   `json:"guidelines,omitempty"`
	Documents      []string `json:"documents,omitempty"`
}

package domain

import "time"

// Turn roles
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Session send states. A session is sendable in every state except
// StateSending; the engine enforces at most one in-flight send per session.
const (
	StateIdle     = "IDLE"
	StateSending  = "SENDING"
	StateAppended = "APPENDED"
	StateFailed   = "FAILED"
)

// ConversationSession is one lead-qualification dialogue against a single
// agent. Turns strictly alternate user then model, starting with user, and
// accumulate monotonically.
type ConversationSession struct {
	ID        string    `json:"id"`
	AgentID   string    `json:"agent_id"`
	Language  string    `json:"language"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Turn is one message in a conversation. Text holds the clean user input;
// the transient currency annotation exists only on the transmitted payload.
type Turn struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// GroundingBundle is the derived instruction payload constraining one model
// invocation. It is recomputed per call and never cached, so a language
// switch mid-conversation regrounds all subsequent turns.
type GroundingBundle struct {
	SystemInstruction string
	Temperature       float32
	Model             string
}

// SendTurnRequest is the request to send a user utterance. An empty
// SessionID creates a session on first send. Language and Currency override
// the session's targets when set.
type SendTurnRequest struct {
	SessionID string `json:"session_id,omitempty"`
	AgentID   string `json:"agent_id,omitempty"`
	Message   string `json:"message" binding:"required"`
	Language  string `json:"language,omitempty"`
	Currency  string `json:"currency,omitempty"`
}

// SendTurnResponse is the transcript delta after one resolved send.
type SendTurnResponse struct {
	SessionID string `json:"session_id"`
	State     string `json:"state"`
	Reply     string `json:"reply"`
}

// Conversation is an operator-visible lead candidate derived from a session.
type Conversation struct {
	ID           string    `json:"id"`
	AgentID      string    `json:"agent_id"`
	CustomerName string    `json:"customer_name"`
	LastMessage  string    `json:"last_message"`
	Stage        string    `json:"stage"`
	IsQualified  bool      `json:"is_qualified"`
	Timestamp    time.Time `json:"timestamp"`
}

package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/touchpoint-ai/touchpoint/internal/domain"
)

// SessionRepository handles conversation session persistence
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session
func (r *SessionRepository) Create(session *domain.ConversationSession) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	now := time.Now()
	session.CreatedAt = now
	session.UpdatedAt = now

	_, err := r.db.Exec(`
		INSERT INTO sessions (id, agent_id, language, currency, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, session.ID, session.AgentID, session.Language, session.Currency,
		session.CreatedAt, session.UpdatedAt)

	return err
}

// Get retrieves a session by ID
func (r *SessionRepository) Get(id string) (*domain.ConversationSession, error) {
	session := &domain.ConversationSession{}

	err := r.db.QueryRow(`
		SELECT id, agent_id, language, currency, created_at, updated_at
		FROM sessions WHERE id = ?
	`, id).Scan(&session.ID, &session.AgentID, &session.Language, &session.Currency,
		&session.CreatedAt, &session.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return session, nil
}

// UpdateTargets changes a session's target language and currency. Prior turns
// are never touched; only groundings built after this call see the change.
func (r *SessionRepository) UpdateTargets(id, language, currency string) error {
	_, err := r.db.Exec(`
		UPDATE sessions SET language = ?, currency = ?, updated_at = ? WHERE id = ?
	`, language, currency, time.Now(), id)
	return err
}

// Touch updates a session's updated_at timestamp
func (r *SessionRepository) Touch(id string) error {
	_, err := r.db.Exec(`UPDATE sessions SET updated_at = ? WHERE id = ?`, time.Now(), id)
	return err
}

// AppendTurn appends a turn to a session's transcript. Turns are append-only.
func (r *SessionRepository) AppendTurn(turn *domain.Turn) error {
	if turn.ID == "" {
		turn.ID = uuid.New().String()
	}
	turn.CreatedAt = time.Now()

	_, err := r.db.Exec(`
		INSERT INTO turns (id, session_id, role, text, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, turn.ID, turn.SessionID, turn.Role, turn.Text, turn.CreatedAt)

	return err
}

// GetTurns retrieves all turns for a session in append order
func (r *SessionRepository) GetTurns(sessionID string) ([]*domain.Turn, error) {
	rows, err := r.db.Query(`
		SELECT id, session_id, role, text, created_at
		FROM turns WHERE session_id = ?
		ORDER BY created_at ASC, rowid ASC
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var turns []*domain.Turn
	for rows.Next() {
		turn := &domain.Turn{}

		if err := rows.Scan(&turn.ID, &turn.SessionID, &turn.Role, &turn.Text, &turn.CreatedAt); err != nil {
			return nil, err
		}
		turns = append(turns, turn)
	}

	return turns, rows.Err()
}

// CountSessions returns the total number of sessions
func (r *SessionRepository) CountSessions() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&count)
	return count, err
}

// CountUserTurns returns the total number of user turns across all sessions
func (r *SessionRepository) CountUserTurns() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM turns WHERE role = 'user'`).Scan(&count)
	return count, err
}

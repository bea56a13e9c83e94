package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/touchpoint-ai/touchpoint/internal/domain"
)

// AgentRepository handles agent profile persistence
type AgentRepository struct {
	db *DB
}

// NewAgentRepository creates a new agent repository
func NewAgentRepository(db *DB) *AgentRepository {
	return &AgentRepository{db: db}
}

// Create creates a new agent profile
func (r *AgentRepository) Create(agent *domain.AgentProfile) error {
	if agent.ID == "" {
		agent.ID = uuid.New().String()
	}
	agent.CreatedAt = time.Now()

	documentsJSON, _ := json.Marshal(agent.Documents)

	_, err := r.db.Exec(`
		INSERT INTO agents (id, name, status, industry, voice, description, service_catalog,
			client_profiles, case_library, guidelines, documents, leads_generated, conversion_rate, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, agent.ID, agent.Name, agent.Status, agent.Industry, agent.Voice, agent.Description,
		agent.ServiceCatalog, agent.ClientProfiles, agent.CaseLibrary, agent.Guidelines,
		string(documentsJSON), agent.LeadsGenerated, agent.ConversionRate, agent.CreatedAt)

	return err
}

// Get retrieves an agent profile by ID
func (r *AgentRepository) Get(id string) (*domain.AgentProfile, error) {
	agent := &domain.AgentProfile{}
	var documentsJSON string

	err := r.db.QueryRow(`
		SELECT id, name, status, industry, voice, description, service_catalog,
			client_profiles, case_library, guidelines, documents, leads_generated, conversion_rate, created_at
		FROM agents WHERE id = ?
	`, id).Scan(&agent.ID, &agent.Name, &agent.Status, &agent.Industry, &agent.Voice,
		&agent.Description, &agent.ServiceCatalog, &agent.ClientProfiles, &agent.CaseLibrary,
		&agent.Guidelines, &documentsJSON, &agent.LeadsGenerated, &agent.ConversionRate, &agent.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	json.Unmarshal([]byte(documentsJSON), &agent.Documents)

	return agent, nil
}

// List retrieves all agent profiles
func (r *AgentRepository) List() ([]*domain.AgentProfile, error) {
	rows, err := r.db.Query(`
		SELECT id, name, status, industry, voice, description, service_catalog,
			client_profiles, case_library, guidelines, documents, leads_generated, conversion_rate, created_at
		FROM agents ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var agents []*domain.AgentProfile
	for rows.Next() {
		agent := &domain.AgentProfile{}
		var documentsJSON string

		if err := rows.Scan(&agent.ID, &agent.Name, &agent.Status, &agent.Industry, &agent.Voice,
			&agent.Description, &agent.ServiceCatalog, &agent.ClientProfiles, &agent.CaseLibrary,
			&agent.Guidelines, &documentsJSON, &agent.LeadsGenerated, &agent.ConversionRate, &agent.CreatedAt); err != nil {
			return nil, err
		}

		json.Unmarshal([]byte(documentsJSON), &agent.Documents)
		agents = append(agents, agent)
	}

	return agents, rows.Err()
}

// Count returns the number of agent profiles in the workspace
func (r *AgentRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM agents`).Scan(&count)
	return count, err
}

// Delete purges an agent profile. Touchpoints referencing the agent are left
// in place; scan resolution degrades to an unknown-agent result.
func (r *AgentRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM agents WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("agent not found: %s", id)
	}

	return nil
}

package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/touchpoint-ai/touchpoint/internal/domain"
)

// TouchpointRepository handles touchpoint persistence
type TouchpointRepository struct {
	db *DB
}

// NewTouchpointRepository creates a new touchpoint repository
func NewTouchpointRepository(db *DB) *TouchpointRepository {
	return &TouchpointRepository{db: db}
}

// Create creates a new touchpoint
func (r *TouchpointRepository) Create(tp *domain.Touchpoint) error {
	if tp.ID == "" {
		tp.ID = uuid.New().String()
	}
	tp.CreatedAt = time.Now()

	_, err := r.db.Exec(`
		INSERT INTO touchpoints (id, name, type, agent_id, location, tracking_id, activation_url, scans, active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, tp.ID, tp.Name, tp.Type, tp.AgentID, tp.Location, tp.TrackingID, tp.ActivationURL,
		tp.Scans, tp.Active, tp.CreatedAt)

	return err
}

// Get retrieves a touchpoint by ID
func (r *TouchpointRepository) Get(id string) (*domain.Touchpoint, error) {
	return r.scanOne(r.db.QueryRow(`
		SELECT id, name, type, agent_id, location, tracking_id, activation_url, scans, active, created_at
		FROM touchpoints WHERE id = ?
	`, id))
}

// GetByTrackingID retrieves a touchpoint by its printed tracking identifier
func (r *TouchpointRepository) GetByTrackingID(trackingID string) (*domain.Touchpoint, error) {
	return r.scanOne(r.db.QueryRow(`
		SELECT id, name, type, agent_id, location, tracking_id, activation_url, scans, active, created_at
		FROM touchpoints WHERE tracking_id = ?
	`, trackingID))
}

func (r *TouchpointRepository) scanOne(row *sql.Row) (*domain.Touchpoint, error) {
	tp := &domain.Touchpoint{}
	var location sql.NullString

	err := row.Scan(&tp.ID, &tp.Name, &tp.Type, &tp.AgentID, &location, &tp.TrackingID,
		&tp.ActivationURL, &tp.Scans, &tp.Active, &tp.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if location.Valid {
		tp.Location = location.String
	}

	return tp, nil
}

// List retrieves all touchpoints
func (r *TouchpointRepository) List() ([]*domain.Touchpoint, error) {
	rows, err := r.db.Query(`
		SELECT id, name, type, agent_id, location, tracking_id, activation_url, scans, active, created_at
		FROM touchpoints ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var touchpoints []*domain.Touchpoint
	for rows.Next() {
		tp := &domain.Touchpoint{}
		var location sql.NullString

		if err := rows.Scan(&tp.ID, &tp.Name, &tp.Type, &tp.AgentID, &location, &tp.TrackingID,
			&tp.ActivationURL, &tp.Scans, &tp.Active, &tp.CreatedAt); err != nil {
			return nil, err
		}

		if location.Valid {
			tp.Location = location.String
		}
		touchpoints = append(touchpoints, tp)
	}

	return touchpoints, rows.Err()
}

// Count returns the number of touchpoints in the workspace
func (r *TouchpointRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM touchpoints`).Scan(&count)
	return count, err
}

// TotalScans returns the scan count summed over all touchpoints
func (r *TouchpointRepository) TotalScans() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COALESCE(SUM(scans), 0) FROM touchpoints`).Scan(&total)
	return total, err
}

// IncrementScans bumps the scan counter for a touchpoint
func (r *TouchpointRepository) IncrementScans(id string) error {
	_, err := r.db.Exec(`UPDATE touchpoints SET scans = scans + 1 WHERE id = ?`, id)
	return err
}

// SetActive toggles the active flag
func (r *TouchpointRepository) SetActive(id string, active bool) error {
	result, err := r.db.Exec(`UPDATE touchpoints SET active = ? WHERE id = ?`, active, id)
	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("touchpoint not found: %s", id)
	}

	return nil
}

// Delete deletes a touchpoint
func (r *TouchpointRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM touchpoints WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("touchpoint not found: %s", id)
	}

	return nil
}

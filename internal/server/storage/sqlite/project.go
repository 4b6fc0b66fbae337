package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/ecoestate/internal/models"
	"github.com/iudanet/ecoestate/internal/server/storage"
)

// ListProjectsByAgent retrieves the agent's projects with milestones and
// notes attached
func (s *Storage) ListProjectsByAgent(ctx context.Context, agentID string) ([]models.Project, error) {
	query := `
		SELECT id, property_id, client_name, status, updated_at
		FROM projects
		WHERE agent_id = ?
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query, agentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.PropertyID, &p.ClientName, &p.Status, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}

	for i := range projects {
		if projects[i].Milestones, err = s.loadMilestones(ctx, projects[i].ID); err != nil {
			return nil, err
		}
		if projects[i].Notes, err = s.loadNotes(ctx, projects[i].ID); err != nil {
			return nil, err
		}
	}

	return projects, nil
}

// GetProject retrieves a single project with milestones and notes
func (s *Storage) GetProject(ctx context.Context, agentID, projectID string) (*models.Project, error) {
	query := `
		SELECT id, property_id, client_name, status, updated_at
		FROM projects
		WHERE id = ? AND agent_id = ?
	`

	var p models.Project
	err := s.db.QueryRowContext(ctx, query, projectID, agentID).Scan(
		&p.ID, &p.PropertyID, &p.ClientName, &p.Status, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if p.Milestones, err = s.loadMilestones(ctx, p.ID); err != nil {
		return nil, err
	}
	if p.Notes, err = s.loadNotes(ctx, p.ID); err != nil {
		return nil, err
	}

	return &p, nil
}

// CreateProject creates a project with its milestones
func (s *Storage) CreateProject(ctx context.Context, agentID string, project *models.Project) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback после commit это no-op

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO projects (id, agent_id, property_id, client_name, status, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		project.ID, agentID, project.PropertyID, project.ClientName,
		project.Status, project.UpdatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert project: %w", err)
	}

	for i, m := range project.Milestones {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO milestones (project_id, id, name, done, position) VALUES (?, ?, ?, ?, ?)`,
			project.ID, m.ID, m.Name, m.Done, i,
		); err != nil {
			return fmt.Errorf("failed to insert milestone %s: %w", m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit project: %w", err)
	}
	return nil
}

// SetMilestoneDone toggles a milestone done flag
func (s *Storage) SetMilestoneDone(ctx context.Context, agentID, projectID, milestoneID string, done bool, at time.Time) error {
	query := `
		UPDATE milestones
		SET done = ?
		WHERE id = ? AND project_id IN (
			SELECT id FROM projects WHERE id = ? AND agent_id = ?
		)
	`

	result, err := s.db.ExecContext(ctx, query, done, milestoneID, projectID, agentID)
	if err != nil {
		return fmt.Errorf("failed to update milestone: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrMilestoneNotFound
	}

	if _, err := s.db.ExecContext(ctx,
		`UPDATE projects SET updated_at = ? WHERE id = ?`, at, projectID); err != nil {
		return fmt.Errorf("failed to touch project: %w", err)
	}

	return nil
}

// AddNote appends a note to the agent's project
func (s *Storage) AddNote(ctx context.Context, agentID, projectID string, note *models.ProjectNote) error {
	// Проверяем принадлежность проекта агенту
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM projects WHERE id = ? AND agent_id = ?`, projectID, agentID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrProjectNotFound
		}
		return fmt.Errorf("failed to check project: %w", err)
	}

	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO project_notes (project_id, author, text, created_at) VALUES (?, ?, ?, ?)`,
		projectID, note.Author, note.Text, note.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert note: %w", err)
	}

	return nil
}

func (s *Storage) loadMilestones(ctx context.Context, projectID string) ([]models.Milestone, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, done FROM milestones WHERE project_id = ? ORDER BY position`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query milestones: %w", err)
	}
	defer rows.Close()

	var milestones []models.Milestone
	for rows.Next() {
		var m models.Milestone
		if err := rows.Scan(&m.ID, &m.Name, &m.Done); err != nil {
			return nil, fmt.Errorf("failed to scan milestone: %w", err)
		}
		milestones = append(milestones, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate milestones: %w", err)
	}

	return milestones, nil
}

func (s *Storage) loadNotes(ctx context.Context, projectID string) ([]models.ProjectNote, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT author, text, created_at FROM project_notes WHERE project_id = ? ORDER BY id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	var notes []models.ProjectNote
	for rows.Next() {
		var n models.ProjectNote
		if err := rows.Scan(&n.Author, &n.Text, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notes: %w", err)
	}

	return notes, nil
}

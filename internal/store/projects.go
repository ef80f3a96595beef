// internal/store/projects.go
package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"sow-engine/internal/common/errors"
	"sow-engine/internal/models"
)

const projectColumns = `id, project_name, address, company_name, square_footage,
	building_height, project_type, membrane_type, deck_type, current_stage,
	created_at, updated_at`

// CreateProject inserts a new project derived from an inspection record and
// returns it with its generated id and timestamps filled in.
func (s *Store) CreateProject(ctx context.Context, insp models.FieldInspection) (*models.Project, error) {
	now := time.Now().UTC()
	project := &models.Project{
		ID:             uuid.New().String(),
		ProjectName:    insp.ProjectName,
		Address:        insp.ProjectAddress,
		CompanyName:    insp.CompanyName,
		SquareFootage:  insp.SquareFootage,
		BuildingHeight: insp.BuildingHeight,
		ProjectType:    insp.ProjectType,
		MembraneType:   insp.MembraneType,
		DeckType:       insp.DeckType,
		CurrentStage:   "inspection",
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := s.db.ExecContext(ctx, query,
		project.ID, project.ProjectName, project.Address, project.CompanyName,
		project.SquareFootage, project.BuildingHeight, project.ProjectType,
		project.MembraneType, project.DeckType, project.CurrentStage,
		project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		return nil, errors.NewDatabaseInsertFailedError(err)
	}

	s.logger.Info("Project created", map[string]interface{}{
		"project_id":   project.ID,
		"project_name": project.ProjectName,
	})

	return project, nil
}

// GetProject loads one project, consulting the cache first. Cache failures
// are treated as misses; the database is the source of truth.
func (s *Store) GetProject(ctx context.Context, id string) (*models.Project, error) {
	if cached, ok := s.cachedProject(ctx, id); ok {
		return cached, nil
	}

	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	var p models.Project
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.ProjectName, &p.Address, &p.CompanyName, &p.SquareFootage,
		&p.BuildingHeight, &p.ProjectType, &p.MembraneType, &p.DeckType,
		&p.CurrentStage, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewProjectNotFoundError(id)
	}
	if err != nil {
		return nil, errors.NewQueryExecutionFailedError("get_project", err)
	}

	s.cacheProject(ctx, &p)
	return &p, nil
}

// ListProjects returns the most recently created projects.
func (s *Store) ListProjects(ctx context.Context, limit int) ([]models.Project, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC LIMIT $1`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, errors.NewQueryExecutionFailedError("list_projects", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(
			&p.ID, &p.ProjectName, &p.Address, &p.CompanyName, &p.SquareFootage,
			&p.BuildingHeight, &p.ProjectType, &p.MembraneType, &p.DeckType,
			&p.CurrentStage, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, errors.NewQueryExecutionFailedError("list_projects", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewQueryExecutionFailedError("list_projects", err)
	}
	return projects, nil
}

// UpdateProjectStage advances a project's workflow stage and invalidates
// its cache entry.
func (s *Store) UpdateProjectStage(ctx context.Context, id, stage string) error {
	query := `UPDATE projects SET current_stage = $1, updated_at = $2 WHERE id = $3`

	result, err := s.db.ExecContext(ctx, query, stage, time.Now().UTC(), id)
	if err != nil {
		return errors.NewQueryExecutionFailedError("update_project_stage", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return errors.NewProjectNotFoundError(id)
	}

	s.invalidateProject(ctx, id)
	return nil
}

// Ping verifies database connectivity for health checks.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

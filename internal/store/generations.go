// internal/store/generations.go
package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"sow-engine/internal/common/errors"
	"sow-engine/internal/models"
)

const generationColumns = `id, workflow_id, project_id, template_id, status,
	pdf_filename, started_at, completed_at`

// CreateGeneration inserts a generation record for a workflow run. The id
// is assigned here when the caller leaves it empty.
func (s *Store) CreateGeneration(ctx context.Context, gen *models.SOWGeneration) error {
	if gen.ID == "" {
		gen.ID = uuid.New().String()
	}
	if gen.StartedAt.IsZero() {
		gen.StartedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO sow_generations (` + generationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := s.db.ExecContext(ctx, query,
		gen.ID, gen.WorkflowID, gen.ProjectID, gen.TemplateID, gen.Status,
		gen.PDFFilename, gen.StartedAt, gen.CompletedAt,
	)
	if err != nil {
		return errors.NewDatabaseInsertFailedError(err)
	}

	s.logger.Info("Generation record created", map[string]interface{}{
		"generation_id": gen.ID,
		"workflow_id":   gen.WorkflowID,
		"template_id":   gen.TemplateID,
	})

	return nil
}

// CompleteGeneration records the terminal status of a workflow run.
func (s *Store) CompleteGeneration(ctx context.Context, id, status, pdfFilename string) error {
	query := `
		UPDATE sow_generations
		SET status = $1, pdf_filename = $2, completed_at = $3
		WHERE id = $4`

	result, err := s.db.ExecContext(ctx, query, status, pdfFilename, time.Now().UTC(), id)
	if err != nil {
		return errors.NewQueryExecutionFailedError("complete_generation", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return errors.NewGenerationNotFoundError(id)
	}
	return nil
}

// GetGenerationByWorkflowID loads the generation record for a workflow id.
func (s *Store) GetGenerationByWorkflowID(ctx context.Context, workflowID string) (*models.SOWGeneration, error) {
	query := `SELECT ` + generationColumns + ` FROM sow_generations WHERE workflow_id = $1`

	var g models.SOWGeneration
	err := s.db.QueryRowContext(ctx, query, workflowID).Scan(
		&g.ID, &g.WorkflowID, &g.ProjectID, &g.TemplateID, &g.Status,
		&g.PDFFilename, &g.StartedAt, &g.CompletedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewGenerationNotFoundError(workflowID)
	}
	if err != nil {
		return nil, errors.NewQueryExecutionFailedError("get_generation", err)
	}
	return &g, nil
}

// ListGenerations returns the most recently started generation records.
func (s *Store) ListGenerations(ctx context.Context, limit int) ([]models.SOWGeneration, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT ` + generationColumns + ` FROM sow_generations ORDER BY started_at DESC LIMIT $1`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, errors.NewQueryExecutionFailedError("list_generations", err)
	}
	defer rows.Close()

	generations := []models.SOWGeneration{}
	for rows.Next() {
		var g models.SOWGeneration
		if err := rows.Scan(
			&g.ID, &g.WorkflowID, &g.ProjectID, &g.TemplateID, &g.Status,
			&g.PDFFilename, &g.StartedAt, &g.CompletedAt,
		); err != nil {
			return nil, errors.NewQueryExecutionFailedError("list_generations", err)
		}
		generations = append(generations, g)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewQueryExecutionFailedError("list_generations", err)
	}
	return generations, nil
}

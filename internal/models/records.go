// internal/models/records.go
package models

import "time"

// Project is a persisted roofing project created from a takeoff submission.
type Project struct {
	ID             string    `json:"id"`
	ProjectName    string    `json:"project_name"`
	Address        string    `json:"address"`
	CompanyName    string    `json:"company_name,omitempty"`
	SquareFootage  float64   `json:"square_footage"`
	BuildingHeight float64   `json:"building_height,omitempty"`
	ProjectType    string    `json:"project_type"`
	MembraneType   string    `json:"membrane_type,omitempty"`
	DeckType       string    `json:"deck_type,omitempty"`
	CurrentStage   string    `json:"current_stage"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Generation status values.
const (
	GenerationStatusProcessing       = "processing"
	GenerationStatusSuccess          = "success"
	GenerationStatusValidationFailed = "validation_failed"
	GenerationStatusError            = "error"
)

// SOWGeneration is a persisted record of one generation workflow run.
type SOWGeneration struct {
	ID          string     `json:"id"`
	WorkflowID  string     `json:"workflow_id"`
	ProjectID   string     `json:"project_id"`
	TemplateID  string     `json:"template_id,omitempty"`
	Status      string     `json:"status"`
	PDFFilename string     `json:"pdf_filename,omitempty"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// internal/orchestrator/orchestrator.go

// Package orchestrator runs the takeoff-to-document workflow: persist the
// project, validate the takeoff, select a template, derive the scope of
// work, record the generation, and notify the requester.
package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	stderrors "sow-engine/internal/common/errors"
	"sow-engine/internal/common/logger"
	"sow-engine/internal/common/metrics"
	"sow-engine/internal/common/observability"
	"sow-engine/internal/models"
	"sow-engine/internal/notify"
	"sow-engine/internal/sow"
	"sow-engine/internal/sow/templates"
	"sow-engine/internal/store"
	"sow-engine/internal/takeoff"
)

// Workflow step names as they appear in results and metrics.
const (
	StepPersistProject    = "persist_project"
	StepValidate          = "validate"
	StepSelectTemplate    = "select_template"
	StepGenerateSOW       = "generate_sow"
	StepPersistGeneration = "persist_generation"
	StepNotify            = "notify"
)

// StepResult records the outcome of one workflow step.
type StepResult struct {
	Success bool                   `json:"success"`
	Error   string                 `json:"error,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Result is the full outcome of one workflow run.
type Result struct {
	WorkflowID    string                 `json:"workflow_id"`
	Timestamp     string                 `json:"timestamp"`
	Status        string                 `json:"status"`
	Steps         map[string]StepResult  `json:"steps"`
	ProjectID     string                 `json:"project_id,omitempty"`
	TemplateID    string                 `json:"template_id,omitempty"`
	Validation    *takeoff.Result        `json:"validation,omitempty"`
	Configuration *sow.Configuration     `json:"configuration,omitempty"`
	Inclusions    *sow.SectionInclusions `json:"section_inclusions,omitempty"`
	Summary       *sow.Summary           `json:"summary,omitempty"`
	PDFFilename   string                 `json:"pdf_filename,omitempty"`
	DownloadURL   string                 `json:"download_url,omitempty"`
}

// Config carries the orchestrator's tunables.
type Config struct {
	DownloadBaseURL string
	NotifyRecipient string
}

// Orchestrator wires the workflow's collaborators together. The notifier is
// optional; a nil notifier skips the notify step.
type Orchestrator struct {
	config    Config
	validator *takeoff.Validator
	generator *sow.Generator
	selector  *templates.Selector
	store     *store.Store
	notifier  *notify.Notifier
	obs       *observability.Observability
	logger    logger.Logger
}

func New(config Config, validator *takeoff.Validator, generator *sow.Generator,
	selector *templates.Selector, st *store.Store, notifier *notify.Notifier,
	obs *observability.Observability, log logger.Logger) *Orchestrator {
	if config.DownloadBaseURL == "" {
		config.DownloadBaseURL = "/api/download/pdf"
	}
	return &Orchestrator{
		config:    config,
		validator: validator,
		generator: generator,
		selector:  selector,
		store:     st,
		notifier:  notifier,
		obs:       obs,
		logger:    log,
	}
}

// ProcessTakeoff runs the full workflow over one parsed takeoff submission.
// It always returns a Result; step failures are recorded in the result
// rather than returned as errors so the caller can render partial progress.
func (o *Orchestrator) ProcessTakeoff(ctx context.Context, data models.Takeoff) *Result {
	started := time.Now()
	workflowID := uuid.New().String()[:8]

	result := &Result{
		WorkflowID: workflowID,
		Timestamp:  started.UTC().Format("20060102_150405"),
		Status:     models.GenerationStatusProcessing,
		Steps:      map[string]StepResult{},
	}

	log := o.logger.WithFields(map[string]interface{}{"workflow_id": workflowID})
	log.Info("Workflow started", nil)

	defer func() {
		if o.obs != nil {
			o.obs.RecordWorkflowProcessed(ctx, result.Status)
			o.obs.RecordWorkflowDuration(ctx, time.Since(started), result.Status)
		}
		log.Info("Workflow finished", map[string]interface{}{
			"status":      result.Status,
			"duration_ms": time.Since(started).Milliseconds(),
		})
	}()

	insp := data.ToFieldInspection()

	// Step 1: persist the project. The submission is kept even when it
	// later fails validation, so the office can review what came in.
	project, err := o.runPersistProject(ctx, result, insp)
	if err != nil {
		return result
	}
	result.ProjectID = project.ID

	// Step 2: validate.
	if !o.runValidate(ctx, result, data) {
		return result
	}

	// Step 3: select a template.
	selection := o.runSelectTemplate(result, insp)
	result.TemplateID = selection.TemplateID

	// Step 4: derive configuration, inclusions, and summary.
	o.runGenerate(result, insp, started)

	// Step 5: record the generation.
	if err := o.runPersistGeneration(ctx, result, project, selection.TemplateID); err != nil {
		return result
	}

	// Step 6: notify. Failures are recorded but do not fail the workflow.
	o.runNotify(ctx, result, project)

	result.Status = models.GenerationStatusSuccess
	metrics.GenerationsCompleted.WithLabelValues(selection.TemplateID).Inc()
	return result
}

func (o *Orchestrator) runPersistProject(ctx context.Context, result *Result, insp models.FieldInspection) (*models.Project, error) {
	stepStart := time.Now()
	project, err := o.store.CreateProject(ctx, insp)
	metrics.GenerationStepDuration.WithLabelValues(StepPersistProject).Observe(time.Since(stepStart).Seconds())

	if err != nil {
		o.failStep(result, StepPersistProject, err)
		return nil, err
	}
	result.Steps[StepPersistProject] = StepResult{
		Success: true,
		Details: map[string]interface{}{"project_id": project.ID},
	}
	return project, nil
}

func (o *Orchestrator) runValidate(ctx context.Context, result *Result, data models.Takeoff) bool {
	stepStart := time.Now()
	validation := o.validator.Validate(data)
	metrics.GenerationStepDuration.WithLabelValues(StepValidate).Observe(time.Since(stepStart).Seconds())

	result.Validation = &validation
	result.Steps[StepValidate] = StepResult{
		Success: true,
		Details: map[string]interface{}{
			"is_valid":      validation.IsValid,
			"error_count":   len(validation.Errors),
			"warning_count": len(validation.Warnings),
		},
	}

	if !validation.IsValid {
		result.Status = models.GenerationStatusValidationFailed
		for _, e := range validation.Errors {
			metrics.TakeoffValidationFailures.WithLabelValues(errorField(e)).Inc()
		}
		if result.ProjectID != "" {
			// Best effort; the validation outcome is already in the result.
			_ = o.store.UpdateProjectStage(ctx, result.ProjectID, "validation_failed")
		}
		return false
	}
	return true
}

func (o *Orchestrator) runSelectTemplate(result *Result, insp models.FieldInspection) templates.Selection {
	stepStart := time.Now()
	selection := o.selector.Select(insp)
	metrics.GenerationStepDuration.WithLabelValues(StepSelectTemplate).Observe(time.Since(stepStart).Seconds())

	result.Steps[StepSelectTemplate] = StepResult{
		Success: true,
		Details: map[string]interface{}{
			"template_id": selection.TemplateID,
			"confidence":  selection.Confidence,
			"notes":       selection.Notes,
		},
	}
	return selection
}

func (o *Orchestrator) runGenerate(result *Result, insp models.FieldInspection, started time.Time) {
	stepStart := time.Now()
	config := o.generator.GenerateConfiguration(insp)
	inclusions := sow.InclusionsFromConfiguration(config)
	summary := sow.GenerateSummary(insp, started)
	metrics.GenerationStepDuration.WithLabelValues(StepGenerateSOW).Observe(time.Since(stepStart).Seconds())

	result.Configuration = &config
	result.Inclusions = &inclusions
	result.Summary = &summary
	result.Steps[StepGenerateSOW] = StepResult{
		Success: true,
		Details: map[string]interface{}{
			"estimated_duration": summary.EstimatedDuration,
			"section_count":      len(summary.Sections),
		},
	}
}

func (o *Orchestrator) runPersistGeneration(ctx context.Context, result *Result, project *models.Project, templateID string) error {
	stepStart := time.Now()

	result.PDFFilename = fmt.Sprintf("sow_document_%s_%s.pdf", result.WorkflowID, result.Timestamp)
	result.DownloadURL = o.config.DownloadBaseURL + "/" + result.PDFFilename

	gen := &models.SOWGeneration{
		WorkflowID: result.WorkflowID,
		ProjectID:  project.ID,
		TemplateID: templateID,
		Status:     models.GenerationStatusProcessing,
	}
	err := o.store.CreateGeneration(ctx, gen)
	if err == nil {
		err = o.store.CompleteGeneration(ctx, gen.ID, models.GenerationStatusSuccess, result.PDFFilename)
	}
	if err == nil {
		err = o.store.UpdateProjectStage(ctx, project.ID, "sow_generated")
	}
	metrics.GenerationStepDuration.WithLabelValues(StepPersistGeneration).Observe(time.Since(stepStart).Seconds())

	if err != nil {
		o.failStep(result, StepPersistGeneration, err)
		return err
	}
	result.Steps[StepPersistGeneration] = StepResult{
		Success: true,
		Details: map[string]interface{}{
			"generation_id": gen.ID,
			"pdf_filename":  result.PDFFilename,
			"download_url":  result.DownloadURL,
		},
	}
	return nil
}

func (o *Orchestrator) runNotify(ctx context.Context, result *Result, project *models.Project) {
	if o.notifier == nil || o.config.NotifyRecipient == "" {
		return
	}

	stepStart := time.Now()
	err := o.notifier.SendGenerationComplete(ctx, o.config.NotifyRecipient, project,
		result.WorkflowID, result.DownloadURL)
	metrics.GenerationStepDuration.WithLabelValues(StepNotify).Observe(time.Since(stepStart).Seconds())

	if err != nil {
		result.Steps[StepNotify] = StepResult{Success: false, Error: err.Error()}
		return
	}
	result.Steps[StepNotify] = StepResult{Success: true}
}

func (o *Orchestrator) failStep(result *Result, step string, err error) {
	result.Status = models.GenerationStatusError
	result.Steps[step] = StepResult{Success: false, Error: err.Error()}

	code := "UNKNOWN"
	if stdErr, ok := err.(*stderrors.StandardError); ok {
		code = string(stdErr.Code)
	}
	metrics.GenerationsFailed.WithLabelValues(step, code).Inc()

	o.logger.WithError(err).Error("Workflow step failed", map[string]interface{}{
		"workflow_id": result.WorkflowID,
		"step":        step,
	})
}

// errorField extracts the field name prefix from a validation message for
// metric labeling. Messages without a field prefix count under "general".
func errorField(msg string) string {
	if strings.HasPrefix(msg, "Missing required field: ") {
		rest := strings.TrimPrefix(msg, "Missing required field: ")
		if i := strings.IndexByte(rest, ' '); i > 0 {
			return rest[:i]
		}
		return rest
	}
	if i := strings.IndexByte(msg, ':'); i > 0 && !strings.Contains(msg[:i], " ") {
		return msg[:i]
	}
	return "general"
}

package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/agentprobe/agentprobe/ent"
	"github.com/agentprobe/agentprobe/ent/scenario"
)

// SaveScenarioInput contains the domain-level data needed to create or
// update a scenario.
type SaveScenarioInput struct {
	Name                 string
	Description          string
	Goal                 string
	UserPersonality      string
	ExpertiseLevel       string
	InitialMessage       *string
	TurnsTemplate        []map[string]interface{}
	ExpectedToolSequence []string
	Difficulty           string
	Tags                 []string
	MaxTurns             *int
}

// ScenarioService handles test scenario CRUD.
type ScenarioService struct {
	client *ent.Client
}

// NewScenarioService creates a new ScenarioService.
func NewScenarioService(client *ent.Client) *ScenarioService {
	if client == nil {
		panic("NewScenarioService: client must not be nil")
	}
	return &ScenarioService{client: client}
}

// Create stores a new scenario.
func (s *ScenarioService) Create(ctx context.Context, input SaveScenarioInput) (*ent.Scenario, error) {
	if input.Name == "" {
		return nil, NewValidationError("name", "name is required")
	}
	if input.Goal == "" {
		return nil, NewValidationError("goal", "goal is required")
	}
	if err := validateScenarioInput(input); err != nil {
		return nil, err
	}

	builder := s.client.Scenario.Create().
		SetID(uuid.New().String()).
		SetName(input.Name).
		SetGoal(input.Goal)

	if input.Description != "" {
		builder.SetDescription(input.Description)
	}
	if input.UserPersonality != "" {
		builder.SetUserPersonality(input.UserPersonality)
	}
	if input.ExpertiseLevel != "" {
		builder.SetExpertiseLevel(scenario.ExpertiseLevel(input.ExpertiseLevel))
	}
	if input.InitialMessage != nil {
		builder.SetInitialMessage(*input.InitialMessage)
	}
	if input.TurnsTemplate != nil {
		builder.SetTurnsTemplate(input.TurnsTemplate)
	}
	if input.ExpectedToolSequence != nil {
		builder.SetExpectedToolSequence(input.ExpectedToolSequence)
	}
	if input.Difficulty != "" {
		builder.SetDifficulty(scenario.Difficulty(input.Difficulty))
	}
	if input.Tags != nil {
		builder.SetTags(input.Tags)
	}
	if input.MaxTurns != nil {
		builder.SetMaxTurns(*input.MaxTurns)
	}

	sc, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("scenario %q: %w", input.Name, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create scenario: %w", err)
	}
	return sc, nil
}

// Get loads one scenario by id.
func (s *ScenarioService) Get(ctx context.Context, id string) (*ent.Scenario, error) {
	sc, err := s.client.Scenario.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("scenario %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load scenario: %w", err)
	}
	return sc, nil
}

// List returns scenarios ordered by creation time, newest first, optionally
// filtered by difficulty or tag.
func (s *ScenarioService) List(ctx context.Context, page, pageSize int, difficulty string) ([]*ent.Scenario, int, error) {
	page, pageSize = normalizePagination(page, pageSize)

	query := s.client.Scenario.Query()
	if difficulty != "" {
		if err := scenario.DifficultyValidator(scenario.Difficulty(difficulty)); err != nil {
			return nil, 0, NewValidationError("difficulty", "must be easy, medium, or hard")
		}
		query = query.Where(scenario.DifficultyEQ(scenario.Difficulty(difficulty)))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count scenarios: %w", err)
	}

	scenarios, err := query.
		Order(ent.Desc(scenario.FieldCreatedAt)).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list scenarios: %w", err)
	}
	return scenarios, total, nil
}

// Update modifies an existing scenario. Zero-valued fields keep their
// stored values.
func (s *ScenarioService) Update(ctx context.Context, id string, input SaveScenarioInput) (*ent.Scenario, error) {
	if err := validateScenarioInput(input); err != nil {
		return nil, err
	}

	builder := s.client.Scenario.UpdateOneID(id)
	if input.Description != "" {
		builder.SetDescription(input.Description)
	}
	if input.Goal != "" {
		builder.SetGoal(input.Goal)
	}
	if input.UserPersonality != "" {
		builder.SetUserPersonality(input.UserPersonality)
	}
	if input.ExpertiseLevel != "" {
		builder.SetExpertiseLevel(scenario.ExpertiseLevel(input.ExpertiseLevel))
	}
	if input.InitialMessage != nil {
		builder.SetInitialMessage(*input.InitialMessage)
	}
	if input.TurnsTemplate != nil {
		builder.SetTurnsTemplate(input.TurnsTemplate)
	}
	if input.ExpectedToolSequence != nil {
		builder.SetExpectedToolSequence(input.ExpectedToolSequence)
	}
	if input.Difficulty != "" {
		builder.SetDifficulty(scenario.Difficulty(input.Difficulty))
	}
	if input.Tags != nil {
		builder.SetTags(input.Tags)
	}
	if input.MaxTurns != nil {
		builder.SetMaxTurns(*input.MaxTurns)
	}

	sc, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("scenario %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update scenario: %w", err)
	}
	return sc, nil
}

// Delete removes a scenario. Scenarios referenced by eval runs are
// protected by a restrict constraint and surface as ErrInvalidState.
func (s *ScenarioService) Delete(ctx context.Context, id string) error {
	err := s.client.Scenario.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("scenario %s: %w", id, ErrNotFound)
		}
		if ent.IsConstraintError(err) {
			return fmt.Errorf("scenario %s is referenced by eval runs: %w", id, ErrInvalidState)
		}
		return fmt.Errorf("failed to delete scenario: %w", err)
	}
	return nil
}

func validateScenarioInput(input SaveScenarioInput) error {
	if input.ExpertiseLevel != "" {
		if err := scenario.ExpertiseLevelValidator(scenario.ExpertiseLevel(input.ExpertiseLevel)); err != nil {
			return NewValidationError("expertise_level", "must be novice, intermediate, or expert")
		}
	}
	if input.Difficulty != "" {
		if err := scenario.DifficultyValidator(scenario.Difficulty(input.Difficulty)); err != nil {
			return NewValidationError("difficulty", "must be easy, medium, or hard")
		}
	}
	if input.MaxTurns != nil && *input.MaxTurns < 0 {
		return NewValidationError("max_turns", "max_turns must not be negative")
	}
	return nil
}

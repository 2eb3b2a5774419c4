// Package services implements the glue between persistence and the
// simulation and evaluation engines: CRUD over configuration aggregates,
// run lifecycle management, and the executors that drive a run through
// simulation and scoring while emitting pipeline events.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/agentprobe/agentprobe/ent"
	"github.com/agentprobe/agentprobe/ent/agentconfig"
)

// SaveAgentConfigInput contains the domain-level data needed to create or
// update an agent configuration.
type SaveAgentConfigInput struct {
	Name         string
	Description  string
	ModelID      string
	SystemPrompt string
	Temperature  *float64
	MaxTokens    *int
	Tools        []map[string]interface{}
}

// AgentConfigService handles tested-agent configuration CRUD.
type AgentConfigService struct {
	client *ent.Client
}

// NewAgentConfigService creates a new AgentConfigService.
func NewAgentConfigService(client *ent.Client) *AgentConfigService {
	if client == nil {
		panic("NewAgentConfigService: client must not be nil")
	}
	return &AgentConfigService{client: client}
}

// Create stores a new agent configuration.
func (s *AgentConfigService) Create(ctx context.Context, input SaveAgentConfigInput) (*ent.AgentConfig, error) {
	if err := validateAgentConfigInput(input, true); err != nil {
		return nil, err
	}

	builder := s.client.AgentConfig.Create().
		SetID(uuid.New().String()).
		SetName(input.Name).
		SetModelID(input.ModelID).
		SetSystemPrompt(input.SystemPrompt)

	if input.Description != "" {
		builder.SetDescription(input.Description)
	}
	if input.Temperature != nil {
		builder.SetTemperature(*input.Temperature)
	}
	if input.MaxTokens != nil {
		builder.SetMaxTokens(*input.MaxTokens)
	}
	if input.Tools != nil {
		builder.SetTools(input.Tools)
	}

	cfg, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("agent config %q: %w", input.Name, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create agent config: %w", err)
	}
	return cfg, nil
}

// Get loads one agent configuration by id.
func (s *AgentConfigService) Get(ctx context.Context, id string) (*ent.AgentConfig, error) {
	cfg, err := s.client.AgentConfig.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("agent config %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load agent config: %w", err)
	}
	return cfg, nil
}

// List returns agent configurations ordered by creation time, newest first.
func (s *AgentConfigService) List(ctx context.Context, page, pageSize int) ([]*ent.AgentConfig, int, error) {
	page, pageSize = normalizePagination(page, pageSize)

	query := s.client.AgentConfig.Query()
	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count agent configs: %w", err)
	}

	configs, err := query.
		Order(ent.Desc(agentconfig.FieldCreatedAt)).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list agent configs: %w", err)
	}
	return configs, total, nil
}

// Update modifies an existing agent configuration. Zero-valued fields keep
// their stored values; Tools replaces the whole tool list when non-nil.
func (s *AgentConfigService) Update(ctx context.Context, id string, input SaveAgentConfigInput) (*ent.AgentConfig, error) {
	if err := validateAgentConfigInput(input, false); err != nil {
		return nil, err
	}

	builder := s.client.AgentConfig.UpdateOneID(id)
	if input.Description != "" {
		builder.SetDescription(input.Description)
	}
	if input.ModelID != "" {
		builder.SetModelID(input.ModelID)
	}
	if input.SystemPrompt != "" {
		builder.SetSystemPrompt(input.SystemPrompt)
	}
	if input.Temperature != nil {
		builder.SetTemperature(*input.Temperature)
	}
	if input.MaxTokens != nil {
		builder.SetMaxTokens(*input.MaxTokens)
	}
	if input.Tools != nil {
		builder.SetTools(input.Tools)
	}

	cfg, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("agent config %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update agent config: %w", err)
	}
	return cfg, nil
}

// Delete removes an agent configuration. Configs referenced by eval runs
// are protected by a restrict constraint and surface as ErrInvalidState.
func (s *AgentConfigService) Delete(ctx context.Context, id string) error {
	err := s.client.AgentConfig.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("agent config %s: %w", id, ErrNotFound)
		}
		if ent.IsConstraintError(err) {
			return fmt.Errorf("agent config %s is referenced by eval runs: %w", id, ErrInvalidState)
		}
		return fmt.Errorf("failed to delete agent config: %w", err)
	}
	return nil
}

func validateAgentConfigInput(input SaveAgentConfigInput, creating bool) error {
	if creating {
		if input.Name == "" {
			return NewValidationError("name", "name is required")
		}
		if input.ModelID == "" {
			return NewValidationError("model_id", "model_id is required")
		}
		if input.SystemPrompt == "" {
			return NewValidationError("system_prompt", "system_prompt is required")
		}
	}
	if input.Temperature != nil && (*input.Temperature < 0 || *input.Temperature > 2) {
		return NewValidationError("temperature", "temperature must be between 0 and 2")
	}
	if input.MaxTokens != nil && *input.MaxTokens < 1 {
		return NewValidationError("max_tokens", "max_tokens must be at least 1")
	}
	for i, tool := range input.Tools {
		if err := validateToolSchema(tool); err != nil {
			return NewValidationError("tools", fmt.Sprintf("tool %d: %v", i, err))
		}
	}
	return nil
}

// validateToolSchema checks that a tool definition carries a name and that
// its parameters compile as a JSON Schema document.
func validateToolSchema(tool map[string]interface{}) error {
	name, _ := tool["name"].(string)
	if name == "" {
		return fmt.Errorf("missing name")
	}
	params, ok := tool["parameters"]
	if !ok {
		return nil
	}
	raw, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("parameters of %q are not valid JSON: %w", name, err)
	}
	if _, err := compileToolSchema(string(raw)); err != nil {
		return fmt.Errorf("parameters of %q are not a valid JSON Schema: %w", name, err)
	}
	return nil
}

var toolSchemaCache sync.Map

func compileToolSchema(schema string) (*jsonschema.Schema, error) {
	if cached, ok := toolSchemaCache.Load(schema); ok {
		if compiled, ok := cached.(*jsonschema.Schema); ok {
			return compiled, nil
		}
	}
	compiled, err := jsonschema.CompileString("tool.schema.json", schema)
	if err != nil {
		return nil, err
	}
	toolSchemaCache.Store(schema, compiled)
	return compiled, nil
}

// normalizePagination clamps page and page size to sane bounds. Page size
// is capped at 100.
func normalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 25
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/agentprobe/agentprobe/ent"
	"github.com/agentprobe/agentprobe/ent/rubric"
	"github.com/agentprobe/agentprobe/pkg/eval"
)

// DefaultRubricName is the name under which the built-in rubric is seeded.
const DefaultRubricName = "default"

// SaveRubricInput contains the domain-level data needed to create a rubric
// or a new version of one.
type SaveRubricInput struct {
	Name       string
	Dimensions []map[string]interface{}
}

// RubricService handles rubric persistence. Rubrics are immutable: an
// update inserts a new row with version+1 and parent_id pointing at the
// previous version.
type RubricService struct {
	client *ent.Client
}

// NewRubricService creates a new RubricService.
func NewRubricService(client *ent.Client) *RubricService {
	if client == nil {
		panic("NewRubricService: client must not be nil")
	}
	return &RubricService{client: client}
}

// Create stores version 1 of a new rubric.
func (s *RubricService) Create(ctx context.Context, input SaveRubricInput) (*ent.Rubric, error) {
	if input.Name == "" {
		return nil, NewValidationError("name", "name is required")
	}
	if err := validateDimensions(input.Dimensions); err != nil {
		return nil, err
	}

	r, err := s.client.Rubric.Create().
		SetID(uuid.New().String()).
		SetName(input.Name).
		SetVersion(1).
		SetDimensions(input.Dimensions).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("rubric %q: %w", input.Name, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create rubric: %w", err)
	}
	return r, nil
}

// NewVersion creates the next version of an existing rubric, linked to its
// parent. The parent row is never modified.
func (s *RubricService) NewVersion(ctx context.Context, parentID string, dimensions []map[string]interface{}) (*ent.Rubric, error) {
	if err := validateDimensions(dimensions); err != nil {
		return nil, err
	}

	parent, err := s.Get(ctx, parentID)
	if err != nil {
		return nil, err
	}

	latest, err := s.client.Rubric.Query().
		Where(rubric.NameEQ(parent.Name)).
		Order(ent.Desc(rubric.FieldVersion)).
		First(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve latest rubric version: %w", err)
	}

	r, err := s.client.Rubric.Create().
		SetID(uuid.New().String()).
		SetName(parent.Name).
		SetVersion(latest.Version + 1).
		SetParentID(parent.ID).
		SetDimensions(dimensions).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Concurrent version bump; the caller can retry.
			return nil, fmt.Errorf("rubric %q version %d: %w", parent.Name, latest.Version+1, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create rubric version: %w", err)
	}
	return r, nil
}

// Get loads one rubric row by id.
func (s *RubricService) Get(ctx context.Context, id string) (*ent.Rubric, error) {
	r, err := s.client.Rubric.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("rubric %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load rubric: %w", err)
	}
	return r, nil
}

// GetLatestByName resolves the newest version of a named rubric.
func (s *RubricService) GetLatestByName(ctx context.Context, name string) (*ent.Rubric, error) {
	r, err := s.client.Rubric.Query().
		Where(rubric.NameEQ(name)).
		Order(ent.Desc(rubric.FieldVersion)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("rubric %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load rubric by name: %w", err)
	}
	return r, nil
}

// ListVersions returns every version of a named rubric, oldest first.
func (s *RubricService) ListVersions(ctx context.Context, name string) ([]*ent.Rubric, error) {
	versions, err := s.client.Rubric.Query().
		Where(rubric.NameEQ(name)).
		Order(ent.Asc(rubric.FieldVersion)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rubric versions: %w", err)
	}
	if len(versions) == 0 {
		return nil, fmt.Errorf("rubric %q: %w", name, ErrNotFound)
	}
	return versions, nil
}

// List returns the latest version of every rubric, newest first.
func (s *RubricService) List(ctx context.Context, page, pageSize int) ([]*ent.Rubric, int, error) {
	page, pageSize = normalizePagination(page, pageSize)

	// Latest version per name: load ordered by version descending and keep
	// the first row seen for each name. Rubric counts are small, so this
	// stays in memory rather than a window-function query.
	rows, err := s.client.Rubric.Query().
		Order(ent.Desc(rubric.FieldVersion), ent.Desc(rubric.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list rubrics: %w", err)
	}

	seen := make(map[string]bool)
	latest := make([]*ent.Rubric, 0, len(rows))
	for _, r := range rows {
		if seen[r.Name] {
			continue
		}
		seen[r.Name] = true
		latest = append(latest, r)
	}

	total := len(latest)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return latest[start:end], total, nil
}

// EnsureDefault seeds the built-in five-dimension rubric if no default
// rubric exists yet. Idempotent and safe to run from multiple pods.
func (s *RubricService) EnsureDefault(ctx context.Context) (*ent.Rubric, error) {
	existing, err := s.client.Rubric.Query().
		Where(rubric.IsDefaultEQ(true)).
		Order(ent.Desc(rubric.FieldVersion)).
		First(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up default rubric: %w", err)
	}

	dims := make([]map[string]interface{}, 0, 5)
	for _, d := range eval.DefaultDimensions() {
		criteria := make([]interface{}, 0, len(d.Criteria))
		for _, c := range d.Criteria {
			criteria = append(criteria, c)
		}
		dims = append(dims, map[string]interface{}{
			"name":        d.Name,
			"description": d.Description,
			"weight":      d.Weight,
			"criteria":    criteria,
		})
	}

	r, err := s.client.Rubric.Create().
		SetID(uuid.New().String()).
		SetName(DefaultRubricName).
		SetVersion(1).
		SetDimensions(dims).
		SetIsDefault(true).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Another pod seeded it concurrently.
			return s.GetLatestByName(ctx, DefaultRubricName)
		}
		return nil, fmt.Errorf("failed to seed default rubric: %w", err)
	}
	return r, nil
}

// DimensionsForRun resolves the rubric dimensions an evaluation should
// score against: the run's rubric when set, else the built-in default.
func (s *RubricService) DimensionsForRun(ctx context.Context, rubricID *string) ([]eval.RubricDimension, error) {
	if rubricID == nil || *rubricID == "" {
		return eval.DefaultDimensions(), nil
	}
	r, err := s.Get(ctx, *rubricID)
	if err != nil {
		return nil, err
	}
	dims := eval.DimensionsFromMaps(r.Dimensions)
	if len(dims) == 0 {
		return eval.DefaultDimensions(), nil
	}
	return dims, nil
}

func validateDimensions(dimensions []map[string]interface{}) error {
	if len(dimensions) == 0 {
		return NewValidationError("dimensions", "at least one dimension is required")
	}
	for i, dim := range dimensions {
		name, _ := dim["name"].(string)
		if name == "" {
			return NewValidationError("dimensions", fmt.Sprintf("dimension %d: name is required", i))
		}
		if w, ok := dim["weight"]; ok {
			weight, isNum := asWeight(w)
			if !isNum || weight < 0 {
				return NewValidationError("dimensions", fmt.Sprintf("dimension %q: weight must be a non-negative number", name))
			}
		}
	}
	return nil
}

func asWeight(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

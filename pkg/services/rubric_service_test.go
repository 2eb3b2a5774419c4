package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strictnessDimensions(weight float64) []map[string]interface{} {
	return []map[string]interface{}{
		{"name": "strictness", "description": "How strictly policy is followed", "weight": weight},
		{"name": "tone", "description": "Politeness of responses", "weight": 1 - weight},
	}
}

func TestRubricCreateAndVersioning(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	svc := NewRubricService(client.Client)

	v1, err := svc.Create(ctx, SaveRubricInput{
		Name:       "policy-rubric",
		Dimensions: strictnessDimensions(0.6),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, v1.Version)
	assert.Nil(t, v1.ParentID)

	v2, err := svc.NewVersion(ctx, v1.ID, strictnessDimensions(0.8))
	require.NoError(t, err)
	assert.Equal(t, 2, v2.Version)
	require.NotNil(t, v2.ParentID)
	assert.Equal(t, v1.ID, *v2.ParentID)
	assert.Equal(t, "policy-rubric", v2.Name)

	// Branching off v1 again still yields the next global version.
	v3, err := svc.NewVersion(ctx, v1.ID, strictnessDimensions(0.5))
	require.NoError(t, err)
	assert.Equal(t, 3, v3.Version)

	versions, err := svc.ListVersions(ctx, "policy-rubric")
	require.NoError(t, err)
	require.Len(t, versions, 3)
	assert.Equal(t, 1, versions[0].Version)
	assert.Equal(t, 3, versions[2].Version)

	latest, err := svc.GetLatestByName(ctx, "policy-rubric")
	require.NoError(t, err)
	assert.Equal(t, v3.ID, latest.ID)
}

func TestRubricVersionsAreImmutable(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	svc := NewRubricService(client.Client)

	v1, err := svc.Create(ctx, SaveRubricInput{Name: "frozen", Dimensions: strictnessDimensions(0.6)})
	require.NoError(t, err)
	_, err = svc.NewVersion(ctx, v1.ID, strictnessDimensions(0.9))
	require.NoError(t, err)

	reloaded, err := svc.Get(ctx, v1.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.6, reloaded.Dimensions[0]["weight"], "creating a new version must not touch the parent")
}

func TestRubricValidation(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	svc := NewRubricService(client.Client)

	_, err := svc.Create(ctx, SaveRubricInput{Dimensions: strictnessDimensions(0.5)})
	assert.True(t, IsValidationError(err), "missing name")

	_, err = svc.Create(ctx, SaveRubricInput{Name: "empty"})
	assert.True(t, IsValidationError(err), "missing dimensions")

	_, err = svc.Create(ctx, SaveRubricInput{
		Name:       "nameless-dim",
		Dimensions: []map[string]interface{}{{"weight": 1.0}},
	})
	assert.True(t, IsValidationError(err), "dimension without name")

	_, err = svc.Create(ctx, SaveRubricInput{
		Name:       "bad-weight",
		Dimensions: []map[string]interface{}{{"name": "d", "weight": -1.0}},
	})
	assert.True(t, IsValidationError(err), "negative weight")
}

func TestRubricListReturnsLatestPerName(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	svc := NewRubricService(client.Client)

	a1, err := svc.Create(ctx, SaveRubricInput{Name: "alpha", Dimensions: strictnessDimensions(0.5)})
	require.NoError(t, err)
	_, err = svc.NewVersion(ctx, a1.ID, strictnessDimensions(0.7))
	require.NoError(t, err)
	_, err = svc.Create(ctx, SaveRubricInput{Name: "beta", Dimensions: strictnessDimensions(0.5)})
	require.NoError(t, err)

	rubrics, total, err := svc.List(ctx, 1, 25)
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	byName := map[string]int{}
	for _, r := range rubrics {
		byName[r.Name] = r.Version
	}
	assert.Equal(t, 2, byName["alpha"], "only the latest alpha version is listed")
	assert.Equal(t, 1, byName["beta"])
}

func TestRubricEnsureDefault(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	svc := NewRubricService(client.Client)

	first, err := svc.EnsureDefault(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultRubricName, first.Name)
	assert.True(t, first.IsDefault)
	assert.Len(t, first.Dimensions, 5)

	second, err := svc.EnsureDefault(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "EnsureDefault is idempotent")
}

func TestRubricDimensionsForRun(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	svc := NewRubricService(client.Client)

	dims, err := svc.DimensionsForRun(ctx, nil)
	require.NoError(t, err)
	require.Len(t, dims, 5, "nil rubric id falls back to the built-in default")
	assert.Equal(t, "helpfulness", dims[0].Name)

	custom, err := svc.Create(ctx, SaveRubricInput{Name: "custom", Dimensions: strictnessDimensions(0.6)})
	require.NoError(t, err)

	dims, err = svc.DimensionsForRun(ctx, &custom.ID)
	require.NoError(t, err)
	require.Len(t, dims, 2)
	assert.Equal(t, "strictness", dims[0].Name)
	assert.Equal(t, 0.6, dims[0].Weight)

	missing := "no-such-rubric"
	_, err = svc.DimensionsForRun(ctx, &missing)
	assert.ErrorIs(t, err, ErrNotFound)
}

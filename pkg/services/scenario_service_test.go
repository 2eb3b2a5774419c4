package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarioCreateAndGet(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	svc := NewScenarioService(client.Client)

	initial := "Hi, my package never arrived."
	created, err := svc.Create(ctx, SaveScenarioInput{
		Name:                 "lost-package",
		Goal:                 "Get a replacement shipped",
		UserPersonality:      "impatient and terse",
		ExpertiseLevel:       "novice",
		InitialMessage:       &initial,
		ExpectedToolSequence: []string{"lookup_order", "create_replacement"},
		Difficulty:           "hard",
		Tags:                 []string{"shipping"},
		MaxTurns:             intPtr(6),
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "lost-package", got.Name)
	assert.Equal(t, "impatient and terse", got.UserPersonality)
	assert.EqualValues(t, "novice", got.ExpertiseLevel)
	require.NotNil(t, got.InitialMessage)
	assert.Equal(t, initial, *got.InitialMessage)
	assert.Equal(t, []string{"lookup_order", "create_replacement"}, got.ExpectedToolSequence)
	assert.EqualValues(t, "hard", got.Difficulty)
	assert.Equal(t, 6, got.MaxTurns)
}

func TestScenarioDefaults(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	svc := NewScenarioService(client.Client)

	created, err := svc.Create(ctx, SaveScenarioInput{
		Name: "bare-scenario",
		Goal: "Just chat",
	})
	require.NoError(t, err)
	assert.Equal(t, "neutral and cooperative", created.UserPersonality)
	assert.EqualValues(t, "intermediate", created.ExpertiseLevel)
	assert.EqualValues(t, "medium", created.Difficulty)
	assert.Equal(t, 10, created.MaxTurns)
}

func TestScenarioValidation(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	svc := NewScenarioService(client.Client)

	_, err := svc.Create(ctx, SaveScenarioInput{Goal: "g"})
	assert.True(t, IsValidationError(err), "missing name should be a validation error")

	_, err = svc.Create(ctx, SaveScenarioInput{Name: "n"})
	assert.True(t, IsValidationError(err), "missing goal should be a validation error")

	_, err = svc.Create(ctx, SaveScenarioInput{Name: "n", Goal: "g", ExpertiseLevel: "grandmaster"})
	assert.True(t, IsValidationError(err), "unknown expertise level should be a validation error")

	_, err = svc.Create(ctx, SaveScenarioInput{Name: "n", Goal: "g", Difficulty: "brutal"})
	assert.True(t, IsValidationError(err), "unknown difficulty should be a validation error")
}

func TestScenarioDuplicateName(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	svc := NewScenarioService(client.Client)

	_, err := svc.Create(ctx, SaveScenarioInput{Name: "dup", Goal: "g"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, SaveScenarioInput{Name: "dup", Goal: "g"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestScenarioListByDifficulty(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	svc := NewScenarioService(client.Client)

	_, err := svc.Create(ctx, SaveScenarioInput{Name: "easy-1", Goal: "g", Difficulty: "easy"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, SaveScenarioInput{Name: "hard-1", Goal: "g", Difficulty: "hard"})
	require.NoError(t, err)

	scenarios, total, err := svc.List(ctx, 1, 25, "easy")
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, scenarios, 1)
	assert.Equal(t, "easy-1", scenarios[0].Name)

	_, _, err = svc.List(ctx, 1, 25, "brutal")
	assert.True(t, IsValidationError(err))
}

func TestScenarioUpdateAndDelete(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	svc := NewScenarioService(client.Client)

	created, err := svc.Create(ctx, SaveScenarioInput{Name: "mutable", Goal: "old goal"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, SaveScenarioInput{Goal: "new goal", Difficulty: "easy"})
	require.NoError(t, err)
	assert.Equal(t, "new goal", updated.Goal)
	assert.EqualValues(t, "easy", updated.Difficulty)
	assert.Equal(t, "mutable", updated.Name, "name survives a partial update")

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScenarioDeleteReferencedByRun(t *testing.T) {
	client, ctx := newTestClientAndCtx(t)
	svc := NewScenarioService(client.Client)

	run := seedRun(ctx, t, client, "pending")
	assert.ErrorIs(t, svc.Delete(ctx, run.ScenarioID), ErrInvalidState)
}

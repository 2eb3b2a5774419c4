package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentprobe/agentprobe/ent"
	"github.com/agentprobe/agentprobe/ent/pipelinemessage"
	"github.com/agentprobe/agentprobe/pkg/config"
	"github.com/agentprobe/agentprobe/pkg/database"
	testdb "github.com/agentprobe/agentprobe/test/database"
)

func seedMessage(ctx context.Context, t *testing.T, client *database.Client, status pipelinemessage.Status, age time.Duration) *ent.PipelineMessage {
	t.Helper()
	msg, err := client.PipelineMessage.Create().
		SetTopic("conversation.completed").
		SetConsumerGroup("evaluation-trigger").
		SetValue(`{"event_type":"conversation.completed","version":1}`).
		SetStatus(status).
		SetUpdatedAt(time.Now().Add(-age)).
		Save(ctx)
	require.NoError(t, err)
	return msg
}

func retentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		MessageRetention:    72 * time.Hour,
		StuckClaimThreshold: 10 * time.Minute,
		CleanupInterval:     1 * time.Hour,
	}
}

func TestPurgesOldFinishedMessages(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	old := seedMessage(ctx, t, client, pipelinemessage.StatusDone, 100*time.Hour)
	oldFailed := seedMessage(ctx, t, client, pipelinemessage.StatusFailed, 100*time.Hour)
	fresh := seedMessage(ctx, t, client, pipelinemessage.StatusDone, time.Hour)
	pending := seedMessage(ctx, t, client, pipelinemessage.StatusPending, 100*time.Hour)

	svc := NewService(retentionConfig(), client.Client)
	svc.runAll(ctx)

	_, err := client.PipelineMessage.Get(ctx, old.ID)
	assert.True(t, ent.IsNotFound(err))
	_, err = client.PipelineMessage.Get(ctx, oldFailed.ID)
	assert.True(t, ent.IsNotFound(err))

	_, err = client.PipelineMessage.Get(ctx, fresh.ID)
	assert.NoError(t, err)
	_, err = client.PipelineMessage.Get(ctx, pending.ID)
	assert.NoError(t, err)
}

func TestRequeuesStuckClaims(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	stuck := seedMessage(ctx, t, client, pipelinemessage.StatusProcessing, 30*time.Minute)
	active := seedMessage(ctx, t, client, pipelinemessage.StatusProcessing, time.Minute)

	svc := NewService(retentionConfig(), client.Client)
	svc.runAll(ctx)

	requeued, err := client.PipelineMessage.Get(ctx, stuck.ID)
	require.NoError(t, err)
	assert.Equal(t, pipelinemessage.StatusPending, requeued.Status)

	untouched, err := client.PipelineMessage.Get(ctx, active.ID)
	require.NoError(t, err)
	assert.Equal(t, pipelinemessage.StatusProcessing, untouched.Status)
}

func TestStartStop(t *testing.T) {
	client := testdb.NewTestClient(t)

	svc := NewService(retentionConfig(), client.Client)
	svc.Start(context.Background())
	svc.Stop()
}

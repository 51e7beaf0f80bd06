package queue

import (
	"context"
	"testing"

	"recipe-transformer/internal/infrastructure/config"
	"recipe-transformer/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(maxQueueSize, workers int) *Manager {
	cfg := &config.Config{}
	cfg.Agent.MaxQueueSize = maxQueueSize
	cfg.Agent.Workers = workers
	return NewManager(cfg)
}

func TestEnqueueRespectsConfiguredCapacity(t *testing.T) {
	m := newTestManager(1, 1)

	_, err := m.Enqueue(context.Background(), &common.AgentRequest{Prompt: "first"})
	require.NoError(t, err)

	_, err = m.Enqueue(context.Background(), &common.AgentRequest{Prompt: "second"})
	assert.EqualError(t, err, "queue is full")
}

func TestEnqueueHonorsContextCancellation(t *testing.T) {
	m := newTestManager(5, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// 已取消的 context 不應卡在隊列上
	if _, err := m.Enqueue(ctx, &common.AgentRequest{Prompt: "p"}); err != nil {
		assert.ErrorIs(t, err, context.Canceled)
	}
}

func TestQueueStatusCountsProcessed(t *testing.T) {
	m := newTestManager(3, 2)

	resultCh, err := m.Enqueue(context.Background(), &common.AgentRequest{Prompt: "p"})
	require.NoError(t, err)
	require.NotNil(t, resultCh)

	m.IncrementProcessed()

	status := m.GetQueueStatus()
	assert.Equal(t, 1, status.QueueLength)
	assert.Equal(t, 1, status.ProcessedCount)
	assert.Equal(t, 3, status.MaxQueueSize)
	assert.Equal(t, 2, status.Workers)
}

package agent

import (
	"context"
	"testing"

	"recipe-transformer/internal/infrastructure/config"
	"recipe-transformer/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDisabledService() *Service {
	cfg := &config.Config{}
	cfg.OpenRouter.Enabled = false
	cfg.Agent.Workers = 1
	cfg.Agent.MaxQueueSize = 10
	return NewService(cfg, nil)
}

func sampleOptions() []common.SubstitutionOption {
	return []common.SubstitutionOption{
		{Name: "oat milk", Ratio: "1:1"},
		{Name: "almond milk", Ratio: "1:1"},
	}
}

func TestChooseOptionDisabledReturnsFirst(t *testing.T) {
	s := newDisabledService()

	opt, err := s.ChooseOption(context.Background(), "milk", []string{"vegan"}, sampleOptions())
	require.NoError(t, err)
	assert.Equal(t, "oat milk", opt.Name)
}

func TestChooseOptionEmptyOptions(t *testing.T) {
	s := newDisabledService()

	_, err := s.ChooseOption(context.Background(), "milk", []string{"vegan"}, nil)
	assert.Error(t, err)
}

func TestChooseOptionSingleOptionSkipsAgent(t *testing.T) {
	s := newDisabledService()

	opt, err := s.ChooseOption(context.Background(), "eggs", []string{"vegan"}, []common.SubstitutionOption{
		{Name: "flax egg", Ratio: "1:1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "flax egg", opt.Name)
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
		wantErr bool
	}{
		{"plain json", `{"choice": 2, "reason": "common"}`, 1, false},
		{"json with prose", `Sure! Here is my pick: {"choice": 1, "reason": "ok"} hope that helps`, 0, false},
		{"unquoted keys", `{choice: 2, reason: "ok"}`, 1, false},
		{"out of range high", `{"choice": 3}`, 0, true},
		{"out of range zero", `{"choice": 0}`, 0, true},
		{"no json", `the second one`, 0, true},
		{"garbage json", `{"choice": "two"}`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := parseChoice(tt.content, 2)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, idx)
		})
	}
}

func TestBuildChoicePromptListsOptions(t *testing.T) {
	prompt := buildChoicePrompt("milk", []string{"vegan", "dairy-free"}, sampleOptions())

	assert.Contains(t, prompt, `"milk"`)
	assert.Contains(t, prompt, "vegan, dairy-free")
	assert.Contains(t, prompt, "1. oat milk")
	assert.Contains(t, prompt, "2. almond milk")
}

func TestQueueStatusReflectsConfig(t *testing.T) {
	s := newDisabledService()

	status := s.QueueStatus()
	assert.Equal(t, 10, status.MaxQueueSize)
	assert.Equal(t, 1, status.Workers)
	assert.Equal(t, 0, status.QueueLength)
}

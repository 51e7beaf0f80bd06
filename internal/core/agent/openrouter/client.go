package openrouter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"recipe-transformer/internal/infrastructure/config"
	"recipe-transformer/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Client OpenRouter 客戶端
// 僅處理純文字聊天請求，供替代方案挑選代理使用
type Client struct {
	client *resty.Client
	config *config.Config
}

// NewClient 創建 OpenRouter 客戶端
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL("https://openrouter.ai/api/v1").
		SetHeader("Authorization", "Bearer "+cfg.OpenRouter.APIKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("HTTP-Referer", "https://github.com/recipe-transformer").
		SetHeader("X-Title", "Recipe Transformer").
		SetTimeout(cfg.OpenRouter.Timeout)

	return &Client{
		client: client,
		config: cfg,
	}
}

// Model 返回目前使用的模型名稱
func (c *Client) Model() string {
	return c.config.OpenRouter.Model
}

// GenerateResponse 發送聊天請求並返回模型回覆內容
func (c *Client) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	// 構建請求
	req := map[string]interface{}{
		"model": c.config.OpenRouter.Model,
		"messages": []common.Message{
			{Role: "user", Content: prompt},
		},
		"max_tokens":  c.config.OpenRouter.MaxTokens,
		"temperature": 0.0,
	}

	// 發送請求
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/chat/completions")

	if err != nil {
		common.LogAgentCall(c.config.OpenRouter.Model, time.Since(start), err, "")
		return "", fmt.Errorf("failed to send request to OpenRouter: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		common.LogWarn("OpenRouter API 返回非 200 狀態",
			zap.Int("status", resp.StatusCode()),
			zap.String("body", resp.String()),
		)
		return "", fmt.Errorf("OpenRouter API returned error: %s", resp.String())
	}

	// 解析回應
	var result common.AgentResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("failed to parse OpenRouter response: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no choices in OpenRouter response")
	}

	content := result.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("empty content in OpenRouter response")
	}

	common.LogAgentCall(c.config.OpenRouter.Model, time.Since(start), nil, "")
	return content, nil
}

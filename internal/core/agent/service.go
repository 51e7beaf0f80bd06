package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"recipe-transformer/internal/core/agent/cache"
	"recipe-transformer/internal/core/agent/openrouter"
	"recipe-transformer/internal/core/agent/queue"
	"recipe-transformer/internal/infrastructure/config"
	"recipe-transformer/internal/pkg/common"

	"go.uber.org/zap"
)

// Service 替代方案挑選代理
// 知識庫對單一食材可能提供多個替代方案，預設取第一個（確定性行為）；
// 啟用 OpenRouter 時改由模型挑選，失敗時退回第一個方案
type Service struct {
	config       *config.Config
	client       *openrouter.Client
	cacheManager *cache.Manager
	queueManager *queue.Manager
	wg           sync.WaitGroup
	mu           sync.Mutex
	lastRequest  time.Time
}

// choiceReply 模型回覆的挑選結果
type choiceReply struct {
	Choice int    `json:"choice"`
	Reason string `json:"reason"`
}

// NewService 創建代理服務
func NewService(cfg *config.Config, cacheManager *cache.Manager) *Service {
	s := &Service{
		config:       cfg,
		client:       openrouter.NewClient(cfg),
		cacheManager: cacheManager,
		queueManager: queue.NewManager(cfg),
	}

	if cfg.OpenRouter.Enabled {
		s.startWorkers()
	}

	return s
}

// startWorkers 啟動隊列工作協程
func (s *Service) startWorkers() {
	for i := 0; i < s.config.Agent.Workers; i++ {
		s.wg.Add(1)
		go func(id int) {
			defer s.wg.Done()
			for req := range s.queueManager.GetQueue() {
				content, err := s.client.GenerateResponse(req.Context, req.Request.Prompt)
				req.Result <- queue.Result{Content: content, Error: err}
				s.queueManager.IncrementProcessed()
			}
		}(i)
	}

	common.LogInfo("代理工作協程已啟動",
		zap.Int("workers", s.config.Agent.Workers),
	)
}

// Enabled 回報代理是否啟用
func (s *Service) Enabled() bool {
	return s.config.OpenRouter.Enabled
}

// QueueStatus 獲取隊列狀態
func (s *Service) QueueStatus() *queue.Status {
	return s.queueManager.GetQueueStatus()
}

// ChooseOption 從多個替代方案中挑選一個
// 代理關閉、方案唯一或任何錯誤時，一律返回第一個方案
func (s *Service) ChooseOption(ctx context.Context, ingredient string, diets []string, options []common.SubstitutionOption) (common.SubstitutionOption, error) {
	if len(options) == 0 {
		return common.SubstitutionOption{}, fmt.Errorf("no options for ingredient %q", ingredient)
	}
	if !s.config.OpenRouter.Enabled || len(options) == 1 {
		return options[0], nil
	}

	prompt := buildChoicePrompt(ingredient, diets, options)

	content, err := s.ProcessRequest(ctx, prompt)
	if err != nil {
		common.LogWarn("代理挑選失敗，改用第一個方案",
			zap.String("ingredient", ingredient),
			zap.Error(err),
		)
		return options[0], nil
	}

	idx, err := parseChoice(content, len(options))
	if err != nil {
		common.LogWarn("代理回覆無法解析，改用第一個方案",
			zap.String("ingredient", ingredient),
			zap.String("content", content),
			zap.Error(err),
		)
		return options[0], nil
	}

	return options[idx], nil
}

// ProcessRequest 處理提示請求，帶快取與隊列
func (s *Service) ProcessRequest(ctx context.Context, prompt string) (string, error) {
	if err := s.checkRequestRate(); err != nil {
		return "", err
	}

	// 統一 prompt 格式，確保快取鍵一致
	prompt = strings.TrimSpace(prompt)

	// 檢查快取
	if s.config.Agent.EnableCache && s.config.Cache.Enabled && s.cacheManager != nil {
		if val, err := s.cacheManager.Get(ctx, prompt); err == nil && val != "" {
			return val, nil
		}
	}

	// 進入隊列等待工作協程處理
	resultCh, err := s.queueManager.Enqueue(ctx, &common.AgentRequest{
		Prompt: prompt,
		Model:  s.config.OpenRouter.Model,
	})
	if err != nil {
		return "", err
	}

	select {
	case result := <-resultCh:
		if result.Error != nil {
			return "", result.Error
		}
		if s.config.Agent.EnableCache && s.config.Cache.Enabled && s.cacheManager != nil {
			_ = s.cacheManager.Set(ctx, prompt, result.Content)
		}
		return result.Content, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Close 關閉代理服務
func (s *Service) Close() {
	s.queueManager.Close()
	s.wg.Wait()
}

// checkRequestRate 檢查請求頻率
func (s *Service) checkRequestRate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if s.config.RateLimit.Enabled && s.config.RateLimit.Requests > 0 {
		minInterval := s.config.RateLimit.Window / time.Duration(s.config.RateLimit.Requests)
		if now.Sub(s.lastRequest) < minInterval {
			return errors.New("request rate limit exceeded")
		}
	}

	s.lastRequest = now
	return nil
}

// buildChoicePrompt 構建挑選提示
func buildChoicePrompt(ingredient string, diets []string, options []common.SubstitutionOption) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Ingredient %q must be replaced to satisfy these diets: %s.\n", ingredient, common.StringSliceToString(diets)))
	sb.WriteString("Candidate substitutions:\n")
	sb.WriteString(common.FormatOptions(options))
	sb.WriteString(`Pick the most common pantry option. Reply with JSON only: {"choice": <number>, "reason": "<short reason>"}`)
	return sb.String()
}

// parseChoice 解析模型回覆，返回 0-based 索引
func parseChoice(content string, optionCount int) (int, error) {
	// 擷取第一段 JSON 物件，容忍模型附帶的說明文字
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return 0, fmt.Errorf("no JSON object in reply")
	}

	var reply choiceReply
	if err := common.ParseJSON(common.QuoteJSONKeys(content[start:end+1]), &reply); err != nil {
		return 0, fmt.Errorf("invalid choice reply: %w", err)
	}

	if reply.Choice < 1 || reply.Choice > optionCount {
		return 0, fmt.Errorf("choice %d out of range 1..%d", reply.Choice, optionCount)
	}

	return reply.Choice - 1, nil
}

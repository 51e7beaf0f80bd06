package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"recipe-transformer/internal/infrastructure/config"
	"recipe-transformer/internal/pkg/common"

	"github.com/go-redis/redis/v8"
)

// Service Redis 快取服務
// 跨行程快取轉換結果，以請求內容雜湊為鍵
type Service struct {
	client *redis.Client
	config *config.Config
}

// NewService 創建 Redis 快取服務
func NewService(cfg *config.Config) (*Service, error) {
	if !cfg.Redis.Enabled {
		return &Service{config: cfg}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Service{
		client: client,
		config: cfg,
	}, nil
}

// Enabled 回報 Redis 快取是否可用
func (s *Service) Enabled() bool {
	return s.config.Redis.Enabled && s.client != nil
}

// GetResult 獲取快取的轉換結果並反序列化到 v
func (s *Service) GetResult(ctx context.Context, requestBody []byte, v interface{}) error {
	if !s.Enabled() {
		return common.ErrCacheDisabled
	}

	key := s.generateKey(requestBody)

	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			common.LogCacheMiss("redis", key)
			return common.ErrCacheDisabled
		}
		return fmt.Errorf("failed to get cache: %w", err)
	}

	if err := common.ParseJSONBytes(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal cache: %w", err)
	}

	common.LogCacheHit("redis", key)
	return nil
}

// SetResult 序列化並快取轉換結果
func (s *Service) SetResult(ctx context.Context, requestBody []byte, v interface{}) error {
	if !s.Enabled() {
		return nil
	}

	key := s.generateKey(requestBody)

	data, err := common.ToJSON(v)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := s.client.Set(ctx, key, data, s.config.Cache.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}

	return nil
}

// Close 關閉 Redis 連線
func (s *Service) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

// generateKey 生成快取鍵
func (s *Service) generateKey(requestBody []byte) string {
	hash := sha256.Sum256(requestBody)
	return "transform:result:" + hex.EncodeToString(hash[:])
}

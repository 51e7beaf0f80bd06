package api

import (
	"context"
	"net/http"
	"time"

	"recipe-transformer/internal/api/handlers/health"
	transformHandler "recipe-transformer/internal/api/handlers/transform"
	"recipe-transformer/internal/api/middleware"
	"recipe-transformer/internal/core/agent"
	agentcache "recipe-transformer/internal/core/agent/cache"
	"recipe-transformer/internal/core/ingredient"
	"recipe-transformer/internal/core/knowledge"
	"recipe-transformer/internal/core/units"
	"recipe-transformer/internal/infrastructure/config"
	"recipe-transformer/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 超時設置
	timeoutDuration = 30 * time.Second
	// 請求體大小限制 (1MB)，食譜請求皆為純文字
	maxBodySize = 1 << 20
)

// SetupRouter 設置路由
// 核心表在此一次建好，之後只讀
func SetupRouter(cfg *config.Config, agentService *agent.Service, resultCache *agentcache.Service) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(requestid.New())
	router.Use(middleware.Logger())

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(maxBodySize))

	// 限流與去重
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	router.Use(middleware.Deduplication(cfg))

	// 建構核心表
	canonicalizer := ingredient.NewCanonicalizer()
	kb := knowledge.NewKnowledgeBase(canonicalizer)
	converter := units.NewConverter()

	common.LogInfo("Core tables initialized",
		zap.Int("knowledge_entries", kb.Size()),
		zap.Int("diets", len(kb.AllDiets())),
	)

	// 請求超時
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded && !c.Writer.Written() {
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  common.ErrCodeGatewayTimeout,
			})
		}
	})

	// 健康檢查路由
	healthHandler := health.NewHandler(cfg, kb, agentService)
	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/ready", healthHandler.ReadinessCheck)
	router.GET("/live", healthHandler.LivenessCheck)

	// API 路由組
	handler := transformHandler.NewHandler(kb, converter, agentService, resultCache)

	api := router.Group("/api/v1")
	{
		recipeGroup := api.Group("/recipe")
		{
			// 單位感知替代
			recipeGroup.POST("/transform", handler.HandleTransform)

			// 多重飲食法調和
			recipeGroup.POST("/composite", handler.HandleComposite)
		}

		// 直接單位換算
		api.POST("/units/convert", handler.HandleConvertUnits)

		// 食材正規化查詢
		api.POST("/ingredient/canonicalize", handler.HandleCanonicalize)

		// 已知飲食法
		api.GET("/diets", handler.HandleDiets)
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.Bool("agent_enabled", cfg.OpenRouter.Enabled),
		zap.Bool("redis_cache_enabled", cfg.Redis.Enabled),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}

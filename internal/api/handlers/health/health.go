package health

import (
	"net/http"
	"runtime"
	"time"

	"recipe-transformer/internal/core/agent"
	"recipe-transformer/internal/core/agent/queue"
	"recipe-transformer/internal/core/knowledge"
	"recipe-transformer/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

// HealthResponse 健康檢查響應
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime"`
	Knowledge map[string]interface{} `json:"knowledge"`
	Queue     *queue.Status          `json:"queue,omitempty"`
}

// Handler 健康檢查處理程序
type Handler struct {
	config       *config.Config
	kb           *knowledge.KnowledgeBase
	agentService *agent.Service
}

// NewHandler 創建健康檢查處理程序
func NewHandler(cfg *config.Config, kb *knowledge.KnowledgeBase, agentService *agent.Service) *Handler {
	return &Handler{
		config:       cfg,
		kb:           kb,
		agentService: agentService,
	}
}

// HealthCheck 健康檢查處理器
func (h *Handler) HealthCheck(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   h.config.App.Version,
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
		Knowledge: map[string]interface{}{
			"entries": h.kb.Size(),
			"diets":   len(h.kb.AllDiets()),
		},
	}

	if h.agentService != nil && h.agentService.Enabled() {
		response.Queue = h.agentService.QueueStatus()
	}

	c.JSON(http.StatusOK, response)
}

// ReadinessCheck 就緒檢查處理器
// 知識庫在啟動時建表，表為空代表建構失敗
func (h *Handler) ReadinessCheck(c *gin.Context) {
	if h.kb.Size() == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// LivenessCheck 存活檢查處理器
func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}

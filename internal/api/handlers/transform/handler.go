package transform

import (
	"bytes"
	"io"
	"net/http"

	"recipe-transformer/internal/core/agent"
	agentcache "recipe-transformer/internal/core/agent/cache"
	"recipe-transformer/internal/core/diet"
	"recipe-transformer/internal/core/ingredient"
	"recipe-transformer/internal/core/knowledge"
	"recipe-transformer/internal/core/transform"
	"recipe-transformer/internal/core/units"
	"recipe-transformer/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TransformRequest 單位感知替代請求
type TransformRequest struct {
	Recipe           common.Recipe `json:"recipe" binding:"required"`
	DietRestrictions []string      `json:"diet_restrictions" binding:"required"`
}

// CompositeRequest 多重飲食法調和請求
type CompositeRequest struct {
	Recipe common.Recipe `json:"recipe" binding:"required"`
	Diets  []string      `json:"diets" binding:"required"`
}

// ConvertRequest 單位換算請求
type ConvertRequest struct {
	Amount     float64 `json:"amount"`
	FromUnit   string  `json:"from_unit" binding:"required"`
	ToUnit     string  `json:"to_unit" binding:"required"`
	Ingredient string  `json:"ingredient"`
}

// CanonicalizeRequest 正規化查詢請求
type CanonicalizeRequest struct {
	Name string `json:"name" binding:"required"`
}

// CanonicalizeResponse 正規化查詢結果
type CanonicalizeResponse struct {
	Original  string                                 `json:"original"`
	Canonical string                                 `json:"canonical"`
	Aliases   []string                               `json:"aliases"`
	Options   map[string][]common.SubstitutionOption `json:"options_by_diet,omitempty"`
}

// DietsResponse 已知飲食法清單
type DietsResponse struct {
	Diets           []string    `json:"diets"`
	RestrictedPairs [][2]string `json:"restricted_pairs"`
}

// Handler 食譜轉換處理程序
type Handler struct {
	canonicalizer *ingredient.Canonicalizer
	kb            *knowledge.KnowledgeBase
	converter     *units.Converter
	transformer   *transform.Transformer
	reconciler    *diet.Reconciler
	agentService  *agent.Service
	resultCache   *agentcache.Service
}

// NewHandler 創建轉換處理程序
func NewHandler(kb *knowledge.KnowledgeBase, converter *units.Converter, agentService *agent.Service, resultCache *agentcache.Service) *Handler {
	return &Handler{
		canonicalizer: kb.Canonicalizer(),
		kb:            kb,
		converter:     converter,
		transformer:   transform.NewTransformer(kb, converter),
		reconciler:    diet.NewReconciler(kb),
		agentService:  agentService,
		resultCache:   resultCache,
	}
}

// HandleTransform 對食譜做逐食材單位感知替代
func (h *Handler) HandleTransform(c *gin.Context) {
	requestID := ensureRequestID(c)

	body, req, ok := bindBody[TransformRequest](c, requestID)
	if !ok {
		return
	}
	if len(req.Recipe.Ingredients) == 0 {
		abortWith(c, common.ErrEmptyIngredients)
		return
	}
	if len(req.DietRestrictions) == 0 {
		abortWith(c, common.ErrEmptyDiets)
		return
	}

	common.LogDebug("收到食譜轉換請求",
		zap.String("request_id", requestID),
		zap.Strings("diets", req.DietRestrictions),
		zap.String("ingredients", common.FormatIngredients(req.Recipe.Ingredients)),
	)

	// 先查 Redis 結果快取
	var cached transform.Result
	if h.resultCache != nil && h.resultCache.GetResult(c.Request.Context(), body, &cached) == nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	result := h.transformer.TransformWithSelector(req.Recipe.Ingredients, req.DietRestrictions, h.selector(c))

	if h.resultCache != nil {
		_ = h.resultCache.SetResult(c.Request.Context(), body, result)
	}

	common.LogInfo("食譜替代完成",
		zap.String("request_id", requestID),
		zap.Int("ingredients", len(req.Recipe.Ingredients)),
		zap.Int("substitutions", len(result.Substitutions)),
		zap.Bool("success", result.Success),
	)

	c.JSON(http.StatusOK, result)
}

// HandleComposite 多重飲食法調和
func (h *Handler) HandleComposite(c *gin.Context) {
	requestID := ensureRequestID(c)

	body, req, ok := bindBody[CompositeRequest](c, requestID)
	if !ok {
		return
	}
	if len(req.Recipe.Ingredients) == 0 {
		abortWith(c, common.ErrEmptyIngredients)
		return
	}
	if len(req.Diets) == 0 {
		abortWith(c, common.ErrEmptyDiets)
		return
	}

	var cached diet.CompositeResult
	if h.resultCache != nil && h.resultCache.GetResult(c.Request.Context(), body, &cached) == nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	result := h.reconciler.ApplyComposite(req.Recipe.Ingredients, req.Diets)

	if h.resultCache != nil {
		_ = h.resultCache.SetResult(c.Request.Context(), body, result)
	}

	common.LogInfo("多重飲食法調和完成",
		zap.String("request_id", requestID),
		zap.Strings("diets", req.Diets),
		zap.Int("conflicts", len(result.Conflicts)),
		zap.Bool("success", result.Success),
	)

	c.JSON(http.StatusOK, result)
}

// HandleConvertUnits 直接單位換算
// 換算失敗以結果內容表達，HTTP 狀態仍為 200，由呼叫端決定後續
func (h *Handler) HandleConvertUnits(c *gin.Context) {
	ensureRequestID(c)

	var req ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("請求格式無效", zap.Error(err), zap.String("request_id", requestid.Get(c)))
		abortWith(c, common.ErrInvalidRequest)
		return
	}

	result := h.converter.Convert(req.Amount, req.FromUnit, req.ToUnit, req.Ingredient)
	c.JSON(http.StatusOK, result)
}

// HandleCanonicalize 正規化查詢
func (h *Handler) HandleCanonicalize(c *gin.Context) {
	ensureRequestID(c)

	var req CanonicalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWith(c, common.ErrInvalidRequest)
		return
	}

	canonical := h.canonicalizer.Canonicalize(req.Name)

	options := make(map[string][]common.SubstitutionOption)
	for _, d := range h.kb.AllDiets() {
		if opts := h.kb.GetSubstitutionOptions(canonical, d); len(opts) > 0 {
			options[d] = opts
		}
	}

	c.JSON(http.StatusOK, CanonicalizeResponse{
		Original:  req.Name,
		Canonical: canonical,
		Aliases:   h.canonicalizer.Aliases(canonical),
		Options:   options,
	})
}

// HandleDiets 已知飲食法（優先序排列）
func (h *Handler) HandleDiets(c *gin.Context) {
	c.JSON(http.StatusOK, DietsResponse{
		Diets:           h.reconciler.SortByPriority(h.kb.AllDiets()),
		RestrictedPairs: h.kb.RestrictedPairs(),
	})
}

// selector 將代理包成核心的挑選函式；代理關閉時回傳 nil（即取第一個方案）
func (h *Handler) selector(c *gin.Context) transform.Selector {
	if h.agentService == nil || !h.agentService.Enabled() {
		return nil
	}
	return func(ing string, diets []string, options []common.SubstitutionOption) (common.SubstitutionOption, error) {
		return h.agentService.ChooseOption(c.Request.Context(), ing, diets, options)
	}
}

// ensureRequestID 取得或補發請求 ID
func ensureRequestID(c *gin.Context) string {
	id := requestid.Get(c)
	if id == "" {
		id = common.GenerateUUID()
		c.Header("X-Request-ID", id)
	}
	return id
}

// bindBody 讀取請求體並綁定 JSON，同時保留原始位元組作快取鍵
func bindBody[T any](c *gin.Context, requestID string) ([]byte, T, bool) {
	var req T

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		abortWith(c, common.ErrInvalidRequest)
		return nil, req, false
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
			zap.String("path", c.Request.URL.Path),
		)
		abortWith(c, common.ErrInvalidRequest)
		return nil, req, false
	}

	return body, req, true
}

// abortWith 以預定義錯誤結束請求
func abortWith(c *gin.Context, appErr *common.CustomError) {
	c.AbortWithStatusJSON(appErr.Status, common.ErrorResponse{
		Code:    appErr.Code,
		Message: appErr.Message,
	})
}

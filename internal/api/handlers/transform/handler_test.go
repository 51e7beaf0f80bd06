package transform

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"recipe-transformer/internal/core/diet"
	"recipe-transformer/internal/core/ingredient"
	"recipe-transformer/internal/core/knowledge"
	coretransform "recipe-transformer/internal/core/transform"
	"recipe-transformer/internal/core/units"
	"recipe-transformer/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	kb := knowledge.NewKnowledgeBase(ingredient.NewCanonicalizer())
	h := NewHandler(kb, units.NewConverter(), nil, nil)

	r := gin.New()
	api := r.Group("/api/v1")
	api.POST("/recipe/transform", h.HandleTransform)
	api.POST("/recipe/composite", h.HandleComposite)
	api.POST("/units/convert", h.HandleConvertUnits)
	api.POST("/ingredient/canonicalize", h.HandleCanonicalize)
	api.GET("/diets", h.HandleDiets)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleTransformSubstitutesForbiddenIngredient(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/recipe/transform", TransformRequest{
		Recipe: common.Recipe{
			Name: "porridge",
			Ingredients: []common.RecipeIngredient{
				{Name: "milk", Amount: "1 cup"},
			},
		},
		DietRestrictions: []string{"vegan"},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var result coretransform.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Success)
	require.Len(t, result.Substitutions, 1)
	assert.Equal(t, "milk", result.Substitutions[0].OriginalIngredient)
	assert.Equal(t, "oat milk", result.Substitutions[0].SubstitutedIngredient)
}

func TestHandleTransformEmptyDiets(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/recipe/transform", TransformRequest{
		Recipe: common.Recipe{
			Ingredients: []common.RecipeIngredient{{Name: "milk", Amount: "1 cup"}},
		},
		DietRestrictions: []string{},
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp common.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "EMPTY_DIETS", resp.Code)
}

func TestHandleTransformMalformedBody(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recipe/transform", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp common.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, common.ErrCodeInvalidRequest, resp.Code)
}

func TestHandleCompositeMultiDiet(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/recipe/composite", CompositeRequest{
		Recipe: common.Recipe{
			Ingredients: []common.RecipeIngredient{
				{Name: "eggs", Amount: "2"},
				{Name: "milk", Amount: "1 cup"},
				{Name: "flour", Amount: "2 cups"},
			},
		},
		Diets: []string{"vegan", "gluten-free"},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var result diet.CompositeResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Success)

	// 每個飲食法一筆套用紀錄，受影響食材數加總
	require.Len(t, result.SubstitutionHistory, 2)
	substituted := 0
	for _, application := range result.SubstitutionHistory {
		substituted += application.IngredientsAffected
	}
	assert.Equal(t, 3, substituted)
}

func TestHandleConvertUnits(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/units/convert", ConvertRequest{
		Amount:   2,
		FromUnit: "cup",
		ToUnit:   "ml",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var result units.ConversionResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.InDelta(t, 473.176, result.ConvertedAmount, 0.01)
}

func TestHandleConvertUnitsFailureIsStillOK(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/units/convert", ConvertRequest{
		Amount:   1,
		FromUnit: "cup",
		ToUnit:   "piece",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var result units.ConversionResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.ErrorMessage)
}

func TestHandleCanonicalize(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/ingredient/canonicalize", CanonicalizeRequest{
		Name: "AP Flour",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp CanonicalizeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "AP Flour", resp.Original)
	assert.Equal(t, "flour", resp.Canonical)
	assert.Contains(t, resp.Aliases, "all-purpose flour")
	assert.Contains(t, resp.Options, "gluten-free")
}

func TestHandleDietsPriorityOrder(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/diets", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp DietsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Diets)
	assert.Equal(t, "keto", resp.Diets[0])
	assert.Contains(t, resp.Diets, "vegan")
	assert.NotEmpty(t, resp.RestrictedPairs)
}

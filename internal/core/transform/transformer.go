package transform

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"recipe-transformer/internal/core/knowledge"
	"recipe-transformer/internal/core/units"
	"recipe-transformer/internal/pkg/common"
)

// UnitAwareSubstitution 帶單位換算的替代結果
type UnitAwareSubstitution struct {
	OriginalIngredient string  `json:"original"`
	OriginalAmount     string  `json:"original_amount"`
	OriginalUnit       string  `json:"original_unit"`
	OriginalQuantity   float64 `json:"original_quantity"`

	SubstitutedIngredient string  `json:"substituted"`
	SubstitutedAmount     string  `json:"substituted_amount"`
	SubstitutedUnit       string  `json:"substituted_unit"`
	SubstitutedQuantity   float64 `json:"substituted_quantity"`

	ConversionApplied bool                    `json:"unit_conversion_applied"`
	Ratio             string                  `json:"ratio"`
	UnitConversion    string                  `json:"unit_conversion"`
	Notes             string                  `json:"notes"`
	Confidence        float64                 `json:"confidence"`
	ConversionResult  *units.ConversionResult `json:"conversion_result,omitempty"`
}

// Result 逐食材單位換算替代結果
// Success 定義：警告清單為空；與 diet.CompositeResult 的定義不同，兩者各自獨立
type Result struct {
	OriginalRecipe       []common.RecipeIngredient `json:"original_ingredients"`
	DietRestrictions     []string                  `json:"diet_restrictions"`
	Substitutions        []UnitAwareSubstitution   `json:"substitutions"`
	UnchangedIngredients []common.RecipeIngredient `json:"unchanged_ingredients"`
	Warnings             []string                  `json:"warnings"`
	ChangeLog            []string                  `json:"change_log"`
	Success              bool                      `json:"success"`
}

// Transformer 單位感知的食譜替代器
// 與 diet.Reconciler 不同：依呼叫端給定的飲食法順序找第一個禁用者，
// 直接採用該飲食法的第一個替代方案
type Transformer struct {
	kb        *knowledge.KnowledgeBase
	converter *units.Converter
}

// NewTransformer 建構替代器
func NewTransformer(kb *knowledge.KnowledgeBase, converter *units.Converter) *Transformer {
	return &Transformer{kb: kb, converter: converter}
}

// Selector 從候選替代方案中挑選一個
// 由呼叫端注入（例如交給外部代理）；回傳錯誤時改用第一個方案
type Selector func(ingredient string, diets []string, options []common.SubstitutionOption) (common.SubstitutionOption, error)

// ParseIngredientAmount 解析食材數量與單位
// 優先解析 Amount 字串，缺單位時回退到 Quantity/Unit 欄位
func (t *Transformer) ParseIngredientAmount(ing common.RecipeIngredient) (float64, string) {
	if ing.Amount != "" {
		quantity, unit := t.converter.ParseAmount(ing.Amount)
		if unit != "" {
			return quantity, unit
		}
	}
	return ing.Quantity, ing.Unit
}

// Transform 對食譜做單位感知替代
// 每個食材找出呼叫端順序中第一個禁用它的飲食法並替代；
// 單位換算失敗時保留原始數量與單位繼續處理
func (t *Transformer) Transform(ingredients []common.RecipeIngredient, diets []string) Result {
	return t.TransformWithSelector(ingredients, diets, nil)
}

// TransformWithSelector 同 Transform，但以 selector 挑選替代方案
// selector 為 nil 或回傳錯誤時，採用第一個方案
func (t *Transformer) TransformWithSelector(ingredients []common.RecipeIngredient, diets []string, selector Selector) Result {
	var (
		substitutions []UnitAwareSubstitution
		unchanged     []common.RecipeIngredient
		warnings      []string
		changeLog     []string
	)

	for _, ing := range ingredients {
		applicableDiet := ""
		for _, diet := range diets {
			if t.kb.IsForbidden(ing.Name, diet) {
				applicableDiet = diet
				break
			}
		}

		if applicableDiet == "" {
			unchanged = append(unchanged, ing)
			continue
		}

		options := t.kb.GetSubstitutionOptions(ing.Name, applicableDiet)
		if len(options) == 0 {
			warnings = append(warnings, fmt.Sprintf("No substitution found for '%s' on %s diet", ing.Name, applicableDiet))
			unchanged = append(unchanged, ing)
			continue
		}

		chosen := options[0]
		if selector != nil {
			if picked, err := selector(ing.Name, diets, options); err == nil {
				chosen = picked
			}
		}

		substitution := t.applySubstitution(ing, chosen)
		substitutions = append(substitutions, substitution)
		changeLog = append(changeLog, fmt.Sprintf("Replaced '%s' (%s) with '%s' (%s)",
			ing.Name, ing.Amount, substitution.SubstitutedIngredient, substitution.SubstitutedAmount))
		if substitution.ConversionApplied {
			changeLog = append(changeLog, fmt.Sprintf("  Applied unit conversion: %s %s → %s %s",
				formatQuantity(substitution.OriginalQuantity), substitution.OriginalUnit,
				formatQuantity(substitution.SubstitutedQuantity), substitution.SubstitutedUnit))
		}
	}

	return Result{
		OriginalRecipe:       ingredients,
		DietRestrictions:     diets,
		Substitutions:        substitutions,
		UnchangedIngredients: unchanged,
		Warnings:             warnings,
		ChangeLog:            changeLog,
		Success:              len(warnings) == 0,
	}
}

// applySubstitution 套用單一替代方案並處理單位換算
func (t *Transformer) applySubstitution(ing common.RecipeIngredient, option common.SubstitutionOption) UnitAwareSubstitution {
	originalQuantity, originalUnit := t.ParseIngredientAmount(ing)
	targetUnit := targetUnitFromRatio(option.Ratio, originalUnit)

	finalQuantity, finalUnit := originalQuantity, originalUnit
	conversionApplied := false
	var conversionResult *units.ConversionResult

	if originalUnit != targetUnit {
		result := t.converter.Convert(originalQuantity, originalUnit, targetUnit, option.Name)
		conversionResult = &result
		if result.Success {
			conversionApplied = true
			finalQuantity = result.ConvertedAmount
			finalUnit = result.ConvertedUnit
		} else {
			// 換算失敗時回退到原始數量與單位
			finalQuantity = originalQuantity
			finalUnit = originalUnit
		}
	}

	return UnitAwareSubstitution{
		OriginalIngredient: ing.Name,
		OriginalAmount:     ing.Amount,
		OriginalUnit:       originalUnit,
		OriginalQuantity:   originalQuantity,

		SubstitutedIngredient: option.Name,
		SubstitutedAmount:     fmt.Sprintf("%s %s", formatQuantity(finalQuantity), finalUnit),
		SubstitutedUnit:       finalUnit,
		SubstitutedQuantity:   finalQuantity,

		ConversionApplied: conversionApplied,
		Ratio:             option.Ratio,
		UnitConversion:    option.UnitConversion,
		Notes:             option.Notes,
		Confidence:        option.Confidence,
		ConversionResult:  conversionResult,
	}
}

// targetUnitFromRatio 從替代比例文字推斷目標單位
// 明確標示 "1:1" 或 "=" 的比例維持原單位，實際數值換算交給 Converter；
// 只處理幾種常見寫法，其餘維持原單位
func targetUnitFromRatio(ratio, unit string) string {
	if strings.Contains(ratio, "1:1") || strings.Contains(ratio, "=") {
		return unit
	}

	switch {
	case strings.Contains(ratio, "cup") && strings.Contains(ratio, "ml"):
		return "ml"
	case strings.Contains(ratio, "tbsp") && strings.Contains(ratio, "tsp"):
		return "tsp"
	case strings.Contains(ratio, "lb") && strings.Contains(ratio, "oz"):
		return "oz"
	}
	return unit
}

// formatQuantity 整數值不帶小數點，其餘保留完整精度
func formatQuantity(quantity float64) string {
	if quantity == math.Trunc(quantity) {
		return strconv.FormatFloat(quantity, 'f', 0, 64)
	}
	return strconv.FormatFloat(quantity, 'g', -1, 64)
}

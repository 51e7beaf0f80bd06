package common

import (
	"fmt"
	"strings"
)

// RecipeIngredient 食譜中的單一食材
// 由呼叫端建立，交給核心後視為不可變
type RecipeIngredient struct {
	Name     string  `json:"name"`
	Amount   string  `json:"amount"`   // 自由文字，例如 "2 cups"、"1/2 cup"
	Unit     string  `json:"unit"`     // 單位字串，可為空
	Quantity float64 `json:"quantity"` // 數值量，可為 0
	Notes    string  `json:"notes,omitempty"`
}

// Recipe 輸入食譜
type Recipe struct {
	Name         string             `json:"name"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
	Instructions []string           `json:"instructions,omitempty"`
	Servings     int                `json:"servings,omitempty"`
}

// SubstitutionOption 單一替代方案
// 不可變，由知識庫條目持有
type SubstitutionOption struct {
	Name           string  `json:"name"`
	Ratio          string  `json:"ratio"`           // 例如 "1:1"、"1 cup = 240ml"
	UnitConversion string  `json:"unit_conversion"` // 例如 "1 Tbsp = 15ml"
	Notes          string  `json:"notes"`
	Confidence     float64 `json:"confidence"` // 0-1
}

// SubstitutionDecision 一次替代的決策紀錄
type SubstitutionDecision struct {
	OriginalIngredient   string  `json:"original"`
	CanonicalIngredient  string  `json:"canonical"`
	SelectedSubstitution string  `json:"substituted"`
	Ratio                string  `json:"ratio"`
	UnitConversion       string  `json:"unit_conversion"`
	Confidence           float64 `json:"confidence"`
	Reasoning            string  `json:"reasoning"`
	Notes                string  `json:"notes,omitempty"`
}

// FormatIngredients 格式化食材列表（供提示與日誌使用）
func FormatIngredients(ingredients []RecipeIngredient) string {
	var sb strings.Builder
	for _, ing := range ingredients {
		sb.WriteString(fmt.Sprintf("- %s: %s %s\n", ing.Name, ing.Amount, ing.Unit))
	}
	return sb.String()
}

// FormatOptions 格式化替代方案列表（供提示與日誌使用）
func FormatOptions(options []SubstitutionOption) string {
	var sb strings.Builder
	for i, opt := range options {
		sb.WriteString(fmt.Sprintf("%d. %s (ratio: %s)\n", i+1, opt.Name, opt.Ratio))
	}
	return sb.String()
}

// StringSliceToString 將字符串切片轉換為逗號分隔的字符串
func StringSliceToString(slice []string) string {
	if len(slice) == 0 {
		return ""
	}
	return strings.Join(slice, ", ")
}

package diet

import (
	"fmt"
	"sort"
	"strings"

	"recipe-transformer/internal/core/knowledge"
	"recipe-transformer/internal/pkg/common"
)

// 衝突嚴重度
const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// 衝突類型
const (
	ConflictNoCommonSubstitution  = "no_common_substitution"
	ConflictMultipleRestriction   = "multiple_diet_restriction"
	ConflictSingleDietRestriction = "single_diet_restriction"
)

// dietPriority 飲食法優先順序，限制最嚴格者在前
// 未知飲食法排在所有已知項之後，彼此保持原順序
var dietPriority = []string{
	"keto",
	"paleo",
	"vegan",
	"dairy-free",
	"gluten-free",
	"soy-free",
	"egg-free",
	"nut-free",
	"low-fodmap",
}

// Conflict 多重飲食限制間的衝突
type Conflict struct {
	Ingredient          string   `json:"ingredient"`
	ConflictingDiets    []string `json:"conflicting_diets"`
	Kind                string   `json:"conflict_type"`
	SuggestedResolution string   `json:"suggested_resolution"`
	Severity            string   `json:"severity"`
}

// Change 單次替代紀錄
type Change struct {
	Diet         string `json:"diet"`
	Original     string `json:"original"`
	Substitution string `json:"substitution"`
	Ratio        string `json:"ratio"`
	Reasoning    string `json:"reasoning"`
}

// Application 單一飲食法套用結果
type Application struct {
	Diet                string   `json:"diet"`
	Changes             []Change `json:"changes"`
	IngredientsAffected int      `json:"ingredients_affected"`
}

// CompositeResult 多重飲食法套用結果
// Success 定義：最終食材全數合規且無 error 等級衝突
type CompositeResult struct {
	OriginalRecipe      []common.RecipeIngredient `json:"original_recipe"`
	AppliedDiets        []string                  `json:"applied_diets"`
	FinalIngredients    []common.RecipeIngredient `json:"final_ingredients"`
	SubstitutionHistory []Application             `json:"substitution_history"`
	Conflicts           []Conflict                `json:"conflicts"`
	Warnings            []string                  `json:"warnings"`
	ChangeLog           []string                  `json:"change_log"`
	Success             bool                      `json:"success"`
}

// Reconciler 多重飲食限制調和器
// 依固定優先順序套用飲食法，偵測衝突並驗證最終合規
type Reconciler struct {
	kb       *knowledge.KnowledgeBase
	priority map[string]int
}

// NewReconciler 建構調和器
func NewReconciler(kb *knowledge.KnowledgeBase) *Reconciler {
	priority := make(map[string]int, len(dietPriority))
	for i, diet := range dietPriority {
		priority[diet] = i
	}
	return &Reconciler{kb: kb, priority: priority}
}

// PriorityOrder 回傳內建的飲食法優先順序
func PriorityOrder() []string {
	out := make([]string, len(dietPriority))
	copy(out, dietPriority)
	return out
}

// SortByPriority 依優先順序排序飲食法（穩定排序，不修改輸入）
func (r *Reconciler) SortByPriority(diets []string) []string {
	sorted := make([]string, len(diets))
	copy(sorted, diets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return r.rank(sorted[i]) < r.rank(sorted[j])
	})
	return sorted
}

func (r *Reconciler) rank(diet string) int {
	if idx, ok := r.priority[diet]; ok {
		return idx
	}
	return len(dietPriority) + 1
}

// UnionForbiddenTags 取得多個飲食法禁用標籤的聯集（排序去重）
func (r *Reconciler) UnionForbiddenTags(diets []string) []string {
	set := make(map[string]struct{})
	for _, diet := range diets {
		for _, tag := range r.kb.TagsForDiet(diet) {
			set[tag] = struct{}{}
		}
	}

	tags := make([]string, 0, len(set))
	for tag := range set {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// FindCommonSubstitutions 找出對所有指定飲食法都適用的替代方案
// 以第一個飲食法的方案順序為準做交集；同名方案取優先順序最高飲食法的版本
func (r *Reconciler) FindCommonSubstitutions(ingredientName string, diets []string) []common.SubstitutionOption {
	if len(diets) == 0 {
		return nil
	}

	perDiet := make(map[string]map[string]common.SubstitutionOption, len(diets))
	for _, diet := range diets {
		options := r.kb.GetSubstitutionOptions(ingredientName, diet)
		byName := make(map[string]common.SubstitutionOption, len(options))
		for _, option := range options {
			byName[strings.ToLower(option.Name)] = option
		}
		perDiet[diet] = byName
	}

	var result []common.SubstitutionOption
	for _, option := range r.kb.GetSubstitutionOptions(ingredientName, diets[0]) {
		name := strings.ToLower(option.Name)
		inAll := true
		for _, diet := range diets[1:] {
			if _, ok := perDiet[diet][name]; !ok {
				inAll = false
				break
			}
		}
		if !inAll {
			continue
		}
		for _, diet := range dietPriority {
			if byName, ok := perDiet[diet]; ok {
				if picked, ok := byName[name]; ok {
					result = append(result, picked)
					break
				}
			}
		}
	}
	return result
}

// DetectConflicts 偵測食材在多重飲食法下的衝突
// 被兩個以上飲食法禁用且無共同替代方案時為 error；有共同方案時為 warning；
// 僅被單一飲食法禁用時記 info
func (r *Reconciler) DetectConflicts(ingredientName string, diets []string) []Conflict {
	var forbidden []string
	for _, diet := range diets {
		if r.kb.IsForbidden(ingredientName, diet) {
			forbidden = append(forbidden, diet)
		}
	}

	switch {
	case len(forbidden) > 1:
		commonSubs := r.FindCommonSubstitutions(ingredientName, forbidden)
		if len(commonSubs) == 0 {
			return []Conflict{{
				Ingredient:          ingredientName,
				ConflictingDiets:    forbidden,
				Kind:                ConflictNoCommonSubstitution,
				SuggestedResolution: fmt.Sprintf("No single substitution works for all diets: %s", strings.Join(forbidden, ", ")),
				Severity:            SeverityError,
			}}
		}
		return []Conflict{{
			Ingredient:          ingredientName,
			ConflictingDiets:    forbidden,
			Kind:                ConflictMultipleRestriction,
			SuggestedResolution: fmt.Sprintf("Use common substitution: %s", commonSubs[0].Name),
			Severity:            SeverityWarning,
		}}
	case len(forbidden) == 1:
		return []Conflict{{
			Ingredient:          ingredientName,
			ConflictingDiets:    forbidden,
			Kind:                ConflictSingleDietRestriction,
			SuggestedResolution: fmt.Sprintf("Ingredient forbidden in %s diet", forbidden[0]),
			Severity:            SeverityInfo,
		}}
	}
	return nil
}

// ApplyComposite 依優先順序對食譜套用多重飲食法
// 每個食材最多替代一次；先套用的飲食法佔先。套用完成後
// 會重新掃描最終清單做診斷性衝突紀錄（不再替代）
func (r *Reconciler) ApplyComposite(ingredients []common.RecipeIngredient, diets []string) CompositeResult {
	sorted := r.SortByPriority(diets)

	current := make([]common.RecipeIngredient, len(ingredients))
	copy(current, ingredients)

	var (
		history   []Application
		conflicts []Conflict
		warnings  []string
		changeLog []string
	)
	substituted := make(map[string]struct{})

	// 先就原始食材偵測衝突，error 等級將反映在 Success 上
	for _, ing := range ingredients {
		conflicts = append(conflicts, r.DetectConflicts(ing.Name, sorted)...)
	}

	for _, diet := range sorted {
		var changes []Change

		for i, ing := range current {
			if _, done := substituted[ing.Name]; done {
				continue
			}
			if !r.kb.IsForbidden(ing.Name, diet) {
				continue
			}

			options := r.kb.GetSubstitutionOptions(ing.Name, diet)
			if len(options) == 0 {
				warnings = append(warnings, fmt.Sprintf("No substitution found for '%s' on %s diet", ing.Name, diet))
				continue
			}

			// 多重飲食法下優先採用共同替代方案，以當前飲食法的方案順序為準
			queryDiets := make([]string, 0, len(sorted))
			queryDiets = append(queryDiets, diet)
			for _, other := range sorted {
				if other != diet {
					queryDiets = append(queryDiets, other)
				}
			}
			selected := options[0]
			if commonSubs := r.FindCommonSubstitutions(ing.Name, queryDiets); len(commonSubs) > 0 {
				selected = commonSubs[0]
			}

			current[i] = common.RecipeIngredient{
				Name:     selected.Name,
				Amount:   ing.Amount,
				Unit:     ing.Unit,
				Quantity: ing.Quantity,
				Notes:    fmt.Sprintf("%s (substituted for %s)", ing.Notes, ing.Name),
			}
			substituted[ing.Name] = struct{}{}

			changes = append(changes, Change{
				Diet:         diet,
				Original:     ing.Name,
				Substitution: selected.Name,
				Ratio:        selected.Ratio,
				Reasoning:    fmt.Sprintf("Applied for %s diet compatibility", diet),
			})
			changeLog = append(changeLog, fmt.Sprintf("[%s] Replaced '%s' with '%s'", diet, ing.Name, selected.Name))
		}

		if len(changes) > 0 {
			history = append(history, Application{
				Diet:                diet,
				Changes:             changes,
				IngredientsAffected: len(changes),
			})
		}
	}

	// 最終清單的診斷性重掃
	for _, ing := range current {
		conflicts = append(conflicts, r.DetectConflicts(ing.Name, sorted)...)
	}

	compliant := r.ValidateCompliance(current, sorted)
	success := compliant
	for _, conflict := range conflicts {
		if conflict.Severity == SeverityError {
			success = false
			break
		}
	}

	return CompositeResult{
		OriginalRecipe:      ingredients,
		AppliedDiets:        sorted,
		FinalIngredients:    current,
		SubstitutionHistory: history,
		Conflicts:           conflicts,
		Warnings:            warnings,
		ChangeLog:           changeLog,
		Success:             success,
	}
}

// ValidateCompliance 驗證食材清單是否符合所有飲食法
// 合規定義：正規名稱不含任何禁用標籤子字串（不分大小寫）
func (r *Reconciler) ValidateCompliance(ingredients []common.RecipeIngredient, diets []string) bool {
	union := r.UnionForbiddenTags(diets)
	canonicalizer := r.kb.Canonicalizer()

	for _, ing := range ingredients {
		canonical := strings.ToLower(canonicalizer.Canonicalize(ing.Name))
		for _, tag := range union {
			if strings.Contains(canonical, strings.ToLower(tag)) {
				return false
			}
		}
	}
	return true
}

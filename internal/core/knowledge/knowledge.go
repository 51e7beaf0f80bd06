package knowledge

import (
	"sort"

	"recipe-transformer/internal/core/ingredient"
	"recipe-transformer/internal/pkg/common"
)

// Entry 單一（食材, 飲食法）限制條目
// 替代方案列表有序，第一個為預設選擇
type Entry struct {
	Ingredient    string // 正規食材名稱
	Diet          string
	Options       []common.SubstitutionOption
	ForbiddenTags []string
}

// entryKey 以（正規食材, 飲食法）為唯一鍵
type entryKey struct {
	ingredient string
	diet       string
}

// KnowledgeBase 飲食限制知識庫
// 啟動時一次建構，之後唯讀；查無條目代表「不受限制」
type KnowledgeBase struct {
	canonicalizer *ingredient.Canonicalizer
	entries       map[entryKey]*Entry
	diets         map[string]struct{}
}

// NewKnowledgeBase 建構知識庫並載入內建限制表
// 條目鍵在建構時即做正規化，表內寫法不影響查詢
func NewKnowledgeBase(canonicalizer *ingredient.Canonicalizer) *KnowledgeBase {
	kb := &KnowledgeBase{
		canonicalizer: canonicalizer,
		entries:       make(map[entryKey]*Entry),
		diets:         make(map[string]struct{}),
	}

	for _, entry := range restrictionTable() {
		e := entry
		e.Ingredient = canonicalizer.Canonicalize(e.Ingredient)
		key := entryKey{ingredient: e.Ingredient, diet: e.Diet}
		kb.entries[key] = &e
		kb.diets[e.Diet] = struct{}{}
	}

	return kb
}

// GetSubstitutionOptions 取得食材在指定飲食法下的替代方案
// 內部會先正規化食材名稱；查無條目回傳空列表
func (kb *KnowledgeBase) GetSubstitutionOptions(name, diet string) []common.SubstitutionOption {
	canonical := kb.canonicalizer.Canonicalize(name)
	if entry, ok := kb.entries[entryKey{ingredient: canonical, diet: diet}]; ok {
		return entry.Options
	}
	return nil
}

// IsForbidden 判斷食材在指定飲食法下是否禁用
// 定義：條目存在且替代方案非空；與 GetSubstitutionOptions 保持一致
func (kb *KnowledgeBase) IsForbidden(name, diet string) bool {
	return len(kb.GetSubstitutionOptions(name, diet)) > 0
}

// ForbiddenTags 取得食材在指定飲食法下的禁用標籤
func (kb *KnowledgeBase) ForbiddenTags(name, diet string) []string {
	canonical := kb.canonicalizer.Canonicalize(name)
	if entry, ok := kb.entries[entryKey{ingredient: canonical, diet: diet}]; ok {
		return entry.ForbiddenTags
	}
	return nil
}

// TagsForDiet 取得某飲食法所有條目的禁用標籤聯集（排序去重）
func (kb *KnowledgeBase) TagsForDiet(diet string) []string {
	set := make(map[string]struct{})
	for key, entry := range kb.entries {
		if key.diet != diet {
			continue
		}
		for _, tag := range entry.ForbiddenTags {
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

// AllDiets 取得所有已知飲食法（排序後）
func (kb *KnowledgeBase) AllDiets() []string {
	diets := make([]string, 0, len(kb.diets))
	for diet := range kb.diets {
		diets = append(diets, diet)
	}
	sort.Strings(diets)
	return diets
}

// RestrictedPairs 取得所有（食材, 飲食法）配對（排序後）
// 測試與健康檢查用
func (kb *KnowledgeBase) RestrictedPairs() [][2]string {
	pairs := make([][2]string, 0, len(kb.entries))
	for key := range kb.entries {
		pairs = append(pairs, [2]string{key.ingredient, key.diet})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})
	return pairs
}

// Size 條目總數
func (kb *KnowledgeBase) Size() int {
	return len(kb.entries)
}

// Canonicalizer 取得底層正規化器
func (kb *KnowledgeBase) Canonicalizer() *ingredient.Canonicalizer {
	return kb.canonicalizer
}

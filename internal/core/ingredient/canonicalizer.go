package ingredient

import (
	"regexp"
	"sort"
	"strings"
)

// AliasGroup 一組食材別名對應
type AliasGroup struct {
	Canonical   string
	Aliases     []string
	Description string
}

// MatchFunc 模糊比對函數
// 回傳 normalized 是否可視為 alias 的同義寫法
type MatchFunc func(normalized, alias string) bool

// aliasEntry 依表格定義順序保存的別名條目
// 模糊比對必須依此順序掃描，先匹配者勝出
type aliasEntry struct {
	name      string
	canonical string
}

// Canonicalizer 食材名稱正規化器
// 建構完成後為唯讀，可供多個 goroutine 併發查詢
type Canonicalizer struct {
	exact   map[string]string // 別名（含正規名稱本身）→ 正規名稱
	ordered []aliasEntry
	groups  map[string]AliasGroup // 正規名稱 → 別名組
	matcher MatchFunc
}

var (
	whitespacePattern  = regexp.MustCompile(`\s+`)
	punctuationPattern = regexp.MustCompile(`[,;.]`)
	leadingQualifier   = regexp.MustCompile(`^(fresh|dried|frozen|canned|organic)\s+`)
	trailingQualifier  = regexp.MustCompile(`\s+(fresh|dried|frozen|canned|organic)$`)
)

// OverlapMatcher 建立以詞彙重疊率為門檻的模糊比對函數
// 規則：雙向子字串包含，或分詞後交集達到較短一方的 threshold 比例
func OverlapMatcher(threshold float64) MatchFunc {
	return func(normalized, alias string) bool {
		if strings.Contains(normalized, alias) || strings.Contains(alias, normalized) {
			return true
		}

		normalizedWords := strings.Fields(normalized)
		aliasWords := strings.Fields(alias)

		aliasSet := make(map[string]struct{}, len(aliasWords))
		for _, w := range aliasWords {
			aliasSet[w] = struct{}{}
		}

		overlap := 0
		for _, w := range normalizedWords {
			if _, ok := aliasSet[w]; ok {
				overlap++
			}
		}

		minLen := len(normalizedWords)
		if len(aliasWords) < minLen {
			minLen = len(aliasWords)
		}

		return float64(overlap) >= float64(minLen)*threshold
	}
}

// NewCanonicalizer 建立正規化器並載入內建別名表
func NewCanonicalizer() *Canonicalizer {
	return NewCanonicalizerWithMatcher(OverlapMatcher(0.7))
}

// NewCanonicalizerWithMatcher 以自訂比對函數建立正規化器
func NewCanonicalizerWithMatcher(matcher MatchFunc) *Canonicalizer {
	c := &Canonicalizer{
		exact:   make(map[string]string),
		groups:  make(map[string]AliasGroup),
		matcher: matcher,
	}

	for _, group := range aliasTable() {
		c.addGroup(group)
	}

	return c
}

// addGroup 登錄一組別名
// 正規名稱本身先登錄，其後依序登錄各別名
func (c *Canonicalizer) addGroup(group AliasGroup) {
	c.groups[group.Canonical] = group

	c.exact[group.Canonical] = group.Canonical
	c.ordered = append(c.ordered, aliasEntry{name: group.Canonical, canonical: group.Canonical})

	for _, alias := range group.Aliases {
		c.exact[alias] = group.Canonical
		c.ordered = append(c.ordered, aliasEntry{name: alias, canonical: group.Canonical})
	}
}

// Canonicalize 將食材名稱正規化
// 一定回傳字串；查無別名時回傳正規化後的輸入本身
func (c *Canonicalizer) Canonicalize(raw string) string {
	normalized := c.normalize(raw)
	if normalized == "" {
		return ""
	}

	if canonical, ok := c.exact[normalized]; ok {
		return canonical
	}

	// 依表格定義順序做模糊比對，先匹配者勝出
	for _, entry := range c.ordered {
		if c.matcher(normalized, entry.name) {
			return entry.canonical
		}
	}

	return normalized
}

// normalize 基本正規化：小寫、空白壓縮、去標點、去新鮮度修飾詞
func (c *Canonicalizer) normalize(raw string) string {
	normalized := strings.ToLower(raw)
	normalized = strings.TrimSpace(whitespacePattern.ReplaceAllString(normalized, " "))
	if normalized == "" {
		return ""
	}

	normalized = punctuationPattern.ReplaceAllString(normalized, "")
	normalized = leadingQualifier.ReplaceAllString(normalized, "")
	normalized = trailingQualifier.ReplaceAllString(normalized, "")

	return normalized
}

// Aliases 取得正規名稱的所有別名
func (c *Canonicalizer) Aliases(canonical string) []string {
	if group, ok := c.groups[canonical]; ok {
		return group.Aliases
	}
	return nil
}

// AllCanonicalNames 取得所有正規名稱（排序後）
func (c *Canonicalizer) AllCanonicalNames() []string {
	names := make([]string, 0, len(c.groups))
	for name := range c.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeAliases(t *testing.T) {
	c := NewCanonicalizer()

	cases := map[string]string{
		"AP flour":          "flour",
		"all-purpose flour": "flour",
		"White Flour":       "flour",
		"egg":               "eggs",
		"large eggs":        "eggs",
		"whole milk":        "milk",
		"white sugar":       "granulated sugar",
		"sugar":             "granulated sugar",
		"garbanzo beans":    "chickpeas",
		"bean curd":         "tofu",
		"wheat bread":       "white bread",
	}
	for input, want := range cases {
		assert.Equal(t, want, c.Canonicalize(input), "input %q", input)
	}
}

func TestCanonicalizeEquivalentSpellings(t *testing.T) {
	c := NewCanonicalizer()

	assert.Equal(t, c.Canonicalize("all-purpose flour"), c.Canonicalize("AP flour"))
	assert.Equal(t, c.Canonicalize("egg"), c.Canonicalize("chicken eggs"))
}

func TestCanonicalizeNormalization(t *testing.T) {
	c := NewCanonicalizer()

	// 小寫、空白壓縮、標點與新鮮度修飾詞移除
	assert.Equal(t, "garlic", c.Canonicalize("  Fresh   Garlic  "))
	assert.Equal(t, "onion", c.Canonicalize("onion, chopped"))
	assert.Equal(t, "basil", c.Canonicalize("dried basil"))
	assert.Equal(t, "spinach", c.Canonicalize("spinach frozen"))
	assert.Equal(t, "", c.Canonicalize("   "))
}

func TestCanonicalizeIdempotent(t *testing.T) {
	c := NewCanonicalizer()

	inputs := []string{
		"AP flour", "Fresh Garlic", "peanut butter", "dragonfruit",
		"whole milk", "sugar", "flax egg", "2 cups of nothing",
	}
	for _, input := range inputs {
		once := c.Canonicalize(input)
		assert.Equal(t, once, c.Canonicalize(once), "input %q", input)
	}
}

func TestCanonicalizeFuzzyMatch(t *testing.T) {
	c := NewCanonicalizer()

	// 子字串包含
	assert.Equal(t, "milk", c.Canonicalize("lactose-free milk"))
	// 詞彙重疊
	assert.Equal(t, "granulated sugar", c.Canonicalize("granulated white sugar"))
}

func TestCanonicalizeUnknownFallsThrough(t *testing.T) {
	c := NewCanonicalizer()

	assert.Equal(t, "dragonfruit", c.Canonicalize("Dragonfruit"))
	assert.Equal(t, "star anise pods", c.Canonicalize("star anise pods"))
}

func TestSubstituteNamesCanonicalizeToThemselves(t *testing.T) {
	c := NewCanonicalizer()

	// 常見替代食材不可被吸收進原始食材的別名組
	for _, name := range []string{"flax egg", "chia egg", "oat milk", "almond milk", "peanut butter"} {
		assert.Equal(t, name, c.Canonicalize(name))
	}
}

func TestOverlapMatcherThreshold(t *testing.T) {
	strict := OverlapMatcher(1.0)
	loose := OverlapMatcher(0.5)

	// "brown rice syrup" 與 "rice syrup"：重疊 2 詞，較短一方 2 詞
	assert.True(t, strict("brown rice syrup", "rice syrup"))

	// "maple syrup" 與 "rice syrup"：重疊 1 詞，較短一方 2 詞
	assert.False(t, strict("maple syrup", "rice syrup"))
	assert.True(t, loose("maple syrup", "rice syrup"))

	// 子字串包含不受門檻影響
	assert.True(t, strict("sea salt flakes", "salt"))
}

func TestCustomMatcher(t *testing.T) {
	never := func(normalized, alias string) bool { return false }
	c := NewCanonicalizerWithMatcher(never)

	// 精確別名仍然生效，模糊比對全部關閉
	assert.Equal(t, "flour", c.Canonicalize("AP flour"))
	assert.Equal(t, "lactose-free milk", c.Canonicalize("lactose-free milk"))
}

func TestAliasesAndCanonicalNames(t *testing.T) {
	c := NewCanonicalizer()

	assert.Contains(t, c.Aliases("flour"), "ap flour")
	assert.Nil(t, c.Aliases("dragonfruit"))

	names := c.AllCanonicalNames()
	assert.Contains(t, names, "flour")
	assert.Contains(t, names, "tofu")
	for i := 1; i < len(names); i++ {
		assert.LessOrEqual(t, names[i-1], names[i])
	}
}

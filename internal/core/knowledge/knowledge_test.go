package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-transformer/internal/core/ingredient"
)

func newTestKB(t *testing.T) *KnowledgeBase {
	t.Helper()
	return NewKnowledgeBase(ingredient.NewCanonicalizer())
}

func TestGetSubstitutionOptionsCanonicalizesLookup(t *testing.T) {
	kb := newTestKB(t)

	// 表內條目寫的是 flour，別名查詢應命中同一條
	direct := kb.GetSubstitutionOptions("flour", "gluten-free")
	require.NotEmpty(t, direct)

	for _, alias := range []string{"AP flour", "all-purpose flour", "Fresh white flour"} {
		options := kb.GetSubstitutionOptions(alias, "gluten-free")
		require.NotEmpty(t, options, "alias %q should resolve to the flour entry", alias)
		assert.Equal(t, direct[0].Name, options[0].Name)
	}
}

func TestGetSubstitutionOptionsMissReturnsEmpty(t *testing.T) {
	kb := newTestKB(t)

	assert.Empty(t, kb.GetSubstitutionOptions("water", "vegan"))
	assert.Empty(t, kb.GetSubstitutionOptions("flour", "unknown-diet"))
	assert.False(t, kb.IsForbidden("water", "vegan"))
}

func TestIsForbidden(t *testing.T) {
	kb := newTestKB(t)

	assert.True(t, kb.IsForbidden("rice", "keto"))
	assert.False(t, kb.IsForbidden("rice", "vegan"))
	assert.True(t, kb.IsForbidden("eggs", "vegan"))
	assert.True(t, kb.IsForbidden("egg", "egg-free"))
	assert.True(t, kb.IsForbidden("sugar", "keto"))
}

func TestPeanutButterDistinctFromButter(t *testing.T) {
	kb := newTestKB(t)

	assert.True(t, kb.IsForbidden("peanut butter", "nut-free"))
	assert.False(t, kb.IsForbidden("butter", "nut-free"))
	assert.True(t, kb.IsForbidden("butter", "vegan"))
	assert.False(t, kb.IsForbidden("peanut butter", "vegan"))
}

func TestFirstOptionOrderPreserved(t *testing.T) {
	kb := newTestKB(t)

	eggs := kb.GetSubstitutionOptions("eggs", "vegan")
	require.NotEmpty(t, eggs)
	assert.Equal(t, "flax egg", eggs[0].Name)

	milk := kb.GetSubstitutionOptions("milk", "vegan")
	require.NotEmpty(t, milk)
	assert.Equal(t, "oat milk", milk[0].Name)
}

func TestKetoAndPaleoSugarOptionsDisjoint(t *testing.T) {
	kb := newTestKB(t)

	keto := kb.GetSubstitutionOptions("granulated sugar", "keto")
	paleo := kb.GetSubstitutionOptions("granulated sugar", "paleo")
	require.NotEmpty(t, keto)
	require.NotEmpty(t, paleo)

	seen := make(map[string]struct{})
	for _, option := range keto {
		seen[option.Name] = struct{}{}
	}
	for _, option := range paleo {
		_, dup := seen[option.Name]
		assert.False(t, dup, "option %q appears under both diets", option.Name)
	}
}

func TestForbiddenTags(t *testing.T) {
	kb := newTestKB(t)

	tags := kb.ForbiddenTags("garlic", "low-fodmap")
	assert.Contains(t, tags, "fructans")
	assert.Empty(t, kb.ForbiddenTags("garlic", "keto"))
}

func TestTagsForDiet(t *testing.T) {
	kb := newTestKB(t)

	tags := kb.TagsForDiet("keto")
	assert.Contains(t, tags, "high-carb")
	assert.Contains(t, tags, "sugar")
	assert.True(t, sortedStrings(tags))
}

func TestAllDiets(t *testing.T) {
	kb := newTestKB(t)

	diets := kb.AllDiets()
	for _, diet := range []string{
		"keto", "paleo", "vegan", "dairy-free", "gluten-free",
		"soy-free", "egg-free", "nut-free", "low-fodmap",
	} {
		assert.Contains(t, diets, diet)
	}
	assert.True(t, sortedStrings(diets))
}

func TestRestrictedPairs(t *testing.T) {
	kb := newTestKB(t)

	pairs := kb.RestrictedPairs()
	require.Equal(t, kb.Size(), len(pairs))

	for i := 1; i < len(pairs); i++ {
		prev, cur := pairs[i-1], pairs[i]
		sorted := prev[0] < cur[0] || (prev[0] == cur[0] && prev[1] < cur[1])
		assert.True(t, sorted, "pairs out of order at %d: %v then %v", i, prev, cur)
	}

	// 每組配對都應可經由公開查詢取得
	for _, pair := range pairs {
		assert.True(t, kb.IsForbidden(pair[0], pair[1]), "pair %v has no reachable options", pair)
	}
}

func sortedStrings(values []string) bool {
	for i := 1; i < len(values); i++ {
		if values[i-1] > values[i] {
			return false
		}
	}
	return true
}

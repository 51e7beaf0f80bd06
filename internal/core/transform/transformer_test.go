package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-transformer/internal/core/ingredient"
	"recipe-transformer/internal/core/knowledge"
	"recipe-transformer/internal/core/units"
	"recipe-transformer/internal/pkg/common"
)

func newTestTransformer(t *testing.T) *Transformer {
	t.Helper()
	kb := knowledge.NewKnowledgeBase(ingredient.NewCanonicalizer())
	return NewTransformer(kb, units.NewConverter())
}

func TestTransformUsesCallerDietOrder(t *testing.T) {
	tr := newTestTransformer(t)
	sugar := []common.RecipeIngredient{{Name: "granulated sugar", Amount: "1 cup", Unit: "cup", Quantity: 1}}

	// 依呼叫端順序取第一個禁用該食材的飲食法，而非優先順序
	result := tr.Transform(sugar, []string{"paleo", "keto"})
	require.Len(t, result.Substitutions, 1)
	assert.Equal(t, "honey", result.Substitutions[0].SubstitutedIngredient)

	result = tr.Transform(sugar, []string{"keto", "paleo"})
	require.Len(t, result.Substitutions, 1)
	assert.Equal(t, "erythritol", result.Substitutions[0].SubstitutedIngredient)
}

func TestTransformSkipsNonForbiddenDiets(t *testing.T) {
	tr := newTestTransformer(t)

	result := tr.Transform(
		[]common.RecipeIngredient{{Name: "milk", Amount: "1 cup", Unit: "cup", Quantity: 1}},
		[]string{"gluten-free", "vegan"},
	)
	require.Len(t, result.Substitutions, 1)
	assert.Equal(t, "oat milk", result.Substitutions[0].SubstitutedIngredient)
	assert.Equal(t, "1 cup", result.Substitutions[0].SubstitutedAmount)
	assert.False(t, result.Substitutions[0].ConversionApplied)
}

func TestTransformUnchangedAndSuccess(t *testing.T) {
	tr := newTestTransformer(t)

	result := tr.Transform(
		[]common.RecipeIngredient{
			{Name: "AP flour", Amount: "2 cups", Unit: "cups", Quantity: 2},
			{Name: "salt", Amount: "1 tsp", Unit: "tsp", Quantity: 1},
		},
		[]string{"gluten-free"},
	)

	assert.True(t, result.Success)
	assert.Empty(t, result.Warnings)
	require.Len(t, result.Substitutions, 1)
	assert.Equal(t, "almond flour", result.Substitutions[0].SubstitutedIngredient)
	require.Len(t, result.UnchangedIngredients, 1)
	assert.Equal(t, "salt", result.UnchangedIngredients[0].Name)
	assert.Len(t, result.ChangeLog, 1)
}

func TestTransformUnknownDietLeavesRecipeUntouched(t *testing.T) {
	tr := newTestTransformer(t)

	result := tr.Transform(
		[]common.RecipeIngredient{{Name: "milk", Amount: "1 cup", Unit: "cup", Quantity: 1}},
		[]string{"carnivore"},
	)
	assert.True(t, result.Success)
	assert.Empty(t, result.Substitutions)
	assert.Len(t, result.UnchangedIngredients, 1)
}

func TestParseIngredientAmount(t *testing.T) {
	tr := newTestTransformer(t)

	// Amount 欄位優先
	quantity, unit := tr.ParseIngredientAmount(common.RecipeIngredient{
		Name: "flour", Amount: "2 cups", Unit: "cup", Quantity: 5,
	})
	assert.Equal(t, 2.0, quantity)
	assert.Equal(t, "cups", unit)

	// Amount 無單位時回退到欄位值
	quantity, unit = tr.ParseIngredientAmount(common.RecipeIngredient{
		Name: "eggs", Amount: "3 large", Unit: "large", Quantity: 3,
	})
	assert.Equal(t, 3.0, quantity)
	assert.Equal(t, "large", unit)

	quantity, unit = tr.ParseIngredientAmount(common.RecipeIngredient{
		Name: "butter", Unit: "cup", Quantity: 0.5,
	})
	assert.Equal(t, 0.5, quantity)
	assert.Equal(t, "cup", unit)
}

func TestApplySubstitutionConversion(t *testing.T) {
	tr := newTestTransformer(t)

	option := common.SubstitutionOption{
		Name:       "water",
		Ratio:      "swap tbsp for tsp",
		Confidence: 1,
	}
	sub := tr.applySubstitution(common.RecipeIngredient{
		Name: "broth", Amount: "2 tbsp", Unit: "tbsp", Quantity: 2,
	}, option)

	assert.True(t, sub.ConversionApplied)
	assert.Equal(t, "tsp", sub.SubstitutedUnit)
	assert.InDelta(t, 6, sub.SubstitutedQuantity, 0.001)
	require.NotNil(t, sub.ConversionResult)
	assert.True(t, sub.ConversionResult.Success)
}

func TestApplySubstitutionConversionFailureFallsBack(t *testing.T) {
	tr := newTestTransformer(t)

	option := common.SubstitutionOption{
		Name:       "mystery paste",
		Ratio:      "about one cup per 250 ml",
		Confidence: 1,
	}
	sub := tr.applySubstitution(common.RecipeIngredient{
		Name: "starter", Amount: "2 piece", Unit: "piece", Quantity: 2,
	}, option)

	// 計數單位無法換算成 ml，保留原始數量與單位
	assert.False(t, sub.ConversionApplied)
	assert.Equal(t, "piece", sub.SubstitutedUnit)
	assert.Equal(t, 2.0, sub.SubstitutedQuantity)
	require.NotNil(t, sub.ConversionResult)
	assert.False(t, sub.ConversionResult.Success)
}

func TestTargetUnitFromRatio(t *testing.T) {
	cases := []struct {
		ratio string
		unit  string
		want  string
	}{
		{"1:1 substitution", "cup", "cup"},
		{"1 cup sugar = 1 tsp stevia powder", "cup", "cup"},
		{"about one cup per 250 ml", "cup", "ml"},
		{"swap tbsp for tsp", "tbsp", "tsp"},
		{"use oz per lb", "lb", "oz"},
		{"use as needed", "cup", "cup"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, targetUnitFromRatio(tc.ratio, tc.unit), "ratio %q", tc.ratio)
	}
}

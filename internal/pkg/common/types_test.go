package common

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatIngredients(t *testing.T) {
	out := FormatIngredients([]RecipeIngredient{
		{Name: "milk", Amount: "1 cup", Unit: "cup"},
		{Name: "flour", Amount: "2 cups", Unit: "cup"},
	})

	assert.Equal(t, "- milk: 1 cup cup\n- flour: 2 cups cup\n", out)
}

func TestFormatIngredientsEmpty(t *testing.T) {
	assert.Empty(t, FormatIngredients(nil))
}

func TestFormatOptionsNumbersFromOne(t *testing.T) {
	out := FormatOptions([]SubstitutionOption{
		{Name: "oat milk", Ratio: "1:1"},
		{Name: "almond milk", Ratio: "1:1"},
	})

	assert.Equal(t, "1. oat milk (ratio: 1:1)\n2. almond milk (ratio: 1:1)\n", out)
}

func TestStringSliceToString(t *testing.T) {
	assert.Equal(t, "vegan, keto", StringSliceToString([]string{"vegan", "keto"}))
	assert.Empty(t, StringSliceToString(nil))
}

func TestGenerateUUID(t *testing.T) {
	first := GenerateUUID()
	second := GenerateUUID()

	_, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertIdenticalUnits(t *testing.T) {
	c := NewConverter()

	result := c.Convert(2.5, "cup", "cup", "")
	require.True(t, result.Success)
	assert.Equal(t, 2.5, result.ConvertedAmount)
	assert.Equal(t, 1.0, result.ConversionFactor)

	// 未知單位只要兩邊相同也視為恆等
	result = c.Convert(3, "pinch", "pinch", "")
	require.True(t, result.Success)
	assert.Equal(t, 3.0, result.ConvertedAmount)
}

func TestConvertSameDimension(t *testing.T) {
	c := NewConverter()

	cases := []struct {
		amount   float64
		from, to string
		want     float64
		delta    float64
	}{
		{1, "cup", "ml", 236.588, 0.01},
		{1, "lb", "oz", 16, 0.001},
		{1, "tbsp", "tsp", 3, 0.001},
		{500, "g", "kg", 0.5, 0.0001},
		{2, "l", "ml", 2000, 0.0001},
		{1, "gal", "qt", 4, 0.001},
	}
	for _, tc := range cases {
		result := c.Convert(tc.amount, tc.from, tc.to, "")
		require.True(t, result.Success, "%v %s -> %s: %s", tc.amount, tc.from, tc.to, result.ErrorMessage)
		assert.InDelta(t, tc.want, result.ConvertedAmount, tc.delta, "%v %s -> %s", tc.amount, tc.from, tc.to)
	}
}

func TestConvertUnitAliases(t *testing.T) {
	c := NewConverter()

	result := c.Convert(1, "tablespoon", "teaspoons", "")
	require.True(t, result.Success)
	assert.InDelta(t, 3, result.ConvertedAmount, 0.001)

	result = c.Convert(1, "pound", "ounces", "")
	require.True(t, result.Success)
	assert.InDelta(t, 16, result.ConvertedAmount, 0.001)
}

func TestConvertCrossDimension(t *testing.T) {
	c := NewConverter()

	// 1 cup 麵粉 = 236.588ml × 0.6 g/ml
	result := c.Convert(1, "cup", "g", "flour")
	require.True(t, result.Success, result.ErrorMessage)
	assert.InDelta(t, 141.95, result.ConvertedAmount, 0.5)

	// 質量→體積走反方向
	result = c.Convert(100, "g", "ml", "butter")
	require.True(t, result.Success, result.ErrorMessage)
	assert.InDelta(t, 100/0.91, result.ConvertedAmount, 0.01)

	result = c.Convert(250, "ml", "g", "milk")
	require.True(t, result.Success, result.ErrorMessage)
	assert.InDelta(t, 257.5, result.ConvertedAmount, 0.01)
}

func TestConvertFailures(t *testing.T) {
	c := NewConverter()

	result := c.Convert(1, "smidgen", "cup", "")
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.ErrorMessage)

	// 缺密度資料的跨維度換算
	result = c.Convert(1, "cup", "g", "dragonfruit")
	assert.False(t, result.Success)
	assert.Contains(t, result.ErrorMessage, "density")

	// 質量↔計數不支援
	result = c.Convert(1, "g", "piece", "")
	assert.False(t, result.Success)

	// 失敗時原始數量保留給呼叫端做回退
	assert.Equal(t, 1.0, result.OriginalAmount)
	assert.Equal(t, 0.0, result.ConvertedAmount)
}

func TestConvertDeterminism(t *testing.T) {
	c := NewConverter()

	first := c.Convert(3.7, "cup", "g", "sugar")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, c.Convert(3.7, "cup", "g", "sugar"))
	}
}

func TestDimensionOf(t *testing.T) {
	c := NewConverter()

	assert.Equal(t, DimensionMass, c.DimensionOf("kg"))
	assert.Equal(t, DimensionVolume, c.DimensionOf("Cup"))
	assert.Equal(t, DimensionCount, c.DimensionOf("dozen"))
	assert.Equal(t, DimensionLength, c.DimensionOf("inch"))
	assert.Equal(t, DimensionUnknown, c.DimensionOf("smidgen"))
}

func TestParseAmount(t *testing.T) {
	c := NewConverter()

	cases := []struct {
		input    string
		quantity float64
		unit     string
	}{
		{"", 0, ""},
		{"2 cups", 2, "cups"},
		{"2.5 tbsp", 2.5, "tbsp"},
		{"1/2 cup", 0.5, "cup"},
		{"2 1/4 cups", 2.25, "cups"},
		{"3/4 tsp", 0.75, "tsp"},
		{"3", 3, ""},
		{"pinch", 1, "pinch"},
		{"1/2 cup butter, softened", 0.5, "cup"},
	}
	for _, tc := range cases {
		quantity, unit := c.ParseAmount(tc.input)
		assert.Equal(t, tc.quantity, quantity, "input %q", tc.input)
		assert.Equal(t, tc.unit, unit, "input %q", tc.input)
	}
}

func TestDensityFor(t *testing.T) {
	c := NewConverter()

	density, ok := c.DensityFor("flour")
	require.True(t, ok)
	assert.Equal(t, 0.6, density.GramsPerML)

	_, ok = c.DensityFor("unicorn dust")
	assert.False(t, ok)
}

package units

// unitTable 內建計量單位表
// 質量基準單位為公克，體積基準單位為毫升
func unitTable() []Unit {
	return []Unit{
		// 質量
		{Name: "g", Dimension: DimensionMass, BaseFactor: 1.0, Aliases: []string{"gram", "grams"}},
		{Name: "kg", Dimension: DimensionMass, BaseFactor: 1000.0, Aliases: []string{"kilogram", "kilograms", "kilo"}},
		{Name: "lb", Dimension: DimensionMass, BaseFactor: 453.592, Aliases: []string{"pound", "pounds", "lbs"}},
		{Name: "oz", Dimension: DimensionMass, BaseFactor: 28.3495, Aliases: []string{"ounce", "ounces"}},

		// 體積
		{Name: "ml", Dimension: DimensionVolume, BaseFactor: 1.0, Aliases: []string{"milliliter", "milliliters"}},
		{Name: "l", Dimension: DimensionVolume, BaseFactor: 1000.0, Aliases: []string{"liter", "liters", "litre", "litres"}},
		{Name: "cup", Dimension: DimensionVolume, BaseFactor: 236.588, Aliases: []string{"cups"}},
		{Name: "tbsp", Dimension: DimensionVolume, BaseFactor: 14.7868, Aliases: []string{"tablespoon", "tablespoons"}},
		{Name: "tsp", Dimension: DimensionVolume, BaseFactor: 4.92892, Aliases: []string{"teaspoon", "teaspoons", "t"}},
		{Name: "fl oz", Dimension: DimensionVolume, BaseFactor: 29.5735, Aliases: []string{"fluid ounce", "fluid ounces"}},
		{Name: "pt", Dimension: DimensionVolume, BaseFactor: 473.176, Aliases: []string{"pint", "pints"}},
		{Name: "qt", Dimension: DimensionVolume, BaseFactor: 946.353, Aliases: []string{"quart", "quarts"}},
		{Name: "gal", Dimension: DimensionVolume, BaseFactor: 3785.41, Aliases: []string{"gallon", "gallons"}},

		// 計數
		{Name: "piece", Dimension: DimensionCount, BaseFactor: 1.0, Aliases: []string{"pieces", "pcs", "pc"}},
		{Name: "dozen", Dimension: DimensionCount, BaseFactor: 12.0, Aliases: []string{"dozens"}},

		// 長度
		{Name: "mm", Dimension: DimensionLength, BaseFactor: 1.0, Aliases: []string{"millimeter", "millimeters"}},
		{Name: "cm", Dimension: DimensionLength, BaseFactor: 10.0, Aliases: []string{"centimeter", "centimeters"}},
		{Name: "in", Dimension: DimensionLength, BaseFactor: 25.4, Aliases: []string{"inch", "inches"}},

		// 溫度（僅做單位識別，不做數值換算）
		{Name: "°c", Dimension: DimensionTemperature, BaseFactor: 1.0, Aliases: []string{"celsius", "centigrade"}},
		{Name: "°f", Dimension: DimensionTemperature, BaseFactor: 1.0, Aliases: []string{"fahrenheit"}},
	}
}

// densityTable 常見食材密度表（g/ml），跨維度換算用
func densityTable() []Density {
	return []Density{
		{Ingredient: "flour", GramsPerML: 0.6, Notes: "All-purpose flour"},
		{Ingredient: "sugar", GramsPerML: 0.85, Notes: "Granulated sugar"},
		{Ingredient: "brown sugar", GramsPerML: 0.8, Notes: "Packed brown sugar"},
		{Ingredient: "powdered sugar", GramsPerML: 0.6, Notes: "Confectioners sugar"},
		{Ingredient: "butter", GramsPerML: 0.91, Notes: "Dairy butter"},
		{Ingredient: "oil", GramsPerML: 0.92, Notes: "Vegetable oil"},
		{Ingredient: "milk", GramsPerML: 1.03, Notes: "Whole milk"},
		{Ingredient: "water", GramsPerML: 1.0, Notes: "Water"},
		{Ingredient: "honey", GramsPerML: 1.4, Notes: "Honey"},
		{Ingredient: "molasses", GramsPerML: 1.4, Notes: "Molasses"},
		{Ingredient: "corn syrup", GramsPerML: 1.36, Notes: "Light corn syrup"},
		{Ingredient: "cream", GramsPerML: 1.0, Notes: "Heavy cream"},
		{Ingredient: "yogurt", GramsPerML: 1.03, Notes: "Plain yogurt"},
		{Ingredient: "sour cream", GramsPerML: 1.0, Notes: "Sour cream"},
		{Ingredient: "cheese", GramsPerML: 1.0, Notes: "Grated cheese"},
		{Ingredient: "nuts", GramsPerML: 0.6, Notes: "Chopped nuts"},
		{Ingredient: "almond flour", GramsPerML: 0.4, Notes: "Almond flour"},
		{Ingredient: "coconut flour", GramsPerML: 0.3, Notes: "Coconut flour"},
		{Ingredient: "cocoa powder", GramsPerML: 0.4, Notes: "Unsweetened cocoa powder"},
		{Ingredient: "baking powder", GramsPerML: 0.9, Notes: "Baking powder"},
		{Ingredient: "baking soda", GramsPerML: 0.9, Notes: "Baking soda"},
		{Ingredient: "salt", GramsPerML: 1.2, Notes: "Table salt"},
		{Ingredient: "rice", GramsPerML: 0.8, Notes: "Uncooked rice"},
		{Ingredient: "oats", GramsPerML: 0.3, Notes: "Rolled oats"},
	}
}

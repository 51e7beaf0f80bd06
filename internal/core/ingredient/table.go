package ingredient

// aliasTable 內建別名表
// 順序即模糊比對的掃描順序，調整前先確認測試
func aliasTable() []AliasGroup {
	return []AliasGroup{
		// 麵粉類
		{
			Canonical:   "flour",
			Aliases:     []string{"ap flour", "white flour", "plain flour", "all-purpose flour", "wheat flour"},
			Description: "標準烘焙用麵粉",
		},
		{
			Canonical:   "almond flour",
			Aliases:     []string{"almond meal", "ground almonds", "blanched almond flour"},
			Description: "杏仁粉",
		},
		{
			Canonical:   "coconut flour",
			Aliases:     []string{"coco flour", "coconut meal"},
			Description: "椰子粉",
		},

		// 糖類
		{
			Canonical:   "granulated sugar",
			Aliases:     []string{"white sugar", "table sugar", "regular sugar", "sugar", "cane sugar"},
			Description: "白砂糖",
		},
		{
			Canonical:   "brown sugar",
			Aliases:     []string{"light brown sugar", "dark brown sugar", "muscovado sugar"},
			Description: "紅糖",
		},
		{
			Canonical:   "powdered sugar",
			Aliases:     []string{"confectioners sugar", "icing sugar", "10x sugar"},
			Description: "糖粉",
		},

		// 乳製品
		{
			Canonical:   "milk",
			Aliases:     []string{"whole milk", "cow milk", "dairy milk", "regular milk"},
			Description: "牛奶",
		},
		{
			Canonical:   "butter",
			Aliases:     []string{"sweet butter", "unsalted butter", "salted butter", "dairy butter"},
			Description: "奶油",
		},
		{
			Canonical:   "cheese",
			Aliases:     []string{"cheddar cheese", "dairy cheese"},
			Description: "起司",
		},

		// 蛋類
		{
			Canonical:   "eggs",
			Aliases:     []string{"egg", "chicken eggs", "large eggs", "whole eggs"},
			Description: "雞蛋",
		},

		// 蔥蒜類
		{
			Canonical:   "onion",
			Aliases:     []string{"yellow onion", "white onion", "spanish onion", "cooking onion"},
			Description: "洋蔥",
		},
		{
			Canonical:   "garlic",
			Aliases:     []string{"garlic cloves", "fresh garlic", "garlic bulb"},
			Description: "大蒜",
		},

		// 油類
		{
			Canonical:   "olive oil",
			Aliases:     []string{"extra virgin olive oil", "evoo", "virgin olive oil"},
			Description: "橄欖油",
		},
		{
			Canonical:   "vegetable oil",
			Aliases:     []string{"canola oil", "cooking oil", "neutral oil"},
			Description: "中性食用油",
		},

		// 調味料
		{
			Canonical:   "salt",
			Aliases:     []string{"table salt", "kosher salt", "sea salt", "fine salt"},
			Description: "鹽",
		},
		{
			Canonical:   "black pepper",
			Aliases:     []string{"pepper", "ground pepper", "freshly ground pepper"},
			Description: "黑胡椒",
		},

		// 豆類
		{
			Canonical:   "black beans",
			Aliases:     []string{"black turtle beans", "dried black beans"},
			Description: "黑豆",
		},
		{
			Canonical:   "chickpeas",
			Aliases:     []string{"garbanzo beans", "ceci beans"},
			Description: "鷹嘴豆",
		},
		{
			Canonical:   "lentils",
			Aliases:     []string{"brown lentils", "green lentils", "red lentils"},
			Description: "扁豆",
		},

		// 麵包類
		{
			Canonical:   "white bread",
			Aliases:     []string{"sandwich bread", "sliced bread", "wheat bread"},
			Description: "白吐司",
		},

		// 水果類
		{
			Canonical:   "apples",
			Aliases:     []string{"apple", "granny smith apples", "red apples"},
			Description: "蘋果",
		},
		{
			Canonical:   "bananas",
			Aliases:     []string{"banana", "ripe bananas", "yellow bananas"},
			Description: "香蕉",
		},

		// 蜂蜜
		{
			Canonical:   "honey",
			Aliases:     []string{"raw honey", "wildflower honey", "clover honey"},
			Description: "蜂蜜",
		},

		// 大豆類
		{
			Canonical:   "soy sauce",
			Aliases:     []string{"shoyu", "light soy sauce", "dark soy sauce"},
			Description: "醬油",
		},
		{
			Canonical:   "tofu",
			Aliases:     []string{"bean curd", "silken tofu", "firm tofu", "extra firm tofu"},
			Description: "豆腐",
		},
		{
			Canonical:   "peanut butter",
			Aliases:     []string{"natural peanut butter", "creamy peanut butter", "crunchy peanut butter"},
			Description: "花生醬",
		},

		// 常見替代食材
		// 讓替代後的食材能正規化成自己，避免合規檢查誤判
		{
			Canonical:   "flax egg",
			Aliases:     []string{"flaxseed egg", "flax seed egg", "ground flaxseed egg"},
			Description: "亞麻籽蛋",
		},
		{
			Canonical:   "chia egg",
			Aliases:     []string{"chia seed egg"},
			Description: "奇亞籽蛋",
		},
		{
			Canonical:   "oat milk",
			Aliases:     []string{"oatmilk"},
			Description: "燕麥奶",
		},
		{
			Canonical:   "almond milk",
			Aliases:     []string{"almondmilk"},
			Description: "杏仁奶",
		},
	}
}

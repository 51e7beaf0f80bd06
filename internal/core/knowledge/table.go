package knowledge

import "recipe-transformer/internal/pkg/common"

// opt 建立一筆替代方案，信心值預設 1.0
func opt(name, ratio, unitConversion, notes string) common.SubstitutionOption {
	return common.SubstitutionOption{
		Name:           name,
		Ratio:          ratio,
		UnitConversion: unitConversion,
		Notes:          notes,
		Confidence:     1.0,
	}
}

// restrictionTable 內建飲食限制表
// 每筆條目的替代方案依建議順位排列
func restrictionTable() []Entry {
	return []Entry{
		// --- low-fodmap ---
		{
			Ingredient: "onion",
			Diet:       "low-fodmap",
			Options: []common.SubstitutionOption{
				opt("green onion tops (scallion)",
					"1 small onion ≈ 1 cup chopped scallion green parts",
					"1 cup scallion greens ≈ 50g",
					"Use the dark green parts only - low in FODMAPs. Milder flavor than regular onion."),
				opt("chives",
					"Use liberally as garnish or stir in at end",
					"1 Tbsp chopped ≈ 3g",
					"Low-FODMAP, adds allium flavor. Best added at end of cooking."),
				opt("leek greens",
					"Use similar volume as onion (up to 2/3 cup)",
					"1 cup chopped ≈ 60g",
					"Green parts of leeks are low-FODMAP. Slightly sweeter than onion."),
				opt("asafoetida (hing)",
					"1/8 teaspoon or pinch for whole dish",
					"1 pinch ≈ 0.5g",
					"Very potent spice. Fry briefly in oil at start."),
			},
			ForbiddenTags: []string{"fructans", "high-fodmap"},
		},
		{
			Ingredient: "garlic",
			Diet:       "low-fodmap",
			Options: []common.SubstitutionOption{
				opt("garlic-infused oil",
					"1 clove garlic = 1 Tbsp garlic-infused oil",
					"1 Tbsp = 15ml",
					"Make by warming garlic in oil, then discard garlic. Use at same stage as garlic."),
				opt("garlic chives",
					"1-2 Tbsp chopped for garlic flavor",
					"1 Tbsp chopped ≈ 3g",
					"Chinese chives with garlicky flavor. Add near end of cooking."),
				opt("asafoetida (hing)",
					"Tiny pinch in hot oil",
					"1 pinch ≈ 0.5g",
					"Very potent, gives garlic aroma when fried."),
			},
			ForbiddenTags: []string{"fructans", "high-fodmap"},
		},
		{
			Ingredient: "wheat flour",
			Diet:       "low-fodmap",
			Options: []common.SubstitutionOption{
				opt("gluten-free flour blend",
					"1 cup wheat flour = 1 cup GF blend (1:1)",
					"1 cup GF blend ≈ 120g",
					"Rice/potato/tapioca based. Check for no high-FODMAP additives."),
				opt("spelt flour (white)",
					"1:1 substitution in limited amounts",
					"1 cup ≈ 120g",
					"Shorter-chain fructans than wheat. Use in moderation."),
				opt("oat flour (certified GF)",
					"1:1 in moderate amounts (1/4 cup or so)",
					"1 cup ≈ 120g",
					"Low-FODMAP in small quantities. Ensure certified gluten-free."),
				opt("rice flour",
					"1:1 for thickening or breading",
					"1 cup ≈ 120g",
					"Pure starch, no FODMAPs. Good for thickening sauces."),
			},
			ForbiddenTags: []string{"fructans", "wheat", "gluten"},
		},
		{
			Ingredient: "milk",
			Diet:       "low-fodmap",
			Options: []common.SubstitutionOption{
				opt("lactose-free milk",
					"1 cup whole milk = 1 cup lactose-free milk (1:1)",
					"1 cup = 240ml",
					"Identical taste and function. Lactose pre-broken down."),
				opt("almond milk",
					"1:1 up to 1 cup serving",
					"1 cup = 240ml",
					"Low-FODMAP up to 1 cup. Slightly thinner than cow's milk."),
				opt("rice milk",
					"1:1 up to 1 cup serving",
					"1 cup = 240ml",
					"Neutral flavor, works well in cooking."),
				opt("oat milk",
					"1:1 up to 1/2 cup serving",
					"1 cup = 240ml",
					"Check for low-FODMAP certification."),
			},
			ForbiddenTags: []string{"lactose", "dairy"},
		},
		{
			Ingredient: "honey",
			Diet:       "low-fodmap",
			Options: []common.SubstitutionOption{
				opt("pure maple syrup",
					"1 Tbsp honey = 1 Tbsp maple syrup (1:1)",
					"1 Tbsp = 15ml",
					"Low-FODMAP up to 2 Tbsp. Slightly less floral than honey."),
				opt("brown sugar",
					"1/4 cup honey = 1/4 cup brown sugar + 1 Tbsp water",
					"1 Tbsp = 15ml",
					"Sucrose is low-FODMAP. Add water to mimic honey's liquid nature."),
				opt("rice malt syrup",
					"1 Tbsp honey = 1 Tbsp rice syrup (3/4 as sweet)",
					"1 Tbsp = 15ml",
					"Mild butterscotch flavor. Less sweet than honey but similar viscosity."),
			},
			ForbiddenTags: []string{"fructose", "high-fodmap"},
		},
		{
			Ingredient: "legumes",
			Diet:       "low-fodmap",
			Options: []common.SubstitutionOption{
				opt("canned lentils (rinsed)",
					"1 cup cooked beans = 1 cup canned lentils",
					"1 cup = 175g",
					"Much lower FODMAPs than dry beans. Rinse well to remove GOS from brine."),
				opt("canned chickpeas (rinsed)",
					"1/2 cup (46g drained) per serving",
					"1 cup = 175g",
					"Low-FODMAP in small amounts. Rinse thoroughly before use."),
				opt("firm tofu",
					"1 cup beans = 1 cup firm tofu cubes",
					"1 cup = 175g",
					"Low-FODMAP protein replacement. Picks up flavors well."),
				opt("quinoa",
					"1:1 volume replacement in salads",
					"1 cup cooked ≈ 185g",
					"Good protein and bulk. Use in place of beans in salads."),
			},
			ForbiddenTags: []string{"gos", "fructans", "high-fodmap"},
		},
		{
			Ingredient: "wheat bread",
			Diet:       "low-fodmap",
			Options: []common.SubstitutionOption{
				opt("sourdough bread (traditional)",
					"2 slices regular bread = 2 slices sourdough",
					"1 slice ≈ 30g",
					"Long fermentation breaks down fructans. Look for authentic sourdough."),
				opt("spelt sourdough",
					"2 slices regular bread = 2 slices spelt sourdough",
					"1 slice ≈ 30g",
					"Monash-approved low-FODMAP at 2 slices. Slightly tangy flavor."),
				opt("gluten-free bread",
					"1:1 slice replacement",
					"1 slice ≈ 30g",
					"Free of fructans. Check for no high-FODMAP additives like inulin."),
			},
			ForbiddenTags: []string{"fructans", "wheat", "gluten"},
		},
		{
			Ingredient: "apples",
			Diet:       "low-fodmap",
			Options: []common.SubstitutionOption{
				opt("banana (just ripe)",
					"1 medium apple (150g) = 1 medium banana (100g)",
					"1 fruit ≈ 150g",
					"Firm, just-ripe bananas are low-FODMAP. Avoid overripe."),
				opt("berries (strawberry, blueberry, raspberry)",
					"1 medium apple = ~10 medium strawberries (150g)",
					"1 cup ≈ 150g",
					"Low-FODMAP in moderate portions. Good for fruit salads and baking."),
				opt("citrus (orange, mandarin)",
					"1 medium apple (150g) = 1 medium navel orange (180g)",
					"1 fruit ≈ 150g",
					"All citrus fruits are low-FODMAP."),
				opt("kiwi",
					"2 kiwis can replace 1 apple in fruit platters",
					"1 fruit ≈ 75g",
					"Great sub for green apple. Tart and colorful."),
			},
			ForbiddenTags: []string{"fructose", "high-fodmap"},
		},
		{
			Ingredient: "pears",
			Diet:       "low-fodmap",
			Options: []common.SubstitutionOption{
				opt("banana (just ripe)",
					"1 medium pear = 1 medium banana",
					"1 fruit ≈ 150g",
					"Similar sweetness and texture. Use firm, just-ripe bananas."),
				opt("grapes",
					"1 cup chopped pear = 1 cup halved grapes",
					"1 cup ≈ 150g",
					"Low-FODMAP and sweet. Good for fruit salads."),
				opt("cantaloupe",
					"1 cup chopped pear = 1 cup cubed cantaloupe",
					"1 cup ≈ 150g",
					"Low-FODMAP in 1/2 cup servings. Sweet and refreshing."),
				opt("dragonfruit (pitaya)",
					"1:1 volume replacement",
					"1 fruit ≈ 150g",
					"Mild sweet taste, visually appealing."),
			},
			ForbiddenTags: []string{"fructose", "polyols", "high-fodmap"},
		},

		// --- gluten-free ---
		{
			Ingredient: "flour",
			Diet:       "gluten-free",
			Options: []common.SubstitutionOption{
				opt("almond flour",
					"1 cup wheat flour = 1 cup almond flour",
					"1 cup ≈ 96g",
					"High protein, low carb. May need more liquid in recipes."),
				opt("coconut flour",
					"1 cup wheat flour = 1/4 cup coconut flour + extra eggs",
					"1 cup ≈ 120g",
					"Very absorbent. Use 4-6 eggs per cup of coconut flour."),
				opt("gluten-free all-purpose blend",
					"1:1 substitution",
					"1 cup ≈ 120g",
					"Rice/potato/tapioca based. Add xanthan gum for binding."),
				opt("oat flour (certified GF)",
					"1:1 substitution",
					"1 cup ≈ 120g",
					"Ensure certified gluten-free. Good for pancakes and muffins."),
			},
			ForbiddenTags: []string{"gluten", "wheat"},
		},
		{
			Ingredient: "wheat bread",
			Diet:       "gluten-free",
			Options: []common.SubstitutionOption{
				opt("gluten-free bread",
					"1:1 slice replacement",
					"1 slice ≈ 30g",
					"Check ingredients for hidden gluten sources."),
				opt("lettuce wraps",
					"2 slices bread = 2 large lettuce leaves",
					"1 leaf ≈ 15g",
					"Fresh, crunchy alternative for sandwiches."),
				opt("gluten-free tortillas",
					"2 slices bread = 1 large tortilla",
					"1 tortilla ≈ 60g",
					"Corn or rice-based. Good for wraps and quesadillas."),
			},
			ForbiddenTags: []string{"gluten", "wheat"},
		},

		// --- keto ---
		{
			Ingredient: "granulated sugar",
			Diet:       "keto",
			Options: []common.SubstitutionOption{
				opt("erythritol",
					"1 cup sugar = 1 cup erythritol",
					"1 cup ≈ 200g",
					"70% as sweet as sugar. No aftertaste, good for baking."),
				opt("stevia",
					"1 cup sugar = 1 tsp stevia powder",
					"1 tsp ≈ 4g",
					"Very concentrated. May have slight aftertaste."),
				opt("monk fruit sweetener",
					"1 cup sugar = 1 cup monk fruit blend",
					"1 cup ≈ 200g",
					"Natural, no aftertaste. Often blended with erythritol."),
				opt("allulose",
					"1:1 substitution",
					"1 cup ≈ 200g",
					"70% as sweet as sugar. Caramelizes like sugar."),
			},
			ForbiddenTags: []string{"sugar", "sweetener", "high-carb", "glucose", "fructose"},
		},
		{
			Ingredient: "flour",
			Diet:       "keto",
			Options: []common.SubstitutionOption{
				opt("almond flour",
					"1 cup flour = 1 cup almond flour",
					"1 cup ≈ 96g",
					"High protein, low carb. May need more liquid."),
				opt("coconut flour",
					"1 cup flour = 1/4 cup coconut flour + extra eggs",
					"1 cup ≈ 120g",
					"Very absorbent. Use 4-6 eggs per cup."),
				opt("psyllium husk powder",
					"1 cup flour = 1/4 cup psyllium + 3/4 cup almond flour",
					"1 cup ≈ 120g",
					"Adds structure and fiber. Use in small amounts."),
			},
			ForbiddenTags: []string{"carbs", "starch", "high-carb"},
		},
		{
			Ingredient: "rice",
			Diet:       "keto",
			Options: []common.SubstitutionOption{
				opt("cauliflower rice",
					"1 cup rice = 1 cup cauliflower rice",
					"1 cup ≈ 100g",
					"Low carb, high fiber. Sauté to remove moisture."),
				opt("shirataki rice",
					"1:1 volume replacement",
					"1 cup ≈ 100g",
					"Zero carb, made from konjac. Rinse well before cooking."),
				opt("broccoli rice",
					"1 cup rice = 1 cup broccoli rice",
					"1 cup ≈ 100g",
					"More flavor than cauliflower. Good for stir-fries."),
			},
			ForbiddenTags: []string{"carbs", "starch", "high-carb"},
		},

		// --- vegan ---
		{
			Ingredient: "milk",
			Diet:       "vegan",
			Options: []common.SubstitutionOption{
				opt("oat milk",
					"1:1 substitution",
					"1 cup = 240ml",
					"Creamy texture, neutral flavor. Good for coffee and baking."),
				opt("almond milk",
					"1:1 substitution",
					"1 cup = 240ml",
					"Slightly nutty flavor. Good for smoothies and cereals."),
				opt("coconut milk",
					"1:1 substitution",
					"1 cup = 240ml",
					"Rich and creamy. Great for curries and desserts."),
				opt("soy milk",
					"1:1 substitution",
					"1 cup = 240ml",
					"High protein content. Good for cooking and baking."),
			},
			ForbiddenTags: []string{"dairy", "animal-products"},
		},
		{
			Ingredient: "butter",
			Diet:       "vegan",
			Options: []common.SubstitutionOption{
				opt("coconut oil",
					"1:1 substitution",
					"1 Tbsp = 14g",
					"Solid at room temperature. Good for baking."),
				opt("vegan butter",
					"1:1 substitution",
					"1 Tbsp = 14g",
					"Plant-based butter alternative. Melts like dairy butter."),
				opt("olive oil",
					"1 Tbsp butter = 3/4 Tbsp olive oil",
					"1 Tbsp = 15ml",
					"Liquid form. Good for sautéing and dressings."),
				opt("avocado",
					"1 Tbsp butter = 1/4 mashed avocado",
					"1 Tbsp = 14g",
					"Creamy texture. Good for spreads and some baking."),
			},
			ForbiddenTags: []string{"dairy", "animal-products"},
		},
		{
			Ingredient: "eggs",
			Diet:       "vegan",
			Options: []common.SubstitutionOption{
				opt("flax egg",
					"1 egg = 1 Tbsp ground flaxseed + 3 Tbsp water",
					"1 egg ≈ 50g",
					"Mix and let sit 5 minutes. Good for binding."),
				opt("chia egg",
					"1 egg = 1 Tbsp chia seeds + 3 Tbsp water",
					"1 egg ≈ 50g",
					"Mix and let sit 10 minutes. Similar to flax egg."),
				opt("applesauce",
					"1 egg = 1/4 cup applesauce",
					"1 egg ≈ 50g",
					"Adds moisture. Good for sweet baked goods."),
				opt("aquafaba",
					"1 egg = 3 Tbsp aquafaba (chickpea liquid)",
					"1 egg ≈ 50g",
					"Liquid from canned chickpeas. Great for meringues."),
			},
			ForbiddenTags: []string{"eggs", "animal-products"},
		},
		{
			Ingredient: "honey",
			Diet:       "vegan",
			Options: []common.SubstitutionOption{
				opt("maple syrup",
					"1:1 substitution",
					"1 Tbsp = 15ml",
					"Plant-based sweetener. Similar viscosity to honey."),
				opt("agave nectar",
					"1:1 substitution",
					"1 Tbsp = 15ml",
					"Sweeter than honey. Good for beverages."),
				opt("date syrup",
					"1:1 substitution",
					"1 Tbsp = 15ml",
					"Rich, caramel-like flavor. Made from dates."),
				opt("brown rice syrup",
					"1:1 substitution",
					"1 Tbsp = 15ml",
					"Mild flavor, less sweet than honey."),
			},
			ForbiddenTags: []string{"honey", "animal-products"},
		},

		// --- dairy-free ---
		{
			Ingredient: "milk",
			Diet:       "dairy-free",
			Options: []common.SubstitutionOption{
				opt("oat milk",
					"1:1 substitution",
					"1 cup ≈ 240ml",
					"Creamy texture, neutral flavor. Good for baking and cooking."),
				opt("almond milk",
					"1:1 substitution",
					"1 cup ≈ 240ml",
					"Light texture, slightly nutty flavor. Good for smoothies."),
				opt("coconut milk",
					"1:1 substitution",
					"1 cup ≈ 240ml",
					"Rich and creamy. Good for curries and desserts."),
				opt("soy milk",
					"1:1 substitution",
					"1 cup ≈ 240ml",
					"High protein content, neutral flavor."),
			},
			ForbiddenTags: []string{"dairy", "lactose"},
		},
		{
			Ingredient: "cheese",
			Diet:       "dairy-free",
			Options: []common.SubstitutionOption{
				opt("nutritional yeast",
					"1/4 cup cheese = 2-3 Tbsp nutritional yeast",
					"1 Tbsp ≈ 5g",
					"Cheesy flavor, high in B vitamins. Good for sprinkling."),
				opt("cashew cheese",
					"1:1 substitution",
					"1 cup ≈ 100g",
					"Creamy, made from soaked cashews. Good for spreads."),
				opt("coconut cream",
					"1 cup cheese = 1 cup coconut cream",
					"1 cup ≈ 240ml",
					"Rich and creamy. Good for sauces and desserts."),
				opt("dairy-free cheese",
					"1:1 substitution",
					"1 cup ≈ 100g",
					"Store-bought plant-based cheese alternatives."),
			},
			ForbiddenTags: []string{"dairy", "lactose"},
		},
		{
			Ingredient: "yogurt",
			Diet:       "dairy-free",
			Options: []common.SubstitutionOption{
				opt("coconut yogurt",
					"1:1 substitution",
					"1 cup ≈ 240ml",
					"Creamy texture, slightly coconut flavor."),
				opt("almond yogurt",
					"1:1 substitution",
					"1 cup ≈ 240ml",
					"Mild flavor, good protein content."),
				opt("soy yogurt",
					"1:1 substitution",
					"1 cup ≈ 240ml",
					"High protein, similar texture to dairy yogurt."),
				opt("cashew yogurt",
					"1:1 substitution",
					"1 cup ≈ 240ml",
					"Rich and creamy, made from soaked cashews."),
			},
			ForbiddenTags: []string{"dairy", "lactose"},
		},

		// --- paleo ---
		{
			Ingredient: "grains",
			Diet:       "paleo",
			Options: []common.SubstitutionOption{
				opt("cauliflower rice",
					"1 cup grains = 1 cup cauliflower rice",
					"1 cup ≈ 100g",
					"Low carb, high fiber. Sauté to remove moisture."),
				opt("sweet potato",
					"1 cup grains = 1 cup mashed sweet potato",
					"1 cup ≈ 200g",
					"Nutritious, naturally sweet. Good for side dishes."),
				opt("spaghetti squash",
					"1 cup pasta = 1 cup spaghetti squash",
					"1 cup ≈ 100g",
					"Stringy texture like pasta. Bake and scrape out strands."),
				opt("zucchini noodles",
					"1 cup pasta = 1 cup zucchini noodles",
					"1 cup ≈ 100g",
					"Fresh, light alternative. Use spiralizer or julienne."),
			},
			ForbiddenTags: []string{"grains", "gluten", "processed"},
		},
		{
			Ingredient: "legumes",
			Diet:       "paleo",
			Options: []common.SubstitutionOption{
				opt("nuts and seeds",
					"1 cup legumes = 1/2 cup mixed nuts/seeds",
					"1 cup ≈ 150g",
					"High protein and healthy fats. Good for snacking."),
				opt("mushrooms",
					"1 cup legumes = 1 cup sliced mushrooms",
					"1 cup ≈ 70g",
					"Meaty texture, umami flavor. Good for stir-fries."),
				opt("eggs",
					"1 cup legumes = 2-3 eggs",
					"1 egg ≈ 50g",
					"Complete protein source. Versatile cooking options."),
			},
			ForbiddenTags: []string{"legumes", "beans", "processed"},
		},
		{
			Ingredient: "granulated sugar",
			Diet:       "paleo",
			Options: []common.SubstitutionOption{
				opt("honey",
					"1 cup sugar = 3/4 cup honey",
					"1 cup ≈ 340g",
					"Natural unrefined sweetener. Reduce other liquids slightly."),
				opt("maple syrup",
					"1 cup sugar = 3/4 cup maple syrup",
					"1 cup ≈ 320g",
					"Pure maple only. Adds light caramel notes."),
				opt("coconut sugar",
					"1:1 substitution",
					"1 cup ≈ 150g",
					"Minimally processed. Mild caramel flavor."),
				opt("date paste",
					"1 cup sugar = 1 cup date paste",
					"1 cup ≈ 240g",
					"Blend soaked dates with water. Adds moisture to baked goods."),
			},
			ForbiddenTags: []string{"refined-sugar", "processed"},
		},

		// --- soy-free ---
		{
			Ingredient: "soy sauce",
			Diet:       "soy-free",
			Options: []common.SubstitutionOption{
				opt("coconut aminos",
					"1:1 substitution",
					"1 Tbsp = 15ml",
					"Made from coconut sap. Similar umami flavor."),
				opt("tamari (gluten-free soy sauce)",
					"1:1 substitution",
					"1 Tbsp = 15ml",
					"Gluten-free version of soy sauce."),
				opt("worcestershire sauce",
					"1 Tbsp soy sauce = 1 Tbsp worcestershire",
					"1 Tbsp = 15ml",
					"Tangy, umami flavor. Check for gluten content."),
				opt("fish sauce",
					"1 Tbsp soy sauce = 1 Tbsp fish sauce",
					"1 Tbsp = 15ml",
					"Strong umami flavor. Use sparingly."),
			},
			ForbiddenTags: []string{"soy", "legumes"},
		},
		{
			Ingredient: "tofu",
			Diet:       "soy-free",
			Options: []common.SubstitutionOption{
				opt("tempeh (if tolerated)",
					"1:1 substitution",
					"1 cup ≈ 150g",
					"Fermented soy product. Some people tolerate better than tofu."),
				opt("seitan",
					"1:1 substitution",
					"1 cup ≈ 150g",
					"Made from wheat gluten. High protein, meaty texture."),
				opt("mushrooms",
					"1 cup tofu = 1 cup sliced mushrooms",
					"1 cup ≈ 70g",
					"Meaty texture, absorbs flavors well."),
				opt("jackfruit",
					"1 cup tofu = 1 cup young jackfruit",
					"1 cup ≈ 150g",
					"Stringy texture, good for pulled 'meat' dishes."),
			},
			ForbiddenTags: []string{"soy", "legumes"},
		},

		// --- egg-free ---
		{
			Ingredient: "eggs",
			Diet:       "egg-free",
			Options: []common.SubstitutionOption{
				opt("flax egg",
					"1 egg = 1 Tbsp ground flaxseed + 3 Tbsp water",
					"1 egg ≈ 50g",
					"Mix and let sit 5 minutes. Good for binding."),
				opt("chia egg",
					"1 egg = 1 Tbsp chia seeds + 3 Tbsp water",
					"1 egg ≈ 50g",
					"Mix and let sit 10 minutes. Similar to flax egg."),
				opt("applesauce",
					"1 egg = 1/4 cup applesauce",
					"1 egg ≈ 50g",
					"Adds moisture. Good for sweet baked goods."),
				opt("banana",
					"1 egg = 1/2 mashed banana",
					"1 egg ≈ 50g",
					"Adds sweetness and moisture. Good for pancakes."),
			},
			ForbiddenTags: []string{"eggs", "allergen"},
		},

		// --- nut-free ---
		{
			Ingredient: "almond flour",
			Diet:       "nut-free",
			Options: []common.SubstitutionOption{
				opt("sunflower seed flour",
					"1:1 substitution",
					"1 cup ≈ 96g",
					"Similar protein content. May have green tint."),
				opt("pumpkin seed flour",
					"1:1 substitution",
					"1 cup ≈ 96g",
					"Rich in minerals. Slightly nutty flavor."),
				opt("oat flour (certified GF)",
					"1:1 substitution",
					"1 cup ≈ 120g",
					"Ensure certified gluten-free. Good binding properties."),
				opt("coconut flour",
					"1 cup almond flour = 1/4 cup coconut flour + extra eggs",
					"1 cup ≈ 120g",
					"Very absorbent. Use 4-6 eggs per cup."),
			},
			ForbiddenTags: []string{"nuts", "tree-nuts", "almonds"},
		},
		{
			Ingredient: "peanut butter",
			Diet:       "nut-free",
			Options: []common.SubstitutionOption{
				opt("sunflower seed butter",
					"1:1 substitution",
					"1 Tbsp ≈ 16g",
					"Similar texture and protein content."),
				opt("soy butter",
					"1:1 substitution",
					"1 Tbsp ≈ 16g",
					"Made from roasted soybeans. Check for allergens."),
				opt("tahini",
					"1:1 substitution",
					"1 Tbsp ≈ 16g",
					"Sesame seed paste. More savory, less sweet."),
			},
			ForbiddenTags: []string{"nuts", "peanuts", "tree-nuts"},
		},
	}
}

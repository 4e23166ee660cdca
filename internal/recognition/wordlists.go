package recognition

// Lexicon holds the curated word lists the disambiguator scores against.
// These are data, not logic: they are the main tuning surface, so they live
// here as a swappable value rather than inline in the scoring code.
type Lexicon struct {
	// BrandNames are chain/brand terms that must never be used as a
	// search query ("McDonald's" is not a dish).
	BrandNames []string

	// SpecificDishes are named dishes; a label containing one is the best
	// possible search term.
	SpecificDishes []string

	// CommonCategories are broad but searchable food categories; matched
	// by exact text or as the leading word of a phrase.
	CommonCategories []string

	// VeryGeneric are terms so broad they are useless as queries. Exactly
	// these seven are also skipped by the first fallback scan.
	VeryGeneric []string

	// ModeratelyGeneric are weak but not useless terms, matched by
	// substring.
	ModeratelyGeneric []string
}

// DefaultLexicon returns the built-in word lists.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		BrandNames: []string{
			"mcdonald", "burger king", "kfc", "subway", "starbucks",
			"domino", "pizza hut", "taco bell", "wendy", "chipotle",
			"dunkin", "popeyes", "five guys", "shake shack",
			"panda express", "chick-fil-a", "papa john", "nando",
			"tim horton", "dairy queen",
		},
		SpecificDishes: []string{
			"shawarma", "biryani", "ramen", "dumpling", "falafel",
			"burrito", "quesadilla", "enchilada", "taco", "pho",
			"pad thai", "tikka", "kebab", "gyro", "paella", "risotto",
			"lasagna", "carbonara", "gnocchi", "samosa", "dosa",
			"bibimbap", "tempura", "udon", "poutine", "ceviche",
			"hummus", "baklava", "tiramisu", "cheesecake", "croissant",
			"pancake", "waffle", "bagel", "pretzel", "churro", "crepe",
			"omelette", "donut", "doughnut", "curry", "fried rice",
			"spring roll", "chow mein", "butter chicken", "nachos",
			"tandoori", "katsu", "teriyaki", "schnitzel", "macaron",
		},
		CommonCategories: []string{
			"burger", "pizza", "sushi", "pasta", "salad", "sandwich",
			"soup", "steak", "seafood", "noodle", "fried chicken",
			"ice cream", "cake", "pie", "bread", "barbecue", "wrap",
			"rice dish", "smoothie", "milkshake",
		},
		VeryGeneric: []string{
			"food", "dish", "meal", "cuisine", "tableware", "plate",
			"ingredient",
		},
		ModeratelyGeneric: []string{
			"fast food", "side dish", "comfort food", "street food",
			"finger food", "staple food", "baked goods", "snack",
			"dessert", "junk food",
		},
	}
}

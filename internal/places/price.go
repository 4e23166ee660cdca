package places

// Provider price enum, mapped to the 0-4 scale the rest of the app uses.
var priceLevels = map[string]int{
	"PRICE_LEVEL_FREE":           0,
	"PRICE_LEVEL_INEXPENSIVE":    1,
	"PRICE_LEVEL_MODERATE":       2,
	"PRICE_LEVEL_EXPENSIVE":      3,
	"PRICE_LEVEL_VERY_EXPENSIVE": 4,
}

// NormalizePriceLevel maps the provider price enum to 0-4. Unrecognized
// input defaults to 2 (moderate); this never fails.
func NormalizePriceLevel(providerLevel string) int {
	if level, ok := priceLevels[providerLevel]; ok {
		return level
	}
	return 2
}

package recognition

import (
	"sort"
	"strings"
)

const UnknownFood = "Unknown food item"

// Specificity tier scores. The very-generic tier scores exactly 1 on
// purpose: the ranking step drops everything at or below 1, so those terms
// sit right on the exclusion boundary.
const (
	tierBrand             = 0
	tierVeryGeneric       = 1
	tierModeratelyGeneric = 10
	tierOneWord           = 50
	tierThreePlusWords    = 80
	tierTwoWords          = 100
	tierCategory          = 500
	tierDish              = 1000
)

// Fallback confidence attenuation. Tuned values the rest of the app
// depends on; do not "fix".
const (
	fallbackSkipGenericFactor = 0.5
	fallbackAnyLabelFactor    = 0.3
)

// Disambiguator turns a noisy multi-source label set into a single food
// name. Raw vision confidence is a poor proxy for a useful search term: a
// 95% "food" label is worthless while a 70% "shawarma" label is exactly
// what we want. The specificity multiplier re-ranks for usefulness; the
// confidence reported back stays the raw model score so the UI shows an
// honest "how sure are we" number.
type Disambiguator struct {
	lex *Lexicon
}

func NewDisambiguator(lex *Lexicon) *Disambiguator {
	if lex == nil {
		lex = DefaultLexicon()
	}
	return &Disambiguator{lex: lex}
}

// Disambiguate picks the single best food name from the label set.
// It never fails: with nothing usable it returns UnknownFood.
func (d *Disambiguator) Disambiguate(ls LabelSet) Identification {
	type scored struct {
		label    Label
		combined float64
	}

	merged := ls.Merged()
	candidates := make([]scored, 0, len(merged))

	for _, l := range merged {
		tier := d.specificity(l.Description)
		if tier <= tierVeryGeneric {
			continue
		}
		candidates = append(candidates, scored{
			label:    l,
			combined: float64(tier) * l.Score,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].combined > candidates[j].combined
	})

	if len(candidates) > 0 {
		top := candidates[0].label
		return Identification{
			FoodName:   top.Description,
			Confidence: top.Score,
		}
	}

	// Fallback 1: first plain label that is not one of the very-generic
	// terms, at half confidence.
	for _, l := range ls.Labels {
		if !d.isVeryGeneric(l.Description) {
			return Identification{
				FoodName:   l.Description,
				Confidence: l.Score * fallbackSkipGenericFactor,
			}
		}
	}

	// Fallback 2: first plain label regardless of genericity.
	if len(ls.Labels) > 0 {
		first := ls.Labels[0]
		return Identification{
			FoodName:   first.Description,
			Confidence: first.Score * fallbackAnyLabelFactor,
		}
	}

	return Identification{FoodName: UnknownFood, Confidence: 0}
}

// specificity classifies label text into exactly one tier. Checks run in
// priority order; the first match wins.
func (d *Disambiguator) specificity(text string) int {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return tierBrand
	}

	for _, brand := range d.lex.BrandNames {
		if strings.Contains(t, brand) {
			return tierBrand
		}
	}

	for _, dish := range d.lex.SpecificDishes {
		if strings.Contains(t, dish) {
			return tierDish
		}
	}

	for _, cat := range d.lex.CommonCategories {
		if t == cat || strings.HasPrefix(t, cat+" ") {
			return tierCategory
		}
	}

	if d.isVeryGeneric(t) {
		return tierVeryGeneric
	}

	for _, gen := range d.lex.ModeratelyGeneric {
		if strings.Contains(t, gen) {
			return tierModeratelyGeneric
		}
	}

	switch words := len(strings.Fields(t)); {
	case words >= 3:
		return tierThreePlusWords
	case words == 2:
		return tierTwoWords
	default:
		return tierOneWord
	}
}

func (d *Disambiguator) isVeryGeneric(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	for _, gen := range d.lex.VeryGeneric {
		if t == gen {
			return true
		}
	}
	return false
}

package recognition

// LabelSource identifies which vision feature produced a label.
type LabelSource string

const (
	SourceLabel     LabelSource = "LABEL"
	SourceWebEntity LabelSource = "WEB_ENTITY"
	SourceObject    LabelSource = "OBJECT"
)

// Label is a single text/score pair from the image recognition service.
type Label struct {
	Description string      `json:"description"`
	Score       float64     `json:"score"`
	Source      LabelSource `json:"source"`
}

// Identification is the disambiguator's answer: one food name plus the
// model's raw confidence in the winning label.
type Identification struct {
	FoodName   string  `json:"food_name"`
	Confidence float64 `json:"confidence"`
}

// LabelSet groups the three collections returned by one annotate call.
type LabelSet struct {
	Labels      []Label
	WebEntities []Label
	Objects     []Label
}

// Merged returns all labels in one list: labels, then web entities, then
// objects. Duplicate texts are kept; ranking compares them individually.
func (ls LabelSet) Merged() []Label {
	merged := make([]Label, 0, len(ls.Labels)+len(ls.WebEntities)+len(ls.Objects))
	merged = append(merged, ls.Labels...)
	merged = append(merged, ls.WebEntities...)
	merged = append(merged, ls.Objects...)
	return merged
}

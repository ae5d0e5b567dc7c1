package symptom

import "github.com/kissandost/backend/internal/model/guide"

// Symptom is one observable sign on a crop, with a preliminary call on
// what it means and what to do before an expert (or the AI) can look.
type Symptom struct {
	ID                string          `json:"id"`
	Description       guide.Localized `json:"description"`
	PossibleIssue     guide.Localized `json:"possibleIssue"`
	PreliminaryAction guide.Localized `json:"preliminaryAction"`
}

// CropSymptoms groups the known symptoms of a single crop.
type CropSymptoms struct {
	Crop     string    `json:"crop"`
	Symptoms []Symptom `json:"symptoms"`
}

// Matcher resolves crop/symptom selections offline, with no model call.
type Matcher struct {
	crops []CropSymptoms
}

// NewMatcher returns a Matcher over the supplied symptom tables.
func NewMatcher(crops []CropSymptoms) *Matcher {
	return &Matcher{crops: append([]CropSymptoms(nil), crops...)}
}

// Crops lists every crop the checker knows about.
func (m *Matcher) Crops() []CropSymptoms {
	return append([]CropSymptoms(nil), m.crops...)
}

// FindCrop returns the symptom table for a crop name.
func (m *Matcher) FindCrop(crop string) (CropSymptoms, bool) {
	for _, c := range m.crops {
		if c.Crop == crop {
			return c, true
		}
	}
	return CropSymptoms{}, false
}

// Match resolves a crop and symptom id to the matching entry.
func (m *Matcher) Match(crop, symptomID string) (Symptom, bool) {
	c, ok := m.FindCrop(crop)
	if !ok {
		return Symptom{}, false
	}
	for _, s := range c.Symptoms {
		if s.ID == symptomID {
			return s, true
		}
	}
	return Symptom{}, false
}

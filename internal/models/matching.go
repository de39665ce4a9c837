package models

// WizardMatchInput is the fully-defaulted matching request. The HTTP handler
// resolves every optional field once; the score calculator treats the value
// as immutable and never re-defaults.
type WizardMatchInput struct {
	CategoryID      string `json:"categoryId"`
	SubcategoryID   string `json:"subcategoryId"`
	SeverityScore   int    `json:"severityScore"`
	StyleStructure  string `json:"styleStructure"`  // structured | open | mixed | unsure
	StyleEngagement string `json:"styleEngagement"` // active | receptive | situational | unsure
	TherapyGoal     string `json:"therapyGoal"`     // symptom_relief | deep_understanding | both
	TimeOrientation string `json:"timeOrientation"` // present | past | holistic

	SessionType      string   `json:"sessionType"` // online | in_person | both | ""
	Insurance        []string `json:"insurance"`   // acceptable payer types (public, private, self_pay); empty means no constraint
	GenderPreference string   `json:"genderPreference"`
	Location         string   `json:"location"`
	SearchRadiusKM   int      `json:"searchRadius"` // reserved; proximity is city/postal based for now
	Languages        []string `json:"languages"`

	HadNegativeExperience bool `json:"hadNegativeExperience"`
}

// BucketScore pairs an achieved score with the bucket's maximum so clients
// can normalize each dimension independently.
type BucketScore struct {
	Score    float64 `json:"score"`
	MaxScore float64 `json:"maxScore"`
}

// ScoreBreakdown exposes every scoring bucket of a match.
type ScoreBreakdown struct {
	Specialization      BucketScore `json:"specialization"`
	TherapyStyle        BucketScore `json:"therapyStyle"`
	EvidenceBased       BucketScore `json:"evidenceBased"`
	IntensityExperience BucketScore `json:"intensityExperience"`
	PracticalCriteria   BucketScore `json:"practicalCriteria"`
	ProfileQuality      BucketScore `json:"profileQuality"`
}

// MatchReason is one human-readable justification for a match. Lower
// priority values are shown first.
type MatchReason struct {
	Type     string `json:"type"` // topic | style | availability | logistics | general
	TextDE   string `json:"textDE"`
	Priority int    `json:"priority"`
}

// MatchedTherapist is one ranked result of a matching run.
type MatchedTherapist struct {
	ID               int64          `json:"id"`
	Slug             string         `json:"slug"`
	Name             string         `json:"name"`
	ImageURL         string         `json:"imageUrl,omitempty"`
	ShortDescription string         `json:"shortDescription,omitempty"`
	City             string         `json:"city,omitempty"`
	SessionType      string         `json:"sessionType,omitempty"`
	ExperienceYears  int            `json:"experienceYears"`
	TotalScore       float64        `json:"totalScore"`
	MaxScore         float64        `json:"maxScore"`
	Breakdown        ScoreBreakdown `json:"scoreBreakdown"`
	MatchReasons     []MatchReason  `json:"matchReasons"`
}

// SituationAnalysis is the combined output of the rules-based detectors over
// one free-text description.
type SituationAnalysis struct {
	Language             string   `json:"language"`
	CrisisDetected       bool     `json:"crisisDetected"`
	CrisisType           string   `json:"crisisType,omitempty"`
	MatchedKeyword       string   `json:"matchedKeyword,omitempty"`
	Topics               []string `json:"topics"`
	SubTopics            []string `json:"subTopics"`
	SuggestedSpecialties []string `json:"suggestedSpecialties"`
	Intensity            string   `json:"intensity"`
	Methods              []string `json:"methods"`
	CommunicationStyle   string   `json:"communicationStyle,omitempty"`
	TherapyFocus         string   `json:"therapyFocus,omitempty"`
}

package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/philippoppel/TheraMatchBack/internal/models"
	"github.com/philippoppel/TheraMatchBack/internal/taxonomy"
)

// DefaultMatchLimit is used when the caller passes a non-positive limit.
const DefaultMatchLimit = 3

type TherapistSource interface {
	ListForMatching(ctx context.Context) ([]models.TherapistForMatching, error)
}

// ScoreWeights sets the maximum points per scoring bucket. Topic and style
// carry the ranking; the remaining buckets are bounded bonuses.
type ScoreWeights struct {
	TopicFit            float64
	StyleFit            float64
	EvidenceBased       float64
	IntensityExperience float64
	PracticalCriteria   float64
	ProfileQuality      float64
}

// DefaultScoreWeights returns the production weighting (bounded total 145).
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		TopicFit:            60,
		StyleFit:            35,
		EvidenceBased:       25,
		IntensityExperience: 10,
		PracticalCriteria:   10,
		ProfileQuality:      5,
	}
}

// Total returns the maximum achievable score.
func (w ScoreWeights) Total() float64 {
	return w.TopicFit + w.StyleFit + w.EvidenceBased + w.IntensityExperience + w.PracticalCriteria + w.ProfileQuality
}

// Validate rejects non-positive weights and weightings where the bonus
// buckets could outweigh topic and style fit.
func (w ScoreWeights) Validate() error {
	named := []struct {
		name  string
		value float64
	}{
		{"topic fit", w.TopicFit},
		{"style fit", w.StyleFit},
		{"evidence based", w.EvidenceBased},
		{"intensity experience", w.IntensityExperience},
		{"practical criteria", w.PracticalCriteria},
		{"profile quality", w.ProfileQuality},
	}
	for _, nw := range named {
		if nw.value <= 0 {
			return fmt.Errorf("%s weight must be positive, got %v", nw.name, nw.value)
		}
	}

	bonus := w.EvidenceBased + w.IntensityExperience + w.PracticalCriteria + w.ProfileQuality
	if w.TopicFit+w.StyleFit < bonus {
		return fmt.Errorf("topic and style weights (%v) must not be outweighed by bonus buckets (%v)", w.TopicFit+w.StyleFit, bonus)
	}

	return nil
}

type MatchingService struct {
	therapists TherapistSource
	weights    ScoreWeights
}

func NewMatchingService(therapists TherapistSource, weights ScoreWeights) (*MatchingService, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &MatchingService{therapists: therapists, weights: weights}, nil
}

// MatchResult is the outcome of one matching run. Total counts all
// candidates considered, Filtered those that survived the hard filters.
type MatchResult struct {
	Matches  []models.MatchedTherapist
	Total    int
	Filtered int
}

// MatchTherapists loads the candidate pool and ranks it against the input.
// A crisis category short-circuits to an empty result: the caller owns the
// crisis flow and must not present regular matches.
func (s *MatchingService) MatchTherapists(ctx context.Context, input models.WizardMatchInput, limit int) (MatchResult, error) {
	if taxonomy.IsCrisisCategory(input.CategoryID) {
		return MatchResult{Matches: []models.MatchedTherapist{}}, nil
	}

	therapists, err := s.therapists.ListForMatching(ctx)
	if err != nil {
		return MatchResult{}, err
	}

	matches, filtered := s.RankTherapists(therapists, input, limit)
	return MatchResult{Matches: matches, Total: len(therapists), Filtered: filtered}, nil
}

// RankTherapists scores the candidates, orders them, and returns the top
// limit entries plus the number that passed the hard filters. Ordering is
// total score descending, then experience years descending, then id
// ascending, so equal inputs always produce the same ranking.
func (s *MatchingService) RankTherapists(
	therapists []models.TherapistForMatching,
	input models.WizardMatchInput,
	limit int,
) ([]models.MatchedTherapist, int) {
	if limit <= 0 {
		limit = DefaultMatchLimit
	}

	scored := make([]models.MatchedTherapist, 0, len(therapists))
	for _, t := range therapists {
		if !passesHardFilters(t, input) {
			continue
		}
		scored = append(scored, s.scoreTherapist(t, input))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].TotalScore != scored[j].TotalScore {
			return scored[i].TotalScore > scored[j].TotalScore
		}
		if scored[i].ExperienceYears != scored[j].ExperienceYears {
			return scored[i].ExperienceYears > scored[j].ExperienceYears
		}
		return scored[i].ID < scored[j].ID
	})

	filtered := len(scored)
	if len(scored) > limit {
		scored = scored[:limit]
	}

	return scored, filtered
}

// passesHardFilters applies the pre-scoring gates: therapist-side topic
// exclusions, session type compatibility, and insurance acceptance.
func passesHardFilters(t models.TherapistForMatching, input models.WizardMatchInput) bool {
	if len(t.ExcludedTopics) > 0 {
		if input.CategoryID != "" && containsString(t.ExcludedTopics, input.CategoryID) {
			return false
		}
		if input.SubcategoryID != "" && containsString(t.ExcludedTopics, input.SubcategoryID) {
			return false
		}
	}

	// "both" and an empty session type mean the client takes whatever the
	// therapist offers, so only concrete preferences filter.
	switch input.SessionType {
	case "online", "in_person":
		if t.SessionType != input.SessionType && t.SessionType != "both" {
			return false
		}
	}

	if len(input.Insurance) > 0 {
		accepted := false
		for _, payer := range input.Insurance {
			if containsString(t.Insurance, payer) {
				accepted = true
				break
			}
		}
		if !accepted {
			return false
		}
	}

	return true
}

func (s *MatchingService) scoreTherapist(t models.TherapistForMatching, input models.WizardMatchInput) models.MatchedTherapist {
	w := s.weights

	topicPoints, topicReasons := scoreTopicFit(t, input, w.TopicFit)
	stylePoints, styleReasons := scoreStyleFit(t, input, w.StyleFit)
	evidencePoints, evidenceReasons := scoreEvidenceBased(t, input, w.EvidenceBased)
	intensityPoints := scoreIntensityExperience(t, input, w.IntensityExperience)
	practicalPoints, practicalReasons := scorePracticalCriteria(t, input, w.PracticalCriteria)
	qualityPoints := scoreProfileQuality(t, w.ProfileQuality)
	stanceReasons := therapeuticStanceReasons(t, input)

	total := topicPoints + stylePoints + evidencePoints + intensityPoints + practicalPoints + qualityPoints

	reasons := make([]models.MatchReason, 0, 8)
	reasons = append(reasons, evidenceReasons...)
	reasons = append(reasons, topicReasons...)
	reasons = append(reasons, styleReasons...)
	reasons = append(reasons, stanceReasons...)
	reasons = append(reasons, practicalReasons...)

	sort.SliceStable(reasons, func(i, j int) bool {
		return reasons[i].Priority < reasons[j].Priority
	})
	if len(reasons) > 3 {
		reasons = reasons[:3]
	}
	if len(reasons) == 0 {
		reasons = []models.MatchReason{{Type: "general", TextDE: "Qualifizierte Therapeut:in", Priority: 10}}
	}

	return models.MatchedTherapist{
		ID:               t.ID,
		Slug:             t.Slug,
		Name:             t.Name,
		ImageURL:         t.ImageURL,
		ShortDescription: t.ShortDescription,
		City:             t.City,
		SessionType:      t.SessionType,
		ExperienceYears:  t.ExperienceYears,
		TotalScore:       total,
		MaxScore:         w.Total(),
		Breakdown: models.ScoreBreakdown{
			Specialization:      models.BucketScore{Score: topicPoints, MaxScore: w.TopicFit},
			TherapyStyle:        models.BucketScore{Score: stylePoints, MaxScore: w.StyleFit},
			EvidenceBased:       models.BucketScore{Score: evidencePoints, MaxScore: w.EvidenceBased},
			IntensityExperience: models.BucketScore{Score: intensityPoints, MaxScore: w.IntensityExperience},
			PracticalCriteria:   models.BucketScore{Score: practicalPoints, MaxScore: w.PracticalCriteria},
			ProfileQuality:      models.BucketScore{Score: qualityPoints, MaxScore: w.ProfileQuality},
		},
		MatchReasons: reasons,
	}
}

// specializationCategories maps legacy specialty slugs onto wizard category
// ids, used when a therapist has no curated wizard categories yet.
var specializationCategories = map[string][]string{
	"anxiety":          {"anxiety_panic"},
	"panic":            {"anxiety_panic"},
	"depression":       {"depression_emptiness"},
	"burnout":          {"stress_burnout"},
	"stress":           {"stress_burnout"},
	"trauma":           {"trauma_ptsd"},
	"relationships":    {"family_relationships"},
	"family":           {"family_relationships"},
	"couples":          {"family_relationships"},
	"addiction":        {"addiction"},
	"eating_disorders": {"eating_disorders"},
	"adhd":             {"attention"},
	"children":         {"school_learning"},
	"psychosomatic":    {"psychosomatic"},
	"grief":            {"grief_loss"},
	"ocd":              {"ocd"},
	"sexuality":        {"sexuality"},
	"chronic_illness":  {"chronic_illness"},
}

var specialtyLabels = map[string]string{
	"anxiety":          "Angst",
	"depression":       "Depression",
	"burnout":          "Burnout",
	"trauma":           "Trauma",
	"relationships":    "Beziehungen",
	"stress":           "Stress",
	"addiction":        "Sucht",
	"eating_disorders": "Essstörungen",
	"adhd":             "ADHS",
	"grief":            "Trauer",
	"ocd":              "Zwangsstörungen",
	"psychosomatic":    "Psychosomatik",
}

func effectiveCategories(t models.TherapistForMatching) []string {
	if len(t.WizardCategories) > 0 {
		return t.WizardCategories
	}

	seen := make(map[string]bool)
	var mapped []string
	for _, spec := range t.Specializations {
		for _, cat := range specializationCategories[spec] {
			if !seen[cat] {
				seen[cat] = true
				mapped = append(mapped, cat)
			}
		}
	}
	return mapped
}

// scoreTopicFit grades how well the therapist covers the selected concern.
// An unresolvable category id yields zero rather than an error.
func scoreTopicFit(t models.TherapistForMatching, input models.WizardMatchInput, weight float64) (float64, []models.MatchReason) {
	category := taxonomy.CategoryByID(input.CategoryID)
	if category == nil {
		return 0, nil
	}

	var reasons []models.MatchReason
	categories := effectiveCategories(t)

	var fraction float64
	switch {
	case containsString(categories, input.CategoryID):
		if input.SubcategoryID != "" && containsString(t.WizardSubcategories, input.SubcategoryID) {
			fraction = 1.0
			reasons = append(reasons, models.MatchReason{Type: "topic", TextDE: "Spezialisiert auf " + category.LabelDE, Priority: 1})
		} else {
			fraction = 0.75
			reasons = append(reasons, models.MatchReason{Type: "topic", TextDE: "Erfahrung mit " + category.LabelDE, Priority: 1})
		}
	case len(categories) > 0:
		// Works in other areas: partial credit for general expertise.
		fraction = 0.40
		if len(t.Specializations) > 0 {
			label := t.Specializations[0]
			if known, ok := specialtyLabels[label]; ok {
				label = known
			}
			reasons = append(reasons, models.MatchReason{Type: "topic", TextDE: "Erfahrung mit " + label, Priority: 2})
		}
	default:
		fraction = 0.20
	}

	return fraction * weight, reasons
}

// scoreStyleFit grades structure and engagement preferences on two axes and
// averages them. Without any preference everyone gets a 70% baseline.
func scoreStyleFit(t models.TherapistForMatching, input models.WizardMatchInput, weight float64) (float64, []models.MatchReason) {
	hasStructurePref := input.StyleStructure != "" && input.StyleStructure != "unsure"
	hasEngagementPref := input.StyleEngagement != "" && input.StyleEngagement != "unsure"

	if !hasStructurePref && !hasEngagementPref {
		return 0.70 * weight, nil
	}

	var reasons []models.MatchReason
	structureScore, engagementScore := 50.0, 50.0

	if hasStructurePref {
		switch {
		case t.PrimaryStyleStructure == "":
			// Unspecified reads as flexible.
			if input.StyleStructure == "mixed" {
				structureScore = 80
			} else {
				structureScore = 60
			}
		case t.PrimaryStyleStructure == input.StyleStructure:
			structureScore = 100
			label := "flexiblem Stil"
			switch input.StyleStructure {
			case "structured":
				label = "strukturiertem Ansatz"
			case "open":
				label = "freiem Gespräch"
			}
			reasons = append(reasons, models.MatchReason{Type: "style", TextDE: "Passt zu Ihrem Wunsch nach " + label, Priority: 2})
		case t.PrimaryStyleStructure == "mixed" || input.StyleStructure == "mixed":
			structureScore = 75
		default:
			structureScore = 40
		}
	}

	if hasEngagementPref {
		switch {
		case t.PrimaryStyleEngagement == "":
			if input.StyleEngagement == "situational" {
				engagementScore = 80
			} else {
				engagementScore = 60
			}
		case t.PrimaryStyleEngagement == input.StyleEngagement:
			engagementScore = 100
			if len(reasons) == 0 {
				label := "situativer Anpassung"
				switch input.StyleEngagement {
				case "active":
					label = "aktiver Begleitung"
				case "receptive":
					label = "zuhörender Haltung"
				}
				reasons = append(reasons, models.MatchReason{Type: "style", TextDE: "Bietet " + label, Priority: 2})
			}
		case t.PrimaryStyleEngagement == "situational" || input.StyleEngagement == "situational":
			engagementScore = 75
		default:
			engagementScore = 40
		}
	}

	var score float64
	switch {
	case hasStructurePref && hasEngagementPref:
		score = (structureScore + engagementScore) / 2
	case hasStructurePref:
		score = structureScore
	default:
		score = engagementScore
	}

	return score / 100 * weight, reasons
}

// scoreEvidenceBased grades therapy goal and time orientation fit (60% of
// the bucket) and adds a supportive-stance bonus (40%) for clients with a
// negative therapy history matched to a holding or validating therapist.
func scoreEvidenceBased(t models.TherapistForMatching, input models.WizardMatchInput, weight float64) (float64, []models.MatchReason) {
	var reasons []models.MatchReason
	goalScore, focusScore := 50.0, 50.0

	if input.TherapyGoal != "" {
		expectedDepth := map[string]string{
			"symptom_relief":     "symptom_relief",
			"deep_understanding": "deep_change",
			"both":               "flexible",
		}[input.TherapyGoal]

		switch {
		case t.TherapyDepth == "" || t.TherapyDepth == "flexible":
			if input.TherapyGoal == "both" {
				goalScore = 90
			} else {
				goalScore = 70
			}
		case t.TherapyDepth == expectedDepth:
			goalScore = 100
			label := "Ganzheitlicher Ansatz"
			switch input.TherapyGoal {
			case "symptom_relief":
				label = "Fokus auf Symptomlinderung"
			case "deep_understanding":
				label = "Tiefgreifende Veränderung"
			}
			reasons = append(reasons, models.MatchReason{Type: "style", TextDE: label, Priority: 1})
		default:
			goalScore = 35
		}
	}

	if input.TimeOrientation != "" {
		switch {
		case t.TherapyFocus == "" || t.TherapyFocus == "holistic":
			if input.TimeOrientation == "holistic" {
				focusScore = 90
			} else {
				focusScore = 70
			}
		case t.TherapyFocus == input.TimeOrientation:
			focusScore = 100
			if len(reasons) == 0 {
				label := "Ganzheitliche Betrachtung"
				switch input.TimeOrientation {
				case "present":
					label = "Gegenwartsorientierter Ansatz"
				case "past":
					label = "Biografiearbeit"
				}
				reasons = append(reasons, models.MatchReason{Type: "style", TextDE: label, Priority: 2})
			}
		case input.TimeOrientation == "holistic":
			focusScore = 75
		default:
			focusScore = 40
		}
	}

	fitPoints := (goalScore + focusScore) / 2 / 100 * (weight * 0.6)

	var bonus float64
	if input.HadNegativeExperience && (containsString(t.TherapeuticStance, "holding") || containsString(t.TherapeuticStance, "validating")) {
		bonus = weight * 0.4
	}

	return fitPoints + bonus, reasons
}

// scoreIntensityExperience rewards experience in proportion to severity.
// Severity bands: below 4 low, 4-7 medium, 8 and up high.
func scoreIntensityExperience(t models.TherapistForMatching, input models.WizardMatchInput, weight float64) float64 {
	severity := input.SeverityScore
	exp := t.ExperienceYears

	var fraction float64
	switch {
	case severity < 4:
		fraction = 1.0
	case severity < 8:
		switch {
		case exp >= 5:
			fraction = 1.0
		case exp >= 2:
			fraction = 0.8
		default:
			fraction = 0.65
		}
	default:
		switch {
		case exp >= 10:
			fraction = 1.0
		case exp >= 5:
			fraction = 0.8
		case exp >= 2:
			fraction = 0.55
		default:
			fraction = 0.25
		}
	}

	return fraction * weight
}

var genderReasonLabels = map[string]string{
	"female":  "Weibliche Therapeutin",
	"male":    "Männlicher Therapeut",
	"diverse": "Diverse:r Therapeut:in",
}

var languageLabels = map[string]string{
	"en": "Englisch",
	"tr": "Türkisch",
	"ar": "Arabisch",
	"ru": "Russisch",
	"pl": "Polnisch",
	"uk": "Ukrainisch",
	"fa": "Persisch",
	"es": "Spanisch",
	"fr": "Französisch",
}

// scorePracticalCriteria blends availability (40%) with location, language
// and gender preference fit (20% each). Absent preferences earn full credit
// so nobody is punished for an unconstrained search.
func scorePracticalCriteria(t models.TherapistForMatching, input models.WizardMatchInput, weight float64) (float64, []models.MatchReason) {
	var reasons []models.MatchReason

	availability := 0.5
	switch t.Availability {
	case "immediately":
		availability = 1.0
		reasons = append(reasons, models.MatchReason{Type: "availability", TextDE: "Kurzfristig verfügbar", Priority: 3})
	case "this_week":
		availability = 0.8
		reasons = append(reasons, models.MatchReason{Type: "availability", TextDE: "Diese Woche verfügbar", Priority: 3})
	case "flexible":
		availability = 0.6
	}

	location := 1.0
	if input.Location != "" && input.SessionType != "online" {
		if locationMatches(t, input.Location) {
			if t.City != "" {
				reasons = append(reasons, models.MatchReason{Type: "logistics", TextDE: "Praxis in " + t.City, Priority: 4})
			}
		} else {
			location = 0
		}
	}

	language := 1.0
	if len(input.Languages) > 0 {
		offered := t.Languages
		if len(offered) == 0 {
			offered = []string{"de"}
		}
		matched := ""
		for _, lang := range input.Languages {
			if containsString(offered, lang) {
				matched = lang
				break
			}
		}
		if matched == "" {
			language = 0
		} else {
			label, ok := languageLabels[matched]
			if !ok {
				label = strings.ToUpper(matched)
			}
			reasons = append(reasons, models.MatchReason{Type: "logistics", TextDE: "Spricht " + label, Priority: 4})
		}
	}

	gender := 1.0
	if input.GenderPreference != "" {
		if t.Gender == input.GenderPreference {
			if label, ok := genderReasonLabels[input.GenderPreference]; ok {
				reasons = append(reasons, models.MatchReason{Type: "logistics", TextDE: label, Priority: 4})
			}
		} else {
			gender = 0
		}
	}

	points := weight * (0.4*availability + 0.2*location + 0.2*language + 0.2*gender)
	return points, reasons
}

// locationMatches checks city containment in either direction and a shared
// two-digit postal prefix. Proper geocoded distance is out of scope for now.
func locationMatches(t models.TherapistForMatching, location string) bool {
	loc := strings.ToLower(strings.TrimSpace(location))
	if loc == "" {
		return false
	}
	city := strings.ToLower(t.City)
	plz := t.PostalCode

	if city != "" && (strings.Contains(city, loc) || strings.Contains(loc, city)) {
		return true
	}
	if len(plz) >= 2 && len(loc) >= 2 && (strings.HasPrefix(plz, loc[:2]) || strings.HasPrefix(loc, plz[:2])) {
		return true
	}
	return false
}

// scoreProfileQuality rewards complete profiles: a photo, a substantive
// description, and stated experience.
func scoreProfileQuality(t models.TherapistForMatching, weight float64) float64 {
	fraction := 0.0
	if strings.TrimSpace(t.ImageURL) != "" {
		fraction += 0.4
	}
	if len(t.ShortDescription) > 50 {
		fraction += 0.4
	}
	if t.ExperienceYears > 0 {
		fraction += 0.2
	}
	return fraction * weight
}

var stanceLabels = map[string]string{
	"explaining":  "Erklärender Ansatz",
	"holding":     "Haltende Begleitung",
	"challenging": "Herausfordernde Impulse",
	"validating":  "Validierende Haltung",
	"structuring": "Strukturgebend",
}

// therapeuticStanceReasons derives at most one stance-based reason. Clients
// with a negative therapy history take precedence and get the supportive
// stance surfaced with top priority.
func therapeuticStanceReasons(t models.TherapistForMatching, input models.WizardMatchInput) []models.MatchReason {
	stances := t.TherapeuticStance
	if len(stances) == 0 {
		return nil
	}

	if input.HadNegativeExperience {
		if containsString(stances, "holding") {
			return []models.MatchReason{{Type: "style", TextDE: "Einfühlsame, haltende Begleitung", Priority: 1}}
		}
		if containsString(stances, "validating") {
			return []models.MatchReason{{Type: "style", TextDE: "Validierende, unterstützende Haltung", Priority: 1}}
		}
	}

	var reasons []models.MatchReason
	if input.TherapyGoal == "symptom_relief" {
		if containsString(stances, "structuring") {
			reasons = append(reasons, models.MatchReason{Type: "style", TextDE: stanceLabels["structuring"], Priority: 3})
		} else if containsString(stances, "explaining") {
			reasons = append(reasons, models.MatchReason{Type: "style", TextDE: stanceLabels["explaining"], Priority: 3})
		}
	}
	if input.TherapyGoal == "deep_understanding" {
		if containsString(stances, "holding") {
			reasons = append(reasons, models.MatchReason{Type: "style", TextDE: stanceLabels["holding"], Priority: 3})
		} else if containsString(stances, "validating") {
			reasons = append(reasons, models.MatchReason{Type: "style", TextDE: stanceLabels["validating"], Priority: 3})
		}
	}
	if input.StyleEngagement == "active" && containsString(stances, "challenging") {
		reasons = append(reasons, models.MatchReason{Type: "style", TextDE: stanceLabels["challenging"], Priority: 3})
	}
	if input.StyleEngagement == "receptive" && containsString(stances, "validating") {
		duplicate := false
		for _, r := range reasons {
			if r.TextDE == stanceLabels["validating"] {
				duplicate = true
				break
			}
		}
		if !duplicate {
			reasons = append(reasons, models.MatchReason{Type: "style", TextDE: stanceLabels["validating"], Priority: 3})
		}
	}

	if len(reasons) > 1 {
		reasons = reasons[:1]
	}
	return reasons
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

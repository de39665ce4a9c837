package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/philippoppel/TheraMatchBack/internal/models"
)

type stubTherapistSource struct {
	therapists []models.TherapistForMatching
	err        error
}

func (s *stubTherapistSource) ListForMatching(_ context.Context) ([]models.TherapistForMatching, error) {
	return s.therapists, s.err
}

func newTestMatchingService(t *testing.T, therapists []models.TherapistForMatching) *MatchingService {
	t.Helper()
	service, err := NewMatchingService(&stubTherapistSource{therapists: therapists}, DefaultScoreWeights())
	if err != nil {
		t.Fatalf("NewMatchingService: %v", err)
	}
	return service
}

func buildTherapist(id int64, categories, subcategories []string, sessionType string, experience int) models.TherapistForMatching {
	return models.TherapistForMatching{
		ID:                  id,
		Slug:                fmt.Sprintf("therapist-%d", id),
		Name:                fmt.Sprintf("Therapist %d", id),
		SessionType:         sessionType,
		ExperienceYears:     experience,
		WizardCategories:    categories,
		WizardSubcategories: subcategories,
		Insurance:           []string{"public", "private"},
		Availability:        "flexible",
	}
}

func TestMatchTherapistsRanksBySpecializationDepth(t *testing.T) {
	exact := buildTherapist(1, []string{"anxiety_panic"}, []string{"panic_attacks"}, "online", 8)
	categoryOnly := buildTherapist(2, []string{"anxiety_panic"}, nil, "online", 8)
	mapped := buildTherapist(3, nil, nil, "online", 8)
	mapped.Specializations = []string{"depression"}

	service := newTestMatchingService(t, []models.TherapistForMatching{mapped, categoryOnly, exact})

	result, err := service.MatchTherapists(context.Background(), models.WizardMatchInput{
		CategoryID:    "anxiety_panic",
		SubcategoryID: "panic_attacks",
		SeverityScore: 5,
		SessionType:   "online",
	}, 3)
	if err != nil {
		t.Fatalf("MatchTherapists: %v", err)
	}

	if result.Total != 3 || result.Filtered != 3 {
		t.Fatalf("expected total 3 and filtered 3, got %d and %d", result.Total, result.Filtered)
	}
	if len(result.Matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(result.Matches))
	}
	if result.Matches[0].ID != 1 || result.Matches[1].ID != 2 || result.Matches[2].ID != 3 {
		t.Fatalf("unexpected ranking: %d, %d, %d", result.Matches[0].ID, result.Matches[1].ID, result.Matches[2].ID)
	}

	if got := result.Matches[0].MatchReasons[0].TextDE; got != "Spezialisiert auf Angst & Panik" {
		t.Fatalf("expected specialization reason first, got %q", got)
	}
	if got := result.Matches[1].MatchReasons[0].TextDE; got != "Erfahrung mit Angst & Panik" {
		t.Fatalf("expected category experience reason, got %q", got)
	}
	if got := result.Matches[2].MatchReasons[0].TextDE; got != "Erfahrung mit Depression" {
		t.Fatalf("expected mapped specialty reason, got %q", got)
	}

	top := result.Matches[0]
	if top.Breakdown.Specialization.Score != top.Breakdown.Specialization.MaxScore {
		t.Fatalf("exact subcategory match should max the specialization bucket, got %v of %v",
			top.Breakdown.Specialization.Score, top.Breakdown.Specialization.MaxScore)
	}
	if top.TotalScore > top.MaxScore {
		t.Fatalf("total %v exceeds max %v", top.TotalScore, top.MaxScore)
	}
}

func TestMatchTherapistsCrisisCategoryReturnsNoMatches(t *testing.T) {
	service := newTestMatchingService(t, []models.TherapistForMatching{
		buildTherapist(1, []string{"anxiety_panic"}, nil, "online", 8),
	})

	result, err := service.MatchTherapists(context.Background(), models.WizardMatchInput{
		CategoryID:  "crisis",
		SessionType: "online",
	}, 3)
	if err != nil {
		t.Fatalf("MatchTherapists: %v", err)
	}
	if len(result.Matches) != 0 || result.Total != 0 || result.Filtered != 0 {
		t.Fatalf("expected empty result for crisis category, got %+v", result)
	}
}

func TestMatchTherapistsAppliesHardFilters(t *testing.T) {
	wrongSession := buildTherapist(1, []string{"anxiety_panic"}, nil, "online", 8)
	excluded := buildTherapist(2, []string{"anxiety_panic"}, nil, "in_person", 8)
	excluded.ExcludedTopics = []string{"anxiety_panic"}
	wrongInsurance := buildTherapist(3, []string{"anxiety_panic"}, nil, "in_person", 8)
	wrongInsurance.Insurance = []string{"private"}
	accepted := buildTherapist(4, []string{"anxiety_panic"}, nil, "both", 8)

	service := newTestMatchingService(t, []models.TherapistForMatching{wrongSession, excluded, wrongInsurance, accepted})

	result, err := service.MatchTherapists(context.Background(), models.WizardMatchInput{
		CategoryID:    "anxiety_panic",
		SeverityScore: 5,
		SessionType:   "in_person",
		Insurance:     []string{"public"},
	}, 3)
	if err != nil {
		t.Fatalf("MatchTherapists: %v", err)
	}

	if result.Total != 4 {
		t.Fatalf("expected total 4, got %d", result.Total)
	}
	if result.Filtered != 1 {
		t.Fatalf("expected 1 therapist past the hard filters, got %d", result.Filtered)
	}
	if len(result.Matches) != 1 || result.Matches[0].ID != 4 {
		t.Fatalf("expected only therapist 4 to match, got %+v", result.Matches)
	}
}

func TestRankTherapistsInsuranceListIntersects(t *testing.T) {
	publicOnly := buildTherapist(1, []string{"anxiety_panic"}, nil, "online", 8)
	publicOnly.Insurance = []string{"public"}
	selfPayOnly := buildTherapist(2, []string{"anxiety_panic"}, nil, "online", 8)
	selfPayOnly.Insurance = []string{"self_pay"}

	service := newTestMatchingService(t, nil)
	pool := []models.TherapistForMatching{publicOnly, selfPayOnly}

	matches, filtered := service.RankTherapists(pool, models.WizardMatchInput{
		CategoryID:  "anxiety_panic",
		SessionType: "online",
		Insurance:   []string{"private", "self_pay"},
	}, 3)
	if filtered != 1 || len(matches) != 1 || matches[0].ID != 2 {
		t.Fatalf("expected only the self_pay therapist to survive, got %+v", matches)
	}

	// An empty list means the seeker has no payer constraint at all.
	matches, filtered = service.RankTherapists(pool, models.WizardMatchInput{
		CategoryID:  "anxiety_panic",
		SessionType: "online",
	}, 3)
	if filtered != 2 || len(matches) != 2 {
		t.Fatalf("expected both therapists without a payer constraint, got %d of %d", len(matches), filtered)
	}
}

func TestRankTherapistsBothSessionTypeMatchesEveryone(t *testing.T) {
	onlineOnly := buildTherapist(1, []string{"anxiety_panic"}, nil, "online", 8)
	inPersonOnly := buildTherapist(2, []string{"anxiety_panic"}, nil, "in_person", 8)
	hybrid := buildTherapist(3, []string{"anxiety_panic"}, nil, "both", 8)

	service := newTestMatchingService(t, nil)
	pool := []models.TherapistForMatching{onlineOnly, inPersonOnly, hybrid}

	// A seeker open to both formats accepts whatever the therapist offers.
	matches, filtered := service.RankTherapists(pool, models.WizardMatchInput{
		CategoryID:  "anxiety_panic",
		SessionType: "both",
	}, 3)
	if filtered != 3 || len(matches) != 3 {
		t.Fatalf("expected all 3 therapists eligible, got %d of %d", len(matches), filtered)
	}

	matches, filtered = service.RankTherapists(pool, models.WizardMatchInput{
		CategoryID:  "anxiety_panic",
		SessionType: "online",
	}, 3)
	if filtered != 2 {
		t.Fatalf("expected online preference to drop the in-person therapist, got %d", filtered)
	}
	for _, m := range matches {
		if m.ID == 2 {
			t.Fatalf("in-person therapist should not match an online preference")
		}
	}
}

func TestRankTherapistsDefaultsLimitToThree(t *testing.T) {
	var pool []models.TherapistForMatching
	for i := int64(1); i <= 5; i++ {
		pool = append(pool, buildTherapist(i, []string{"anxiety_panic"}, nil, "online", int(i)))
	}
	service := newTestMatchingService(t, nil)

	matches, filtered := service.RankTherapists(pool, models.WizardMatchInput{
		CategoryID:  "anxiety_panic",
		SessionType: "online",
	}, 0)

	if filtered != 5 {
		t.Fatalf("expected 5 filtered, got %d", filtered)
	}
	if len(matches) != DefaultMatchLimit {
		t.Fatalf("expected default limit of %d, got %d", DefaultMatchLimit, len(matches))
	}
}

func TestRankTherapistsTieBreaksByExperienceThenID(t *testing.T) {
	// Severity below 4 means experience does not move the score, so all
	// three land on the same total.
	junior := buildTherapist(1, []string{"anxiety_panic"}, nil, "online", 3)
	seniorHighID := buildTherapist(9, []string{"anxiety_panic"}, nil, "online", 9)
	seniorLowID := buildTherapist(2, []string{"anxiety_panic"}, nil, "online", 9)

	service := newTestMatchingService(t, nil)
	matches, _ := service.RankTherapists(
		[]models.TherapistForMatching{junior, seniorHighID, seniorLowID},
		models.WizardMatchInput{CategoryID: "anxiety_panic", SeverityScore: 2, SessionType: "online"},
		3,
	)

	if matches[0].TotalScore != matches[1].TotalScore || matches[1].TotalScore != matches[2].TotalScore {
		t.Fatalf("expected equal totals, got %v, %v, %v", matches[0].TotalScore, matches[1].TotalScore, matches[2].TotalScore)
	}
	if matches[0].ID != 2 || matches[1].ID != 9 || matches[2].ID != 1 {
		t.Fatalf("unexpected tie-break order: %d, %d, %d", matches[0].ID, matches[1].ID, matches[2].ID)
	}
}

func TestNegativeExperienceRewardsSupportiveStance(t *testing.T) {
	holding := buildTherapist(1, nil, nil, "online", 8)
	holding.TherapeuticStance = []string{"holding"}
	plain := buildTherapist(2, nil, nil, "online", 8)

	service := newTestMatchingService(t, nil)
	input := models.WizardMatchInput{
		CategoryID:            "anxiety_panic",
		SeverityScore:         5,
		SessionType:           "online",
		HadNegativeExperience: true,
	}

	matches, _ := service.RankTherapists([]models.TherapistForMatching{plain, holding}, input, 2)

	if matches[0].ID != 1 {
		t.Fatalf("expected holding therapist first, got %d", matches[0].ID)
	}
	gap := matches[0].Breakdown.EvidenceBased.Score - matches[1].Breakdown.EvidenceBased.Score
	if gap != DefaultScoreWeights().EvidenceBased*0.4 {
		t.Fatalf("expected supportive stance bonus of %v, got %v", DefaultScoreWeights().EvidenceBased*0.4, gap)
	}
	if got := matches[0].MatchReasons[0]; got.TextDE != "Einfühlsame, haltende Begleitung" || got.Priority != 1 {
		t.Fatalf("expected supportive stance reason with top priority, got %+v", got)
	}
}

func TestRankTherapistsEmptyPool(t *testing.T) {
	service := newTestMatchingService(t, nil)
	matches, filtered := service.RankTherapists(nil, models.WizardMatchInput{CategoryID: "anxiety_panic"}, 3)
	if len(matches) != 0 || filtered != 0 {
		t.Fatalf("expected empty result, got %d matches, %d filtered", len(matches), filtered)
	}
}

func TestScoreWeightsValidate(t *testing.T) {
	if err := DefaultScoreWeights().Validate(); err != nil {
		t.Fatalf("default weights should validate: %v", err)
	}

	zeroed := DefaultScoreWeights()
	zeroed.ProfileQuality = 0
	if err := zeroed.Validate(); err == nil {
		t.Fatal("expected error for zero weight")
	}

	bonusHeavy := DefaultScoreWeights()
	bonusHeavy.TopicFit = 10
	bonusHeavy.StyleFit = 10
	if err := bonusHeavy.Validate(); err == nil {
		t.Fatal("expected error when bonus buckets outweigh topic and style")
	}

	if _, err := NewMatchingService(&stubTherapistSource{}, zeroed); err == nil {
		t.Fatal("expected constructor to reject invalid weights")
	}
}

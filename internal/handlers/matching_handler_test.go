package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/philippoppel/TheraMatchBack/internal/models"
	"github.com/philippoppel/TheraMatchBack/internal/services"
	"github.com/philippoppel/TheraMatchBack/internal/taxonomy"
)

type stubWizardMatcher struct {
	result services.MatchResult
	input  models.WizardMatchInput
	limit  int
	err    error
}

func (s *stubWizardMatcher) MatchTherapists(_ context.Context, input models.WizardMatchInput, limit int) (services.MatchResult, error) {
	s.input = input
	s.limit = limit
	if s.err != nil {
		return services.MatchResult{}, s.err
	}
	return s.result, nil
}

type stubSituationAnalyzer struct {
	analysis models.SituationAnalysis
	text     string
}

func (s *stubSituationAnalyzer) Analyze(text string) models.SituationAnalysis {
	s.text = text
	return s.analysis
}

func newMatchingTestApp(matcher *stubWizardMatcher, analyzer *stubSituationAnalyzer) *fiber.App {
	handler := NewMatchingHandler(matcher, analyzer)

	app := fiber.New()
	app.Post("/api/v1/matching", handler.MatchTherapists)
	app.Post("/api/v1/matching/analyze", handler.AnalyzeSituation)
	app.Post("/api/v1/matching/severity", handler.ComputeSeverity)
	app.Get("/api/v1/matching/categories", handler.ListCategories)
	return app
}

func TestMatchTherapistsClampsInputAndReturnsResult(t *testing.T) {
	matcher := &stubWizardMatcher{
		result: services.MatchResult{
			Matches: []models.MatchedTherapist{{
				ID:         7,
				Slug:       "dr-example",
				Name:       "Dr. Example",
				TotalScore: 120.5,
				MaxScore:   145,
				MatchReasons: []models.MatchReason{
					{Type: "topic", TextDE: "Spezialisiert auf Angst & Panik", Priority: 1},
				},
			}},
			Total:    12,
			Filtered: 5,
		},
	}
	app := newMatchingTestApp(matcher, &stubSituationAnalyzer{})

	payload := `{"categoryId":" anxiety_panic ","subcategoryId":"panic_attacks","severityScore":20,"sessionType":"online","insurance":["public"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/matching", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	if matcher.input.CategoryID != "anxiety_panic" {
		t.Fatalf("expected trimmed category id, got %q", matcher.input.CategoryID)
	}
	if matcher.input.SeverityScore != maxSeverityScore {
		t.Fatalf("expected severity clamped to %d, got %d", maxSeverityScore, matcher.input.SeverityScore)
	}
	if len(matcher.input.Insurance) != 1 || matcher.input.Insurance[0] != "public" {
		t.Fatalf("expected insurance list forwarded, got %v", matcher.input.Insurance)
	}
	if matcher.limit != services.DefaultMatchLimit {
		t.Fatalf("expected default limit %d, got %d", services.DefaultMatchLimit, matcher.limit)
	}

	var body struct {
		Matches  []models.MatchedTherapist `json:"matches"`
		Total    int                       `json:"total"`
		Filtered int                       `json:"filtered"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if body.Total != 12 || body.Filtered != 5 {
		t.Fatalf("unexpected counters: total %d, filtered %d", body.Total, body.Filtered)
	}
	if len(body.Matches) != 1 || body.Matches[0].Slug != "dr-example" {
		t.Fatalf("unexpected matches: %+v", body.Matches)
	}
	if body.Matches[0].MatchReasons[0].TextDE != "Spezialisiert auf Angst & Panik" {
		t.Fatalf("unexpected match reason: %+v", body.Matches[0].MatchReasons)
	}
}

func TestMatchTherapistsCapsLimit(t *testing.T) {
	matcher := &stubWizardMatcher{}
	app := newMatchingTestApp(matcher, &stubSituationAnalyzer{})

	payload := `{"categoryId":"anxiety_panic","limit":50}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/matching", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if matcher.limit != maxMatchLimit {
		t.Fatalf("expected limit capped at %d, got %d", maxMatchLimit, matcher.limit)
	}
}

func TestMatchTherapistsAcceptsMissingCategory(t *testing.T) {
	// No category means the topic bucket scores zero, not a client error.
	matcher := &stubWizardMatcher{}
	app := newMatchingTestApp(matcher, &stubSituationAnalyzer{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/matching", strings.NewReader(`{"sessionType":"online"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if matcher.input.CategoryID != "" || matcher.input.SessionType != "online" {
		t.Fatalf("unexpected forwarded input: %+v", matcher.input)
	}
}

func TestMatchTherapistsRejectsMalformedBody(t *testing.T) {
	app := newMatchingTestApp(&stubWizardMatcher{}, &stubSituationAnalyzer{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/matching", strings.NewReader(`{"categoryId":`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestAnalyzeSituationPassesTrimmedText(t *testing.T) {
	analyzer := &stubSituationAnalyzer{
		analysis: models.SituationAnalysis{
			Language:  "de",
			Topics:    []string{"anxiety"},
			Intensity: "medium",
		},
	}
	app := newMatchingTestApp(&stubWizardMatcher{}, analyzer)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/matching/analyze",
		strings.NewReader(`{"text":"  Ich habe ständig Panik.  "}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if analyzer.text != "Ich habe ständig Panik." {
		t.Fatalf("expected trimmed text, got %q", analyzer.text)
	}

	var body struct {
		Analysis models.SituationAnalysis `json:"analysis"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if body.Analysis.Language != "de" || len(body.Analysis.Topics) != 1 {
		t.Fatalf("unexpected analysis: %+v", body.Analysis)
	}
}

func TestAnalyzeSituationRejectsEmptyText(t *testing.T) {
	app := newMatchingTestApp(&stubWizardMatcher{}, &stubSituationAnalyzer{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/matching/analyze", strings.NewReader(`{"text":"   "}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestComputeSeverityScoresAnswersAndUnlocksFollowUps(t *testing.T) {
	app := newMatchingTestApp(&stubWizardMatcher{}, &stubSituationAnalyzer{})

	payload := `{"subcategoryId":"panic","answers":{"q1":2,"q4":1}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/matching/severity", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		SeverityScore     int                        `json:"severityScore"`
		ShowFullQuestions bool                       `json:"showFullQuestions"`
		Questions         []taxonomy.SymptomQuestion `json:"questions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if body.SeverityScore != 3 {
		t.Fatalf("expected severity 3, got %d", body.SeverityScore)
	}
	if !body.ShowFullQuestions {
		t.Fatal("initial answer of 2 must unlock the follow-up questions")
	}
	if len(body.Questions) != 4 {
		t.Fatalf("expected the subcategory's 4 questions, got %d", len(body.Questions))
	}
}

func TestComputeSeverityShortModeStaysShort(t *testing.T) {
	app := newMatchingTestApp(&stubWizardMatcher{}, &stubSituationAnalyzer{})

	payload := `{"answers":{"q1":1,"q4":0}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/matching/severity", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if body["severityScore"] != float64(1) {
		t.Fatalf("expected severity 1, got %v", body["severityScore"])
	}
	if body["showFullQuestions"] != false {
		t.Fatal("a low initial answer must keep the short flow")
	}
	if _, ok := body["questions"]; ok {
		t.Fatal("no questions expected without a subcategory id")
	}
}

func TestComputeSeverityRejectsInvalidInput(t *testing.T) {
	app := newMatchingTestApp(&stubWizardMatcher{}, &stubSituationAnalyzer{})

	for name, payload := range map[string]struct {
		body string
		want int
	}{
		"answer above range":  {`{"answers":{"q1":5,"q4":0}}`, http.StatusBadRequest},
		"answer below range":  {`{"answers":{"q1":-1}}`, http.StatusBadRequest},
		"unknown subcategory": {`{"subcategoryId":"nope","answers":{"q1":1}}`, http.StatusNotFound},
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/matching/severity", strings.NewReader(payload.body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s: app.Test: %v", name, err)
		}
		resp.Body.Close()
		if resp.StatusCode != payload.want {
			t.Fatalf("%s: expected %d, got %d", name, payload.want, resp.StatusCode)
		}
	}
}

func TestListCategoriesIncludesCrisisEntry(t *testing.T) {
	app := newMatchingTestApp(&stubWizardMatcher{}, &stubSituationAnalyzer{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/matching/categories", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Categories []struct {
			ID       string `json:"id"`
			IsCrisis bool   `json:"isCrisis"`
		} `json:"categories"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(body.Categories) != 25 {
		t.Fatalf("expected 25 categories, got %d", len(body.Categories))
	}

	crisisSeen := false
	for _, category := range body.Categories {
		if category.ID == "crisis" && category.IsCrisis {
			crisisSeen = true
		}
	}
	if !crisisSeen {
		t.Fatal("expected the crisis category to be present and flagged")
	}
}

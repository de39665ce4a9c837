package services

import "testing"

func TestAnalyzeComposesDetectionSignals(t *testing.T) {
	service := NewAnalysisService()

	analysis := service.Analyze("Ich fühle mich seit Wochen antriebslos und habe Panikattacken.")

	if analysis.Language != "de" {
		t.Fatalf("expected German, got %q", analysis.Language)
	}
	if analysis.CrisisDetected {
		t.Fatalf("did not expect a crisis flag, got type %q", analysis.CrisisType)
	}
	if !containsString(analysis.Topics, "depression") {
		t.Fatalf("expected depression topic, got %v", analysis.Topics)
	}
	if !containsString(analysis.SubTopics, "panic_attacks") {
		t.Fatalf("expected panic_attacks sub-topic, got %v", analysis.SubTopics)
	}
	if len(analysis.SuggestedSpecialties) == 0 {
		t.Fatalf("expected suggested specialties for detected topics")
	}
	if analysis.Intensity == "" {
		t.Fatal("expected an intensity estimate")
	}
}

func TestAnalyzeFlagsCrisisLanguage(t *testing.T) {
	service := NewAnalysisService()

	analysis := service.Analyze("Ich will mir das Leben nehmen.")

	if !analysis.CrisisDetected {
		t.Fatal("expected crisis detection")
	}
	if analysis.CrisisType != "suicidal" {
		t.Fatalf("expected suicidal crisis type, got %q", analysis.CrisisType)
	}
	if analysis.MatchedKeyword == "" {
		t.Fatal("expected the matched keyword to be reported")
	}
}

package taxonomy

import "testing"

func TestCategoryByID(t *testing.T) {
	cat := CategoryByID("anxiety_panic")
	if cat == nil {
		t.Fatal("expected category for anxiety_panic")
	}
	if cat.LabelDE != "Angst & Panik" {
		t.Errorf("unexpected label %q", cat.LabelDE)
	}
	if len(cat.Subcategories) != 4 {
		t.Errorf("expected 4 subcategories, got %d", len(cat.Subcategories))
	}

	if CategoryByID("does_not_exist") != nil {
		t.Error("expected nil for unknown category id")
	}
}

func TestSubcategoryByID(t *testing.T) {
	sub := SubcategoryByID("panic")
	if sub == nil {
		t.Fatal("expected subcategory for panic")
	}
	if sub.ParentCategoryID != "anxiety_panic" {
		t.Errorf("unexpected parent %q", sub.ParentCategoryID)
	}
	if len(sub.SymptomQuestions) != 4 {
		t.Errorf("expected 4 symptom questions, got %d", len(sub.SymptomQuestions))
	}

	if SubcategoryByID("does_not_exist") != nil {
		t.Error("expected nil for unknown subcategory id")
	}
}

func TestCrisisCategory(t *testing.T) {
	crisis := CrisisCategory()
	if crisis == nil {
		t.Fatal("expected a crisis category")
	}
	if crisis.ID != "crisis" {
		t.Errorf("unexpected crisis id %q", crisis.ID)
	}
	if len(crisis.Subcategories) != 0 {
		t.Error("crisis category must not carry subcategories")
	}
	if len(crisis.MappedSpecialties) != 0 {
		t.Error("crisis category must not map to specialties")
	}

	if !IsCrisisCategory("crisis") {
		t.Error("crisis must be flagged as crisis category")
	}
	if IsCrisisCategory("depression_emptiness") {
		t.Error("depression_emptiness must not be a crisis category")
	}
	if IsCrisisCategory("unknown") {
		t.Error("unknown id must not be a crisis category")
	}

	for _, cat := range NonCrisisCategories() {
		if cat.IsCrisis {
			t.Fatalf("NonCrisisCategories returned crisis entry %q", cat.ID)
		}
	}
	if len(NonCrisisCategories()) != len(Categories)-1 {
		t.Errorf("expected %d non-crisis categories, got %d", len(Categories)-1, len(NonCrisisCategories()))
	}
}

func TestCategoryIntegrity(t *testing.T) {
	seen := make(map[string]bool)
	for _, cat := range Categories {
		if seen[cat.ID] {
			t.Errorf("duplicate category id %q", cat.ID)
		}
		seen[cat.ID] = true
		for _, sub := range cat.Subcategories {
			if sub.ParentCategoryID != cat.ID {
				t.Errorf("subcategory %q has parent %q, expected %q", sub.ID, sub.ParentCategoryID, cat.ID)
			}
		}
	}
}

func TestSeverityScore(t *testing.T) {
	ptr := func(v int) *int { return &v }

	tests := []struct {
		name    string
		answers SymptomAnswers
		want    int
	}{
		{"all max", SymptomAnswers{Q1: ptr(3), Q2: ptr(3), Q3: ptr(3), Q4: ptr(3)}, 12},
		{"short mode", SymptomAnswers{Q1: ptr(1), Q4: ptr(2)}, 3},
		{"all zero", SymptomAnswers{Q1: ptr(0), Q2: ptr(0), Q3: ptr(0), Q4: ptr(0)}, 0},
		{"nothing answered", SymptomAnswers{}, 0},
		{"partial follow-up", SymptomAnswers{Q1: ptr(2), Q2: ptr(1), Q4: ptr(1)}, 4},
	}

	for _, tt := range tests {
		if got := SeverityScore(tt.answers); got != tt.want {
			t.Errorf("%s: SeverityScore = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestShouldShowFullQuestions(t *testing.T) {
	ptr := func(v int) *int { return &v }

	if ShouldShowFullQuestions(nil) {
		t.Error("nil answer must stay in short mode")
	}
	if ShouldShowFullQuestions(ptr(1)) {
		t.Error("answer 1 must stay in short mode")
	}
	if !ShouldShowFullQuestions(ptr(2)) {
		t.Error("answer 2 must unlock full mode")
	}
}

func TestSpecialtiesFromTopics(t *testing.T) {
	got := SpecialtiesFromTopics([]string{"anxiety", "sleep", "stress"})
	want := []string{"anxiety", "depression", "burnout"}
	if len(got) != len(want) {
		t.Fatalf("SpecialtiesFromTopics = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SpecialtiesFromTopics[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if len(SpecialtiesFromTopics(nil)) != 0 {
		t.Error("no topics must map to no specialties")
	}
	if len(SpecialtiesFromTopics([]string{"unknown"})) != 0 {
		t.Error("unknown topics must map to no specialties")
	}
}

func TestRankSpecialtiesWithoutSubTopicsKeepsMapperOrder(t *testing.T) {
	got := RankSpecialties([]string{"anxiety", "sleep", "stress"}, nil)
	want := []string{"anxiety", "depression", "burnout"}
	if len(got) != len(want) {
		t.Fatalf("RankSpecialties = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("RankSpecialties[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if len(RankSpecialties(nil, nil)) != 0 {
		t.Error("no signals must rank no specialties")
	}
	if len(RankSpecialties([]string{"unknown"}, []string{"unknown"})) != 0 {
		t.Error("unknown ids must rank no specialties")
	}
}

func TestRankSpecialtiesSubTopicWeightPromotes(t *testing.T) {
	// The sleep topic maps depression before anxiety; a detected panic
	// subtopic adds its full weight to anxiety and flips the order.
	got := RankSpecialties([]string{"sleep"}, []string{"panic_attacks"})
	if len(got) != 2 || got[0] != "anxiety" || got[1] != "depression" {
		t.Fatalf("RankSpecialties = %v, want [anxiety depression]", got)
	}

	// Without the subtopic the mapper order stands.
	got = RankSpecialties([]string{"sleep"}, nil)
	if len(got) != 2 || got[0] != "depression" || got[1] != "anxiety" {
		t.Fatalf("RankSpecialties = %v, want [depression anxiety]", got)
	}
}

func TestSpecialtyForSubTopic(t *testing.T) {
	if got := SpecialtyForSubTopic("panic_attacks"); got != "anxiety" {
		t.Errorf("panic_attacks maps to %q, want anxiety", got)
	}
	if got := SpecialtyForSubTopic("divorce"); got != "relationships" {
		t.Errorf("divorce maps to %q, want relationships", got)
	}
	if got := SpecialtyForSubTopic("unknown"); got != "" {
		t.Errorf("unknown subtopic maps to %q, want empty", got)
	}
}

func TestAllSubTopicIDs(t *testing.T) {
	ids := AllSubTopicIDs()
	if !ids["insomnia"] || !ids["alcohol"] {
		t.Error("expected insomnia and alcohol in subtopic id set")
	}
	if ids["crisis"] {
		t.Error("crisis is not a subtopic")
	}
}

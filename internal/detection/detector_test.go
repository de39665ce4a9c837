package detection

import "testing"

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Ich bin sehr gestresst und kann nicht schlafen", LangDE},
		{"I am feeling very anxious and can't sleep", LangEN},
		{"Probleme mit Angstzuständen", LangDE}, // umlaut bonus
		{"", LangDE},                            // ties resolve to German
		{"stress stress stress", LangDE},
	}

	for _, tt := range tests {
		if got := DetectLanguage(tt.text); got != tt.want {
			t.Errorf("DetectLanguage(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestDetectCrisisSuicidal(t *testing.T) {
	res := DetectCrisis("ich will mir das leben nehmen", LangDE)
	if !res.Detected {
		t.Fatal("expected crisis detection")
	}
	if res.Type != CrisisSuicidal {
		t.Errorf("crisis type = %q, want %q", res.Type, CrisisSuicidal)
	}
	if res.MatchedKeyword == "" {
		t.Error("expected the matched keyword to be reported")
	}
}

func TestDetectCrisisNegative(t *testing.T) {
	res := DetectCrisis("ich bin gestresst wegen der arbeit", LangDE)
	if res.Detected {
		t.Fatalf("no crisis expected, matched %q as %q", res.MatchedKeyword, res.Type)
	}
	if res.Type != "" || res.MatchedKeyword != "" {
		t.Error("negative result must carry no type or keyword")
	}
}

func TestDetectCrisisPriority(t *testing.T) {
	// Text containing both self-harm and suicidal wording must report the
	// higher-priority suicidal type.
	res := DetectCrisis("ich will mich ritzen und nicht mehr leben", LangDE)
	if !res.Detected || res.Type != CrisisSuicidal {
		t.Errorf("got type %q, want %q", res.Type, CrisisSuicidal)
	}

	res = DetectCrisis("i keep cutting myself", LangEN)
	if !res.Detected || res.Type != CrisisSelfHarm {
		t.Errorf("got type %q, want %q", res.Type, CrisisSelfHarm)
	}
}

func TestDetectTopics(t *testing.T) {
	topics := DetectTopics("ich bin ständig traurig und erschöpft, alles ist hoffnungslos und dunkel", LangDE)
	if len(topics) == 0 {
		t.Fatal("expected topic hits")
	}
	if topics[0] != "depression" {
		t.Errorf("top topic = %q, want depression", topics[0])
	}
	if len(topics) > 4 {
		t.Errorf("at most 4 topics expected, got %d", len(topics))
	}
}

func TestDetectTopicsNoSignal(t *testing.T) {
	if topics := DetectTopics("xyzzy quux", LangDE); len(topics) != 0 {
		t.Errorf("expected no topics, got %v", topics)
	}
}

func TestDetectSubTopics(t *testing.T) {
	subs := DetectSubTopics("plötzlich panikattacke mit herzrasen und atemnot, angst vor ohnmacht", LangDE)
	if len(subs) == 0 {
		t.Fatal("expected subtopic hits")
	}
	if subs[0] != "panic_attacks" {
		t.Errorf("top subtopic = %q, want panic_attacks", subs[0])
	}
	if len(subs) > 5 {
		t.Errorf("at most 5 subtopics expected, got %d", len(subs))
	}
}

func TestDetectIntensity(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"high marker wins", "es ist unerträglich, ich kann nicht mehr", IntensityHigh},
		{"two low markers", "ich möchte mich manchmal ein bisschen verbessern", IntensityLow},
		{"single low marker stays medium", "ich bin manchmal unzufrieden im job", IntensityMedium},
		{"no markers", "mein leben läuft gut", IntensityMedium},
		{"high beats low", "manchmal möchte ich mich verbessern aber es ist unerträglich", IntensityHigh},
	}

	for _, tt := range tests {
		if got := DetectIntensity(tt.text, LangDE); got != tt.want {
			t.Errorf("%s: DetectIntensity = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestDetectMethods(t *testing.T) {
	methods := DetectMethods("ich möchte meine gedankenmuster und glaubenssätze verstehen, gerne mit meditation und achtsamkeit", LangDE)
	found := map[string]bool{}
	for _, m := range methods {
		found[m] = true
	}
	if !found["cbt"] || !found["mindfulness"] {
		t.Errorf("expected cbt and mindfulness, got %v", methods)
	}
	if len(methods) > 3 {
		t.Errorf("at most 3 methods expected, got %d", len(methods))
	}

	if got := DetectMethods("nichts besonderes", LangDE); len(got) != 0 {
		t.Errorf("expected no methods, got %v", got)
	}
}

func TestDetectCommunicationStyle(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"directive", "ich brauche einen klaren plan mit konkreten schritten und tipps", StyleDirective},
		{"empathetic", "ich möchte einfach reden, gehört werden und meine gefühle teilen", StyleEmpathetic},
		{"balanced", "ich will eine lösung und möchte reden", StyleBalanced},
		{"no signal", "hallo", ""},
	}

	for _, tt := range tests {
		if got := DetectCommunicationStyle(tt.text, LangDE); got != tt.want {
			t.Errorf("%s: DetectCommunicationStyle = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestDetectTherapyFocus(t *testing.T) {
	if got := DetectTherapyFocus("es geht um meine kindheit, wie ich aufgewachsen bin und die prägung durch meine eltern", LangDE); got != FocusPast {
		t.Errorf("got %q, want past", got)
	}
	if got := DetectTherapyFocus("ich habe ziele für die zukunft und möchte mein potenzial erreichen", LangDE); got != FocusFuture {
		t.Errorf("got %q, want future", got)
	}
	// A single weak marker is below the two-hit threshold.
	if got := DetectTherapyFocus("meine situation", LangDE); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestCountOccurrencesWordBoundary(t *testing.T) {
	// "ads" must not match inside longer words.
	if got := countOccurrences("die fassade bröckelt", "ads"); got != 0 {
		t.Errorf("expected no match inside a longer word, got %d", got)
	}
	if got := countOccurrences("ich habe ads seit jahren", "ads"); got != 1 {
		t.Errorf("expected a whole-word match, got %d", got)
	}
	// Longer phrases match as substrings.
	if got := countOccurrences("meine panikattacken häufen sich", "panikattacke"); got != 1 {
		t.Errorf("expected substring match, got %d", got)
	}
}

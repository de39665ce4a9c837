// Package detection classifies free-text situation descriptions with
// bilingual keyword tables. All functions are pure and never fail: unusable
// input degrades to neutral results instead of errors.
package detection

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	LangDE = "de"
	LangEN = "en"
)

// Intensity levels for a described situation.
const (
	IntensityLow    = "low"
	IntensityMedium = "medium"
	IntensityHigh   = "high"
)

// Crisis types, ordered by priority.
const (
	CrisisSuicidal    = "suicidal"
	CrisisSelfHarm    = "self_harm"
	CrisisAcuteDanger = "acute_danger"
)

// Communication styles a client may prefer.
const (
	StyleDirective  = "directive"
	StyleEmpathetic = "empathetic"
	StyleBalanced   = "balanced"
)

// Therapy focus orientations.
const (
	FocusPast     = "past"
	FocusPresent  = "present"
	FocusFuture   = "future"
	FocusHolistic = "holistic"
)

// CrisisResult is the outcome of a crisis screen over free text.
type CrisisResult struct {
	Detected       bool   `json:"crisisDetected"`
	Type           string `json:"crisisType,omitempty"`
	MatchedKeyword string `json:"matchedKeyword,omitempty"`
}

var germanIndicators = []string{"ich", "und", "der", "die", "das", "ist", "bin", "habe", "mich", "mir", "meine", "für", "nicht", "auch", "sehr"}
var englishIndicators = []string{"i", "and", "the", "is", "am", "have", "my", "me", "for", "not", "also", "very", "with", "been", "feeling"}

// DetectLanguage guesses between German and English based on common function
// words. Umlauts weigh heavily toward German; ties resolve to German since
// the platform's audience is primarily German-speaking.
func DetectLanguage(text string) string {
	lower := strings.ToLower(text)
	words := strings.Fields(lower)

	germanScore, englishScore := 0, 0
	for _, w := range words {
		for _, ind := range germanIndicators {
			if w == ind {
				germanScore++
				break
			}
		}
		for _, ind := range englishIndicators {
			if w == ind {
				englishScore++
				break
			}
		}
	}

	if strings.ContainsAny(lower, "äöüß") {
		germanScore += 3
	}

	if germanScore >= englishScore {
		return LangDE
	}
	return LangEN
}

// DetectTopics returns up to four topic ids ranked by keyword hit count.
func DetectTopics(text, lang string) []string {
	return rankedMatches(text, lang, topicKeywords, 4)
}

// DetectSubTopics returns up to five subtopic ids ranked by keyword hit count.
func DetectSubTopics(text, lang string) []string {
	return rankedMatches(text, lang, subTopicKeywords, 5)
}

// DetectCrisis screens the text for crisis wording. Types are checked in
// priority order (suicidal before self_harm before acute_danger) and the
// first matching keyword short-circuits.
func DetectCrisis(text, lang string) CrisisResult {
	lower := strings.ToLower(text)

	for _, crisisType := range []string{CrisisSuicidal, CrisisSelfHarm, CrisisAcuteDanger} {
		for _, keyword := range crisisKeywords[crisisType].forLanguage(lang) {
			if strings.Contains(lower, keyword) {
				return CrisisResult{Detected: true, Type: crisisType, MatchedKeyword: keyword}
			}
		}
	}

	return CrisisResult{}
}

// DetectIntensity grades urgency. Any high marker wins immediately; at least
// two distinct low markers read as low; the default is medium.
func DetectIntensity(text, lang string) string {
	lower := strings.ToLower(text)

	for _, marker := range intensityMarkers["high"].forLanguage(lang) {
		if strings.Contains(lower, marker) {
			return IntensityHigh
		}
	}

	lowCount := 0
	for _, marker := range intensityMarkers["low"].forLanguage(lang) {
		if strings.Contains(lower, marker) {
			lowCount++
		}
	}
	if lowCount >= 2 {
		return IntensityLow
	}

	return IntensityMedium
}

// DetectMethods returns up to three therapy methods the text hints at.
func DetectMethods(text, lang string) []string {
	lower := strings.ToLower(text)

	var detected []string
	for _, method := range []string{"cbt", "psychodynamic", "mindfulness", "emdr", "systemic"} {
		for _, keyword := range methodKeywords[method].forLanguage(lang) {
			if strings.Contains(lower, keyword) {
				detected = append(detected, method)
				break
			}
		}
	}

	if len(detected) > 3 {
		detected = detected[:3]
	}
	return detected
}

// DetectCommunicationStyle infers whether the client asks for direction or
// for empathy. A clear winner needs at least two markers; mixed signals read
// as balanced; too little signal yields "".
func DetectCommunicationStyle(text, lang string) string {
	lower := strings.ToLower(text)

	directiveScore, empatheticScore := 0, 0
	for _, marker := range communicationStyleMarkers[StyleDirective].forLanguage(lang) {
		if strings.Contains(lower, marker) {
			directiveScore++
		}
	}
	for _, marker := range communicationStyleMarkers[StyleEmpathetic].forLanguage(lang) {
		if strings.Contains(lower, marker) {
			empatheticScore++
		}
	}

	switch {
	case directiveScore > empatheticScore && directiveScore >= 2:
		return StyleDirective
	case empatheticScore > directiveScore && empatheticScore >= 2:
		return StyleEmpathetic
	case directiveScore > 0 && empatheticScore > 0:
		return StyleBalanced
	}
	return ""
}

// DetectTherapyFocus picks the time orientation with the highest marker
// count, requiring at least two hits. Returns "" when the signal is too weak.
func DetectTherapyFocus(text, lang string) string {
	lower := strings.ToLower(text)

	order := []string{FocusPast, FocusPresent, FocusFuture, FocusHolistic}
	best, bestScore := "", 0
	for _, focus := range order {
		score := 0
		for _, marker := range therapyFocusMarkers[focus].forLanguage(lang) {
			if strings.Contains(lower, marker) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = focus, score
		}
	}

	if bestScore < 2 {
		return ""
	}
	return best
}

// rankedMatches counts keyword occurrences per id and returns the top ids by
// hit count. Ties break alphabetically to keep results deterministic.
func rankedMatches(text, lang string, table map[string]languageKeywords, limit int) []string {
	lower := strings.ToLower(text)

	counts := make(map[string]int)
	for id, keywords := range table {
		n := 0
		for _, keyword := range keywords.forLanguage(lang) {
			n += countOccurrences(lower, keyword)
		}
		if n > 0 {
			counts[id] = n
		}
	}

	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if counts[ids[i]] != counts[ids[j]] {
			return counts[ids[i]] > counts[ids[j]]
		}
		return ids[i] < ids[j]
	})

	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids
}

// countOccurrences counts keyword hits in lowercased text. Short keywords
// (four runes or fewer) only match as whole words so that "ads" does not
// fire inside "Fassade"; longer phrases match as substrings.
func countOccurrences(lower, keyword string) int {
	if utf8.RuneCountInString(keyword) > 4 {
		return strings.Count(lower, keyword)
	}

	count := 0
	for start := 0; ; {
		idx := strings.Index(lower[start:], keyword)
		if idx < 0 {
			break
		}
		abs := start + idx
		if isWordBoundary(lower, abs) && isWordBoundary(lower, abs+len(keyword)) {
			count++
		}
		start = abs + len(keyword)
	}
	return count
}

// isWordBoundary reports whether position i in s sits between a word rune
// and a non-word rune (or the text edge).
func isWordBoundary(s string, i int) bool {
	if i <= 0 || i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	prev, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r) || !isWordRune(prev)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

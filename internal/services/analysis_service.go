package services

import (
	"strings"

	"github.com/philippoppel/TheraMatchBack/internal/detection"
	"github.com/philippoppel/TheraMatchBack/internal/models"
	"github.com/philippoppel/TheraMatchBack/internal/taxonomy"
)

// AnalysisService turns free-text situation descriptions into structured
// signals for the wizard: language, crisis flags, topics, and preferences.
type AnalysisService struct{}

func NewAnalysisService() *AnalysisService {
	return &AnalysisService{}
}

func (s *AnalysisService) Analyze(text string) models.SituationAnalysis {
	normalized := strings.TrimSpace(text)
	lang := detection.DetectLanguage(normalized)

	crisis := detection.DetectCrisis(normalized, lang)
	topics := detection.DetectTopics(normalized, lang)
	subTopics := detection.DetectSubTopics(normalized, lang)

	return models.SituationAnalysis{
		Language:             lang,
		CrisisDetected:       crisis.Detected,
		CrisisType:           crisis.Type,
		MatchedKeyword:       crisis.MatchedKeyword,
		Topics:               topics,
		SubTopics:            subTopics,
		SuggestedSpecialties: taxonomy.RankSpecialties(topics, subTopics),
		Intensity:            detection.DetectIntensity(normalized, lang),
		Methods:              detection.DetectMethods(normalized, lang),
		CommunicationStyle:   detection.DetectCommunicationStyle(normalized, lang),
		TherapyFocus:         detection.DetectTherapyFocus(normalized, lang),
	}
}

package handlers

import (
	"context"
	"strings"

	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/philippoppel/TheraMatchBack/internal/models"
	"github.com/philippoppel/TheraMatchBack/internal/services"
	"github.com/philippoppel/TheraMatchBack/internal/taxonomy"
	wizardws "github.com/philippoppel/TheraMatchBack/internal/websocket"
)

const (
	maxMatchLimit     = 10
	maxAnalysisLength = 10000
	maxSeverityScore  = 12
)

type wizardMatcher interface {
	MatchTherapists(ctx context.Context, input models.WizardMatchInput, limit int) (services.MatchResult, error)
}

type situationAnalyzer interface {
	Analyze(text string) models.SituationAnalysis
}

type MatchingHandler struct {
	matchingService wizardMatcher
	analysisService situationAnalyzer
}

func NewMatchingHandler(matchingService wizardMatcher, analysisService situationAnalyzer) *MatchingHandler {
	return &MatchingHandler{
		matchingService: matchingService,
		analysisService: analysisService,
	}
}

type matchRequest struct {
	models.WizardMatchInput
	Limit int `json:"limit"`
}

// MatchTherapists scores the therapist pool against the wizard answers and
// returns the top matches with score breakdowns and reasons.
func (h *MatchingHandler) MatchTherapists(c *fiber.Ctx) error {
	var req matchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	input := req.WizardMatchInput
	input.CategoryID = strings.TrimSpace(input.CategoryID)
	input.SubcategoryID = strings.TrimSpace(input.SubcategoryID)
	if input.SeverityScore < 0 {
		input.SeverityScore = 0
	}
	if input.SeverityScore > maxSeverityScore {
		input.SeverityScore = maxSeverityScore
	}

	limit := req.Limit
	if limit <= 0 {
		limit = services.DefaultMatchLimit
	}
	if limit > maxMatchLimit {
		limit = maxMatchLimit
	}

	result, err := h.matchingService.MatchTherapists(c.Context(), input, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to match therapists"})
	}

	return c.JSON(fiber.Map{
		"matches":  result.Matches,
		"total":    result.Total,
		"filtered": result.Filtered,
	})
}

type analyzeRequest struct {
	Text string `json:"text"`
}

// AnalyzeSituation extracts language, crisis flags, topics, and preference
// signals from a free-text situation description.
func (h *MatchingHandler) AnalyzeSituation(c *fiber.Ctx) error {
	var req analyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "text is required"})
	}
	if len(text) > maxAnalysisLength {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "text exceeds the maximum length"})
	}

	return c.JSON(fiber.Map{"analysis": h.analysisService.Analyze(text)})
}

type severityRequest struct {
	SubcategoryID string                  `json:"subcategoryId"`
	Answers       taxonomy.SymptomAnswers `json:"answers"`
}

// ComputeSeverity scores the adaptive symptom check and tells the client
// whether to unlock the follow-up questions. When a subcategory id is
// supplied the response carries its question set so the wizard can render
// the next step without a second round-trip.
func (h *MatchingHandler) ComputeSeverity(c *fiber.Ctx) error {
	var req severityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	for _, answer := range []*int{req.Answers.Q1, req.Answers.Q2, req.Answers.Q3, req.Answers.Q4} {
		if answer != nil && (*answer < 0 || *answer > 3) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "answers must be between 0 and 3"})
		}
	}

	response := fiber.Map{
		"severityScore":     taxonomy.SeverityScore(req.Answers),
		"showFullQuestions": taxonomy.ShouldShowFullQuestions(req.Answers.Q1),
	}
	if subcategoryID := strings.TrimSpace(req.SubcategoryID); subcategoryID != "" {
		questions := taxonomy.SymptomQuestionsFor(subcategoryID)
		if questions == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unknown subcategory"})
		}
		response["questions"] = questions
	}

	return c.JSON(response)
}

// ListCategories returns the wizard taxonomy, crisis entry included so
// clients can route to the emergency flow.
func (h *MatchingHandler) ListCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": taxonomy.Categories})
}

// RequireWebSocketUpgrade gates the analysis socket endpoint.
func (h *MatchingHandler) RequireWebSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// HandleAnalyzeSocket streams situation analyses back while the user types.
func (h *MatchingHandler) HandleAnalyzeSocket(conn *websocket.Conn) {
	client := wizardws.NewClient(conn)
	go client.WritePump()
	client.ReadPump(h.analysisService)
}

package routes

import (
	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/philippoppel/TheraMatchBack/internal/config"
	"github.com/philippoppel/TheraMatchBack/internal/handlers"
	"github.com/philippoppel/TheraMatchBack/internal/repository"
	"github.com/philippoppel/TheraMatchBack/internal/services"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) error {
	therapistRepo := repository.NewTherapistProfileRepository(db)

	matchingService, err := services.NewMatchingService(therapistRepo, services.DefaultScoreWeights())
	if err != nil {
		return err
	}
	analysisService := services.NewAnalysisService()

	matchingHandler := handlers.NewMatchingHandler(matchingService, analysisService)
	therapistDiscoveryHandler := handlers.NewTherapistDiscoveryHandler(therapistRepo)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	matching := v1.Group("/matching")
	matching.Post("", matchingHandler.MatchTherapists)
	matching.Post("/analyze", matchingHandler.AnalyzeSituation)
	matching.Post("/severity", matchingHandler.ComputeSeverity)
	matching.Get("/categories", matchingHandler.ListCategories)

	therapists := v1.Group("/therapists")
	therapists.Get("", therapistDiscoveryHandler.ListTherapists)
	therapists.Get("/:slug", therapistDiscoveryHandler.GetTherapistDetail)

	api.Use("/v1/matching/analyze/ws", matchingHandler.RequireWebSocketUpgrade)
	api.Get("/v1/matching/analyze/ws", websocket.New(matchingHandler.HandleAnalyzeSocket))

	return registerDocsRoutes(app, cfg)
}

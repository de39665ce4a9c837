package handlers

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/philippoppel/TheraMatchBack/internal/models"
	"github.com/philippoppel/TheraMatchBack/internal/repository"
	"github.com/philippoppel/TheraMatchBack/internal/services"
)

type therapistDirectoryRepository interface {
	List(ctx context.Context, filter repository.TherapistListFilter) ([]models.TherapistProfile, error)
	Count(ctx context.Context, filter repository.TherapistListFilter) (int, error)
	GetBySlug(ctx context.Context, slug string) (*models.TherapistProfile, error)
}

type TherapistDiscoveryHandler struct {
	therapistRepo therapistDirectoryRepository
}

func NewTherapistDiscoveryHandler(therapistRepo therapistDirectoryRepository) *TherapistDiscoveryHandler {
	return &TherapistDiscoveryHandler{therapistRepo: therapistRepo}
}

func (h *TherapistDiscoveryHandler) ListTherapists(c *fiber.Ctx) error {
	page := parsePositiveInt(c.Query("page"), 1)
	limit := parsePositiveInt(c.Query("limit"), defaultPageLimit)
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	filter := repository.TherapistListFilter{
		Specialty:   strings.TrimSpace(c.Query("specialty")),
		SessionType: strings.TrimSpace(c.Query("session_type")),
		City:        strings.TrimSpace(c.Query("city")),
		Language:    strings.TrimSpace(c.Query("language")),
		Offset:      (page - 1) * limit,
		Limit:       limit,
	}

	therapists, err := h.therapistRepo.List(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch therapists"})
	}
	total, err := h.therapistRepo.Count(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch therapists"})
	}

	response := make([]models.TherapistListResponse, 0, len(therapists))
	for _, therapist := range therapists {
		response = append(response, buildTherapistListResponse(therapist))
	}

	return c.JSON(fiber.Map{
		"therapists": response,
		"pagination": buildPaginationMeta(page, limit, total),
	})
}

func (h *TherapistDiscoveryHandler) GetTherapistDetail(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid therapist slug"})
	}

	therapist, err := h.therapistRepo.GetBySlug(c.Context(), slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Therapist not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch therapist"})
	}

	return c.JSON(fiber.Map{
		"therapist": buildTherapistDetailResponse(*therapist),
	})
}

func buildTherapistListResponse(therapist models.TherapistProfile) models.TherapistListResponse {
	return models.TherapistListResponse{
		ID:               strconv.FormatInt(therapist.ID, 10),
		Slug:             therapist.Slug,
		FullName:         models.StringValue(therapist.FullName),
		ImageURL:         models.StringValue(therapist.ImageURL),
		ShortDescription: models.StringValue(therapist.ShortDescription),
		City:             models.StringValue(therapist.City),
		SessionType:      models.StringValue(therapist.SessionType),
		ExperienceYears:  models.IntValue(therapist.ExperienceYears),
		Specializations:  sliceOrEmpty(therapist.Specializations),
		Languages:        sliceOrEmpty(therapist.Languages),
		IsVerified:       models.BoolValue(therapist.IsVerified),
	}
}

func buildTherapistDetailResponse(therapist models.TherapistProfile) models.TherapistDetailResponse {
	return models.TherapistDetailResponse{
		TherapistListResponse: buildTherapistListResponse(therapist),
		Description:           models.StringValue(therapist.Description),
		PostalCode:            models.StringValue(therapist.PostalCode),
		Insurance:             sliceOrEmpty(therapist.Insurance),
		Availability:          models.StringValue(therapist.Availability),
		Gender:                models.StringValue(therapist.Gender),
		StyleTags:             sliceOrEmpty(therapist.StyleTags),
	}
}

func sliceOrEmpty(value *[]string) []string {
	if value == nil {
		return []string{}
	}
	return *value
}

func parsePositiveInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

var _ services.TherapistSource = (*repository.TherapistProfileRepository)(nil)

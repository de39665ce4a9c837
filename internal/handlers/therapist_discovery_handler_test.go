package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/philippoppel/TheraMatchBack/internal/models"
	"github.com/philippoppel/TheraMatchBack/internal/repository"
)

type stubTherapistDirectoryRepo struct {
	therapists []models.TherapistProfile
	total      int
	listFilter repository.TherapistListFilter
	detail     *models.TherapistProfile
	detailSlug string
	detailErr  error
}

func (s *stubTherapistDirectoryRepo) List(_ context.Context, filter repository.TherapistListFilter) ([]models.TherapistProfile, error) {
	s.listFilter = filter
	return s.therapists, nil
}

func (s *stubTherapistDirectoryRepo) Count(_ context.Context, _ repository.TherapistListFilter) (int, error) {
	return s.total, nil
}

func (s *stubTherapistDirectoryRepo) GetBySlug(_ context.Context, slug string) (*models.TherapistProfile, error) {
	s.detailSlug = slug
	if s.detailErr != nil {
		return nil, s.detailErr
	}
	return s.detail, nil
}

func buildTherapistProfile(id int64, slug string) models.TherapistProfile {
	fullName := "Dr. Anna Beispiel"
	city := "Berlin"
	sessionType := "both"
	experience := 12
	specializations := []string{"anxiety", "depression"}
	verified := true

	return models.TherapistProfile{
		ID:              id,
		Slug:            slug,
		FullName:        &fullName,
		City:            &city,
		SessionType:     &sessionType,
		ExperienceYears: &experience,
		Specializations: &specializations,
		IsVerified:      &verified,
	}
}

func TestListTherapistsReturnsPaginationAndFilters(t *testing.T) {
	repo := &stubTherapistDirectoryRepo{
		therapists: []models.TherapistProfile{buildTherapistProfile(31, "dr-anna-beispiel")},
		total:      11,
	}
	handler := NewTherapistDiscoveryHandler(repo)

	app := fiber.New()
	app.Get("/api/v1/therapists", handler.ListTherapists)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/therapists?specialty=anxiety&session_type=online&city=Berlin&page=2&limit=5", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Therapists []models.TherapistListResponse `json:"therapists"`
		Pagination models.PaginationMeta          `json:"pagination"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if repo.listFilter.Specialty != "anxiety" || repo.listFilter.SessionType != "online" ||
		repo.listFilter.City != "Berlin" || repo.listFilter.Offset != 5 || repo.listFilter.Limit != 5 {
		t.Fatalf("unexpected filter: %+v", repo.listFilter)
	}
	if len(body.Therapists) != 1 || body.Therapists[0].ID != "31" || body.Therapists[0].Slug != "dr-anna-beispiel" {
		t.Fatalf("unexpected therapists response: %+v", body.Therapists)
	}
	if !body.Therapists[0].IsVerified || body.Therapists[0].ExperienceYears != 12 {
		t.Fatalf("unexpected therapist card: %+v", body.Therapists[0])
	}
	if body.Pagination.Total != 11 || body.Pagination.TotalPages != 3 || body.Pagination.Page != 2 {
		t.Fatalf("unexpected pagination: %+v", body.Pagination)
	}
}

func TestGetTherapistDetailReturnsProfile(t *testing.T) {
	profile := buildTherapistProfile(55, "dr-anna-beispiel")
	description := "Tiefenpsychologisch fundierte Psychotherapie mit Schwerpunkt Angststörungen."
	insurance := []string{"public", "private"}
	availability := "this_week"
	profile.Description = &description
	profile.Insurance = &insurance
	profile.Availability = &availability

	repo := &stubTherapistDirectoryRepo{detail: &profile}
	handler := NewTherapistDiscoveryHandler(repo)

	app := fiber.New()
	app.Get("/api/v1/therapists/:slug", handler.GetTherapistDetail)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/therapists/dr-anna-beispiel", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Therapist models.TherapistDetailResponse `json:"therapist"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if repo.detailSlug != "dr-anna-beispiel" {
		t.Fatalf("expected detail lookup by slug, got %q", repo.detailSlug)
	}
	if body.Therapist.ID != "55" || body.Therapist.Description != description {
		t.Fatalf("unexpected therapist detail: %+v", body.Therapist)
	}
	if len(body.Therapist.Insurance) != 2 || body.Therapist.Availability != "this_week" {
		t.Fatalf("unexpected detail fields: %+v", body.Therapist)
	}
}

func TestGetTherapistDetailReturnsNotFound(t *testing.T) {
	handler := NewTherapistDiscoveryHandler(&stubTherapistDirectoryRepo{detailErr: pgx.ErrNoRows})

	app := fiber.New()
	app.Get("/api/v1/therapists/:slug", handler.GetTherapistDetail)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/therapists/unknown-slug", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

package models

import "time"

// TherapistProfile is the persistent therapist row. Nullable columns use
// pointer types; readers go through the value helpers below.
type TherapistProfile struct {
	ID                     int64     `json:"id"`
	Slug                   string    `json:"slug"`
	FullName               *string   `json:"full_name"`
	ImageURL               *string   `json:"image_url"`
	ShortDescription       *string   `json:"short_description"`
	Description            *string   `json:"description"`
	City                   *string   `json:"city"`
	PostalCode             *string   `json:"postal_code"`
	SessionType            *string   `json:"session_type"`
	Insurance              *[]string `json:"insurance"`
	ExperienceYears        *int      `json:"experience_years"`
	WizardCategories       *[]string `json:"wizard_categories"`
	WizardSubcategories    *[]string `json:"wizard_subcategories"`
	Specializations        *[]string `json:"specializations"`
	PrimaryStyleStructure  *string   `json:"primary_style_structure"`
	PrimaryStyleEngagement *string   `json:"primary_style_engagement"`
	StyleTags              *[]string `json:"style_tags"`
	TherapyDepth           *string   `json:"therapy_depth"`
	TherapyFocus           *string   `json:"therapy_focus"`
	TherapeuticStance      *[]string `json:"therapeutic_stance"`
	ExcludedTopics         *[]string `json:"excluded_topics"`
	Availability           *string   `json:"availability"`
	Gender                 *string   `json:"gender"`
	Languages              *[]string `json:"languages"`
	IsVerified             *bool     `json:"is_verified"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// TherapistForMatching is the request-scoped projection the score calculator
// works on. All fields are plain values; absent columns collapse to zero
// values here, exactly once, so the scorer never dereferences.
type TherapistForMatching struct {
	ID                     int64
	Slug                   string
	Name                   string
	ImageURL               string
	ShortDescription       string
	City                   string
	PostalCode             string
	SessionType            string
	Insurance              []string
	ExperienceYears        int
	WizardCategories       []string
	WizardSubcategories    []string
	Specializations        []string
	PrimaryStyleStructure  string
	PrimaryStyleEngagement string
	StyleTags              []string
	TherapyDepth           string
	TherapyFocus           string
	TherapeuticStance      []string
	ExcludedTopics         []string
	Availability           string
	Gender                 string
	Languages              []string
	IsVerified             bool
}

// ForMatching flattens the row into the scoring projection.
func (p TherapistProfile) ForMatching() TherapistForMatching {
	return TherapistForMatching{
		ID:                     p.ID,
		Slug:                   p.Slug,
		Name:                   StringValue(p.FullName),
		ImageURL:               StringValue(p.ImageURL),
		ShortDescription:       StringValue(p.ShortDescription),
		City:                   StringValue(p.City),
		PostalCode:             StringValue(p.PostalCode),
		SessionType:            StringValue(p.SessionType),
		Insurance:              SliceValue(p.Insurance),
		ExperienceYears:        IntValue(p.ExperienceYears),
		WizardCategories:       SliceValue(p.WizardCategories),
		WizardSubcategories:    SliceValue(p.WizardSubcategories),
		Specializations:        SliceValue(p.Specializations),
		PrimaryStyleStructure:  StringValue(p.PrimaryStyleStructure),
		PrimaryStyleEngagement: StringValue(p.PrimaryStyleEngagement),
		StyleTags:              SliceValue(p.StyleTags),
		TherapyDepth:           StringValue(p.TherapyDepth),
		TherapyFocus:           StringValue(p.TherapyFocus),
		TherapeuticStance:      SliceValue(p.TherapeuticStance),
		ExcludedTopics:         SliceValue(p.ExcludedTopics),
		Availability:           StringValue(p.Availability),
		Gender:                 StringValue(p.Gender),
		Languages:              SliceValue(p.Languages),
		IsVerified:             BoolValue(p.IsVerified),
	}
}

// StringValue dereferences s or returns "".
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// IntValue dereferences i or returns 0.
func IntValue(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

// BoolValue dereferences b or returns false.
func BoolValue(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}

// SliceValue dereferences s or returns nil.
func SliceValue(s *[]string) []string {
	if s == nil {
		return nil
	}
	return *s
}

type PaginationMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// TherapistListResponse is the public directory card for a therapist.
type TherapistListResponse struct {
	ID               string   `json:"id"`
	Slug             string   `json:"slug"`
	FullName         string   `json:"full_name"`
	ImageURL         string   `json:"image_url"`
	ShortDescription string   `json:"short_description"`
	City             string   `json:"city"`
	SessionType      string   `json:"session_type"`
	ExperienceYears  int      `json:"experience_years"`
	Specializations  []string `json:"specializations"`
	Languages        []string `json:"languages"`
	IsVerified       bool     `json:"is_verified"`
}

// TherapistDetailResponse extends the directory card with the full profile.
type TherapistDetailResponse struct {
	TherapistListResponse
	Description  string   `json:"description"`
	PostalCode   string   `json:"postal_code"`
	Insurance    []string `json:"insurance"`
	Availability string   `json:"availability"`
	Gender       string   `json:"gender"`
	StyleTags    []string `json:"style_tags"`
}

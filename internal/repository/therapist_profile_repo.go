package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/philippoppel/TheraMatchBack/internal/models"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const therapistProfileColumns = `id, slug, full_name, image_url, short_description, description,
	   city, postal_code, session_type, insurance, experience_years,
	   wizard_categories, wizard_subcategories, specializations,
	   primary_style_structure, primary_style_engagement, style_tags,
	   therapy_depth, therapy_focus, therapeutic_stance, excluded_topics,
	   availability, gender, languages, is_verified, created_at, updated_at`

type TherapistProfileRepository struct {
	db DBTX
}

func NewTherapistProfileRepository(db DBTX) *TherapistProfileRepository {
	return &TherapistProfileRepository{db: db}
}

// ListForMatching loads the candidate pool in scoring form. Only verified
// profiles participate in matching; unverified ones stay out of the pool
// entirely. The pool is small enough that scoring happens in memory rather
// than in SQL.
func (r *TherapistProfileRepository) ListForMatching(ctx context.Context) ([]models.TherapistForMatching, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM therapist_profiles
		WHERE is_verified IS TRUE
		ORDER BY id ASC
	`, therapistProfileColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := make([]models.TherapistForMatching, 0)
	for rows.Next() {
		profile, err := scanTherapistProfile(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, profile.ForMatching())
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return candidates, nil
}

type TherapistListFilter struct {
	Specialty   string
	SessionType string
	City        string
	Language    string
	Limit       int
	Offset      int
}

func (f TherapistListFilter) whereClause() (string, []any) {
	var args []any
	var parts []string

	if specialty := strings.TrimSpace(f.Specialty); specialty != "" {
		args = append(args, specialty)
		parts = append(parts, fmt.Sprintf("$%d = ANY(specializations)", len(args)))
	}
	if sessionType := strings.TrimSpace(f.SessionType); sessionType != "" {
		args = append(args, sessionType)
		parts = append(parts, fmt.Sprintf("(session_type = $%d OR session_type = 'both')", len(args)))
	}
	if city := strings.TrimSpace(f.City); city != "" {
		args = append(args, "%"+city+"%")
		parts = append(parts, fmt.Sprintf("city ILIKE $%d", len(args)))
	}
	if language := strings.TrimSpace(f.Language); language != "" {
		args = append(args, language)
		parts = append(parts, fmt.Sprintf("$%d = ANY(languages)", len(args)))
	}

	if len(parts) == 0 {
		return "TRUE", args
	}
	return strings.Join(parts, " AND "), args
}

func (r *TherapistProfileRepository) List(ctx context.Context, filter TherapistListFilter) ([]models.TherapistProfile, error) {
	where, args := filter.whereClause()

	args = append(args, filter.Limit)
	limitArg := len(args)
	args = append(args, filter.Offset)
	offsetArg := len(args)

	query := fmt.Sprintf(`
		SELECT %s
		FROM therapist_profiles
		WHERE %s
		ORDER BY is_verified DESC NULLS LAST, experience_years DESC NULLS LAST, id ASC
		LIMIT $%d OFFSET $%d
	`, therapistProfileColumns, where, limitArg, offsetArg)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make([]models.TherapistProfile, 0)
	for rows.Next() {
		profile, err := scanTherapistProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}

func (r *TherapistProfileRepository) Count(ctx context.Context, filter TherapistListFilter) (int, error) {
	where, args := filter.whereClause()

	query := fmt.Sprintf(`SELECT COUNT(*) FROM therapist_profiles WHERE %s`, where)

	var total int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *TherapistProfileRepository) GetBySlug(ctx context.Context, slug string) (*models.TherapistProfile, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM therapist_profiles
		WHERE slug = $1
	`, therapistProfileColumns)

	profile, err := scanTherapistProfile(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func scanTherapistProfile(row pgx.Row) (models.TherapistProfile, error) {
	var profile models.TherapistProfile
	err := row.Scan(
		&profile.ID,
		&profile.Slug,
		&profile.FullName,
		&profile.ImageURL,
		&profile.ShortDescription,
		&profile.Description,
		&profile.City,
		&profile.PostalCode,
		&profile.SessionType,
		&profile.Insurance,
		&profile.ExperienceYears,
		&profile.WizardCategories,
		&profile.WizardSubcategories,
		&profile.Specializations,
		&profile.PrimaryStyleStructure,
		&profile.PrimaryStyleEngagement,
		&profile.StyleTags,
		&profile.TherapyDepth,
		&profile.TherapyFocus,
		&profile.TherapeuticStance,
		&profile.ExcludedTopics,
		&profile.Availability,
		&profile.Gender,
		&profile.Languages,
		&profile.IsVerified,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	return profile, err
}

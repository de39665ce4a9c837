package repository

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// recordingDB captures the SQL handed to the pool so tests can assert on
// query shape without a live database.
type recordingDB struct {
	queries []string
}

func (d *recordingDB) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	d.queries = append(d.queries, sql)
	return pgconn.CommandTag{}, nil
}

func (d *recordingDB) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	d.queries = append(d.queries, sql)
	return emptyRows{}, nil
}

func (d *recordingDB) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	d.queries = append(d.queries, sql)
	return emptyRows{}
}

type emptyRows struct{}

func (emptyRows) Close()                                       {}
func (emptyRows) Err() error                                   { return nil }
func (emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (emptyRows) Next() bool                                   { return false }
func (emptyRows) Scan(_ ...any) error                          { return pgx.ErrNoRows }
func (emptyRows) Values() ([]any, error)                       { return nil, nil }
func (emptyRows) RawValues() [][]byte                          { return nil }
func (emptyRows) Conn() *pgx.Conn                              { return nil }

func TestListForMatchingOnlyQueriesVerifiedProfiles(t *testing.T) {
	db := &recordingDB{}
	repo := NewTherapistProfileRepository(db)

	candidates, err := repo.ListForMatching(context.Background())
	if err != nil {
		t.Fatalf("ListForMatching: %v", err)
	}
	if candidates == nil || len(candidates) != 0 {
		t.Fatalf("expected empty non-nil pool, got %v", candidates)
	}

	if len(db.queries) != 1 {
		t.Fatalf("expected a single query, got %d", len(db.queries))
	}
	if !strings.Contains(db.queries[0], "WHERE is_verified IS TRUE") {
		t.Fatalf("matching pool query must restrict to verified profiles:\n%s", db.queries[0])
	}
	if !strings.Contains(db.queries[0], "ORDER BY id ASC") {
		t.Fatalf("matching pool query must order by id:\n%s", db.queries[0])
	}
}

func TestTherapistListFilterWhereClause(t *testing.T) {
	where, args := TherapistListFilter{}.whereClause()
	if where != "TRUE" || len(args) != 0 {
		t.Fatalf("empty filter should impose no constraint, got %q with %v", where, args)
	}

	where, args = TherapistListFilter{
		Specialty:   " anxiety ",
		SessionType: "online",
		City:        "Berlin",
		Language:    "de",
	}.whereClause()

	if len(args) != 4 {
		t.Fatalf("expected 4 bound args, got %v", args)
	}
	if args[0] != "anxiety" {
		t.Fatalf("expected trimmed specialty bound first, got %v", args[0])
	}
	if args[2] != "%Berlin%" {
		t.Fatalf("expected city wrapped for ILIKE, got %v", args[2])
	}
	for _, fragment := range []string{
		"$1 = ANY(specializations)",
		"(session_type = $2 OR session_type = 'both')",
		"city ILIKE $3",
		"$4 = ANY(languages)",
	} {
		if !strings.Contains(where, fragment) {
			t.Fatalf("where clause missing %q:\n%s", fragment, where)
		}
	}
}

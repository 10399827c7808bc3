package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/arcadia/zoo-api/internal/core/domain"
)

// fakeDB records the last statement and replays canned results.
type fakeDB struct {
	lastSQL  string
	lastArgs []any
	tag      pgconn.CommandTag
	execErr  error
	row      fakeRow
	// deadline reports whether the last call carried a context deadline.
	deadline bool
}

func (f *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.lastSQL, f.lastArgs = sql, args
	_, f.deadline = ctx.Deadline()
	return f.tag, f.execErr
}

func (f *fakeDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not supported by fakeDB")
}

func (f *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	f.lastSQL, f.lastArgs = sql, args
	_, f.deadline = ctx.Deadline()
	return f.row
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return fmt.Errorf("scan: %d destinations for %d values", len(dest), len(r.values))
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *int64:
			*p = r.values[i].(int64)
		case *int:
			*p = r.values[i].(int)
		case *string:
			*p = r.values[i].(string)
		case *time.Time:
			*p = r.values[i].(time.Time)
		default:
			return fmt.Errorf("scan: unsupported destination %T", d)
		}
	}
	return nil
}

func TestAccountRepository_FindByEmail(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	db := &fakeDB{row: fakeRow{values: []any{int64(7), "vet@zoo.test", "$2a$hash", 2, created}}}
	repo := NewAccountRepository(db)

	a, err := repo.FindByEmail(context.Background(), "vet@zoo.test")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if a.ID != 7 || a.Role != domain.RoleVeterinarian || a.PasswordHash != "$2a$hash" {
		t.Fatalf("unexpected account: %+v", a)
	}
	if len(db.lastArgs) != 1 || db.lastArgs[0] != "vet@zoo.test" {
		t.Fatalf("email must be passed as a parameter, got %v", db.lastArgs)
	}
}

func TestAccountRepository_FindByEmail_NotFound(t *testing.T) {
	repo := NewAccountRepository(&fakeDB{row: fakeRow{err: pgx.ErrNoRows}})

	if _, err := repo.FindByEmail(context.Background(), "ghost@zoo.test"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountRepository_FindByEmail_CorruptRole(t *testing.T) {
	db := &fakeDB{row: fakeRow{values: []any{int64(7), "x@zoo.test", "h", 42, time.Time{}}}}
	repo := NewAccountRepository(db)

	if _, err := repo.FindByEmail(context.Background(), "x@zoo.test"); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAccountRepository_Insert(t *testing.T) {
	db := &fakeDB{row: fakeRow{values: []any{int64(12)}}}
	repo := NewAccountRepository(db)

	id, err := repo.Insert(context.Background(), "emp@zoo.test", "hash", domain.RoleEmployee)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if id != 12 {
		t.Fatalf("expected id 12, got %d", id)
	}
	if db.lastArgs[2] != 3 {
		t.Fatalf("expected role id 3 to be stored, got %v", db.lastArgs[2])
	}
}

func TestAccountRepository_Insert_UniqueViolation(t *testing.T) {
	db := &fakeDB{row: fakeRow{err: &pgconn.PgError{Code: uniqueViolation, ConstraintName: "accounts_email_key"}}}
	repo := NewAccountRepository(db)

	if _, err := repo.Insert(context.Background(), "dup@zoo.test", "hash", domain.RoleEmployee); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestExecOne_ZeroRowsIsNotFound(t *testing.T) {
	db := &fakeDB{tag: pgconn.NewCommandTag("DELETE 0")}
	repo := NewHabitatRepository(db)

	if err := repo.Delete(context.Background(), 99); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	db.tag = pgconn.NewCommandTag("DELETE 1")
	if err := repo.Delete(context.Background(), 1); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestAnimalRepository_FindByID_NotFound(t *testing.T) {
	repo := NewAnimalRepository(&fakeDB{row: fakeRow{err: pgx.ErrNoRows}})

	if _, err := repo.FindByID(context.Background(), 1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReviewRepository_SetValidated(t *testing.T) {
	db := &fakeDB{tag: pgconn.NewCommandTag("UPDATE 1")}
	repo := NewReviewRepository(db)

	if err := repo.SetValidated(context.Background(), 5, true); err != nil {
		t.Fatalf("SetValidated: %v", err)
	}
	if db.lastArgs[0] != true || db.lastArgs[1] != int64(5) {
		t.Fatalf("unexpected args: %v", db.lastArgs)
	}
}

func TestCatalogRepositories_ApplyTimeout(t *testing.T) {
	ctx := context.Background()
	calls := map[string]func(db *fakeDB) error{
		"habitat update": func(db *fakeDB) error {
			return NewHabitatRepository(db).Update(ctx, &domain.Habitat{ID: 1, Name: "Savane"})
		},
		"service delete": func(db *fakeDB) error {
			return NewZooServiceRepository(db).Delete(ctx, 1)
		},
		"review comment": func(db *fakeDB) error {
			return NewReviewRepository(db).UpdateComment(ctx, 1, "ok")
		},
		"vet report delete": func(db *fakeDB) error {
			return NewVetReportRepository(db).Delete(ctx, 1)
		},
		"animal delete": func(db *fakeDB) error {
			return NewAnimalRepository(db).Delete(ctx, 1)
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			db := &fakeDB{tag: pgconn.NewCommandTag("UPDATE 1")}
			if err := call(db); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !db.deadline {
				t.Fatalf("expected the statement to run under a deadline")
			}
		})
	}
}

func TestHabitatAndServiceRepositories_MissingRow(t *testing.T) {
	ctx := context.Background()
	db := &fakeDB{tag: pgconn.NewCommandTag("UPDATE 0")}

	if err := NewHabitatRepository(db).Update(ctx, &domain.Habitat{ID: 404, Name: "Jungle"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("habitat: expected ErrNotFound, got %v", err)
	}
	if err := NewZooServiceRepository(db).Update(ctx, &domain.ZooService{ID: 404, Name: "Train"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("service: expected ErrNotFound, got %v", err)
	}
}

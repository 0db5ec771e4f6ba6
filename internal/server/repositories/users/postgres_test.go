package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var userColumns = []string{
	"id", "email", "email_hash", "name", "photo_url", "description", "public_key",
	"fcm_token", "email_verified", "auth_provider", "locale", "created_at", "updated_at",
}

func userRow(id string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(userColumns).
		AddRow(id, "alice@example.com", "hash-1", "Alice", "https://p/1.png", "",
			"pk-1", "fcm-1", true, "google", "en", now, now)
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+users\s*\(email,\s*email_hash,\s*name,\s*photo_url,\s*public_key,\s*fcm_token,\s*email_verified,\s*auth_provider,\s*locale\)`

	rows := sqlmock.NewRows([]string{"id"}).AddRow("u-1")
	mock.ExpectQuery(q).
		WithArgs("alice@example.com", "hash-1", "Alice", "https://p/1.png", "pk-1", "fcm-1", true, "google", "en").
		WillReturnRows(rows)

	u := &models.User{
		Email: "alice@example.com", EmailHash: "hash-1", Name: "Alice",
		PhotoURL: "https://p/1.png", PublicKey: "pk-1", FcmToken: "fcm-1",
		EmailVerified: true, AuthProvider: "google", Locale: "en",
	}
	got, err := repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "u-1" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestCreate_UniqueViolation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+users`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_hash_key"})

	_, err := repo.Create(context.Background(), &models.User{EmailHash: "hash-1"})
	if !errors.Is(err, common.ErrorConflict) {
		t.Fatalf("want common.ErrorConflict, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+users`).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{EmailHash: "hash-1"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestFindByEmailHash_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.*FROM\s+users\s+WHERE\s+email_hash\s*=\s*\$1\s*$`

	mock.ExpectQuery(q).
		WithArgs("hash-1").
		WillReturnRows(userRow("u-1"))

	got, err := repo.FindByEmailHash(context.Background(), "hash-1")
	if err != nil {
		t.Fatalf("FindByEmailHash error: %v", err)
	}
	if got.ID != "u-1" || got.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestFindByEmailHash_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+users\s+WHERE\s+email_hash`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmailHash(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+users\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("u-1").
		WillReturnRows(userRow("u-1"))

	got, err := repo.GetByID(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.ID != "u-1" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+users\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestUpdateLoginProfile_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE\s+users\s+SET\s+name`).
		WithArgs("u-1", "Alice", "https://p/1.png", "fcm-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	u := &models.User{ID: "u-1", Name: "Alice", PhotoURL: "https://p/1.png", FcmToken: "fcm-1"}
	if err := repo.UpdateLoginProfile(context.Background(), u); err != nil {
		t.Fatalf("UpdateLoginProfile error: %v", err)
	}
}

func TestUpdateFcmToken_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE\s+users\s+SET\s+fcm_token`).
		WithArgs("u-1", "fcm-2").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateFcmToken(context.Background(), "u-1", "fcm-2"); err != nil {
		t.Fatalf("UpdateFcmToken error: %v", err)
	}
}

func TestUpdateFcmToken_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE\s+users\s+SET\s+fcm_token`).
		WithArgs("ghost", "fcm-2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateFcmToken(context.Background(), "ghost", "fcm-2")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestListAll_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(userColumns).
		AddRow("u-1", "alice@example.com", "h1", "Alice", "", "", "", "", true, "google", "en", now, now).
		AddRow("u-2", "bob@example.com", "h2", "Bob", "", "", "", "", false, "google", "de", now, now)
	mock.ExpectQuery(`FROM\s+users\s+ORDER\s+BY\s+created_at`).
		WillReturnRows(rows)

	got, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll error: %v", err)
	}
	if len(got) != 2 || got[1].Email != "bob@example.com" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestListAll_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+users\s+ORDER\s+BY\s+created_at`).
		WillReturnError(errors.New("db err"))

	_, err := repo.ListAll(context.Background())
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

package refreshaudit

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+refresh_audit\s*\(login_id,\s*login_meta_data,\s*meta_nonce\)`

	rows := sqlmock.NewRows([]string{"id"}).AddRow("ra-1")
	mock.ExpectQuery(q).
		WithArgs("l-1", []byte("cipher"), []byte("nonce")).
		WillReturnRows(rows)

	entry := &models.RefreshAudit{LoginID: "l-1", LoginMetaData: []byte("cipher"), MetaNonce: []byte("nonce")}
	got, err := repo.Create(context.Background(), entry)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "ra-1" {
		t.Fatalf("unexpected entry: %+v", got)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+refresh_audit`).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.RefreshAudit{LoginID: "l-1"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

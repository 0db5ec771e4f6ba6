package loginhistory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/dmitrijs2005/sessionkeeper/internal/dbx"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, entry *models.LoginHistory) (*models.LoginHistory, error) {

	query :=
		`INSERT INTO login_history (user_id, login_meta_data, meta_nonce, is_valid)
         VALUES ($1, $2, $3, true)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		entry.UserID, entry.LoginMetaData, entry.MetaNonce).Scan(&entry.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	entry.IsValid = true
	return entry, nil
}

// FindValid looks up a session by id, restricted to still-valid rows.
// A signed-out or unknown session is common.ErrorNotFound either way.
func (r *PostgresRepository) FindValid(ctx context.Context, loginID string) (*models.LoginHistory, error) {
	query :=
		`SELECT id, user_id, login_meta_data, meta_nonce, is_valid, created_at
		 FROM login_history
		 WHERE id = $1 AND is_valid = true
		 `

	entry := &models.LoginHistory{}
	err := r.db.QueryRowContext(ctx, query, loginID).Scan(
		&entry.ID, &entry.UserID, &entry.LoginMetaData, &entry.MetaNonce,
		&entry.IsValid, &entry.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return entry, nil
}

// Invalidate flips is_valid on the single row matching both the login id and
// its owner. Zero rows affected means no live session matched the filter.
func (r *PostgresRepository) Invalidate(ctx context.Context, loginID string, userID string) error {
	query :=
		`UPDATE login_history
		 SET is_valid = false
		 WHERE id = $1 AND user_id = $2 AND is_valid = true
		 `

	res, err := r.db.ExecContext(ctx, query, loginID, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.LoginHistory, error) {
	query :=
		`SELECT id, user_id, login_meta_data, meta_nonce, is_valid, created_at
		 FROM login_history
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.LoginHistory
	for rows.Next() {
		entry := &models.LoginHistory{}
		err := rows.Scan(&entry.ID, &entry.UserID, &entry.LoginMetaData,
			&entry.MetaNonce, &entry.IsValid, &entry.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/dmitrijs2005/sessionkeeper/internal/dbx"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new account. A unique-index violation on email_hash is
// reported as common.ErrorConflict; the caller decides what to do with it.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (email, email_hash, name, photo_url, public_key, fcm_token, email_verified, auth_provider, locale)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.EmailHash, user.Name, user.PhotoURL, user.PublicKey,
		user.FcmToken, user.EmailVerified, user.AuthProvider, user.Locale).Scan(&user.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) FindByEmailHash(ctx context.Context, emailHash string) (*models.User, error) {
	query :=
		`SELECT id, email, email_hash, name, photo_url, description, public_key, fcm_token,
		        email_verified, auth_provider, locale, created_at, updated_at
		 FROM users
		 WHERE email_hash = $1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, emailHash).Scan(
		&user.ID, &user.Email, &user.EmailHash, &user.Name, &user.PhotoURL,
		&user.Description, &user.PublicKey, &user.FcmToken,
		&user.EmailVerified, &user.AuthProvider, &user.Locale,
		&user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	query :=
		`SELECT id, email, email_hash, name, photo_url, description, public_key, fcm_token,
		        email_verified, auth_provider, locale, created_at, updated_at
		 FROM users
		 WHERE id = $1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&user.ID, &user.Email, &user.EmailHash, &user.Name, &user.PhotoURL,
		&user.Description, &user.PublicKey, &user.FcmToken,
		&user.EmailVerified, &user.AuthProvider, &user.Locale,
		&user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// UpdateLoginProfile refreshes the mutable profile fields on every login.
// The stored public key is never touched here.
func (r *PostgresRepository) UpdateLoginProfile(ctx context.Context, user *models.User) error {
	query :=
		`UPDATE users
		 SET name = $2, photo_url = $3, fcm_token = $4, updated_at = now()
		 WHERE id = $1
		 `

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Name, user.PhotoURL, user.FcmToken)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) UpdateFcmToken(ctx context.Context, userID string, fcmToken string) error {
	query :=
		`UPDATE users
		 SET fcm_token = $2, updated_at = now()
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, userID, fcmToken)
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

func (r *PostgresRepository) ListAll(ctx context.Context) ([]*models.User, error) {
	query :=
		`SELECT id, email, email_hash, name, photo_url, description, public_key, fcm_token,
		        email_verified, auth_provider, locale, created_at, updated_at
		 FROM users
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.User
	for rows.Next() {
		user := &models.User{}
		err := rows.Scan(
			&user.ID, &user.Email, &user.EmailHash, &user.Name, &user.PhotoURL,
			&user.Description, &user.PublicKey, &user.FcmToken,
			&user.EmailVerified, &user.AuthProvider, &user.Locale,
			&user.CreatedAt, &user.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

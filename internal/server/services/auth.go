// Package services contains server-side business logic. This file implements
// AuthService, the session lifecycle engine: authenticating identity tokens
// (login or signup), refreshing sessions, and signing out.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/dmitrijs2005/sessionkeeper/internal/cryptox"
	"github.com/dmitrijs2005/sessionkeeper/internal/dbx"
	"github.com/dmitrijs2005/sessionkeeper/internal/logging"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/auth"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/config"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/identity"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/models"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// Auth branch outcomes.
const (
	AuthTypeLogin  = "LOGIN"
	AuthTypeSignup = "SIGNUP"
)

// AuthResult is the outcome of an Authenticate call. PublicKey carries the
// stored key only when an existing account logged in; on signup the caller
// already holds the key it just registered.
type AuthResult struct {
	Token     string
	AuthType  string
	User      *models.User
	LoginID   string
	MetaData  string
	PublicKey string
}

// AuthService implements the session lifecycle:
// - Authenticate: verify an identity token, then log in or sign up
// - RefreshToken: extend a still-valid session
// - Signout: invalidate a session
// - UpdateFcmToken: overwrite an account's push token
type AuthService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	verifier                     identity.Verifier
	logger                       logging.Logger
	jwtSecret                    []byte
	encryptKey                   []byte
	hashKey                      []byte
	initialTokenValidityDuration time.Duration
	refreshTokenValidityDuration time.Duration
}

// NewAuthService constructs an AuthService using repositories, an identity
// verifier, and server config. Encryption and hashing keys are derived from
// the configured secrets with HKDF so the stored material is never a raw
// config string.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, verifier identity.Verifier, logger logging.Logger, cfg *config.Config) (*AuthService, error) {
	encryptKey, err := cryptox.DeriveKey(cfg.EncryptKey, "metadata-encryption")
	if err != nil {
		return nil, fmt.Errorf("deriving encrypt key: %w", err)
	}
	hashKey, err := cryptox.DeriveKey(cfg.HashKey, "email-hash")
	if err != nil {
		return nil, fmt.Errorf("deriving hash key: %w", err)
	}
	return &AuthService{
		db:                           db,
		repomanager:                  m,
		verifier:                     verifier,
		logger:                       logger,
		jwtSecret:                    []byte(cfg.SecretKey),
		encryptKey:                   encryptKey,
		hashKey:                      hashKey,
		initialTokenValidityDuration: cfg.InitialTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}, nil
}

// Authenticate verifies the identity token and either logs an existing
// account in or creates a new one. Profile update (or insert) and the
// login-history row land in a single transaction. A unique-index conflict
// on the email hash is returned as-is; the caller retries.
func (s *AuthService) Authenticate(ctx context.Context, identityToken, metaData, publicKey, fcmToken string) (*AuthResult, error) {
	if identityToken == "" || publicKey == "" || fcmToken == "" {
		return nil, common.ErrorInvalidArgument
	}

	claims, err := s.verifier.Verify(ctx, identityToken)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidArgument) {
			return nil, common.ErrorInvalidArgument
		}
		s.logger.Error(ctx, "identity verification failed", "error", err)
		return nil, common.ErrorInternal
	}
	if claims.Email == "" || claims.Name == "" {
		return nil, common.ErrorInvalidArgument
	}

	emailHash := cryptox.HashData(strings.ToLower(claims.Email), s.hashKey)

	// the lookup only chooses the branch; the unique index is what actually
	// prevents duplicate accounts
	existing, err := s.repomanager.Users(s.db).FindByEmailHash(ctx, emailHash)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	cipher, nonce, err := s.encryptMetaData(metaData)
	if err != nil {
		return nil, common.ErrorInternal
	}

	var user *models.User
	var entry *models.LoginHistory
	authType := AuthTypeSignup
	if existing != nil {
		authType = AuthTypeLogin
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		usersTx := s.repomanager.Users(tx)

		if existing != nil {
			existing.Name = claims.Name
			existing.PhotoURL = claims.Picture
			existing.FcmToken = fcmToken
			if err := usersTx.UpdateLoginProfile(ctx, existing); err != nil {
				return err
			}
			user = existing
		} else {
			created, err := usersTx.Create(ctx, &models.User{
				Email:         claims.Email,
				EmailHash:     emailHash,
				Name:          claims.Name,
				PhotoURL:      claims.Picture,
				PublicKey:     publicKey,
				FcmToken:      fcmToken,
				EmailVerified: claims.EmailVerified,
				AuthProvider:  claims.Provider,
				Locale:        claims.Locale,
			})
			if err != nil {
				return err
			}
			user = created
		}

		created, err := s.repomanager.LoginHistory(tx).Create(ctx, &models.LoginHistory{
			UserID:        user.ID,
			LoginMetaData: cipher,
			MetaNonce:     nonce,
		})
		if err != nil {
			return err
		}
		entry = created
		return nil
	}); err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, common.ErrorConflict
		}
		s.logger.Error(ctx, "authenticate transaction failed", "error", err)
		return nil, common.ErrorInternal
	}

	if user == nil || user.ID == "" || entry == nil || entry.ID == "" {
		return nil, common.ErrorNotFound
	}

	token, err := auth.GenerateSessionToken(user.ID, entry.ID, auth.TokenTypeInitial, s.jwtSecret, s.initialTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	result := &AuthResult{
		Token:    token,
		AuthType: authType,
		User:     user,
		LoginID:  entry.ID,
		MetaData: metaData,
	}
	if authType == AuthTypeLogin {
		result.PublicKey = user.PublicKey
	}
	return result, nil
}

// RefreshToken issues a REFRESH token for a still-valid session and appends
// an audit row. The audit write happens after issuance and outside any
// transaction; the token is the source of truth, the audit row is a trace.
func (s *AuthService) RefreshToken(ctx context.Context, userID, loginID, metaData string) (string, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return "", common.ErrorInvalidArgument
	}
	if _, err := uuid.Parse(loginID); err != nil {
		return "", common.ErrorInvalidArgument
	}

	entry, err := s.repomanager.LoginHistory(s.db).FindValid(ctx, loginID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrInvalidSession
		}
		return "", common.ErrorInternal
	}
	if entry.UserID != userID {
		return "", common.ErrInvalidSession
	}

	token, err := auth.GenerateSessionToken(userID, loginID, auth.TokenTypeRefresh, s.jwtSecret, s.refreshTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	cipher, nonce, err := s.encryptMetaData(metaData)
	if err != nil {
		return "", common.ErrorInternal
	}
	if _, err := s.repomanager.RefreshAudit(s.db).Create(ctx, &models.RefreshAudit{
		LoginID:       loginID,
		LoginMetaData: cipher,
		MetaNonce:     nonce,
	}); err != nil {
		s.logger.Error(ctx, "refresh audit write failed", "error", err, "loginId", loginID)
		return "", common.ErrorInternal
	}

	return token, nil
}

// Signout invalidates the session matching both the login id and its owner.
// A session that is already invalid, missing, or owned by someone else is
// indistinguishable: ErrorNotFound.
func (s *AuthService) Signout(ctx context.Context, userID, loginID string) error {
	if _, err := uuid.Parse(userID); err != nil {
		return common.ErrorInvalidArgument
	}
	if _, err := uuid.Parse(loginID); err != nil {
		return common.ErrorInvalidArgument
	}

	err := s.repomanager.LoginHistory(s.db).Invalidate(ctx, loginID, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}
	return nil
}

// UpdateFcmToken overwrites the push token of an account.
func (s *AuthService) UpdateFcmToken(ctx context.Context, userID, fcmToken string) error {
	if fcmToken == "" {
		return common.ErrorInvalidArgument
	}
	if _, err := uuid.Parse(userID); err != nil {
		return common.ErrorInvalidArgument
	}

	err := s.repomanager.Users(s.db).UpdateFcmToken(ctx, userID, fcmToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}
	return nil
}

func (s *AuthService) encryptMetaData(metaData string) ([]byte, []byte, error) {
	if metaData == "" {
		return nil, nil, nil
	}
	return cryptox.EncryptMetaData([]byte(metaData), s.encryptKey)
}

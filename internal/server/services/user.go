package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/dmitrijs2005/sessionkeeper/internal/cryptox"
	"github.com/dmitrijs2005/sessionkeeper/internal/logging"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/cache"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/config"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/models"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// LoginInfo is a login-history entry with its metadata decrypted back to
// the plaintext JSON the client originally sent.
type LoginInfo struct {
	LoginID   string
	UserID    string
	MetaData  string
	IsValid   bool
	CreatedAt time.Time
}

// UserService answers profile and login-history queries. Profile reads go
// through a Redis cache-aside; cache failures degrade to Postgres reads.
type UserService struct {
	db           *sql.DB
	repomanager  repomanager.RepositoryManager
	cache        cache.Cache
	logger       logging.Logger
	encryptKey   []byte
	userCacheTTL time.Duration
}

// NewUserService constructs a UserService using repositories, a cache, and
// server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, c cache.Cache, logger logging.Logger, cfg *config.Config) (*UserService, error) {
	encryptKey, err := cryptox.DeriveKey(cfg.EncryptKey, "metadata-encryption")
	if err != nil {
		return nil, fmt.Errorf("deriving encrypt key: %w", err)
	}
	return &UserService{
		db:           db,
		repomanager:  m,
		cache:        c,
		logger:       logger,
		encryptKey:   encryptKey,
		userCacheTTL: cfg.UserCacheTTL,
	}, nil
}

// GetUserLoginInfo returns the still-valid session matching the login id
// and its owner, with decrypted metadata.
func (s *UserService) GetUserLoginInfo(ctx context.Context, userID, loginID string) (*LoginInfo, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, common.ErrorInvalidArgument
	}
	if _, err := uuid.Parse(loginID); err != nil {
		return nil, common.ErrorInvalidArgument
	}

	entry, err := s.repomanager.LoginHistory(s.db).FindValid(ctx, loginID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	if entry.UserID != userID {
		return nil, common.ErrorNotFound
	}

	return s.toLoginInfo(ctx, entry)
}

// GetUserDetails returns a single account profile, consulting the cache
// first. Cache errors are logged and the read falls through to Postgres.
func (s *UserService) GetUserDetails(ctx context.Context, userID string) (*models.User, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, common.ErrorInvalidArgument
	}

	cacheKey := "user:" + userID
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey)
		if err == nil {
			user := &models.User{}
			if err := json.Unmarshal(cached, user); err == nil {
				return user, nil
			}
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn(ctx, "user cache read failed", "error", err)
		}
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	if s.cache != nil {
		if data, err := json.Marshal(user); err == nil {
			if err := s.cache.Set(ctx, cacheKey, data, s.userCacheTTL); err != nil {
				s.logger.Warn(ctx, "user cache write failed", "error", err)
			}
		}
	}

	return user, nil
}

// GetAllUsers lists account profiles, optionally excluding one user id
// (typically the caller's own).
func (s *UserService) GetAllUsers(ctx context.Context, excludeUserID string) ([]*models.User, error) {
	all, err := s.repomanager.Users(s.db).ListAll(ctx)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if excludeUserID == "" {
		return all, nil
	}

	result := make([]*models.User, 0, len(all))
	for _, u := range all {
		if u.ID != excludeUserID {
			result = append(result, u)
		}
	}
	return result, nil
}

// GetUserLoginHistory lists a user's sessions, newest first, with
// decrypted metadata.
func (s *UserService) GetUserLoginHistory(ctx context.Context, userID string) ([]*LoginInfo, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, common.ErrorInvalidArgument
	}

	entries, err := s.repomanager.LoginHistory(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, common.ErrorInternal
	}

	result := make([]*LoginInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := s.toLoginInfo(ctx, entry)
		if err != nil {
			return nil, err
		}
		result = append(result, info)
	}
	return result, nil
}

func (s *UserService) toLoginInfo(ctx context.Context, entry *models.LoginHistory) (*LoginInfo, error) {
	info := &LoginInfo{
		LoginID:   entry.ID,
		UserID:    entry.UserID,
		IsValid:   entry.IsValid,
		CreatedAt: entry.CreatedAt,
	}
	if len(entry.LoginMetaData) > 0 {
		plain, err := cryptox.DecryptMetaData(entry.LoginMetaData, entry.MetaNonce, s.encryptKey)
		if err != nil {
			s.logger.Error(ctx, "metadata decryption failed", "error", err, "loginId", entry.ID)
			return nil, common.ErrorInternal
		}
		info.MetaData = string(plain)
	}
	return info, nil
}

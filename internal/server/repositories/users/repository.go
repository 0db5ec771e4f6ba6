package users

import (
	"context"

	"github.com/dmitrijs2005/sessionkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByEmailHash(ctx context.Context, emailHash string) (*models.User, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
	UpdateLoginProfile(ctx context.Context, user *models.User) error
	UpdateFcmToken(ctx context.Context, userID string, fcmToken string) error
	ListAll(ctx context.Context) ([]*models.User, error)
}

package loginhistory

import (
	"context"

	"github.com/dmitrijs2005/sessionkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, entry *models.LoginHistory) (*models.LoginHistory, error)
	FindValid(ctx context.Context, loginID string) (*models.LoginHistory, error)
	Invalidate(ctx context.Context, loginID string, userID string) error
	ListByUser(ctx context.Context, userID string) ([]*models.LoginHistory, error)
}

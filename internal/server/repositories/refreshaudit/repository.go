package refreshaudit

import (
	"context"

	"github.com/dmitrijs2005/sessionkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, entry *models.RefreshAudit) (*models.RefreshAudit, error)
}

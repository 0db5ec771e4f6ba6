package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/sessionkeeper/internal/dbx"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/repositories/loginhistory"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/repositories/refreshaudit"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	LoginHistory(db dbx.DBTX) loginhistory.Repository
	RefreshAudit(db dbx.DBTX) refreshaudit.Repository
}

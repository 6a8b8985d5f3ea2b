package repomanager

import (
	"context"
	"database/sql"

	"github.com/nebasjoa/rentable/internal/dbx"
	"github.com/nebasjoa/rentable/internal/server/repositories/inquiries"
	"github.com/nebasjoa/rentable/internal/server/repositories/users"
	"github.com/nebasjoa/rentable/internal/server/repositories/wishlist"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Inquiries(db dbx.DBTX) inquiries.Repository
	Wishlist(db dbx.DBTX) wishlist.Repository
}

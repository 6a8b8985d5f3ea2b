package services

import (
	"context"
	"database/sql"

	"github.com/nebasjoa/rentable/internal/common"
	"github.com/nebasjoa/rentable/internal/server/models"
	"github.com/nebasjoa/rentable/internal/server/repositories/repomanager"
)

// WishlistService maintains each user's saved-articles set. Add and Remove
// are idempotent, so callers may retry them freely.
type WishlistService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewWishlistService(db *sql.DB, m repomanager.RepositoryManager) *WishlistService {
	return &WishlistService{db: db, repomanager: m}
}

func (s *WishlistService) Add(ctx context.Context, item *models.WishlistItem) error {
	if item.UserID <= 0 || item.ArticleID <= 0 || item.OwnerID <= 0 {
		return common.ErrInvalidInput
	}
	return s.repomanager.Wishlist(s.db).Add(ctx, item)
}

func (s *WishlistService) Remove(ctx context.Context, item *models.WishlistItem) error {
	if item.UserID <= 0 || item.ArticleID <= 0 || item.OwnerID <= 0 {
		return common.ErrInvalidInput
	}
	return s.repomanager.Wishlist(s.db).Remove(ctx, item)
}

func (s *WishlistService) Exists(ctx context.Context, userID, articleID int64) (bool, error) {
	return s.repomanager.Wishlist(s.db).Exists(ctx, userID, articleID)
}

func (s *WishlistService) ListForUser(ctx context.Context, userID int64) ([]models.Article, error) {
	return s.repomanager.Wishlist(s.db).ListForUser(ctx, userID)
}

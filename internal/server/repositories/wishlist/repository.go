// Package wishlist persists the saved-articles set, one row per
// (user, article, owner) tuple.
package wishlist

import (
	"context"

	"github.com/nebasjoa/rentable/internal/server/models"
)

type Repository interface {
	// Add inserts the tuple. Adding an existing tuple is a no-op, not an
	// error.
	Add(ctx context.Context, item *models.WishlistItem) error

	// Remove deletes the tuple. Removing an absent tuple succeeds.
	Remove(ctx context.Context, item *models.WishlistItem) error

	// Exists reports whether the user has saved the article.
	Exists(ctx context.Context, userID, articleID int64) (bool, error)

	// ListForUser returns the articles on the user's wishlist, joined from
	// the article store, in store order.
	ListForUser(ctx context.Context, userID int64) ([]models.Article, error)
}

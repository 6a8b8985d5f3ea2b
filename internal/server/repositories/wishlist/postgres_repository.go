package wishlist

import (
	"context"
	"fmt"

	"github.com/nebasjoa/rentable/internal/common"
	"github.com/nebasjoa/rentable/internal/dbx"
	"github.com/nebasjoa/rentable/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Add relies on the primary key plus ON CONFLICT DO NOTHING, so a retried or
// repeated add never creates a duplicate row and never fails.
func (r *PostgresRepository) Add(ctx context.Context, item *models.WishlistItem) error {

	query :=
		`INSERT INTO wishlist (user_id, article_id, owner_id)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, article_id, owner_id) DO NOTHING
		 `

	_, err := r.db.ExecContext(ctx, query, item.UserID, item.ArticleID, item.OwnerID)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}

	return nil
}

func (r *PostgresRepository) Remove(ctx context.Context, item *models.WishlistItem) error {
	query :=
		`DELETE FROM wishlist
		 WHERE user_id = $1 AND article_id = $2 AND owner_id = $3
		 `

	_, err := r.db.ExecContext(ctx, query, item.UserID, item.ArticleID, item.OwnerID)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}

	return nil
}

func (r *PostgresRepository) Exists(ctx context.Context, userID, articleID int64) (bool, error) {
	query :=
		`SELECT EXISTS (
		     SELECT 1 FROM wishlist WHERE user_id = $1 AND article_id = $2
		 )`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, userID, articleID).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}

	return exists, nil
}

func (r *PostgresRepository) ListForUser(ctx context.Context, userID int64) ([]models.Article, error) {
	query :=
		`SELECT a.id, a.title, a.owner_id
		 FROM wishlist w
		 JOIN articles a ON a.id = w.article_id
		 WHERE w.user_id = $1
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var result []models.Article
	for rows.Next() {
		var article models.Article
		if err := rows.Scan(&article.ID, &article.Title, &article.OwnerID); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
		}
		result = append(result, article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}

	return result, nil
}

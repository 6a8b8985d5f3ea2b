package inquiries

import (
	"context"
	"database/sql"
	"errors"
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

func (r *PostgresRepository) Create(ctx context.Context, inquiry *models.Inquiry) error {

	query :=
		`INSERT INTO inquiries (inquiry_id, article_id, requester_id, owner_id, start_date, end_date, day_count, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 `

	_, err := r.db.ExecContext(ctx, query,
		inquiry.InquiryID, inquiry.ArticleID, inquiry.RequesterID, inquiry.OwnerID,
		inquiry.StartDate, inquiry.EndDate, inquiry.DayCount, inquiry.Status)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrInquiryExists
		}
		return fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}

	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, inquiryID string) (*models.Inquiry, error) {
	query :=
		`SELECT inquiry_id, article_id, requester_id, owner_id, start_date, end_date, day_count, status
		 FROM inquiries
		 WHERE inquiry_id = $1
		 `

	inquiry := &models.Inquiry{}
	err := r.db.QueryRowContext(ctx, query, inquiryID).Scan(
		&inquiry.InquiryID, &inquiry.ArticleID, &inquiry.RequesterID, &inquiry.OwnerID,
		&inquiry.StartDate, &inquiry.EndDate, &inquiry.DayCount, &inquiry.Status)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrInquiryNotFound
		}
		return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}

	return inquiry, nil
}

// UpdateStatusFrom is the transition guard: the expected current status is
// part of the WHERE clause, so a concurrent writer that got there first makes
// this a no-op instead of a lost update.
func (r *PostgresRepository) UpdateStatusFrom(ctx context.Context, inquiryID string, from, to models.InquiryStatus) (bool, error) {
	query :=
		`UPDATE inquiries SET status = $3
		 WHERE inquiry_id = $1 AND status = $2
		 `

	result, err := r.db.ExecContext(ctx, query, inquiryID, from, to)
	if err != nil {
		return false, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}

	return affected > 0, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, inquiryID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM inquiries WHERE inquiry_id = $1`, inquiryID)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}
	if affected == 0 {
		return common.ErrInquiryNotFound
	}

	return nil
}

func (r *PostgresRepository) CopyToArchive(ctx context.Context, inquiryID string) error {
	query :=
		`INSERT INTO inquiries_archive (inquiry_id, article_id, requester_id, owner_id, start_date, end_date, day_count, status)
		 SELECT inquiry_id, article_id, requester_id, owner_id, start_date, end_date, day_count, status
		 FROM inquiries
		 WHERE inquiry_id = $1
		 `

	result, err := r.db.ExecContext(ctx, query, inquiryID)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}
	if affected == 0 {
		return common.ErrInquiryNotFound
	}

	return nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.Inquiry, error) {
	return r.list(ctx, `owner_id`, ownerID)
}

func (r *PostgresRepository) ListByRequester(ctx context.Context, requesterID int64) ([]models.Inquiry, error) {
	return r.list(ctx, `requester_id`, requesterID)
}

func (r *PostgresRepository) ListByArticle(ctx context.Context, articleID int64) ([]models.Inquiry, error) {
	return r.list(ctx, `article_id`, articleID)
}

func (r *PostgresRepository) list(ctx context.Context, column string, id int64) ([]models.Inquiry, error) {
	query := fmt.Sprintf(
		`SELECT inquiry_id, article_id, requester_id, owner_id, start_date, end_date, day_count, status
		 FROM inquiries
		 WHERE %s = $1
		 ORDER BY inquiry_id`, column)

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var result []models.Inquiry
	for rows.Next() {
		var inquiry models.Inquiry
		if err := rows.Scan(
			&inquiry.InquiryID, &inquiry.ArticleID, &inquiry.RequesterID, &inquiry.OwnerID,
			&inquiry.StartDate, &inquiry.EndDate, &inquiry.DayCount, &inquiry.Status); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
		}
		result = append(result, inquiry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}

	return result, nil
}

// Package inquiries persists rental inquiries and their archive copies.
package inquiries

import (
	"context"

	"github.com/nebasjoa/rentable/internal/server/models"
)

type Repository interface {
	// Create inserts a new live inquiry. A duplicate inquiry id yields
	// common.ErrInquiryExists.
	Create(ctx context.Context, inquiry *models.Inquiry) error

	// GetByID returns the live inquiry or common.ErrInquiryNotFound.
	GetByID(ctx context.Context, inquiryID string) (*models.Inquiry, error)

	// UpdateStatusFrom sets the status to "to" only if the current status is
	// "from", in a single conditional write. It reports whether a row was
	// updated; false means the inquiry is absent or not in "from" status.
	UpdateStatusFrom(ctx context.Context, inquiryID string, from, to models.InquiryStatus) (bool, error)

	// Delete hard-removes the live inquiry; common.ErrInquiryNotFound if
	// nothing was deleted.
	Delete(ctx context.Context, inquiryID string) error

	// CopyToArchive writes the live record, in its current status, into the
	// append-only archive. common.ErrInquiryNotFound if the live row is gone.
	CopyToArchive(ctx context.Context, inquiryID string) error

	ListByOwner(ctx context.Context, ownerID int64) ([]models.Inquiry, error)
	ListByRequester(ctx context.Context, requesterID int64) ([]models.Inquiry, error)
	ListByArticle(ctx context.Context, articleID int64) ([]models.Inquiry, error)
}

package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/nebasjoa/rentable/internal/common"
	"github.com/nebasjoa/rentable/internal/dbx"
	"github.com/nebasjoa/rentable/internal/server/models"
	"github.com/nebasjoa/rentable/internal/server/repositories/repomanager"
)

// InquiryService is the lifecycle manager for rental inquiries. It validates
// transitions, enforces which party may trigger them, and delegates
// persistence to the inquiry store.
//
// Legal transitions: pending -> accepted | declined; any live status may be
// archived; archived is terminal.
type InquiryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewInquiryService(db *sql.DB, m repomanager.RepositoryManager) *InquiryService {
	return &InquiryService{db: db, repomanager: m}
}

// Create opens a new inquiry in pending status. The date range is validated
// before any store call; the store's uniqueness constraint is the only guard
// against two concurrent creates with the same id.
func (s *InquiryService) Create(ctx context.Context, inquiry *models.Inquiry) error {
	if strings.TrimSpace(inquiry.InquiryID) == "" ||
		inquiry.ArticleID <= 0 || inquiry.RequesterID <= 0 || inquiry.OwnerID <= 0 {
		return common.ErrInvalidInput
	}
	// An owner may not inquire on their own article.
	if inquiry.RequesterID == inquiry.OwnerID {
		return common.ErrInvalidInput
	}
	if inquiry.StartDate.After(inquiry.EndDate) {
		return common.ErrInvalidRange
	}

	inquiry.Status = models.StatusPending
	repo := s.repomanager.Inquiries(s.db)
	return repo.Create(ctx, inquiry)
}

// Accept moves the inquiry from pending to accepted. Only the article owner
// on the record may accept.
func (s *InquiryService) Accept(ctx context.Context, actorID int64, inquiryID string) error {
	return s.decide(ctx, actorID, inquiryID, models.StatusAccepted)
}

// Decline moves the inquiry from pending to declined. Only the article owner
// on the record may decline.
func (s *InquiryService) Decline(ctx context.Context, actorID int64, inquiryID string) error {
	return s.decide(ctx, actorID, inquiryID, models.StatusDeclined)
}

func (s *InquiryService) decide(ctx context.Context, actorID int64, inquiryID string, to models.InquiryStatus) error {
	repo := s.repomanager.Inquiries(s.db)

	inquiry, err := repo.GetByID(ctx, inquiryID)
	if err != nil {
		return err
	}
	if inquiry.OwnerID != actorID {
		return common.ErrForbidden
	}

	// The conditional write re-validates the status; the read above is only
	// for authorization and cannot be trusted under concurrency.
	updated, err := repo.UpdateStatusFrom(ctx, inquiryID, models.StatusPending, to)
	if err != nil {
		return err
	}
	if !updated {
		if _, err := repo.GetByID(ctx, inquiryID); err != nil {
			if errors.Is(err, common.ErrInquiryNotFound) {
				return common.ErrInquiryNotFound
			}
			return err
		}
		return common.ErrIllegalTransition
	}

	return nil
}

// Withdraw hard-deletes a live inquiry. Only the requester may withdraw, and
// only while the inquiry is still pending.
func (s *InquiryService) Withdraw(ctx context.Context, actorID int64, inquiryID string) error {
	repo := s.repomanager.Inquiries(s.db)

	inquiry, err := repo.GetByID(ctx, inquiryID)
	if err != nil {
		return err
	}
	if inquiry.RequesterID != actorID {
		return common.ErrForbidden
	}
	if inquiry.Status != models.StatusPending {
		return common.ErrIllegalTransition
	}

	return repo.Delete(ctx, inquiryID)
}

// Archive copies the inquiry, in its current status, into the immutable
// archive and retires the live record, in one transaction. Either party may
// archive.
func (s *InquiryService) Archive(ctx context.Context, actorID int64, inquiryID string) error {
	repo := s.repomanager.Inquiries(s.db)

	inquiry, err := repo.GetByID(ctx, inquiryID)
	if err != nil {
		return err
	}
	if inquiry.OwnerID != actorID && inquiry.RequesterID != actorID {
		return common.ErrForbidden
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.repomanager.Inquiries(tx)
		if err := repoTx.CopyToArchive(ctx, inquiryID); err != nil {
			return err
		}
		return repoTx.Delete(ctx, inquiryID)
	})
}

// ListReceived returns the live inquiries addressed to ownerID.
func (s *InquiryService) ListReceived(ctx context.Context, ownerID int64) ([]models.Inquiry, error) {
	return s.repomanager.Inquiries(s.db).ListByOwner(ctx, ownerID)
}

// ListSent returns the live inquiries opened by requesterID.
func (s *InquiryService) ListSent(ctx context.Context, requesterID int64) ([]models.Inquiry, error) {
	return s.repomanager.Inquiries(s.db).ListByRequester(ctx, requesterID)
}

// ListForArticle returns the live inquiries on an article.
func (s *InquiryService) ListForArticle(ctx context.Context, articleID int64) ([]models.Inquiry, error) {
	return s.repomanager.Inquiries(s.db).ListByArticle(ctx, articleID)
}

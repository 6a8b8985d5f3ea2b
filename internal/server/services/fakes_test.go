package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/nebasjoa/rentable/internal/common"
	"github.com/nebasjoa/rentable/internal/dbx"
	"github.com/nebasjoa/rentable/internal/server/models"
	"github.com/nebasjoa/rentable/internal/server/repositories/inquiries"
	"github.com/nebasjoa/rentable/internal/server/repositories/users"
	"github.com/nebasjoa/rentable/internal/server/repositories/wishlist"
)

// --- shared helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

// fakeRepoManager returns the same fakes regardless of the DBTX handle.
type fakeRepoManager struct {
	usersRepo     users.Repository
	inquiriesRepo inquiries.Repository
	wishlistRepo  wishlist.Repository
}

func (f *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (f *fakeRepoManager) Users(dbx.DBTX) users.Repository { return f.usersRepo }

func (f *fakeRepoManager) Inquiries(dbx.DBTX) inquiries.Repository { return f.inquiriesRepo }

func (f *fakeRepoManager) Wishlist(dbx.DBTX) wishlist.Repository { return f.wishlistRepo }

// --- users ---

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	getOut *models.User
	getErr error

	createCalls int
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	u.ID = 1
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

// --- inquiries: a stateful in-memory store ---

type memInquiryRepo struct {
	live    map[string]*models.Inquiry
	archive map[string]models.Inquiry

	createCalls int
}

func newMemInquiryRepo() *memInquiryRepo {
	return &memInquiryRepo{
		live:    make(map[string]*models.Inquiry),
		archive: make(map[string]models.Inquiry),
	}
}

func (m *memInquiryRepo) Create(ctx context.Context, inquiry *models.Inquiry) error {
	m.createCalls++
	if _, ok := m.live[inquiry.InquiryID]; ok {
		return common.ErrInquiryExists
	}
	cp := *inquiry
	m.live[inquiry.InquiryID] = &cp
	return nil
}

func (m *memInquiryRepo) GetByID(ctx context.Context, inquiryID string) (*models.Inquiry, error) {
	inquiry, ok := m.live[inquiryID]
	if !ok {
		return nil, common.ErrInquiryNotFound
	}
	cp := *inquiry
	return &cp, nil
}

func (m *memInquiryRepo) UpdateStatusFrom(ctx context.Context, inquiryID string, from, to models.InquiryStatus) (bool, error) {
	inquiry, ok := m.live[inquiryID]
	if !ok || inquiry.Status != from {
		return false, nil
	}
	inquiry.Status = to
	return true, nil
}

func (m *memInquiryRepo) Delete(ctx context.Context, inquiryID string) error {
	if _, ok := m.live[inquiryID]; !ok {
		return common.ErrInquiryNotFound
	}
	delete(m.live, inquiryID)
	return nil
}

func (m *memInquiryRepo) CopyToArchive(ctx context.Context, inquiryID string) error {
	inquiry, ok := m.live[inquiryID]
	if !ok {
		return common.ErrInquiryNotFound
	}
	m.archive[inquiryID] = *inquiry
	return nil
}

func (m *memInquiryRepo) ListByOwner(ctx context.Context, ownerID int64) ([]models.Inquiry, error) {
	return m.filter(func(i *models.Inquiry) bool { return i.OwnerID == ownerID }), nil
}

func (m *memInquiryRepo) ListByRequester(ctx context.Context, requesterID int64) ([]models.Inquiry, error) {
	return m.filter(func(i *models.Inquiry) bool { return i.RequesterID == requesterID }), nil
}

func (m *memInquiryRepo) ListByArticle(ctx context.Context, articleID int64) ([]models.Inquiry, error) {
	return m.filter(func(i *models.Inquiry) bool { return i.ArticleID == articleID }), nil
}

func (m *memInquiryRepo) filter(keep func(*models.Inquiry) bool) []models.Inquiry {
	var result []models.Inquiry
	for _, inquiry := range m.live {
		if keep(inquiry) {
			result = append(result, *inquiry)
		}
	}
	return result
}

// --- wishlist: a stateful in-memory set ---

type memWishlistRepo struct {
	items map[models.WishlistItem]bool
}

func newMemWishlistRepo() *memWishlistRepo {
	return &memWishlistRepo{items: make(map[models.WishlistItem]bool)}
}

func (m *memWishlistRepo) Add(ctx context.Context, item *models.WishlistItem) error {
	m.items[*item] = true
	return nil
}

func (m *memWishlistRepo) Remove(ctx context.Context, item *models.WishlistItem) error {
	delete(m.items, *item)
	return nil
}

func (m *memWishlistRepo) Exists(ctx context.Context, userID, articleID int64) (bool, error) {
	for item := range m.items {
		if item.UserID == userID && item.ArticleID == articleID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memWishlistRepo) ListForUser(ctx context.Context, userID int64) ([]models.Article, error) {
	var result []models.Article
	for item := range m.items {
		if item.UserID == userID {
			result = append(result, models.Article{ID: item.ArticleID, OwnerID: item.OwnerID})
		}
	}
	return result, nil
}

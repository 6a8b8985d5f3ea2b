// Package httpapi is the HTTP boundary of the service. It maps requests to
// service operations and translates the failure kinds of internal/common to
// status codes; no raw storage detail crosses this layer.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nebasjoa/rentable/internal/logging"
	"github.com/nebasjoa/rentable/internal/server/models"
)

// AuthService is the slice of the auth service the handlers use.
type AuthService interface {
	Register(ctx context.Context, email, password string, registeredAt time.Time) error
	Login(ctx context.Context, email, password string) (string, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
}

// InquiryService is the slice of the lifecycle manager the handlers use.
type InquiryService interface {
	Create(ctx context.Context, inquiry *models.Inquiry) error
	Accept(ctx context.Context, actorID int64, inquiryID string) error
	Decline(ctx context.Context, actorID int64, inquiryID string) error
	Withdraw(ctx context.Context, actorID int64, inquiryID string) error
	Archive(ctx context.Context, actorID int64, inquiryID string) error
	ListReceived(ctx context.Context, ownerID int64) ([]models.Inquiry, error)
	ListSent(ctx context.Context, requesterID int64) ([]models.Inquiry, error)
	ListForArticle(ctx context.Context, articleID int64) ([]models.Inquiry, error)
}

// WishlistService is the slice of the wishlist service the handlers use.
type WishlistService interface {
	Add(ctx context.Context, item *models.WishlistItem) error
	Remove(ctx context.Context, item *models.WishlistItem) error
	Exists(ctx context.Context, userID, articleID int64) (bool, error)
	ListForUser(ctx context.Context, userID int64) ([]models.Article, error)
}

type Handler struct {
	auth      AuthService
	inquiries InquiryService
	wishlist  WishlistService
	logger    logging.Logger
}

func NewHandler(auth AuthService, inquiries InquiryService, wishlist WishlistService, logger logging.Logger) *Handler {
	return &Handler{
		auth:      auth,
		inquiries: inquiries,
		wishlist:  wishlist,
		logger:    logger.With("module", "httpapi"),
	}
}

// actor resolves the authenticated email (set by RequireAuth) to the stored
// account. It writes the error response itself and reports success.
func (h *Handler) actor(c *gin.Context) (*models.User, bool) {
	email := c.GetString(ctxUserEmail)
	if email == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": kindInvalidToken})
		return nil, false
	}

	user, err := h.auth.UserByEmail(c.Request.Context(), email)
	if err != nil {
		h.writeError(c, err)
		return nil, false
	}
	return user, true
}

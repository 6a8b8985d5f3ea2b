package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nebasjoa/rentable/internal/common"
	"github.com/nebasjoa/rentable/internal/server/models"
)

const dateLayout = "2006-01-02"

func (h *Handler) CreateInquiry(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req createInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, common.ErrInvalidInput)
		return
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		h.writeError(c, common.ErrInvalidInput)
		return
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		h.writeError(c, common.ErrInvalidInput)
		return
	}

	inquiry := &models.Inquiry{
		InquiryID:   req.InquiryID,
		ArticleID:   req.ArticleID,
		RequesterID: actor.ID,
		OwnerID:     req.OwnerID,
		StartDate:   start,
		EndDate:     end,
		DayCount:    req.DayCount,
	}

	if err := h.inquiries.Create(c.Request.Context(), inquiry); err != nil {
		h.writeError(c, err)
		return
	}

	h.logger.Info(c.Request.Context(), "inquiry created", "inquiry_id", inquiry.InquiryID, "article_id", inquiry.ArticleID)
	c.JSON(http.StatusCreated, inquiry)
}

func (h *Handler) AcceptInquiry(c *gin.Context) {
	h.decide(c, h.inquiries.Accept)
}

func (h *Handler) DeclineInquiry(c *gin.Context) {
	h.decide(c, h.inquiries.Decline)
}

func (h *Handler) decide(c *gin.Context, op func(ctx context.Context, actorID int64, inquiryID string) error) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	if err := op(c.Request.Context(), actor.ID, c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

func (h *Handler) ArchiveInquiry(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	if err := h.inquiries.Archive(c.Request.Context(), actor.ID, c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "archived"})
}

func (h *Handler) WithdrawInquiry(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	if err := h.inquiries.Withdraw(c.Request.Context(), actor.ID, c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func (h *Handler) ListReceivedInquiries(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	result, err := h.inquiries.ListReceived(c.Request.Context(), actor.ID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) ListSentInquiries(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	result, err := h.inquiries.ListSent(c.Request.Context(), actor.ID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) ListArticleInquiries(c *gin.Context) {
	if _, ok := h.actor(c); !ok {
		return
	}

	articleID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.writeError(c, common.ErrInvalidInput)
		return
	}

	result, err := h.inquiries.ListForArticle(c.Request.Context(), articleID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

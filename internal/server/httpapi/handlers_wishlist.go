package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nebasjoa/rentable/internal/common"
	"github.com/nebasjoa/rentable/internal/server/models"
)

func (h *Handler) AddToWishlist(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req wishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, common.ErrInvalidInput)
		return
	}

	item := &models.WishlistItem{UserID: actor.ID, ArticleID: req.ArticleID, OwnerID: req.OwnerID}
	if err := h.wishlist.Add(c.Request.Context(), item); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "added"})
}

func (h *Handler) RemoveFromWishlist(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req wishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, common.ErrInvalidInput)
		return
	}

	item := &models.WishlistItem{UserID: actor.ID, ArticleID: req.ArticleID, OwnerID: req.OwnerID}
	if err := h.wishlist.Remove(c.Request.Context(), item); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "removed"})
}

func (h *Handler) CheckWishlist(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	articleID, err := strconv.ParseInt(c.Query("article_id"), 10, 64)
	if err != nil {
		h.writeError(c, common.ErrInvalidInput)
		return
	}

	exists, err := h.wishlist.Exists(c.Request.Context(), actor.ID, articleID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, existsResponse{Exists: exists})
}

func (h *Handler) ListWishlist(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	articles, err := h.wishlist.ListForUser(c.Request.Context(), actor.ID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, articles)
}

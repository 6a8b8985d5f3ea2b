package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nebasjoa/rentable/internal/common"
)

func (h *Handler) RegisterUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, common.ErrInvalidInput)
		return
	}

	if err := h.auth.Register(c.Request.Context(), req.Email, req.Password, time.Now()); err != nil {
		h.writeError(c, err)
		return
	}

	h.logger.Info(c.Request.Context(), "user registered", "email", req.Email)
	c.JSON(http.StatusCreated, gin.H{"message": "user registered"})
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, common.ErrInvalidInput)
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tokenResponse{AccessToken: token})
}

package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nebasjoa/rentable/internal/common"
)

// Machine-readable error kinds returned in response bodies.
const (
	kindInvalidInput       = "invalid_input"
	kindInvalidRange       = "invalid_range"
	kindInvalidCredentials = "invalid_credentials"
	kindInvalidToken       = "invalid_token"
	kindForbidden          = "forbidden"
	kindNotFound           = "not_found"
	kindEmailTaken         = "email_taken"
	kindInquiryExists      = "inquiry_exists"
	kindIllegalTransition  = "illegal_transition"
	kindStoreUnavailable   = "store_unavailable"
	kindInternal           = "internal_error"
)

// writeError maps a service failure to its stable status code and kind.
func (h *Handler) writeError(c *gin.Context, err error) {
	status, kind := http.StatusInternalServerError, kindInternal

	switch {
	case errors.Is(err, common.ErrInvalidInput):
		status, kind = http.StatusBadRequest, kindInvalidInput
	case errors.Is(err, common.ErrInvalidRange):
		status, kind = http.StatusBadRequest, kindInvalidRange
	case errors.Is(err, common.ErrInvalidCredentials):
		status, kind = http.StatusUnauthorized, kindInvalidCredentials
	case errors.Is(err, common.ErrInvalidToken):
		status, kind = http.StatusUnauthorized, kindInvalidToken
	case errors.Is(err, common.ErrForbidden):
		status, kind = http.StatusForbidden, kindForbidden
	case errors.Is(err, common.ErrUserNotFound), errors.Is(err, common.ErrInquiryNotFound):
		status, kind = http.StatusNotFound, kindNotFound
	case errors.Is(err, common.ErrEmailTaken):
		status, kind = http.StatusConflict, kindEmailTaken
	case errors.Is(err, common.ErrInquiryExists):
		status, kind = http.StatusConflict, kindInquiryExists
	case errors.Is(err, common.ErrIllegalTransition):
		status, kind = http.StatusConflict, kindIllegalTransition
	case errors.Is(err, common.ErrStoreUnavailable):
		status, kind = http.StatusServiceUnavailable, kindStoreUnavailable
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "err", err.Error())
	}

	c.AbortWithStatusJSON(status, gin.H{"error": kind})
}

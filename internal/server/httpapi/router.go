package httpapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Handler    *Handler
	JWTSecret  []byte
	CORSOrigin string
}

// NewRouter builds the gin engine: public register/login/health plus a
// bearer-authenticated group for inquiries and wishlist.
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{deps.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", requestIDHeader},
		AllowCredentials: deps.CORSOrigin != "*",
	}))

	h := deps.Handler

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/register", h.RegisterUser)
	r.POST("/login", h.Login)

	authed := r.Group("/")
	authed.Use(RequireAuth(deps.JWTSecret))

	authed.POST("/inquiries", h.CreateInquiry)
	authed.PUT("/inquiries/:id/accept", h.AcceptInquiry)
	authed.PUT("/inquiries/:id/decline", h.DeclineInquiry)
	authed.POST("/inquiries/:id/archive", h.ArchiveInquiry)
	authed.DELETE("/inquiries/:id", h.WithdrawInquiry)
	authed.GET("/inquiries/received", h.ListReceivedInquiries)
	authed.GET("/inquiries/sent", h.ListSentInquiries)
	authed.GET("/articles/:id/inquiries", h.ListArticleInquiries)

	authed.POST("/wishlist", h.AddToWishlist)
	authed.DELETE("/wishlist", h.RemoveFromWishlist)
	authed.GET("/wishlist/check", h.CheckWishlist)
	authed.GET("/wishlist", h.ListWishlist)

	return r
}

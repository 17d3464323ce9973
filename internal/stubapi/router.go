package stubapi

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"
)

// NewRouter assembles the stub's routes under /api/v1, mirroring the path
// layout of the hosted API.
func NewRouter(logger *slog.Logger, h *Handler, jwtKey []byte) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(sloggin.New(logger))

	v1 := r.Group("/api/v1")

	v1.GET("/products", h.ListProducts)
	v1.GET("/products/search", h.SearchProducts)

	v1.POST("/auth/register", h.Register)
	v1.POST("/auth/login", h.Login)

	// Protected cart routes
	cart := v1.Group("/cart", Auth(jwtKey))
	cart.GET("", h.GetCart)
	cart.POST("", h.PostCart)

	return r
}

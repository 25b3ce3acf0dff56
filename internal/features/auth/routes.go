package auth

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mubashirjatoi/todo-api/internal/config"
	"github.com/mubashirjatoi/todo-api/internal/middleware"
	"github.com/mubashirjatoi/todo-api/internal/pkg/ratelimit"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	repo := NewRepository(db)
	handler := NewHandler(repo, cfg)

	// Credential endpoints are a brute-force target, keep them throttled.
	limiter := ratelimit.New(20, time.Minute)
	limiter.StartCleanup(5 * time.Minute)

	group := router.Group("/auth")
	group.Use(ratelimit.Middleware(limiter))
	{
		group.POST("/register", handler.Register)
		group.POST("/login", handler.Login)
		group.GET("/me", middleware.Auth(cfg), handler.Me)
	}
}

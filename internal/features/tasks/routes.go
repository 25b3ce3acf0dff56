package tasks

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mubashirjatoi/todo-api/internal/config"
	"github.com/mubashirjatoi/todo-api/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	repo := NewRepository(db)
	handler := NewHandler(repo)

	group := router.Group("/tasks")
	group.Use(middleware.Auth(cfg)) // All task routes require authentication
	{
		group.GET("/", handler.List)
		group.POST("/", handler.Create)
		group.GET("/:id", handler.Get)
		group.PUT("/:id", handler.Update)
		group.DELETE("/:id", handler.Delete)
		group.PATCH("/:id/complete", handler.Complete)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mubashirjatoi/todo-api/internal/config"
	"github.com/mubashirjatoi/todo-api/internal/features/auth"
	"github.com/mubashirjatoi/todo-api/internal/features/tasks"
)

// SetupRoutes mounts every feature under the /api prefix
func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config) {
	api := router.Group("/api")

	auth.RegisterRoutes(api, db, cfg)
	tasks.RegisterRoutes(api, db, cfg)
}

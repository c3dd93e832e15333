package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	_ "attendance-tracker/docs"
	"attendance-tracker/internal/config"
	"attendance-tracker/internal/router"
	"attendance-tracker/internal/store"
)

// @title       Attendance Tracker API
// @version     1.0
// @description Small service for recording employee attendance.
// @BasePath    /
func main() {
	cfg := config.Load()

	ctx := context.Background()
	client := store.Connect(ctx, cfg.MongoURL)
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB)
	if err := store.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("create indexes: %v", err)
	}

	employees := store.NewMongoEmployeeStore(db)
	slots := store.NewMongoWorkSlotStore(db)

	r := gin.Default()

	// Simple health check (also verifies store connectivity)
	r.GET("/health", func(c *gin.Context) {
		if err := client.Ping(c.Request.Context(), readpref.Primary()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "db_error", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.Setup(r, employees, slots)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

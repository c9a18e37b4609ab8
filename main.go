package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/malik-shaik/DevHub/config/database"
	"github.com/malik-shaik/DevHub/config/environment"
	"github.com/malik-shaik/DevHub/middleware"
	route "github.com/malik-shaik/DevHub/routes/api"
)

func main() {
	cfg := environment.Load()

	client := database.InitFirestore(context.Background(), cfg)
	defer client.Close()

	r := gin.Default()

	r.Use(middleware.ErrorHandlerMiddleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Content-Type", middleware.TokenHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "api running")
	})

	route.RegisterRoutes(r, cfg, client)

	log.Println("Server running on port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

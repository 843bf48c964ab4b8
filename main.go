package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"fixuno-backend/config"
	"fixuno-backend/controllers"
	"fixuno-backend/models"
	"fixuno-backend/routes"
	"fixuno-backend/services"
	"fixuno-backend/store"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	if config.HasDB() {
		config.DB.AutoMigrate(
			&models.KVEntry{},
		)
	}
}

func main() {
	var backend store.Persistence
	if config.HasDB() {
		backend = store.NewGormPersistence(config.DB)
	} else {
		log.Println("DB_URL not set, running on in-memory persistence")
		backend = store.NewMemoryPersistence()
	}

	st := store.New(backend)
	st.Load()

	carts := services.NewCartSessions()
	nav := services.NewNavSessions()
	submissions := services.NewSubmissionService(st, services.NotifierFromEnv())
	bot := services.NewAssistant(context.Background())

	tracker := services.NewTracker(st)
	tracker.Start()
	defer tracker.Stop()

	controllers.Setup(st, carts, nav, submissions, bot, tracker)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}

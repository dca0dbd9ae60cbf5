package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	paymentControllers "github.com/developerssaddam/bistro-boss-server/controllers/payment"
	"github.com/developerssaddam/bistro-boss-server/models"
	"github.com/developerssaddam/bistro-boss-server/routes"
)

func main() {
	log.Println("Starting bistro-boss server...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	if err := db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Review{},
		&models.CartEntry{},
		&models.Payment{},
		&models.PaymentItem{},
		&models.PaymentCartRef{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Server test route
	r.GET("/", func(c *gin.Context) {
		c.String(200, "Server is running on port: %s", listenPort())
	})

	routes.SetupRoutes(r, db)

	// Retry cart cleanup for payments whose checkout was interrupted.
	go paymentControllers.StartCartCleanup(db, time.Minute)

	port := listenPort()
	log.Printf("Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func listenPort() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "9090"
	}
	return port
}

func allowedOrigins() []string {
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		origins := strings.Split(raw, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		return origins
	}
	return []string{"http://localhost:5173"}
}

// initDatabase sets up the GORM DB connection. With no DB env configured it
// falls back to an in-memory sqlite store for local runs.
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("DB connection failed: %v", err)
		}
		return db
	}

	if host := os.Getenv("DB_HOST"); host != "" {
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			host,
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
		)
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to connect DB: %v", err)
		}
		return db
	}

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to open in-memory DB: %v", err)
	}
	log.Println("No DB configured; using in-memory sqlite")
	return db
}

package main

import (
	"log"
	"os"
	"strings"
	"time"

	"gingallery/controller"
	"gingallery/database"
	"gingallery/gallery"
	"gingallery/middlewares"
	"gingallery/route"
	"gingallery/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println(err)
	}

	client, err := database.Connect(os.Getenv("MONGO_URI"))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "gallery"
	}

	categories := database.NewCategoryStore(client, dbName)
	settings := database.NewSettingsStore(client, dbName)

	backend := storage.New(os.Getenv("TELEGRAM_BOT_TOKEN"), os.Getenv("TELEGRAM_FILE_CHANNEL_ID"))
	recorder := gallery.NewRecorder(categories)
	uploader := gallery.NewUploader(backend, recorder)

	handler := &controller.Handler{
		Client:     client,
		Categories: categories,
		Settings:   settings,
		Backend:    backend,
		Uploader:   uploader,
		Recorder:   recorder,
	}

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return strings.HasPrefix(origin, "http://localhost:") ||
				strings.HasPrefix(origin, "http://127.0.0.1:") ||
				strings.HasPrefix(origin, "https://")
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	rateLimit := middlewares.NewRateLimiter(1000, time.Minute)
	router.Use(rateLimit.Middleware())

	route.Protected(router, handler)
	route.Public(router, handler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8007"
	}
	router.Run(":" + port)
}

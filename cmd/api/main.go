package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/OsaidZaher/webDev-Y3-FoodApp-sub000/internal/auth"
	"github.com/OsaidZaher/webDev-Y3-FoodApp-sub000/internal/db"
	"github.com/OsaidZaher/webDev-Y3-FoodApp-sub000/internal/history"
	"github.com/OsaidZaher/webDev-Y3-FoodApp-sub000/internal/insights"
	"github.com/OsaidZaher/webDev-Y3-FoodApp-sub000/internal/llm"
	"github.com/OsaidZaher/webDev-Y3-FoodApp-sub000/internal/places"
	"github.com/OsaidZaher/webDev-Y3-FoodApp-sub000/internal/recognition"
	"github.com/OsaidZaher/webDev-Y3-FoodApp-sub000/internal/router"
	"github.com/OsaidZaher/webDev-Y3-FoodApp-sub000/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	memoryMode := os.Getenv("MEMORY_STORE") == "1"

	required := []string{
		"JWT_SECRET",
		"VISION_API_KEY",
		"PLACES_API_KEY",
		"GEMINI_API_KEY",
		"GEMINI_MODEL",
	}
	if !memoryMode {
		required = append(required, "DATABASE_URL")
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("Missing env var: %s", k)
		}
	}

	// ───────────────────────── STORES ─────────────────────────
	var (
		userRepo auth.UserRepository
		kv       history.KV
	)

	if memoryMode {
		log.Println("MEMORY_STORE=1, running without Postgres")
		userRepo = auth.NewInMemoryUserRepository()
		kv = history.NewMemoryKV()
	} else {
		pgDB := db.ConnectPostgres()
		defer pgDB.Close()

		userRepo = auth.NewPostgresUserRepository(pgDB)
		kv = history.NewPostgresKV(pgDB)
	}

	historyStore := history.NewStore(kv)

	// ───────────────────────── PHOTO STORAGE ─────────────────────────
	var uploader storage.Uploader
	if os.Getenv("R2_ENDPOINT") != "" {
		r2Client, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("R2 init failed:", err)
		}
		uploader = r2Client
	} else {
		log.Println("R2 not configured, photo previews disabled")
	}

	// ───────────────────────── SERVICES ─────────────────────────
	authService := auth.NewService(userRepo)

	recognitionService := recognition.NewService(
		recognition.NewVisionClient(),
		recognition.NewDisambiguator(nil),
		historyStore,
		uploader,
	)

	placesService := places.NewService(places.NewGoogleClient())
	insightService := insights.NewService(historyStore)
	aiRecommender := llm.NewRecommender(llm.NewGeminiClient())

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.NewRouter(router.Handlers{
		Auth:        auth.NewHandler(authService),
		Recognition: recognition.NewHandler(recognitionService),
		Places:      places.NewHandler(placesService),
		History:     history.NewHandler(historyStore),
		Insights:    insights.NewHandler(insightService, aiRecommender),
	})

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Println("API running at http://localhost:" + port)
	r.Run(":" + port)
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"studymentor/internal/ai"
	"studymentor/internal/auth"
	"studymentor/internal/chat"
	"studymentor/internal/config"
	"studymentor/internal/flashcard"
	"studymentor/internal/material"
	"studymentor/internal/models"
	"studymentor/internal/quiz"
	"studymentor/pkg/cache"
	"studymentor/pkg/database"
	"studymentor/pkg/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg := config.Load()

	db, err := database.NewPostgresDB(&database.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Material{},
		&models.Quiz{},
		&models.Question{},
		&models.Flashcard{},
		&models.QuizResponse{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	redisCache := cache.NewRedisCache(cfg.RedisAddr)

	fileStore, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	aiClient := ai.NewClient(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)

	authService := auth.NewService(auth.NewRepository(db), cfg.JWTSecret)
	materialService := material.NewService(material.NewRepository(db), fileStore, redisCache, aiClient)
	quizService := quiz.NewService(quiz.NewRepository(db), materialService, aiClient)
	flashcardService := flashcard.NewService(flashcard.NewRepository(db), materialService, aiClient)
	chatService := chat.NewService(materialService, aiClient)

	authHandler := auth.NewHandler(authService)
	materialHandler := material.NewHandler(materialService)
	quizHandler := quiz.NewHandler(quizService)
	flashcardHandler := flashcard.NewHandler(flashcardService)
	chatHandler := chat.NewHandler(chatService)

	router := mux.NewRouter()

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	})
	handler := corsMiddleware.Handler(router)

	// Auth routes - no token required
	router.HandleFunc("/api/auth/register", authHandler.Register).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// Everything else requires a valid bearer token
	apiRouter := router.PathPrefix("/api").Subrouter()
	apiRouter.Use(auth.Middleware(authService))

	apiRouter.HandleFunc("/auth/me", authHandler.Me).Methods("GET")
	apiRouter.HandleFunc("/materials/upload", materialHandler.Upload).Methods("POST", "OPTIONS")
	apiRouter.HandleFunc("/materials", materialHandler.List).Methods("GET")
	apiRouter.HandleFunc("/materials/{id}", materialHandler.Get).Methods("GET")
	apiRouter.HandleFunc("/quiz/generate", quizHandler.Generate).Methods("POST", "OPTIONS")
	apiRouter.HandleFunc("/quiz/{id}/submit", quizHandler.Submit).Methods("POST", "OPTIONS")
	apiRouter.HandleFunc("/flashcards/generate", flashcardHandler.Generate).Methods("POST", "OPTIONS")
	apiRouter.HandleFunc("/flashcards/{material_id}", flashcardHandler.List).Methods("GET")
	apiRouter.HandleFunc("/chat/ask", chatHandler.Ask).Methods("POST", "OPTIONS")

	// No write timeout: generation requests block on the model provider
	// for as long as the transport allows.
	srv := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     handler,
		ReadTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if err := redisCache.Close(); err != nil {
		log.Printf("Error closing redis: %v", err)
	}
	if err := database.Close(db); err != nil {
		log.Printf("Error closing database: %v", err)
	}

	log.Println("Server shutdown gracefully")
}

package main

import (
	"context"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/smartcards/backend/internal/config"
	"github.com/smartcards/backend/internal/db"
	"github.com/smartcards/backend/internal/handler"
	"github.com/smartcards/backend/internal/service"
)

// dataStore is everything the services need from storage. Both db.Postgres
// and db.Memory satisfy it; which one runs is decided here at startup.
type dataStore interface {
	service.UserStore
	service.GroupStore
	service.FlashcardStore
}

// @title SmartCards Backend API
// @version 1.0
// @description Flashcard study backend: auth, uploads and group/card management.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if cfg.Auth.UsesDevSecret() {
		log.Println("[WARN] JWT_SECRET is unset; using the built-in development key. Do not run this in production.")
	}

	tokens, err := service.NewTokenService(cfg.Auth)
	if err != nil {
		log.Fatalf("auth config: %v", err)
	}

	ctx := context.Background()
	var store dataStore
	if cfg.Postgres.DatabaseURL != "" || cfg.Postgres.User != "" {
		pg, err := db.NewPostgres(ctx, cfg.Postgres)
		if err != nil {
			log.Fatalf("postgres: %v", err)
		}
		defer pg.Close()
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Fatalf("postgres schema: %v", err)
		}
		store = pg
		log.Println("using postgres store")
	} else {
		store = db.NewMemory()
		log.Println("[WARN] no database configured; using the in-memory store, data is lost on restart")
	}

	authSvc := service.NewAuthService(store, tokens)
	groupSvc := service.NewGroupService(store, service.NewPlaceholderGenerator())
	cardSvc := service.NewFlashcardService(store)

	router := gin.Default()
	if cfg.Server.AllowedOrigins != "" {
		router.Use(handler.CORSMiddleware(strings.Split(cfg.Server.AllowedOrigins, ",")))
	}

	router.GET("/", handler.Root)
	router.GET("/ping", handler.Ping)
	router.GET("/openapi.json", handler.OpenAPIDoc)

	authHandler := handler.NewAuthHandler(authSvc)
	auth := router.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", handler.AuthMiddleware(authSvc), authHandler.Me)

	groupHandler := handler.NewGroupHandler(groupSvc)
	groups := router.Group("/groups", handler.AuthMiddleware(authSvc))
	groups.GET("", groupHandler.List)
	groups.POST("/upload", groupHandler.Upload)
	groups.DELETE("/:group_id", groupHandler.Delete)

	cardHandler := handler.NewFlashcardHandler(cardSvc)
	cards := router.Group("/flashcards", handler.AuthMiddleware(authSvc))
	cards.GET("/group/:group_id", cardHandler.ListByGroup)
	cards.PUT("/:card_id", cardHandler.Update)
	cards.DELETE("/:card_id", cardHandler.Delete)

	addr := ":" + cfg.Server.Port
	log.Printf("listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"context"
	"log"
	"net/http"

	_ "prodrec-tf/docs" // swagger docs

	"prodrec-tf/internal/cache"
	"prodrec-tf/internal/config"
	"prodrec-tf/internal/dataset"
	"prodrec-tf/internal/db"
	"prodrec-tf/internal/handler"
	"prodrec-tf/internal/recommender"
	"prodrec-tf/internal/repository"
	"prodrec-tf/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title ProdRec API
// @version 1.0
// @description API del TF: recomendador item-based de productos (coseno, Mongo, Redis)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo y Redis
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	// repos
	userRepo := repository.NewUserRepository()
	productRepo := repository.NewProductRepository()
	interactionRepo := repository.NewInteractionRepository()
	recRepo := repository.NewRecommendationRepository()

	// origen de interacciones para el modelo
	var source dataset.Source
	switch cfg.DataSource {
	case "mongo":
		source = interactionRepo
	case "csv":
		source = dataset.NewCSVSource(cfg.DataPath)
	default:
		log.Fatalf("[main] DATA_SOURCE inválido: %q (csv|mongo)", cfg.DataSource)
	}

	buildOpts := recommender.BuildOptions{
		MinInteractionsUser:    cfg.MinInteractionsUser,
		MinInteractionsProduct: cfg.MinInteractionsProduct,
		SampleSize:             cfg.SampleSize,
		SampleSeed:             cfg.SampleSeed,
		MaxMatrixCells:         cfg.MaxMatrixCells,
	}

	// services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	productSvc := service.NewProductService(productRepo)
	interactionSvc := service.NewInteractionService(interactionRepo, productRepo)
	recSvc := service.NewRecommendService(source, cfg.DataSource, buildOpts, productRepo, recRepo)

	// construir el modelo ANTES de escuchar: si falla, el server no
	// arranca (nunca servimos con un modelo a medias o ausente)
	if err := recSvc.BuildModel(context.Background()); err != nil {
		log.Fatalf("[main] build del modelo falló: %v", err)
	}

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	productH := handler.NewProductHandler(productSvc)
	interactionH := handler.NewInteractionHandler(interactionSvc)
	recH := handler.NewRecommendHandler(recSvc)
	adminModelH := handler.NewAdminModelHandler(recSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	// el frontend estático corre en otro origen
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", handler.Health)

	r.Post("/auth/register", authH.Register)
	r.Post("/auth/login", authH.Login)

	// catálogo (público)
	r.Get("/products", productH.List)
	r.Get("/products/{id}", productH.GetProduct)

	// modelo (público, como en el frontend original)
	r.Get("/users", recH.GetModelUsers)
	r.Get("/recommendations/{id}", recH.GetRecommendations)

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	authMw := handler.JWTAuth(cfg.JWTSecret)

	r.Group(func(r chi.Router) {
		r.Use(authMw)

		// ---- Endpoints /me (USER normal) ----
		r.Route("/me", func(r chi.Router) {
			r.Get("/interactions", interactionH.GetMyInteractions)
			r.Post("/interactions", interactionH.PostMyInteraction)
			r.Get("/recommendations", recH.GetMyRecommendations)
		})

		// ---- Endpoints solo ADMIN ----
		r.Group(func(r chi.Router) {
			r.Use(handler.AdminOnly())

			// gestión del catálogo
			r.Post("/admin/products", productH.CreateProduct)
			r.Put("/admin/products/{id}", productH.UpdateProduct)

			// WebSocket
			r.Get("/users/{id}/recommendations/ws", recH.GetRecommendationsWS)

			// --- mantenimiento del modelo ---
			handler.MountAdminModelRoutes(r, adminModelH)
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}

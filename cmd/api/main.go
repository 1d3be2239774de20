package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"tradehub/internal/config"
	"tradehub/internal/database"
	"tradehub/internal/middleware"
	"tradehub/internal/modules/assignment"
	"tradehub/internal/modules/auth"
	"tradehub/internal/modules/bid"
	"tradehub/internal/modules/job"
	"tradehub/internal/modules/matching"
	"tradehub/internal/modules/signoff"
	"tradehub/internal/modules/subscription"
	"tradehub/internal/modules/unlock"
	jwtsvc "tradehub/internal/pkg/jwt"
	"tradehub/internal/pkg/notify"
	"tradehub/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	jobRepo := repository.NewJobRepository(db)
	bidRepo := repository.NewBidRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	unlockRepo := repository.NewUnlockRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	signoffRepo := repository.NewSignoffRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)
	sender := notify.NewLogSender()

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	jobService := job.NewService(jobRepo, unlockRepo, assignmentRepo, sender)
	jobHandler := job.NewHandler(jobService)

	matchingService := matching.NewService(jobRepo, userRepo)
	matchingHandler := matching.NewHandler(matchingService)

	bidService := bid.NewService(jobRepo, bidRepo, sender)
	bidHandler := bid.NewHandler(bidService)

	assignmentService := assignment.NewService(jobRepo, userRepo, assignmentRepo, sender)
	assignmentHandler := assignment.NewHandler(assignmentService)

	unlockService := unlock.NewService(jobRepo, unlockRepo, subscriptionRepo)
	unlockHandler := unlock.NewHandler(unlockService)

	subscriptionService := subscription.NewService(subscriptionRepo)
	subscriptionHandler := subscription.NewHandler(subscriptionService)

	signoffService := signoff.NewService(jobRepo, assignmentRepo, signoffRepo, reviewRepo, sender)
	signoffHandler := signoff.NewHandler(signoffService)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			jobHandler.RegisterRoutes(protected)
			matchingHandler.RegisterRoutes(protected)
			bidHandler.RegisterRoutes(protected)
			assignmentHandler.RegisterRoutes(protected)
			unlockHandler.RegisterRoutes(protected)
			subscriptionHandler.RegisterRoutes(protected)
			signoffHandler.RegisterRoutes(protected)
		}
	}

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

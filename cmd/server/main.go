package main

import (
	"context"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"hubsite/internal/auth"
	"hubsite/internal/cache"
	"hubsite/internal/config"
	"hubsite/internal/db"
	"hubsite/internal/handler"
	"hubsite/internal/mail"
	"hubsite/internal/model"
	"hubsite/internal/repository"
	"hubsite/internal/router"
	"hubsite/internal/seed"
	"hubsite/internal/service"
	"hubsite/internal/session"
)

func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.DataHubRecord{},
		&model.Bike{},
		&model.BikeBooking{},
		&model.PetProduct{},
		&model.PetOrder{},
		&model.PetOrderItem{},
		&model.ContactMessage{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	dataHubRepo := repository.NewDataHubRepository(gormDB)
	bikeRepo := repository.NewBikeRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	bookingRepo := repository.NewBookingRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)
	contactRepo := repository.NewContactRepository(gormDB)

	// Seed the catalog on an empty database
	if err := seed.Catalog(context.Background(), bikeRepo, productRepo); err != nil {
		log.Fatalf("seed catalog: %v", err)
	}

	// Sessions and auth guard
	sessions := session.NewManager([]byte(cfg.SessionSecret), cfg.CookieSecure)
	guard := auth.NewGuard(sessions, userRepo)

	// Notification sink
	mailer := mail.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom)

	// Initialize services
	authService := service.NewAuthService(userRepo, service.DefaultPasswordPolicy())
	dataHubService := service.NewDataHubService(dataHubRepo)
	catalogService := service.NewCatalogService(bikeRepo, productRepo, cacheClient)
	bookingService := service.NewBookingService(catalogService, bookingRepo, mailer)
	checkoutService := service.NewCheckoutService(catalogService, orderRepo, mailer)
	contactService := service.NewContactService(contactRepo, mailer, cfg.ContactEmail)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, sessions)
	dataHubHandler := handler.NewDataHubHandler(dataHubService)
	bikeHandler := handler.NewBikeHandler(catalogService, bookingService)
	shopHandler := handler.NewShopHandler(catalogService, checkoutService, sessions)
	contactHandler := handler.NewContactHandler(contactService)

	// Register routes
	router.Register(
		e,
		sessions,
		guard,
		authHandler,
		dataHubHandler,
		bikeHandler,
		shopHandler,
		contactHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

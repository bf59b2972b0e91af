package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spicehouse/restaurant-backend/internal/catalog"
	"github.com/spicehouse/restaurant-backend/internal/logger"
	"github.com/spicehouse/restaurant-backend/internal/order"
	"github.com/spicehouse/restaurant-backend/internal/payment"
	"github.com/spicehouse/restaurant-backend/internal/router"
	storage "github.com/spicehouse/restaurant-backend/internal/storage/mongo"
	"github.com/spicehouse/restaurant-backend/internal/user"
)

func main() {
	if err := run(); err != nil {
		panic(err)
	}
}

func run() error {
	cfg, err := NewConfig()
	if err != nil {
		log.Fatal(err)
	}
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	startupCtx, cancelStartup := context.WithTimeout(ctx, 10*time.Second)
	defer cancelStartup()

	store, err := storage.NewMongoStorage(startupCtx, cfg.DatabaseConnection, cfg.DatabaseName)
	if err != nil {
		log.Fatalf("Failed to initialize Mongo storage: %v", err)
	}
	defer func() {
		closeCtx, cancelClose := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelClose()
		if err := store.Close(closeCtx); err != nil {
			log.Printf("Warning: failed to close storage: %v", err)
		}
	}()

	userSvc := user.NewService(store, []byte(cfg.JWTSecret), cfg.JWTTTL)
	if err := userSvc.EnsureAdmin(startupCtx, cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
	userHandler := user.NewHandler(userSvc)

	orderSvc := order.NewService(store)
	orderHandler := order.NewHandler(orderSvc)

	gateway := payment.NewRazorpayGateway(cfg.PaymentGatewayConfig)
	paymentSvc := payment.NewService(store, store, gateway, cfg.PaymentGatewayConfig)
	paymentHandler := payment.NewHandler(paymentSvc)

	catalogSvc := catalog.NewService(store)
	catalogHandler := catalog.NewHandler(catalogSvc)

	r := router.NewRouter(userHandler, orderHandler, paymentHandler, catalogHandler, []byte(cfg.JWTSecret), store)

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		payment.DispatcherLoop(
			ctx,
			paymentSvc,
			cfg.ReconcileWorkers,
			cfg.ReconcileInterval,
		)
	}()

	go func() {
		log.Printf("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	cancel()

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
	return nil
}

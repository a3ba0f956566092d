package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"brandhub/internal/config"
	"brandhub/internal/db"
	"brandhub/internal/events"
	"brandhub/internal/httpserver"
	"brandhub/internal/identity"
	"brandhub/internal/logging"
	"brandhub/internal/repo"
	"brandhub/internal/search"
	"brandhub/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	database, err := db.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	producer := events.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer func() { _ = producer.Close() }()

	var indexer *search.Indexer
	productSvc := &service.ProductService{ESIndex: cfg.ESIndex}
	if cfg.ESURL != "" {
		es, err := search.NewClient(search.Config{
			URL:      cfg.ESURL,
			User:     cfg.ESUser,
			Password: cfg.ESPassword,
		})
		if err != nil {
			log.Fatalf("elasticsearch: %v", err)
		}
		indexer = search.NewIndexer(es, cfg.ESIndex)
		productSvc.ES = es
	}

	store := &repo.GormRepo{DB: database}
	resolver := &identity.Resolver{Repo: store, JWTSecret: cfg.JWTSecret}

	authSvc := &service.AuthService{
		Repo:           store,
		JWTSecret:      cfg.JWTSecret,
		AccessTokenTTL: cfg.AccessTokenTTL,
	}
	userSvc := &service.UserService{Repo: store, Producer: producer}
	brandSvc := &service.BrandService{Repo: store, Producer: producer, Indexer: indexer}
	productSvc.Repo = store
	productSvc.Producer = producer
	productSvc.Indexer = indexer

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpserver.NewHTTPErrorHandler()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(httpserver.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		Resolver: resolver,
		Auth:     &httpserver.AuthHTTP{Svc: authSvc},
		Users:    &httpserver.UserHTTP{Svc: userSvc},
		Brands:   &httpserver.BrandHTTP{Svc: brandSvc},
		Products: &httpserver.ProductHTTP{Svc: productSvc},
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("%s listening on %s", cfg.ServiceName, srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)

	if sqlDB, err := database.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Printf("%s stopped", cfg.ServiceName)
}

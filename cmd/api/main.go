package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/Lovelaga/Bebe-Ai-Store/internal/config"
	"github.com/Lovelaga/Bebe-Ai-Store/internal/metrics"
	"github.com/Lovelaga/Bebe-Ai-Store/internal/modules/affiliate"
	"github.com/Lovelaga/Bebe-Ai-Store/internal/modules/product"
	"github.com/Lovelaga/Bebe-Ai-Store/internal/modules/scan"
	"github.com/Lovelaga/Bebe-Ai-Store/internal/modules/storefront"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}
	log.Info("connected to the database")

	productRepo := product.NewPostgresRepository(db)
	if err := productRepo.EnsureSchema(context.Background()); err != nil {
		log.Fatal(err)
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	productService := product.NewService(productRepo)
	product.NewHandler(productService).RegisterRoutes(router)
	storefront.NewHandler().RegisterRoutes(router)
	router.Handle("/metrics", metrics.Handler())

	// ── Background market scan ──────────────────────────────
	aliClient := affiliate.NewAliexpressClient(
		cfg.AliKey, cfg.AliSecret, cfg.TrackingID, cfg.GatewayURL,
		cfg.MaxSalePrice, cfg.PageSize,
	)
	job := scan.NewJob(aliClient, productRepo, cfg.Keywords, log)
	scheduler := scan.NewScheduler(job, cfg.ScanInterval, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(1)
	go scheduler.Start(ctx, &wg)

	// ── Start Server ────────────────────────────────────────
	server := &http.Server{Addr: ":" + cfg.AppPort, Handler: router}
	go func() {
		log.Infof("Bebe AI Store listening on :%s", cfg.AppPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server shutdown failed")
	}

	// The scheduler must stop before exit; an in-flight cycle is
	// abandoned, losing at most one scan.
	wg.Wait()
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"griya/mdp/internal/api"
	"griya/mdp/internal/api/handlers"
	"griya/mdp/internal/cache"
	"griya/mdp/internal/catalog"
	"griya/mdp/internal/config"
	"griya/mdp/internal/db"
	"griya/mdp/internal/models"
)

var appName = flag.String("app", "", "App to serve: 'catalog' (real-estate site) or 'cv' (personal CV). Defaults to $APP or 'catalog'.")

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*appName)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Open the shared database connection. Failures are logged by the
	// connection itself and the views keep working from static data.
	conn := db.Init(ctx, cfg.MongoURI, cfg.MongoDbName, log.Default())
	defer func() {
		if err := conn.Close(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	views, err := api.NewViews(cfg.App)
	if err != nil {
		log.Fatalf("Failed to set up views: %v", err)
	}
	var profile *handlers.ProfileHandler

	switch cfg.App {
	case "catalog":
		confirmations := setupConfirmations(ctx, cfg)
		storeOpts := func(name string) []catalog.Option {
			return []catalog.Option{
				catalog.WithName(name),
				catalog.WithConfirmations(confirmations),
				catalog.WithConfirmTTL(cfg.ConfirmTTL),
			}
		}

		seed, err := loadSeed(ctx, cfg, conn)
		if err != nil {
			log.Fatalf("Failed to load housing seed: %v", err)
		}
		housing := catalog.Initialize(seed, storeOpts("housing")...)

		profile = handlers.NewProfileHandler(
			catalog.SampleProfile(),
			catalog.SampleStats(),
			catalog.SampleSocialLinks(),
			catalog.Initialize(catalog.SampleProperties(), storeOpts(handlers.CollectionProperties)...),
			catalog.Initialize(catalog.SampleFavorites(), storeOpts(handlers.CollectionFavorites)...),
			catalog.Initialize(catalog.SampleHistory(), storeOpts(handlers.CollectionHistory)...),
		)
		api.RegisterCatalogViews(views, handlers.NewCatalogHandler(housing), profile)
	case "cv":
		api.RegisterCVViews(views, catalog.SampleCV())
	}

	router := api.SetupRouter(ctx, cfg, conn, views, profile)
	srv := &http.Server{
		Addr:    ":" + cfg.ApiPort,
		Handler: router,
	}

	go func() {
		fmt.Printf("Serving '%s' app on :%s\n", cfg.App, cfg.ApiPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	fmt.Printf("\nReceived signal: %s. Shutting down gracefully...\n", sig)

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	fmt.Println("Server gracefully stopped")
}

// setupConfirmations keeps pending deletes in Redis when it is configured and
// reachable, and in memory otherwise.
func setupConfirmations(ctx context.Context, cfg *config.Config) catalog.Confirmations {
	rdb, err := cache.ConnectRedis(ctx, cfg)
	if err != nil {
		log.Printf("WARNING: %v. Keeping delete confirmations in memory.", err)
		return catalog.NewMemoryConfirmations()
	}
	if rdb == nil {
		return catalog.NewMemoryConfirmations()
	}
	go func() {
		<-ctx.Done()
		if err := cache.DisconnectRedis(rdb); err != nil {
			log.Printf("Error disconnecting from Redis: %v", err)
		}
	}()
	return catalog.NewRedisConfirmations(rdb)
}

// loadSeed reads the home page listings from the configured source. The
// mongo source falls back to the built-in listings when the database is
// not connected.
func loadSeed(ctx context.Context, cfg *config.Config, conn *db.Connection) ([]models.Housing, error) {
	var source catalog.SeedSource = catalog.StaticSource{}
	if cfg.SeedSource == "mongo" {
		if conn.State() == db.Connected {
			source = catalog.NewMongoSource(conn.Database())
		} else {
			log.Printf("SEED_SOURCE=mongo but database is %s; using built-in listings.", conn.State())
		}
	}

	loadCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return source.Housing(loadCtx)
}

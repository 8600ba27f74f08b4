package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"salon-site-server/catalog"
	"salon-site-server/config"
	"salon-site-server/data"
	"salon-site-server/database"
	"salon-site-server/jobs"
	"salon-site-server/logx"
	"salon-site-server/media"
	"salon-site-server/middleware"
	"salon-site-server/reveal"
	"salon-site-server/routes"
	"salon-site-server/services"
	ws "salon-site-server/websocket"
)

func main() {
	// Load environment variables
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logx.Fatal().Err(err).Msg("❌ Invalid configuration")
	}

	logx.Init(cfg.Server.Environment)
	if envErr != nil {
		logx.Info().Msg("No .env file found, using system environment variables")
	}

	if cfg.Server.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Primary catalog: the bundled asset, or the database seeded from it
	bundled := catalog.NewBundledLoader(data.ServicesJSON())
	var primary catalog.Loader = bundled
	if cfg.Catalog.Source == config.CatalogSourceDatabase {
		if err := database.Initialize(cfg.Database.URL); err != nil {
			logx.Fatal().Err(err).Msg("❌ Failed to initialize database")
		}
		defer database.Close()

		if err := database.SeedCatalog(ctx, database.DB, catalog.LoadOrEmpty(ctx, bundled)); err != nil {
			logx.Warn().Err(err).Msg("⚠️ Catalog seeding failed")
		}
		primary = &catalog.DatabaseLoader{DB: database.DB}
	}

	// Live catalog: the remote endpoint, behind redis when configured
	var live catalog.Loader = catalog.NewRemoteLoader(cfg.Catalog.RemoteURL, cfg.Catalog.RemoteTimeout)
	if cfg.Redis.URL != "" {
		client, err := catalog.NewRedisClient(ctx, catalog.RedisOptions{
			URL:          cfg.Redis.URL,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			logx.Warn().Err(err).Msg("⚠️ Redis unavailable, remote catalog is fetched uncached")
		} else {
			defer client.Close()
			live = &catalog.CachedLoader{Next: live, Cache: catalog.NewRedisCache(client), TTL: cfg.Catalog.CacheTTL}
		}
	}

	store := catalog.NewStore(primary)
	_ = store.Reload(ctx)

	liveStore := catalog.NewStore(live)
	go func() { _ = liveStore.Reload(ctx) }()

	images, err := media.NewImageResolver(cfg.Media.CloudinaryURL, cfg.Media.CloudName, cfg.Media.Transformation)
	if err != nil {
		logx.Fatal().Err(err).Msg("❌ Failed to configure image delivery")
	}

	site, err := services.LoadSiteContent()
	if err != nil {
		logx.Fatal().Err(err).Msg("❌ Failed to load site content")
	}
	booking := services.NewBookingService(services.DefaultBookingOptions(site.Locations))

	hub := ws.NewHub(reveal.Options{
		ThresholdFraction: cfg.Reveal.Threshold,
		RootMarginPx:      cfg.Reveal.RootMarginPx,
	})
	go hub.Run(ctx)

	limiter := middleware.NewRateLimiter(cfg.Server.RateLimitPerMinute)

	// Start background jobs
	refreshJob := jobs.NewRefreshJob(cfg.Catalog.RefreshInterval, limiter, store, liveStore)
	refreshJob.Start()
	defer refreshJob.Stop()

	router := routes.SetupRouter(routes.Dependencies{
		Catalog:        store,
		Live:           liveStore,
		Site:           site,
		Booking:        booking,
		Images:         images,
		Hub:            hub,
		RateLimiter:    limiter,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	server := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logx.Info().Str("port", cfg.Server.Port).Str("catalog", store.Source()).Msg("🚀 Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Fatal().Err(err).Msg("❌ Failed to start server")
		}
	}()

	<-ctx.Done()
	logx.Info().Msg("🛑 Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Error().Err(err).Msg("❌ Graceful shutdown failed")
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "taxi-fare-api/docs"
	"taxi-fare-api/internal/cache"
	"taxi-fare-api/internal/config"
	"taxi-fare-api/internal/geocoder/googlemaps"
	"taxi-fare-api/internal/handler"
	"taxi-fare-api/internal/logger"
	"taxi-fare-api/internal/repository"
	"taxi-fare-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	startupTimeout  = 5 * time.Second
	shutdownTimeout = 10 * time.Second
)

// stationStore is the station dataset used by the fare service and /health.
type stationStore interface {
	service.StationFinder
	handler.StationCounter
}

//	@title			Taxi Fare API
//	@version		1.0
//	@description	Geocoding of Japanese addresses and taxi fare estimates from railway stations.
//	@BasePath		/
func main() {
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	if err := logger.Setup(cfg.LogLevel, cfg.LogFormat, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("cannot set up logger")
	}

	location, err := cfg.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load time zone")
	}

	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := &lazyRepository{dbSource: cfg.DBSource}
	defer db.Close()

	geocoder := newGeocoder(ctx, cfg, db)

	resultCache, closeCache := newResultCache(ctx, cfg)
	defer closeCache()

	var stations stationStore
	switch cfg.StationSource {
	case config.StationsFromPostgres:
		repo, err := db.Open(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to station database")
		}
		stations = repo
	default:
		file, err := repository.LoadStationFile(cfg.StationFile)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot load stations")
		}
		stations = file
	}

	r := newRouter(cfg, geocoder, resultCache, stations, location)

	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().
			Str("address", cfg.ServerAddress).
			Str("geocoder", cfg.GeocoderProvider).
			Bool("geocoder_available", geocoder != nil).
			Str("stations", cfg.StationSource).
			Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// newGeocoder builds the configured geocoder. Initialization failures are
// logged and yield nil, which leaves the service on estimates only.
func newGeocoder(ctx context.Context, cfg config.Config, db *lazyRepository) service.Geocoder {
	switch cfg.GeocoderProvider {
	case config.ProviderPostGIS:
		repo, err := db.Open(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("postgis geocoder unavailable, falling back to estimates")
			return nil
		}
		return repo
	case config.ProviderGoogleMaps:
		g, err := googlemaps.New(cfg.GoogleMapsAPIKey)
		if err != nil {
			log.Warn().Err(err).Msg("google maps geocoder unavailable, falling back to estimates")
			return nil
		}
		return g
	default:
		log.Info().Msg("precise geocoding disabled")
		return nil
	}
}

// newRouter initializes the service layers and registers the routes.
func newRouter(cfg config.Config, geocoder service.Geocoder, resultCache service.ResultCache, stations stationStore, location *time.Location) *gin.Engine {
	// Initialize layers
	geoCodeService := service.NewGeoCodeService(geocoder, resultCache,
		service.WithTimeout(cfg.GeocoderTimeout),
		service.WithStrict(cfg.GeocoderStrict),
	)
	reverseGeocodeService := service.NewReverseGeoCodeService(geocoder, cfg.ReverseRadiusMeters, cfg.GeocoderTimeout)
	fareService := service.NewFareService(stations, geoCodeService, time.Now, location)

	geoCodeHandler := handler.NewGeoCodeHandler(geoCodeService)
	reverseGeocodeHandler := handler.NewReverseGeocodeHandler(reverseGeocodeService, cfg.ReverseRadiusMax)
	fareHandler := handler.NewFareHandler(fareService)
	healthHandler := handler.NewHealthHandler(cfg.GeocoderProvider, geoCodeService, stations)

	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestLogger())

	r.GET("/health", healthHandler.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.POST("/geocode", geoCodeHandler.GeoCode)
	api.POST("/reverse-geocode", reverseGeocodeHandler.ReverseGeocode)
	api.POST("/calculate-fare", fareHandler.CalculateFare)

	return r
}

// lazyRepository connects to PostgreSQL on first use and shares the pool
// between the geocoder and the station store.
type lazyRepository struct {
	dbSource string
	pool     *pgxpool.Pool
	repo     *repository.Repository
	err      error
	opened   bool
}

func (l *lazyRepository) Open(ctx context.Context) (*repository.Repository, error) {
	if l.opened {
		return l.repo, l.err
	}
	l.opened = true

	ctx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	// Database connection
	pool, err := pgxpool.New(ctx, l.dbSource)
	if err != nil {
		l.err = err
		return nil, err
	}

	repo := repository.NewRepository(pool)
	if err := repo.Ping(ctx); err != nil {
		pool.Close()
		l.err = err
		return nil, err
	}

	l.pool, l.repo = pool, repo
	return repo, nil
}

func (l *lazyRepository) Close() {
	if l.pool != nil {
		l.pool.Close()
	}
}

// newResultCache builds the configured cache and a function releasing it. An
// unreachable Redis falls back to the in-process cache.
func newResultCache(ctx context.Context, cfg config.Config) (service.ResultCache, func()) {
	memory := cache.NewMemory(cfg.CacheSize, cfg.CacheTTL)
	if cfg.CacheBackend != config.CacheRedis {
		return memory, func() {}
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddress})

	ctx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("address", cfg.RedisAddress).Msg("redis unavailable, using in-memory cache")
		client.Close()
		return memory, func() {}
	}

	return cache.NewRedis(client, cfg.CacheTTL), func() {
		if err := client.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis client")
		}
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"campaign/internal/adapter/repo"
	"campaign/internal/http/handlers"
	"campaign/internal/http/httpapi"
	"campaign/internal/infra"
	"campaign/internal/infra/geoip"
	"campaign/internal/notify"
	"campaign/internal/providers/payment"
)

func main() {
	// .env is optional.
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	geoResolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	}

	var payments payment.Client
	if cfg.StripeSecretKey != "" {
		stripe, err := payment.NewStripeClient(payment.StripeOptions{APIKey: cfg.StripeSecretKey})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to configure payments")
		}
		payments = stripe
	} else {
		logger.Warn().Msg("STRIPE_SECRET_KEY not set, donations disabled")
	}

	app := &handlers.App{
		Log:        logger,
		Volunteers: repo.NewVolunteerRepository(dbpool),
		YardSigns:  repo.NewYardSignRepository(dbpool),
		Donations:  repo.NewDonationRepository(dbpool),
		Newsletter: repo.NewNewsletterRepository(dbpool),
		Analytics:  repo.NewAnalyticsRepository(dbpool),
		Payments:   payments,
		Notifier:   notify.NewLogNotifier(logger),
		Geo:        geoResolver,
		Currency:   cfg.StripeCurrency,
	}

	router := httpapi.NewRouter(app, httpapi.Options{
		Logger:          logger,
		AllowedOrigins:  cfg.CORSAllowedOrigins,
		RateLimitPerMin: cfg.RateLimitPerMin,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}

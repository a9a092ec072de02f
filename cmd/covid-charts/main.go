package main

import (
	"context"
	"flag"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpapi "github.com/i474232898/covid-charts/internal/api/http"
	"github.com/i474232898/covid-charts/internal/chart"
	"github.com/i474232898/covid-charts/internal/config"
	"github.com/i474232898/covid-charts/internal/covid"
	"github.com/i474232898/covid-charts/internal/covid/providers"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	country := flag.String("country", cfg.DefaultCountry, "country to chart (name or ISO code)")
	lastDays := flag.String("lastdays", cfg.LastDays, "number of trailing days to fetch, or 'all'")
	out := flag.String("out", cfg.ChartOutput, "dashboard output file (one-shot mode)")
	serve := flag.Bool("serve", false, "serve the dashboard over HTTP instead of writing a file")
	flag.Parse()

	// Shared HTTP client for the outbound disease.sh call.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	source := providers.NewDiseaseShProvider(httpClient, cfg.BaseURL, *lastDays)
	service := covid.NewService(source)
	renderer := chart.NewEChartsRenderer()

	if *serve {
		runServer(cfg, service, renderer)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout+5*time.Second)
	defer cancel()

	log.Info().Str("country", *country).Str("lastdays", *lastDays).Msg("fetching country history")

	history, err := service.CountryHistory(ctx, *country)
	if err != nil {
		log.Fatal().Err(err).Str("country", *country).Msg("failed to build country history")
	}

	if err := chart.WriteDashboardFile(renderer, *out, history); err != nil {
		log.Fatal().Err(err).Str("out", *out).Msg("failed to write dashboard")
	}

	log.Info().Str("out", *out).Int("points", len(history.Cumulative)).Msg("dashboard written")
}

func runServer(cfg *config.AppConfig, service *covid.Service, renderer chart.Renderer) {
	app := fiber.New(fiber.Config{
		AppName:               "covid-charts",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          30 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "covid-charts",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service, renderer)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error().Err(err).Msg("fiber server stopped")
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
}

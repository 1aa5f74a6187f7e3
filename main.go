// File: talentflow/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"talentflow/config"
	"talentflow/handlers"
	"talentflow/middleware"
	"talentflow/models"
	"talentflow/routes"
	"talentflow/services/availability"
	"talentflow/services/calendar"
	ai "talentflow/services/intelligence"
	"talentflow/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitCache()

	ctx := context.Background()
	calendarClient, err := calendar.NewGoogleClient(ctx, config.AppConfig.GoogleCredentialsFile)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize calendar client: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	engine := &availability.DefaultAvailabilityEngine{
		Calendar:    calendarClient,
		Constraints: constraintsFromConfig(),
		Cache:       utils.GetCacheClient(),
		CacheTTL:    time.Duration(config.AppConfig.AvailCacheTTLMin) * time.Minute,
	}

	var drafter ai.OutreachDrafter
	if config.AppConfig.GeminiAPIKey != "" {
		outreachSvc, err := ai.NewDefaultOutreachService(config.AppConfig.GeminiAPIKey)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize outreach service: %v", err)
		}
		drafter = outreachSvc
	} else {
		logger.Sugar().Warn("main: GEMINI_API_KEY not set, outreach drafting disabled")
	}

	calendarHandler := handlers.NewCalendarHandler(calendarClient)
	availabilityHandler := handlers.NewAvailabilityHandler(
		engine,
		drafter,
		utils.GetCacheClient(),
		time.Duration(config.AppConfig.ProposalTTLMin)*time.Minute,
		config.AppConfig.ProposalSlots,
		config.AppConfig.SearchDaysAhead,
	)

	// Register routes.
	routes.RegisterRoutes(router, calendarHandler, availabilityHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// constraintsFromConfig builds the scheduling constraints from configuration,
// falling back to the defaults field by field on malformed values.
func constraintsFromConfig() models.AvailabilityConstraints {
	logger := utils.GetLogger()
	c := models.DefaultAvailabilityConstraints()
	cfg := config.AppConfig

	parse := func(raw string, target *models.ClockTime) {
		ct, err := models.ParseClockTime(raw)
		if err != nil {
			logger.Sugar().Warnf("main: %v, keeping default %s", err, *target)
			return
		}
		*target = ct
	}
	parse(cfg.AvailEarliestMeeting, &c.EarliestMeetingTime)
	parse(cfg.AvailLatestMeetingEnd, &c.LatestMeetingEnd)
	parse(cfg.AvailLunchStart, &c.LunchBreakStart)
	parse(cfg.AvailLunchEnd, &c.LunchBreakEnd)

	if cfg.AvailMeetingMinutes > 0 {
		c.MeetingDurationMinutes = cfg.AvailMeetingMinutes
	}
	if cfg.AvailMinBreakMinutes >= 0 {
		c.MinBreakBetweenMeetings = cfg.AvailMinBreakMinutes
	}
	if cfg.AvailMaxMeetingsPerDay > 0 {
		c.MaxMeetingsPerDay = cfg.AvailMaxMeetingsPerDay
	}
	if cfg.AvailSetupMinutes >= 0 {
		c.SetupTimeMinutes = cfg.AvailSetupMinutes
	}
	return c
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/franciscosanchezn/tablekeeper/internal/broker"
	"github.com/franciscosanchezn/tablekeeper/internal/config"
	"github.com/franciscosanchezn/tablekeeper/internal/database"
	"github.com/franciscosanchezn/tablekeeper/internal/realtime"
	"github.com/franciscosanchezn/tablekeeper/internal/routes"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// @title Tablekeeper Restaurant API
// @version 1.0
// @description Menu, orders, reservations and staff for a single restaurant
// @host localhost:5000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	loadDotenvFile()
	setUpLogger()
	configuration := loadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := setupDatabase(configuration)
	defer database.Close(db)

	publisher, err := broker.New(configuration.BrokerDriver, configuration.BrokerURL)
	checkPanicErr(err)
	defer publisher.Close()

	hub := realtime.NewHub(configuration.CORSOrigins)
	go hub.Run(ctx)

	if configuration.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	deps := routes.Dependencies{
		DB:        db,
		Config:    configuration,
		Logger:    log.StandardLogger(),
		Publisher: publisher,
		Hub:       hub,
	}
	svc := routes.NewServices(deps)
	seedDatabase(ctx, configuration, svc)

	router, err := routes.NewRouter(deps, svc)
	checkPanicErr(err)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%v:%d", configuration.Host, configuration.RestaurantPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	level := config.LevelForEnvironment(config.GetEnvWithDefault("APP_ENV", "development"))
	log.SetLevel(level)
	database.SetLogLevel(level)
}

func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

func setupDatabase(conf *config.Config) *gorm.DB {
	db, err := database.InitDatabase(database.FromConfig(conf))
	checkPanicErr(err)
	checkPanicErr(database.Migrate(db))
	return db
}

// seedDatabase creates the owner account and, when enabled, the starter menu
func seedDatabase(ctx context.Context, conf *config.Config, svc routes.Services) {
	if err := svc.Users.EnsureOwner(ctx, conf.OwnerName, conf.OwnerEmail, conf.OwnerPassword); err != nil {
		log.WithError(err).Error("Failed to seed owner account")
	}
	if conf.SeedMenu {
		if err := svc.Menu.SeedDefaults(ctx); err != nil {
			log.WithError(err).Error("Failed to seed menu")
		}
	}
}

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
	"github.com/franciscosanchezn/tablekeeper/internal/events"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(config.LevelForEnvironment(config.GetEnvWithDefault("APP_ENV", "development")))

	conf, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("Cannot load configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeStore, err := openStore(ctx, conf)
	if err != nil {
		log.WithError(err).Fatal("Cannot open event store")
	}
	defer closeStore()

	if err := repo.EnsureSchema(ctx); err != nil {
		log.WithError(err).Fatal("Cannot prepare event store")
	}

	publisher, err := broker.New(conf.BrokerDriver, conf.BrokerURL)
	if err != nil {
		log.WithError(err).Fatal("Cannot connect to broker")
	}
	defer publisher.Close()

	e := events.NewServer(events.NewEventService(repo, publisher), log.StandardLogger(), conf.CORSOrigins)

	addr := fmt.Sprintf("%v:%d", conf.Host, conf.EventsPort)
	go func() {
		log.Infof("Starting events server on %s", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Events server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down events server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
}

// openStore returns the repository selected by EVENTS_STORE and a function releasing its connection
func openStore(ctx context.Context, conf *config.Config) (events.EventRepository, func(), error) {
	if conf.EventsStore == "mongo" {
		client, db, err := database.ConnectMongo(ctx, database.MongoConfig{URL: conf.MongoURL, Database: conf.MongoDatabase})
		if err != nil {
			return nil, nil, err
		}
		return events.NewMongoRepository(db), func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.WithError(err).Warn("Failed to disconnect from MongoDB")
			}
		}, nil
	}

	db, err := database.InitDatabase(database.FromConfig(conf))
	if err != nil {
		return nil, nil, err
	}
	return events.NewGormRepository(db), func() {
		if err := database.Close(db); err != nil {
			log.WithError(err).Warn("Failed to close database")
		}
	}, nil
}

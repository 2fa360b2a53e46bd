// Package server initializes and runs the whitelist and script
// distribution backend. It selects the store and blob backends from
// configuration, handles graceful shutdown, and starts the HTTP server.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/emeraldsys/acidity-backend/internal/logging"
	"github.com/emeraldsys/acidity-backend/internal/server/auth"
	"github.com/emeraldsys/acidity-backend/internal/server/config"
	"github.com/emeraldsys/acidity-backend/internal/server/httpapi"
	"github.com/emeraldsys/acidity-backend/internal/server/repositories/repomanager"
	"github.com/emeraldsys/acidity-backend/internal/server/scripts"
	"github.com/emeraldsys/acidity-backend/internal/server/services"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	server  *httpapi.Server
	cleanup []func(context.Context) error
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	if cfg.Nonce1 == "" || cfg.Nonce2 == "" {
		return nil, errors.New("challenge nonces are not configured")
	}

	app := &App{config: cfg, logger: logger}

	rm, err := app.newRepositoryManager(ctx)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	blobs, err := app.newScriptStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("blob store init error: %w", err)
	}

	challenge := auth.NewChallenge(cfg.Nonce1, cfg.Nonce2)
	ws := services.NewWhitelistService(rm.Users(), challenge)
	ss := services.NewScriptService(rm.Users(), rm.Versions(), blobs)

	app.server = httpapi.NewServer(cfg.EndpointAddr, logger, ws, ss)

	return app, nil
}

// newRepositoryManager picks PostgreSQL when a DSN is configured and
// MongoDB otherwise.
func (app *App) newRepositoryManager(ctx context.Context) (repomanager.RepositoryManager, error) {

	if app.config.DatabaseDSN != "" {
		db, err := sql.Open("pgx", app.config.DatabaseDSN)
		if err != nil {
			return nil, err
		}

		app.cleanup = append(app.cleanup, func(context.Context) error { return db.Close() })

		rm := repomanager.NewPostgresRepositoryManager(db)
		if err := rm.RunMigrations(ctx, db); err != nil {
			return nil, err
		}

		app.logger.Info(ctx, "Using PostgreSQL store")
		return rm, nil
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(app.config.MongoURI))
	if err != nil {
		return nil, err
	}

	app.cleanup = append(app.cleanup, client.Disconnect)

	app.logger.Info(ctx, "Using MongoDB store", "database", app.config.MongoDatabase)
	return repomanager.NewMongoRepositoryManager(client.Database(app.config.MongoDatabase)), nil
}

// newScriptStore picks S3 when a bucket is configured and the local
// filesystem otherwise.
func (app *App) newScriptStore(ctx context.Context) (scripts.Store, error) {

	if app.config.S3Bucket != "" {
		app.logger.Info(ctx, "Using S3 blob store", "bucket", app.config.S3Bucket)
		return scripts.NewS3Store(ctx, scripts.S3Options{
			RootUser:     app.config.S3RootUser,
			RootPassword: app.config.S3RootPassword,
			Bucket:       app.config.S3Bucket,
			Region:       app.config.S3Region,
			BaseEndpoint: app.config.S3BaseEndpoint,
		})
	}

	app.logger.Info(ctx, "Using filesystem blob store", "dir", app.config.ScriptDir)
	return scripts.NewFileStore(app.config.ScriptDir)
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	for _, fn := range app.cleanup {
		if err := fn(context.Background()); err != nil {
			app.logger.Error(ctx, err.Error())
		}
	}
}

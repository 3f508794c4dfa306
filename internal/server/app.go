// Package server initializes and runs the musicbox application server.
// It wires the AWS-backed repositories into the domain services, starts
// the HTTP endpoint and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/okunev/musicbox/internal/logging"
	"github.com/okunev/musicbox/internal/server/accounts"
	"github.com/okunev/musicbox/internal/server/awsx"
	"github.com/okunev/musicbox/internal/server/catalog"
	"github.com/okunev/musicbox/internal/server/config"
	"github.com/okunev/musicbox/internal/server/httpapi"
	"github.com/okunev/musicbox/internal/server/images"
	"github.com/okunev/musicbox/internal/server/sessions"
	"github.com/okunev/musicbox/internal/server/subscriptions"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	handlers *httpapi.Handlers
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	awsCfg, err := awsx.LoadAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("aws config init error: %w", err)
	}

	dynamo := awsx.NewDynamoClient(awsCfg, cfg.DynamoBaseEndpoint)
	presign := awsx.NewS3PresignClient(awsCfg, cfg.S3BaseEndpoint)

	resolver := images.NewResolver(images.NewS3Presigner(presign), cfg, logger)

	accountRepo := accounts.NewDynamoRepository(dynamo, cfg.AccountsTable)
	sessionRepo := sessions.NewDynamoRepository(dynamo, cfg.SessionsTable)
	catalogRepo := catalog.NewDynamoRepository(dynamo, cfg.CatalogTable)
	subscriptionRepo := subscriptions.NewDynamoRepository(dynamo, cfg.SubscriptionsTable)

	sessionService := sessions.NewService(sessionRepo, cfg)
	accountService := accounts.NewService(accountRepo, sessionService)
	catalogService := catalog.NewService(catalogRepo, resolver, logger)
	subscriptionService := subscriptions.NewService(subscriptionRepo, catalogRepo, resolver)

	handlers := httpapi.NewHandlers(accountService, sessionService, catalogService, subscriptionService, logger)

	return &App{config: cfg, logger: logger, handlers: handlers}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.handlers, app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}

// Package app wires the application together and runs the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/msaemrow/anglers-index-api/internal/adapter/postgres"
	catchrepo "github.com/msaemrow/anglers-index-api/internal/adapter/postgres/fishcatch"
	lakerepo "github.com/msaemrow/anglers-index-api/internal/adapter/postgres/lake"
	lurerepo "github.com/msaemrow/anglers-index-api/internal/adapter/postgres/lure"
	marepo "github.com/msaemrow/anglers-index-api/internal/adapter/postgres/masterangler"
	speciesrepo "github.com/msaemrow/anglers-index-api/internal/adapter/postgres/species"
	tbrepo "github.com/msaemrow/anglers-index-api/internal/adapter/postgres/tacklebox"
	userrepo "github.com/msaemrow/anglers-index-api/internal/adapter/postgres/user"
	"github.com/msaemrow/anglers-index-api/internal/adapter/provider/openweather"
	authpkg "github.com/msaemrow/anglers-index-api/internal/auth"
	"github.com/msaemrow/anglers-index-api/internal/config"
	authsvc "github.com/msaemrow/anglers-index-api/internal/service/auth"
	catchsvc "github.com/msaemrow/anglers-index-api/internal/service/catch"
	lakesvc "github.com/msaemrow/anglers-index-api/internal/service/lake"
	luresvc "github.com/msaemrow/anglers-index-api/internal/service/lure"
	masvc "github.com/msaemrow/anglers-index-api/internal/service/masterangler"
	speciessvc "github.com/msaemrow/anglers-index-api/internal/service/species"
	tbsvc "github.com/msaemrow/anglers-index-api/internal/service/tacklebox"
	usersvc "github.com/msaemrow/anglers-index-api/internal/service/user"
	"github.com/msaemrow/anglers-index-api/internal/transport/middleware"
	"github.com/msaemrow/anglers-index-api/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services and handlers, and serves HTTP
// until the context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return err
		}
	}

	// Infrastructure.
	txm := postgres.NewTxManager(pool)
	jwtMgr := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	weather := openweather.NewClient(cfg.Weather, logger)

	// Repositories.
	users := userrepo.New(pool)
	lakes := lakerepo.New(pool)
	species := speciesrepo.New(pool)
	lures := lurerepo.New(pool)
	catches := catchrepo.New(pool)
	tackleBox := tbrepo.New(pool)
	submissions := marepo.New(pool)

	// Services.
	authService := authsvc.NewService(logger, users, jwtMgr)
	userService := usersvc.NewService(logger, users)
	lakeService := lakesvc.NewService(logger, lakes, weather)
	speciesService := speciessvc.NewService(logger, species)
	lureService := luresvc.NewService(logger, lures)
	catchService := catchsvc.NewService(logger, catches, weather)
	tackleBoxService := tbsvc.NewService(logger, tackleBox, lures)
	masterAnglerService := masvc.NewService(logger, submissions, catches, txm)

	// HTTP handlers and router.
	mux := rest.NewRouter(rest.Handlers{
		Health:       rest.NewHealthHandler(pool, BuildVersion()),
		Auth:         rest.NewAuthHandler(authService, logger),
		User:         rest.NewUserHandler(userService, logger),
		Lake:         rest.NewLakeHandler(lakeService, logger),
		Species:      rest.NewSpeciesHandler(speciesService, logger),
		Lure:         rest.NewLureHandler(lureService, logger),
		Catch:        rest.NewCatchHandler(catchService, logger),
		TackleBox:    rest.NewTackleBoxHandler(tackleBoxService, logger),
		MasterAngler: rest.NewMasterAnglerHandler(masterAnglerService, logger),
	})

	// Middleware, outermost first.
	chain := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit, time.Minute)
		defer limiter.Stop()
		chain = append(chain, limiter.Limit())
	}
	chain = append(chain, middleware.Auth(authService))

	handler := middleware.Chain(chain...)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

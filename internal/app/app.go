package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/deliverypartner/internal/config"
	"github.com/GlebRadaev/deliverypartner/internal/handlers"
	"github.com/GlebRadaev/deliverypartner/internal/pg"
	"github.com/GlebRadaev/deliverypartner/internal/repo"
	"github.com/GlebRadaev/deliverypartner/internal/service"
	"github.com/GlebRadaev/deliverypartner/pkg/clients"
	"github.com/GlebRadaev/deliverypartner/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories
	pool *pgxpool.Pool

	group *errgroup.Group
}

func New() *Application {
	return &Application{}
}

func (a *Application) Start(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}

	if err = logger.InitLogger(cfg); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed", zap.Error(err))
		pool.Close()
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	checkout := &session.Client{B: stripe.GetBackend(stripe.APIBackend), Key: cfg.StripeSecretKey}

	a.cfg = cfg
	a.pool = pool
	a.repo = repo.New(pg.New(pool))
	a.srv = service.New(cfg, a.repo, txManager, clients.NewHTTPClient(cfg.DispatchTimeout), checkout)
	a.api = handlers.New(a.srv)

	if err := a.srv.Bootstrapper.EnsureAdmin(ctx, cfg.BootstrapAdminEmail); err != nil {
		zap.L().Error("bootstrap admin failed", zap.Error(err))
		pool.Close()
		return fmt.Errorf("can't ensure bootstrap admin: %w", err)
	}

	group, gCtx := errgroup.WithContext(ctx)
	a.group = group
	a.startHTTPServer(gCtx)

	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := &http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	a.group.Go(func() error {
		<-ctx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	a.group.Go(func() error {
		zap.L().Info("starting http server", zap.String("address", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server exited with error: %w", err)
		}
		return nil
	})
}

// Wait blocks until every component stopped and returns the first failure.
func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error
	if a.group != nil {
		appErr = a.group.Wait()
	} else {
		<-ctx.Done()
	}
	cancel()

	if appErr != nil {
		zap.L().Error("application stopped with error", zap.Error(appErr))
	}
	if a.pool != nil {
		a.pool.Close()
	}
	return appErr
}

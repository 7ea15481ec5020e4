// Package app wires configuration, storage, services and the HTTP router.
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/klauspost/compress/gzhttp"

	"storeadmin/internal/config"
	"storeadmin/internal/domain/auth"
	"storeadmin/internal/domain/catalogs/currency"
	"storeadmin/internal/domain/catalogs/customer"
	"storeadmin/internal/domain/catalogs/product"
	"storeadmin/internal/domain/documents/delivery"
	"storeadmin/internal/domain/documents/order"
	"storeadmin/internal/domain/documents/payout"
	"storeadmin/internal/domain/store"
	"storeadmin/internal/infrastructure/fxrates"
	v1 "storeadmin/internal/infrastructure/http/v1"
	"storeadmin/internal/infrastructure/http/v1/handlers"
	"storeadmin/internal/infrastructure/storage/memory"
	"storeadmin/internal/infrastructure/storage/postgres"
	"storeadmin/pkg/logger"
)

// repositories groups the storage ports of one backend.
type repositories struct {
	users      auth.UserRepository
	stores     store.Repository
	products   product.Repository
	customers  customer.Repository
	orders     order.Repository
	deliveries delivery.Repository
	payouts    payout.Repository
}

// App is a fully wired console backend.
type App struct {
	Handler http.Handler
	Auth    *auth.Service

	pool *postgres.Pool
}

// New builds the application for cfg. Close must be called to release storage.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	app := &App{}

	var (
		repos   repositories
		storage handlers.Pinger
	)
	switch cfg.Storage.Driver {
	case "postgres":
		poolCfg := postgres.DefaultPoolConfig(cfg.Storage.DSN)
		poolCfg.MaxConns = cfg.Storage.MaxConns
		pool, err := postgres.NewPool(ctx, poolCfg)
		if err != nil {
			return nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		app.pool = pool
		storage = pool
		repos = repositories{
			users:      postgres.NewUserRepo(pool),
			stores:     postgres.NewStoreRepo(pool),
			products:   postgres.NewProductRepo(pool),
			customers:  postgres.NewCustomerRepo(pool),
			orders:     postgres.NewOrderRepo(pool),
			deliveries: postgres.NewDeliveryRepo(pool),
			payouts:    postgres.NewPayoutRepo(pool),
		}
	case "memory", "":
		repos = repositories{
			users:      memory.NewUserRepo(),
			stores:     memory.NewStoreRepo(),
			products:   memory.NewRepo("product", (*product.Product).Clone),
			customers:  memory.NewRepo("customer", (*customer.Customer).Clone),
			orders:     memory.NewRepo("order", (*order.Order).Clone),
			deliveries: memory.NewRepo("delivery", (*delivery.Delivery).Clone),
			payouts:    memory.NewRepo("payout", (*payout.Payout).Clone),
		}
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
	log.Infow("storage ready", "driver", cfg.Storage.Driver)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		Secret:         cfg.Auth.JWTSecret,
		Issuer:         cfg.Auth.Issuer,
		AccessTokenTTL: cfg.Auth.AccessTokenTTL,
		RevocationSize: cfg.Auth.RevocationSize,
	})
	authConfig := auth.DefaultServiceConfig()
	authConfig.MaxLoginAttempts = cfg.Auth.MaxLoginAttempts
	authConfig.LockDuration = cfg.Auth.LockDuration
	authConfig.PasswordMinLength = cfg.Auth.PasswordMinLength
	authConfig.BcryptCost = cfg.Auth.BcryptCost
	app.Auth = auth.NewService(repos.users, jwtService, authConfig)

	cacheSize := cfg.List.CacheSize
	customers := customer.NewService(repos.customers, cacheSize)

	var rates currency.RateProvider
	if cfg.FX.BaseURL != "" {
		rates = fxrates.New(fxrates.Config{
			BaseURL:    cfg.FX.BaseURL,
			Timeout:    cfg.FX.Timeout,
			CacheTTL:   cfg.FX.CacheTTL,
			CacheSize:  cfg.FX.CacheSize,
			RetryCount: 2,
		})
		log.Infow("exchange rates enabled", "base_url", cfg.FX.BaseURL)
	}

	router := v1.NewRouter(v1.RouterConfig{
		Mode:          cfg.Server.Mode,
		Logger:        log,
		AuthService:   app.Auth,
		Stores:        store.NewService(repos.stores),
		Products:      product.NewService(repos.products, cacheSize),
		Customers:     customers,
		Orders:        order.NewService(repos.orders, customers, cacheSize),
		Deliveries:    delivery.NewService(repos.deliveries, cacheSize),
		Payouts:       payout.NewService(repos.payouts, cacheSize),
		Converter:     currency.NewConverter(rates),
		StorageDriver: cfg.Storage.Driver,
		Storage:       storage,
		Lists: handlers.ListDefaults{
			PageSize:   cfg.List.PageSize,
			MaxVisible: cfg.List.MaxVisible,
		},
	})

	app.Handler = gzhttp.GzipHandler(router)
	return app, nil
}

// Close releases the database pool, if any.
func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}

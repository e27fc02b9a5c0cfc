package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/Lexv0lk/marketplace/internal/market/application"
	"github.com/Lexv0lk/marketplace/internal/market/domain"
	httpwrap "github.com/Lexv0lk/marketplace/internal/market/infrastructure/http"
	"github.com/Lexv0lk/marketplace/internal/market/infrastructure/postgres"
	"github.com/Lexv0lk/marketplace/internal/pkg/database"
	"github.com/Lexv0lk/marketplace/internal/pkg/jwt"
	"github.com/Lexv0lk/marketplace/internal/pkg/logging"
	"github.com/Lexv0lk/marketplace/migrations"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	shutdownTimeout = 5 * time.Second
)

type MarketApp struct {
	cfg    MarketConfig
	logger logging.Logger

	server *http.Server
	dbpool *pgxpool.Pool

	stopAudit context.CancelFunc
	auditDone sync.WaitGroup
}

func NewMarketApp(cfg MarketConfig, logger logging.Logger) *MarketApp {
	return &MarketApp{
		cfg:    cfg,
		logger: logger,
	}
}

func (a *MarketApp) Run(ctx context.Context, lis net.Listener) error {
	logger := a.logger
	dbURL := a.cfg.DbSettings.GetUrl()

	if a.cfg.AutoMigrate {
		if err := database.MigrateDatabase(dbURL, migrations.FS, ".", database.DriverName, database.Dialect); err != nil {
			return err
		}
		logger.Info("database migrated")
	}

	dbpool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	a.dbpool = dbpool

	var txOpts []database.TxManagerOption
	if a.cfg.Serializable {
		txOpts = append(txOpts, database.WithIsoLevel(pgx.Serializable))
	}
	txManager := database.NewDelegateTxManager(dbpool, logger, txOpts...)

	clock := domain.SystemClock{}
	usersRepository := postgres.NewUsersRepository(dbpool)
	itemsRepository := postgres.NewItemsRepository(dbpool)
	ordersRepository := postgres.NewOrdersRepository(dbpool)
	auditLogRepository := postgres.NewAuditLogRepository(dbpool)
	credentialsRepository := postgres.NewCredentialsRepository(dbpool)
	stockLedger := postgres.NewStockLedger()
	balanceLedger := postgres.NewBalanceLedger()

	auditRecorder := application.NewAuditRecorder(auditLogRepository, clock, logger, a.cfg.AuditBufferSize)
	auditCtx, stopAudit := context.WithCancel(context.WithoutCancel(ctx))
	a.stopAudit = stopAudit
	a.auditDone.Add(1)
	go func() {
		defer a.auditDone.Done()
		auditRecorder.Run(auditCtx)
	}()

	coordinator := application.NewCoordinator(txManager, a.cfg.Retry, logger)
	orderLifecycle := application.NewOrderLifecycle(
		coordinator,
		itemsRepository,
		usersRepository,
		ordersRepository,
		stockLedger,
		balanceLedger,
		auditRecorder,
		clock,
		logger,
	)
	accountCase := application.NewAccountCase(
		coordinator,
		usersRepository,
		itemsRepository,
		ordersRepository,
		balanceLedger,
		auditLogRepository,
		auditRecorder,
		logger,
	)
	catalogCase := application.NewCatalogCase(
		coordinator,
		usersRepository,
		itemsRepository,
		ordersRepository,
		stockLedger,
		auditRecorder,
		logger,
	)
	authenticator := application.NewAuthenticator(
		credentialsRepository,
		domain.NewArgonPasswordHasher(
			domain.WithHashCost(uint32(a.cfg.HashMemoryKiB), uint32(a.cfg.HashIterations)),
		),
		jwt.NewJWTTokenIssuer(),
		a.cfg.JwtSecret,
		auditRecorder,
		logger,
	)

	gin.SetMode(gin.ReleaseMode)
	router := httpwrap.NewRouter(
		httpwrap.NewAuthHandler(authenticator, logger),
		httpwrap.NewOrderHandler(orderLifecycle, logger),
		httpwrap.NewItemHandler(catalogCase, logger),
		httpwrap.NewAccountHandler(accountCase, logger),
		httpwrap.NewAuthMiddleware(a.cfg.JwtSecret, jwt.NewJWTTokenParser(), logger),
	)

	a.server = &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting http server", "addr", lis.Addr().String())

		if err := a.server.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("error while serving http: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return nil
	}
}

// Shutdown stops accepting requests, flushes pending audit events and closes
// the pool. It is safe to call after a failed Run.
func (a *MarketApp) Shutdown() {
	if a.server != nil {
		a.logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("server shutdown failed", "error", err.Error())
		}
	}

	if a.stopAudit != nil {
		a.stopAudit()
		a.auditDone.Wait()
	}

	if a.dbpool != nil {
		a.dbpool.Close()
	}

	a.logger.Info("market stopped")
}

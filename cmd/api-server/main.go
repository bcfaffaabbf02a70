package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apphttp "github.com/routelabs/sweep-middleware/pkg/app/http"
	"github.com/routelabs/sweep-middleware/pkg/auth"
	"github.com/routelabs/sweep-middleware/pkg/config"
	"github.com/routelabs/sweep-middleware/pkg/deposit/service"
	"github.com/routelabs/sweep-middleware/pkg/depositstore"
	"github.com/routelabs/sweep-middleware/pkg/derive"
	"github.com/routelabs/sweep-middleware/pkg/ethereum"
	"github.com/routelabs/sweep-middleware/pkg/permission"
	"github.com/routelabs/sweep-middleware/pkg/pgutil"
	"github.com/routelabs/sweep-middleware/pkg/sweeper"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to setup logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting sweep middleware",
		zap.String("config", *configPath),
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := pgutil.ConnectDB(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	logger.Info("Connected to database",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.Database))

	chain, err := ethereum.NewClient(&cfg.Ethereum, logger)
	if err != nil {
		logger.Fatal("Failed to create chain client", zap.Error(err))
	}
	defer chain.Close()

	// A wrong init code hash would issue addresses no deployment can ever
	// claim, so refuse to start until the chain confirms the derivation.
	verifyCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	err = chain.VerifyDerivation(verifyCtx)
	cancel()
	if err != nil {
		logger.Fatal("Address derivation check failed", zap.Error(err))
	}

	store := depositstore.NewStore(db)

	treasury := common.HexToAddress(cfg.Ethereum.TreasuryAddress)
	tokens := make([]common.Address, 0, len(cfg.Ethereum.Tokens))
	for _, raw := range cfg.Ethereum.Tokens {
		token, err := derive.AddressFromHex(raw)
		if err != nil {
			logger.Fatal("Invalid token address", zap.String("token", raw), zap.Error(err))
		}
		tokens = append(tokens, token)
	}

	gate := permission.NewGate(chain, cfg.Route.PermissionCacheTTL, logger)
	router := sweeper.NewService(store, chain, gate, &cfg.Route, treasury, tokens, logger)

	deployer := common.HexToAddress(cfg.Ethereum.DeployerContract)
	initCodeHash, err := derive.HashFromHex(cfg.Ethereum.InitCodeHash)
	if err != nil {
		logger.Fatal("Invalid init code hash", zap.Error(err))
	}
	svc := service.NewLog(
		service.NewService(store, router, chain.SignerAddress(), deployer, initCodeHash, logger),
		logger,
	)

	routeGuard := auth.NewValidator(cfg.Auth.RouteSecret).Middleware(logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.WriteTimeout))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		apphttp.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	service.RegisterRoutes(r, svc, routeGuard, logger)

	if err := apphttp.ServeAndWait(ctx, r, logger, &cfg.Server); err != nil {
		logger.Fatal("Server exited with error", zap.Error(err))
	}
}

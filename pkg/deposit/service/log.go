package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/routelabs/sweep-middleware/pkg/deposit"
	"github.com/routelabs/sweep-middleware/pkg/sweeper"
)

const serviceName = "DepositService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the deposit Service.
// It logs method entry/exit, duration, and errors.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// CreateDeposit wraps the service method with logging
func (ls *logService) CreateDeposit(ctx context.Context, userHex string) (dep *deposit.Deposit, err error) {
	start := time.Now()

	ls.logger.Info("CreateDeposit started",
		zap.String("service", serviceName),
		zap.String("method", "CreateDeposit"),
		zap.String("user", userHex),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("CreateDeposit failed",
				zap.String("service", serviceName),
				zap.String("method", "CreateDeposit"),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Info("CreateDeposit completed",
				zap.String("service", serviceName),
				zap.String("method", "CreateDeposit"),
				zap.Int64("deposit_id", dep.ID),
				zap.String("address", dep.Address.Hex()),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.CreateDeposit(ctx, userHex)
}

// ListDeposits wraps the service method with logging
func (ls *logService) ListDeposits(ctx context.Context, query ListQuery) (deposits []*deposit.Deposit, err error) {
	start := time.Now()

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("ListDeposits failed",
				zap.String("service", serviceName),
				zap.String("method", "ListDeposits"),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Debug("ListDeposits completed",
				zap.String("service", serviceName),
				zap.String("method", "ListDeposits"),
				zap.Int("count", len(deposits)),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.ListDeposits(ctx, query)
}

// Route wraps the service method with logging
func (ls *logService) Route(ctx context.Context, addressHex string) (summary *sweeper.Summary, err error) {
	start := time.Now()

	ls.logger.Info("Route started",
		zap.String("service", serviceName),
		zap.String("method", "Route"),
		zap.String("address", addressHex),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("Route failed",
				zap.String("service", serviceName),
				zap.String("method", "Route"),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Info("Route completed",
				zap.String("service", serviceName),
				zap.String("method", "Route"),
				zap.String("run_id", summary.RunID.String()),
				zap.Int("routed", summary.Routed),
				zap.Int("skipped", summary.Skipped),
				zap.Int("failed", summary.Failed),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.Route(ctx, addressHex)
}

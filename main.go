package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/crm/internal/cache"
	"github.com/umalmyha/crm/internal/config"
	"github.com/umalmyha/crm/internal/infra"
	"github.com/umalmyha/crm/internal/metrics"
	"github.com/umalmyha/crm/internal/repository"
	"github.com/umalmyha/crm/internal/validation"
)

const DefaultConnectTimeout = 10 * time.Second

// @title                      CRM API
// @version                    1.0
// @description                Complaints, employees, departments, tasks and notifications of CRM backend
// @BasePath                   /
// @securityDefinitions.apikey ApiKeyAuth
// @in                         header
// @name                       Authorization
func main() {
	cfg, err := config.Build()
	if err != nil {
		logrus.Fatal(err)
	}

	logger, err := infra.Logger(&cfg.LogCfg)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal(err)
	}
}

func run(cfg *config.Config, logger *logrus.Logger) error {
	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		return fmt.Errorf("failed to register metrics - %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), DefaultConnectTimeout)
	defer cancel()

	storage, closeStorage, err := connectStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStorage()

	complaintCache := cache.NewNoopComplaintCache()
	if cfg.RedisCfg.Enabled() {
		redisClient, err := infra.Redis(ctx, &cfg.RedisCfg)
		if err != nil {
			return err
		}
		defer redisClient.Close()

		complaintCache = cache.NewRedisComplaintCache(redisClient, cfg.RedisCfg.CacheTTL)
		logger.Info("complaint tracking cache is enabled")
	}

	validator, err := validation.New()
	if err != nil {
		return fmt.Errorf("failed to build validator - %w", err)
	}

	svcs, err := infra.NewServices(cfg, storage, complaintCache, validator, logger)
	if err != nil {
		return err
	}

	if cfg.AdminCfg.Enabled() {
		admin := cfg.AdminCfg
		if err := svcs.Auth.EnsureAdmin(ctx, admin.Username, admin.Email, admin.Password); err != nil {
			return fmt.Errorf("failed to bootstrap admin user - %w", err)
		}
	}

	start(cfg, svcs, validator, logger)
	return nil
}

func connectStorage(ctx context.Context, cfg *config.Config, logger logrus.FieldLogger) (*infra.Storage, func(), error) {
	if cfg.StorageDriver == config.StorageMongo {
		client, err := infra.Mongodb(ctx, &cfg.MongoCfg)
		if err != nil {
			return nil, nil, err
		}

		closeFn := func() {
			ctx, cancel := context.WithTimeout(context.Background(), DefaultConnectTimeout)
			defer cancel()

			if err := client.Disconnect(ctx); err != nil {
				logger.WithError(err).Error("failed to disconnect from mongo")
			}
		}

		if err := repository.EnsureMongoIndexes(ctx, client.Database(cfg.MongoCfg.Database)); err != nil {
			closeFn()
			return nil, nil, err
		}

		logger.WithField("database", cfg.MongoCfg.Database).Info("mongo storage is used")
		return infra.MongoStorage(client, &cfg.MongoCfg), closeFn, nil
	}

	pool, err := infra.Postgresql(ctx, &cfg.PostgresCfg)
	if err != nil {
		return nil, nil, err
	}

	logger.WithField("database", cfg.PostgresCfg.Database).Info("postgres storage is used")
	return infra.PostgresStorage(pool), pool.Close, nil
}

func start(cfg *config.Config, svcs *infra.Services, validator *validation.Validator, logger *logrus.Logger) {
	app := infra.Router(svcs, validator, logger)
	grpcSrv := infra.GrpcServer(svcs, validator, logger)

	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 2)
	signal.Notify(shutdownCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Infof("http server is listening on port %d", cfg.ServerCfg.HTTPPort)
		errorCh <- app.Start(fmt.Sprintf(":%d", cfg.ServerCfg.HTTPPort))
	}()

	go func() {
		lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.ServerCfg.GRPCPort))
		if err != nil {
			errorCh <- fmt.Errorf("failed to listen grpc port - %w", err)
			return
		}

		logger.Infof("grpc server is listening on port %d", cfg.ServerCfg.GRPCPort)
		errorCh <- grpcSrv.Serve(lis)
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ServerCfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutdown signal has been sent, stopping the servers...")
		grpcSrv.GracefulStop()
		if err := app.Shutdown(ctx); err != nil {
			logger.Errorf("failed to stop server gracefully - %s", err)
		}
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("shutting down the servers, unexpected error occurred - %s", err)
		}
		grpcSrv.Stop()
		_ = app.Close()
	}
}

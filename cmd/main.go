package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	rpcctx "github.com/chirpnet/chirper-server/internal/api/rpc/context"
	"github.com/chirpnet/chirper-server/internal/api/rpc/router"
	rpcServer "github.com/chirpnet/chirper-server/internal/api/rpc/server"
	"github.com/chirpnet/chirper-server/internal/config"
	"github.com/chirpnet/chirper-server/internal/logger"
	"github.com/chirpnet/chirper-server/internal/model"
	"github.com/chirpnet/chirper-server/internal/repository/postgres"
	"github.com/chirpnet/chirper-server/internal/server"
	"github.com/chirpnet/chirper-server/internal/service"
	storage "github.com/chirpnet/chirper-server/internal/storage/minio"
	"github.com/chirpnet/chirper-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	accountRepo := postgres.NewAccountRepository(db)
	tweetRepo := postgres.NewTweetRepository(db)
	treasuryRepo := postgres.NewTreasuryRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	registryRepo := postgres.NewRegistryRepository(db)
	tokenManager := token.NewJWT(cfg.JWT.Secret)

	registryService := service.NewRegistry(registryRepo, logger)
	if !common.IsHexAddress(cfg.Registry.OwnerAddress) {
		logger.Fatal("invalid registry owner address", "address", cfg.Registry.OwnerAddress)
	}
	if err := registryService.Bootstrap(ctx, common.HexToAddress(cfg.Registry.OwnerAddress)); err != nil {
		logger.Fatal("failed to bootstrap registry", "error", err)
	}

	accountService := service.NewAccount(accountRepo, logger)
	feedService := service.NewFeed(tweetRepo, treasuryRepo, eventRepo, registryService, logger)
	ctxMgr := rpcctx.NewManager()

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}
	mediaService := service.NewMedia(storageClient, logger)

	r := router.New(accountService, feedService, registryService, mediaService, tokenManager, ctxMgr, logger)
	apiServer := rpcServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(apiServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := apiServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", apiServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/wfint/cloudinary-sync/internal/app/auth"
	"github.com/wfint/cloudinary-sync/internal/app/cloudinary"
	"github.com/wfint/cloudinary-sync/internal/app/processor"
	"github.com/wfint/cloudinary-sync/internal/app/runner"
	"github.com/wfint/cloudinary-sync/internal/app/workfront"
	"github.com/wfint/cloudinary-sync/internal/config"
	"github.com/wfint/cloudinary-sync/internal/utils/logger"
	"go.uber.org/zap"
)

func main() {
	envFile := ".env"
	if len(os.Args) > 1 {
		envFile = os.Args[1]
	}

	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		fmt.Printf("error initializing config: %v\n", err)
		os.Exit(1)
	}

	err = logger.Init(cfg.LogMode)
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded successfully")
	logger.Debug("debug mode enabled",
		zap.String("log_mode", cfg.LogMode),
		zap.Int("max_tasks_per_run", cfg.MaxTasksPerRun),
	)

	assetStore, err := cloudinary.CreateService(cfg)
	if err != nil {
		logger.Error("failed to initialize cloudinary service", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	workfrontClient := workfront.CreateClient(cfg)
	authenticator := auth.CreateJWTAuthenticator(cfg)
	documentProcessor := processor.CreateDocumentProcessor(workfrontClient, assetStore, cfg, "")
	taskRunner := runner.CreateTaskRunner(authenticator, workfrontClient, documentProcessor, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	code := taskRunner.Run(ctx)

	stop()
	logger.Sync()
	os.Exit(code)
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"sahilparate51/resume-relevance/internal/config"
	"sahilparate51/resume-relevance/internal/handlers"
	"sahilparate51/resume-relevance/internal/logger"
	"sahilparate51/resume-relevance/internal/repositories"
	"sahilparate51/resume-relevance/internal/services"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()
	zlog.Info("✅ Config loaded successfully")

	ctx := context.Background()

	db, err := config.InitDatabase(cfg, zlog)
	if err != nil {
		zlog.Fatal("❌ Failed to initialize database", zap.Error(err))
	}

	evalRepo := repositories.NewEvaluationRepository(db)
	zlog.Info("✅ Repositories initialized successfully")

	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		zlog.Fatal("❌ Failed to create upload directory", zap.Error(err))
	}

	metrics := services.NewMetrics()

	deps, err := services.NewPipeline(ctx, cfg, evalRepo, metrics, zlog)
	if err != nil {
		zlog.Fatal("❌ Failed to initialize scoring pipeline", zap.Error(err))
	}
	defer deps.Close()
	zlog.Info("✅ Services initialized successfully", zap.String("vector_index", cfg.Scoring.VectorIndex))

	analyzeHandler := handlers.NewAnalyzeHandler(deps.Analyzer, storageService, cfg.Storage.MaxFileSize, zlog)
	historyHandler := handlers.NewHistoryHandler(evalRepo, services.NewExportService())
	reportHandler := handlers.NewReportHandler(services.NewReportService())
	zlog.Info("✅ Handlers initialized")

	// every request may carry a JD plus several resumes
	app := handlers.NewApp(handlers.RouterConfig{
		BodyLimit:  int(cfg.Storage.MaxFileSize) * 10,
		AccessLogs: true,
	}, analyzeHandler, historyHandler, reportHandler, metrics)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zlog.Info("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			zlog.Error("❌ Server forced to shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zlog.Info("🚀 Server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zlog.Fatal("❌ Failed to start server", zap.Error(err))
	}
}

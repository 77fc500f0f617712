package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	//.envは無くてもよい
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	cfg := config.Load()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Error("db connect", "error", err)
		os.Exit(1)
	}
	if err := gormDB.AutoMigrate(&model.Product{}); err != nil {
		logger.Error("db migrate", "error", err)
		os.Exit(1)
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo, logger)

	//Handler生成
	productH := handler.NewProductHandler(productUC)

	//Server起動
	srv := server.New(cfg, logger, productH)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("listening", "port", cfg.Port)
	if err := srv.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

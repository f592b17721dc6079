package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/minaorangina/klondike/config"
	"github.com/minaorangina/klondike/server"
	"github.com/minaorangina/klondike/store"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	s := server.NewServer(server.Opts{
		Store:          store.NewInMemoryGameStore(),
		Logger:         logger,
		AllowedOrigins: cfg.Origins(),
		IdleTTL:        cfg.GameTTL,
	})
	s.Addr = cfg.Addr()

	reapCtx, stopReaping := context.WithCancel(context.Background())
	defer stopReaping()
	go s.ReapIdleGames(reapCtx)

	go func() {
		logger.Info("listening", zap.String("addr", s.Addr))
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

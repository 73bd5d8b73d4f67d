package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/tidwall/buntdb"

	"github.com/camppp/Fetch-BE-Take-Home/api"
	"github.com/camppp/Fetch-BE-Take-Home/internal/receipt"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// in-memory database, gone when the process exits
	db, err := buntdb.Open(":memory:")
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open in-memory database")
	}
	defer db.Close()

	repo := receipt.NewBuntDBPointsRepository(db)
	receiptAPI := api.NewReceiptAPI(repo, receipt.UUIDGenerator{}, logger)

	router := mux.NewRouter() // gorilla mux for the dynamic /receipts/{id}/points route
	receiptAPI.InitializeRoutes(router)

	addr := env("HTTP_ADDR", ":8080")
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info().Str("addr", addr).Msg("receipt processor listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http serve error")
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop

	logger.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown error")
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

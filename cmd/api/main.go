package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"sociality/internal/common"
	"sociality/internal/dbmysql"
	"sociality/internal/seed"
	"sociality/internal/wire"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	app, cleanup, err := wire.InitializeApplication()
	if err != nil {
		panic("failed to initialize application: " + err.Error())
	}
	defer cleanup()

	logger := app.Logger
	defer logger.Sync()

	ctx := context.Background()
	if err := dbmysql.Migrate(app.DB); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}
	if err := seed.EnsureAdmin(ctx, app.DB, app.Config, logger); err != nil {
		logger.Fatal("admin seed failed", zap.Error(err))
	}

	router := setupRouter(app)

	cors := handlers.CORS(
		handlers.AllowedOrigins(app.Config.Server.CORSOrigins),
		handlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPatch,
			http.MethodPut, http.MethodDelete, http.MethodOptions,
		}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)

	srv := &http.Server{
		Addr:         app.Config.Server.Host + ":" + app.Config.Server.Port,
		Handler:      cors(router),
		ReadTimeout:  time.Duration(app.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(app.Config.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("api listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func setupRouter(app *wire.Application) *mux.Router {
	r := mux.NewRouter()
	r.Use(common.RequestLogger(app.Logger))
	r.Use(common.Recovery(app.Logger))

	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		common.WriteJSON(w, http.StatusOK, map[string]interface{}{"name": "sociality", "status": "ok"})
	}).Methods(http.MethodGet)
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		common.WriteJSON(w, http.StatusOK, map[string]interface{}{"status": "ok"})
	}).Methods(http.MethodGet)

	app.MediaServer.RegisterRoutes(r)

	api := r.PathPrefix("/api").Subrouter()
	app.UserHandler.RegisterRoutes(api, app.Auth)
	app.PostHandler.RegisterRoutes(api, app.Auth)
	app.FeedHandler.RegisterRoutes(api, app.Auth)

	return r
}

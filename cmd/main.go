package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Kravtmk/whoami-app/internal/config"
	"github.com/Kravtmk/whoami-app/internal/repository"
	"github.com/Kravtmk/whoami-app/internal/service"
	"github.com/Kravtmk/whoami-app/internal/transport/https"
)

// @title WhoAmI: учёт времени по ролям
// @version 1.0
// @host localhost:8000
// @BasePath /
func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	level, _ := cfg.SlogLevel()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := repository.NewStore(ctx, cfg)
	if err != nil {
		log.Fatal("Storage init failed: ", err)
	}
	seed, err := service.LoadSeedRoles(cfg.RolesSeedFile)
	if err != nil {
		log.Fatal("Failed to load role seed: ", err)
	}
	roleRegistry, err := service.NewRoleRegistry(ctx, store, seed)
	if err != nil {
		log.Fatal("Failed to load role registry: ", err)
	}
	dayLogService := service.NewDayLogService(store)
	httpHandlers := https.NewHTTPHandlers(roleRegistry, dayLogService)
	srv := https.NewHTTPServer(httpHandlers, cfg.AppPort)

	shutdownTimeout, _ := cfg.ShutdownDuration()
	if err := https.StartServer(ctx, srv, store, shutdownTimeout); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"planner/cache"
	"planner/config"
	"planner/connection"
	"planner/middleware"
	"planner/model"
	"planner/scheduler"
	"planner/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := connection.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StoreDriver, err)
	}
	defer db.Close()

	opts := services.Options{
		JWTSecret:        cfg.JWTSecret,
		SessionMaxAge:    cfg.SessionMaxAge,
		SessionUpdateAge: cfg.SessionUpdateAge,
		CheckEmailMX:     cfg.CheckEmailMX,
	}
	if cfg.CaptchaEnabled() {
		opts.Captcha = &services.RecaptchaVerifier{
			ProjectID:       cfg.RecaptchaProjectID,
			SiteKey:         cfg.RecaptchaSiteKey,
			CredentialsFile: cfg.RecaptchaCredential,
		}
	}
	svc := services.New(db, opts)

	userCache := cache.NewTTL[string, *model.User](cfg.UserCacheTTL)
	sessionAuth := middleware.NewSessionAuth(svc.Sessions, svc.Users, userCache)

	jobs := scheduler.New(nil)
	if _, err := jobs.PruneEvery(cfg.CachePruneInterval, map[string]scheduler.Pruner{
		"users":     userCache,
		"dashboard": svc.DashboardCache,
	}); err != nil {
		log.Fatalf("Failed to schedule cache pruning: %v", err)
	}
	jobs.Start()
	defer jobs.Stop()

	router := connection.NewRouter(cfg, svc, sessionAuth)
	if err := connection.StartServer(ctx, cfg.Port, router); err != nil {
		log.Printf("Server error: %v", err)
	}
}

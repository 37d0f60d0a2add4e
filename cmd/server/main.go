package main

import (
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/business-registry/internal/config"
	"github.com/iliyamo/business-registry/internal/handler"
	"github.com/iliyamo/business-registry/internal/queue"
	"github.com/iliyamo/business-registry/internal/repository"
	"github.com/iliyamo/business-registry/internal/router"
	"github.com/iliyamo/business-registry/internal/service"
)

func main() {
	cfg := config.Load()

	// Process-scoped stores, constructed once and passed by handle.
	users := repository.NewUserRepo()
	businesses := repository.NewBusinessRepo()
	revoked := repository.NewRevocationRepo()

	auth := service.NewAuthService(cfg, users, revoked)
	guard := service.NewGuard(users)

	events := os.Getenv("EVENTS_ENABLED") == "true"
	if events {
		go func() {
			if err := queue.StartEventConsumer(); err != nil {
				log.Printf("event consumer stopped: %v", err)
			}
		}()
	}

	// Drop blacklist entries for tokens that have expired on their own.
	go func() {
		t := time.NewTicker(10 * time.Minute)
		defer t.Stop()
		for range t.C {
			if n := revoked.PurgeExpired(time.Now().UTC()); n > 0 {
				log.Printf("revocation list: purged %d expired entries", n)
			}
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(auth, users, events), auth)
	router.RegisterBusinesses(e,
		handler.NewBusinessHandler(businesses, guard, events),
		auth, config.LoadCacheConfig(), config.NewRedisClient())

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

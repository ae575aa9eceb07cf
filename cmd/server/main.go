package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/dabirisdesserts/order-intake/internal/airtable"
	"github.com/dabirisdesserts/order-intake/internal/config"
	"github.com/dabirisdesserts/order-intake/internal/handlers"
	"github.com/dabirisdesserts/order-intake/internal/mailer"
	"github.com/dabirisdesserts/order-intake/internal/metrics"
	"github.com/dabirisdesserts/order-intake/internal/workflow"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	r := gin.New()
	r.Use(gin.Recovery(), metrics.Middleware())

	store := airtable.New(cfg.Airtable.APIKey, cfg.Airtable.BaseID, cfg.Airtable.TableID, cfg.HTTPTimeout)
	sender := mailer.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)

	proc := workflow.NewProcessor(workflow.Config{
		Store:         store,
		Notifier:      mailer.NewDispatcher(sender),
		Renderer:      mailer.NewRenderer(),
		FromAddress:   cfg.SMTP.Username,
		BusinessEmail: cfg.BusinessEmail,
	})

	handlers.RegisterOrderRoutes(r, handlers.HandlerConfig{
		Submitter: proc,
		DevMode:   cfg.Development(),
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 2 * cfg.HTTPTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown failed: %v", err)
	}
	log.Info("server stopped")
}

package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/dabirisdesserts/order-intake/internal/airtable"
	"github.com/dabirisdesserts/order-intake/internal/config"
	"github.com/dabirisdesserts/order-intake/internal/handlers"
	"github.com/dabirisdesserts/order-intake/internal/mailer"
	"github.com/dabirisdesserts/order-intake/internal/workflow"
)

func init() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)
}

func setupRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	store := airtable.New(cfg.Airtable.APIKey, cfg.Airtable.BaseID, cfg.Airtable.TableID, cfg.HTTPTimeout)
	sender := mailer.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)

	proc := workflow.NewProcessor(workflow.Config{
		Store:         store,
		Notifier:      mailer.NewDispatcher(sender),
		Renderer:      mailer.NewRenderer(),
		FromAddress:   cfg.SMTP.Username,
		BusinessEmail: cfg.BusinessEmail,
		// The serverless path probes the datastore before every write.
		Preflight: true,
	})

	handlers.RegisterOrderRoutes(r, handlers.HandlerConfig{
		Submitter: proc,
		DevMode:   cfg.Development(),
	})
	return r
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	r := setupRouter(cfg)

	// RUN_LOCAL=true runs a plain HTTP server for development.
	if os.Getenv("RUN_LOCAL") == "true" {
		addr := ":" + cfg.Port
		log.Infof("running local server on %s", addr)
		if err := r.Run(addr); err != nil {
			log.Fatalf("failed to run local server: %v", err)
		}
		return
	}

	adapter := ginadapter.New(r)
	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (interface{}, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}

package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/dabirisdesserts/order-intake/internal/airtable"
	"github.com/dabirisdesserts/order-intake/internal/metrics"
	"github.com/dabirisdesserts/order-intake/internal/validation"
	"github.com/dabirisdesserts/order-intake/internal/workflow"
)

const (
	successMessage = "Order submitted successfully! Check your email for confirmation."
	failureMessage = "Error processing order. Please try again or contact us directly."
)

// Submitter runs one order submission end to end.
type Submitter interface {
	Submit(ctx context.Context, req validation.SubmitOrderRequest) (workflow.Result, error)
}

// HandlerConfig groups dependencies for the order intake routes.
type HandlerConfig struct {
	Submitter Submitter
	// DevMode echoes internal error detail in responses. Never enabled
	// in production.
	DevMode bool
}

// RegisterOrderRoutes wires the intake surface onto the router: CORS for
// every route, OPTIONS preflight, 405 for disallowed methods, the
// submission endpoint and the liveness probe.
func RegisterOrderRoutes(r *gin.Engine, cfg HandlerConfig) {
	v := validation.New()

	r.Use(corsHeaders())
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"success": false,
			"message": "Method not allowed",
		})
	})

	// Preflight succeeds for any path.
	r.OPTIONS("/*path", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "CORS preflight"})
	})

	// Liveness probe only; it does not touch any dependency.
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	r.POST("/submit-order", func(c *gin.Context) {
		start := time.Now()
		logger := log.WithField("request_id", uuid.NewString())

		var req validation.SubmitOrderRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			// BindAndValidate already wrote the 400.
			metrics.OrdersTotal.WithLabelValues("validation_failed").Inc()
			logger.WithError(err).Warn("rejected submission")
			return
		}

		res, err := cfg.Submitter.Submit(c.Request.Context(), req)
		if err != nil {
			status, kind := classify(err)
			metrics.OrdersTotal.WithLabelValues(kind).Inc()
			logger.WithError(err).Error("submission failed")

			body := gin.H{
				"success": false,
				"message": failureMessage,
				"error":   kind,
			}
			if status == http.StatusBadRequest {
				body["message"] = "Invalid order submission. Please check the required fields."
			}
			if cfg.DevMode {
				body["details"] = err.Error()
			}
			c.JSON(status, body)
			return
		}

		metrics.OrdersTotal.WithLabelValues("completed").Inc()
		metrics.SubmissionDuration.Observe(time.Since(start).Seconds())
		logger.WithFields(log.Fields{"order_id": res.OrderID, "total": res.Total}).Info("submission completed")

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"orderId": res.OrderID,
			"total":   res.Total,
			"message": successMessage,
		})
	})
}

// classify maps a workflow error onto a status code and a stable
// machine-readable kind.
func classify(err error) (int, string) {
	var ve *workflow.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, "validation_failed"
	}
	var ne *workflow.NotificationError
	if errors.As(err, &ne) {
		return http.StatusInternalServerError, "notification_failed"
	}
	var ae *airtable.APIError
	if errors.As(err, &ae) {
		return http.StatusInternalServerError, "datastore_failed"
	}
	return http.StatusInternalServerError, "internal_error"
}

func corsHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
		c.Next()
	}
}

package workflow

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/dabirisdesserts/order-intake/internal/mailer"
	"github.com/dabirisdesserts/order-intake/internal/orders"
	"github.com/dabirisdesserts/order-intake/internal/pricing"
	"github.com/dabirisdesserts/order-intake/internal/validation"
)

// Datastore is the persistence capability the workflow needs.
type Datastore interface {
	CreateOrder(ctx context.Context, o orders.Order) (string, error)
	Healthcheck(ctx context.Context) error
}

// Notifier dispatches the customer and business messages for an order.
type Notifier interface {
	Send(ctx context.Context, customer, business mailer.Message) error
}

// Renderer builds subject and body for the two notification messages.
type Renderer interface {
	Customer(o orders.Order, now time.Time) (subject, html string, err error)
	Business(o orders.Order, now time.Time) (subject, html string, err error)
}

// Result is the terminal state of a successful submission.
type Result struct {
	OrderID  string
	Total    float64
	RemoteID string
}

// Config groups the processor dependencies. All clients are constructed
// once at process start and reused across requests.
type Config struct {
	Store         Datastore
	Notifier      Notifier
	Renderer      Renderer
	FromAddress   string
	BusinessEmail string
	// Preflight enables a datastore healthcheck before the write, to
	// verify credentials and connectivity before committing to anything.
	Preflight bool
}

// Processor sequences one submission through normalize → price → persist
// → notify. Each step runs at most once; there are no automatic retries.
// A persistence failure is fatal: no notification goes out for an order
// the datastore did not confirm.
type Processor struct {
	store     Datastore
	notifier  Notifier
	renderer  Renderer
	fromAddr  string
	bizAddr   string
	preflight bool
	nowFunc   func() time.Time
	rng       *rand.Rand // nil means the shared package source
}

// NewProcessor creates a Processor from its dependency bundle.
func NewProcessor(cfg Config) *Processor {
	return &Processor{
		store:     cfg.Store,
		notifier:  cfg.Notifier,
		renderer:  cfg.Renderer,
		fromAddr:  cfg.FromAddress,
		bizAddr:   cfg.BusinessEmail,
		preflight: cfg.Preflight,
		nowFunc:   time.Now,
	}
}

// Submit runs the full intake workflow for one raw submission and returns
// the finalized order id and total, or the first error encountered.
func (p *Processor) Submit(ctx context.Context, req validation.SubmitOrderRequest) (Result, error) {
	now := p.nowFunc()

	order, err := orders.Normalize(req)
	if err != nil {
		return Result{}, &ValidationError{Reason: err.Error()}
	}

	// Pricing cannot fail on normalized input; the total is always
	// recomputed here regardless of anything the client claimed.
	order.TotalPrice = pricing.ComputeTotal(order.LineItems, order.PickupDate, now)
	order.OrderID = orders.NewOrderID(now, p.rng)
	order.SubmittedAt = now

	logger := log.WithFields(log.Fields{
		"order_id":          order.OrderID,
		"total":             order.TotalPrice,
		"days_until_pickup": pricing.DaysUntilPickup(order.PickupDate, now),
	})

	if p.preflight {
		if err := p.store.Healthcheck(ctx); err != nil {
			logger.WithError(err).Error("datastore healthcheck failed")
			return Result{}, fmt.Errorf("datastore healthcheck: %w", err)
		}
	}

	remoteID, err := p.store.CreateOrder(ctx, order)
	if err != nil {
		logger.WithError(err).Error("failed to persist order")
		return Result{}, fmt.Errorf("persist order: %w", err)
	}

	customerSubject, customerBody, err := p.renderer.Customer(order, now)
	if err != nil {
		return Result{}, &NotificationError{Err: err}
	}
	businessSubject, businessBody, err := p.renderer.Business(order, now)
	if err != nil {
		return Result{}, &NotificationError{Err: err}
	}

	customer := mailer.Message{
		From:     p.fromAddr,
		To:       order.Email,
		Subject:  customerSubject,
		HTMLBody: customerBody,
	}
	business := mailer.Message{
		From:     p.fromAddr,
		To:       p.bizAddr,
		Subject:  businessSubject,
		HTMLBody: businessBody,
	}

	if err := p.notifier.Send(ctx, customer, business); err != nil {
		logger.WithError(err).Error("failed to dispatch notifications")
		return Result{}, &NotificationError{Err: err}
	}

	logger.WithField("remote_id", remoteID).Info("order submitted")
	return Result{OrderID: order.OrderID, Total: order.TotalPrice, RemoteID: remoteID}, nil
}

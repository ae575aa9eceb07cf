package mailer

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Message is one outbound email.
type Message struct {
	From     string
	To       string
	Subject  string
	HTMLBody string
}

// Sender submits a single message to the mail transport.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Dispatcher fans one finalized order out into its customer and business
// notifications. Both messages must be accepted by the transport.
type Dispatcher struct {
	sender Sender
}

// NewDispatcher returns a Dispatcher backed by the given transport.
func NewDispatcher(sender Sender) *Dispatcher {
	return &Dispatcher{sender: sender}
}

// Send dispatches both messages concurrently. The first failure wins and
// is returned; the other in-flight send is not awaited further.
func (d *Dispatcher) Send(ctx context.Context, customer, business Message) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return d.sender.Send(ctx, customer) })
	g.Go(func() error { return d.sender.Send(ctx, business) })
	return g.Wait()
}

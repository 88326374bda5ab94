package usecase

import (
	"context"
	"time"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

type pendingKey struct{}

type pendingEvents struct {
	events []domain.Event
}

// unitOfWork runs an operation atomically and publishes the events it
// raised once the transaction has committed. A unit of work started inside
// another one joins it, so a mint triggered by a donation commits or rolls
// back together with the donation.
type unitOfWork struct {
	tx    port.Transactor
	pub   port.EventPublisher
	clock port.Clock
}

func (u unitOfWork) do(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, nested := ctx.Value(pendingKey{}).(*pendingEvents); nested {
		return fn(ctx)
	}
	pending := &pendingEvents{}
	ctx = context.WithValue(ctx, pendingKey{}, pending)
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		// A retried transaction raises its events again.
		pending.events = pending.events[:0]
		return fn(ctx)
	})
	if err != nil {
		return err
	}
	if u.pub == nil {
		return nil
	}
	for _, evt := range pending.events {
		u.pub.Publish(ctx, evt)
	}
	return nil
}

// emit queues an event on the unit of work carried by ctx.
func (u unitOfWork) emit(ctx context.Context, eventType domain.EventType, data any) {
	pending, ok := ctx.Value(pendingKey{}).(*pendingEvents)
	if !ok {
		return
	}
	pending.events = append(pending.events, domain.NewEvent(eventType, data, u.clock.Now()))
}

// Package event fans committed ledger events out to in-process observers.
package event

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"crowdfund/internal/core/domain"
)

// QueueSize is the per-subscriber buffer. Events for a full subscriber are
// dropped rather than stalling the publishing request.
const QueueSize = 64

type SubscriberID int

type HandlerFunc func(domain.Event)

type metrics struct {
	published   *prometheus.CounterVec
	dropped     *prometheus.CounterVec
	subscribers *prometheus.GaugeVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		published: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crowdfund",
			Subsystem: "events",
			Name:      "published_total",
			Help:      "Events published after commit, by type.",
		}, []string{"type"}),
		dropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crowdfund",
			Subsystem: "events",
			Name:      "dropped_total",
			Help:      "Events dropped because a subscriber queue was full.",
		}, []string{"type"}),
		subscribers: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "crowdfund",
			Subsystem: "events",
			Name:      "subscribers",
			Help:      "Active subscribers, by type.",
		}, []string{"type"}),
	}
	reg.MustRegister(m.published, m.dropped, m.subscribers)
	return m
}

// Bus implements port.EventPublisher.
type Bus struct {
	mu      sync.RWMutex
	subs    map[domain.EventType]map[SubscriberID]chan domain.Event
	lastID  SubscriberID
	metrics *metrics
	logger  *slog.Logger
	wg      sync.WaitGroup
}

// NewBus creates a bus. reg may be nil to skip metrics.
func NewBus(reg prometheus.Registerer, logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	b := &Bus{
		subs:   make(map[domain.EventType]map[SubscriberID]chan domain.Event),
		logger: logger,
	}
	if reg != nil {
		b.metrics = newMetrics(reg)
	}
	return b
}

// Subscribe returns a channel receiving events of eventType. The channel is
// closed by Unsubscribe or Stop.
func (b *Bus) Subscribe(eventType domain.EventType) (SubscriberID, <-chan domain.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastID++
	ch := make(chan domain.Event, QueueSize)
	if _, ok := b.subs[eventType]; !ok {
		b.subs[eventType] = make(map[SubscriberID]chan domain.Event)
	}
	b.subs[eventType][b.lastID] = ch
	if b.metrics != nil {
		b.metrics.subscribers.WithLabelValues(string(eventType)).Inc()
	}
	return b.lastID, ch
}

// SubscribeFunc calls fn for every event of eventType on a dedicated
// goroutine.
func (b *Bus) SubscribeFunc(eventType domain.EventType, fn HandlerFunc) SubscriberID {
	id, ch := b.Subscribe(eventType)
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		for evt := range ch {
			fn(evt)
		}
	}()
	return id
}

// Unsubscribe stops delivery to a subscriber and closes its channel.
func (b *Bus) Unsubscribe(eventType domain.EventType, id SubscriberID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs, ok := b.subs[eventType]
	if !ok {
		return
	}
	ch, ok := subs[id]
	if !ok {
		return
	}
	delete(subs, id)
	if len(subs) == 0 {
		delete(b.subs, eventType)
	}
	close(ch)
	if b.metrics != nil {
		b.metrics.subscribers.WithLabelValues(string(eventType)).Dec()
	}
}

// Publish delivers evt to every subscriber of its type without blocking.
func (b *Bus) Publish(_ context.Context, evt domain.Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for id, ch := range b.subs[evt.Type] {
		select {
		case ch <- evt:
		default:
			b.logger.Warn("subscriber queue full, dropping event",
				slog.String("type", string(evt.Type)),
				slog.Int("subscriber", int(id)))
			if b.metrics != nil {
				b.metrics.dropped.WithLabelValues(string(evt.Type)).Inc()
			}
		}
	}
	if b.metrics != nil {
		b.metrics.published.WithLabelValues(string(evt.Type)).Inc()
	}
}

// Stop closes every subscriber and waits for SubscribeFunc handlers to
// drain. The bus stays usable afterwards.
func (b *Bus) Stop() {
	b.mu.Lock()
	subs := b.subs
	b.subs = make(map[domain.EventType]map[SubscriberID]chan domain.Event)
	for _, byID := range subs {
		for _, ch := range byID {
			close(ch)
		}
	}
	if b.metrics != nil {
		b.metrics.subscribers.Reset()
	}
	b.mu.Unlock()
	b.wg.Wait()
}

// LogEvents subscribes logger to every event type.
func LogEvents(b *Bus, logger *slog.Logger) {
	for _, t := range domain.EventTypes {
		b.SubscribeFunc(t, func(evt domain.Event) {
			logger.Info("ledger event",
				slog.String("type", string(evt.Type)),
				slog.String("id", evt.ID.String()),
				slog.Any("data", evt.Data))
		})
	}
}

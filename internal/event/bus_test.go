package event_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/event"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestBusDeliversToSubscriber(t *testing.T) {
	bus := event.NewBus(nil, nil)
	defer bus.Stop()

	_, ch := bus.Subscribe(domain.EventNFTMinted)
	evt := domain.NewEvent(domain.EventNFTMinted, domain.NFTMinted{TokenID: 7}, time.Now())
	bus.Publish(context.Background(), evt)

	select {
	case got := <-ch:
		require.Equal(t, evt.ID, got.ID)
		data, ok := got.Data.(domain.NFTMinted)
		require.True(t, ok)
		assert.Equal(t, int64(7), data.TokenID)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}
}

func TestBusFiltersByType(t *testing.T) {
	bus := event.NewBus(nil, nil)
	defer bus.Stop()

	_, ch := bus.Subscribe(domain.EventAdminAssigned)
	bus.Publish(context.Background(), domain.NewEvent(domain.EventAdminRevoked, domain.AdminRevoked{}, time.Now()))

	select {
	case evt := <-ch:
		t.Fatalf("unexpected event %s", evt.Type)
	default:
	}
}

func TestBusSubscribeFuncStopsCleanly(t *testing.T) {
	bus := event.NewBus(nil, nil)

	var (
		mu  sync.Mutex
		got []domain.EventType
	)
	done := make(chan struct{})
	bus.SubscribeFunc(domain.EventDonationCreated, func(evt domain.Event) {
		mu.Lock()
		got = append(got, evt.Type)
		mu.Unlock()
		close(done)
	})
	bus.Publish(context.Background(), domain.NewEvent(domain.EventDonationCreated, domain.DonationCreated{}, time.Now()))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for handler")
	}
	bus.Stop()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []domain.EventType{domain.EventDonationCreated}, got)
}

func TestBusUnsubscribeClosesChannel(t *testing.T) {
	bus := event.NewBus(nil, nil)
	defer bus.Stop()

	id, ch := bus.Subscribe(domain.EventCampaignArchived)
	bus.Unsubscribe(domain.EventCampaignArchived, id)

	_, ok := <-ch
	assert.False(t, ok)
	// Unknown ids are ignored.
	bus.Unsubscribe(domain.EventCampaignArchived, id)
}

func TestBusDropsWhenQueueFull(t *testing.T) {
	reg := prometheus.NewRegistry()
	bus := event.NewBus(reg, nil)
	defer bus.Stop()

	bus.Subscribe(domain.EventDonationCreated)
	for i := 0; i < event.QueueSize+3; i++ {
		bus.Publish(context.Background(), domain.NewEvent(domain.EventDonationCreated, domain.DonationCreated{}, time.Now()))
	}

	assert.Equal(t, float64(3), counterValue(t, reg, "crowdfund_events_dropped_total"))
	assert.Equal(t, float64(event.QueueSize+3), counterValue(t, reg, "crowdfund_events_published_total"))
}

// counterValue reads a single-series counter from reg.
func counterValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name {
			require.Len(t, mf.GetMetric(), 1)
			return mf.GetMetric()[0].GetCounter().GetValue()
		}
	}
	t.Fatalf("metric %s not found", name)
	return 0
}

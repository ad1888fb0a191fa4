package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubPublishDeliversToSubscriber(t *testing.T) {
	hub := NewHub()
	ch, cleanup := hub.Subscribe("user-1")
	defer cleanup()

	hub.Publish("user-1", Event{Event: "summary_updated", Data: "payload"})

	select {
	case ev := <-ch:
		assert.Equal(t, "summary_updated", ev.Event)
		assert.Equal(t, "payload", ev.Data)
	default:
		t.Fatal("expected a buffered event")
	}
}

func TestHubPublishSkipsOtherUsers(t *testing.T) {
	hub := NewHub()
	ch, cleanup := hub.Subscribe("user-1")
	defer cleanup()

	hub.Publish("user-2", Event{Event: "summary_updated"})

	select {
	case <-ch:
		t.Fatal("event delivered to wrong user")
	default:
	}
}

func TestHubBroadcastReachesEveryone(t *testing.T) {
	hub := NewHub()
	ch1, cleanup1 := hub.Subscribe("user-1")
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe("user-2")
	defer cleanup2()

	hub.Broadcast(Event{Event: "dashboard_updated"})

	require.Len(t, ch1, 1)
	require.Len(t, ch2, 1)
	assert.Equal(t, "user-1", (<-ch1).UserID)
	assert.Equal(t, "user-2", (<-ch2).UserID)
}

func TestHubCleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub()
	_, cleanup := hub.Subscribe("user-1")
	require.Equal(t, 1, hub.SubscriberCount("user-1"))

	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount("user-1"))
}

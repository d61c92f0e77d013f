package battleship_test

import (
	"testing"
	"time"

	mb "github.com/mkarimi21/seabattle-backend/models/battleship"
)

func TestSubscribeReplaysBacklog(t *testing.T) {
	log := mb.NewEventLog()

	log.Append(mb.EventPlayerJoined, mb.PlayerJoinedPayload{Role: mb.RoleJoin})
	log.Append(mb.EventPlacementAccepted, mb.PlacementAcceptedPayload{Role: mb.RoleHost})
	log.Append(mb.EventPlacementAccepted, mb.PlacementAcceptedPayload{Role: mb.RoleJoin})

	backlog, live, cancel := log.Subscribe("subscriber-1")
	defer cancel()

	if len(backlog) != 3 {
		t.Fatalf("expected 3 backlog events, got %d", len(backlog))
	}
	for i, ev := range backlog {
		if ev.Seq != i {
			t.Fatalf("expected seq %d at index %d, got %d", i, i, ev.Seq)
		}
	}
	if backlog[0].Type != mb.EventPlayerJoined {
		t.Fatalf("expected first backlog event %s, got %s", mb.EventPlayerJoined, backlog[0].Type)
	}

	// Events appended after subscription arrive on the live channel.
	log.Append(mb.EventShotResult, mb.ShotResultPayload{Role: mb.RoleHost, Shot: mb.NewCoordinates(1, 1)})

	select {
	case ev := <-live:
		if ev.Seq != 3 || ev.Type != mb.EventShotResult {
			t.Fatalf("expected live event seq 3 of type %s, got %+v", mb.EventShotResult, ev)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for live event")
	}
}

func TestCancelClosesSubscription(t *testing.T) {
	log := mb.NewEventLog()

	_, live, cancel := log.Subscribe("subscriber-1")
	cancel()
	// Cancelling twice must be safe.
	cancel()

	if _, open := <-live; open {
		t.Fatal("expected closed live channel after cancel")
	}

	// Appending after cancel must not panic on the removed subscriber.
	log.Append(mb.EventPlayerJoined, mb.PlayerJoinedPayload{Role: mb.RoleJoin})
}

func TestSlowSubscriberIsDropped(t *testing.T) {
	log := mb.NewEventLog()

	_, live, cancel := log.Subscribe("subscriber-1")
	defer cancel()

	// One more event than the subscriber buffer holds. The overflowing
	// append drops the subscriber, the buffered events stay readable
	// and the channel ends closed.
	total := 65
	for i := 0; i < total; i++ {
		log.Append(mb.EventShotResult, mb.ShotResultPayload{Role: mb.RoleHost, Shot: mb.NewCoordinates(1, 1)})
	}

	received := 0
	for range live {
		received++
	}
	if received != total-1 {
		t.Fatalf("expected %d buffered events before the drop, got %d", total-1, received)
	}

	// A fresh subscription still replays the complete log.
	backlog, _, cancel2 := log.Subscribe("subscriber-1")
	defer cancel2()
	if len(backlog) != total {
		t.Fatalf("expected full backlog of %d, got %d", total, len(backlog))
	}
}

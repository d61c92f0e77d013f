package battleship

import (
	"sync"
)

const (
	EventPlayerJoined      = "PlayerJoined"
	EventPlacementAccepted = "PlacementAccepted"
	EventShotResult        = "ShotResult"
	EventGameOver          = "GameOver"
)

// Slow subscribers get dropped once their buffer fills up. The backlog
// replay on resubscription keeps delivery at-least-once.
const subscriberBufferSize = 64

type Event struct {
	Seq     int    `json:"sequence_number"`
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type PlayerJoinedPayload struct {
	Role string `json:"role"`
}

type PlacementAcceptedPayload struct {
	Role string `json:"role"`
}

// ShotResultPayload mirrors the shot response wire shape, plus the
// shooter's role so both subscribers can tell whose shot it was.
// It never carries placement information.
type ShotResultPayload struct {
	Role           string      `json:"role"`
	Shot           Coordinates `json:"shot"`
	Hit            bool        `json:"hit"`
	Sunk           bool        `json:"sunk"`
	Length         int         `json:"length"`
	FleetDestroyed bool        `json:"fleet_destroyed"`
}

type GameOverPayload struct {
	Winner string `json:"winner"`
}

type eventSubscriber struct {
	playerUuid string
	ch         chan Event
}

// EventLog is the append-only, sequence-numbered record of one game's
// state changes plus the fan-out point for its subscribers. Appends are
// synchronous with the mutation that caused them, delivery to
// subscribers is fire-and-forget.
type EventLog struct {
	mu     sync.Mutex
	events []Event
	subs   map[*eventSubscriber]struct{}
}

func NewEventLog() *EventLog {
	return &EventLog{
		events: make([]Event, 0, totalFleetCells()*2),
		subs:   make(map[*eventSubscriber]struct{}),
	}
}

// Append writes one event to the log and pushes it to every active
// subscriber. Sequence numbers start at 0 and increase strictly.
func (el *EventLog) Append(eventType string, payload any) Event {
	el.mu.Lock()
	defer el.mu.Unlock()

	ev := Event{
		Seq:     len(el.events),
		Type:    eventType,
		Payload: payload,
	}
	el.events = append(el.events, ev)

	for sub := range el.subs {
		select {
		case sub.ch <- ev:
		default:
			// Subscriber fell too far behind. Dropping it here instead
			// of blocking the mutating call, the closed channel tells
			// its transport adapter to end the stream.
			delete(el.subs, sub)
			close(sub.ch)
		}
	}
	return ev
}

// Subscribe registers a live subscriber and returns the full ordered
// backlog written so far. Snapshot and registration happen under one
// lock so no event is lost or duplicated between the two.
func (el *EventLog) Subscribe(playerUuid string) ([]Event, <-chan Event, func()) {
	el.mu.Lock()
	defer el.mu.Unlock()

	backlog := make([]Event, len(el.events))
	copy(backlog, el.events)

	sub := &eventSubscriber{
		playerUuid: playerUuid,
		ch:         make(chan Event, subscriberBufferSize),
	}
	el.subs[sub] = struct{}{}

	cancel := func() {
		el.mu.Lock()
		defer el.mu.Unlock()
		if _, prs := el.subs[sub]; prs {
			delete(el.subs, sub)
			close(sub.ch)
		}
	}
	return backlog, sub.ch, cancel
}

// Events returns a copy of the log written so far.
func (el *EventLog) Events() []Event {
	el.mu.Lock()
	defer el.mu.Unlock()

	events := make([]Event, len(el.events))
	copy(events, el.events)
	return events
}

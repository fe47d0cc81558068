package hub

import (
	"encoding/json"
	"testing"
)

func recv(t *testing.T, client Client) Event {
	t.Helper()
	select {
	case message := <-client:
		var event Event
		if err := json.Unmarshal(message, &event); err != nil {
			t.Fatalf("Failed to decode event: %v", err)
		}
		return event
	default:
		t.Fatal("expected an event, channel was empty")
		return Event{}
	}
}

func TestBroadcastReachesAllRoomSubscribers(t *testing.T) {
	h := NewHub()
	a := make(Client, 1)
	b := make(Client, 1)
	other := make(Client, 1)

	h.Subscribe("room-1", a)
	h.Subscribe("room-1", b)
	h.Subscribe("room-2", other)

	h.Broadcast("room-1", Event{Type: "voting_started", Payload: map[string]string{"roomId": "room-1"}})

	for _, client := range []Client{a, b} {
		event := recv(t, client)
		if event.Type != "voting_started" {
			t.Errorf("event type = %q, want voting_started", event.Type)
		}
	}

	select {
	case <-other:
		t.Error("subscriber of another room received the event")
	default:
	}
}

func TestUnicastReachesOneClient(t *testing.T) {
	h := NewHub()
	a := make(Client, 1)
	b := make(Client, 1)
	h.Subscribe("room-1", a)
	h.Subscribe("room-1", b)

	h.Unicast(a, Event{Type: "vote_accepted"})

	if event := recv(t, a); event.Type != "vote_accepted" {
		t.Errorf("event type = %q, want vote_accepted", event.Type)
	}
	select {
	case <-b:
		t.Error("unicast leaked to another client")
	default:
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	h := NewHub()
	a := make(Client, 1)
	h.Subscribe("room-1", a)
	h.Unsubscribe("room-1", a)

	h.Broadcast("room-1", Event{Type: "player_left"})

	select {
	case <-a:
		t.Error("unsubscribed client received an event")
	default:
	}

	if n := h.Subscribers("room-1"); n != 0 {
		t.Errorf("subscribers = %d, want 0", n)
	}
}

func TestBroadcastSkipsFullClient(t *testing.T) {
	h := NewHub()
	full := make(Client) // unbuffered and never drained
	ok := make(Client, 1)
	h.Subscribe("room-1", full)
	h.Subscribe("room-1", ok)

	// Must not block even though one subscriber cannot accept.
	h.Broadcast("room-1", Event{Type: "player_joined"})

	if event := recv(t, ok); event.Type != "player_joined" {
		t.Errorf("event type = %q, want player_joined", event.Type)
	}
}

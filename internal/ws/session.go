package ws

import (
	"time"

	"pokerplan/backend/internal/hub"
	"pokerplan/backend/internal/models"
	"pokerplan/backend/pkg/token"

	"github.com/gorilla/websocket"
)

// clientMessage is an action sent by a connected client.
type clientMessage struct {
	Action   string `json:"action"`
	RoomID   string `json:"roomId,omitempty"`
	PlayerID string `json:"playerId,omitempty"`
	Name     string `json:"name,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Token    string `json:"token,omitempty"`
	Value    int    `json:"value,omitempty"`
}

// session is the explicit per-connection context: it maps one live
// connection onto the room and player it is acting for. All dispatching
// runs on the connection's reader goroutine; the writer goroutine only
// drains the client channel.
type session struct {
	gw     *Gateway
	conn   *websocket.Conn
	client hub.Client
	connID string

	roomID   string
	playerID string
}

func (s *session) readLoop() {
	for {
		var msg clientMessage
		if err := s.conn.ReadJSON(&msg); err != nil {
			return
		}
		s.dispatch(msg)
	}
}

func (s *session) writeLoop(done chan struct{}) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case message, ok := <-s.client:
			if !ok {
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			if err := s.conn.WriteMessage(websocket.PingMessage, []byte{}); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func (s *session) dispatch(msg clientMessage) {
	switch msg.Action {
	case "joinRoom":
		s.handleJoin(msg)
	case "identify":
		s.handleIdentify(msg)
	case "startVoting":
		s.handleStart()
	case "submitVote":
		s.handleVote(msg)
	case "revealVotes":
		s.handleReveal()
	case "resetVoting":
		s.handleReset()
	case "leaveRoom":
		s.handleLeave()
	default:
		s.fail(msg.Action, "unknown action")
	}
}

// fail sends a unicast failure acknowledgement to this connection only.
// Guard failures are never broadcast room-wide.
func (s *session) fail(event, reason string) {
	s.gw.hub.Unicast(s.client, hub.Event{
		Type:    event,
		Payload: map[string]interface{}{"success": false, "reason": reason},
	})
}

// roomView is the room shape carried in event payloads: the roster but
// never the votes. Vote values travel only in votes_revealed, so a
// client joining mid-round cannot see what was already cast.
type roomView struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Status     models.RoomStatus `json:"status"`
	OwnerID    string            `json:"ownerId"`
	MaxPlayers int               `json:"maxPlayers"`
	Players    []models.Player   `json:"players"`
}

func (s *session) snapshot(roomID string) *roomView {
	snapshot, err := s.gw.service.GetRoom(roomID)
	if err != nil {
		return nil
	}
	return &roomView{
		ID:         snapshot.ID,
		Name:       snapshot.Name,
		Status:     snapshot.Status,
		OwnerID:    snapshot.OwnerID,
		MaxPlayers: snapshot.MaxPlayers,
		Players:    snapshot.Players,
	}
}

func (s *session) handleJoin(msg clientMessage) {
	player, err := s.gw.service.JoinRoom(msg.RoomID, msg.Name, msg.Avatar, msg.PlayerID, &s.connID)
	if err != nil {
		s.fail(EventJoined, err.Error())
		return
	}

	s.bind(msg.RoomID, player.ID)

	rejoinToken, err := token.Generate(s.gw.secret, player.ID, msg.RoomID)
	if err != nil {
		s.gw.log.Error().Err(err).Msg("failed to sign rejoin token")
	}

	snapshot := s.snapshot(msg.RoomID)
	s.gw.hub.Unicast(s.client, hub.Event{
		Type: EventJoined,
		Payload: map[string]interface{}{
			"success": true,
			"player":  player,
			"room":    snapshot,
			"token":   rejoinToken,
		},
	})
	s.gw.hub.Broadcast(msg.RoomID, hub.Event{
		Type: EventPlayerJoined,
		Payload: map[string]interface{}{
			"player": player,
			"room":   snapshot,
		},
	})
}

// handleIdentify reattaches a reconnecting client to its player using the
// rejoin token issued on join, without going through the name upsert.
func (s *session) handleIdentify(msg clientMessage) {
	claims, err := token.Parse(s.gw.secret, msg.Token)
	if err != nil {
		s.fail(EventJoined, "invalid rejoin token")
		return
	}

	player, err := s.gw.service.UpdateConnection(claims.PlayerID, s.connID)
	if err != nil {
		s.fail(EventJoined, err.Error())
		return
	}

	s.bind(claims.RoomID, player.ID)

	s.gw.hub.Unicast(s.client, hub.Event{
		Type: EventJoined,
		Payload: map[string]interface{}{
			"success": true,
			"player":  player,
			"room":    s.snapshot(claims.RoomID),
		},
	})
}

// bind subscribes this connection to a room, replacing any previous
// subscription. The client channel lives as long as the session, so the
// writer goroutine never sees it change.
func (s *session) bind(roomID, playerID string) {
	if s.roomID != "" && s.roomID != roomID {
		s.gw.hub.Unsubscribe(s.roomID, s.client)
	}
	if s.roomID != roomID {
		s.gw.hub.Subscribe(roomID, s.client)
	}
	s.roomID = roomID
	s.playerID = playerID
}

func (s *session) handleStart() {
	if s.playerID == "" {
		s.fail(EventVotingStarted, "not joined to a room")
		return
	}

	updated, err := s.gw.service.StartVoting(s.roomID, s.playerID)
	if err != nil {
		s.fail(EventVotingStarted, err.Error())
		return
	}

	s.gw.hub.Broadcast(s.roomID, hub.Event{
		Type: EventVotingStarted,
		Payload: map[string]interface{}{
			"roomId": updated.ID,
			"status": updated.Status,
			"room":   s.snapshot(s.roomID),
		},
	})
}

func (s *session) handleVote(msg clientMessage) {
	if s.playerID == "" {
		s.fail(EventVoteAccepted, "not joined to a room")
		return
	}

	vote, err := s.gw.service.SubmitVote(s.roomID, s.playerID, models.VoteValue(msg.Value))
	if err != nil {
		s.fail(EventVoteAccepted, err.Error())
		return
	}

	s.gw.hub.Unicast(s.client, hub.Event{
		Type: EventVoteAccepted,
		Payload: map[string]interface{}{
			"success": true,
			"vote":    map[string]interface{}{"id": vote.ID, "value": vote.Value},
		},
	})

	// The rest of the room learns only WHO voted; values stay private
	// until the reveal.
	s.gw.hub.BroadcastExcept(s.roomID, s.client, hub.Event{
		Type: EventPlayerVoted,
		Payload: map[string]interface{}{
			"playerId": s.playerID,
		},
	})
}

func (s *session) handleReveal() {
	if s.playerID == "" {
		s.fail(EventVotesRevealed, "not joined to a room")
		return
	}

	updated, err := s.gw.service.RevealVotes(s.roomID, s.playerID)
	if err != nil {
		s.fail(EventVotesRevealed, err.Error())
		return
	}

	votes, summary, err := s.gw.service.RoomVotes(s.roomID)
	if err != nil {
		s.fail(EventVotesRevealed, err.Error())
		return
	}

	s.gw.hub.Broadcast(s.roomID, hub.Event{
		Type: EventVotesRevealed,
		Payload: map[string]interface{}{
			"roomId":  updated.ID,
			"status":  updated.Status,
			"votes":   votes,
			"summary": summary,
		},
	})
}

func (s *session) handleReset() {
	if s.playerID == "" {
		s.fail(EventVotingReset, "not joined to a room")
		return
	}

	updated, err := s.gw.service.ResetVoting(s.roomID, s.playerID)
	if err != nil {
		s.fail(EventVotingReset, err.Error())
		return
	}

	s.gw.hub.Broadcast(s.roomID, hub.Event{
		Type: EventVotingReset,
		Payload: map[string]interface{}{
			"roomId": updated.ID,
			"status": updated.Status,
		},
	})
}

func (s *session) handleLeave() {
	if s.playerID == "" {
		s.fail(EventPlayerLeft, "not joined to a room")
		return
	}

	roomID, playerID := s.roomID, s.playerID
	if _, err := s.gw.service.RemovePlayer(playerID); err != nil {
		s.fail(EventPlayerLeft, err.Error())
		return
	}

	s.gw.hub.Unsubscribe(roomID, s.client)
	s.roomID, s.playerID = "", ""

	// The leaver is already unsubscribed, so this reaches the others only.
	s.gw.hub.Broadcast(roomID, hub.Event{
		Type: EventPlayerLeft,
		Payload: map[string]interface{}{
			"playerId": playerID,
			"room":     s.snapshot(roomID),
		},
	})
}

// teardown runs when the connection drops: the player is removed and the
// remaining subscribers get the updated roster.
func (s *session) teardown() {
	if s.roomID == "" {
		return
	}

	roomID, playerID := s.roomID, s.playerID
	s.gw.hub.Unsubscribe(roomID, s.client)

	if playerID != "" {
		if _, err := s.gw.service.RemovePlayer(playerID); err != nil {
			s.gw.log.Error().Err(err).Str("player_id", playerID).Msg("failed to remove player on disconnect")
		}
	}

	s.gw.hub.Broadcast(roomID, hub.Event{
		Type: EventPlayerLeft,
		Payload: map[string]interface{}{
			"playerId": playerID,
			"room":     s.snapshot(roomID),
		},
	})
}

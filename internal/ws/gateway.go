package ws

import (
	"net/http"
	"time"

	"pokerplan/backend/internal/hub"
	"pokerplan/backend/internal/metrics"
	"pokerplan/backend/internal/room"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Realtime event types, room-scoped unless noted unicast.
const (
	EventJoined        = "joined" // unicast ack
	EventPlayerJoined  = "player_joined"
	EventVotingStarted = "voting_started"
	EventVoteAccepted  = "vote_accepted" // unicast ack
	EventPlayerVoted   = "player_voted"
	EventVotesRevealed = "votes_revealed"
	EventVotingReset   = "voting_reset"
	EventPlayerLeft    = "player_left"
)

const pingInterval = 15 * time.Second

// Package-level WebSocket upgrader
var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

// Gateway upgrades HTTP connections and bridges client actions into the
// room service, fanning results back out through the hub.
type Gateway struct {
	service *room.Service
	hub     *hub.Hub
	secret  string
	log     zerolog.Logger
}

// NewGateway creates a Gateway. secret signs the rejoin tokens handed out
// in join acknowledgements.
func NewGateway(service *room.Service, h *hub.Hub, secret string, log zerolog.Logger) *Gateway {
	return &Gateway{
		service: service,
		hub:     h,
		secret:  secret,
		log:     log.With().Str("component", "ws").Logger(),
	}
}

// Handle is the realtime endpoint. Each connection gets an explicit
// session object carrying its room/player binding; one reader and one
// writer goroutine serve it until the client goes away.
func (g *Gateway) Handle(c *gin.Context) {
	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not upgrade to WebSocket"})
		return
	}
	defer conn.Close()

	metrics.ActiveConnections.Inc()
	defer metrics.ActiveConnections.Dec()

	sess := &session{
		gw:     g,
		conn:   conn,
		client: make(hub.Client, 16),
		connID: uuid.New().String(),
	}

	g.log.Debug().Str("conn_id", sess.connID).Msg("client connected")

	done := make(chan struct{})
	go sess.writeLoop(done)

	sess.readLoop()

	// A dropped connection removes the player right away; rejoining by
	// name (or with the rejoin token) restores the same identity.
	sess.teardown()
	close(done)

	g.log.Debug().Str("conn_id", sess.connID).Msg("client disconnected")
}

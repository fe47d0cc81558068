package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Business metrics
	RoomsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pokerplan_rooms_created_total",
			Help: "Total rooms created",
		},
	)

	PlayersJoined = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pokerplan_players_joined_total",
			Help: "Total players joined across all rooms",
		},
	)

	VotesCast = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pokerplan_votes_cast_total",
			Help: "Total votes cast",
		},
	)

	// Realtime metrics
	EventsBroadcast = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pokerplan_events_broadcast_total",
			Help: "Total realtime events fanned out to rooms",
		},
		[]string{"event"},
	)

	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pokerplan_ws_connections",
			Help: "Currently open websocket connections",
		},
	)
)

package room

import (
	"pokerplan/backend/internal/metrics"
	"pokerplan/backend/internal/models"
	"pokerplan/backend/internal/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultMaxPlayers is used when room creation does not specify a capacity.
const DefaultMaxPlayers = 10

// Capacity bounds for a room.
const (
	MinPlayers    = 2
	MaxPlayersCap = 10
)

// Service implements the room state machine, the voting session logic and
// the membership rules. Every mutating operation takes the per-room lock,
// so guards like "no existing vote" or "count < maxPlayers" cannot race.
type Service struct {
	store *store.Store
	locks *roomLocks
	log   zerolog.Logger
}

// NewService creates a Service on top of the given store.
func NewService(st *store.Store, log zerolog.Logger) *Service {
	return &Service{
		store: st,
		locks: newRoomLocks(),
		log:   log.With().Str("component", "room").Logger(),
	}
}

// CreateRoom validates the input and persists a new room in Waiting status.
// A zero maxPlayers selects the default capacity.
func (s *Service) CreateRoom(name, ownerID string, maxPlayers int) (*models.Room, error) {
	if name == "" {
		return nil, &models.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if ownerID == "" {
		return nil, &models.ValidationError{Field: "ownerId", Reason: "must not be empty"}
	}
	if maxPlayers == 0 {
		maxPlayers = DefaultMaxPlayers
	}
	if maxPlayers < MinPlayers || maxPlayers > MaxPlayersCap {
		return nil, &models.ValidationError{Field: "maxPlayers", Reason: "must be between 2 and 10"}
	}

	room := &models.Room{
		ID:         uuid.New().String(),
		Name:       name,
		Status:     models.StatusWaiting,
		OwnerID:    ownerID,
		MaxPlayers: maxPlayers,
	}
	if err := s.store.CreateRoom(room); err != nil {
		return nil, err
	}

	metrics.RoomsCreated.Inc()
	s.log.Info().Str("room_id", room.ID).Str("owner_id", ownerID).Msg("room created")
	return room, nil
}

// GetRoom loads a room with its players and votes.
func (s *Service) GetRoom(roomID string) (*models.Room, error) {
	return s.store.RoomByID(roomID)
}

// ListRooms returns one page of rooms plus the total count.
func (s *Service) ListRooms(page, limit int) ([]models.Room, int64, error) {
	return s.store.Rooms(page, limit)
}

// StartVoting moves a room from Waiting or Revealed into Voting. Only the
// owner may start a round; restarting mid-Voting is rejected.
func (s *Service) StartVoting(roomID, ownerID string) (*models.Room, error) {
	defer s.locks.lock(roomID)()

	room, err := s.store.RoomByID(roomID)
	if err != nil {
		return nil, err
	}
	if room.OwnerID != ownerID {
		s.log.Warn().Str("room_id", roomID).Str("caller_id", ownerID).Msg("start voting denied: not owner")
		return nil, models.ErrNotOwner
	}
	if room.Status != models.StatusWaiting && room.Status != models.StatusRevealed {
		s.log.Warn().Str("room_id", roomID).Str("status", string(room.Status)).Msg("start voting denied: wrong state")
		return nil, models.ErrWrongRoomState
	}

	room.Status = models.StatusVoting
	if err := s.store.SaveRoom(room); err != nil {
		return nil, err
	}

	s.log.Info().Str("room_id", roomID).Msg("voting started")
	return room, nil
}

// SubmitVote records one player's estimate for the current round.
func (s *Service) SubmitVote(roomID, playerID string, value models.VoteValue) (*models.Vote, error) {
	defer s.locks.lock(roomID)()

	room, err := s.store.RoomByID(roomID)
	if err != nil {
		return nil, err
	}
	if room.Status != models.StatusVoting {
		s.log.Warn().Str("room_id", roomID).Str("player_id", playerID).Msg("vote rejected: not in voting")
		return nil, models.ErrRoomNotVoting
	}

	voted, err := s.store.HasVote(roomID, playerID)
	if err != nil {
		return nil, err
	}
	if voted {
		s.log.Warn().Str("room_id", roomID).Str("player_id", playerID).Msg("vote rejected: already voted")
		return nil, models.ErrAlreadyVoted
	}

	if !value.Valid() {
		return nil, &models.ValidationError{Field: "value", Reason: "must be one of 1, 2, 3, 5, 8, 13"}
	}

	vote := &models.Vote{
		ID:       uuid.New().String(),
		Value:    value,
		RoomID:   roomID,
		PlayerID: playerID,
	}
	if err := s.store.CreateVote(vote); err != nil {
		return nil, err
	}

	metrics.VotesCast.Inc()
	s.log.Info().Str("room_id", roomID).Str("player_id", playerID).Msg("vote recorded")
	return vote, nil
}

// RevealVotes moves a room from Voting to Revealed. Owner only.
func (s *Service) RevealVotes(roomID, ownerID string) (*models.Room, error) {
	defer s.locks.lock(roomID)()

	room, err := s.store.RoomByID(roomID)
	if err != nil {
		return nil, err
	}
	if room.OwnerID != ownerID {
		s.log.Warn().Str("room_id", roomID).Str("caller_id", ownerID).Msg("reveal denied: not owner")
		return nil, models.ErrNotOwner
	}
	if room.Status != models.StatusVoting {
		s.log.Warn().Str("room_id", roomID).Str("status", string(room.Status)).Msg("reveal denied: wrong state")
		return nil, models.ErrRoomNotVoting
	}

	room.Status = models.StatusRevealed
	if err := s.store.SaveRoom(room); err != nil {
		return nil, err
	}

	s.log.Info().Str("room_id", roomID).Msg("votes revealed")
	return room, nil
}

// ResetVoting clears every vote for the room and returns it to Waiting.
// Owner only; allowed from any status.
func (s *Service) ResetVoting(roomID, ownerID string) (*models.Room, error) {
	defer s.locks.lock(roomID)()

	room, err := s.store.RoomByID(roomID)
	if err != nil {
		return nil, err
	}
	if room.OwnerID != ownerID {
		s.log.Warn().Str("room_id", roomID).Str("caller_id", ownerID).Msg("reset denied: not owner")
		return nil, models.ErrNotOwner
	}

	if err := s.store.DeleteVotesByRoom(roomID); err != nil {
		return nil, err
	}

	room.Status = models.StatusWaiting
	room.Votes = nil
	if err := s.store.SaveRoom(room); err != nil {
		return nil, err
	}

	s.log.Info().Str("room_id", roomID).Msg("voting reset")
	return room, nil
}

// RoomVotes returns every vote for the room with the voter's display name
// attached, plus an aggregate summary. It does not gate on room status;
// clients that must not see values before a reveal are the broadcast
// layer's responsibility.
func (s *Service) RoomVotes(roomID string) ([]RevealedVote, *VoteSummary, error) {
	if _, err := s.store.RoomByID(roomID); err != nil {
		return nil, nil, err
	}

	votes, err := s.store.VotesByRoom(roomID)
	if err != nil {
		return nil, nil, err
	}

	revealed := make([]RevealedVote, 0, len(votes))
	for _, v := range votes {
		revealed = append(revealed, RevealedVote{
			PlayerID:   v.PlayerID,
			PlayerName: v.Player.Name,
			Value:      v.Value,
			Label:      v.Value.Label(),
		})
	}
	return revealed, Summarize(votes), nil
}

// JoinRoom admits a player into a room. Joining with a name already present
// in the room reattaches to that player (the reconnect path) instead of
// creating a duplicate; a supplied connID replaces the stored handle.
func (s *Service) JoinRoom(roomID, name, avatar, requestedPlayerID string, connID *string) (*models.Player, error) {
	if name == "" {
		return nil, &models.ValidationError{Field: "name", Reason: "must not be empty"}
	}

	defer s.locks.lock(roomID)()

	room, err := s.store.RoomByID(roomID)
	if err != nil {
		return nil, err
	}

	count, err := s.store.CountPlayers(roomID)
	if err != nil {
		return nil, err
	}
	if count >= int64(room.MaxPlayers) {
		s.log.Warn().Str("room_id", roomID).Str("name", name).Msg("join denied: room full")
		return nil, models.ErrRoomFull
	}

	existing, err := s.store.PlayerByRoomAndName(roomID, name)
	if err == nil {
		if connID != nil {
			existing.ConnectionID = connID
			if err := s.store.SavePlayer(existing); err != nil {
				return nil, err
			}
			s.log.Info().Str("room_id", roomID).Str("player_id", existing.ID).Msg("player reconnected")
		}
		return existing, nil
	}
	if err != models.ErrPlayerNotFound {
		return nil, err
	}

	id := requestedPlayerID
	if id == "" {
		id = uuid.New().String()
	}
	player := &models.Player{
		ID:           id,
		Name:         name,
		Avatar:       avatar,
		RoomID:       roomID,
		ConnectionID: connID,
	}
	if err := s.store.CreatePlayer(player); err != nil {
		return nil, err
	}

	metrics.PlayersJoined.Inc()
	s.log.Info().Str("room_id", roomID).Str("player_id", player.ID).Str("name", name).Msg("player joined")
	return player, nil
}

// UpdateConnection replaces a player's live connection handle.
func (s *Service) UpdateConnection(playerID string, connID string) (*models.Player, error) {
	player, err := s.store.PlayerByID(playerID)
	if err != nil {
		return nil, err
	}

	player.ConnectionID = &connID
	if err := s.store.SavePlayer(player); err != nil {
		return nil, err
	}
	return player, nil
}

// RemovePlayer deletes a player. Removing an unknown player is a no-op;
// double-removal is deliberately not an error. The player's room is
// returned when one was removed so callers can broadcast the new roster.
func (s *Service) RemovePlayer(playerID string) (string, error) {
	player, err := s.store.PlayerByID(playerID)
	if err == models.ErrPlayerNotFound {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	defer s.locks.lock(player.RoomID)()

	if err := s.store.RemovePlayer(player); err != nil {
		return "", err
	}

	s.log.Info().Str("room_id", player.RoomID).Str("player_id", playerID).Msg("player removed")
	return player.RoomID, nil
}

package handler

import (
	"net/http"
	"strconv"

	"pokerplan/backend/internal/models"
	"pokerplan/backend/internal/room"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// CreateRoomInput defines the structure for room creation.
type CreateRoomInput struct {
	Name       string `json:"name" binding:"required" example:"Sprint 23 Planning"`
	OwnerID    string `json:"ownerId" binding:"required" example:"5f0c8b2e-owner"`
	MaxPlayers int    `json:"maxPlayers" binding:"omitempty,min=2,max=10" example:"10"`
}

// JoinRoomInput defines the structure for joining a room.
type JoinRoomInput struct {
	Name     string `json:"name" binding:"required" example:"Alice"`
	Avatar   string `json:"avatar" example:"https://example.com/avatar.png"`
	PlayerID string `json:"playerId" example:"5f0c8b2e-player"`
}

// OwnerInput identifies the caller for owner-only transitions.
type OwnerInput struct {
	OwnerID string `json:"ownerId" binding:"required" example:"5f0c8b2e-owner"`
}

// SubmitVoteInput defines the structure for casting a vote.
type SubmitVoteInput struct {
	PlayerID string `json:"playerId" binding:"required" example:"5f0c8b2e-player"`
	Value    int    `json:"value" binding:"required" example:"5"`
}

// UpdateConnectionInput carries a new live-connection handle for a player.
type UpdateConnectionInput struct {
	ConnectionID string `json:"connectionId" binding:"required" example:"ws-12345"`
}

// PlayerResponse is a player's public view.
type PlayerResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	RoomID string `json:"roomId"`
}

// RoomResponse is a room snapshot with its roster.
type RoomResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Status     models.RoomStatus `json:"status"`
	OwnerID    string            `json:"ownerId"`
	MaxPlayers int               `json:"maxPlayers"`
	Players    []PlayerResponse  `json:"players"`
}

// RoomDetailResponse is a full room fetch: the snapshot plus the votes
// cast in the current round.
type RoomDetailResponse struct {
	RoomResponse
	Votes []models.Vote `json:"votes"`
}

// VotesResponse lists a room's votes with the voters' names and a summary.
type VotesResponse struct {
	Votes   []room.RevealedVote `json:"votes"`
	Summary *room.VoteSummary   `json:"summary,omitempty"`
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

func newPlayerResponse(player models.Player) PlayerResponse {
	return PlayerResponse{
		ID:     player.ID,
		Name:   player.Name,
		Avatar: player.Avatar,
		RoomID: player.RoomID,
	}
}

func newRoomResponse(r models.Room) RoomResponse {
	players := make([]PlayerResponse, 0, len(r.Players))
	for _, p := range r.Players {
		players = append(players, newPlayerResponse(p))
	}
	return RoomResponse{
		ID:         r.ID,
		Name:       r.Name,
		Status:     r.Status,
		OwnerID:    r.OwnerID,
		MaxPlayers: r.MaxPlayers,
		Players:    players,
	}
}

func newRoomDetailResponse(r models.Room) RoomDetailResponse {
	votes := r.Votes
	if votes == nil {
		votes = []models.Vote{}
	}
	return RoomDetailResponse{
		RoomResponse: newRoomResponse(r),
		Votes:        votes,
	}
}

// endregion

// RoomHandler exposes the room, membership and voting operations over REST.
type RoomHandler struct {
	service *room.Service
}

// NewRoomHandler creates a RoomHandler backed by the given service.
func NewRoomHandler(service *room.Service) *RoomHandler {
	return &RoomHandler{service: service}
}

// respondError maps the service error taxonomy onto HTTP status codes:
// not-found 404, validation 400, wrong state 409, not-owner 403.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case models.IsNotFound(err):
		status = http.StatusNotFound
	case models.IsValidation(err):
		status = http.StatusBadRequest
	case models.IsState(err):
		status = http.StatusConflict
	case models.IsAuthorization(err):
		status = http.StatusForbidden
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// CreateRoom godoc
// @Summary      Create a new planning room
// @Description  Creates a room in waiting status owned by the given owner id.
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        input body CreateRoomInput true "Room Info"
// @Success      201  {object}  RoomResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var input CreateRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.CreateRoom(input.Name, input.OwnerID, input.MaxPlayers)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newRoomResponse(*created))
}

// ListRooms godoc
// @Summary      List rooms
// @Description  Gets a paginated list of rooms, newest first.
// @Tags         rooms
// @Produce      json
// @Param        page  query int false "Page number" default(1)
// @Param        limit query int false "Items per page" default(10)
// @Success      200 {object} PaginatedResponse[RoomResponse]
// @Router       /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	rooms, total, err := h.service.ListRooms(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		responses = append(responses, newRoomResponse(r))
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(responses, total, page, limit))
}

// GetRoom godoc
// @Summary      Get a room by ID
// @Description  Gets a room including its players and the votes cast so far.
// @Tags         rooms
// @Produce      json
// @Param        id path string true "Room ID"
// @Success      200 {object} RoomDetailResponse
// @Failure      404 {object} ErrorResponse "Room not found"
// @Router       /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	found, err := h.service.GetRoom(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newRoomDetailResponse(*found))
}

// JoinRoom godoc
// @Summary      Join a room
// @Description  Adds a player to a room, or reattaches to an existing player with the same name.
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        id    path string        true "Room ID"
// @Param        input body JoinRoomInput true "Player Info"
// @Success      201 {object} PlayerResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Room not found"
// @Failure      409 {object} ErrorResponse "Room is full"
// @Router       /rooms/{id}/join [post]
func (h *RoomHandler) JoinRoom(c *gin.Context) {
	var input JoinRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.service.JoinRoom(c.Param("id"), input.Name, input.Avatar, input.PlayerID, nil)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newPlayerResponse(*player))
}

// StartVoting godoc
// @Summary      Start a voting round
// @Description  Moves the room into voting status. Owner only; valid from waiting or revealed.
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        id    path string     true "Room ID"
// @Param        input body OwnerInput true "Caller"
// @Success      200 {object} RoomResponse
// @Failure      403 {object} ErrorResponse "Caller is not the owner"
// @Failure      404 {object} ErrorResponse "Room not found"
// @Failure      409 {object} ErrorResponse "Room is not in a startable state"
// @Router       /rooms/{id}/start [post]
func (h *RoomHandler) StartVoting(c *gin.Context) {
	var input OwnerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.service.StartVoting(c.Param("id"), input.OwnerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newRoomResponse(*updated))
}

// SubmitVote godoc
// @Summary      Submit a vote
// @Description  Records one player's estimate for the current round. One vote per player per round.
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        id    path string          true "Room ID"
// @Param        input body SubmitVoteInput true "Vote"
// @Success      201 {object} models.Vote
// @Failure      400 {object} ErrorResponse "Illegal vote value"
// @Failure      404 {object} ErrorResponse "Room not found"
// @Failure      409 {object} ErrorResponse "Not in voting, or already voted"
// @Router       /rooms/{id}/vote [post]
func (h *RoomHandler) SubmitVote(c *gin.Context) {
	var input SubmitVoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vote, err := h.service.SubmitVote(c.Param("id"), input.PlayerID, models.VoteValue(input.Value))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, vote)
}

// RevealVotes godoc
// @Summary      Reveal all votes
// @Description  Moves the room from voting to revealed. Owner only.
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        id    path string     true "Room ID"
// @Param        input body OwnerInput true "Caller"
// @Success      200 {object} RoomResponse
// @Failure      403 {object} ErrorResponse "Caller is not the owner"
// @Failure      404 {object} ErrorResponse "Room not found"
// @Failure      409 {object} ErrorResponse "Room is not in voting"
// @Router       /rooms/{id}/reveal [post]
func (h *RoomHandler) RevealVotes(c *gin.Context) {
	var input OwnerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.service.RevealVotes(c.Param("id"), input.OwnerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newRoomResponse(*updated))
}

// ResetVoting godoc
// @Summary      Reset the voting round
// @Description  Clears every vote for the room and returns it to waiting. Owner only.
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        id    path string     true "Room ID"
// @Param        input body OwnerInput true "Caller"
// @Success      200 {object} RoomResponse
// @Failure      403 {object} ErrorResponse "Caller is not the owner"
// @Failure      404 {object} ErrorResponse "Room not found"
// @Router       /rooms/{id}/reset [post]
func (h *RoomHandler) ResetVoting(c *gin.Context) {
	var input OwnerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.service.ResetVoting(c.Param("id"), input.OwnerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newRoomResponse(*updated))
}

// GetRoomVotes godoc
// @Summary      Get a room's votes
// @Description  Lists the room's votes with each voter's name and an aggregate summary.
// @Tags         rooms
// @Produce      json
// @Param        id path string true "Room ID"
// @Success      200 {object} VotesResponse
// @Failure      404 {object} ErrorResponse "Room not found"
// @Router       /rooms/{id}/votes [get]
func (h *RoomHandler) GetRoomVotes(c *gin.Context) {
	votes, summary, err := h.service.RoomVotes(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, VotesResponse{Votes: votes, Summary: summary})
}

// UpdateConnection godoc
// @Summary      Update a player's connection handle
// @Description  Replaces the live-connection handle used for realtime delivery.
// @Tags         players
// @Accept       json
// @Produce      json
// @Param        id    path string                true "Player ID"
// @Param        input body UpdateConnectionInput true "Connection"
// @Success      200 {object} PlayerResponse
// @Failure      404 {object} ErrorResponse "Player not found"
// @Router       /players/{id}/connection [put]
func (h *RoomHandler) UpdateConnection(c *gin.Context) {
	var input UpdateConnectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.service.UpdateConnection(c.Param("id"), input.ConnectionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPlayerResponse(*player))
}

// RemovePlayer godoc
// @Summary      Remove a player
// @Description  Deletes a player from its room. Removing an unknown player is a no-op.
// @Tags         players
// @Produce      json
// @Param        id path string true "Player ID"
// @Success      204 "Removed"
// @Router       /players/{id} [delete]
func (h *RoomHandler) RemovePlayer(c *gin.Context) {
	if _, err := h.service.RemovePlayer(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

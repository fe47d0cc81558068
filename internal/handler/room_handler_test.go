package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"pokerplan/backend/internal/database"
	"pokerplan/backend/internal/models"
	"pokerplan/backend/internal/room"
	"pokerplan/backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *room.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	service := room.NewService(store.New(db), zerolog.Nop())
	h := NewRoomHandler(service)

	router := gin.New()
	api := router.Group("/api/v1")
	rooms := api.Group("/rooms")
	{
		rooms.POST("", h.CreateRoom)
		rooms.GET("", h.ListRooms)
		rooms.GET("/:id", h.GetRoom)
		rooms.POST("/:id/join", h.JoinRoom)
		rooms.POST("/:id/start", h.StartVoting)
		rooms.POST("/:id/vote", h.SubmitVote)
		rooms.POST("/:id/reveal", h.RevealVotes)
		rooms.POST("/:id/reset", h.ResetVoting)
		rooms.GET("/:id/votes", h.GetRoomVotes)
	}
	players := api.Group("/players")
	{
		players.PUT("/:id/connection", h.UpdateConnection)
		players.DELETE("/:id", h.RemovePlayer)
	}

	return router, service
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateRoomEndpoint(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
	}{
		{
			name:           "valid room",
			body:           CreateRoomInput{Name: "Sprint 23", OwnerID: "owner-1", MaxPlayers: 5},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "default capacity",
			body:           CreateRoomInput{Name: "Sprint 23", OwnerID: "owner-1"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing name",
			body:           map[string]interface{}{"ownerId": "owner-1"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "capacity out of range",
			body:           map[string]interface{}{"name": "Sprint 23", "ownerId": "owner-1", "maxPlayers": 50},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := setupTestRouter(t)
			w := doJSON(t, router, http.MethodPost, "/api/v1/rooms", tt.body)
			if w.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.expectedStatus, w.Body.String())
			}
			if tt.expectedStatus != http.StatusCreated {
				return
			}

			var resp RoomResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if resp.Status != models.StatusWaiting {
				t.Errorf("room status = %q, want waiting", resp.Status)
			}
			if resp.ID == "" {
				t.Error("expected a room id")
			}
		})
	}
}

func TestRoomLifecycleEndpoints(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/rooms", CreateRoomInput{Name: "Sprint 23", OwnerID: "owner-1", MaxPlayers: 2})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}
	var created RoomResponse
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("Failed to decode room: %v", err)
	}
	base := "/api/v1/rooms/" + created.ID

	// Join two players, then hit capacity.
	w = doJSON(t, router, http.MethodPost, base+"/join", JoinRoomInput{Name: "Alice", PlayerID: "owner-1"})
	if w.Code != http.StatusCreated {
		t.Fatalf("Alice join status = %d, body %s", w.Code, w.Body.String())
	}
	var alice PlayerResponse
	if err := json.Unmarshal(w.Body.Bytes(), &alice); err != nil {
		t.Fatalf("Failed to decode player: %v", err)
	}

	w = doJSON(t, router, http.MethodPost, base+"/join", JoinRoomInput{Name: "Bob"})
	if w.Code != http.StatusCreated {
		t.Fatalf("Bob join status = %d", w.Code)
	}
	var bob PlayerResponse
	if err := json.Unmarshal(w.Body.Bytes(), &bob); err != nil {
		t.Fatalf("Failed to decode player: %v", err)
	}

	if w = doJSON(t, router, http.MethodPost, base+"/join", JoinRoomInput{Name: "Carol"}); w.Code != http.StatusConflict {
		t.Errorf("Carol join status = %d, want 409", w.Code)
	}

	// Non-owner cannot start.
	if w = doJSON(t, router, http.MethodPost, base+"/start", OwnerInput{OwnerID: "intruder"}); w.Code != http.StatusForbidden {
		t.Errorf("intruder start status = %d, want 403", w.Code)
	}

	// Vote before start is a state conflict.
	if w = doJSON(t, router, http.MethodPost, base+"/vote", SubmitVoteInput{PlayerID: alice.ID, Value: 5}); w.Code != http.StatusConflict {
		t.Errorf("early vote status = %d, want 409", w.Code)
	}

	if w = doJSON(t, router, http.MethodPost, base+"/start", OwnerInput{OwnerID: "owner-1"}); w.Code != http.StatusOK {
		t.Fatalf("start status = %d, body %s", w.Code, w.Body.String())
	}

	// Restarting mid-voting is rejected.
	if w = doJSON(t, router, http.MethodPost, base+"/start", OwnerInput{OwnerID: "owner-1"}); w.Code != http.StatusConflict {
		t.Errorf("restart status = %d, want 409", w.Code)
	}

	// Illegal vote value.
	if w = doJSON(t, router, http.MethodPost, base+"/vote", SubmitVoteInput{PlayerID: alice.ID, Value: 4}); w.Code != http.StatusBadRequest {
		t.Errorf("bad value status = %d, want 400", w.Code)
	}

	if w = doJSON(t, router, http.MethodPost, base+"/vote", SubmitVoteInput{PlayerID: alice.ID, Value: 5}); w.Code != http.StatusCreated {
		t.Fatalf("Alice vote status = %d, body %s", w.Code, w.Body.String())
	}
	if w = doJSON(t, router, http.MethodPost, base+"/vote", SubmitVoteInput{PlayerID: bob.ID, Value: 8}); w.Code != http.StatusCreated {
		t.Fatalf("Bob vote status = %d", w.Code)
	}
	if w = doJSON(t, router, http.MethodPost, base+"/vote", SubmitVoteInput{PlayerID: bob.ID, Value: 8}); w.Code != http.StatusConflict {
		t.Errorf("revote status = %d, want 409", w.Code)
	}

	if w = doJSON(t, router, http.MethodPost, base+"/reveal", OwnerInput{OwnerID: "owner-1"}); w.Code != http.StatusOK {
		t.Fatalf("reveal status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, base+"/votes", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("votes status = %d", w.Code)
	}
	var votes VotesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &votes); err != nil {
		t.Fatalf("Failed to decode votes: %v", err)
	}
	if len(votes.Votes) != 2 {
		t.Errorf("votes = %d, want 2", len(votes.Votes))
	}
	if votes.Summary == nil || votes.Summary.Average != 6.5 {
		t.Errorf("summary = %+v, want average 6.5", votes.Summary)
	}

	if w = doJSON(t, router, http.MethodPost, base+"/reset", OwnerInput{OwnerID: "owner-1"}); w.Code != http.StatusOK {
		t.Fatalf("reset status = %d", w.Code)
	}
	var afterReset RoomResponse
	w = doJSON(t, router, http.MethodGet, base, nil)
	if err := json.Unmarshal(w.Body.Bytes(), &afterReset); err != nil {
		t.Fatalf("Failed to decode room: %v", err)
	}
	if afterReset.Status != models.StatusWaiting {
		t.Errorf("status after reset = %q, want waiting", afterReset.Status)
	}
}

func TestGetRoomNotFoundEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)
	if w := doJSON(t, router, http.MethodGet, "/api/v1/rooms/no-such-room", nil); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestGetRoomIncludesVotes(t *testing.T) {
	router, service := setupTestRouter(t)

	created, err := service.CreateRoom("Sprint 23", "owner-1", 5)
	if err != nil {
		t.Fatalf("CreateRoom failed: %v", err)
	}
	alice, err := service.JoinRoom(created.ID, "Alice", "", "owner-1", nil)
	if err != nil {
		t.Fatalf("JoinRoom failed: %v", err)
	}
	base := "/api/v1/rooms/" + created.ID

	// Before any round the votes array is present and empty.
	w := doJSON(t, router, http.MethodGet, base, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	var empty RoomDetailResponse
	if err := json.Unmarshal(w.Body.Bytes(), &empty); err != nil {
		t.Fatalf("Failed to decode room: %v", err)
	}
	if empty.Votes == nil || len(empty.Votes) != 0 {
		t.Errorf("votes before round = %v, want empty array", empty.Votes)
	}

	if _, err := service.StartVoting(created.ID, "owner-1"); err != nil {
		t.Fatalf("StartVoting failed: %v", err)
	}
	if _, err := service.SubmitVote(created.ID, alice.ID, models.VoteFive); err != nil {
		t.Fatalf("SubmitVote failed: %v", err)
	}

	w = doJSON(t, router, http.MethodGet, base, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	var detail RoomDetailResponse
	if err := json.Unmarshal(w.Body.Bytes(), &detail); err != nil {
		t.Fatalf("Failed to decode room: %v", err)
	}
	if len(detail.Votes) != 1 {
		t.Fatalf("votes = %d, want 1", len(detail.Votes))
	}
	if detail.Votes[0].PlayerID != alice.ID || detail.Votes[0].Value != models.VoteFive {
		t.Errorf("vote = %+v, want Alice's 5", detail.Votes[0])
	}
	if len(detail.Players) != 1 {
		t.Errorf("players = %d, want 1", len(detail.Players))
	}
}

func TestPlayerEndpoints(t *testing.T) {
	router, service := setupTestRouter(t)

	created, err := service.CreateRoom("Sprint 23", "owner-1", 5)
	if err != nil {
		t.Fatalf("CreateRoom failed: %v", err)
	}
	player, err := service.JoinRoom(created.ID, "Alice", "", "", nil)
	if err != nil {
		t.Fatalf("JoinRoom failed: %v", err)
	}

	w := doJSON(t, router, http.MethodPut, "/api/v1/players/"+player.ID+"/connection", UpdateConnectionInput{ConnectionID: "conn-1"})
	if w.Code != http.StatusOK {
		t.Errorf("update connection status = %d, want 200", w.Code)
	}

	if w = doJSON(t, router, http.MethodPut, "/api/v1/players/no-such-player/connection", UpdateConnectionInput{ConnectionID: "conn-1"}); w.Code != http.StatusNotFound {
		t.Errorf("unknown player status = %d, want 404", w.Code)
	}

	if w = doJSON(t, router, http.MethodDelete, "/api/v1/players/"+player.ID, nil); w.Code != http.StatusNoContent {
		t.Errorf("remove status = %d, want 204", w.Code)
	}
	// Removal is lenient: deleting again still succeeds.
	if w = doJSON(t, router, http.MethodDelete, "/api/v1/players/"+player.ID, nil); w.Code != http.StatusNoContent {
		t.Errorf("second remove status = %d, want 204", w.Code)
	}
}

func TestListRoomsEndpoint(t *testing.T) {
	router, service := setupTestRouter(t)

	for i := 0; i < 3; i++ {
		if _, err := service.CreateRoom(fmt.Sprintf("Sprint %d", i), "owner-1", 5); err != nil {
			t.Fatalf("CreateRoom failed: %v", err)
		}
	}

	w := doJSON(t, router, http.MethodGet, "/api/v1/rooms?page=1&limit=2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}

	var resp PaginatedResponse[RoomResponse]
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode list: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Errorf("page size = %d, want 2", len(resp.Data))
	}
	if resp.Meta.TotalItems != 3 {
		t.Errorf("total = %d, want 3", resp.Meta.TotalItems)
	}
	if resp.Meta.TotalPages != 2 {
		t.Errorf("pages = %d, want 2", resp.Meta.TotalPages)
	}
}

package store

import (
	"errors"
	"time"

	"pokerplan/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the persistence layer for rooms, players and votes. Each method
// is a single atomic database operation; callers compose them and handle
// their own serialization (see the room service's per-room locks).
type Store struct {
	db *gorm.DB
}

// New creates a Store on top of an open gorm connection.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// region --- Rooms ---

func (s *Store) CreateRoom(room *models.Room) error {
	return s.db.Create(room).Error
}

// RoomByID loads a room with its players and votes.
func (s *Store) RoomByID(id string) (*models.Room, error) {
	var room models.Room
	err := s.db.Preload("Players").Preload("Votes").First(&room, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// SaveRoom persists room field changes. Associations are not written, so
// a status transition can never resurrect preloaded players or votes.
func (s *Store) SaveRoom(room *models.Room) error {
	return s.db.Omit(clause.Associations).Save(room).Error
}

// Rooms returns one page of rooms ordered by creation time, newest first,
// along with the total room count.
func (s *Store) Rooms(page, limit int) ([]models.Room, int64, error) {
	var total int64
	if err := s.db.Model(&models.Room{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rooms []models.Room
	offset := (page - 1) * limit
	err := s.db.Preload("Players").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&rooms).Error
	if err != nil {
		return nil, 0, err
	}
	return rooms, total, nil
}

// StaleRoomIDs returns ids of rooms not touched since the cutoff.
func (s *Store) StaleRoomIDs(cutoff time.Time) ([]string, error) {
	var ids []string
	err := s.db.Model(&models.Room{}).
		Where("updated_at < ?", cutoff).
		Pluck("id", &ids).Error
	return ids, err
}

// DeleteRoomCascade removes a room together with its players and votes.
func (s *Store) DeleteRoomCascade(roomID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", roomID).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("room_id = ?", roomID).Delete(&models.Player{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Room{}, "id = ?", roomID).Error
	})
}

// endregion

// region --- Players ---

func (s *Store) CreatePlayer(player *models.Player) error {
	return s.db.Create(player).Error
}

func (s *Store) PlayerByID(id string) (*models.Player, error) {
	var player models.Player
	err := s.db.First(&player, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrPlayerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// PlayerByRoomAndName looks up a player by its display name within a room.
func (s *Store) PlayerByRoomAndName(roomID, name string) (*models.Player, error) {
	var player models.Player
	err := s.db.Where("room_id = ? AND name = ?", roomID, name).First(&player).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrPlayerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Store) PlayersByRoom(roomID string) ([]models.Player, error) {
	var players []models.Player
	err := s.db.Where("room_id = ?", roomID).Order("created_at").Find(&players).Error
	return players, err
}

func (s *Store) CountPlayers(roomID string) (int64, error) {
	var count int64
	err := s.db.Model(&models.Player{}).Where("room_id = ?", roomID).Count(&count).Error
	return count, err
}

func (s *Store) SavePlayer(player *models.Player) error {
	return s.db.Save(player).Error
}

func (s *Store) RemovePlayer(player *models.Player) error {
	return s.db.Delete(player).Error
}

// endregion

// region --- Votes ---

func (s *Store) CreateVote(vote *models.Vote) error {
	return s.db.Create(vote).Error
}

// HasVote reports whether a player has already voted in the current round.
func (s *Store) HasVote(roomID, playerID string) (bool, error) {
	var count int64
	err := s.db.Model(&models.Vote{}).
		Where("room_id = ? AND player_id = ?", roomID, playerID).
		Count(&count).Error
	return count > 0, err
}

// VotesByRoom loads all votes for a room with each vote's player attached.
func (s *Store) VotesByRoom(roomID string) ([]models.Vote, error) {
	var votes []models.Vote
	err := s.db.Preload("Player").
		Where("room_id = ?", roomID).
		Order("created_at").
		Find(&votes).Error
	return votes, err
}

func (s *Store) DeleteVotesByRoom(roomID string) error {
	return s.db.Where("room_id = ?", roomID).Delete(&models.Vote{}).Error
}

// endregion

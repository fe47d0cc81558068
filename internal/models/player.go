package models

import "time"

// Player represents a participant in a room. A player's display name is
// unique within its room; joining with an existing name reattaches to the
// same player instead of minting a new one.
type Player struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"size:100;not null;index:idx_players_room_name" json:"name"`
	Avatar       string    `gorm:"size:255" json:"avatar,omitempty"`
	RoomID       string    `gorm:"size:36;not null;index:idx_players_room_name" json:"roomId"`
	ConnectionID *string   `gorm:"size:100" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

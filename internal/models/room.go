package models

import "time"

// RoomStatus is the lifecycle state of a room.
type RoomStatus string

const (
	StatusWaiting  RoomStatus = "waiting"
	StatusVoting   RoomStatus = "voting"
	StatusRevealed RoomStatus = "revealed"
)

// Room represents a planning poker session.
type Room struct {
	ID         string     `gorm:"primaryKey;size:36" json:"id"`
	Name       string     `gorm:"size:100;not null" json:"name"`
	Status     RoomStatus `gorm:"size:20;not null;default:'waiting'" json:"status"`
	OwnerID    string     `gorm:"size:36;not null" json:"ownerId"`
	MaxPlayers int        `gorm:"not null;default:10" json:"maxPlayers"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`

	Players []Player `gorm:"foreignKey:RoomID" json:"players,omitempty"`
	Votes   []Vote   `gorm:"foreignKey:RoomID" json:"votes,omitempty"`
}

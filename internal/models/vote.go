package models

import "time"

// VoteValue is an estimate on the fixed planning poker scale.
type VoteValue int

const (
	VoteOne      VoteValue = 1
	VoteTwo      VoteValue = 2
	VoteThree    VoteValue = 3
	VoteFive     VoteValue = 5
	VoteEight    VoteValue = 8
	VoteThirteen VoteValue = 13
)

var voteLabels = map[VoteValue]string{
	VoteOne:      "4h",
	VoteTwo:      "1d",
	VoteThree:    "1d 4h",
	VoteFive:     "2d 4h",
	VoteEight:    "3d 4h",
	VoteThirteen: "1 week",
}

// VoteValues returns the legal estimate values in ascending order.
func VoteValues() []VoteValue {
	return []VoteValue{VoteOne, VoteTwo, VoteThree, VoteFive, VoteEight, VoteThirteen}
}

// Valid reports whether v is a member of the estimate scale.
func (v VoteValue) Valid() bool {
	_, ok := voteLabels[v]
	return ok
}

// Label returns the human-readable duration for v ("4h", "1d", ...).
// Unknown values return an empty string.
func (v VoteValue) Label() string {
	return voteLabels[v]
}

// Vote is one player's estimate for the current voting round.
type Vote struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Value     VoteValue `gorm:"not null" json:"value"`
	RoomID    string    `gorm:"size:36;not null;index" json:"roomId"`
	PlayerID  string    `gorm:"size:36;not null;index" json:"playerId"`
	CreatedAt time.Time `json:"createdAt"`

	Player Player `gorm:"foreignKey:PlayerID" json:"-"`
}

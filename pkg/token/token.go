package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// PlayerClaims identify a player inside a room so that a reconnecting
// client can reattach to its session without re-joining by name.
type PlayerClaims struct {
	PlayerID string
	RoomID   string
}

// Generate creates a signed rejoin token for a player.
func Generate(secret, playerID, roomID string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  playerID,
		"room": roomID,
		"exp":  time.Now().Add(time.Hour * 24).Unix(), // Token expires in 1 day
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}

// Parse validates a rejoin token and extracts its player claims.
func Parse(secret, tokenString string) (*PlayerClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	playerID, _ := claims["sub"].(string)
	roomID, _ := claims["room"].(string)
	if playerID == "" || roomID == "" {
		return nil, errors.New("token missing player claims")
	}

	return &PlayerClaims{PlayerID: playerID, RoomID: roomID}, nil
}

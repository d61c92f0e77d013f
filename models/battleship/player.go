package battleship

import (
	"github.com/google/uuid"
)

const (
	RoleHost = "host"
	RoleJoin = "join"
)

type Player struct {
	Uuid   string
	IsHost bool
	board  *Board
}

func NewPlayer(isHost bool) *Player {
	return &Player{
		Uuid:   uuid.NewString()[:10],
		IsHost: isHost,
		board:  NewBoard(),
	}
}

// Role is the public name of the player slot, safe to put in event
// payloads. Player uuids never leave the request/response pair they
// were issued in.
func (p *Player) Role() string {
	if p.IsHost {
		return RoleHost
	}
	return RoleJoin
}

func (p *Player) Board() *Board {
	return p.board
}

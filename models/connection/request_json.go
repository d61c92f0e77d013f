package connection

import (
	mb "github.com/mkarimi21/seabattle-backend/models/battleship"
)

type ReqPosition struct {
	PlayerUuid string             `json:"player_id"`
	Position   [][]mb.Coordinates `json:"position"`
}

type ReqShot struct {
	PlayerUuid string `json:"player_id"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
}

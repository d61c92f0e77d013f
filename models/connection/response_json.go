package connection

import (
	mb "github.com/mkarimi21/seabattle-backend/models/battleship"
)

type RespNewGame struct {
	GameUuid   string `json:"game_id"`
	PlayerUuid string `json:"player_id"`
}

type RespJoinGame struct {
	GameUuid   string `json:"game_id"`
	PlayerUuid string `json:"player_id"`
}

type RespShot struct {
	Shot           mb.Coordinates `json:"shot"`
	Hit            bool           `json:"hit"`
	Sunk           bool           `json:"sunk"`
	Length         int            `json:"length"`
	FleetDestroyed bool           `json:"fleet_destroyed"`
}

type RespErr struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewRespErr(code, message string) RespErr {
	return RespErr{Code: code, Message: message}
}

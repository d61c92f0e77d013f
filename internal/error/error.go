package error

import (
	"errors"
	"fmt"
)

// Kind groups game errors by how the caller should react.
// Validation errors are recoverable by resubmitting corrected data,
// protocol errors point to stale client state or a client logic bug,
// not-found errors mean the game or player token is unknown.
type Kind uint8

const (
	KindValidation Kind = iota
	KindProtocol
	KindNotFound
)

// Wire codes sent back to clients in error responses.
const (
	CodeOutOfBounds             = "OutOfBounds"
	CodeInvalidCoordinates      = "InvalidCoordinates"
	CodeInvalidFleetComposition = "InvalidFleetComposition"
	CodeMalformedShip           = "MalformedShip"
	CodeShipsOverlap            = "ShipsOverlap"
	CodeShipsTouching           = "ShipsTouching"
	CodeAlreadyPlaced           = "AlreadyPlaced"
	CodeDuplicateShot           = "DuplicateShot"
	CodeNotYourTurn             = "NotYourTurn"
	CodeNotYourPhase            = "NotYourPhase"
	CodeGameFull                = "GameFull"
	CodeGameOver                = "GameOver"
	CodeNotFound                = "NotFound"
)

type GameError struct {
	kind Kind
	code string
	desc string
}

func (e *GameError) Error() string {
	return fmt.Sprintf("%s: %s", e.code, e.desc)
}

func (e *GameError) Kind() Kind {
	return e.kind
}

func (e *GameError) Code() string {
	return e.code
}

func newGameError(kind Kind, code, format string, args ...any) *GameError {
	return &GameError{
		kind: kind,
		code: code,
		desc: fmt.Sprintf(format, args...),
	}
}

// AsGameError unwraps err into a *GameError if it carries one.
func AsGameError(err error) (*GameError, bool) {
	var gameErr *GameError
	ok := errors.As(err, &gameErr)
	return gameErr, ok
}

func ErrOutOfBounds(x, y int) *GameError {
	return newGameError(KindValidation, CodeOutOfBounds, "coordinate is out of the game grid bound\tx: %d\ty: %d", x, y)
}

func ErrInvalidCoordinates(desc string) *GameError {
	return newGameError(KindValidation, CodeInvalidCoordinates, "coordinate must be a 2-element array of integers: %s", desc)
}

func ErrInvalidFleetComposition(numShips int) *GameError {
	return newGameError(KindValidation, CodeInvalidFleetComposition, "fleet must contain 5 ships of lengths 5, 4, 3, 3 and 2, got %d ships", numShips)
}

func ErrMalformedShip(shipIdx int) *GameError {
	return newGameError(KindValidation, CodeMalformedShip, "ship coordinates must be contiguous in one axis with no gaps, ship no. %d", shipIdx)
}

func ErrShipsOverlap(x, y int) *GameError {
	return newGameError(KindValidation, CodeShipsOverlap, "two ships share the same position\tx: %d\ty: %d", x, y)
}

func ErrShipsTouching(x, y int) *GameError {
	return newGameError(KindValidation, CodeShipsTouching, "ships must not be adjacent to each other, conflict around\tx: %d\ty: %d", x, y)
}

func ErrAlreadyPlaced() *GameError {
	return newGameError(KindProtocol, CodeAlreadyPlaced, "the fleet of this board is already placed and immutable")
}

func ErrDuplicateShot(x, y int) *GameError {
	return newGameError(KindProtocol, CodeDuplicateShot, "this position was already fired at in previous rounds\tx: %d\ty: %d", x, y)
}

func ErrNotYourTurn(playerUuid string) *GameError {
	return newGameError(KindProtocol, CodeNotYourTurn, "it is not the turn of this player, uuid: %s", playerUuid)
}

func ErrNotYourPhase(phase string) *GameError {
	return newGameError(KindProtocol, CodeNotYourPhase, "operation is not allowed in the current game phase: %s", phase)
}

func ErrGameFull(gameUuid string) *GameError {
	return newGameError(KindProtocol, CodeGameFull, "game already has two players, uuid: %s", gameUuid)
}

func ErrGameOver(gameUuid string) *GameError {
	return newGameError(KindProtocol, CodeGameOver, "game is finished, uuid: %s", gameUuid)
}

func ErrGameNotExists(gameUuid string) *GameError {
	return newGameError(KindNotFound, CodeNotFound, "game with this uuid does not exist, uuid: %s", gameUuid)
}

func ErrPlayerNotExist(playerUuid string) *GameError {
	return newGameError(KindNotFound, CodeNotFound, "player with this uuid does not exist, uuid: %s", playerUuid)
}

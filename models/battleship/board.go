package battleship

import (
	cerr "github.com/mkarimi21/seabattle-backend/internal/error"
)

const (
	ShotResultMiss uint8 = iota
	ShotResultHit
	ShotResultSunk
)

// ShotOutcome is the resolution of one shot against a board.
type ShotOutcome struct {
	Coordinates    Coordinates
	Hit            bool
	Sunk           bool
	ShipLength     int
	FleetDestroyed bool
}

// Board is one player's private grid state: the placed fleet plus the
// opponent's shot history against it.
type Board struct {
	fleet Fleet
	shots map[Coordinates]uint8
}

func NewBoard() *Board {
	return &Board{
		shots: make(map[Coordinates]uint8, totalFleetCells()),
	}
}

func (b *Board) IsReady() bool {
	return b.fleet != nil
}

// PlaceFleet validates and stores the fleet. A board accepts exactly one
// placement, the fleet is immutable once stored.
func (b *Board) PlaceFleet(fleet Fleet) error {
	if b.fleet != nil {
		return cerr.ErrAlreadyPlaced()
	}
	if err := ValidateFleet(fleet); err != nil {
		return err
	}
	b.fleet = fleet
	return nil
}

// ReceiveShot resolves a shot against this board and records it. Firing
// at an already fired position is rejected without any state change.
func (b *Board) ReceiveShot(c Coordinates) (ShotOutcome, error) {
	if _, prs := b.shots[c]; prs {
		return ShotOutcome{}, cerr.ErrDuplicateShot(c.X, c.Y)
	}

	outcome := ShotOutcome{Coordinates: c}
	for _, ship := range b.fleet {
		if ship.Occupies(c) {
			ship.RegisterHit(c)
			outcome.Hit = true
			outcome.ShipLength = ship.Length()
			outcome.Sunk = ship.IsSunk()
			break
		}
	}

	switch {
	case outcome.Sunk:
		b.shots[c] = ShotResultSunk
	case outcome.Hit:
		b.shots[c] = ShotResultHit
	default:
		b.shots[c] = ShotResultMiss
	}

	if outcome.Sunk {
		outcome.FleetDestroyed = b.AllSunk()
	}
	return outcome, nil
}

// AllSunk reports whether every part of every ship has been hit.
func (b *Board) AllSunk() bool {
	if b.fleet == nil {
		return false
	}
	for _, ship := range b.fleet {
		if !ship.IsSunk() {
			return false
		}
	}
	return true
}

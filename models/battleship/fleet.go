package battleship

import (
	"sort"

	cerr "github.com/mkarimi21/seabattle-backend/internal/error"
)

const FleetShipCount = 5

// Classic fleet composition, sorted ascending.
var fleetShipLengths = [FleetShipCount]int{2, 3, 3, 4, 5}

// Fleet is the full set of ships a player submits in one placement.
type Fleet []*Ship

// NewFleet wraps the raw coordinate lists of a placement request.
func NewFleet(position [][]Coordinates) Fleet {
	fleet := make(Fleet, 0, len(position))
	for _, shipCoords := range position {
		fleet = append(fleet, NewShip(shipCoords))
	}
	return fleet
}

// ValidateFleet accepts or rejects a placement as a whole. The checks run
// in a fixed order and the first failing one determines the reported
// reason:
//
//  1. every coordinate within the grid bounds
//  2. exactly 5 ships with lengths 5, 4, 3, 3, 2
//  3. each ship collinear and gapless
//  4. no position shared between ships
//  5. no two ships adjacent, diagonals included
func ValidateFleet(fleet Fleet) error {
	for _, ship := range fleet {
		for _, c := range ship.Coordinates() {
			if !c.InBounds() {
				return cerr.ErrOutOfBounds(c.X, c.Y)
			}
		}
	}

	if len(fleet) != FleetShipCount {
		return cerr.ErrInvalidFleetComposition(len(fleet))
	}
	lengths := make([]int, 0, FleetShipCount)
	for _, ship := range fleet {
		lengths = append(lengths, ship.Length())
	}
	sort.Ints(lengths)
	for i, l := range lengths {
		if l != fleetShipLengths[i] {
			return cerr.ErrInvalidFleetComposition(len(fleet))
		}
	}

	for i, ship := range fleet {
		if !isShipWellFormed(ship) {
			return cerr.ErrMalformedShip(i + 1)
		}
	}

	occupied := make(map[Coordinates]int, totalFleetCells())
	for shipIdx, ship := range fleet {
		for _, c := range ship.Coordinates() {
			if _, prs := occupied[c]; prs {
				return cerr.ErrShipsOverlap(c.X, c.Y)
			}
			occupied[c] = shipIdx
		}
	}

	for c, shipIdx := range occupied {
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				if dx == 0 && dy == 0 {
					continue
				}
				neighbor := NewCoordinates(c.X+dx, c.Y+dy)
				if otherIdx, prs := occupied[neighbor]; prs && otherIdx != shipIdx {
					return cerr.ErrShipsTouching(c.X, c.Y)
				}
			}
		}
	}

	return nil
}

// A well formed ship is collinear in one axis and has no internal gap.
// Duplicate parts within one ship also fail here, the sorted walk sees
// a step of zero instead of one.
func isShipWellFormed(ship *Ship) bool {
	coords := ship.Coordinates()

	sameX, sameY := true, true
	for _, c := range coords[1:] {
		if c.X != coords[0].X {
			sameX = false
		}
		if c.Y != coords[0].Y {
			sameY = false
		}
	}
	if !sameX && !sameY {
		return false
	}

	sorted := make([]Coordinates, len(coords))
	copy(sorted, coords)
	sort.Slice(sorted, func(i, j int) bool {
		if sameX {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	for i := 1; i < len(sorted); i++ {
		prev, curr := sorted[i-1], sorted[i]
		if sameX {
			if curr.Y != prev.Y+1 {
				return false
			}
		} else if curr.X != prev.X+1 {
			return false
		}
	}
	return true
}

func totalFleetCells() int {
	total := 0
	for _, l := range fleetShipLengths {
		total += l
	}
	return total
}

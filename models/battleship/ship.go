package battleship

type Ship struct {
	coords []Coordinates
	hits   map[Coordinates]bool
}

func NewShip(coords []Coordinates) *Ship {
	return &Ship{
		coords: coords,
		hits:   make(map[Coordinates]bool, len(coords)),
	}
}

func (sh *Ship) Length() int {
	return len(sh.coords)
}

func (sh *Ship) Coordinates() []Coordinates {
	return sh.coords
}

func (sh *Ship) Occupies(c Coordinates) bool {
	for _, part := range sh.coords {
		if part == c {
			return true
		}
	}
	return false
}

// RegisterHit marks c as hit. Re-hitting the same part is a no-op,
// the board rejects duplicate shots before they reach the ship.
func (sh *Ship) RegisterHit(c Coordinates) {
	if sh.Occupies(c) {
		sh.hits[c] = true
	}
}

func (sh *Ship) IsSunk() bool {
	return len(sh.hits) == len(sh.coords)
}

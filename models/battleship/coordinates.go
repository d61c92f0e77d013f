package battleship

import (
	"bytes"
	"encoding/json"
	"strconv"

	cerr "github.com/mkarimi21/seabattle-backend/internal/error"
)

const (
	GridLowerBound = 1
	GridUpperBound = 10
)

type Coordinates struct {
	X int
	Y int
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

func (c Coordinates) InBounds() bool {
	return c.X >= GridLowerBound && c.X <= GridUpperBound && c.Y >= GridLowerBound && c.Y <= GridUpperBound
}

// On the wire a coordinate is a 2-element array of integers, e.g. [1,6].
// Anything else (strings, floats, wrong arity) is rejected here, before
// any geometry check ever sees the value.
func (c *Coordinates) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var pair []json.Number
	if err := dec.Decode(&pair); err != nil {
		return cerr.ErrInvalidCoordinates(string(data))
	}
	if len(pair) != 2 {
		return cerr.ErrInvalidCoordinates(string(data))
	}

	x, err := strconv.Atoi(pair[0].String())
	if err != nil {
		return cerr.ErrInvalidCoordinates(string(data))
	}
	y, err := strconv.Atoi(pair[1].String())
	if err != nil {
		return cerr.ErrInvalidCoordinates(string(data))
	}

	c.X = x
	c.Y = y
	return nil
}

func (c Coordinates) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{c.X, c.Y})
}

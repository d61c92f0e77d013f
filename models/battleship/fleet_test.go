package battleship_test

import (
	"testing"

	cerr "github.com/mkarimi21/seabattle-backend/internal/error"
	mb "github.com/mkarimi21/seabattle-backend/models/battleship"
)

// The classic layout used by the game clients: ships on columns
// 1, 3, 5, 7 and 9, rows 2 and down.
var validPosition = [][][2]int{
	{{1, 2}, {1, 3}, {1, 4}, {1, 5}, {1, 6}},
	{{3, 2}, {3, 3}, {3, 4}, {3, 5}},
	{{5, 2}, {5, 3}, {5, 4}},
	{{7, 2}, {7, 3}, {7, 4}},
	{{9, 2}, {9, 3}},
}

func buildFleet(position [][][2]int) mb.Fleet {
	coords := make([][]mb.Coordinates, 0, len(position))
	for _, ship := range position {
		shipCoords := make([]mb.Coordinates, 0, len(ship))
		for _, part := range ship {
			shipCoords = append(shipCoords, mb.NewCoordinates(part[0], part[1]))
		}
		coords = append(coords, shipCoords)
	}
	return mb.NewFleet(coords)
}

func TestValidateFleet(t *testing.T) {
	tests := []struct {
		name         string
		position     [][][2]int
		expectedCode string
	}{
		{
			name:     "valid classic layout",
			position: validPosition,
		},
		{
			name: "ships touch each other",
			position: [][][2]int{
				{{1, 2}, {1, 3}, {1, 4}, {1, 5}, {1, 6}},
				{{2, 2}, {2, 3}, {2, 4}, {2, 5}},
				{{4, 2}, {4, 3}, {4, 4}},
				{{6, 2}, {6, 3}, {6, 4}},
				{{8, 2}, {8, 3}},
			},
			expectedCode: cerr.CodeShipsTouching,
		},
		{
			name: "not enough ships",
			position: [][][2]int{
				{{1, 2}, {1, 3}, {1, 4}, {1, 5}, {1, 6}},
				{{3, 2}, {3, 3}, {3, 4}, {3, 5}},
				{{5, 2}, {5, 3}, {5, 4}},
				{{7, 2}, {7, 3}, {7, 4}},
			},
			expectedCode: cerr.CodeInvalidFleetComposition,
		},
		{
			name: "wrong ship length multiset",
			position: [][][2]int{
				{{1, 2}, {1, 3}, {1, 4}, {1, 5}, {1, 6}},
				{{3, 2}, {3, 3}, {3, 4}, {3, 5}},
				{{5, 2}, {5, 3}, {5, 4}},
				{{7, 2}, {7, 3}},
				{{9, 2}, {9, 3}},
			},
			expectedCode: cerr.CodeInvalidFleetComposition,
		},
		{
			name: "ship outside the grid",
			position: [][][2]int{
				{{1, 2}, {1, 3}, {1, 4}, {1, 5}, {1, 6}},
				{{3, 2}, {3, 3}, {3, 4}, {3, 5}},
				{{5, 2}, {5, 3}, {5, 4}},
				{{7, 2}, {7, 3}, {7, 4}},
				{{11, 2}, {11, 3}},
			},
			expectedCode: cerr.CodeOutOfBounds,
		},
		{
			name: "negative coordinates",
			position: [][][2]int{
				{{1, 2}, {1, 3}, {1, 4}, {1, 5}, {1, 6}},
				{{3, 2}, {3, 3}, {3, 4}, {3, 5}},
				{{5, 2}, {5, 3}, {5, 4}},
				{{7, 2}, {7, 3}, {7, 4}},
				{{-2, 2}, {-2, 3}},
			},
			expectedCode: cerr.CodeOutOfBounds,
		},
		{
			name: "gap inside a ship",
			position: [][][2]int{
				{{1, 2}, {1, 3}, {1, 5}, {1, 6}, {1, 7}},
				{{3, 2}, {3, 3}, {3, 4}, {3, 5}},
				{{5, 2}, {5, 3}, {5, 4}},
				{{7, 2}, {7, 3}, {7, 4}},
				{{9, 2}, {9, 3}},
			},
			expectedCode: cerr.CodeMalformedShip,
		},
		{
			name: "diagonal ship",
			position: [][][2]int{
				{{1, 2}, {1, 3}, {1, 4}, {1, 5}, {1, 6}},
				{{3, 2}, {3, 3}, {3, 4}, {3, 5}},
				{{5, 2}, {5, 3}, {5, 4}},
				{{7, 2}, {8, 3}, {9, 4}},
				{{9, 8}, {9, 9}},
			},
			expectedCode: cerr.CodeMalformedShip,
		},
		{
			name: "ships overlap",
			position: [][][2]int{
				{{1, 2}, {1, 3}, {1, 4}, {1, 5}, {1, 6}},
				{{3, 2}, {3, 3}, {3, 4}, {3, 5}},
				{{5, 2}, {5, 3}, {5, 4}},
				{{7, 2}, {7, 3}, {7, 4}},
				{{7, 4}, {8, 4}},
			},
			expectedCode: cerr.CodeShipsOverlap,
		},
		{
			name: "out of bounds reported before composition",
			position: [][][2]int{
				{{11, 2}, {11, 3}},
			},
			expectedCode: cerr.CodeOutOfBounds,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := mb.ValidateFleet(buildFleet(test.position))

			if test.expectedCode == "" {
				if err != nil {
					t.Fatalf("expected valid fleet, got: %v", err)
				}
				return
			}

			gameErr, ok := cerr.AsGameError(err)
			if !ok {
				t.Fatalf("expected game error with code %s, got: %v", test.expectedCode, err)
			}
			if gameErr.Code() != test.expectedCode {
				t.Fatalf("expected code: %s\t got: %s", test.expectedCode, gameErr.Code())
			}
			if gameErr.Kind() != cerr.KindValidation {
				t.Fatalf("expected validation kind, got: %d", gameErr.Kind())
			}
		})
	}
}

package battleship_test

import (
	"encoding/json"
	"testing"

	cerr "github.com/mkarimi21/seabattle-backend/internal/error"
	mb "github.com/mkarimi21/seabattle-backend/models/battleship"
)

func TestCoordinatesUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		expectErr bool
		expected  mb.Coordinates
	}{
		{name: "valid pair", data: `[1,6]`, expected: mb.NewCoordinates(1, 6)},
		{name: "string instead of int", data: `["a",2]`, expectErr: true},
		{name: "float coordinate", data: `[1.5,2]`, expectErr: true},
		{name: "missing element", data: `[1]`, expectErr: true},
		{name: "extra element", data: `[1,2,3]`, expectErr: true},
		{name: "not an array", data: `5`, expectErr: true},
		{name: "object shape", data: `{"x":1,"y":2}`, expectErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var c mb.Coordinates
			err := json.Unmarshal([]byte(test.data), &c)

			if !test.expectErr {
				if err != nil {
					t.Fatalf("expected valid coordinate, got: %v", err)
				}
				if c != test.expected {
					t.Fatalf("expected %+v\t got %+v", test.expected, c)
				}
				return
			}

			gameErr, ok := cerr.AsGameError(err)
			if !ok {
				t.Fatalf("expected game error, got: %v", err)
			}
			if gameErr.Code() != cerr.CodeInvalidCoordinates {
				t.Fatalf("expected code: %s\t got: %s", cerr.CodeInvalidCoordinates, gameErr.Code())
			}
		})
	}
}

func TestCoordinatesMarshalJSON(t *testing.T) {
	data, err := json.Marshal(mb.NewCoordinates(3, 4))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[3,4]" {
		t.Fatalf("expected [3,4]\t got %s", data)
	}
}

func TestCoordinatesInBounds(t *testing.T) {
	tests := []struct {
		coord    mb.Coordinates
		expected bool
	}{
		{mb.NewCoordinates(1, 1), true},
		{mb.NewCoordinates(10, 10), true},
		{mb.NewCoordinates(0, 5), false},
		{mb.NewCoordinates(11, 5), false},
		{mb.NewCoordinates(5, 0), false},
		{mb.NewCoordinates(5, 11), false},
		{mb.NewCoordinates(-2, 3), false},
	}

	for _, test := range tests {
		if test.coord.InBounds() != test.expected {
			t.Fatalf("InBounds(%+v): expected %t", test.coord, test.expected)
		}
	}
}

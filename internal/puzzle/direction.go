package puzzle

import "fmt"

// Direction identifies one of a cell's five edge variables: the four grid
// directions plus Sink, which marks the cell as a terminal endpoint.
type Direction int

const (
	Sink Direction = iota
	North
	South
	East
	West
)

// Directions lists every direction in degree-constraint order.
var Directions = []Direction{Sink, North, South, East, West}

var directionNames = map[Direction]string{
	Sink:  "Sink",
	North: "North",
	South: "South",
	East:  "East",
	West:  "West",
}

func (direction Direction) String() string {
	if name, ok := directionNames[direction]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", int(direction))
}

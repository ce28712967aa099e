package model

// Cell is the atomic grid element, either Dead or Alive.
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// Rune returns the textual form of the cell: ' ' for Dead, '#' for Alive.
func (c Cell) Rune() byte {
	if c == Alive {
		return '#'
	}
	return ' '
}

// Bit returns the packed form of the cell: 0 for Dead, 1 for Alive.
func (c Cell) Bit() byte {
	if c == Alive {
		return 1
	}
	return 0
}

// CellFromBit maps a packed bit back to a cell. Any non-zero bit is Alive.
func CellFromBit(b byte) Cell {
	if b != 0 {
		return Alive
	}
	return Dead
}

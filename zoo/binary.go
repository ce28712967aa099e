package zoo

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"

	"golife/model"
)

// SaveBinary writes grid to path in the .bgol format: width and height as
// little-endian int32s, then the cells packed in row-major order, eight per
// byte filled from the least significant bit. The final byte is zero-padded.
func SaveBinary(path string, grid *model.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(ErrIO, "[SaveBinary] open %s: %v", path, err)
	}
	defer f.Close()

	header := [2]int32{int32(grid.GetWidth()), int32(grid.GetHeight())}
	if err = binary.Write(f, binary.LittleEndian, header); err != nil {
		return errors.Wrapf(ErrIO, "[SaveBinary] write %s: %v", path, err)
	}

	var (
		total  = grid.TotalCells()
		packed = make([]byte, 0, (total+7)/8)
		b      byte
		nbits  uint
	)
	for y := 0; y < grid.GetHeight(); y++ {
		for x := 0; x < grid.GetWidth(); x++ {
			c, _ := grid.Get(x, y)
			b |= c.Bit() << nbits
			nbits++
			if nbits == 8 {
				packed = append(packed, b)
				b, nbits = 0, 0
			}
		}
	}
	if nbits > 0 {
		packed = append(packed, b)
	}

	if _, err = f.Write(packed); err != nil {
		return errors.Wrapf(ErrIO, "[SaveBinary] write %s: %v", path, err)
	}
	return nil
}

// LoadBinary reads a .bgol file back into a grid. Negative header dimensions
// clamp to zero, so a malformed header yields a zero-area grid rather than an
// error; a truncated payload is unexpected-eof.
func LoadBinary(path string) (*model.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrIO, "[LoadBinary] open %s: %v", path, err)
	}
	defer f.Close()

	var header [2]int32
	if err = binary.Read(f, binary.LittleEndian, &header); err != nil {
		return nil, errors.Wrapf(ErrUnexpectedEOF, "[LoadBinary] header %s: %v", path, err)
	}

	width, height := max(int(header[0]), 0), max(int(header[1]), 0)
	grid, _ := model.NewGrid(width, height)

	total := width * height
	if total == 0 {
		return grid, nil
	}

	packed := make([]byte, (total+7)/8)
	if _, err = io.ReadFull(f, packed); err != nil {
		return nil, errors.Wrapf(ErrUnexpectedEOF, "[LoadBinary] cells %s: %v", path, err)
	}

	for i := 0; i < total; i++ {
		bit := (packed[i/8] >> uint(i%8)) & 1
		_ = grid.Set(i%width, i/width, model.CellFromBit(bit))
	}
	return grid, nil
}

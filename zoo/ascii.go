package zoo

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"golife/model"
)

// SaveASCII writes grid to path in the .gol format: a "W H" header line
// followed by H rows of W cells, '#' for alive and ' ' for dead, each row
// terminated by a newline.
func SaveASCII(path string, grid *model.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(ErrIO, "[SaveASCII] open %s: %v", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err = fmt.Fprintf(w, "%d %d\n", grid.GetWidth(), grid.GetHeight()); err != nil {
		return errors.Wrapf(ErrIO, "[SaveASCII] write %s: %v", path, err)
	}
	for y := 0; y < grid.GetHeight(); y++ {
		for x := 0; x < grid.GetWidth(); x++ {
			c, _ := grid.Get(x, y)
			if err = w.WriteByte(c.Rune()); err != nil {
				return errors.Wrapf(ErrIO, "[SaveASCII] write %s: %v", path, err)
			}
		}
		if err = w.WriteByte('\n'); err != nil {
			return errors.Wrapf(ErrIO, "[SaveASCII] write %s: %v", path, err)
		}
	}
	if err = w.Flush(); err != nil {
		return errors.Wrapf(ErrIO, "[SaveASCII] write %s: %v", path, err)
	}
	return nil
}

// LoadASCII reads a .gol file back into a grid. The header must carry two
// positive integers; every row must be exactly W characters of ' ' or '#'.
// The newline after the final row may be absent.
func LoadASCII(path string) (*model.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrIO, "[LoadASCII] open %s: %v", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	width, height, err := parseHeader(r)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadASCII] %s", path)
	}

	grid, _ := model.NewGrid(width, height)
	for y := 0; y < height; y++ {
		if err = parseRow(r, grid, y); err != nil {
			return nil, errors.Wrapf(err, "[LoadASCII] %s row %d", path, y)
		}
	}
	return grid, nil
}

// parseHeader reads the "W H" line and validates both integers.
func parseHeader(r *bufio.Reader) (width, height int, err error) {
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return 0, 0, errors.Wrapf(ErrIO, "read header: %v", err)
	}
	line = strings.TrimSuffix(line, "\n")

	fields := strings.Split(line, " ")
	if len(fields) != 2 {
		return 0, 0, errors.Wrapf(ErrInvalidHeader, "header %q", line)
	}
	if width, err = strconv.Atoi(fields[0]); err != nil || width <= 0 {
		return 0, 0, errors.Wrapf(ErrInvalidHeader, "width %q", fields[0])
	}
	if height, err = strconv.Atoi(fields[1]); err != nil || height <= 0 {
		return 0, 0, errors.Wrapf(ErrInvalidHeader, "height %q", fields[1])
	}
	return width, height, nil
}

// parseRow reads one data line into row y of grid. A line that runs out at
// end of file is unexpected-eof; a line of the wrong length is invalid-line.
func parseRow(r *bufio.Reader, grid *model.Grid, y int) error {
	width := grid.GetWidth()

	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return errors.Wrapf(ErrIO, "read: %v", err)
	}
	terminated := strings.HasSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\n")

	if !terminated && len(line) < width {
		return errors.Wrapf(ErrUnexpectedEOF, "%d of %d characters", len(line), width)
	}
	if len(line) != width {
		return errors.Wrapf(ErrInvalidLine, "%d characters, want %d", len(line), width)
	}

	for x := 0; x < width; x++ {
		switch line[x] {
		case ' ':
			// dead by construction
		case '#':
			_ = grid.Set(x, y, model.Alive)
		default:
			return errors.Wrapf(ErrInvalidCharacter, "%q at column %d", line[x], x)
		}
	}
	return nil
}

// Package levels provides brick layouts. Layouts are tilesheets of at most
// MaxColumns x MaxRows tiles, read row by row from the top.
package levels

import (
	"errors"
	"fmt"
	"strings"
)

// Grid limits of the play field.
const (
	MaxColumns = 13
	MaxRows    = 18
)

var (
	ErrInvalidTile  = errors.New("invalid tile")
	ErrTooLarge     = errors.New("level exceeds 13x18 tiles")
	ErrEmptyLevel   = errors.New("level has no rows")
	ErrNoID         = errors.New("level has no id")
	ErrUnknownLevel = errors.New("unknown level")
)

// Tile is one cell of a tilesheet.
type Tile uint8

const (
	TileEmpty    Tile = 0
	TileNormal   Tile = 1
	TileMultiHit Tile = 2
)

// Level is a validated brick layout.
type Level struct {
	ID      string
	Title   string
	Columns int
	Rows    int
	Tiles   []Tile // row-major, len == Columns*Rows
}

// At returns the tile at (col, row), or TileEmpty outside the grid.
func (l Level) At(col, row int) Tile {
	if col < 0 || col >= l.Columns || row < 0 || row >= l.Rows {
		return TileEmpty
	}
	return l.Tiles[row*l.Columns+col]
}

// BrickCount returns the number of non-empty tiles.
func (l Level) BrickCount() int {
	n := 0
	for _, t := range l.Tiles {
		if t != TileEmpty {
			n++
		}
	}
	return n
}

// ParseTilesheet builds a level from text rows. Each character is a tile:
// '0' or '.' empty, '1' normal, '2' multi-hit. Spaces are ignored so rows
// may be written "0 1 1 0". Short rows are padded with empty tiles.
func ParseTilesheet(id, title string, rows []string) (Level, error) {
	if id == "" {
		return Level{}, ErrNoID
	}
	if len(rows) == 0 {
		return Level{}, fmt.Errorf("level %s: %w", id, ErrEmptyLevel)
	}
	if len(rows) > MaxRows {
		return Level{}, fmt.Errorf("level %s: %d rows: %w", id, len(rows), ErrTooLarge)
	}

	parsed := make([][]Tile, len(rows))
	cols := 0
	for r, line := range rows {
		line = strings.ReplaceAll(strings.TrimSpace(line), " ", "")
		row := make([]Tile, 0, len(line))
		for c, ch := range line {
			tile, err := tileFromRune(ch)
			if err != nil {
				return Level{}, fmt.Errorf("level %s: row %d col %d: %w", id, r, c, err)
			}
			row = append(row, tile)
		}
		if len(row) > MaxColumns {
			return Level{}, fmt.Errorf("level %s: row %d has %d columns: %w", id, r, len(row), ErrTooLarge)
		}
		parsed[r] = row
		cols = max(cols, len(row))
	}
	if cols == 0 {
		return Level{}, fmt.Errorf("level %s: %w", id, ErrEmptyLevel)
	}

	lvl := Level{
		ID:      id,
		Title:   title,
		Columns: cols,
		Rows:    len(parsed),
		Tiles:   make([]Tile, cols*len(parsed)),
	}
	for r, row := range parsed {
		copy(lvl.Tiles[r*cols:], row)
	}
	return lvl, nil
}

func tileFromRune(ch rune) (Tile, error) {
	switch ch {
	case '0', '.':
		return TileEmpty, nil
	case '1':
		return TileNormal, nil
	case '2':
		return TileMultiHit, nil
	default:
		return TileEmpty, fmt.Errorf("%w %q", ErrInvalidTile, ch)
	}
}

// TileRows renders the level back to tilesheet rows using '.' for empty tiles.
func (l Level) TileRows() []string {
	out := make([]string, l.Rows)
	for r := range l.Rows {
		var sb strings.Builder
		for c := range l.Columns {
			switch l.At(c, r) {
			case TileNormal:
				sb.WriteByte('1')
			case TileMultiHit:
				sb.WriteByte('2')
			default:
				sb.WriteByte('.')
			}
		}
		out[r] = sb.String()
	}
	return out
}

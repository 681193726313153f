package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinsRegistered(t *testing.T) {
	for _, id := range []string{"debug", "classic", "checker"} {
		if !Exists(id) {
			t.Errorf("Exists(%q) = false, expected true", id)
		}
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestDebugLevelLayout(t *testing.T) {
	l, err := Get(DefaultLevel)
	if err != nil {
		t.Fatalf("Get(%q) error = %v", DefaultLevel, err)
	}
	if l.Columns != MaxColumns || l.Rows != MaxRows {
		t.Errorf("debug size = %dx%d, expected %dx%d", l.Columns, l.Rows, MaxColumns, MaxRows)
	}
	// 10 rows of 11 bricks
	if l.BrickCount() != 110 {
		t.Errorf("BrickCount() = %d, expected 110", l.BrickCount())
	}
	if l.At(1, 4) != TileMultiHit {
		t.Errorf("At(1, 4) = %v, expected TileMultiHit", l.At(1, 4))
	}
	if l.At(1, 5) != TileNormal {
		t.Errorf("At(1, 5) = %v, expected TileNormal", l.At(1, 5))
	}
	if l.At(0, 5) != TileEmpty || l.At(12, 5) != TileEmpty {
		t.Error("edge columns should be empty")
	}
	if l.At(-1, 0) != TileEmpty || l.At(0, 99) != TileEmpty {
		t.Error("At() outside the grid should be TileEmpty")
	}
}

func TestGetReturnsCopy(t *testing.T) {
	a, _ := Get("classic")
	a.Tiles[len(a.Tiles)-1] = TileEmpty
	b, _ := Get("classic")
	if b.Tiles[len(b.Tiles)-1] != TileNormal {
		t.Error("mutating a Get() result changed the registry")
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("no-such-level"); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("Get() error = %v, expected ErrUnknownLevel", err)
	}
}

func TestParseTilesheet(t *testing.T) {
	l, err := ParseTilesheet("t", "Test", []string{
		"1 2 .",
		"0",
	})
	if err != nil {
		t.Fatalf("ParseTilesheet() error = %v", err)
	}
	if l.Columns != 3 || l.Rows != 2 {
		t.Errorf("size = %dx%d, expected 3x2", l.Columns, l.Rows)
	}
	want := []Tile{TileNormal, TileMultiHit, TileEmpty, TileEmpty, TileEmpty, TileEmpty}
	for i, tile := range want {
		if l.Tiles[i] != tile {
			t.Errorf("Tiles[%d] = %v, expected %v", i, l.Tiles[i], tile)
		}
	}
	rows := l.TileRows()
	if rows[0] != "12." || rows[1] != "..." {
		t.Errorf("TileRows() = %v, expected [12. ...]", rows)
	}
}

func TestParseTilesheetErrors(t *testing.T) {
	long := make([]string, MaxRows+1)
	for i := range long {
		long[i] = "1"
	}

	tests := []struct {
		name string
		id   string
		rows []string
		want error
	}{
		{"bad tile", "x", []string{"13"}, ErrInvalidTile},
		{"too wide", "x", []string{"11111111111111"}, ErrTooLarge},
		{"too tall", "x", long, ErrTooLarge},
		{"no rows", "x", nil, ErrEmptyLevel},
		{"blank rows", "x", []string{"", "  "}, ErrEmptyLevel},
		{"no id", "", []string{"1"}, ErrNoID},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseTilesheet(tc.id, "", tc.rows)
			if !errors.Is(err, tc.want) {
				t.Errorf("ParseTilesheet() error = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestParseYAML(t *testing.T) {
	l, err := ParseYAML([]byte("id: wall\nname: The Wall\nrows:\n  - \"1111\"\n  - \"2..2\"\n"))
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}
	if l.ID != "wall" || l.Title != "The Wall" {
		t.Errorf("ParseYAML() = %s/%s, expected wall/The Wall", l.ID, l.Title)
	}
	if l.BrickCount() != 6 {
		t.Errorf("BrickCount() = %d, expected 6", l.BrickCount())
	}

	if _, err := ParseYAML([]byte("id: x\nrows: [\"1\"]\ncolour: red\n")); err == nil {
		t.Error("ParseYAML() should reject unknown fields")
	}
	if _, err := ParseYAML([]byte("id: x\nrows: [\"9\"]\n")); !errors.Is(err, ErrInvalidTile) {
		t.Errorf("ParseYAML() error = %v, expected ErrInvalidTile", err)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"a.yaml": "id: loaddir_a\nrows: [\"1\"]\n",
		"b.yml":  "id: loaddir_b\nname: B\nrows: [\"22\"]\n",
		"c.txt":  "ignored",
		"d.json": "{}",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	ids, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}
	if len(ids) != 2 || ids[0] != "loaddir_a" || ids[1] != "loaddir_b" {
		t.Errorf("LoadDir() = %v, expected [loaddir_a loaddir_b]", ids)
	}
	if !Exists("loaddir_b") {
		t.Error("loaded level not registered")
	}

	// Reloading the same directory replaces instead of panicking
	if _, err := LoadDir(dir); err != nil {
		t.Errorf("second LoadDir() error = %v", err)
	}
}

func TestLoadDirBadFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("id: bad\nrows: [\"x\"]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDir(dir); !errors.Is(err, ErrInvalidTile) {
		t.Errorf("LoadDir() error = %v, expected ErrInvalidTile", err)
	}
	if _, err := LoadDir(filepath.Join(dir, "missing")); err == nil {
		t.Error("LoadDir() of a missing directory should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register() of a duplicate id should panic")
		}
	}()
	l, _ := Get("debug")
	Register(l)
}

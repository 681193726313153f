package levels

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// levelFile is the on-disk YAML form of a level.
type levelFile struct {
	ID   string   `yaml:"id"`
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// ParseYAML parses a level file of the form {id, name, rows: [...]}.
// Unknown fields are rejected.
func ParseYAML(data []byte) (Level, error) {
	var f levelFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return Level{}, fmt.Errorf("failed to parse level: %w", err)
	}
	title := f.Name
	if title == "" {
		title = f.ID
	}
	return ParseTilesheet(f.ID, title, f.Rows)
}

// LoadFile reads and parses a single YAML level file.
func LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("failed to read level %s: %w", path, err)
	}
	l, err := ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// LoadDir registers every .yaml/.yml level in dir, replacing built-ins with
// the same ID. Files are loaded in name order; the first bad file aborts.
func LoadDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read level dir %s: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var loaded []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		l, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return loaded, err
		}
		Replace(l)
		loaded = append(loaded, l.ID)
	}
	return loaded, nil
}

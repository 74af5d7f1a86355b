package core

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// MovePair describes one relocated file in the migration descriptor.
type MovePair struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// moveFile is the on-disk shape of the migration descriptor.
type moveFile struct {
	Moves []MovePair `yaml:"moves"`
}

// MoveTable maps the old root-relative path of every relocated file to its new
// root-relative path. Immutable after construction.
type MoveTable struct {
	forward map[string]string
	reverse map[string]string
}

// LoadMoveTable reads a YAML migration descriptor from path.
func LoadMoveTable(path string) (*MoveTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("move table: %w", err)
	}
	var mf moveFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("move table: %w", err)
	}
	if len(mf.Moves) == 0 {
		return nil, fmt.Errorf("move table: no moves defined in %s", path)
	}
	return NewMoveTable(mf.Moves)
}

// NewMoveTable builds and validates a move table from explicit pairs.
func NewMoveTable(pairs []MovePair) (*MoveTable, error) {
	t := &MoveTable{
		forward: make(map[string]string, len(pairs)),
		reverse: make(map[string]string, len(pairs)),
	}
	for _, p := range pairs {
		from := NormalizePath(p.From)
		to := NormalizePath(p.To)
		if from == "" || to == "" {
			return nil, fmt.Errorf("move table: entry with empty path (from=%q to=%q)", p.From, p.To)
		}
		if from == to {
			return nil, fmt.Errorf("move table: identity entry for %s (unmoved files are omitted)", from)
		}
		if prev, ok := t.forward[from]; ok {
			return nil, fmt.Errorf("move table: %s moved twice (%s and %s)", from, prev, to)
		}
		if prev, ok := t.reverse[to]; ok {
			return nil, fmt.Errorf("move table: %s is the destination of both %s and %s", to, prev, from)
		}
		t.forward[from] = to
		t.reverse[to] = from
	}
	// A path that is both a source and another entry's destination would make
	// the table describe a sequence of moves rather than one restructuring.
	for from := range t.forward {
		if other, ok := t.reverse[from]; ok {
			return nil, fmt.Errorf("move table: %s is both a source and the destination of %s", from, other)
		}
	}
	return t, nil
}

// NewPath returns the new location of an old path, if that path was moved.
func (t *MoveTable) NewPath(old string) (string, bool) {
	p, ok := t.forward[old]
	return p, ok
}

// OldPath returns the old location of a new path, if some file moved there.
func (t *MoveTable) OldPath(new string) (string, bool) {
	p, ok := t.reverse[new]
	return p, ok
}

// Len returns the number of relocated files.
func (t *MoveTable) Len() int {
	return len(t.forward)
}

// Sources returns the old paths in the table, sorted.
func (t *MoveTable) Sources() []string {
	out := make([]string, 0, len(t.forward))
	for from := range t.forward {
		out = append(out, from)
	}
	sort.Strings(out)
	return out
}

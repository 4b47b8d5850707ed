// Package level turns enumerated combinations into piece sequences that level
// scripts can embed.
package level

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	petname "github.com/dustinkirkland/golang-petname"
	"gopkg.in/yaml.v3"

	"github.com/SUPERCILEX/grocery-bagger-9000-sub000/pkg/bagfill"
	"github.com/SUPERCILEX/grocery-bagger-9000-sub000/pkg/mino"
)

type Level struct {
	Name   string           `yaml:"name"`
	Pieces []mino.Canonical `yaml:"pieces"`
}

// Bag groups the levels generated for one bag size.
type Bag struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Levels []Level `yaml:"levels"`
}

// FromCombination orders the pieces of c as a level would deal them. The
// order only depends on seed.
func FromCombination(c bagfill.Combination, seed int64) Level {
	pieces := make([]mino.Canonical, len(c))
	copy(pieces, c)

	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(pieces), func(i, j int) { pieces[i], pieces[j] = pieces[j], pieces[i] })

	return Level{Name: petname.Generate(2, "-"), Pieces: pieces}
}

func FromResults(rs *bagfill.ResultSet, seed int64) Bag {
	b := Bag{Width: rs.Width, Height: rs.Height}
	for i, c := range rs.Combinations() {
		b.Levels = append(b.Levels, FromCombination(c, seed+int64(i)))
	}
	return b
}

func FileName(width, height int) string {
	return fmt.Sprintf("bag-%dx%d.yaml", width, height)
}

// Export writes the levels of rs to dir and returns the written path.
func Export(dir string, rs *bagfill.ResultSet, seed int64) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export dir: %w", err)
	}

	data, err := yaml.Marshal(FromResults(rs, seed))
	if err != nil {
		return "", fmt.Errorf("failed to encode levels: %w", err)
	}

	path := filepath.Join(dir, FileName(rs.Width, rs.Height))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write levels: %w", err)
	}
	return path, nil
}

// Load reads levels written by Export.
func Load(path string) (Bag, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Bag{}, fmt.Errorf("failed to read levels: %w", err)
	}

	var b Bag
	if err := yaml.Unmarshal(data, &b); err != nil {
		return Bag{}, fmt.Errorf("failed to parse levels: %w", err)
	}
	return b, nil
}

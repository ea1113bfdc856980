package pivspi

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"tinytext/quarkgl"
)

// Category is one compared trait with a score per competitor.
type Category struct {
	Name       string  `yaml:"name"`
	Kobold     float32 `yaml:"kobold"`
	Troglodyte float32 `yaml:"troglodyte"`
}

// DefaultCategories is the built-in data set.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Strength", Kobold: 4, Troglodyte: 7},
		{Name: "Cunning", Kobold: 8, Troglodyte: 5},
		{Name: "Aggression", Kobold: 6, Troglodyte: 8},
		{Name: "Sociality", Kobold: 7, Troglodyte: 3},
		{Name: "Habitat", Kobold: 6, Troglodyte: 9},
		{Name: "Intelligence", Kobold: 7, Troglodyte: 4},
		{Name: "Stealth", Kobold: 8, Troglodyte: 6},
	}
}

// sliceColors are cycled over categories.
var sliceColors = [...]quarkgl.Color{
	quarkgl.RGBf(1, 0.27, 0.27),
	quarkgl.RGBf(0.27, 1, 0.27),
	quarkgl.RGBf(0.27, 0.27, 1),
	quarkgl.RGBf(1, 1, 0.27),
	quarkgl.RGBf(1, 0.27, 1),
	quarkgl.RGBf(0.27, 1, 1),
	quarkgl.RGBf(1, 0.53, 0.27),
	quarkgl.RGBf(0.53, 1, 0.27),
}

// SliceColor returns the colour of category i.
func SliceColor(i int) quarkgl.Color { return sliceColors[i%len(sliceColors)] }

var ErrNoCategories = errors.New("pivspi: no categories")

// ReadData decodes a YAML list of categories and validates it.
func ReadData(r io.Reader) ([]Category, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cats []Category
	if err := dec.Decode(&cats); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoCategories
		}
		return nil, fmt.Errorf("pivspi: decode data: %w", err)
	}
	if err := validate(cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// LoadData reads categories from a YAML file.
func LoadData(path string) ([]Category, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pivspi: %w", err)
	}
	defer f.Close()
	cats, err := ReadData(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cats, nil
}

func validate(cats []Category) error {
	if len(cats) == 0 {
		return ErrNoCategories
	}
	var kobolds, troglodytes float32
	for i, c := range cats {
		if c.Kobold < 0 || c.Troglodyte < 0 {
			return fmt.Errorf("pivspi: category %d (%s): negative score", i, c.Name)
		}
		if c.Kobold+c.Troglodyte == 0 {
			return fmt.Errorf("pivspi: category %d (%s): both scores are zero", i, c.Name)
		}
		kobolds += c.Kobold
		troglodytes += c.Troglodyte
	}
	if kobolds == 0 || troglodytes == 0 {
		return fmt.Errorf("pivspi: a competitor has no score in any category")
	}
	return nil
}

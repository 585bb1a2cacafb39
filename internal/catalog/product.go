// Package catalog holds the static product table shown in the showroom.
package catalog

import (
	"errors"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// Product is one immutable catalog entry.
type Product struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Price       float64  `yaml:"price"`
	Description []string `yaml:"description"`
	Features    []string `yaml:"features"`
	ImageURL    string   `yaml:"image_url"`
	Rating      float32  `yaml:"rating"`
	InStock     bool     `yaml:"in_stock"`
}

// Catalog is an ordered product list. Order decides display placement.
type Catalog struct {
	products []Product
}

var (
	ErrEmpty       = errors.New("catalog has no products")
	ErrDuplicateID = errors.New("duplicate product id")
	ErrMissingID   = errors.New("product without id")
)

// New validates products and builds a catalog from them.
func New(products []Product) (*Catalog, error) {
	if len(products) == 0 {
		return nil, ErrEmpty
	}
	c := &Catalog{
		products: make([]Product, len(products)),
	}
	seen := make(map[string]bool, len(products))
	for i, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("%w at index %d", ErrMissingID, i)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("%w %q", ErrDuplicateID, p.ID)
		}
		seen[p.ID] = true
		c.products[i] = p.clone()
	}
	return c, nil
}

type catalogFile struct {
	Products []Product `yaml:"products"`
}

// Load reads a YAML product list from path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a YAML product list.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return New(f.Products)
}

func (c *Catalog) Len() int {
	return len(c.products)
}

// Products returns a copy of the whole list.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	for i, p := range c.products {
		out[i] = p.clone()
	}
	return out
}

func (p Product) clone() Product {
	p.Description = append([]string(nil), p.Description...)
	p.Features = append([]string(nil), p.Features...)
	return p
}

// placements are the fixed display slots: five along the back wall,
// three along the left wall.
var placements = []rl.Vector3{
	{X: -12, Y: 1.5, Z: -14},
	{X: -6, Y: 1.5, Z: -14},
	{X: 0, Y: 1.5, Z: -14},
	{X: 6, Y: 1.5, Z: -14},
	{X: 12, Y: 1.5, Z: -14},
	{X: -19, Y: 1.5, Z: -8},
	{X: -19, Y: 1.5, Z: 0},
	{X: -19, Y: 1.5, Z: 8},
}

// Overflow slots run along the right wall in rows of six, each row 3 units
// further into the room than the last.
const (
	overflowX       = 19
	overflowRowStep = 3
	overflowPerRow  = 6
	overflowFirstZ  = -10
	overflowZStep   = 4
)

// Placement returns the display position for the product at index.
// Indices past the slot table get their own overflow slot; negative
// indices map to the first one.
func Placement(index int) rl.Vector3 {
	if index >= 0 && index < len(placements) {
		return placements[index]
	}
	k := max(index-len(placements), 0)
	return rl.Vector3{
		X: overflowX - overflowRowStep*float32(k/overflowPerRow),
		Y: 1.5,
		Z: overflowFirstZ + overflowZStep*float32(k%overflowPerRow),
	}
}

// Slots returns how many fixed display positions exist.
func Slots() int {
	return len(placements)
}

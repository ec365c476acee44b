// Package catalog holds the static content table the store is seeded from.
package catalog

import (
	_ "embed"
	"fmt"

	"wacblog/app/models"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var seed []byte

// Catalog is the seed state: posts, comments, categories and the
// trending keywords shown next to the search box.
type Catalog struct {
	Posts       []*models.Post    `yaml:"posts"`
	Comments    []*models.Comment `yaml:"comments"`
	Categories  []models.Category `yaml:"categories"`
	HotKeywords []string          `yaml:"hotKeywords"`
}

// Load decodes the embedded table. Every call returns fresh values, so
// callers may mutate the result freely.
func Load() (*Catalog, error) {
	return Parse(seed)
}

// MustLoad is Load for callers that cannot proceed without the seed.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks every record and that posts and comments are listed in
// strictly ascending id order, which is what makes id order and seed order
// the same thing.
func (c *Catalog) Validate() error {
	prev := 0
	for i, p := range c.Posts {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("post #%d: %w", i, err)
		}
		if p.ID <= prev {
			return fmt.Errorf("post #%d: id %d is not greater than %d", i, p.ID, prev)
		}
		prev = p.ID
	}

	prev = 0
	for i, cm := range c.Comments {
		if err := cm.Validate(); err != nil {
			return fmt.Errorf("comment #%d: %w", i, err)
		}
		if cm.ID <= prev {
			return fmt.Errorf("comment #%d: id %d is not greater than %d", i, cm.ID, prev)
		}
		prev = cm.ID
	}

	seen := make(map[string]bool, len(c.Categories))
	for i := range c.Categories {
		cat := &c.Categories[i]
		if err := cat.Validate(); err != nil {
			return fmt.Errorf("category #%d: %w", i, err)
		}
		if seen[cat.ID] {
			return fmt.Errorf("category #%d: duplicate id %q", i, cat.ID)
		}
		seen[cat.ID] = true
	}
	return nil
}

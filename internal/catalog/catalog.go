package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gosimple/slug"

	pkgerrors "github.com/modaloft/storefront/pkg/errors"
)

// Catalog holds the ordered, read-only product and category records supplied
// at startup.
type Catalog struct {
	products   []Product
	categories []Category
	byID       map[string]int
	bySlug     map[string]int
}

// New builds a catalog from the provided records, deriving URL slugs and
// indexing by id. Duplicate product ids are rejected.
func New(products []Product, categories []Category) (*Catalog, error) {
	c := &Catalog{
		products:   make([]Product, len(products)),
		categories: make([]Category, len(categories)),
		byID:       make(map[string]int, len(products)),
		bySlug:     make(map[string]int, len(products)),
	}
	copy(c.products, products)
	copy(c.categories, categories)

	for i := range c.products {
		p := &c.products[i]
		if p.ID == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("product at index %d has no id", i))
		}
		if _, exists := c.byID[p.ID]; exists {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, fmt.Sprintf("duplicate product id %q", p.ID))
		}
		if p.Slug == "" {
			p.Slug = slug.Make(p.Name)
		}
		c.byID[p.ID] = i
		if _, exists := c.bySlug[p.Slug]; !exists {
			c.bySlug[p.Slug] = i
		}
	}
	return c, nil
}

// LoadFile reads a JSON catalog file of the shape
// {"products": [...], "categories": [...]}.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read catalog file")
	}
	var payload struct {
		Products   []Product  `json:"products"`
		Categories []Category `json:"categories"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "decode catalog file")
	}
	return New(payload.Products, payload.Categories)
}

// Products returns the catalog in its original order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Categories returns the category records in their original order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// FindByID returns the product with the given id.
func (c *Catalog) FindByID(id string) (Product, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[idx], true
}

// FindBySlug returns the product with the given slug.
func (c *Catalog) FindBySlug(s string) (Product, bool) {
	idx, ok := c.bySlug[s]
	if !ok {
		return Product{}, false
	}
	return c.products[idx], true
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

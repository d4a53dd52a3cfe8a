package search

// Record is a product document as it comes back from the catalog. Every field
// may be missing, so they are all pointers; callers must go through Normalize
// before rendering anything.
type Record struct {
	Name           *string         `json:"name"`
	Price          *int64          `json:"price"`
	Brand          *string         `json:"brand"`
	Category       *string         `json:"category"`
	Specifications *Specifications `json:"specifications"`
	Description    *string         `json:"description"`
}

type Specifications struct {
	Rating *float64 `json:"rating"`
}

// Product is a Record with defaults substituted for every missing field.
type Product struct {
	Name        string
	Price       int64
	Brand       string
	Category    string
	Rating      float64
	Description string
}

const (
	defaultName        = "Unknown"
	defaultBrand       = "Unknown"
	defaultCategory    = "Unknown"
	defaultDescription = "No description"
)

// Normalize maps the optional fields onto fixed defaults. Formatting code
// downstream never has to handle a missing value.
func (r Record) Normalize() Product {
	p := Product{
		Name:        defaultName,
		Brand:       defaultBrand,
		Category:    defaultCategory,
		Description: defaultDescription,
	}
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.Brand != nil {
		p.Brand = *r.Brand
	}
	if r.Category != nil {
		p.Category = *r.Category
	}
	if r.Specifications != nil && r.Specifications.Rating != nil {
		p.Rating = *r.Specifications.Rating
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	return p
}

// NormalizeAll applies Normalize to a result set, keeping order.
func NormalizeAll(records []Record) []Product {
	products := make([]Product, 0, len(records))
	for _, r := range records {
		products = append(products, r.Normalize())
	}
	return products
}

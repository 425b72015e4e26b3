package service

import "github.com/jafarshop/storefront/internal/domain"

// SeedProducts is the built-in demo catalog, served when no remote catalog
// is available. These records have no variant GIDs and therefore cannot be
// checked out remotely.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Name:        "Bella Skirt",
			Price:       "90 USD",
			Image:       "/BellaSkirt.png",
			Images:      []string{"/BellaSkirt.png"},
			Description: "A beautiful flowing skirt perfect for any occasion",
			Slug:        "bella-skirt",
		},
		{
			ID:          "2",
			Name:        "Lace Headband",
			Price:       "25 USD",
			Image:       "/LaceHeadband.png",
			Images:      []string{"/LaceHeadband.png"},
			Description: "Delicate lace headband for an elegant touch",
			Slug:        "lace-headband",
		},
		{
			ID:          "3",
			Name:        "Perla Dress",
			Price:       "150 USD",
			Image:       "/PerlaDress.png",
			Images:      []string{"/PerlaDress.png"},
			Description: "Stunning pearl-inspired dress for special moments",
			Slug:        "perla-dress",
		},
	}
}
